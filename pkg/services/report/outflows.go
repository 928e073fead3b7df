package report

import (
	"sort"
	"strings"

	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

const unspecified = "Não especificado"

// outflowSchema maps one outflow sheet onto the shared aggregation shape.
// The withdrawals sheet has no category or paid-with columns, so its
// reason doubles as both description and category.
type outflowSchema struct {
	dateCol         string
	descriptionCol  string
	categoryCol     string
	amountCol       string
	paidWithCol     string
	noteCol         string
	defaultCategory string
}

var withdrawalSchema = outflowSchema{
	dateCol:         workbook.ColWithdrawalDate,
	descriptionCol:  workbook.ColWithdrawalReason,
	categoryCol:     workbook.ColWithdrawalReason,
	amountCol:       workbook.ColWithdrawalAmount,
	noteCol:         workbook.ColWithdrawalNote,
	defaultCategory: unspecified,
}

var expenseSchema = outflowSchema{
	dateCol:         workbook.ColExpenseDate,
	descriptionCol:  workbook.ColExpenseDesc,
	categoryCol:     workbook.ColExpenseCategory,
	amountCol:       workbook.ColExpenseAmount,
	paidWithCol:     workbook.ColExpensePaidWith,
	noteCol:         workbook.ColExpenseNote,
	defaultCategory: "Outros",
}

// Paid-with values meaning the owner covered the expense personally.
var outOfPocketMarkers = []string{"própri", "gerente", "pessoal"}

type outflowItem struct {
	domain.OutflowItem
	parsed normalize.Date
}

// aggregateOutflows totals one outflow sheet, groups amounts by category
// and orders the itemized list by date ascending. Rows whose date cannot
// be parsed keep their relative sheet order after all dated rows.
func aggregateOutflows(rows []workbook.Row, schema outflowSchema, trackOutOfPocket bool) domain.OutflowSummary {
	summary := domain.OutflowSummary{ByCategory: make(map[string]float64)}

	var items []outflowItem
	for _, row := range rows {
		if rowIsBlank(row, schema) {
			continue
		}

		category := strings.TrimSpace(row.Get(schema.categoryCol))
		if category == "" {
			category = schema.defaultCategory
		}
		paidWith := unspecified
		if schema.paidWithCol != "" {
			if v := strings.TrimSpace(row.Get(schema.paidWithCol)); v != "" {
				paidWith = v
			}
		}

		amount := normalize.Round2(normalize.Amount(row.Get(schema.amountCol)))
		date := normalize.ParseDate(row.Get(schema.dateCol))

		summary.Total += amount
		summary.ByCategory[category] += amount

		if trackOutOfPocket && isOutOfPocket(paidWith) {
			summary.OutOfPocketTotal += amount
		}

		items = append(items, outflowItem{
			OutflowItem: domain.OutflowItem{
				Date:        date.Display,
				Description: strings.TrimSpace(row.Get(schema.descriptionCol)),
				Category:    category,
				Amount:      amount,
				PaidWith:    paidWith,
				Note:        strings.TrimSpace(row.Get(schema.noteCol)),
			},
			parsed: date,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].parsed.Valid != items[j].parsed.Valid {
			return items[i].parsed.Valid
		}
		if !items[i].parsed.Valid {
			return false
		}
		return items[i].parsed.Time.Before(items[j].parsed.Time)
	})

	summary.Items = make([]domain.OutflowItem, 0, len(items))
	for _, item := range items {
		summary.Items = append(summary.Items, item.OutflowItem)
	}

	summary.Total = normalize.Round2(summary.Total)
	summary.OutOfPocketTotal = normalize.Round2(summary.OutOfPocketTotal)
	for k, v := range summary.ByCategory {
		summary.ByCategory[k] = normalize.Round2(v)
	}
	return summary
}

func isOutOfPocket(paidWith string) bool {
	lower := strings.ToLower(paidWith)
	for _, marker := range outOfPocketMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

func rowIsBlank(row workbook.Row, schema outflowSchema) bool {
	for _, col := range []string{schema.dateCol, schema.descriptionCol, schema.categoryCol, schema.amountCol} {
		if strings.TrimSpace(row.Get(col)) != "" {
			return false
		}
	}
	return true
}
