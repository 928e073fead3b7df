package report

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

type payableRecord struct {
	domain.Payable
	due time.Time
}

// aggregatePayables keeps the payables due in the current calendar month of
// the injected clock, sorted by due date. Rows without an ID are template
// padding and are skipped; rows whose due date cannot be parsed are dropped
// because they cannot be placed in any month.
func aggregatePayables(ctx context.Context, rows []workbook.Row, now time.Time) ([]domain.Payable, domain.PayableTotals) {
	logger := zerolog.Ctx(ctx)

	var records []payableRecord
	for _, row := range rows {
		rawID := strings.TrimSpace(row.Get(workbook.ColPayableID))
		if rawID == "" {
			continue
		}
		id, err := strconv.Atoi(rawID)
		if err != nil {
			logger.Warn().Str("id", rawID).Msg("payable row has a non-numeric ID, skipping")
			continue
		}

		due := normalize.ParseDate(row.Get(workbook.ColPayableDueDate))
		if !due.Valid {
			logger.Warn().Int("id", id).Str("due_date", due.Display).
				Msg("payable row has an unparseable due date, dropping")
			continue
		}
		if due.Time.Month() != now.Month() || due.Time.Year() != now.Year() {
			continue
		}

		records = append(records, payableRecord{
			Payable: domain.Payable{
				ID:          id,
				Supplier:    strings.TrimSpace(row.Get(workbook.ColPayableSupplier)),
				Description: strings.TrimSpace(row.Get(workbook.ColPayableDesc)),
				Amount:      normalize.Round2(normalize.Amount(row.Get(workbook.ColPayableAmount))),
				DueDate:     due.Display,
				Status:      domain.PayableStatus(strings.ToUpper(strings.TrimSpace(row.Get(workbook.ColPayableStatus)))),
			},
			due: due.Time,
		})
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].due.Before(records[j].due)
	})

	var totals domain.PayableTotals
	payables := make([]domain.Payable, 0, len(records))
	for _, r := range records {
		switch r.Status {
		case domain.PayableUpcoming:
			totals.Upcoming += r.Amount
		case domain.PayableOverdue:
			totals.Overdue += r.Amount
		case domain.PayablePaid:
			totals.Paid += r.Amount
		}
		payables = append(payables, r.Payable)
	}

	totals.Upcoming = normalize.Round2(totals.Upcoming)
	totals.Overdue = normalize.Round2(totals.Overdue)
	totals.Paid = normalize.Round2(totals.Paid)
	return payables, totals
}
