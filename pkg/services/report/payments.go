package report

import (
	"sort"
	"strings"

	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

const paymentMethodOther = "Outros"

// Raw payment labels as they appear in the sheet, collapsed into the
// categories the report shows. Anything else lands in "Outros".
var paymentMethodMap = map[string]string{
	"Cartão Crédito":   "Crédito",
	"Cartão Débito":    "Débito",
	"Dinheiro":         "Dinheiro",
	"PIX":              "PIX",
	"Vale Refeição":    "Vale",
	"_Delivery Online": "Delivery",
}

// aggregatePayments groups payment rows by mapped category and returns the
// breakdown sorted by amount, highest first. Percentages are over the grand
// total and stay zero when nothing was paid.
func aggregatePayments(rows []workbook.Row) []domain.PaymentSlice {
	sums := make(map[string]float64)
	var order []string

	for _, row := range rows {
		method := strings.TrimSpace(row.Get(workbook.ColPaymentMethod))
		category, ok := paymentMethodMap[method]
		if !ok {
			category = paymentMethodOther
		}
		if _, seen := sums[category]; !seen {
			order = append(order, category)
		}
		sums[category] += normalize.Amount(row.Get(workbook.ColPaymentAmount))
	}

	var grandTotal float64
	for _, v := range sums {
		grandTotal += v
	}

	breakdown := make([]domain.PaymentSlice, 0, len(order))
	for _, category := range order {
		amount := normalize.Round2(sums[category])
		var percent float64
		if grandTotal > 0 {
			percent = normalize.Round2(sums[category] / grandTotal * 100)
		}
		breakdown = append(breakdown, domain.PaymentSlice{
			Method:  category,
			Amount:  amount,
			Percent: percent,
		})
	}

	// Ties keep first-encountered sheet order.
	sort.SliceStable(breakdown, func(i, j int) bool {
		return breakdown[i].Amount > breakdown[j].Amount
	})
	return breakdown
}
