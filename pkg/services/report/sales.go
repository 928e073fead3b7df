package report

import (
	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

// Layout of the header-less VENDAS_DIARIAS grid: row 1 holds the 7 day
// dates, row 2 the 7 day amounts plus the week total in the 9th column.
const (
	daysPerWeek    = 7
	dateRowIndex   = 0
	amountRowIndex = 1
	totalCellCol   = 8
)

type salesSummary struct {
	revenueTotal float64
	daily        []domain.DailyAmount
	bestDay      domain.DailyAmount
}

// aggregateSales reads the weekly revenue total and the 7 daily amounts.
// The best day is the maximum amount; ties keep the earliest day.
func aggregateSales(grid workbook.Grid) salesSummary {
	s := salesSummary{
		revenueTotal: normalize.Round2(normalize.Amount(grid.Cell(amountRowIndex, totalCellCol))),
		daily:        make([]domain.DailyAmount, 0, daysPerWeek),
	}

	for col := 0; col < daysPerWeek; col++ {
		raw := grid.Cell(dateRowIndex, col)
		label := raw
		if d := normalize.ParseDate(raw); d.Valid {
			label = d.Time.Format("02/01")
		}
		s.daily = append(s.daily, domain.DailyAmount{
			Label:  label,
			Amount: normalize.Round2(normalize.Amount(grid.Cell(amountRowIndex, col))),
		})
	}

	s.bestDay = s.daily[0]
	for _, d := range s.daily[1:] {
		if d.Amount > s.bestDay.Amount {
			s.bestDay = d
		}
	}
	return s
}

// countCustomers sums the people-served column of the ticket sheet,
// coercing junk cells to zero.
func countCustomers(rows []workbook.Row) int {
	var total float64
	for _, row := range rows {
		total += normalize.Amount(row.Get(workbook.ColPeople))
	}
	return int(total)
}

// averageTicket guards the division: no customers means a zero ticket,
// never an error.
func averageTicket(revenue float64, customers int) float64 {
	if customers == 0 {
		return 0
	}
	return normalize.Round2(revenue / float64(customers))
}
