package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/de-tools/scoop-report/pkg/models/domain"
)

func healthyReport() *domain.Report {
	return &domain.Report{
		RevenueTotal:  2800,
		AverageTicket: 56,
		Withdrawals:   domain.OutflowSummary{Total: 100},
		ExtraExpenses: domain.OutflowSummary{Total: 100},
	}
}

func TestGenerateInsights_HealthyWeek(t *testing.T) {
	out := generateInsights(healthyReport())

	assert.InDelta(t, 7.14, out.ExpenseRatioPercent, 0.01)
	assert.Empty(t, out.Alerts)
	assert.Empty(t, out.Insights)
	assert.Empty(t, out.Recommendations)
}

func TestGenerateInsights_ExpenseRatioAlert(t *testing.T) {
	r := healthyReport()
	r.Withdrawals.Total = 300
	r.ExtraExpenses.Total = 200

	out := generateInsights(r)

	assert.InDelta(t, 17.86, out.ExpenseRatioPercent, 0.01)
	assert.Len(t, out.Alerts, 1)
	assert.Len(t, out.Recommendations, 1)
	assert.Contains(t, out.Alerts[0], "17.9%")
}

func TestGenerateInsights_OutOfPocketAlert(t *testing.T) {
	r := healthyReport()
	r.ExtraExpenses.OutOfPocketTotal = 75.5

	out := generateInsights(r)

	assert.Len(t, out.Alerts, 1)
	assert.Contains(t, out.Alerts[0], "75.50")
	assert.Len(t, out.Recommendations, 1)
}

func TestGenerateInsights_TooManyWithdrawals(t *testing.T) {
	r := healthyReport()
	r.Withdrawals.Items = make([]domain.OutflowItem, 6)

	out := generateInsights(r)

	assert.Len(t, out.Alerts, 1)
	assert.Contains(t, out.Alerts[0], "6 sangrias")
}

func TestGenerateInsights_LowTicket(t *testing.T) {
	r := healthyReport()
	r.AverageTicket = 12.5

	out := generateInsights(r)

	assert.Empty(t, out.Alerts)
	assert.Len(t, out.Insights, 1)
	assert.Len(t, out.Recommendations, 1)
}

func TestGenerateInsights_OverduePayables(t *testing.T) {
	r := healthyReport()
	r.PayableTotals.Overdue = 320

	out := generateInsights(r)

	assert.Len(t, out.Alerts, 1)
	assert.Contains(t, out.Alerts[0], "320.00")
}

func TestGenerateInsights_ZeroRevenueHasZeroRatio(t *testing.T) {
	r := &domain.Report{
		Withdrawals:   domain.OutflowSummary{Total: 100},
		ExtraExpenses: domain.OutflowSummary{Total: 100},
		AverageTicket: 56,
	}

	out := generateInsights(r)
	assert.Equal(t, 0.0, out.ExpenseRatioPercent)
	assert.Empty(t, out.Alerts)
}

func TestGenerateInsights_RulesAreOrderStable(t *testing.T) {
	r := healthyReport()
	r.Withdrawals.Total = 500
	r.ExtraExpenses.OutOfPocketTotal = 10
	r.PayableTotals.Overdue = 1

	out := generateInsights(r)

	// Ratio alert, out-of-pocket alert, overdue alert, in rule order.
	assert.Len(t, out.Alerts, 3)
	assert.Contains(t, out.Alerts[0], "%")
	assert.Contains(t, out.Alerts[1], "dinheiro próprio")
	assert.Contains(t, out.Alerts[2], "vencidas")
}
