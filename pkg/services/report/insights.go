package report

import (
	"fmt"

	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
)

const (
	expenseRatioAlertPercent = 15.0
	withdrawalCountAlert     = 5
	lowTicketThreshold       = 20.0
)

// generateInsights applies the fixed threshold rules over an already
// aggregated report. Every input is a defaulted numeric field, so the
// rules run in a stable order and never fail.
func generateInsights(r *domain.Report) domain.Insights {
	var out domain.Insights

	totalOutflows := r.Withdrawals.Total + r.ExtraExpenses.Total
	if r.RevenueTotal > 0 {
		out.ExpenseRatioPercent = normalize.Round2(totalOutflows / r.RevenueTotal * 100)
	}

	if out.ExpenseRatioPercent > expenseRatioAlertPercent {
		out.Alerts = append(out.Alerts, fmt.Sprintf(
			"Saídas de caixa representam %.1f%% do faturamento da semana.", out.ExpenseRatioPercent))
		out.Recommendations = append(out.Recommendations,
			"Revisar sangrias e despesas extras para manter as saídas abaixo de 15% do faturamento.")
	}

	if r.ExtraExpenses.OutOfPocketTotal > 0 {
		out.Alerts = append(out.Alerts, fmt.Sprintf(
			"R$ %.2f em despesas foram pagas com dinheiro próprio.", r.ExtraExpenses.OutOfPocketTotal))
		out.Recommendations = append(out.Recommendations,
			"Reembolsar despesas pagas do próprio bolso e concentrar pagamentos no caixa da loja.")
	}

	if len(r.Withdrawals.Items) > withdrawalCountAlert {
		out.Alerts = append(out.Alerts, fmt.Sprintf(
			"Foram registradas %d sangrias na semana.", len(r.Withdrawals.Items)))
		out.Recommendations = append(out.Recommendations,
			"Consolidar retiradas de caixa em menos operações por semana.")
	}

	if r.AverageTicket < lowTicketThreshold {
		out.Insights = append(out.Insights, fmt.Sprintf(
			"Ticket médio de R$ %.2f está abaixo da meta de R$ %.2f.", r.AverageTicket, lowTicketThreshold))
		out.Recommendations = append(out.Recommendations,
			"Oferecer combos e adicionais para elevar o ticket médio.")
	}

	if r.PayableTotals.Overdue > 0 {
		out.Alerts = append(out.Alerts, fmt.Sprintf(
			"Existem R$ %.2f em contas vencidas.", r.PayableTotals.Overdue))
		out.Recommendations = append(out.Recommendations,
			"Negociar ou quitar as contas vencidas para evitar juros.")
	}

	return out
}
