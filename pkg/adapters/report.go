package adapters

import (
	"maps"

	"github.com/de-tools/scoop-report/pkg/models/api"
	"github.com/de-tools/scoop-report/pkg/models/domain"
)

func MapPeriodDomainToApi(p domain.Period) api.Period {
	return api.Period{
		Label: p.Label,
		Known: p.Known,
	}
}

func MapDailyAmountDomainToApi(d domain.DailyAmount) api.DailyAmount {
	return api.DailyAmount{Label: d.Label, Amount: d.Amount}
}

func MapOutflowSummaryDomainToApi(s domain.OutflowSummary) api.OutflowSummary {
	res := api.OutflowSummary{
		Total:            s.Total,
		ByCategory:       map[string]float64{},
		OutOfPocketTotal: s.OutOfPocketTotal,
		Items:            make([]api.OutflowItem, 0, len(s.Items)),
	}
	maps.Copy(res.ByCategory, s.ByCategory)
	for _, item := range s.Items {
		res.Items = append(res.Items, api.OutflowItem{
			Date:        item.Date,
			Description: item.Description,
			Category:    item.Category,
			Amount:      item.Amount,
			PaidWith:    item.PaidWith,
			Note:        item.Note,
		})
	}
	return res
}

func MapReportDomainToApi(r *domain.Report) api.Report {
	res := api.Report{
		RunID:            r.RunID,
		GeneratedAt:      r.GeneratedAt,
		Period:           MapPeriodDomainToApi(r.Period),
		RevenueTotal:     r.RevenueTotal,
		DailyRevenue:     make([]api.DailyAmount, 0, len(r.DailyRevenue)),
		BestDay:          MapDailyAmountDomainToApi(r.BestDay),
		CustomerCount:    r.CustomerCount,
		AverageTicket:    r.AverageTicket,
		PaymentBreakdown: make([]api.PaymentSlice, 0, len(r.PaymentBreakdown)),
		TopProducts:      make([]api.ProductRank, 0, len(r.TopProducts)),
		Withdrawals:      MapOutflowSummaryDomainToApi(r.Withdrawals),
		ExtraExpenses:    MapOutflowSummaryDomainToApi(r.ExtraExpenses),
		CashBalance:      r.CashBalance,
		Payables:         make([]api.Payable, 0, len(r.Payables)),
		PayableTotals: api.PayableTotals{
			Upcoming: r.PayableTotals.Upcoming,
			Overdue:  r.PayableTotals.Overdue,
			Paid:     r.PayableTotals.Paid,
		},
		Photos: make([]api.PhotoPair, 0, len(r.Photos)),
		Insights: api.Insights{
			Insights:            r.Insights.Insights,
			Alerts:              r.Insights.Alerts,
			Recommendations:     r.Insights.Recommendations,
			ExpenseRatioPercent: r.Insights.ExpenseRatioPercent,
		},
	}

	for _, d := range r.DailyRevenue {
		res.DailyRevenue = append(res.DailyRevenue, MapDailyAmountDomainToApi(d))
	}
	for _, p := range r.PaymentBreakdown {
		res.PaymentBreakdown = append(res.PaymentBreakdown, api.PaymentSlice{
			Method:  p.Method,
			Amount:  p.Amount,
			Percent: p.Percent,
		})
	}
	for _, p := range r.TopProducts {
		res.TopProducts = append(res.TopProducts, api.ProductRank{Name: p.Name, Quantity: p.Quantity})
	}
	for _, p := range r.Payables {
		res.Payables = append(res.Payables, api.Payable{
			ID:          p.ID,
			Supplier:    p.Supplier,
			Description: p.Description,
			Amount:      p.Amount,
			DueDate:     p.DueDate,
			Status:      string(p.Status),
		})
	}
	for _, p := range r.Photos {
		res.Photos = append(res.Photos, api.PhotoPair{
			Before: p.Before,
			After:  p.After,
			Kind:   string(p.Kind),
			Title:  p.Title,
		})
	}
	return res
}
