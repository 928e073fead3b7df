package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
	"github.com/de-tools/scoop-report/pkg/store/photos"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

// Generator produces a complete weekly report snapshot. Every call re-reads
// the workbook and recomputes everything; there is no cached state.
type Generator interface {
	Generate(ctx context.Context) (*domain.Report, error)
}

type Options struct {
	Workbook       workbook.Settings
	Photos         photos.Source
	PhotoURLPrefix string
	// Now supplies the clock used for the payables month filter and the
	// generated-at stamp. Defaults to time.Now.
	Now func() time.Time
}

type generator struct {
	opts Options
}

func NewGenerator(opts Options) Generator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &generator{opts: opts}
}

// Generate runs the two-phase pipeline: per-sheet aggregation first, then
// the insight rules over the merged snapshot. Cell-level junk degrades to
// zero values; structural problems (missing file, sheet or column) abort
// the run with a diagnostic error the caller is expected to surface.
func (g *generator) Generate(ctx context.Context) (*domain.Report, error) {
	logger := zerolog.Ctx(ctx)
	now := g.opts.Now()

	wb, err := workbook.Open(g.opts.Workbook)
	if err != nil {
		return nil, fmt.Errorf("report source unavailable: %w", err)
	}

	sales := aggregateSales(wb.DailySales)
	customers := countCustomers(wb.Tickets)
	withdrawals := aggregateOutflows(wb.Withdrawals, withdrawalSchema, false)
	expenses := aggregateOutflows(wb.Expenses, expenseSchema, true)
	payables, payableTotals := aggregatePayables(ctx, wb.Payables, now)

	photoNames, err := g.opts.Photos.List()
	if err != nil {
		return nil, fmt.Errorf("photo source unavailable: %w", err)
	}

	r := &domain.Report{
		RunID:       uuid.NewString(),
		GeneratedAt: now.Format("02/01/2006"),

		Period:        extractPeriod(ctx, wb.DailySales),
		RevenueTotal:  sales.revenueTotal,
		DailyRevenue:  sales.daily,
		BestDay:       sales.bestDay,
		CustomerCount: customers,
		AverageTicket: averageTicket(sales.revenueTotal, customers),

		PaymentBreakdown: aggregatePayments(wb.Payments),
		TopProducts:      aggregateProducts(wb.Products),

		Withdrawals:   withdrawals,
		ExtraExpenses: expenses,
		CashBalance:   normalize.Round2(sales.revenueTotal - (withdrawals.Total + expenses.Total)),

		Payables:      payables,
		PayableTotals: payableTotals,

		Photos: pairPhotos(photoNames, g.opts.PhotoURLPrefix),
	}

	r.Insights = generateInsights(r)

	logger.Info().
		Str("run_id", r.RunID).
		Str("period", r.Period.Label).
		Float64("revenue_total", r.RevenueTotal).
		Int("payables", len(r.Payables)).
		Msg("report generated")

	return r, nil
}
