package report

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

const periodUnknownLabel = "Período não identificado"

// extractPeriod derives the reporting range from the date header of the
// daily-sales grid. Fewer than two parseable dates yields the unknown
// sentinel; the reason is logged, never returned.
func extractPeriod(ctx context.Context, grid workbook.Grid) domain.Period {
	logger := zerolog.Ctx(ctx)

	var dates []time.Time
	for col := 0; col < daysPerWeek; col++ {
		d := normalize.ParseDate(grid.Cell(dateRowIndex, col))
		if d.Valid {
			dates = append(dates, d.Time)
		}
	}

	if len(dates) < 2 {
		logger.Warn().
			Int("parsed_dates", len(dates)).
			Msg("daily sales header has too few parseable dates, period unknown")
		return domain.Period{Label: periodUnknownLabel}
	}

	start, end := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d.Before(start) {
			start = d
		}
		if d.After(end) {
			end = d
		}
	}

	return domain.Period{
		Label: fmt.Sprintf("%s a %s", start.Format("02/01/2006"), end.Format("02/01/2006")),
		Start: start,
		End:   end,
		Known: true,
	}
}
