package report

import (
	"sort"
	"strings"

	"github.com/de-tools/scoop-report/pkg/models/domain"
	"github.com/de-tools/scoop-report/pkg/services/normalize"
	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

const topProductsLimit = 10

// aggregateProducts ranks products by total quantity sold and keeps the
// top 10. Ties preserve the order products first appear in the sheet.
func aggregateProducts(rows []workbook.Row) []domain.ProductRank {
	sums := make(map[string]float64)
	var order []string

	for _, row := range rows {
		name := strings.TrimSpace(row.Get(workbook.ColProduct))
		if name == "" {
			continue
		}
		if _, seen := sums[name]; !seen {
			order = append(order, name)
		}
		sums[name] += normalize.Amount(row.Get(workbook.ColQuantity))
	}

	ranking := make([]domain.ProductRank, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, domain.ProductRank{
			Name:     name,
			Quantity: int(sums[name]),
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Quantity > ranking[j].Quantity
	})

	if len(ranking) > topProductsLimit {
		ranking = ranking[:topProductsLimit]
	}
	return ranking
}
