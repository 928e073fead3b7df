package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/scoop-report/pkg/store/workbook"
)

func productRows(pairs ...[2]string) []workbook.Row {
	header := []string{workbook.ColProduct, workbook.ColQuantity}
	rows := make([]workbook.Row, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, workbook.NewRow(header, []string{p[0], p[1]}))
	}
	return rows
}

func TestAggregateProducts(t *testing.T) {
	ranking := aggregateProducts(productRows(
		[2]string{"Casquinha", "5"},
		[2]string{"Milkshake", "12"},
		[2]string{"Casquinha", "7"},
		[2]string{"Açaí", "junk"},
	))

	require.Len(t, ranking, 3)
	assert.Equal(t, "Milkshake", ranking[0].Name)
	assert.Equal(t, 12, ranking[0].Quantity)
	assert.Equal(t, "Casquinha", ranking[1].Name)
	assert.Equal(t, 12, ranking[1].Quantity)
	assert.Equal(t, "Açaí", ranking[2].Name)
	assert.Equal(t, 0, ranking[2].Quantity)
}

func TestAggregateProducts_TopTenSortedDescending(t *testing.T) {
	var pairs [][2]string
	for i := 1; i <= 15; i++ {
		pairs = append(pairs, [2]string{fmt.Sprintf("Sabor %02d", i), fmt.Sprintf("%d", i)})
	}
	ranking := aggregateProducts(productRows(pairs...))

	require.Len(t, ranking, topProductsLimit)
	for i := 1; i < len(ranking); i++ {
		assert.GreaterOrEqual(t, ranking[i-1].Quantity, ranking[i].Quantity)
	}
	assert.Equal(t, "Sabor 15", ranking[0].Name)
}

func TestAggregateProducts_TieKeepsFirstEncounter(t *testing.T) {
	ranking := aggregateProducts(productRows(
		[2]string{"Picolé", "4"},
		[2]string{"Sundae", "4"},
	))

	require.Len(t, ranking, 2)
	assert.Equal(t, "Picolé", ranking[0].Name)
	assert.Equal(t, "Sundae", ranking[1].Name)
}

func TestAggregateProducts_BlankNamesSkipped(t *testing.T) {
	ranking := aggregateProducts(productRows(
		[2]string{"", "9"},
		[2]string{"Casquinha", "1"},
	))

	require.Len(t, ranking, 1)
	assert.Equal(t, "Casquinha", ranking[0].Name)
}
