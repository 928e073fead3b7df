package render

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/scoop-report/pkg/models/api"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "0,00"},
		{10.5, "10,50"},
		{1234.56, "1.234,56"},
		{1234567.8, "1.234.567,80"},
		{-980.4, "-980,40"},
		{100, "100,00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, FormatBRL(tt.value))
	}
}

func sampleReport() api.Report {
	return api.Report{
		RunID:         "run-1",
		GeneratedAt:   "08/12/2025",
		Period:        api.Period{Label: "01/12/2025 a 07/12/2025", Known: true},
		RevenueTotal:  2800,
		DailyRevenue:  []api.DailyAmount{{Label: "01/12", Amount: 400}},
		BestDay:       api.DailyAmount{Label: "07/12", Amount: 70},
		CustomerCount: 50,
		AverageTicket: 56,
		PaymentBreakdown: []api.PaymentSlice{
			{Method: "PIX", Amount: 1800, Percent: 64.29},
		},
		TopProducts: []api.ProductRank{{Name: "Casquinha", Quantity: 12}},
		ExtraExpenses: api.OutflowSummary{
			Total:            45.9,
			OutOfPocketTotal: 45.9,
		},
		CashBalance: 2554.1,
		Payables: []api.Payable{
			{ID: 1, Supplier: "Gelo Bom", Amount: 320, DueDate: "10/12/2025", Status: "VENCIDO"},
		},
		PayableTotals: api.PayableTotals{Overdue: 320},
		Photos: []api.PhotoPair{
			{Before: "/fotos/reg1-antes.jpg", After: "/fotos/reg1-depois.jpg", Kind: "melhoria", Title: "Reg. reg1"},
		},
		Insights: api.Insights{
			Alerts:              []string{"Existem R$ 320.00 em contas vencidas."},
			ExpenseRatioPercent: 1.64,
		},
	}
}

func TestRendererHTML(t *testing.T) {
	r, err := NewRenderer(Options{WkhtmltopdfPath: "wkhtmltopdf", PhotoDir: t.TempDir()})
	require.NoError(t, err)

	page, err := r.HTML(sampleReport())
	require.NoError(t, err)

	html := string(page)
	assert.Contains(t, html, "R$ 2.800,00")
	assert.Contains(t, html, "01/12/2025 a 07/12/2025")
	assert.Contains(t, html, "Casquinha")
	assert.Contains(t, html, "/fotos/reg1-antes.jpg")
	assert.Contains(t, html, "contas vencidas")
}

func TestRendererHTMLError(t *testing.T) {
	r, err := NewRenderer(Options{WkhtmltopdfPath: "wkhtmltopdf", PhotoDir: t.TempDir()})
	require.NoError(t, err)

	page, err := r.HTMLError("Arquivo não encontrado: consolidated.xlsx")
	require.NoError(t, err)
	assert.Contains(t, string(page), "Arquivo não encontrado")
}

func TestRendererPDF_MissingBinary(t *testing.T) {
	r, err := NewRenderer(Options{WkhtmltopdfPath: "/definitely/not/wkhtmltopdf", PhotoDir: t.TempDir()})
	require.NoError(t, err)

	_, err = r.PDF(context.Background(), sampleReport())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wkhtmltopdf failed")
}

func TestFileURL(t *testing.T) {
	r, err := NewRenderer(Options{WkhtmltopdfPath: "wkhtmltopdf", PhotoDir: "/data/fotos"})
	require.NoError(t, err)

	assert.Equal(t, "file:///data/fotos/reg1-antes.jpg", r.fileURL("/fotos/reg1-antes.jpg"))
	assert.Equal(t, "", r.fileURL(""))
}
