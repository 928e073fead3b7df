package workbook

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the consolidated workbook. All of them are required;
// a missing sheet is a structural failure that aborts the run.
const (
	SheetDailySales  = "VENDAS_DIARIAS"
	SheetTickets     = "TICKET_MEDIO"
	SheetPayments    = "FORMAS_PAGAMENTO"
	SheetProducts    = "PRODUTOS_VENDIDOS"
	SheetPayables    = "REGISTRO DE CONTAS"
	SheetWithdrawals = "SANGRIA"
	SheetExpenses    = "DESPESAS EXTRAS"
)

// Column labels the aggregators read. Validated once at load time; data
// cells stay lenient (missing cell reads as "").
const (
	ColPeople = "Pessoas Atendidas"

	ColPaymentMethod = "Forma de Pagamento"
	ColPaymentAmount = "Valor Pago (R$)"

	ColProduct  = "Produto"
	ColQuantity = "Quantidade"

	ColPayableID       = "ID"
	ColPayableSupplier = "FORNECEDOR"
	ColPayableDesc     = "DESCRIÇÃO"
	ColPayableAmount   = "VALOR"
	ColPayableDueDate  = "DATA VENCIMENTO"
	ColPayableStatus   = "STATUS"

	ColWithdrawalDate   = "Data"
	ColWithdrawalReason = "Motivo"
	ColWithdrawalAmount = "Valor R$"
	ColWithdrawalNote   = "Observações"

	ColExpenseDate     = "Data"
	ColExpenseDesc     = "Descrição"
	ColExpenseCategory = "Categoria"
	ColExpenseAmount   = "Valor (R$)"
	ColExpensePaidWith = "Pago com"
	ColExpenseNote     = "Observação"
)

// The payables sheet carries 2 metadata rows above its header.
const payablesHeaderOffset = 2

type Settings struct {
	Path string
}

// Row is one data row of a headered sheet. Lookup is by trimmed column
// label; absent cells read as the empty string.
type Row struct {
	columns map[string]int
	cells   []string
}

// NewRow builds a row over an explicit header. Exposed for aggregator
// tests, which feed rows directly instead of going through a file.
func NewRow(columns []string, cells []string) Row {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[strings.TrimSpace(c)] = i
	}
	return Row{columns: idx, cells: cells}
}

func (r Row) Get(column string) string {
	i, ok := r.columns[column]
	if !ok || i >= len(r.cells) {
		return ""
	}
	return r.cells[i]
}

// Grid is a header-less sheet kept as raw text cells.
type Grid [][]string

// Cell returns the cell at (row, col), or "" when the grid is ragged there.
func (g Grid) Cell(row, col int) string {
	if row >= len(g) || col >= len(g[row]) {
		return ""
	}
	return g[row][col]
}

// Workbook is the fully loaded source file. Everything is read and
// schema-checked eagerly in Open, so a Workbook in hand means the
// structure was sound; only cell contents may still be junk.
type Workbook struct {
	DailySales  Grid
	Tickets     []Row
	Payments    []Row
	Products    []Row
	Payables    []Row
	Withdrawals []Row
	Expenses    []Row
}

// Open reads and validates the workbook at settings.Path.
func Open(settings Settings) (*Workbook, error) {
	f, err := excelize.OpenFile(settings.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %q: %w", settings.Path, err)
	}
	defer func() { _ = f.Close() }()

	wb := &Workbook{}

	wb.DailySales, err = loadGrid(f, SheetDailySales)
	if err != nil {
		return nil, err
	}

	tables := []struct {
		sheet        string
		headerOffset int
		required     []string
		dst          *[]Row
	}{
		{SheetTickets, 0, []string{ColPeople}, &wb.Tickets},
		{SheetPayments, 0, []string{ColPaymentMethod, ColPaymentAmount}, &wb.Payments},
		{SheetProducts, 0, []string{ColProduct, ColQuantity}, &wb.Products},
		{SheetPayables, payablesHeaderOffset, []string{
			ColPayableID, ColPayableSupplier, ColPayableDesc,
			ColPayableAmount, ColPayableDueDate, ColPayableStatus,
		}, &wb.Payables},
		{SheetWithdrawals, 0, []string{
			ColWithdrawalDate, ColWithdrawalReason, ColWithdrawalAmount,
		}, &wb.Withdrawals},
		{SheetExpenses, 0, []string{
			ColExpenseDate, ColExpenseDesc, ColExpenseCategory, ColExpenseAmount,
		}, &wb.Expenses},
	}

	for _, tbl := range tables {
		*tbl.dst, err = loadTable(f, tbl.sheet, tbl.headerOffset, tbl.required)
		if err != nil {
			return nil, err
		}
	}

	return wb, nil
}

func loadGrid(f *excelize.File, sheet string) (Grid, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("required sheet %q is missing: %w", sheet, err)
	}
	return rows, nil
}

func loadTable(f *excelize.File, sheet string, headerOffset int, required []string) ([]Row, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("required sheet %q is missing: %w", sheet, err)
	}
	if len(rows) <= headerOffset {
		return nil, fmt.Errorf("sheet %q has no header row (expected at row %d)", sheet, headerOffset+1)
	}

	header := rows[headerOffset]
	idx := make(map[string]int, len(header))
	for i, c := range header {
		idx[strings.TrimSpace(c)] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("sheet %q is missing required column %q", sheet, col)
		}
	}

	var out []Row
	for _, cells := range rows[headerOffset+1:] {
		out = append(out, Row{columns: idx, cells: cells})
	}
	return out, nil
}
