package domain

import "time"

// PayableStatus is the uppercased status column of the payables sheet.
type PayableStatus string

const (
	PayableUpcoming PayableStatus = "A VENCER"
	PayableOverdue  PayableStatus = "VENCIDO"
	PayablePaid     PayableStatus = "PAGO"
)

// PhotoKind classifies an improvement-photo group.
type PhotoKind string

const (
	PhotoImprovement PhotoKind = "melhoria"
	PhotoRecord      PhotoKind = "registro"
)

// Period is the reporting date range derived from the daily-sales header.
// Known is false when fewer than two header cells parsed as dates; Label
// then carries the "period unknown" sentinel text.
type Period struct {
	Label string
	Start time.Time
	End   time.Time
	Known bool
}

// DailyAmount is one day of revenue, labeled dd/mm.
type DailyAmount struct {
	Label  string
	Amount float64
}

type PaymentSlice struct {
	Method  string
	Amount  float64
	Percent float64
}

type ProductRank struct {
	Name     string
	Quantity int
}

// OutflowItem is one withdrawal or extra-expense row.
type OutflowItem struct {
	Date        string
	Description string
	Category    string
	Amount      float64
	PaidWith    string
	Note        string
}

// OutflowSummary aggregates one outflow sheet. OutOfPocketTotal is only
// populated for extra expenses paid with the owner's own money.
type OutflowSummary struct {
	Total            float64
	ByCategory       map[string]float64
	OutOfPocketTotal float64
	Items            []OutflowItem
}

type Payable struct {
	ID          int
	Supplier    string
	Description string
	Amount      float64
	DueDate     string
	Status      PayableStatus
}

type PayableTotals struct {
	Upcoming float64
	Overdue  float64
	Paid     float64
}

// PhotoPair holds the before/after refs of an improvement group. A RECORD
// group has only one side populated.
type PhotoPair struct {
	Before string
	After  string
	Kind   PhotoKind
	Title  string
}

// Insights carries the threshold-rule outputs. ExpenseRatioPercent is
// (withdrawals + extra expenses) over revenue, in percent.
type Insights struct {
	Insights            []string
	Alerts              []string
	Recommendations     []string
	ExpenseRatioPercent float64
}

// Report is the full weekly snapshot, recomputed from the workbook on every
// run. Monetary fields are rounded to 2 decimals at construction; consumers
// never round again.
type Report struct {
	RunID       string
	GeneratedAt string

	Period        Period
	RevenueTotal  float64
	DailyRevenue  []DailyAmount
	BestDay       DailyAmount
	CustomerCount int
	AverageTicket float64

	PaymentBreakdown []PaymentSlice
	TopProducts      []ProductRank

	Withdrawals   OutflowSummary
	ExtraExpenses OutflowSummary
	CashBalance   float64

	Payables      []Payable
	PayableTotals PayableTotals

	Photos []PhotoPair

	Insights Insights
}
