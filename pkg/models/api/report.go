package api

type Period struct {
	Label string `json:"label"`
	Known bool   `json:"known"`
}

type DailyAmount struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

type PaymentSlice struct {
	Method  string  `json:"method"`
	Amount  float64 `json:"amount"`
	Percent float64 `json:"percent"`
}

type ProductRank struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type OutflowItem struct {
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	PaidWith    string  `json:"paid_with"`
	Note        string  `json:"note,omitempty"`
}

type OutflowSummary struct {
	Total            float64            `json:"total"`
	ByCategory       map[string]float64 `json:"by_category"`
	OutOfPocketTotal float64            `json:"out_of_pocket_total,omitempty"`
	Items            []OutflowItem      `json:"items"`
}

type Payable struct {
	ID          int     `json:"id"`
	Supplier    string  `json:"supplier"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	DueDate     string  `json:"due_date"`
	Status      string  `json:"status"`
}

type PayableTotals struct {
	Upcoming float64 `json:"upcoming"`
	Overdue  float64 `json:"overdue"`
	Paid     float64 `json:"paid"`
}

type PhotoPair struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
}

type Insights struct {
	Insights            []string `json:"insights"`
	Alerts              []string `json:"alerts"`
	Recommendations     []string `json:"recommendations"`
	ExpenseRatioPercent float64  `json:"expense_ratio_percent"`
}

type Report struct {
	RunID       string `json:"run_id"`
	GeneratedAt string `json:"generated_at"`

	Period        Period        `json:"period"`
	RevenueTotal  float64       `json:"revenue_total"`
	DailyRevenue  []DailyAmount `json:"daily_revenue"`
	BestDay       DailyAmount   `json:"best_day"`
	CustomerCount int           `json:"customer_count"`
	AverageTicket float64       `json:"average_ticket"`

	PaymentBreakdown []PaymentSlice `json:"payment_breakdown"`
	TopProducts      []ProductRank  `json:"top_products"`

	Withdrawals   OutflowSummary `json:"withdrawals"`
	ExtraExpenses OutflowSummary `json:"extra_expenses"`
	CashBalance   float64        `json:"cash_balance"`

	Payables      []Payable     `json:"payables"`
	PayableTotals PayableTotals `json:"payable_totals"`

	Photos []PhotoPair `json:"photos"`

	Insights Insights `json:"insights"`
}

// Error is the payload returned when the pipeline could not produce a
// report; Message carries the structural-failure diagnostic.
type Error struct {
	Message string `json:"error"`
}
