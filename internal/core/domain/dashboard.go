package domain

import "github.com/shopspring/decimal"

// AttendanceEntry counts completed matches a member played in.
type AttendanceEntry struct {
	MemberID      string `json:"memberId"`
	MemberName    string `json:"memberName"`
	MatchesPlayed int    `json:"matchesPlayed"`
}

// CategoryTotal is an amount attributed to a ledger category.
type CategoryTotal struct {
	Category Category        `json:"category"`
	Label    string          `json:"label"`
	Amount   decimal.Decimal `json:"amount"`
}

// Dashboard is the all-time overview of the club.
type Dashboard struct {
	TotalIncome        decimal.Decimal   `json:"totalIncome"`
	TotalExpense       decimal.Decimal   `json:"totalExpense"`
	Balance            decimal.Decimal   `json:"balance"`
	ActiveMemberCount  int               `json:"activeMemberCount"`
	CompletedMatches   int               `json:"completedMatches"`
	MatchExpenses      decimal.Decimal   `json:"matchExpenses"`
	ExpenseByCategory  []CategoryTotal   `json:"expenseByCategory"`
	TopAttendance      []AttendanceEntry `json:"topAttendance"`
	RecentTransactions []Transaction     `json:"recentTransactions"`
}

// MonthlyFlow is the income and expense of one month.
type MonthlyFlow struct {
	Month   string          `json:"month"`
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}

// FinancialOverview backs the financial reports view.
type FinancialOverview struct {
	Months               []MonthlyFlow   `json:"months"`
	ExpenseDistribution  []CategoryTotal `json:"expenseDistribution"`
	Year                 int             `json:"year"`
	YearIncome           decimal.Decimal `json:"yearIncome"`
	YearExpense          decimal.Decimal `json:"yearExpense"`
	YearBalance          decimal.Decimal `json:"yearBalance"`
	YearTransactionCount int             `json:"yearTransactionCount"`
}

// MatchStats summarises the match log and what it cost.
type MatchStats struct {
	CompletedCount      int             `json:"completedCount"`
	InternalCount       int             `json:"internalCount"`
	ExternalCount       int             `json:"externalCount"`
	TotalMatchExpense   decimal.Decimal `json:"totalMatchExpense"`
	AverageCostPerMatch decimal.Decimal `json:"averageCostPerMatch"`
	WinCount            int             `json:"winCount"`
	DrawCount           int             `json:"drawCount"`
	LossCount           int             `json:"lossCount"`
}

// FundLine is one member's monthly dues status.
type FundLine struct {
	Member        Member          `json:"member"`
	IsPaid        bool            `json:"isPaid"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	TransactionID *string         `json:"transactionId,omitempty"`
}

// FundStatus is the monthly dues collection for a month.
type FundStatus struct {
	Month          string          `json:"month"`
	Lines          []FundLine      `json:"lines"`
	TotalCollected decimal.Decimal `json:"totalCollected"`
	PaidCount      int             `json:"paidCount"`
	ActiveCount    int             `json:"activeCount"`
}
