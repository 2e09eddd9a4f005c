package domain

import "github.com/shopspring/decimal"

// Category is an enumerated ledger category code.
type Category string

const (
	CategoryMonthlyDues       Category = "MONTHLY_DUES"
	CategoryFineLate          Category = "FINE_LATE"
	CategoryFineNoShow        Category = "FINE_NO_SHOW"
	CategoryFineLowAttendance Category = "FINE_LOW_ATTENDANCE"
	CategoryMemberReward      Category = "MEMBER_REWARD"
	CategorySponsorship       Category = "SPONSORSHIP"
	CategoryPitch             Category = "PITCH"
	CategoryWater             Category = "WATER"
	CategoryKit               Category = "KIT"
	CategoryParty             Category = "PARTY"
	CategoryEquipment         Category = "EQUIPMENT"
	CategoryOther             Category = "OTHER"
)

// CategoryInfo describes how a category behaves in the ledger.
type CategoryInfo struct {
	Code           Category          `json:"code"`
	Label          string            `json:"label"`
	Types          []TransactionType `json:"types"`
	RequiresMember bool              `json:"requiresMember"`
	// DefaultAmount is the suggested quick-action amount, if any.
	DefaultAmount *decimal.Decimal `json:"defaultAmount,omitempty"`
}

// Allows reports whether the category may be used with the transaction type.
func (c CategoryInfo) Allows(t TransactionType) bool {
	for _, allowed := range c.Types {
		if allowed == t {
			return true
		}
	}
	return false
}

func amountPtr(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

var (
	incomeOnly  = []TransactionType{TransactionIncome}
	expenseOnly = []TransactionType{TransactionExpense}
	bothTypes   = []TransactionType{TransactionIncome, TransactionExpense}
)

// categoryTable is ordered the way categories are offered to users.
var categoryTable = []CategoryInfo{
	{Code: CategoryMonthlyDues, Label: "Đóng quỹ tháng", Types: incomeOnly, RequiresMember: true},
	{Code: CategoryFineLate, Label: "Phạt đi trễ", Types: incomeOnly, RequiresMember: true, DefaultAmount: amountPtr(20000)},
	{Code: CategoryFineNoShow, Label: "Phạt bỏ trận", Types: incomeOnly, RequiresMember: true, DefaultAmount: amountPtr(50000)},
	{Code: CategoryFineLowAttendance, Label: "Phạt ít đá", Types: incomeOnly, RequiresMember: true, DefaultAmount: amountPtr(30000)},
	{Code: CategoryMemberReward, Label: "Thưởng thành viên", Types: bothTypes, RequiresMember: true, DefaultAmount: amountPtr(50000)},
	{Code: CategorySponsorship, Label: "Tài trợ", Types: incomeOnly},
	{Code: CategoryPitch, Label: "Sân bãi", Types: expenseOnly},
	{Code: CategoryWater, Label: "Nước uống", Types: expenseOnly},
	{Code: CategoryKit, Label: "Trang phục", Types: expenseOnly},
	{Code: CategoryParty, Label: "Liên hoan", Types: expenseOnly},
	{Code: CategoryEquipment, Label: "Dụng cụ", Types: expenseOnly},
	{Code: CategoryOther, Label: "Khác", Types: bothTypes},
}

// Categories returns a copy of the category table.
func Categories() []CategoryInfo {
	out := make([]CategoryInfo, len(categoryTable))
	copy(out, categoryTable)
	return out
}

// LookupCategory finds the table entry for a code.
func LookupCategory(code Category) (CategoryInfo, bool) {
	for _, c := range categoryTable {
		if c.Code == code {
			return c, true
		}
	}
	return CategoryInfo{}, false
}

// Label returns the display label, or the raw code when unknown.
func (c Category) Label() string {
	if info, ok := LookupCategory(c); ok {
		return info.Label
	}
	return string(c)
}
