package models

import "github.com/shopspring/decimal"

// CategoryBreakdown is one category's share of a month's transactions.
// Categories with no matching transactions never appear in a breakdown.
type CategoryBreakdown struct {
	Name   string          `json:"name"`
	Color  string          `json:"color"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlySummary aggregates both transaction kinds for one calendar month
type MonthlySummary struct {
	Month              string              `json:"month"`
	Year               int                 `json:"year"`
	TotalExpenses      decimal.Decimal     `json:"total_expenses"`
	TotalIncome        decimal.Decimal     `json:"total_income"`
	Balance            decimal.Decimal     `json:"balance"`
	ExpensesByCategory []CategoryBreakdown `json:"expenses_by_category"`
	IncomeByCategory   []CategoryBreakdown `json:"income_by_category"`
}

// MonthlyBucket is a per-(year, month) aggregate as read from the database
type MonthlyBucket struct {
	Year  int
	Month int
	Total decimal.Decimal
}

// MonthlyTotal is one trend entry with the human-readable month name
type MonthlyTotal struct {
	Month  string          `json:"month"`
	Year   int             `json:"year"`
	Amount decimal.Decimal `json:"amount"`
}

// MonthlyTrend holds the most recent monthly totals per kind, oldest first.
// The two sequences are computed independently and may cover different
// month sets.
type MonthlyTrend struct {
	Expenses []MonthlyTotal `json:"expenses"`
	Income   []MonthlyTotal `json:"income"`
}
