package models

// Summary is the dashboard aggregation for one user and one calendar year.
// Category maps only contain categories that actually have transactions.
type Summary struct {
	Year              int                `json:"year"`
	TotalIncome       float64            `json:"total_income"`
	TotalExpense      float64            `json:"total_expense"`
	Balance           float64            `json:"balance"`
	BudgetAmount      float64            `json:"budget_amount"`
	BudgetUsedPct     float64            `json:"budget_used_pct"`
	IncomeByCategory  map[string]float64 `json:"income_by_category"`
	ExpenseByCategory map[string]float64 `json:"expense_by_category"`
}

// CategoryTotal is one row of a GROUP BY category query.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
