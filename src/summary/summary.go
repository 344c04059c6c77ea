package summary

import (
	"context"

	"fintrack-server/src/db"
	sqldb "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

// Compute aggregates one user's finances over the calendar year window
// [Jan 1 of year, Jan 1 of year+1). It is read-only; a user with no rows
// yields an all-zero summary. Results are cached per (user, year) and the
// cache entry is dropped whenever that user writes an income, expense, or
// budget for the year.
func Compute(ctx context.Context, pool *pgxpool.Pool, userID, year int) (models.Summary, error) {
	cacheKey := db.SummaryCacheKey(userID, year)
	if cached, found := db.Cache.Get(cacheKey); found {
		if s, ok := cached.(models.Summary); ok {
			return s, nil
		}
	}

	var (
		incomes      []models.Income
		expenses     []models.Expense
		budgetAmount float64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		incomes, err = sqldb.GetIncomesForUserYear(gctx, pool, userID, year)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = sqldb.GetExpensesForUserYear(gctx, pool, userID, year)
		return err
	})
	g.Go(func() error {
		budget, err := sqldb.FindBudget(gctx, pool, userID, year)
		if err == pgx.ErrNoRows {
			// No budget set for the year; treated as zero
			return nil
		}
		if err != nil {
			return err
		}
		budgetAmount = budget.Amount
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.Summary{}, err
	}

	s := Reduce(year, incomes, expenses, budgetAmount)
	db.SetSummaryCache(cacheKey, s)
	return s, nil
}

// Reduce folds the year's transactions into totals, balance, budget
// utilization, and per-category sums. Pure function of its inputs.
func Reduce(year int, incomes []models.Income, expenses []models.Expense, budgetAmount float64) models.Summary {
	var incomeTotals models.IncomeCategoryTotals
	var expenseTotals models.ExpenseCategoryTotals

	var totalIncome, totalExpense float64
	for _, income := range incomes {
		totalIncome += income.Amount
		incomeTotals.Add(income.Category, income.Amount)
	}
	for _, expense := range expenses {
		totalExpense += expense.Amount
		expenseTotals.Add(expense.Category, expense.Amount)
	}

	// A zero budget yields 0% used, never NaN
	budgetUsedPct := 0.0
	if budgetAmount > 0 {
		budgetUsedPct = totalExpense / budgetAmount * 100
	}

	return models.Summary{
		Year:              year,
		TotalIncome:       totalIncome,
		TotalExpense:      totalExpense,
		Balance:           totalIncome - totalExpense,
		BudgetAmount:      budgetAmount,
		BudgetUsedPct:     budgetUsedPct,
		IncomeByCategory:  incomeTotals.ToMap(),
		ExpenseByCategory: expenseTotals.ToMap(),
	}
}
