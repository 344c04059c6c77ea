package db

import (
	"context"
	"fmt"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateExpense(ctx context.Context, pool *pgxpool.Pool, expense *models.Expense) (*models.Expense, error) {
	query := `
		INSERT INTO expenses (user_id, date, category, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, date, category, amount, description, created_at
	`
	return scanExpense(pool.QueryRow(ctx, query,
		expense.UserID, expense.Date, expense.Category.String(), expense.Amount, expense.Description))
}

func GetExpensesForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, date, category, amount, description, created_at
		FROM expenses
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	return expenses, rows.Err()
}

// GetExpensesForUserYear returns rows inside [Jan 1 of year, Jan 1 of year+1).
func GetExpensesForUserYear(ctx context.Context, pool *pgxpool.Pool, userID, year int) ([]models.Expense, error) {
	query := `
		SELECT id, user_id, date, category, amount, description, created_at
		FROM expenses
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`
	start, end := yearWindow(year)
	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, err
		}
		expenses = append(expenses, *expense)
	}
	return expenses, rows.Err()
}

func GetExpenseTotalsByCategory(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total
		FROM expenses
		WHERE user_id = $1
		GROUP BY category
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var t models.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, err
		}
		totals = append(totals, t)
	}
	return totals, rows.Err()
}

func scanExpense(row rowScanner) (*models.Expense, error) {
	var e models.Expense
	var category string
	err := row.Scan(&e.ID, &e.UserID, &e.Date, &category, &e.Amount, &e.Description, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	e.Category, err = models.ParseExpenseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("stored expense row %d: %w", e.ID, err)
	}
	return &e, nil
}
