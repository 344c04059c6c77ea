package db

import (
	"context"
	"fmt"
	"time"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateIncome(ctx context.Context, pool *pgxpool.Pool, income *models.Income) (*models.Income, error) {
	query := `
		INSERT INTO incomes (user_id, date, category, amount, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, date, category, amount, description, created_at
	`
	return scanIncome(pool.QueryRow(ctx, query,
		income.UserID, income.Date, income.Category.String(), income.Amount, income.Description))
}

func GetIncomesForUser(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.Income, error) {
	query := `
		SELECT id, user_id, date, category, amount, description, created_at
		FROM incomes
		WHERE user_id = $1
		ORDER BY date DESC
	`
	rows, err := pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		income, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, *income)
	}
	return incomes, rows.Err()
}

// GetIncomesForUserYear returns rows inside [Jan 1 of year, Jan 1 of year+1).
func GetIncomesForUserYear(ctx context.Context, pool *pgxpool.Pool, userID, year int) ([]models.Income, error) {
	query := `
		SELECT id, user_id, date, category, amount, description, created_at
		FROM incomes
		WHERE user_id = $1 AND date >= $2 AND date < $3
	`
	start, end := yearWindow(year)
	rows, err := pool.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var incomes []models.Income
	for rows.Next() {
		income, err := scanIncome(rows)
		if err != nil {
			return nil, err
		}
		incomes = append(incomes, *income)
	}
	return incomes, rows.Err()
}

func GetIncomeTotalsByCategory(ctx context.Context, pool *pgxpool.Pool, userID int) ([]models.CategoryTotal, error) {
	query := `
		SELECT category, SUM(amount) AS total
		FROM incomes
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

type rowScanner interface {
	Scan(dest ...any) error
}

// yearWindow returns the aggregation window for a calendar year: start is
// Jan 1 00:00 UTC of the year, end is Jan 1 00:00 UTC of the next year.
// Queries include start and exclude end.
func yearWindow(year int) (start, end time.Time) {
	start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end = time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, end
}

func scanIncome(row rowScanner) (*models.Income, error) {
	var i models.Income
	var category string
	err := row.Scan(&i.ID, &i.UserID, &i.Date, &category, &i.Amount, &i.Description, &i.CreatedAt)
	if err != nil {
		return nil, err
	}
	i.Category, err = models.ParseIncomeCategory(category)
	if err != nil {
		return nil, fmt.Errorf("stored income row %d: %w", i.ID, err)
	}
	return &i, nil
}
