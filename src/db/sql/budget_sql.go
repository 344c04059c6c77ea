package db

import (
	"context"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// FindBudget returns pgx.ErrNoRows when no budget is set for the year; the
// dashboard treats that as a zero budget, not an error.
func FindBudget(ctx context.Context, pool *pgxpool.Pool, userID, year int) (*models.Budget, error) {
	query := `
		SELECT id, user_id, year, amount, created_at, updated_at
		FROM budgets
		WHERE user_id = $1 AND year = $2
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, userID, year).
		Scan(&b.ID, &b.UserID, &b.Year, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// UpsertBudget writes the annual budget as a single atomic statement keyed by
// the (user_id, year) unique constraint, so concurrent submissions cannot
// produce duplicate rows.
func UpsertBudget(ctx context.Context, pool *pgxpool.Pool, budget *models.Budget) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (user_id, year, amount)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, year) DO UPDATE
		SET amount = EXCLUDED.amount, updated_at = NOW()
		RETURNING id, user_id, year, amount, created_at, updated_at
	`
	var b models.Budget
	err := pool.QueryRow(ctx, query, budget.UserID, budget.Year, budget.Amount).
		Scan(&b.ID, &b.UserID, &b.Year, &b.Amount, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}
