package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetUserByExternalID(ctx context.Context, pool *pgxpool.Pool, externalID string) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, external_id, email, name, created_at
		FROM users
		WHERE external_id = $1
	`
	err := pool.QueryRow(ctx, query, externalID).Scan(
		&user.ID,
		&user.ExternalID,
		&user.Email,
		&user.Name,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

// EnsureUser returns the local user for an external identity, creating it on
// first access. Profile hints may be empty: email falls back to a placeholder
// and the name to "User". Two requests racing on a brand-new identity both
// end up with the same row via the unique constraint on external_id.
func EnsureUser(ctx context.Context, pool *pgxpool.Pool, externalID, email, firstName, lastName string) (*models.User, error) {
	user, err := GetUserByExternalID(ctx, pool, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	email = strings.TrimSpace(email)
	if email == "" {
		email = "user@example.com"
	}
	name := strings.TrimSpace(strings.TrimSpace(firstName) + " " + strings.TrimSpace(lastName))
	if name == "" {
		name = "User"
	}

	query := `
		INSERT INTO users (external_id, email, name)
		VALUES ($1, $2, $3)
		ON CONFLICT (external_id) DO NOTHING
		RETURNING id, external_id, email, name, created_at
	`
	var created models.User
	err = pool.QueryRow(ctx, query, externalID, email, name).Scan(
		&created.ID,
		&created.ExternalID,
		&created.Email,
		&created.Name,
		&created.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		// Lost the race to a concurrent first login; fetch the winner's row
		return GetUserByExternalID(ctx, pool, externalID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &created, nil
}
