package handlers

import (
	"net/http"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// currentUser provisions and returns the local user for the authenticated
// identity in the request context. First access creates the row.
func currentUser(r *http.Request, pool *pgxpool.Pool) (*models.User, error) {
	externalID, _ := r.Context().Value("external_id").(string)
	email, _ := r.Context().Value("email").(string)
	firstName, _ := r.Context().Value("first_name").(string)
	lastName, _ := r.Context().Value("last_name").(string)
	return db.EnsureUser(r.Context(), pool, externalID, email, firstName, lastName)
}
