package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"fintrack-server/src/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ClearCache drops the caller's cached dashboard summaries.
func ClearCache(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, pool)
		if err != nil {
			log.Printf("ERROR: Failed to provision user: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		db.ClearUserSummaryCaches(user.ID)

		log.Printf("INFO: Cleared summary caches for user %d", user.ID)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"message": "cache cleared"})
	}
}
