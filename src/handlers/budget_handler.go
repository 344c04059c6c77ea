package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"fintrack-server/src/db"
	sqldb "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func SetBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, pool)
		if err != nil {
			log.Printf("ERROR: Failed to provision user: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var req struct {
			Year   int     `json:"year"`
			Amount float64 `json:"amount"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode set budget request body for user %d: %v", user.ID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateYear(req.Year) {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		if !util.ValidateAmount(req.Amount) {
			http.Error(w, "amount must be a positive number", http.StatusBadRequest)
			return
		}

		budget := &models.Budget{
			UserID: user.ID,
			Year:   req.Year,
			Amount: req.Amount,
		}
		saved, err := sqldb.UpsertBudget(r.Context(), pool, budget)
		if err != nil {
			log.Printf("ERROR: Failed to upsert budget for user %d, year %d: %v", user.ID, req.Year, err)
			http.Error(w, "failed to set budget", http.StatusInternalServerError)
			return
		}

		db.DelSummaryCache(db.SummaryCacheKey(user.ID, saved.Year))

		log.Printf("INFO: Set budget id %d for user %d, year %d", saved.ID, user.ID, saved.Year)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(saved)
	}
}

func GetBudget(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, pool)
		if err != nil {
			log.Printf("ERROR: Failed to provision user: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		year := time.Now().Year()
		if yearStr := r.URL.Query().Get("year"); yearStr != "" {
			year, err = strconv.Atoi(yearStr)
			if err != nil || !util.ValidateYear(year) {
				http.Error(w, "invalid year", http.StatusBadRequest)
				return
			}
		}

		budget, err := sqldb.FindBudget(r.Context(), pool, user.ID, year)
		if err == pgx.ErrNoRows {
			http.Error(w, "budget not found", http.StatusNotFound)
			return
		}
		if err != nil {
			log.Printf("ERROR: Failed to get budget for user %d, year %d: %v", user.ID, year, err)
			http.Error(w, "failed to get budget", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(budget)
	}
}
