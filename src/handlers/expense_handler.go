package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"fintrack-server/src/db"
	sqldb "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

func CreateExpense(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, pool)
		if err != nil {
			log.Printf("ERROR: Failed to provision user: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		var req struct {
			Amount      float64   `json:"amount"`
			Date        time.Time `json:"date"`
			Category    string    `json:"category"`
			Description *string   `json:"description"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create expense request body for user %d: %v", user.ID, err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		if !util.ValidateAmount(req.Amount) {
			http.Error(w, "amount must be a positive number", http.StatusBadRequest)
			return
		}
		if !util.ValidateDate(req.Date) {
			http.Error(w, "date is required", http.StatusBadRequest)
			return
		}
		category, err := models.ParseExpenseCategory(req.Category)
		if err != nil {
			http.Error(w, "invalid expense category", http.StatusBadRequest)
			return
		}

		expense := &models.Expense{
			UserID:      user.ID,
			Date:        req.Date,
			Category:    category,
			Amount:      req.Amount,
			Description: req.Description,
		}
		created, err := sqldb.CreateExpense(r.Context(), pool, expense)
		if err != nil {
			log.Printf("ERROR: Failed to create expense for user %d: %v", user.ID, err)
			http.Error(w, "failed to create expense", http.StatusInternalServerError)
			return
		}

		db.DelSummaryCache(db.SummaryCacheKeyForDate(user.ID, created.Date))

		log.Printf("INFO: Created expense id %d for user %d, category %s", created.ID, user.ID, created.Category)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(created)
	}
}

func GetExpenses(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := currentUser(r, pool)
		if err != nil {
			log.Printf("ERROR: Failed to provision user: %v", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		expenses, err := sqldb.GetExpensesForUser(r.Context(), pool, user.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get expenses for user %d: %v", user.ID, err)
			http.Error(w, "failed to get expenses", http.StatusInternalServerError)
			return
		}

		totalsByCategory, err := sqldb.GetExpenseTotalsByCategory(r.Context(), pool, user.ID)
		if err != nil {
			log.Printf("ERROR: Failed to get expense totals for user %d: %v", user.ID, err)
			http.Error(w, "failed to get expenses", http.StatusInternalServerError)
			return
		}

		var total float64
		for _, expense := range expenses {
			total += expense.Amount
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"expenses":          expenses,
			"total":             total,
			"total_by_category": totalsByCategory,
		})
	}
}
