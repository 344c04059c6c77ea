package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"fintrack-server/src/summary"
	"fintrack-server/src/util"

	"github.com/jackc/pgx/v5/pgxpool"
)

func GetDashboard(pool *pgxpool.Pool) http.HandlerFunc {
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

		s, err := summary.Compute(r.Context(), pool, user.ID, year)
		if err != nil {
			log.Printf("ERROR: Failed to compute summary for user %d, year %d: %v", user.ID, year, err)
			http.Error(w, "failed to compute dashboard", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"summary":           s,
			"year_progress_pct": summary.YearProgress(time.Now()),
			"display": map[string]string{
				"total_income":  util.FormatINR(s.TotalIncome),
				"total_expense": util.FormatINR(s.TotalExpense),
				"balance":       util.FormatINR(s.Balance),
				"budget_amount": util.FormatINR(s.BudgetAmount),
			},
		})
	}
}
