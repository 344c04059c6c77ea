package api

import (
	"net/http"

	"fintrack-server/src/handlers"
	"fintrack-server/src/middleware"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRouter(pool *pgxpool.Pool, allowedOrigins []string, readOnly bool) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.CORSMiddleware(allowedOrigins))
	r.Use(middleware.ReadOnlyMiddleware(readOnly))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// Protected routes
		r.With(middleware.JWTAuthMiddleware).Group(func(r chi.Router) {
			// User
			r.Get("/me", handlers.GetCurrentUser(pool))

			// Transactions
			r.Post("/income", handlers.CreateIncome(pool))
			r.Get("/income", handlers.GetIncome(pool))
			r.Post("/expenses", handlers.CreateExpense(pool))
			r.Get("/expenses", handlers.GetExpenses(pool))

			// Budget
			r.Put("/budget", handlers.SetBudget(pool))
			r.Get("/budget", handlers.GetBudget(pool))

			// Dashboard
			r.Get("/dashboard", handlers.GetDashboard(pool))

			// Cache
			r.Post("/cache/clear", handlers.ClearCache(pool))
		})
	})

	return r
}
