package api

import (
	"database/sql"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	productsHandler := &ProductsHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Session management.
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))

	// Inventory records. Literal segments (stats, export) take precedence
	// over the {id} patterns.
	mux.Handle("GET /api/inventory", authMW(http.HandlerFunc(productsHandler.List)))
	mux.Handle("POST /api/inventory", authMW(http.HandlerFunc(productsHandler.Create)))
	mux.Handle("GET /api/inventory/stats", authMW(http.HandlerFunc(productsHandler.Stats)))
	mux.Handle("GET /api/inventory/export/{format}", authMW(http.HandlerFunc(productsHandler.Export)))
	mux.Handle("GET /api/inventory/{id}", authMW(http.HandlerFunc(productsHandler.Get)))
	mux.Handle("PUT /api/inventory/{id}", authMW(http.HandlerFunc(productsHandler.Update)))
	mux.Handle("DELETE /api/inventory/{id}", authMW(http.HandlerFunc(productsHandler.Delete)))
	mux.Handle("PUT /api/inventory/{id}/photo", authMW(http.HandlerFunc(productsHandler.UploadPhoto)))
	mux.Handle("GET /api/inventory/{id}/photo", authMW(http.HandlerFunc(productsHandler.GetPhoto)))

	// Operational.
	mux.Handle("GET /metrics", promhttp.Handler())

	return mux
}
