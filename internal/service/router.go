package service

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mmynk/webform/internal/auth"
	"github.com/mmynk/webform/internal/middleware"
)

// NewRouter wires all routes. The page handler serves the form UI for
// anything that is not an API route; pass nil to disable it (tests do).
func NewRouter(form *FormService, authSvc *AuthService, jwtManager *auth.JWTManager, page http.Handler) *mux.Router {
	r := mux.NewRouter()

	// Metrics runs per matched route so the path label is the route template.
	r.Use(middleware.Metrics)

	r.HandleFunc("/api/form", form.HandleSubmit).Methods("POST")
	r.HandleFunc("/api/form/{id}", form.HandleGet).Methods("GET")
	r.Handle("/api/submissions",
		middleware.RequireAuth(jwtManager)(http.HandlerFunc(form.HandleList)),
	).Methods("GET")

	r.HandleFunc("/api/auth/register", authSvc.HandleRegister).Methods("POST")
	r.HandleFunc("/api/auth/login", authSvc.HandleLogin).Methods("POST")

	r.HandleFunc("/healthz", form.HandleHealth).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	if page != nil {
		r.PathPrefix("/").Handler(page).Methods("GET")
	}

	return r
}
