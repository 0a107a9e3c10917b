package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/agendasalud/backend/handlers"
	"github.com/agendasalud/backend/middleware"
	"github.com/agendasalud/backend/realtime"
)

// All /api traffic shares one per-IP budget.
const (
	rateLimit       = 100
	rateLimitWindow = 15 * time.Minute
)

// RegisterRoutes sets up all application routes
func RegisterRoutes(hub *realtime.Hub) http.Handler {
	r := mux.NewRouter()

	limiter := middleware.NewRateLimiter(rateLimit, rateLimitWindow)
	actividades := handlers.NewActividadHandler(hub)

	// =====================================================
	// Realtime channel (token checked at connect time)
	// =====================================================
	r.HandleFunc("/ws", handlers.ServeWS(hub)).Methods("GET")

	// =====================================================
	// Public API routes (rate limited, no authentication)
	// =====================================================
	api := r.PathPrefix("/api").Subrouter()
	api.Use(limiter.Middleware)
	api.HandleFunc("/auth/login", handlers.Login).Methods("POST")

	// =====================================================
	// Protected API routes (require JWT authentication)
	// =====================================================
	protected := api.NewRoute().Subrouter()
	protected.Use(middleware.JWTMiddleware)

	protected.HandleFunc("/auth/register", handlers.Register).Methods("POST")
	protected.HandleFunc("/auth/me", handlers.GetCurrentUser).Methods("GET")
	protected.HandleFunc("/auth/change-password", handlers.ChangePassword).Methods("POST")

	protected.HandleFunc("/centros", handlers.GetCentros).Methods("GET")

	protected.HandleFunc("/actividades", actividades.List).Methods("GET")
	protected.HandleFunc("/actividades", actividades.Create).Methods("POST")
	protected.HandleFunc("/actividades/export", actividades.Export).Methods("GET")
	protected.HandleFunc("/actividades/{id}", actividades.Update).Methods("PUT")
	protected.HandleFunc("/actividades/{id}", actividades.Delete).Methods("DELETE")

	protected.HandleFunc("/hojas-ruta", handlers.CreateHojaRuta).Methods("POST")
	protected.HandleFunc("/hojas-ruta/{actividad_id}", handlers.GetLatestHojaRuta).Methods("GET")

	return r
}
