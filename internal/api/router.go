package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/HyunseokSon/Addicton-sub000/internal/api/handler"
	"github.com/HyunseokSon/Addicton-sub000/internal/api/middleware"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/admin"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/matching"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/roster"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	RosterController   *roster.Controller
	MatchingController *matching.Controller
	SessionController  *session.Controller
	AuditRecorder      *audit.Recorder
	AdminService       *admin.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	playerHandler := handler.NewPlayerHandler(cfg.RosterController)
	teamHandler := handler.NewTeamHandler(cfg.MatchingController, cfg.SessionController, cfg.RosterController)
	courtHandler := handler.NewCourtHandler(cfg.SessionController, cfg.RosterController)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController, cfg.RosterController, cfg.AuditRecorder, cfg.AdminService)

	// Create middleware
	adminGate := middleware.AdminGate(cfg.AdminService)
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Roster routes
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/players", playerHandler.RemoveBulk).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}", playerHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players/{id}", playerHandler.Update).Methods(http.MethodPatch)
	api.HandleFunc("/players/{id}", playerHandler.Remove).Methods(http.MethodDelete)
	api.HandleFunc("/players/{id}/state", playerHandler.SetState).Methods(http.MethodPost)

	// Matching and team routes
	api.HandleFunc("/match", teamHandler.AutoMatch).Methods(http.MethodPost)
	api.HandleFunc("/teams", teamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/teams", teamHandler.Form).Methods(http.MethodPost)
	api.HandleFunc("/teams/start-all", teamHandler.StartAll).Methods(http.MethodPost)
	api.HandleFunc("/teams/{id}/start", teamHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/teams/{id}/swap", teamHandler.Swap).Methods(http.MethodPost)
	api.HandleFunc("/teams/{id}/remove-member", teamHandler.RemoveMember).Methods(http.MethodPost)

	// Court routes
	api.HandleFunc("/courts", courtHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/courts/{id}/start", courtHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/courts/{id}/end", courtHandler.End).Methods(http.MethodPost)
	api.HandleFunc("/courts/{id}/pause", courtHandler.Pause).Methods(http.MethodPost)
	api.HandleFunc("/courts/{id}/resume", courtHandler.Resume).Methods(http.MethodPost)

	// Session view (open)
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)

	// Admin-gated routes
	gated := api.NewRoute().Subrouter()
	gated.Use(adminGate)
	gated.HandleFunc("/session/settings", sessionHandler.UpdateSettings).Methods(http.MethodPut)
	gated.HandleFunc("/session/reset", sessionHandler.Reset).Methods(http.MethodPost)
	gated.HandleFunc("/audit", sessionHandler.Audit).Methods(http.MethodGet)
	gated.HandleFunc("/admin/verify", sessionHandler.VerifyAdmin).Methods(http.MethodPost)
	gated.HandleFunc("/admin/password", sessionHandler.SetPassword).Methods(http.MethodPut)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
