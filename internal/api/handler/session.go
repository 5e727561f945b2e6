package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/HyunseokSon/Addicton-sub000/internal/api/request"
	"github.com/HyunseokSon/Addicton-sub000/internal/api/response"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/admin"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/roster"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/session"
)

// SessionHandler handles session, audit and admin endpoints
type SessionHandler struct {
	session *session.Controller
	roster  *roster.Controller
	audit   *audit.Recorder
	admin   *admin.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session *session.Controller, roster *roster.Controller, audit *audit.Recorder, admin *admin.Service) *SessionHandler {
	return &SessionHandler{
		session: session,
		roster:  roster,
		audit:   audit,
		admin:   admin,
	}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	queued, running := 0, 0
	for _, t := range h.session.Teams() {
		switch t.State {
		case model.TeamStateQueued:
			queued++
		case model.TeamStatePlaying:
			running++
		}
	}

	response.JSON(w, http.StatusOK, response.Session{
		Settings:     response.SettingsFromModel(h.session.Settings()),
		PlayerCount:  len(h.roster.List()),
		QueuedTeams:  queued,
		GamesRunning: running,
	})
}

// UpdateSettings handles PUT /api/v1/session/settings
func (h *SessionHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	duration := time.Duration(req.GameDurationMinutes) * time.Minute
	if duration == 0 {
		duration = h.session.Settings().GameDuration
	}

	settings, err := h.session.UpdateSettings(r.Context(), req.TeamSize, req.CourtCount, duration)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SettingsFromModel(settings))
}

// Reset handles POST /api/v1/session/reset
func (h *SessionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.session.ResetSession(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Audit handles GET /api/v1/audit
func (h *SessionHandler) Audit(w http.ResponseWriter, r *http.Request) {
	entries, err := h.audit.Log(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.AuditLogFromModel(entries))
}

// VerifyAdmin handles POST /api/v1/admin/verify. The admin gate
// middleware has already checked the key by the time this runs.
func (h *SessionHandler) VerifyAdmin(w http.ResponseWriter, r *http.Request) {
	response.NoContent(w)
}

// SetPassword handles PUT /api/v1/admin/password
func (h *SessionHandler) SetPassword(w http.ResponseWriter, r *http.Request) {
	var req request.SetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.Password == "" {
		WriteError(w, NewInvalidRequestError("password is required"))
		return
	}

	if err := h.admin.SetPassword(r.Context(), req.Password); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
