package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/HyunseokSon/Addicton-sub000/internal/api/request"
	"github.com/HyunseokSon/Addicton-sub000/internal/api/response"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/roster"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/session"
)

// CourtHandler handles court endpoints
type CourtHandler struct {
	session *session.Controller
	roster  *roster.Controller
}

// NewCourtHandler creates a new court handler
func NewCourtHandler(session *session.Controller, roster *roster.Controller) *CourtHandler {
	return &CourtHandler{
		session: session,
		roster:  roster,
	}
}

// List handles GET /api/v1/courts
func (h *CourtHandler) List(w http.ResponseWriter, r *http.Request) {
	courts := h.session.Courts()
	out := make([]response.Court, len(courts))
	for i, court := range courts {
		elapsed, _ := h.session.Elapsed(court.ID)
		out[i] = response.CourtFromModel(court, elapsed)
	}
	response.JSON(w, http.StatusOK, response.CourtList{Courts: out})
}

// Start handles POST /api/v1/courts/{id}/start. The body names the
// queued team to place on this court.
func (h *CourtHandler) Start(w http.ResponseWriter, r *http.Request) {
	courtID := model.CourtID(mux.Vars(r)["id"])

	var req request.StartOnCourtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}
	if req.TeamID == "" {
		WriteError(w, NewInvalidRequestError("team_id is required"))
		return
	}

	team, err := h.session.StartGame(r.Context(), model.TeamID(req.TeamID), courtID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team, rosterByID(h.roster)))
}

// End handles POST /api/v1/courts/{id}/end. Responds with a summary of
// the finished team.
func (h *CourtHandler) End(w http.ResponseWriter, r *http.Request) {
	courtID := model.CourtID(mux.Vars(r)["id"])

	team, err := h.session.EndGame(r.Context(), courtID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team, rosterByID(h.roster)))
}

// Pause handles POST /api/v1/courts/{id}/pause
func (h *CourtHandler) Pause(w http.ResponseWriter, r *http.Request) {
	courtID := model.CourtID(mux.Vars(r)["id"])

	if err := h.session.PauseCourt(r.Context(), courtID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Resume handles POST /api/v1/courts/{id}/resume
func (h *CourtHandler) Resume(w http.ResponseWriter, r *http.Request) {
	courtID := model.CourtID(mux.Vars(r)["id"])

	if err := h.session.ResumeCourt(r.Context(), courtID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
