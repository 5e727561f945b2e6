package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/HyunseokSon/Addicton-sub000/internal/api/request"
	"github.com/HyunseokSon/Addicton-sub000/internal/api/response"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/matching"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/roster"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/session"
)

// TeamHandler handles matching and team lifecycle endpoints
type TeamHandler struct {
	matching *matching.Controller
	session  *session.Controller
	roster   *roster.Controller
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(matching *matching.Controller, session *session.Controller, roster *roster.Controller) *TeamHandler {
	return &TeamHandler{
		matching: matching,
		session:  session,
		roster:   roster,
	}
}

// rosterByID indexes the roster for member name resolution
func rosterByID(roster *roster.Controller) map[model.PlayerID]*model.Player {
	players := roster.List()
	byID := make(map[model.PlayerID]*model.Player, len(players))
	for _, p := range players {
		byID[p.ID] = p
	}
	return byID
}

// AutoMatch handles POST /api/v1/match
func (h *TeamHandler) AutoMatch(w http.ResponseWriter, r *http.Request) {
	teams, err := h.matching.AutoMatch(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TeamListFromModel(teams, rosterByID(h.roster)))
}

// Form handles POST /api/v1/teams
func (h *TeamHandler) Form(w http.ResponseWriter, r *http.Request) {
	var req request.FormTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	members := make([]model.PlayerID, len(req.PlayerIDs))
	for i, id := range req.PlayerIDs {
		members[i] = model.PlayerID(id)
	}

	team, err := h.matching.FormTeam(r.Context(), members)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.TeamFromModel(team, rosterByID(h.roster)))
}

// List handles GET /api/v1/teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.TeamListFromModel(h.session.Teams(), rosterByID(h.roster)))
}

// Start handles POST /api/v1/teams/{id}/start. Without a court in the
// body the lowest free court is taken.
func (h *TeamHandler) Start(w http.ResponseWriter, r *http.Request) {
	teamID := model.TeamID(mux.Vars(r)["id"])

	var req request.StartTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Empty body means any free court
		req = request.StartTeamRequest{}
	}

	team, err := h.session.StartGame(r.Context(), teamID, model.CourtID(req.CourtID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team, rosterByID(h.roster)))
}

// StartAll handles POST /api/v1/teams/start-all
func (h *TeamHandler) StartAll(w http.ResponseWriter, r *http.Request) {
	teams, err := h.session.StartAllGames(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamListFromModel(teams, rosterByID(h.roster)))
}

// Swap handles POST /api/v1/teams/{id}/swap
func (h *TeamHandler) Swap(w http.ResponseWriter, r *http.Request) {
	teamID := model.TeamID(mux.Vars(r)["id"])

	var req request.SwapMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.session.SwapMember(r.Context(), teamID, model.PlayerID(req.Out), model.PlayerID(req.In))
	if err != nil {
		WriteError(w, err)
		return
	}

	team, err := h.session.Team(teamID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.TeamFromModel(team, rosterByID(h.roster)))
}

// RemoveMember handles POST /api/v1/teams/{id}/remove-member. Removing
// the last member disbands the team.
func (h *TeamHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	teamID := model.TeamID(mux.Vars(r)["id"])

	var req request.RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	err := h.session.RemoveMember(r.Context(), teamID, model.PlayerID(req.PlayerID))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
