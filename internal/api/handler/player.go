package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/HyunseokSon/Addicton-sub000/internal/api/request"
	"github.com/HyunseokSon/Addicton-sub000/internal/api/response"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/roster"
)

// PlayerHandler handles roster endpoints
type PlayerHandler struct {
	roster *roster.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(roster *roster.Controller) *PlayerHandler {
	return &PlayerHandler{
		roster: roster,
	}
}

// List handles GET /api/v1/players
func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.PlayerListFromModel(h.roster.List()))
}

// Get handles GET /api/v1/players/{id}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	player, err := h.roster.Get(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Add handles POST /api/v1/players. A "names" list adds players in
// bulk; otherwise one named player is added.
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if len(req.Names) > 0 {
		players, err := h.roster.AddPlayers(r.Context(), req.Names)
		if err != nil {
			WriteError(w, err)
			return
		}
		response.JSON(w, http.StatusCreated, response.PlayerListFromModel(players))
		return
	}

	player, err := h.roster.AddPlayer(r.Context(), req.Name, model.Rank(req.Rank), model.Gender(req.Gender))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Update handles PATCH /api/v1/players/{id}
func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	update := roster.Update{Name: req.Name}
	if req.Rank != nil {
		rank := model.Rank(*req.Rank)
		update.Rank = &rank
	}
	if req.Gender != nil {
		gender := model.Gender(*req.Gender)
		update.Gender = &gender
	}

	player, err := h.roster.UpdatePlayer(r.Context(), id, update)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// SetState handles POST /api/v1/players/{id}/state
func (h *PlayerHandler) SetState(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	var req request.SetPlayerStateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.roster.SetPlayerState(r.Context(), id, model.PlayerState(req.State))
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/players/{id}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	id := model.PlayerID(mux.Vars(r)["id"])

	if err := h.roster.RemovePlayer(r.Context(), id); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RemoveBulk handles DELETE /api/v1/players
func (h *PlayerHandler) RemoveBulk(w http.ResponseWriter, r *http.Request) {
	var req request.RemovePlayersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	ids := make([]model.PlayerID, len(req.PlayerIDs))
	for i, id := range req.PlayerIDs {
		ids[i] = model.PlayerID(id)
	}

	if err := h.roster.RemovePlayers(r.Context(), ids); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}
