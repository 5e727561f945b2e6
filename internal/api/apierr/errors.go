package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeNameRequired         = "NAME_REQUIRED"
	CodeInvalidRank          = "INVALID_RANK"
	CodeInvalidGender        = "INVALID_GENDER"
	CodeInvalidState         = "INVALID_STATE"
	CodePlayerNotFound       = "PLAYER_NOT_FOUND"
	CodePlayerBusy           = "PLAYER_BUSY"
	CodePlayerNotEligible    = "PLAYER_NOT_ELIGIBLE"
	CodeInsufficientPlayers  = "INSUFFICIENT_PLAYERS"
	CodeQueueFull            = "QUEUE_FULL"
	CodeDuplicateMembers     = "DUPLICATE_MEMBERS"
	CodeTeamSizeMismatch     = "TEAM_SIZE_MISMATCH"
	CodeTeamNotFound         = "TEAM_NOT_FOUND"
	CodeTeamNotQueued        = "TEAM_NOT_QUEUED"
	CodeMemberNotInTeam      = "MEMBER_NOT_IN_TEAM"
	CodePlayerAlreadyPlaying = "PLAYER_ALREADY_PLAYING"
	CodeCourtNotFound        = "COURT_NOT_FOUND"
	CodeCourtOccupied        = "COURT_OCCUPIED"
	CodeCourtVacant          = "COURT_VACANT"
	CodeNoAvailableCourt     = "NO_AVAILABLE_COURT"
	CodeInvalidSettings      = "INVALID_SETTINGS"
	CodeUnauthorized         = "UNAUTHORIZED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for specific error types
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map model errors
	switch {
	case errors.Is(err, model.ErrPlayerNotFound):
		return &httpError{http.StatusNotFound, APIError{CodePlayerNotFound, "Player not found"}}
	case errors.Is(err, model.ErrTeamNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeTeamNotFound, "Team not found"}}
	case errors.Is(err, model.ErrCourtNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeCourtNotFound, "Court not found"}}
	case errors.Is(err, model.ErrMemberNotInTeam):
		return &httpError{http.StatusNotFound, APIError{CodeMemberNotInTeam, "Player is not on this team"}}
	case errors.Is(err, model.ErrNameRequired):
		return &httpError{http.StatusBadRequest, APIError{CodeNameRequired, "Name is required"}}
	case errors.Is(err, model.ErrInvalidRank):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidRank, "Rank must be S, A, B, C, D, E or F"}}
	case errors.Is(err, model.ErrInvalidGender):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidGender, "Gender must be male, female or empty"}}
	case errors.Is(err, model.ErrInvalidState):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidState, "State must be waiting, priority or resting"}}
	case errors.Is(err, model.ErrDuplicateMembers):
		return &httpError{http.StatusBadRequest, APIError{CodeDuplicateMembers, "A player appears more than once"}}
	case errors.Is(err, model.ErrTeamSizeMismatch):
		return &httpError{http.StatusBadRequest, APIError{CodeTeamSizeMismatch, "Wrong number of players for a team"}}
	case errors.Is(err, model.ErrTeamSizeRange):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSettings, "Team size out of range"}}
	case errors.Is(err, model.ErrCourtCountRange):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidSettings, "Court count out of range"}}
	case errors.Is(err, model.ErrPlayerBusy):
		return &httpError{http.StatusConflict, APIError{CodePlayerBusy, "Player is on a team"}}
	case errors.Is(err, model.ErrPlayerNotEligible):
		return &httpError{http.StatusConflict, APIError{CodePlayerNotEligible, "Player is not in the waiting pool"}}
	case errors.Is(err, model.ErrInsufficientPlayers):
		return &httpError{http.StatusConflict, APIError{CodeInsufficientPlayers, "Not enough eligible players"}}
	case errors.Is(err, model.ErrQueueFull):
		return &httpError{http.StatusConflict, APIError{CodeQueueFull, "Team queue is full"}}
	case errors.Is(err, model.ErrTeamNotQueued):
		return &httpError{http.StatusConflict, APIError{CodeTeamNotQueued, "Team is not waiting for a court"}}
	case errors.Is(err, model.ErrPlayerAlreadyPlaying):
		return &httpError{http.StatusConflict, APIError{CodePlayerAlreadyPlaying, "A team member is already playing"}}
	case errors.Is(err, model.ErrCourtOccupied):
		return &httpError{http.StatusConflict, APIError{CodeCourtOccupied, "Court already has a game on it"}}
	case errors.Is(err, model.ErrCourtVacant):
		return &httpError{http.StatusConflict, APIError{CodeCourtVacant, "No game on this court"}}
	case errors.Is(err, model.ErrNoAvailableCourt):
		return &httpError{http.StatusConflict, APIError{CodeNoAvailableCourt, "Every court is occupied"}}
	case errors.Is(err, model.ErrInvalidPassword):
		return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Invalid admin key"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError() error {
	return &httpError{http.StatusUnauthorized, APIError{CodeUnauthorized, "Admin key required"}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
