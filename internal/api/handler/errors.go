package handler

import (
	"net/http"

	"github.com/HyunseokSon/Addicton-sub000/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest       = apierr.CodeInvalidRequest
	CodeNameRequired         = apierr.CodeNameRequired
	CodeInvalidRank          = apierr.CodeInvalidRank
	CodeInvalidGender        = apierr.CodeInvalidGender
	CodeInvalidState         = apierr.CodeInvalidState
	CodePlayerNotFound       = apierr.CodePlayerNotFound
	CodePlayerBusy           = apierr.CodePlayerBusy
	CodePlayerNotEligible    = apierr.CodePlayerNotEligible
	CodeInsufficientPlayers  = apierr.CodeInsufficientPlayers
	CodeQueueFull            = apierr.CodeQueueFull
	CodeDuplicateMembers     = apierr.CodeDuplicateMembers
	CodeTeamSizeMismatch     = apierr.CodeTeamSizeMismatch
	CodeTeamNotFound         = apierr.CodeTeamNotFound
	CodeTeamNotQueued        = apierr.CodeTeamNotQueued
	CodeMemberNotInTeam      = apierr.CodeMemberNotInTeam
	CodePlayerAlreadyPlaying = apierr.CodePlayerAlreadyPlaying
	CodeCourtNotFound        = apierr.CodeCourtNotFound
	CodeCourtOccupied        = apierr.CodeCourtOccupied
	CodeCourtVacant          = apierr.CodeCourtVacant
	CodeNoAvailableCourt     = apierr.CodeNoAvailableCourt
	CodeInvalidSettings      = apierr.CodeInvalidSettings
	CodeUnauthorized         = apierr.CodeUnauthorized
	CodeInternalError        = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return apierr.NewInternalError()
}
