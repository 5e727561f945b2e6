package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound    = errors.New("player not found")
	ErrNameRequired      = errors.New("player name is required")
	ErrInvalidRank       = errors.New("invalid rank")
	ErrInvalidGender     = errors.New("invalid gender")
	ErrInvalidState      = errors.New("invalid player state")
	ErrPlayerBusy        = errors.New("player is on an active team")
	ErrPlayerNotEligible = errors.New("player is not eligible for matching")

	// Matching errors
	ErrInsufficientPlayers = errors.New("not enough eligible players to form a team")
	ErrQueueFull           = errors.New("queued teams already cover every court")
	ErrDuplicateMembers    = errors.New("duplicate members in team")
	ErrTeamSizeMismatch    = errors.New("member count does not match team size")

	// Team errors
	ErrTeamNotFound         = errors.New("team not found")
	ErrTeamNotQueued        = errors.New("team is not queued")
	ErrMemberNotInTeam      = errors.New("player is not a member of the team")
	ErrPlayerAlreadyPlaying = errors.New("a team member is already playing")

	// Court errors
	ErrCourtNotFound    = errors.New("court not found")
	ErrCourtOccupied    = errors.New("court is occupied")
	ErrCourtVacant      = errors.New("no game on the court")
	ErrNoAvailableCourt = errors.New("no court available")

	// Settings errors
	ErrSettingsNotFound = errors.New("settings not found")
	ErrTeamSizeRange    = errors.New("team size out of range")
	ErrCourtCountRange  = errors.New("court count out of range")

	// Admin errors
	ErrCredentialNotFound = errors.New("admin credential not set")
	ErrInvalidPassword    = errors.New("invalid admin password")
)
