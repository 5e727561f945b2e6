package model

import "time"

// Session settings bounds and defaults
const (
	MinTeamSize   = 2
	MinCourtCount = 1
	MaxCourtCount = 8

	DefaultTeamSize     = 4
	DefaultCourtCount   = 2
	DefaultGameDuration = 15 * time.Minute
)

// Settings holds the session-wide configuration singleton
type Settings struct {
	TeamSize     int
	CourtCount   int
	GameDuration time.Duration // informational; games never end on a timer
	CreatedAt    time.Time
}

// DefaultSettings returns the settings a fresh session starts with
func DefaultSettings() Settings {
	return Settings{
		TeamSize:     DefaultTeamSize,
		CourtCount:   DefaultCourtCount,
		GameDuration: DefaultGameDuration,
	}
}

// Validate checks the settings against their allowed ranges
func (s Settings) Validate() error {
	if s.TeamSize < MinTeamSize {
		return ErrTeamSizeRange
	}
	if s.CourtCount < MinCourtCount || s.CourtCount > MaxCourtCount {
		return ErrCourtCountRange
	}
	return nil
}
