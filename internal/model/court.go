package model

import "fmt"

// CourtID uniquely identifies a court
type CourtID string

// CourtStatus is the occupancy state of a court
type CourtStatus string

const (
	CourtStatusAvailable CourtStatus = "available"
	CourtStatusOccupied  CourtStatus = "occupied"
)

// Court is a physical court slot
type Court struct {
	ID          CourtID
	Index       int // 1-based ordinal
	Name        string
	Status      CourtStatus
	CurrentTeam TeamID // empty unless occupied
	Paused      bool
	// ElapsedSec is a display accumulator. While a game runs the
	// authoritative elapsed time is derived from the team's StartedAt.
	ElapsedSec int
}

// NewCourt builds an available court at the given ordinal
func NewCourt(id CourtID, index int) *Court {
	return &Court{
		ID:     id,
		Index:  index,
		Name:   fmt.Sprintf("Court %d", index),
		Status: CourtStatusAvailable,
	}
}

// Occupied reports whether a game is on the court
func (c *Court) Occupied() bool {
	return c.Status == CourtStatusOccupied
}
