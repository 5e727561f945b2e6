package model

import "time"

// TeamID uniquely identifies a formed team
type TeamID string

// TeamState is the lifecycle state of a team
type TeamState string

const (
	// TeamStateQueued - formed, waiting for a court
	TeamStateQueued TeamState = "queued"
	// TeamStatePlaying - on court
	TeamStatePlaying TeamState = "playing"
	// TeamStateFinished - game over; transient, purged by reconciliation
	TeamStateFinished TeamState = "finished"
)

// Team is a set of players formed to play one game together
type Team struct {
	ID        TeamID
	Members   []PlayerID
	State     TeamState
	CourtID   CourtID // empty until the team is placed on a court
	StartedAt *time.Time
	EndedAt   *time.Time
	CreatedAt time.Time
}

// Active reports whether the team holds its members (queued or playing)
func (t *Team) Active() bool {
	return t.State == TeamStateQueued || t.State == TeamStatePlaying
}

// HasMember reports whether id is on the team
func (t *Team) HasMember(id PlayerID) bool {
	for _, m := range t.Members {
		if m == id {
			return true
		}
	}
	return false
}

// MemberIndex returns the position of id in Members, or -1
func (t *Team) MemberIndex(id PlayerID) int {
	for i, m := range t.Members {
		if m == id {
			return i
		}
	}
	return -1
}

// Teammates returns the members other than id
func (t *Team) Teammates(id PlayerID) []PlayerID {
	others := make([]PlayerID, 0, len(t.Members))
	for _, m := range t.Members {
		if m != id {
			others = append(others, m)
		}
	}
	return others
}

// Clone deep-copies the team
func (t Team) Clone() Team {
	t.Members = append([]PlayerID(nil), t.Members...)
	if t.StartedAt != nil {
		at := *t.StartedAt
		t.StartedAt = &at
	}
	if t.EndedAt != nil {
		at := *t.EndedAt
		t.EndedAt = &at
	}
	return t
}
