package model

import "time"

// PlayerID uniquely identifies a participant across the system
type PlayerID string

// PlayerState is where a participant sits in the session lifecycle
type PlayerState string

const (
	// PlayerStateWaiting - in the pool, selectable for matching
	PlayerStateWaiting PlayerState = "waiting"
	// PlayerStatePriority - waiting, but drafted ahead of regular waiters
	PlayerStatePriority PlayerState = "priority"
	// PlayerStateResting - manually benched, excluded from matching
	PlayerStateResting PlayerState = "resting"
	// PlayerStateQueued - on a formed team that has not started yet
	PlayerStateQueued PlayerState = "queued"
	// PlayerStatePlaying - on court
	PlayerStatePlaying PlayerState = "playing"
)

// Valid reports whether s is a known player state
func (s PlayerState) Valid() bool {
	switch s {
	case PlayerStateWaiting, PlayerStatePriority, PlayerStateResting,
		PlayerStateQueued, PlayerStatePlaying:
		return true
	}
	return false
}

// Rank is an ordinal skill grade, S strongest through F weakest.
// The empty string means unranked.
type Rank string

const (
	RankS Rank = "S"
	RankA Rank = "A"
	RankB Rank = "B"
	RankC Rank = "C"
	RankD Rank = "D"
	RankE Rank = "E"
	RankF Rank = "F"
)

// Valid reports whether r is a known rank or unranked
func (r Rank) Valid() bool {
	switch r {
	case "", RankS, RankA, RankB, RankC, RankD, RankE, RankF:
		return true
	}
	return false
}

// Gender of a participant. The empty string means unspecified.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Valid reports whether g is a known gender or unspecified
func (g Gender) Valid() bool {
	return g == "" || g == GenderMale || g == GenderFemale
}

// Player is a session participant
type Player struct {
	ID              PlayerID
	Name            string
	State           PlayerState
	Rank            Rank
	Gender          Gender
	GameCount       int
	LastGameEndAt   *time.Time // nil until the first game ends
	TeammateHistory map[PlayerID]int
	RecentTeammates []PlayerID // members of the most recently finished game
	JoinedAt        time.Time
}

// Eligible reports whether the player can be drafted onto a new team
func (p *Player) Eligible() bool {
	return p.State == PlayerStateWaiting || p.State == PlayerStatePriority
}

// Busy reports whether the player is tied to an active team
func (p *Player) Busy() bool {
	return p.State == PlayerStateQueued || p.State == PlayerStatePlaying
}

// TimesPlayedWith returns how often the player has shared a finished game
// with other
func (p *Player) TimesPlayedWith(other PlayerID) int {
	if p.TeammateHistory == nil {
		return 0
	}
	return p.TeammateHistory[other]
}

// Clone deep-copies the player, including history map and slices
func (p Player) Clone() Player {
	if p.TeammateHistory != nil {
		history := make(map[PlayerID]int, len(p.TeammateHistory))
		for id, n := range p.TeammateHistory {
			history[id] = n
		}
		p.TeammateHistory = history
	}
	if p.RecentTeammates != nil {
		p.RecentTeammates = append([]PlayerID(nil), p.RecentTeammates...)
	}
	if p.LastGameEndAt != nil {
		at := *p.LastGameEndAt
		p.LastGameEndAt = &at
	}
	return p
}
