package model

import "time"

// Patch types carry partial updates. Nil fields are left unchanged;
// non-nil map/slice fields replace the stored value wholesale.

// PlayerPatch is a partial update to a player
type PlayerPatch struct {
	Name            *string
	State           *PlayerState
	Rank            *Rank
	Gender          *Gender
	GameCount       *int
	LastGameEndAt   *time.Time
	TeammateHistory map[PlayerID]int
	RecentTeammates []PlayerID
}

// Apply writes the patch onto p
func (patch PlayerPatch) Apply(p *Player) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.State != nil {
		p.State = *patch.State
	}
	if patch.Rank != nil {
		p.Rank = *patch.Rank
	}
	if patch.Gender != nil {
		p.Gender = *patch.Gender
	}
	if patch.GameCount != nil {
		p.GameCount = *patch.GameCount
	}
	if patch.LastGameEndAt != nil {
		t := *patch.LastGameEndAt
		p.LastGameEndAt = &t
	}
	if patch.TeammateHistory != nil {
		p.TeammateHistory = patch.TeammateHistory
	}
	if patch.RecentTeammates != nil {
		p.RecentTeammates = patch.RecentTeammates
	}
}

// Merge returns a patch equivalent to applying patch, then later
func (patch PlayerPatch) Merge(later PlayerPatch) PlayerPatch {
	if later.Name != nil {
		patch.Name = later.Name
	}
	if later.State != nil {
		patch.State = later.State
	}
	if later.Rank != nil {
		patch.Rank = later.Rank
	}
	if later.Gender != nil {
		patch.Gender = later.Gender
	}
	if later.GameCount != nil {
		patch.GameCount = later.GameCount
	}
	if later.LastGameEndAt != nil {
		patch.LastGameEndAt = later.LastGameEndAt
	}
	if later.TeammateHistory != nil {
		patch.TeammateHistory = later.TeammateHistory
	}
	if later.RecentTeammates != nil {
		patch.RecentTeammates = later.RecentTeammates
	}
	return patch
}

// TeamPatch is a partial update to a team
type TeamPatch struct {
	State     *TeamState
	CourtID   *CourtID // set to empty to detach from a court
	Members   []PlayerID
	StartedAt *time.Time
	EndedAt   *time.Time
}

// Apply writes the patch onto t
func (patch TeamPatch) Apply(t *Team) {
	if patch.State != nil {
		t.State = *patch.State
	}
	if patch.CourtID != nil {
		t.CourtID = *patch.CourtID
	}
	if patch.Members != nil {
		t.Members = patch.Members
	}
	if patch.StartedAt != nil {
		at := *patch.StartedAt
		t.StartedAt = &at
	}
	if patch.EndedAt != nil {
		at := *patch.EndedAt
		t.EndedAt = &at
	}
}

// Merge returns a patch equivalent to applying patch, then later
func (patch TeamPatch) Merge(later TeamPatch) TeamPatch {
	if later.State != nil {
		patch.State = later.State
	}
	if later.CourtID != nil {
		patch.CourtID = later.CourtID
	}
	if later.Members != nil {
		patch.Members = later.Members
	}
	if later.StartedAt != nil {
		patch.StartedAt = later.StartedAt
	}
	if later.EndedAt != nil {
		patch.EndedAt = later.EndedAt
	}
	return patch
}

// CourtPatch is a partial update to a court
type CourtPatch struct {
	Name        *string
	Status      *CourtStatus
	CurrentTeam *TeamID // set to empty to clear
	Paused      *bool
	ElapsedSec  *int
}

// Apply writes the patch onto c
func (patch CourtPatch) Apply(c *Court) {
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	if patch.Status != nil {
		c.Status = *patch.Status
	}
	if patch.CurrentTeam != nil {
		c.CurrentTeam = *patch.CurrentTeam
	}
	if patch.Paused != nil {
		c.Paused = *patch.Paused
	}
	if patch.ElapsedSec != nil {
		c.ElapsedSec = *patch.ElapsedSec
	}
}

// Merge returns a patch equivalent to applying patch, then later
func (patch CourtPatch) Merge(later CourtPatch) CourtPatch {
	if later.Name != nil {
		patch.Name = later.Name
	}
	if later.Status != nil {
		patch.Status = later.Status
	}
	if later.CurrentTeam != nil {
		patch.CurrentTeam = later.CurrentTeam
	}
	if later.Paused != nil {
		patch.Paused = later.Paused
	}
	if later.ElapsedSec != nil {
		patch.ElapsedSec = later.ElapsedSec
	}
	return patch
}
