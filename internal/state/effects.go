package state

import "github.com/HyunseokSon/Addicton-sub000/internal/model"

// Effect is one remote write implied by a committed local mutation.
// Mutations return effects as data; the reconciliation engine owns
// dispatching them to the store. Every effect is idempotent.
type Effect interface {
	effect()
}

// PutPlayer writes a full player record
type PutPlayer struct {
	Player model.Player
}

// PatchPlayer partially updates a player record
type PatchPlayer struct {
	ID    model.PlayerID
	Patch model.PlayerPatch
}

// DeletePlayer removes a player record
type DeletePlayer struct {
	ID model.PlayerID
}

// PutTeam writes a full team record
type PutTeam struct {
	Team model.Team
}

// PatchTeam partially updates a team record
type PatchTeam struct {
	ID    model.TeamID
	Patch model.TeamPatch
}

// DeleteTeam removes a team record
type DeleteTeam struct {
	ID model.TeamID
}

// PutCourt writes a full court record
type PutCourt struct {
	Court model.Court
}

// PatchCourt partially updates a court record
type PatchCourt struct {
	ID    model.CourtID
	Patch model.CourtPatch
}

// DeleteCourt removes a court record
type DeleteCourt struct {
	ID model.CourtID
}

// PutSettings writes the settings singleton
type PutSettings struct {
	Settings model.Settings
}

func (PutPlayer) effect()    {}
func (PatchPlayer) effect()  {}
func (DeletePlayer) effect() {}
func (PutTeam) effect()      {}
func (PatchTeam) effect()    {}
func (DeleteTeam) effect()   {}
func (PutCourt) effect()     {}
func (PatchCourt) effect()   {}
func (DeleteCourt) effect()  {}
func (PutSettings) effect()  {}
