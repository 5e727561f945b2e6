package state

import (
	"sort"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
)

// State is one snapshot of the whole session: settings plus every player,
// team and court. Mutations work on a private copy, so a State handed out
// of the container never changes underneath its holder.
type State struct {
	Settings model.Settings
	Players  map[model.PlayerID]model.Player
	Teams    map[model.TeamID]model.Team
	Courts   map[model.CourtID]model.Court
}

// New returns an empty state with default settings
func New() State {
	return State{
		Settings: model.DefaultSettings(),
		Players:  make(map[model.PlayerID]model.Player),
		Teams:    make(map[model.TeamID]model.Team),
		Courts:   make(map[model.CourtID]model.Court),
	}
}

// Clone deep-copies the state, including per-player history maps
func (s State) Clone() State {
	next := State{
		Settings: s.Settings,
		Players:  make(map[model.PlayerID]model.Player, len(s.Players)),
		Teams:    make(map[model.TeamID]model.Team, len(s.Teams)),
		Courts:   make(map[model.CourtID]model.Court, len(s.Courts)),
	}
	for id, p := range s.Players {
		next.Players[id] = p.Clone()
	}
	for id, t := range s.Teams {
		next.Teams[id] = t.Clone()
	}
	for id, c := range s.Courts {
		next.Courts[id] = c
	}
	return next
}

// SortedPlayers returns all players ordered by join time, then id
func (s *State) SortedPlayers() []model.Player {
	players := make([]model.Player, 0, len(s.Players))
	for _, p := range s.Players {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool {
		if !players[i].JoinedAt.Equal(players[j].JoinedAt) {
			return players[i].JoinedAt.Before(players[j].JoinedAt)
		}
		return players[i].ID < players[j].ID
	})
	return players
}

// SortedTeams returns all teams ordered by creation time, then id
func (s *State) SortedTeams() []model.Team {
	teams := make([]model.Team, 0, len(s.Teams))
	for _, t := range s.Teams {
		teams = append(teams, t)
	}
	sort.Slice(teams, func(i, j int) bool {
		if !teams[i].CreatedAt.Equal(teams[j].CreatedAt) {
			return teams[i].CreatedAt.Before(teams[j].CreatedAt)
		}
		return teams[i].ID < teams[j].ID
	})
	return teams
}

// SortedCourts returns all courts ordered by their ordinal
func (s *State) SortedCourts() []model.Court {
	courts := make([]model.Court, 0, len(s.Courts))
	for _, c := range s.Courts {
		courts = append(courts, c)
	}
	sort.Slice(courts, func(i, j int) bool {
		return courts[i].Index < courts[j].Index
	})
	return courts
}

// QueuedTeamCount counts teams waiting for a court
func (s *State) QueuedTeamCount() int {
	n := 0
	for _, t := range s.Teams {
		if t.State == model.TeamStateQueued {
			n++
		}
	}
	return n
}

// AvailableCourt returns the lowest-ordinal free court
func (s *State) AvailableCourt() (model.Court, bool) {
	var best model.Court
	found := false
	for _, c := range s.Courts {
		if c.Occupied() {
			continue
		}
		if !found || c.Index < best.Index {
			best = c
			found = true
		}
	}
	return best, found
}

// TeamOf returns the active team id holding the player, if any
func (s *State) TeamOf(id model.PlayerID) (model.TeamID, bool) {
	for _, t := range s.Teams {
		if t.Active() && t.HasMember(id) {
			return t.ID, true
		}
	}
	return "", false
}
