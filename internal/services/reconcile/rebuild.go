package reconcile

import (
	"sort"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/state"
)

// Snapshot is one full read of the remote store
type Snapshot struct {
	Players  []*model.Player
	Teams    []*model.Team
	Courts   []*model.Court
	Settings *model.Settings // nil when the remote has none yet
}

// Repairs are the write-backs that bring the remote in line with the
// rebuilt state. A zero value means local and remote already agree.
type Repairs struct {
	PlayerPatches map[model.PlayerID]model.PlayerPatch
	TeamPatches   map[model.TeamID]model.TeamPatch
	CourtPatches  map[model.CourtID]model.CourtPatch
	PurgeTeams    []model.TeamID
	SaveSettings  *model.Settings
}

// Empty reports whether no write-backs are needed
func (r Repairs) Empty() bool {
	return len(r.PlayerPatches) == 0 &&
		len(r.TeamPatches) == 0 &&
		len(r.CourtPatches) == 0 &&
		len(r.PurgeTeams) == 0 &&
		r.SaveSettings == nil
}

// Rebuild derives a consistent session state from a remote snapshot.
// Active team membership is the source of truth: player states and court
// occupancy are realigned to it. Finished teams are purged, dangling
// references healed. Inconsistency is never an error here.
func Rebuild(snap Snapshot) (state.State, Repairs) {
	repairs := Repairs{
		PlayerPatches: make(map[model.PlayerID]model.PlayerPatch),
		TeamPatches:   make(map[model.TeamID]model.TeamPatch),
		CourtPatches:  make(map[model.CourtID]model.CourtPatch),
	}

	st := state.New()
	if snap.Settings != nil {
		st.Settings = *snap.Settings
	} else {
		settings := st.Settings
		repairs.SaveSettings = &settings
	}

	for _, p := range snap.Players {
		st.Players[p.ID] = p.Clone()
	}
	for _, c := range snap.Courts {
		st.Courts[c.ID] = *c
	}

	// Oldest teams claim their members and courts first, so duplicate
	// claims resolve the same way on every node.
	teams := make([]*model.Team, 0, len(snap.Teams))
	for _, t := range snap.Teams {
		if t.Active() {
			teams = append(teams, t)
			continue
		}
		repairs.PurgeTeams = append(repairs.PurgeTeams, t.ID)
	}
	sort.Slice(teams, func(i, j int) bool {
		if !teams[i].CreatedAt.Equal(teams[j].CreatedAt) {
			return teams[i].CreatedAt.Before(teams[j].CreatedAt)
		}
		return teams[i].ID < teams[j].ID
	})

	claimedCourts := make(map[model.CourtID]model.TeamID)
	for _, snapTeam := range teams {
		team := snapTeam.Clone()

		// Drop members whose player record no longer exists
		kept := make([]model.PlayerID, 0, len(team.Members))
		for _, m := range team.Members {
			if _, ok := st.Players[m]; ok {
				kept = append(kept, m)
			}
		}
		if len(kept) == 0 {
			repairs.PurgeTeams = append(repairs.PurgeTeams, team.ID)
			continue
		}
		if len(kept) != len(team.Members) {
			team.Members = kept
			repairs.TeamPatches[team.ID] = repairs.TeamPatches[team.ID].Merge(
				model.TeamPatch{Members: kept})
		}

		switch team.State {
		case model.TeamStatePlaying:
			court, courtExists := st.Courts[team.CourtID]
			_, courtTaken := claimedCourts[team.CourtID]
			if !courtExists || courtTaken {
				// Nowhere to play: back to the queue
				queued := model.TeamStateQueued
				noCourt := model.CourtID("")
				team.State = queued
				team.CourtID = noCourt
				repairs.TeamPatches[team.ID] = repairs.TeamPatches[team.ID].Merge(
					model.TeamPatch{State: &queued, CourtID: &noCourt})
			} else {
				claimedCourts[court.ID] = team.ID
			}
		case model.TeamStateQueued:
			if team.CourtID != "" {
				noCourt := model.CourtID("")
				team.CourtID = noCourt
				repairs.TeamPatches[team.ID] = repairs.TeamPatches[team.ID].Merge(
					model.TeamPatch{CourtID: &noCourt})
			}
		}

		st.Teams[team.ID] = team
	}

	// Realign court occupancy with the claims
	for id, court := range st.Courts {
		wantTeam, occupied := claimedCourts[id]
		if occupied {
			if court.Status == model.CourtStatusOccupied && court.CurrentTeam == wantTeam {
				continue
			}
			occupiedStatus := model.CourtStatusOccupied
			court.Status = occupiedStatus
			court.CurrentTeam = wantTeam
			court.Paused = false
			court.ElapsedSec = 0
			st.Courts[id] = court
			paused := false
			elapsed := 0
			repairs.CourtPatches[id] = model.CourtPatch{
				Status:      &occupiedStatus,
				CurrentTeam: &wantTeam,
				Paused:      &paused,
				ElapsedSec:  &elapsed,
			}
			continue
		}
		if court.Status == model.CourtStatusAvailable && court.CurrentTeam == "" &&
			!court.Paused && court.ElapsedSec == 0 {
			continue
		}
		available := model.CourtStatusAvailable
		noTeam := model.TeamID("")
		paused := false
		elapsed := 0
		court.Status = available
		court.CurrentTeam = noTeam
		court.Paused = paused
		court.ElapsedSec = elapsed
		st.Courts[id] = court
		repairs.CourtPatches[id] = model.CourtPatch{
			Status:      &available,
			CurrentTeam: &noTeam,
			Paused:      &paused,
			ElapsedSec:  &elapsed,
		}
	}

	// Realign player states with the teams that hold them. Playing wins
	// over queued when a player sits on more than one team.
	memberState := make(map[model.PlayerID]model.PlayerState)
	for _, team := range st.Teams {
		want := model.PlayerStateQueued
		if team.State == model.TeamStatePlaying {
			want = model.PlayerStatePlaying
		}
		for _, m := range team.Members {
			if memberState[m] != model.PlayerStatePlaying {
				memberState[m] = want
			}
		}
	}
	for id, player := range st.Players {
		want, onTeam := memberState[id]
		if !onTeam {
			if !player.Busy() {
				continue
			}
			want = model.PlayerStateWaiting
		}
		if player.State == want {
			continue
		}
		player.State = want
		st.Players[id] = player
		stateCopy := want
		repairs.PlayerPatches[id] = model.PlayerPatch{State: &stateCopy}
	}

	return st, repairs
}
