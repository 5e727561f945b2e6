package matching

import (
	"context"
	"log/slog"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/clock"
	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/random"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/reconcile"
	"github.com/HyunseokSon/Addicton-sub000/internal/state"
)

// Controller drives team formation against the session state
type Controller struct {
	engine   *reconcile.Engine
	matching *Service
	audit    *audit.Recorder
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger
}

// NewController creates a matching controller
func NewController(
	engine *reconcile.Engine,
	matching *Service,
	audit *audit.Recorder,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		engine:   engine,
		matching: matching,
		audit:    audit,
		clock:    clock,
		random:   random,
		logger:   logger,
	}
}

// AutoMatch forms as many new teams as the queue has room for, drafting
// the eligible pool in fairness order. Formed teams wait queued for a
// court.
func (c *Controller) AutoMatch(ctx context.Context) ([]*model.Team, error) {
	var formed []*model.Team
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		slots := st.Settings.CourtCount - st.QueuedTeamCount()
		if slots <= 0 {
			return nil, model.ErrQueueFull
		}
		pool := c.matching.DraftOrder(st.SortedPlayers())
		teamCount := len(pool) / st.Settings.TeamSize
		if teamCount > slots {
			teamCount = slots
		}
		if teamCount == 0 {
			return nil, model.ErrInsufficientPlayers
		}

		blocks := c.matching.PlanTeams(pool, st.Settings.TeamSize, teamCount)
		blocks = c.matching.Optimize(blocks, st.Players)

		now := c.clock.Now()
		effects := make([]state.Effect, 0, teamCount*(st.Settings.TeamSize+1))
		for _, members := range blocks {
			team := model.Team{
				ID:        model.TeamID(c.random.String(model.IDLength, model.IDAlphabet)),
				Members:   members,
				State:     model.TeamStateQueued,
				CreatedAt: now,
			}
			st.Teams[team.ID] = team
			effects = append(effects, state.PutTeam{Team: team})
			clone := team.Clone()
			formed = append(formed, &clone)
		}
		queued := model.PlayerStateQueued
		for _, members := range blocks {
			for _, id := range members {
				player := st.Players[id]
				player.State = queued
				st.Players[id] = player
				effects = append(effects, state.PatchPlayer{
					ID:    id,
					Patch: model.PlayerPatch{State: &queued},
				})
			}
		}
		return effects, nil
	})
	if err != nil {
		return nil, err
	}

	teamIDs := make([]string, len(formed))
	for i, t := range formed {
		teamIDs[i] = string(t.ID)
	}
	c.audit.Record(ctx, audit.TypeAutoMatch, map[string]any{
		"team_count": len(formed),
		"team_ids":   teamIDs,
	})
	c.logger.Info("auto match formed teams", slog.Int("team_count", len(formed)))
	return formed, nil
}

// FormTeam queues a hand-picked team, subject to the same eligibility
// and queue-capacity rules as auto-matching
func (c *Controller) FormTeam(ctx context.Context, members []model.PlayerID) (*model.Team, error) {
	var formed model.Team
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		if len(members) != st.Settings.TeamSize {
			return nil, model.ErrTeamSizeMismatch
		}
		seen := make(map[model.PlayerID]bool, len(members))
		for _, id := range members {
			if seen[id] {
				return nil, model.ErrDuplicateMembers
			}
			seen[id] = true
			player, ok := st.Players[id]
			if !ok {
				return nil, model.ErrPlayerNotFound
			}
			if !player.Eligible() {
				return nil, model.ErrPlayerNotEligible
			}
		}
		if st.Settings.CourtCount-st.QueuedTeamCount() <= 0 {
			return nil, model.ErrQueueFull
		}

		team := model.Team{
			ID:        model.TeamID(c.random.String(model.IDLength, model.IDAlphabet)),
			Members:   append([]model.PlayerID(nil), members...),
			State:     model.TeamStateQueued,
			CreatedAt: c.clock.Now(),
		}
		st.Teams[team.ID] = team
		formed = team.Clone()

		effects := []state.Effect{state.PutTeam{Team: team}}
		queued := model.PlayerStateQueued
		for _, id := range members {
			player := st.Players[id]
			player.State = queued
			st.Players[id] = player
			effects = append(effects, state.PatchPlayer{
				ID:    id,
				Patch: model.PlayerPatch{State: &queued},
			})
		}
		return effects, nil
	})
	if err != nil {
		return nil, err
	}

	c.audit.Record(ctx, audit.TypeTeamFormed, map[string]any{
		"team_id": string(formed.ID),
		"members": memberIDs(formed.Members),
	})
	return &formed, nil
}

func memberIDs(members []model.PlayerID) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = string(m)
	}
	return ids
}

// ControllerInterface defines the matching controller API
type ControllerInterface interface {
	AutoMatch(ctx context.Context) ([]*model.Team, error)
	FormTeam(ctx context.Context, members []model.PlayerID) (*model.Team, error)
}

var _ ControllerInterface = (*Controller)(nil)
