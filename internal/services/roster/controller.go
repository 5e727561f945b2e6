package roster

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/clock"
	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/random"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/reconcile"
	"github.com/HyunseokSon/Addicton-sub000/internal/state"
)

// Controller manages the participant pool
type Controller struct {
	engine *reconcile.Engine
	audit  *audit.Recorder
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewController creates a roster controller
func NewController(
	engine *reconcile.Engine,
	audit *audit.Recorder,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		engine: engine,
		audit:  audit,
		clock:  clock,
		random: random,
		logger: logger,
	}
}

// Update carries the editable player attributes. Nil fields are left
// unchanged.
type Update struct {
	Name   *string
	Rank   *model.Rank
	Gender *model.Gender
}

// List returns every player ordered by join time
func (c *Controller) List() []*model.Player {
	st := c.engine.Snapshot()
	sorted := st.SortedPlayers()
	players := make([]*model.Player, len(sorted))
	for i := range sorted {
		players[i] = &sorted[i]
	}
	return players
}

// Get returns one player by id
func (c *Controller) Get(id model.PlayerID) (*model.Player, error) {
	st := c.engine.Snapshot()
	player, ok := st.Players[id]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	return &player, nil
}

// AddPlayer registers a participant into the waiting pool. A display
// name already in use gets a " (2)", " (3)"… suffix.
func (c *Controller) AddPlayer(ctx context.Context, name string, rank model.Rank, gender model.Gender) (*model.Player, error) {
	var added model.Player
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		player, err := c.newPlayer(st, name, rank, gender)
		if err != nil {
			return nil, err
		}
		st.Players[player.ID] = player
		added = player.Clone()
		return []state.Effect{state.PutPlayer{Player: player}}, nil
	})
	if err != nil {
		return nil, err
	}

	c.audit.Record(ctx, audit.TypePlayerAdded, map[string]any{
		"player_id": string(added.ID),
		"name":      added.Name,
	})
	c.logger.Info("player added",
		slog.String("player_id", string(added.ID)),
		slog.String("name", added.Name),
	)
	return &added, nil
}

// AddPlayers registers a batch of participants in one operation. The
// whole batch is validated before anything is written; name dedup runs
// across the batch as well as the existing pool.
func (c *Controller) AddPlayers(ctx context.Context, names []string) ([]*model.Player, error) {
	var added []*model.Player
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		effects := make([]state.Effect, 0, len(names))
		for _, name := range names {
			player, err := c.newPlayer(st, name, "", "")
			if err != nil {
				return nil, err
			}
			st.Players[player.ID] = player
			effects = append(effects, state.PutPlayer{Player: player})
			clone := player.Clone()
			added = append(added, &clone)
		}
		return effects, nil
	})
	if err != nil {
		return nil, err
	}
	if len(added) == 0 {
		return added, nil
	}

	c.audit.Record(ctx, audit.TypePlayersAdded, map[string]any{
		"count":      len(added),
		"player_ids": playerIDs(added),
	})
	c.logger.Info("players added", slog.Int("count", len(added)))
	return added, nil
}

// UpdatePlayer edits a player's name, rank or gender
func (c *Controller) UpdatePlayer(ctx context.Context, id model.PlayerID, update Update) (*model.Player, error) {
	var updated model.Player
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		player, ok := st.Players[id]
		if !ok {
			return nil, model.ErrPlayerNotFound
		}

		var patch model.PlayerPatch
		if update.Name != nil {
			name := strings.TrimSpace(*update.Name)
			if name == "" {
				return nil, model.ErrNameRequired
			}
			deduped := dedupName(st, name, id)
			patch.Name = &deduped
		}
		if update.Rank != nil {
			if !update.Rank.Valid() {
				return nil, model.ErrInvalidRank
			}
			patch.Rank = update.Rank
		}
		if update.Gender != nil {
			if !update.Gender.Valid() {
				return nil, model.ErrInvalidGender
			}
			patch.Gender = update.Gender
		}

		patch.Apply(&player)
		st.Players[id] = player
		updated = player.Clone()
		return []state.Effect{state.PatchPlayer{ID: id, Patch: patch}}, nil
	})
	if err != nil {
		return nil, err
	}

	c.audit.Record(ctx, audit.TypePlayerUpdated, map[string]any{
		"player_id": string(updated.ID),
	})
	return &updated, nil
}

// SetPlayerState cycles a player between the bench states: waiting,
// priority and resting. Queued and playing are owned by the team
// lifecycle and can be neither the target nor the current state here.
func (c *Controller) SetPlayerState(ctx context.Context, id model.PlayerID, target model.PlayerState) (*model.Player, error) {
	var updated model.Player
	var from model.PlayerState
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		if !manualState(target) {
			return nil, model.ErrInvalidState
		}
		player, ok := st.Players[id]
		if !ok {
			return nil, model.ErrPlayerNotFound
		}
		if player.Busy() {
			return nil, model.ErrPlayerBusy
		}

		from = player.State
		player.State = target
		st.Players[id] = player
		updated = player.Clone()
		stateCopy := target
		return []state.Effect{state.PatchPlayer{
			ID:    id,
			Patch: model.PlayerPatch{State: &stateCopy},
		}}, nil
	})
	if err != nil {
		return nil, err
	}

	c.audit.Record(ctx, audit.TypePlayerState, map[string]any{
		"player_id": string(id),
		"from":      string(from),
		"to":        string(target),
	})
	return &updated, nil
}

// RemovePlayer withdraws a participant from the session. Players on an
// active team cannot be removed; pull them off the team first.
func (c *Controller) RemovePlayer(ctx context.Context, id model.PlayerID) error {
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		player, ok := st.Players[id]
		if !ok {
			return nil, model.ErrPlayerNotFound
		}
		if player.Busy() {
			return nil, model.ErrPlayerBusy
		}
		delete(st.Players, id)
		return []state.Effect{state.DeletePlayer{ID: id}}, nil
	})
	if err != nil {
		return err
	}

	c.audit.Record(ctx, audit.TypePlayerRemoved, map[string]any{
		"player_id": string(id),
	})
	c.logger.Info("player removed", slog.String("player_id", string(id)))
	return nil
}

// RemovePlayers withdraws a batch of participants. The whole batch is
// validated before anything is written.
func (c *Controller) RemovePlayers(ctx context.Context, ids []model.PlayerID) error {
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		for _, id := range ids {
			player, ok := st.Players[id]
			if !ok {
				return nil, model.ErrPlayerNotFound
			}
			if player.Busy() {
				return nil, model.ErrPlayerBusy
			}
		}
		effects := make([]state.Effect, 0, len(ids))
		for _, id := range ids {
			delete(st.Players, id)
			effects = append(effects, state.DeletePlayer{ID: id})
		}
		return effects, nil
	})
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return nil
	}

	removed := make([]string, len(ids))
	for i, id := range ids {
		removed[i] = string(id)
	}
	c.audit.Record(ctx, audit.TypePlayersRemoved, map[string]any{
		"count":      len(ids),
		"player_ids": removed,
	})
	c.logger.Info("players removed", slog.Int("count", len(ids)))
	return nil
}

// newPlayer validates and mints one player record within a commit
func (c *Controller) newPlayer(st *state.State, name string, rank model.Rank, gender model.Gender) (model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Player{}, model.ErrNameRequired
	}
	if !rank.Valid() {
		return model.Player{}, model.ErrInvalidRank
	}
	if !gender.Valid() {
		return model.Player{}, model.ErrInvalidGender
	}
	return model.Player{
		ID:       model.PlayerID(c.random.String(model.IDLength, model.IDAlphabet)),
		Name:     dedupName(st, name, ""),
		State:    model.PlayerStateWaiting,
		Rank:     rank,
		Gender:   gender,
		JoinedAt: c.clock.Now(),
	}, nil
}

// dedupName suffixes a display name that is already taken: " (2)", then
// " (3)" and so on. exclude skips the record being renamed.
func dedupName(st *state.State, name string, exclude model.PlayerID) string {
	taken := make(map[string]bool, len(st.Players))
	for id, p := range st.Players {
		if id == exclude {
			continue
		}
		taken[p.Name] = true
	}
	if !taken[name] {
		return name
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s (%d)", name, n)
		if !taken[candidate] {
			return candidate
		}
	}
}

// manualState reports whether s is one of the admin-cycled bench states
func manualState(s model.PlayerState) bool {
	switch s {
	case model.PlayerStateWaiting, model.PlayerStatePriority, model.PlayerStateResting:
		return true
	}
	return false
}

func playerIDs(players []*model.Player) []string {
	ids := make([]string, len(players))
	for i, p := range players {
		ids[i] = string(p.ID)
	}
	return ids
}

// ControllerInterface defines the roster controller API
type ControllerInterface interface {
	List() []*model.Player
	Get(id model.PlayerID) (*model.Player, error)
	AddPlayer(ctx context.Context, name string, rank model.Rank, gender model.Gender) (*model.Player, error)
	AddPlayers(ctx context.Context, names []string) ([]*model.Player, error)
	UpdatePlayer(ctx context.Context, id model.PlayerID, update Update) (*model.Player, error)
	SetPlayerState(ctx context.Context, id model.PlayerID, target model.PlayerState) (*model.Player, error)
	RemovePlayer(ctx context.Context, id model.PlayerID) error
	RemovePlayers(ctx context.Context, ids []model.PlayerID) error
}

var _ ControllerInterface = (*Controller)(nil)
