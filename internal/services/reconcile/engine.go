package reconcile

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/state"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage"
)

// Engine funnels every session mutation through one pipeline: commit to
// the local container, push the implied writes to the store, then resync
// the container from a fresh remote snapshot. The local commit is what
// the caller observes; push and resync failures are logged and converge
// on a later resync instead of failing the operation.
type Engine struct {
	mu        sync.Mutex
	container *state.Container
	storage   storage.Storage
	logger    *slog.Logger
}

// NewEngine creates a reconciliation engine around a state container
func NewEngine(
	container *state.Container,
	storage storage.Storage,
	logger *slog.Logger,
) *Engine {
	return &Engine{
		container: container,
		storage:   storage,
		logger:    logger.With(slog.String("component", "reconcile-engine")),
	}
}

// Snapshot returns an isolated copy of the current local state
func (e *Engine) Snapshot() state.State {
	return e.container.View()
}

// Commit applies fn to the local state and propagates its effects to the
// store. fn's error aborts the whole operation with nothing changed;
// remote errors do not fail the commit.
func (e *Engine) Commit(ctx context.Context, fn state.MutateFunc) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	effects, err := e.container.Mutate(fn)
	if err != nil {
		return err
	}
	e.push(ctx, effects)
	if err := e.resync(ctx); err != nil {
		e.logger.Warn("resync after commit failed", slog.String("error", err.Error()))
	}
	return nil
}

// Resync rebuilds the local state from a full remote snapshot and writes
// back whatever repairs the rebuild found. The snapshot wins over local
// state.
func (e *Engine) Resync(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resync(ctx)
}

func (e *Engine) resync(ctx context.Context) error {
	snap, err := e.fetchSnapshot(ctx)
	if err != nil {
		return err
	}
	rebuilt, repairs := Rebuild(snap)
	e.container.Replace(rebuilt)
	e.writeRepairs(ctx, repairs)
	return nil
}

func (e *Engine) fetchSnapshot(ctx context.Context) (Snapshot, error) {
	var snap Snapshot
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		players, err := e.storage.GetAllPlayers(gctx)
		if err != nil {
			return err
		}
		snap.Players = players
		return nil
	})
	g.Go(func() error {
		teams, err := e.storage.GetAllTeams(gctx)
		if err != nil {
			return err
		}
		snap.Teams = teams
		return nil
	})
	g.Go(func() error {
		courts, err := e.storage.GetAllCourts(gctx)
		if err != nil {
			return err
		}
		snap.Courts = courts
		return nil
	})
	g.Go(func() error {
		settings, err := e.storage.GetSettings(gctx)
		if errors.Is(err, model.ErrSettingsNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		snap.Settings = settings
		return nil
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

// push writes effects to the store in commit order, batching consecutive
// effects of the same kind into one store call
func (e *Engine) push(ctx context.Context, effects []state.Effect) {
	for start := 0; start < len(effects); {
		end := start + 1
		for end < len(effects) && effectKind(effects[end]) == effectKind(effects[start]) {
			end++
		}
		if err := e.dispatch(ctx, effects[start:end]); err != nil {
			e.logger.Warn("effect push failed",
				slog.String("kind", effectKind(effects[start])),
				slog.Int("count", end-start),
				slog.String("error", err.Error()),
			)
		}
		start = end
	}
}

// dispatch sends one run of same-kind effects as a single store
// operation. Repeated patches for one id merge in order, later fields
// winning.
func (e *Engine) dispatch(ctx context.Context, run []state.Effect) error {
	switch run[0].(type) {
	case state.PutPlayer:
		players := make([]*model.Player, 0, len(run))
		for _, effect := range run {
			player := effect.(state.PutPlayer).Player
			players = append(players, &player)
		}
		return e.storage.AddPlayers(ctx, players)
	case state.PatchPlayer:
		patches := make(map[model.PlayerID]model.PlayerPatch, len(run))
		for _, effect := range run {
			eff := effect.(state.PatchPlayer)
			if prev, ok := patches[eff.ID]; ok {
				patches[eff.ID] = prev.Merge(eff.Patch)
			} else {
				patches[eff.ID] = eff.Patch
			}
		}
		return e.storage.UpdatePlayers(ctx, patches)
	case state.DeletePlayer:
		ids := make([]model.PlayerID, 0, len(run))
		for _, effect := range run {
			ids = append(ids, effect.(state.DeletePlayer).ID)
		}
		return e.storage.DeletePlayers(ctx, ids)
	case state.PutTeam:
		teams := make([]*model.Team, 0, len(run))
		for _, effect := range run {
			team := effect.(state.PutTeam).Team
			teams = append(teams, &team)
		}
		return e.storage.AddTeams(ctx, teams)
	case state.PatchTeam:
		order := make([]model.TeamID, 0, len(run))
		patches := make(map[model.TeamID]model.TeamPatch, len(run))
		for _, effect := range run {
			eff := effect.(state.PatchTeam)
			if prev, ok := patches[eff.ID]; ok {
				patches[eff.ID] = prev.Merge(eff.Patch)
				continue
			}
			patches[eff.ID] = eff.Patch
			order = append(order, eff.ID)
		}
		for _, id := range order {
			if err := e.storage.UpdateTeam(ctx, id, patches[id]); err != nil {
				return err
			}
		}
		return nil
	case state.DeleteTeam:
		ids := make([]model.TeamID, 0, len(run))
		for _, effect := range run {
			ids = append(ids, effect.(state.DeleteTeam).ID)
		}
		return e.storage.DeleteTeams(ctx, ids)
	case state.PutCourt:
		courts := make([]*model.Court, 0, len(run))
		for _, effect := range run {
			court := effect.(state.PutCourt).Court
			courts = append(courts, &court)
		}
		return e.storage.AddCourts(ctx, courts)
	case state.PatchCourt:
		order := make([]model.CourtID, 0, len(run))
		patches := make(map[model.CourtID]model.CourtPatch, len(run))
		for _, effect := range run {
			eff := effect.(state.PatchCourt)
			if prev, ok := patches[eff.ID]; ok {
				patches[eff.ID] = prev.Merge(eff.Patch)
				continue
			}
			patches[eff.ID] = eff.Patch
			order = append(order, eff.ID)
		}
		for _, id := range order {
			if err := e.storage.UpdateCourt(ctx, id, patches[id]); err != nil {
				return err
			}
		}
		return nil
	case state.DeleteCourt:
		ids := make([]model.CourtID, 0, len(run))
		for _, effect := range run {
			ids = append(ids, effect.(state.DeleteCourt).ID)
		}
		return e.storage.DeleteCourts(ctx, ids)
	case state.PutSettings:
		// Only the last write matters for a singleton
		last := run[len(run)-1].(state.PutSettings)
		return e.storage.SaveSettings(ctx, last.Settings)
	}
	return nil
}

// writeRepairs pushes rebuild write-backs to the store. Failures are
// logged; the next resync gets another chance.
func (e *Engine) writeRepairs(ctx context.Context, repairs Repairs) {
	if repairs.Empty() {
		return
	}
	if len(repairs.PlayerPatches) > 0 {
		if err := e.storage.UpdatePlayers(ctx, repairs.PlayerPatches); err != nil {
			e.logger.Warn("player repair failed", slog.String("error", err.Error()))
		}
	}
	for id, patch := range repairs.TeamPatches {
		if err := e.storage.UpdateTeam(ctx, id, patch); err != nil {
			e.logger.Warn("team repair failed",
				slog.String("team_id", string(id)),
				slog.String("error", err.Error()),
			)
		}
	}
	for id, patch := range repairs.CourtPatches {
		if err := e.storage.UpdateCourt(ctx, id, patch); err != nil {
			e.logger.Warn("court repair failed",
				slog.String("court_id", string(id)),
				slog.String("error", err.Error()),
			)
		}
	}
	if len(repairs.PurgeTeams) > 0 {
		if err := e.storage.DeleteTeams(ctx, repairs.PurgeTeams); err != nil {
			e.logger.Warn("team purge failed", slog.String("error", err.Error()))
		}
	}
	if repairs.SaveSettings != nil {
		if err := e.storage.SaveSettings(ctx, *repairs.SaveSettings); err != nil {
			e.logger.Warn("settings repair failed", slog.String("error", err.Error()))
		}
	}
}

func effectKind(effect state.Effect) string {
	switch effect.(type) {
	case state.PutPlayer:
		return "put_player"
	case state.PatchPlayer:
		return "patch_player"
	case state.DeletePlayer:
		return "delete_player"
	case state.PutTeam:
		return "put_team"
	case state.PatchTeam:
		return "patch_team"
	case state.DeleteTeam:
		return "delete_team"
	case state.PutCourt:
		return "put_court"
	case state.PatchCourt:
		return "patch_court"
	case state.DeleteCourt:
		return "delete_court"
	case state.PutSettings:
		return "put_settings"
	}
	return "unknown"
}

// EngineInterface defines the reconciliation engine API
type EngineInterface interface {
	Snapshot() state.State
	Commit(ctx context.Context, fn state.MutateFunc) error
	Resync(ctx context.Context) error
}

var _ EngineInterface = (*Engine)(nil)
