package session

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/clock"
	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/random"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/reconcile"
	"github.com/HyunseokSon/Addicton-sub000/internal/state"
)

// Controller manages courts, running games and the session settings
type Controller struct {
	engine *reconcile.Engine
	audit  *audit.Recorder
	clock  clock.Clock
	random random.Random
	logger *slog.Logger
}

// NewController creates a session controller
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

// Bootstrap provisions the court pool after the initial sync. Safe to
// call on every startup; it only writes when index slots are missing.
func (c *Controller) Bootstrap(ctx context.Context) error {
	return c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		return c.provisionCourts(st), nil
	})
}

// StartGame moves a queued team onto a court. With no courtID the lowest
// free court is taken. The already-playing guard runs against the state
// as of this commit, not whatever the caller last saw.
func (c *Controller) StartGame(ctx context.Context, teamID model.TeamID, courtID model.CourtID) (*model.Team, error) {
	var started model.Team
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		team, ok := st.Teams[teamID]
		if !ok {
			return nil, model.ErrTeamNotFound
		}
		if team.State != model.TeamStateQueued {
			return nil, model.ErrTeamNotQueued
		}
		for _, m := range team.Members {
			if st.Players[m].State == model.PlayerStatePlaying {
				return nil, model.ErrPlayerAlreadyPlaying
			}
		}

		var court model.Court
		if courtID == "" {
			free, ok := st.AvailableCourt()
			if !ok {
				return nil, model.ErrNoAvailableCourt
			}
			court = free
		} else {
			picked, ok := st.Courts[courtID]
			if !ok {
				return nil, model.ErrCourtNotFound
			}
			if picked.Occupied() {
				return nil, model.ErrCourtOccupied
			}
			court = picked
		}

		placed, effects := occupy(st, team, court, c.clock.Now())
		started = placed.Clone()
		return effects, nil
	})
	if err != nil {
		return nil, err
	}

	c.audit.Record(ctx, audit.TypeGameStarted, map[string]any{
		"team_id":  string(started.ID),
		"court_id": string(started.CourtID),
	})
	c.logger.Info("game started",
		slog.String("team_id", string(started.ID)),
		slog.String("court_id", string(started.CourtID)),
	)
	return &started, nil
}

// StartAllGames starts queued teams oldest-first onto free courts until
// either runs out. Teams with an already-playing member are skipped, so
// starting one team in the batch never double-books a member appearing
// on a later team. An empty batch is valid.
func (c *Controller) StartAllGames(ctx context.Context) ([]*model.Team, error) {
	var started []*model.Team
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		var effects []state.Effect
		for _, team := range st.SortedTeams() {
			if team.State != model.TeamStateQueued {
				continue
			}
			blocked := false
			for _, m := range team.Members {
				if st.Players[m].State == model.PlayerStatePlaying {
					blocked = true
					break
				}
			}
			if blocked {
				continue
			}
			court, ok := st.AvailableCourt()
			if !ok {
				break
			}
			placed, fx := occupy(st, team, court, c.clock.Now())
			effects = append(effects, fx...)
			clone := placed.Clone()
			started = append(started, &clone)
		}
		return effects, nil
	})
	if err != nil {
		return nil, err
	}
	if len(started) == 0 {
		return started, nil
	}

	teamIDs := make([]string, len(started))
	for i, t := range started {
		teamIDs[i] = string(t.ID)
	}
	c.audit.Record(ctx, audit.TypeGamesStarted, map[string]any{
		"team_count": len(started),
		"team_ids":   teamIDs,
	})
	c.logger.Info("bulk game start", slog.Int("team_count", len(started)))
	return started, nil
}

// EndGame finishes the game on a court: every member gets a game
// counted, a rest stamp and teammate history, then returns to the pool.
// The team record is deleted and priority flags are recomputed over the
// whole pool. Returns a summary of the finished team.
func (c *Controller) EndGame(ctx context.Context, courtID model.CourtID) (*model.Team, error) {
	var finished model.Team
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		court, ok := st.Courts[courtID]
		if !ok {
			return nil, model.ErrCourtNotFound
		}
		if court.CurrentTeam == "" {
			return nil, model.ErrCourtVacant
		}
		team, ok := st.Teams[court.CurrentTeam]
		if !ok {
			return nil, model.ErrTeamNotFound
		}

		now := c.clock.Now()
		endedAt := now
		finished = team.Clone()
		finished.State = model.TeamStateFinished
		finished.EndedAt = &endedAt

		var effects []state.Effect
		delete(st.Teams, team.ID)
		effects = append(effects, state.DeleteTeam{ID: team.ID})

		if court.Index > st.Settings.CourtCount {
			// A shrink already dropped this slot; the court retires now
			// that its game is over
			delete(st.Courts, court.ID)
			effects = append(effects, state.DeleteCourt{ID: court.ID})
		} else {
			available := model.CourtStatusAvailable
			noTeam := model.TeamID("")
			paused := false
			elapsed := 0
			court.Status = available
			court.CurrentTeam = noTeam
			court.Paused = paused
			court.ElapsedSec = elapsed
			st.Courts[court.ID] = court
			effects = append(effects, state.PatchCourt{ID: court.ID, Patch: model.CourtPatch{
				Status:      &available,
				CurrentTeam: &noTeam,
				Paused:      &paused,
				ElapsedSec:  &elapsed,
			}})
		}

		waiting := model.PlayerStateWaiting
		patches := make(map[model.PlayerID]model.PlayerPatch, len(team.Members))
		for _, m := range team.Members {
			player, ok := st.Players[m]
			if !ok {
				continue
			}
			teammates := team.Teammates(m)
			player.GameCount++
			player.LastGameEndAt = &endedAt
			if player.TeammateHistory == nil {
				player.TeammateHistory = make(map[model.PlayerID]int, len(teammates))
			}
			for _, other := range teammates {
				player.TeammateHistory[other]++
			}
			player.RecentTeammates = teammates
			player.State = waiting
			st.Players[m] = player

			snapshot := player.Clone()
			gameCount := snapshot.GameCount
			lastEnd := endedAt
			stateCopy := waiting
			patches[m] = model.PlayerPatch{
				State:           &stateCopy,
				GameCount:       &gameCount,
				LastGameEndAt:   &lastEnd,
				TeammateHistory: snapshot.TeammateHistory,
				RecentTeammates: snapshot.RecentTeammates,
			}
		}

		for id, want := range recomputePriority(st) {
			player := st.Players[id]
			player.State = want
			st.Players[id] = player
			stateCopy := want
			patches[id] = patches[id].Merge(model.PlayerPatch{State: &stateCopy})
		}

		ids := make([]model.PlayerID, 0, len(patches))
		for id := range patches {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		for _, id := range ids {
			effects = append(effects, state.PatchPlayer{ID: id, Patch: patches[id]})
		}
		return effects, nil
	})
	if err != nil {
		return nil, err
	}

	c.audit.Record(ctx, audit.TypeGameEnded, map[string]any{
		"team_id":  string(finished.ID),
		"court_id": string(courtID),
	})
	c.logger.Info("game ended",
		slog.String("team_id", string(finished.ID)),
		slog.String("court_id", string(courtID)),
	)
	return &finished, nil
}

// Teams returns the active teams oldest first
func (c *Controller) Teams() []*model.Team {
	st := c.engine.Snapshot()
	sorted := st.SortedTeams()
	teams := make([]*model.Team, len(sorted))
	for i := range sorted {
		teams[i] = &sorted[i]
	}
	return teams
}

// Team returns one team by id
func (c *Controller) Team(id model.TeamID) (*model.Team, error) {
	st := c.engine.Snapshot()
	team, ok := st.Teams[id]
	if !ok {
		return nil, model.ErrTeamNotFound
	}
	return &team, nil
}

// Courts returns the court pool ordered by index
func (c *Controller) Courts() []*model.Court {
	st := c.engine.Snapshot()
	sorted := st.SortedCourts()
	courts := make([]*model.Court, len(sorted))
	for i := range sorted {
		courts[i] = &sorted[i]
	}
	return courts
}

// Settings returns the current session settings
func (c *Controller) Settings() *model.Settings {
	st := c.engine.Snapshot()
	settings := st.Settings
	return &settings
}

// Elapsed reports how long the game on a court has been running, derived
// from the team's start time so it survives reloads. A paused court
// reports its frozen display accumulator instead.
func (c *Controller) Elapsed(courtID model.CourtID) (time.Duration, error) {
	st := c.engine.Snapshot()
	court, ok := st.Courts[courtID]
	if !ok {
		return 0, model.ErrCourtNotFound
	}
	if court.CurrentTeam == "" {
		return 0, model.ErrCourtVacant
	}
	if court.Paused {
		return time.Duration(court.ElapsedSec) * time.Second, nil
	}
	team, ok := st.Teams[court.CurrentTeam]
	if !ok || team.StartedAt == nil {
		return 0, nil
	}
	return c.clock.Since(*team.StartedAt), nil
}

// PauseCourt freezes a court's elapsed display at its current value
func (c *Controller) PauseCourt(ctx context.Context, courtID model.CourtID) error {
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		court, ok := st.Courts[courtID]
		if !ok {
			return nil, model.ErrCourtNotFound
		}
		if court.CurrentTeam == "" {
			return nil, model.ErrCourtVacant
		}
		elapsed := 0
		if team, ok := st.Teams[court.CurrentTeam]; ok && team.StartedAt != nil {
			elapsed = int(c.clock.Since(*team.StartedAt) / time.Second)
		}
		paused := true
		court.Paused = paused
		court.ElapsedSec = elapsed
		st.Courts[court.ID] = court
		return []state.Effect{state.PatchCourt{ID: court.ID, Patch: model.CourtPatch{
			Paused:     &paused,
			ElapsedSec: &elapsed,
		}}}, nil
	})
	if err != nil {
		return err
	}
	c.audit.Record(ctx, audit.TypeCourtPaused, map[string]any{"court_id": string(courtID)})
	return nil
}

// ResumeCourt unfreezes a paused court; elapsed time falls back to the
// start-time derivation
func (c *Controller) ResumeCourt(ctx context.Context, courtID model.CourtID) error {
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		court, ok := st.Courts[courtID]
		if !ok {
			return nil, model.ErrCourtNotFound
		}
		if court.CurrentTeam == "" {
			return nil, model.ErrCourtVacant
		}
		paused := false
		court.Paused = paused
		st.Courts[court.ID] = court
		return []state.Effect{state.PatchCourt{ID: court.ID, Patch: model.CourtPatch{
			Paused: &paused,
		}}}, nil
	})
	if err != nil {
		return err
	}
	c.audit.Record(ctx, audit.TypeCourtResumed, map[string]any{"court_id": string(courtID)})
	return nil
}

// SwapMember replaces a member of a queued team with an eligible player
// from the pool
func (c *Controller) SwapMember(ctx context.Context, teamID model.TeamID, out, in model.PlayerID) error {
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		team, ok := st.Teams[teamID]
		if !ok {
			return nil, model.ErrTeamNotFound
		}
		if team.State != model.TeamStateQueued {
			return nil, model.ErrTeamNotQueued
		}
		idx := team.MemberIndex(out)
		if idx < 0 {
			return nil, model.ErrMemberNotInTeam
		}
		joining, ok := st.Players[in]
		if !ok {
			return nil, model.ErrPlayerNotFound
		}
		if !joining.Eligible() {
			return nil, model.ErrPlayerNotEligible
		}

		team.Members[idx] = in
		st.Teams[teamID] = team
		members := append([]model.PlayerID(nil), team.Members...)

		queued := model.PlayerStateQueued
		joining.State = queued
		st.Players[in] = joining

		effects := []state.Effect{
			state.PatchTeam{ID: teamID, Patch: model.TeamPatch{Members: members}},
			state.PatchPlayer{ID: in, Patch: model.PlayerPatch{State: &queued}},
		}
		if leaving, ok := st.Players[out]; ok {
			releaseTo := releaseState(st, out, teamID)
			leaving.State = releaseTo
			st.Players[out] = leaving
			effects = append(effects, state.PatchPlayer{
				ID:    out,
				Patch: model.PlayerPatch{State: &releaseTo},
			})
		}
		return effects, nil
	})
	if err != nil {
		return err
	}
	c.audit.Record(ctx, audit.TypeMemberSwapped, map[string]any{
		"team_id": string(teamID),
		"out":     string(out),
		"in":      string(in),
	})
	return nil
}

// RemoveMember drops a member from a queued team back into the pool. A
// team emptied this way is disbanded.
func (c *Controller) RemoveMember(ctx context.Context, teamID model.TeamID, memberID model.PlayerID) error {
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		team, ok := st.Teams[teamID]
		if !ok {
			return nil, model.ErrTeamNotFound
		}
		if team.State != model.TeamStateQueued {
			return nil, model.ErrTeamNotQueued
		}
		idx := team.MemberIndex(memberID)
		if idx < 0 {
			return nil, model.ErrMemberNotInTeam
		}

		members := append([]model.PlayerID(nil), team.Members[:idx]...)
		members = append(members, team.Members[idx+1:]...)

		var effects []state.Effect
		if len(members) == 0 {
			delete(st.Teams, teamID)
			effects = append(effects, state.DeleteTeam{ID: teamID})
		} else {
			team.Members = members
			st.Teams[teamID] = team
			effects = append(effects, state.PatchTeam{ID: teamID, Patch: model.TeamPatch{
				Members: members,
			}})
		}

		if leaving, ok := st.Players[memberID]; ok {
			releaseTo := releaseState(st, memberID, teamID)
			leaving.State = releaseTo
			st.Players[memberID] = leaving
			effects = append(effects, state.PatchPlayer{
				ID:    memberID,
				Patch: model.PlayerPatch{State: &releaseTo},
			})
		}
		return effects, nil
	})
	if err != nil {
		return err
	}
	c.audit.Record(ctx, audit.TypeMemberRemoved, map[string]any{
		"team_id":   string(teamID),
		"player_id": string(memberID),
	})
	return nil
}

// UpdateSettings validates and saves new session settings, then grows or
// shrinks the court pool to match
func (c *Controller) UpdateSettings(ctx context.Context, teamSize, courtCount int, gameDuration time.Duration) (*model.Settings, error) {
	var saved model.Settings
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		next := model.Settings{
			TeamSize:     teamSize,
			CourtCount:   courtCount,
			GameDuration: gameDuration,
			CreatedAt:    st.Settings.CreatedAt,
		}
		if next.CreatedAt.IsZero() {
			next.CreatedAt = c.clock.Now()
		}
		if err := next.Validate(); err != nil {
			return nil, err
		}
		st.Settings = next
		saved = next

		effects := []state.Effect{state.PutSettings{Settings: next}}
		effects = append(effects, c.provisionCourts(st)...)
		return effects, nil
	})
	if err != nil {
		return nil, err
	}
	c.audit.Record(ctx, audit.TypeSettingsUpdated, map[string]any{
		"team_size":   saved.TeamSize,
		"court_count": saved.CourtCount,
	})
	return &saved, nil
}

// ResetSession starts the session over: teams are dropped, every player
// returns to waiting with zeroed stats, courts are reprovisioned fresh
// and the audit trail is cleared. Player records themselves survive, as
// do the settings.
func (c *Controller) ResetSession(ctx context.Context) error {
	err := c.engine.Commit(ctx, func(st *state.State) ([]state.Effect, error) {
		var effects []state.Effect
		for _, t := range st.SortedTeams() {
			delete(st.Teams, t.ID)
			effects = append(effects, state.DeleteTeam{ID: t.ID})
		}
		for _, p := range st.SortedPlayers() {
			p.State = model.PlayerStateWaiting
			p.GameCount = 0
			p.LastGameEndAt = nil
			p.TeammateHistory = nil
			p.RecentTeammates = nil
			st.Players[p.ID] = p
			effects = append(effects, state.PutPlayer{Player: p})
		}
		for _, court := range st.SortedCourts() {
			delete(st.Courts, court.ID)
			effects = append(effects, state.DeleteCourt{ID: court.ID})
		}
		effects = append(effects, c.provisionCourts(st)...)
		return effects, nil
	})
	if err != nil {
		return err
	}
	if err := c.audit.Clear(ctx); err != nil {
		c.logger.Warn("audit clear failed", slog.String("error", err.Error()))
	}
	c.audit.Record(ctx, audit.TypeSessionReset, nil)
	c.logger.Info("session reset")
	return nil
}

// provisionCourts grows or shrinks the court pool to the configured
// count. Index slots 1..count are filled in, free courts beyond the
// count are dropped, and occupied courts beyond it stay put until their
// game ends.
func (c *Controller) provisionCourts(st *state.State) []state.Effect {
	var effects []state.Effect
	have := make(map[int]bool, len(st.Courts))
	for _, court := range st.Courts {
		have[court.Index] = true
	}
	for idx := 1; idx <= st.Settings.CourtCount; idx++ {
		if have[idx] {
			continue
		}
		court := model.NewCourt(model.CourtID(c.random.String(model.IDLength, model.IDAlphabet)), idx)
		st.Courts[court.ID] = *court
		effects = append(effects, state.PutCourt{Court: *court})
	}
	for _, court := range st.SortedCourts() {
		if court.Index <= st.Settings.CourtCount || court.Occupied() {
			continue
		}
		delete(st.Courts, court.ID)
		effects = append(effects, state.DeleteCourt{ID: court.ID})
	}
	return effects
}

// occupy moves a queued team onto a free court, realigning the team,
// court and member records in place. Callers have already validated the
// team and court.
func occupy(st *state.State, team model.Team, court model.Court, now time.Time) (model.Team, []state.Effect) {
	playingTeam := model.TeamStatePlaying
	onCourt := court.ID
	startedAt := now
	team.State = playingTeam
	team.CourtID = onCourt
	team.StartedAt = &startedAt
	st.Teams[team.ID] = team

	occupied := model.CourtStatusOccupied
	holder := team.ID
	paused := false
	elapsed := 0
	court.Status = occupied
	court.CurrentTeam = holder
	court.Paused = paused
	court.ElapsedSec = elapsed
	st.Courts[court.ID] = court

	effects := []state.Effect{
		state.PatchTeam{ID: team.ID, Patch: model.TeamPatch{
			State:     &playingTeam,
			CourtID:   &onCourt,
			StartedAt: &startedAt,
		}},
		state.PatchCourt{ID: court.ID, Patch: model.CourtPatch{
			Status:      &occupied,
			CurrentTeam: &holder,
			Paused:      &paused,
			ElapsedSec:  &elapsed,
		}},
	}
	playing := model.PlayerStatePlaying
	for _, m := range team.Members {
		player, ok := st.Players[m]
		if !ok {
			continue
		}
		player.State = playing
		st.Players[m] = player
		effects = append(effects, state.PatchPlayer{
			ID:    m,
			Patch: model.PlayerPatch{State: &playing},
		})
	}
	return team, effects
}

// recomputePriority recomputes the priority flags from scratch: among
// players not resting and not on a team, everyone at the minimum game
// count is flagged, provided that minimum is above zero. Returns only
// the states that need to change.
func recomputePriority(st *state.State) map[model.PlayerID]model.PlayerState {
	minCount := -1
	for _, p := range st.Players {
		if p.State == model.PlayerStateResting || p.Busy() {
			continue
		}
		if minCount < 0 || p.GameCount < minCount {
			minCount = p.GameCount
		}
	}

	changes := make(map[model.PlayerID]model.PlayerState)
	for id, p := range st.Players {
		if p.State == model.PlayerStateResting || p.Busy() {
			continue
		}
		want := model.PlayerStateWaiting
		if p.GameCount == minCount && minCount > 0 {
			want = model.PlayerStatePriority
		}
		if p.State != want {
			changes[id] = want
		}
	}
	return changes
}

// releaseState is what a player falls back to after leaving one team:
// players still held by another active team keep that team's state
func releaseState(st *state.State, id model.PlayerID, exclude model.TeamID) model.PlayerState {
	held := false
	for _, t := range st.Teams {
		if t.ID == exclude || !t.Active() || !t.HasMember(id) {
			continue
		}
		if t.State == model.TeamStatePlaying {
			return model.PlayerStatePlaying
		}
		held = true
	}
	if held {
		return model.PlayerStateQueued
	}
	return model.PlayerStateWaiting
}

// ControllerInterface defines the session controller API
type ControllerInterface interface {
	Bootstrap(ctx context.Context) error
	StartGame(ctx context.Context, teamID model.TeamID, courtID model.CourtID) (*model.Team, error)
	StartAllGames(ctx context.Context) ([]*model.Team, error)
	EndGame(ctx context.Context, courtID model.CourtID) (*model.Team, error)
	Teams() []*model.Team
	Team(id model.TeamID) (*model.Team, error)
	Courts() []*model.Court
	Settings() *model.Settings
	Elapsed(courtID model.CourtID) (time.Duration, error)
	PauseCourt(ctx context.Context, courtID model.CourtID) error
	ResumeCourt(ctx context.Context, courtID model.CourtID) error
	SwapMember(ctx context.Context, teamID model.TeamID, out, in model.PlayerID) error
	RemoveMember(ctx context.Context, teamID model.TeamID, memberID model.PlayerID) error
	UpdateSettings(ctx context.Context, teamSize, courtCount int, gameDuration time.Duration) (*model.Settings, error)
	ResetSession(ctx context.Context) error
}

var _ ControllerInterface = (*Controller)(nil)
