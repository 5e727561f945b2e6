package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/mocks"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/reconcile"
	"github.com/HyunseokSon/Addicton-sub000/internal/state"
	"github.com/HyunseokSon/Addicton-sub000/internal/storage/memory"
	"github.com/HyunseokSon/Addicton-sub000/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	engine     *reconcile.Engine
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger := testutil.NopLogger()
	s.storage = memory.New()
	s.engine = reconcile.NewEngine(state.NewContainer(state.New()), s.storage, logger)
	s.clock = mocks.NewMockClock(time.Date(2024, 6, 1, 19, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	recorder := audit.NewRecorder(s.storage, s.clock, logger)
	s.controller = NewController(s.engine, recorder, s.clock, s.random, logger)
	s.ctx = context.Background()

	s.Require().NoError(s.controller.Bootstrap(s.ctx))
}

func (s *ControllerSuite) commit(fn state.MutateFunc) {
	s.Require().NoError(s.engine.Commit(s.ctx, fn))
}

func (s *ControllerSuite) seedPlayers(playerState model.PlayerState, gameCount int, ids ...model.PlayerID) {
	base := s.clock.Now()
	s.commit(func(st *state.State) ([]state.Effect, error) {
		effects := make([]state.Effect, 0, len(ids))
		for i, id := range ids {
			player := model.Player{
				ID:        id,
				Name:      string(id),
				State:     playerState,
				GameCount: gameCount,
				JoinedAt:  base.Add(time.Duration(i) * time.Second),
			}
			st.Players[id] = player
			effects = append(effects, state.PutPlayer{Player: player})
		}
		return effects, nil
	})
}

func (s *ControllerSuite) seedQueuedTeam(id model.TeamID, members ...model.PlayerID) {
	base := s.clock.Now()
	s.commit(func(st *state.State) ([]state.Effect, error) {
		effects := make([]state.Effect, 0, len(members)+1)
		for i, m := range members {
			player := model.Player{
				ID:       m,
				Name:     string(m),
				State:    model.PlayerStateQueued,
				JoinedAt: base.Add(time.Duration(i) * time.Second),
			}
			st.Players[m] = player
			effects = append(effects, state.PutPlayer{Player: player})
		}
		team := model.Team{
			ID:        id,
			Members:   members,
			State:     model.TeamStateQueued,
			CreatedAt: base,
		}
		st.Teams[id] = team
		effects = append(effects, state.PutTeam{Team: team})
		return effects, nil
	})
}

// seedSharedTeam queues a second team reusing already-seeded players
func (s *ControllerSuite) seedSharedTeam(id model.TeamID, members ...model.PlayerID) {
	s.commit(func(st *state.State) ([]state.Effect, error) {
		team := model.Team{
			ID:        id,
			Members:   members,
			State:     model.TeamStateQueued,
			CreatedAt: s.clock.Now().Add(time.Second),
		}
		st.Teams[id] = team
		return []state.Effect{state.PutTeam{Team: team}}, nil
	})
}

func (s *ControllerSuite) courtByIndex(index int) model.Court {
	snap := s.engine.Snapshot()
	for _, court := range snap.SortedCourts() {
		if court.Index == index {
			return court
		}
	}
	s.FailNow("no court at index", "index %d", index)
	return model.Court{}
}

// Bootstrap

func (s *ControllerSuite) TestBootstrapProvisionsDefaultCourts() {
	snap := s.engine.Snapshot()
	courts := snap.SortedCourts()
	s.Require().Len(courts, model.DefaultCourtCount)
	s.Equal(1, courts[0].Index)
	s.Equal("Court 1", courts[0].Name)
	s.Equal(model.CourtStatusAvailable, courts[0].Status)
	s.Equal(2, courts[1].Index)

	stored, err := s.storage.GetAllCourts(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, model.DefaultCourtCount)
}

func (s *ControllerSuite) TestBootstrapIsIdempotent() {
	s.Require().NoError(s.controller.Bootstrap(s.ctx))
	s.Len(s.engine.Snapshot().Courts, model.DefaultCourtCount)
}

// StartGame

func (s *ControllerSuite) TestStartGameTakesLowestFreeCourt() {
	s.seedQueuedTeam("t1", "p1", "p2", "p3", "p4")

	team, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)

	court1 := s.courtByIndex(1)
	s.Equal(model.TeamStatePlaying, team.State)
	s.Equal(court1.ID, team.CourtID)
	s.Require().NotNil(team.StartedAt)
	s.Equal(s.clock.Now(), *team.StartedAt)

	s.Equal(model.CourtStatusOccupied, court1.Status)
	s.Equal(model.TeamID("t1"), court1.CurrentTeam)

	snap := s.engine.Snapshot()
	for _, m := range []model.PlayerID{"p1", "p2", "p3", "p4"} {
		s.Equal(model.PlayerStatePlaying, snap.Players[m].State)
	}
}

func (s *ControllerSuite) TestStartGameOnChosenCourt() {
	s.seedQueuedTeam("t1", "p1", "p2")
	court2 := s.courtByIndex(2)

	team, err := s.controller.StartGame(s.ctx, "t1", court2.ID)
	s.Require().NoError(err)

	s.Equal(court2.ID, team.CourtID)
	s.Equal(model.CourtStatusAvailable, s.courtByIndex(1).Status)
	s.Equal(model.CourtStatusOccupied, s.courtByIndex(2).Status)
}

func (s *ControllerSuite) TestStartGameFailsOnOccupiedCourt() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedQueuedTeam("t2", "p3", "p4")
	court1 := s.courtByIndex(1)

	_, err := s.controller.StartGame(s.ctx, "t1", court1.ID)
	s.Require().NoError(err)

	_, err = s.controller.StartGame(s.ctx, "t2", court1.ID)
	s.ErrorIs(err, model.ErrCourtOccupied)
}

func (s *ControllerSuite) TestStartGameFailsWithoutFreeCourt() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedQueuedTeam("t2", "p3", "p4")
	s.seedQueuedTeam("t3", "p5", "p6")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	_, err = s.controller.StartGame(s.ctx, "t2", "")
	s.Require().NoError(err)

	_, err = s.controller.StartGame(s.ctx, "t3", "")
	s.ErrorIs(err, model.ErrNoAvailableCourt)
}

func (s *ControllerSuite) TestStartGameFailsForNonQueuedTeam() {
	s.seedQueuedTeam("t1", "p1", "p2")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)

	_, err = s.controller.StartGame(s.ctx, "t1", "")
	s.ErrorIs(err, model.ErrTeamNotQueued)
}

func (s *ControllerSuite) TestStartGameFailsForUnknownTeam() {
	_, err := s.controller.StartGame(s.ctx, "nobody", "")
	s.ErrorIs(err, model.ErrTeamNotFound)
}

func (s *ControllerSuite) TestStartGameGuardsAgainstDoubleBooking() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateWaiting, 0, "p3")
	s.seedSharedTeam("t2", "p2", "p3")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)

	// p2 is now playing on t1, so t2 must not start
	_, err = s.controller.StartGame(s.ctx, "t2", "")
	s.ErrorIs(err, model.ErrPlayerAlreadyPlaying)

	snap := s.engine.Snapshot()
	s.Equal(model.TeamStateQueued, snap.Teams["t2"].State)
	s.Equal(model.CourtStatusAvailable, s.courtByIndex(2).Status)
}

// StartAllGames

func (s *ControllerSuite) TestStartAllGamesFillsFreeCourts() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedQueuedTeam("t2", "p3", "p4")
	s.seedQueuedTeam("t3", "p5", "p6")

	started, err := s.controller.StartAllGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(started, 2)

	snap := s.engine.Snapshot()
	s.Equal(model.TeamStatePlaying, snap.Teams["t1"].State)
	s.Equal(model.TeamStatePlaying, snap.Teams["t2"].State)
	s.Equal(model.TeamStateQueued, snap.Teams["t3"].State)
	s.Equal(model.CourtStatusOccupied, s.courtByIndex(1).Status)
	s.Equal(model.CourtStatusOccupied, s.courtByIndex(2).Status)
}

func (s *ControllerSuite) TestStartAllGamesSkipsBlockedTeams() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateWaiting, 0, "p3")
	s.seedSharedTeam("t2", "p2", "p3")
	s.seedQueuedTeam("t3", "p4", "p5")

	started, err := s.controller.StartAllGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(started, 2)
	s.Equal(model.TeamID("t1"), started[0].ID)
	s.Equal(model.TeamID("t3"), started[1].ID)

	// t2 shares p2 with the already-started t1
	s.Equal(model.TeamStateQueued, s.engine.Snapshot().Teams["t2"].State)
}

func (s *ControllerSuite) TestStartAllGamesWithNothingQueued() {
	started, err := s.controller.StartAllGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(started)

	log, err := s.storage.GetAuditLog(s.ctx)
	s.Require().NoError(err)
	s.Empty(log)
}

// EndGame

func (s *ControllerSuite) TestEndGameUpdatesEveryMemberAndFreesCourt() {
	s.seedQueuedTeam("t1", "p1", "p2", "p3", "p4")
	s.seedPlayers(model.PlayerStateWaiting, 0, "idle")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	court := s.courtByIndex(1)

	s.clock.Advance(20 * time.Minute)
	finished, err := s.controller.EndGame(s.ctx, court.ID)
	s.Require().NoError(err)

	s.Equal(model.TeamStateFinished, finished.State)
	s.Require().NotNil(finished.EndedAt)
	s.Equal(s.clock.Now(), *finished.EndedAt)

	snap := s.engine.Snapshot()
	s.NotContains(snap.Teams, model.TeamID("t1"))
	s.Equal(model.CourtStatusAvailable, s.courtByIndex(1).Status)

	members := []model.PlayerID{"p1", "p2", "p3", "p4"}
	for _, m := range members {
		player := snap.Players[m]
		s.Equal(model.PlayerStateWaiting, player.State)
		s.Equal(1, player.GameCount)
		s.Require().NotNil(player.LastGameEndAt)
		s.Equal(s.clock.Now(), *player.LastGameEndAt)
		s.Len(player.RecentTeammates, 3)
		for _, other := range members {
			if other == m {
				continue
			}
			s.Equal(1, player.TimesPlayedWith(other))
			s.Contains(player.RecentTeammates, other)
		}
	}

	// The team record is gone from the store as well
	teams, err := s.storage.GetAllTeams(s.ctx)
	s.Require().NoError(err)
	s.Empty(teams)
}

func (s *ControllerSuite) TestEndGamePromotesPlayersAtPositiveMinimum() {
	s.seedQueuedTeam("t1", "p1", "p2")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	_, err = s.controller.EndGame(s.ctx, s.courtByIndex(1).ID)
	s.Require().NoError(err)

	snap := s.engine.Snapshot()
	s.Equal(model.PlayerStatePriority, snap.Players["p1"].State)
	s.Equal(model.PlayerStatePriority, snap.Players["p2"].State)
}

func (s *ControllerSuite) TestEndGameNoPromotionWhileSomeoneHasNotPlayed() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateWaiting, 0, "fresh")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	_, err = s.controller.EndGame(s.ctx, s.courtByIndex(1).ID)
	s.Require().NoError(err)

	snap := s.engine.Snapshot()
	s.Equal(model.PlayerStateWaiting, snap.Players["p1"].State)
	s.Equal(model.PlayerStateWaiting, snap.Players["p2"].State)
	s.Equal(model.PlayerStateWaiting, snap.Players["fresh"].State)
}

func (s *ControllerSuite) TestEndGameDemotesStalePriority() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStatePriority, 2, "stale")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	_, err = s.controller.EndGame(s.ctx, s.courtByIndex(1).ID)
	s.Require().NoError(err)

	snap := s.engine.Snapshot()
	s.Equal(model.PlayerStatePriority, snap.Players["p1"].State)
	s.Equal(model.PlayerStateWaiting, snap.Players["stale"].State)
}

func (s *ControllerSuite) TestEndGameLeavesRestingPlayersAlone() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateResting, 0, "bench")

	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	_, err = s.controller.EndGame(s.ctx, s.courtByIndex(1).ID)
	s.Require().NoError(err)

	s.Equal(model.PlayerStateResting, s.engine.Snapshot().Players["bench"].State)
}

func (s *ControllerSuite) TestEndGameFailsOnVacantCourt() {
	_, err := s.controller.EndGame(s.ctx, s.courtByIndex(1).ID)
	s.ErrorIs(err, model.ErrCourtVacant)
}

func (s *ControllerSuite) TestEndGameFailsOnUnknownCourt() {
	_, err := s.controller.EndGame(s.ctx, "nowhere")
	s.ErrorIs(err, model.ErrCourtNotFound)
}

// Elapsed / pause

func (s *ControllerSuite) TestElapsedDerivesFromStartTime() {
	s.seedQueuedTeam("t1", "p1", "p2")
	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)

	s.clock.Advance(5 * time.Minute)

	elapsed, err := s.controller.Elapsed(s.courtByIndex(1).ID)
	s.Require().NoError(err)
	s.Equal(5*time.Minute, elapsed)
}

func (s *ControllerSuite) TestElapsedFrozenWhilePaused() {
	s.seedQueuedTeam("t1", "p1", "p2")
	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	court := s.courtByIndex(1)

	s.clock.Advance(3 * time.Minute)
	s.Require().NoError(s.controller.PauseCourt(s.ctx, court.ID))
	s.clock.Advance(10 * time.Minute)

	elapsed, err := s.controller.Elapsed(court.ID)
	s.Require().NoError(err)
	s.Equal(3*time.Minute, elapsed)
}

func (s *ControllerSuite) TestResumeRestoresDerivedElapsed() {
	s.seedQueuedTeam("t1", "p1", "p2")
	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	court := s.courtByIndex(1)

	s.clock.Advance(3 * time.Minute)
	s.Require().NoError(s.controller.PauseCourt(s.ctx, court.ID))
	s.clock.Advance(10 * time.Minute)
	s.Require().NoError(s.controller.ResumeCourt(s.ctx, court.ID))

	elapsed, err := s.controller.Elapsed(court.ID)
	s.Require().NoError(err)
	s.Equal(13*time.Minute, elapsed)
}

func (s *ControllerSuite) TestPauseFailsOnVacantCourt() {
	s.ErrorIs(s.controller.PauseCourt(s.ctx, s.courtByIndex(1).ID), model.ErrCourtVacant)
}

// Roster edits

func (s *ControllerSuite) TestSwapMemberReplacesQueuedPlayer() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateWaiting, 0, "sub")

	s.Require().NoError(s.controller.SwapMember(s.ctx, "t1", "p2", "sub"))

	snap := s.engine.Snapshot()
	s.Equal([]model.PlayerID{"p1", "sub"}, snap.Teams["t1"].Members)
	s.Equal(model.PlayerStateQueued, snap.Players["sub"].State)
	s.Equal(model.PlayerStateWaiting, snap.Players["p2"].State)
}

func (s *ControllerSuite) TestSwapMemberKeepsPlayerHeldElsewhere() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateWaiting, 0, "p3")
	s.seedSharedTeam("t2", "p2", "p3")
	s.seedPlayers(model.PlayerStateWaiting, 0, "sub")

	s.Require().NoError(s.controller.SwapMember(s.ctx, "t1", "p2", "sub"))

	// p2 left t1 but still sits on t2
	s.Equal(model.PlayerStateQueued, s.engine.Snapshot().Players["p2"].State)
}

func (s *ControllerSuite) TestSwapMemberRejectsIneligibleJoiner() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateResting, 0, "bench")

	err := s.controller.SwapMember(s.ctx, "t1", "p2", "bench")
	s.ErrorIs(err, model.ErrPlayerNotEligible)
}

func (s *ControllerSuite) TestSwapMemberRejectsOutsider() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateWaiting, 0, "sub")

	err := s.controller.SwapMember(s.ctx, "t1", "sub", "sub")
	s.ErrorIs(err, model.ErrMemberNotInTeam)
}

func (s *ControllerSuite) TestSwapMemberRejectsPlayingTeam() {
	s.seedQueuedTeam("t1", "p1", "p2")
	s.seedPlayers(model.PlayerStateWaiting, 0, "sub")
	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)

	s.ErrorIs(s.controller.SwapMember(s.ctx, "t1", "p1", "sub"), model.ErrTeamNotQueued)
}

func (s *ControllerSuite) TestRemoveMemberReturnsPlayerToPool() {
	s.seedQueuedTeam("t1", "p1", "p2", "p3")

	s.Require().NoError(s.controller.RemoveMember(s.ctx, "t1", "p2"))

	snap := s.engine.Snapshot()
	s.Equal([]model.PlayerID{"p1", "p3"}, snap.Teams["t1"].Members)
	s.Equal(model.PlayerStateWaiting, snap.Players["p2"].State)
}

func (s *ControllerSuite) TestRemoveLastMemberDisbandsTeam() {
	s.seedQueuedTeam("t1", "solo")

	s.Require().NoError(s.controller.RemoveMember(s.ctx, "t1", "solo"))

	snap := s.engine.Snapshot()
	s.NotContains(snap.Teams, model.TeamID("t1"))
	s.Equal(model.PlayerStateWaiting, snap.Players["solo"].State)
}

// Settings

func (s *ControllerSuite) TestUpdateSettingsGrowsCourtPool() {
	saved, err := s.controller.UpdateSettings(s.ctx, 4, 4, model.DefaultGameDuration)
	s.Require().NoError(err)
	s.Equal(4, saved.CourtCount)

	snap := s.engine.Snapshot()
	courts := snap.SortedCourts()
	s.Require().Len(courts, 4)
	s.Equal(3, courts[2].Index)
	s.Equal(4, courts[3].Index)
}

func (s *ControllerSuite) TestUpdateSettingsShrinkDropsOnlyFreeCourts() {
	s.seedQueuedTeam("t1", "p1", "p2")
	court2 := s.courtByIndex(2)
	_, err := s.controller.StartGame(s.ctx, "t1", court2.ID)
	s.Require().NoError(err)

	_, err = s.controller.UpdateSettings(s.ctx, 4, 1, model.DefaultGameDuration)
	s.Require().NoError(err)

	// Court 2 is occupied, so it outlives the shrink
	snap := s.engine.Snapshot()
	courts := snap.SortedCourts()
	s.Require().Len(courts, 2)
	s.Equal(model.CourtStatusOccupied, courts[1].Status)
}

func (s *ControllerSuite) TestSurplusCourtRetiresWhenItsGameEnds() {
	s.seedQueuedTeam("t1", "p1", "p2")
	court2 := s.courtByIndex(2)
	_, err := s.controller.StartGame(s.ctx, "t1", court2.ID)
	s.Require().NoError(err)
	_, err = s.controller.UpdateSettings(s.ctx, 4, 1, model.DefaultGameDuration)
	s.Require().NoError(err)

	_, err = s.controller.EndGame(s.ctx, court2.ID)
	s.Require().NoError(err)

	snap := s.engine.Snapshot()
	courts := snap.SortedCourts()
	s.Require().Len(courts, 1)
	s.Equal(1, courts[0].Index)
}

func (s *ControllerSuite) TestUpdateSettingsValidatesRanges() {
	_, err := s.controller.UpdateSettings(s.ctx, 1, 2, model.DefaultGameDuration)
	s.ErrorIs(err, model.ErrTeamSizeRange)

	_, err = s.controller.UpdateSettings(s.ctx, 4, 0, model.DefaultGameDuration)
	s.ErrorIs(err, model.ErrCourtCountRange)

	_, err = s.controller.UpdateSettings(s.ctx, 4, model.MaxCourtCount+1, model.DefaultGameDuration)
	s.ErrorIs(err, model.ErrCourtCountRange)
}

// Reset

func (s *ControllerSuite) TestResetSessionZeroesPlayersAndDropsTeams() {
	s.seedQueuedTeam("t1", "p1", "p2")
	_, err := s.controller.StartGame(s.ctx, "t1", "")
	s.Require().NoError(err)
	s.clock.Advance(10 * time.Minute)
	_, err = s.controller.EndGame(s.ctx, s.courtByIndex(1).ID)
	s.Require().NoError(err)
	s.seedQueuedTeam("t2", "p3", "p4")

	s.Require().NoError(s.controller.ResetSession(s.ctx))

	snap := s.engine.Snapshot()
	s.Empty(snap.Teams)
	s.Require().Len(snap.Players, 4)
	for _, id := range []model.PlayerID{"p1", "p2", "p3", "p4"} {
		player := snap.Players[id]
		s.Equal(model.PlayerStateWaiting, player.State)
		s.Zero(player.GameCount)
		s.Nil(player.LastGameEndAt)
		s.Empty(player.TeammateHistory)
		s.Empty(player.RecentTeammates)
	}

	log, err := s.storage.GetAuditLog(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(log, 1)
	s.Equal(audit.TypeSessionReset, log[0].Type)
}

func (s *ControllerSuite) TestResetSessionKeepsSettingsAndReprovisions() {
	_, err := s.controller.UpdateSettings(s.ctx, 2, 3, model.DefaultGameDuration)
	s.Require().NoError(err)
	beforeSnap := s.engine.Snapshot()
	before := beforeSnap.SortedCourts()

	s.Require().NoError(s.controller.ResetSession(s.ctx))

	snap := s.engine.Snapshot()
	s.Equal(2, snap.Settings.TeamSize)
	s.Equal(3, snap.Settings.CourtCount)

	after := snap.SortedCourts()
	s.Require().Len(after, 3)
	for i, court := range after {
		s.Equal(i+1, court.Index)
		s.NotEqual(before[i].ID, court.ID)
	}
}
