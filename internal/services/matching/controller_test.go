package matching

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/HyunseokSon/Addicton-sub000/internal/dependencies/mocks"
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/audit"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/reconcile"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/scoring"
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
	service := New(scoring.New(), DefaultOptions())
	s.controller = NewController(s.engine, service, recorder, s.clock, s.random, logger)
	s.ctx = context.Background()
}

func (s *ControllerSuite) commit(fn state.MutateFunc) {
	s.Require().NoError(s.engine.Commit(s.ctx, fn))
}

func (s *ControllerSuite) seedPlayers(playerState model.PlayerState, ids ...model.PlayerID) {
	base := s.clock.Now()
	s.commit(func(st *state.State) ([]state.Effect, error) {
		effects := make([]state.Effect, 0, len(ids))
		for i, id := range ids {
			player := model.Player{
				ID:       id,
				Name:     string(id),
				State:    playerState,
				JoinedAt: base.Add(time.Duration(i) * time.Second),
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

func (s *ControllerSuite) setSettings(teamSize, courtCount int) {
	s.commit(func(st *state.State) ([]state.Effect, error) {
		st.Settings.TeamSize = teamSize
		st.Settings.CourtCount = courtCount
		return []state.Effect{state.PutSettings{Settings: st.Settings}}, nil
	})
}

// AutoMatch

func (s *ControllerSuite) TestAutoMatchEightWaitingFillsTwoCourts() {
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8")

	formed, err := s.controller.AutoMatch(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(formed, 2)
	var drafted []model.PlayerID
	for _, team := range formed {
		s.Equal(model.TeamStateQueued, team.State)
		s.Len(team.Members, 4)
		drafted = append(drafted, team.Members...)
	}
	s.ElementsMatch([]model.PlayerID{"p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8"}, drafted)

	snap := s.engine.Snapshot()
	for _, id := range drafted {
		s.Equal(model.PlayerStateQueued, snap.Players[id].State)
	}

	stored, err := s.storage.GetAllTeams(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, 2)
}

func (s *ControllerSuite) TestAutoMatchRecordsAudit() {
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2", "p3", "p4")

	_, err := s.controller.AutoMatch(s.ctx)
	s.Require().NoError(err)

	log, err := s.storage.GetAuditLog(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(log, 1)
	s.Equal(audit.TypeAutoMatch, log[0].Type)
	s.Equal(1, log[0].Payload["team_count"])
}

func (s *ControllerSuite) TestAutoMatchRespectsQueueCapacity() {
	s.seedQueuedTeam("held", "q1", "q2", "q3", "q4")
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2", "p3", "p4", "p5", "p6", "p7", "p8")

	formed, err := s.controller.AutoMatch(s.ctx)
	s.Require().NoError(err)
	s.Len(formed, 1)
}

func (s *ControllerSuite) TestAutoMatchFailsWhenQueueFull() {
	s.setSettings(2, 1)
	s.seedQueuedTeam("held", "q1", "q2")
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2")

	_, err := s.controller.AutoMatch(s.ctx)
	s.ErrorIs(err, model.ErrQueueFull)

	stored, err := s.storage.GetAllTeams(s.ctx)
	s.Require().NoError(err)
	s.Len(stored, 1)
}

func (s *ControllerSuite) TestAutoMatchFailsWithTooFewEligible() {
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2", "p3")

	_, err := s.controller.AutoMatch(s.ctx)
	s.ErrorIs(err, model.ErrInsufficientPlayers)
}

func (s *ControllerSuite) TestAutoMatchDraftsPriorityFirst() {
	s.seedPlayers(model.PlayerStateWaiting, "w1", "w2", "w3", "w4")
	s.seedPlayers(model.PlayerStatePriority, "vip")

	formed, err := s.controller.AutoMatch(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(formed, 1)
	s.Contains(formed[0].Members, model.PlayerID("vip"))

	// The passed-over player stays eligible
	snap := s.engine.Snapshot()
	waiting := 0
	for _, p := range snap.Players {
		if p.State == model.PlayerStateWaiting {
			waiting++
		}
	}
	s.Equal(1, waiting)
}

func (s *ControllerSuite) TestAutoMatchIgnoresRestingAndQueuedPlayers() {
	s.setSettings(2, 3)
	s.seedQueuedTeam("held", "q1", "q2")
	s.seedPlayers(model.PlayerStateWaiting, "w1", "w2")
	s.seedPlayers(model.PlayerStateResting, "r1")

	formed, err := s.controller.AutoMatch(s.ctx)
	s.Require().NoError(err)

	s.Require().Len(formed, 1)
	s.ElementsMatch([]model.PlayerID{"w1", "w2"}, formed[0].Members)
}

// FormTeam

func (s *ControllerSuite) TestFormTeamQueuesPickedPlayers() {
	s.setSettings(2, 2)
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2", "p3")

	team, err := s.controller.FormTeam(s.ctx, []model.PlayerID{"p3", "p1"})
	s.Require().NoError(err)

	s.Equal([]model.PlayerID{"p3", "p1"}, team.Members)
	s.Equal(model.TeamStateQueued, team.State)

	snap := s.engine.Snapshot()
	s.Equal(model.PlayerStateQueued, snap.Players["p1"].State)
	s.Equal(model.PlayerStateWaiting, snap.Players["p2"].State)
	s.Equal(model.PlayerStateQueued, snap.Players["p3"].State)
}

func (s *ControllerSuite) TestFormTeamRejectsWrongSize() {
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2")

	_, err := s.controller.FormTeam(s.ctx, []model.PlayerID{"p1", "p2"})
	s.ErrorIs(err, model.ErrTeamSizeMismatch)
}

func (s *ControllerSuite) TestFormTeamRejectsDuplicates() {
	s.setSettings(2, 2)
	s.seedPlayers(model.PlayerStateWaiting, "p1")

	_, err := s.controller.FormTeam(s.ctx, []model.PlayerID{"p1", "p1"})
	s.ErrorIs(err, model.ErrDuplicateMembers)
}

func (s *ControllerSuite) TestFormTeamRejectsUnknownPlayer() {
	s.setSettings(2, 2)
	s.seedPlayers(model.PlayerStateWaiting, "p1")

	_, err := s.controller.FormTeam(s.ctx, []model.PlayerID{"p1", "nobody"})
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *ControllerSuite) TestFormTeamRejectsIneligiblePlayer() {
	s.setSettings(2, 2)
	s.seedPlayers(model.PlayerStateWaiting, "p1")
	s.seedPlayers(model.PlayerStateResting, "r1")

	_, err := s.controller.FormTeam(s.ctx, []model.PlayerID{"p1", "r1"})
	s.ErrorIs(err, model.ErrPlayerNotEligible)
}

func (s *ControllerSuite) TestFormTeamFailsWhenQueueFull() {
	s.setSettings(2, 1)
	s.seedQueuedTeam("held", "q1", "q2")
	s.seedPlayers(model.PlayerStateWaiting, "p1", "p2")

	_, err := s.controller.FormTeam(s.ctx, []model.PlayerID{"p1", "p2"})
	s.ErrorIs(err, model.ErrQueueFull)
}
