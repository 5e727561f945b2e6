package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
)

type ScoringSuite struct {
	suite.Suite
	service *Service
}

func TestScoringSuite(t *testing.T) {
	suite.Run(t, new(ScoringSuite))
}

func (s *ScoringSuite) SetupTest() {
	s.service = New()
}

func (s *ScoringSuite) TestRankLadder() {
	cases := []struct {
		rank model.Rank
		want float64
	}{
		{model.RankS, 7},
		{model.RankA, 6},
		{model.RankB, 5},
		{model.RankC, 4},
		{model.RankD, 3},
		{model.RankE, 2},
		{model.RankF, 1},
	}
	for _, c := range cases {
		s.Equal(c.want, s.service.RankValue(c.rank), "rank %s", c.rank)
	}
}

func (s *ScoringSuite) TestUnrankedIsMidpoint() {
	s.Equal(3.5, s.service.RankValue(""))
}

func (s *ScoringSuite) TestGenderWeights() {
	s.Equal(1.1, s.service.GenderWeight(model.GenderMale))
	s.Equal(0.9, s.service.GenderWeight(model.GenderFemale))
	s.Equal(1.0, s.service.GenderWeight(""))
}

func (s *ScoringSuite) TestScoreCombinesRankAndGender() {
	male := &model.Player{Rank: model.RankA, Gender: model.GenderMale}
	female := &model.Player{Rank: model.RankA, Gender: model.GenderFemale}
	unspecified := &model.Player{Rank: model.RankA}

	s.InDelta(6.6, s.service.Score(male), 1e-9)
	s.InDelta(5.4, s.service.Score(female), 1e-9)
	s.InDelta(6.0, s.service.Score(unspecified), 1e-9)
}

func (s *ScoringSuite) TestScoreUnrankedUnspecified() {
	p := &model.Player{}
	s.InDelta(3.5, s.service.Score(p), 1e-9)
}

func (s *ScoringSuite) TestTeamScore() {
	players := []*model.Player{
		{Rank: model.RankS},
		{Rank: model.RankF},
	}
	s.InDelta(8.0, s.service.TeamScore(players), 1e-9)
}
