package scoring

import (
	"github.com/HyunseokSon/Addicton-sub000/internal/model"
)

// Rank values on the S..F ladder. An unranked player sits at the midpoint
// so missing assessments neither sink nor carry a team.
const (
	topRankValue  = 7.0
	unrankedValue = topRankValue / 2
)

// Gender weights applied to the rank value. Fixed for mixed play: the
// engine has no per-session knobs for these.
const (
	maleWeight    = 1.1
	femaleWeight  = 0.9
	neutralWeight = 1.0
)

var rankValues = map[model.Rank]float64{
	model.RankS: 7,
	model.RankA: 6,
	model.RankB: 5,
	model.RankC: 4,
	model.RankD: 3,
	model.RankE: 2,
	model.RankF: 1,
}

// Service computes player skill scores used by the team balancer
type Service struct{}

// New creates a new scoring service
func New() *Service {
	return &Service{}
}

// RankValue maps a rank onto the 7..1 ladder, midpoint for unranked
func (s *Service) RankValue(rank model.Rank) float64 {
	if v, ok := rankValues[rank]; ok {
		return v
	}
	return unrankedValue
}

// GenderWeight returns the multiplier applied to a player's rank value
func (s *Service) GenderWeight(gender model.Gender) float64 {
	switch gender {
	case model.GenderMale:
		return maleWeight
	case model.GenderFemale:
		return femaleWeight
	default:
		return neutralWeight
	}
}

// Score is a player's matchmaking weight: rank value times gender weight
func (s *Service) Score(player *model.Player) float64 {
	return s.RankValue(player.Rank) * s.GenderWeight(player.Gender)
}

// TeamScore sums the scores of the given players
func (s *Service) TeamScore(players []*model.Player) float64 {
	total := 0.0
	for _, p := range players {
		total += s.Score(p)
	}
	return total
}

// Interface for dependency injection
type ServiceInterface interface {
	RankValue(rank model.Rank) float64
	GenderWeight(gender model.Gender) float64
	Score(player *model.Player) float64
	TeamScore(players []*model.Player) float64
}

var _ ServiceInterface = (*Service)(nil)
