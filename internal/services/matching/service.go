package matching

import (
	"sort"

	"github.com/HyunseokSon/Addicton-sub000/internal/model"
	"github.com/HyunseokSon/Addicton-sub000/internal/services/scoring"
)

// Service plans new teams from the eligible pool: a fairness-ordered
// draft, score blocks, then a diversity pass over the blocks
type Service struct {
	scoring *scoring.Service
	options Options
}

// New creates a matching service. options tunes the diversity pass.
func New(scoring *scoring.Service, options Options) *Service {
	return &Service{
		scoring: scoring,
		options: options,
	}
}

// DraftOrder filters players down to the eligible pool and sorts it into
// selection order: priority players first, then fewest games played,
// then longest off court. Players who have never played sort after
// players who have; remaining ties keep the caller's order.
func (s *Service) DraftOrder(players []model.Player) []model.Player {
	pool := make([]model.Player, 0, len(players))
	for _, p := range players {
		if p.Eligible() {
			pool = append(pool, p)
		}
	}
	sort.SliceStable(pool, func(i, j int) bool {
		a, b := &pool[i], &pool[j]
		if (a.State == model.PlayerStatePriority) != (b.State == model.PlayerStatePriority) {
			return a.State == model.PlayerStatePriority
		}
		if a.GameCount != b.GameCount {
			return a.GameCount < b.GameCount
		}
		return restedLonger(a, b)
	})
	return pool
}

// restedLonger reports whether a has been off court longer than b
func restedLonger(a, b *model.Player) bool {
	switch {
	case a.LastGameEndAt == nil:
		return false
	case b.LastGameEndAt == nil:
		return true
	default:
		return a.LastGameEndAt.Before(*b.LastGameEndAt)
	}
}

// PlanTeams drafts the first teamCount*teamSize players from the ordered
// pool and cuts them into contiguous blocks by descending score: the
// strongest teamSize players form the first team, the next block the
// second, and so on. Blocks keep similar skill together on one team
// rather than spreading it across teams.
func (s *Service) PlanTeams(ordered []model.Player, teamSize, teamCount int) [][]model.PlayerID {
	if teamSize <= 0 || teamCount <= 0 || len(ordered) < teamSize*teamCount {
		return nil
	}
	drafted := make([]model.Player, teamSize*teamCount)
	copy(drafted, ordered)
	sort.SliceStable(drafted, func(i, j int) bool {
		return s.scoring.Score(&drafted[i]) > s.scoring.Score(&drafted[j])
	})

	teams := make([][]model.PlayerID, teamCount)
	for i := range teams {
		block := drafted[i*teamSize : (i+1)*teamSize]
		members := make([]model.PlayerID, teamSize)
		for j := range block {
			members[j] = block[j].ID
		}
		teams[i] = members
	}
	return teams
}

// ServiceInterface defines the matching planner API
type ServiceInterface interface {
	DraftOrder(players []model.Player) []model.Player
	PlanTeams(ordered []model.Player, teamSize, teamCount int) [][]model.PlayerID
	Optimize(teams [][]model.PlayerID, players map[model.PlayerID]model.Player) [][]model.PlayerID
}

var _ ServiceInterface = (*Service)(nil)
