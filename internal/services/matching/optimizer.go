package matching

import "github.com/HyunseokSon/Addicton-sub000/internal/model"

// Options tune the teammate-diversity pass
type Options struct {
	// OverlapThreshold is the overlap a team must exceed before the
	// optimizer tries swapping its members away
	OverlapThreshold int
	// MaxPasses bounds the sweeps over the team pairs
	MaxPasses int
	// Accept judges a candidate swap by the combined overlap of the two
	// teams before and after it. nil accepts strict decreases.
	Accept func(before, after int) bool
}

// DefaultOptions returns the stock diversity tuning
func DefaultOptions() Options {
	return Options{
		OverlapThreshold: 2,
		MaxPasses:        20,
	}
}

func (o Options) accept(before, after int) bool {
	if o.Accept != nil {
		return o.Accept(before, after)
	}
	return after < before
}

// Overlap counts the member pairs that have played together before
func Overlap(members []model.PlayerID, players map[model.PlayerID]model.Player) int {
	n := 0
	for i := 0; i < len(members); i++ {
		p, ok := players[members[i]]
		if !ok {
			continue
		}
		for j := i + 1; j < len(members); j++ {
			if p.TimesPlayedWith(members[j]) > 0 {
				n++
			}
		}
	}
	return n
}

// Optimize reduces repeat pairings across the planned teams. Every team
// whose overlap exceeds the threshold tries single-member swaps with
// every other team, keeping a swap only when the acceptance criterion
// passes; sweeps repeat until one changes nothing or MaxPasses is hit.
// Greedy local search: it can settle in a local minimum.
func (s *Service) Optimize(teams [][]model.PlayerID, players map[model.PlayerID]model.Player) [][]model.PlayerID {
	if len(teams) < 2 {
		return teams
	}
	work := make([][]model.PlayerID, len(teams))
	for i, t := range teams {
		work[i] = append([]model.PlayerID(nil), t...)
	}

	for pass := 0; pass < s.options.MaxPasses; pass++ {
		improved := false
		for a := range work {
			if Overlap(work[a], players) <= s.options.OverlapThreshold {
				continue
			}
			for b := range work {
				if b == a {
					continue
				}
				if s.swapDown(work[a], work[b], players) {
					improved = true
				}
			}
		}
		if !improved {
			break
		}
	}
	return work
}

// swapDown tries every single-member exchange between the two teams,
// keeping each exchange the moment it is accepted. Reports whether any
// exchange stuck.
func (s *Service) swapDown(teamA, teamB []model.PlayerID, players map[model.PlayerID]model.Player) bool {
	improved := false
	for i := range teamA {
		for j := range teamB {
			before := Overlap(teamA, players) + Overlap(teamB, players)
			teamA[i], teamB[j] = teamB[j], teamA[i]
			after := Overlap(teamA, players) + Overlap(teamB, players)
			if s.options.accept(before, after) {
				improved = true
				continue
			}
			teamA[i], teamB[j] = teamB[j], teamA[i]
		}
	}
	return improved
}
