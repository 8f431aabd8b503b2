package brackets

import (
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

type RoundRobinGenerator struct{}

func NewRoundRobinGenerator() BracketGenerator {
	return &RoundRobinGenerator{}
}

func (g *RoundRobinGenerator) GetName() string {
	return "RoundRobin"
}

// GenerateBracket schedules a single round robin with the circle method:
// the first entrant stays in place and the rest rotate one slot per round.
// With an odd number of entrants one of them rests every round.
func (g *RoundRobinGenerator) GenerateBracket(params GenerateBracketParams) []models.PlacementMatch {
	builder := newMatchBuilder(params.Bracket.ID)

	teams := make([]models.PlacementTeam, 0, len(params.Teams))
	for _, t := range params.Teams {
		teams = append(teams, t.placementTeam())
	}

	matches := make([]models.PlacementMatch, 0)
	if len(teams) < 2 {
		return matches
	}

	// -1 означает свободный слот (bye)
	slots := make([]int, 0, len(teams)+1)
	for i := range teams {
		slots = append(slots, i)
	}
	if len(slots)%2 == 1 {
		slots = append(slots, -1)
	}

	n := len(slots)
	for round := 1; round < n; round++ {
		for i := 0; i < n/2; i++ {
			home, away := slots[i], slots[n-1-i]
			if home < 0 || away < 0 {
				continue
			}

			m := builder.newMatch("rr", round, teams[home], teams[away])
			m.RoundLabel = fmt.Sprintf("Round %d", round)
			matches = append(matches, m)
		}

		rotated := make([]int, 0, n)
		rotated = append(rotated, slots[0], slots[n-1])
		rotated = append(rotated, slots[1:n-1]...)
		slots = rotated
	}

	return matches
}
