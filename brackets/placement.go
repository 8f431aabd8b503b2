package brackets

import (
	"sort"

	"github.com/Dosada05/placement-system/models"
)

// GeneratePlacementMatches builds the placement matches of every bracket in
// cfg from the final group standings. Brackets keep the configuration order
// and are present even when they produce no matches.
//
// The configuration is not validated here; run
// ValidatePlacementSystemConfiguration first.
func GeneratePlacementMatches(standings []models.GroupStanding, cfg models.PlacementSystemConfiguration) []models.BracketMatches {
	result := make([]models.BracketMatches, 0, len(cfg.Brackets))

	for _, bracket := range cfg.Brackets {
		matches := []models.PlacementMatch{}

		if generator, ok := generatorFor(bracket.MatchFormat); ok {
			generated := generator.GenerateBracket(GenerateBracketParams{
				Bracket: bracket,
				Teams:   collectBracketTeams(standings, bracket.Positions),
			})
			if generated != nil {
				matches = generated
			}
		}

		result = append(result, models.BracketMatches{
			BracketID:   bracket.ID,
			BracketName: bracket.Name,
			Matches:     matches,
		})
	}

	return result
}

// BracketTeamCount reports how many standings entries fall into the given
// positions.
func BracketTeamCount(standings []models.GroupStanding, positions []int) int {
	return len(collectBracketTeams(standings, positions))
}

func collectBracketTeams(standings []models.GroupStanding, positions []int) []bracketTeam {
	wanted := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		wanted[p] = struct{}{}
	}

	teams := make([]bracketTeam, 0)
	for _, group := range standings {
		for _, team := range group.Teams {
			if _, ok := wanted[team.Position]; !ok {
				continue
			}
			teams = append(teams, bracketTeam{
				Team:      team,
				GroupID:   group.GroupID,
				GroupName: group.GroupName,
			})
		}
	}

	sort.SliceStable(teams, func(i, j int) bool {
		return teams[i].Team.Position < teams[j].Team.Position
	})

	return teams
}
