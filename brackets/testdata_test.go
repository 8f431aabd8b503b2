package brackets

import (
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

// groupStandings builds groups "A", "B", ... with teamsPerGroup teams each.
// Team ids look like "a1" for the winner of Group A.
func groupStandings(groups, teamsPerGroup int) []models.GroupStanding {
	out := make([]models.GroupStanding, 0, groups)
	for g := 0; g < groups; g++ {
		letter := string(rune('A' + g))
		standing := models.GroupStanding{GroupID: letter, GroupName: "Group " + letter}
		for p := 1; p <= teamsPerGroup; p++ {
			standing.Teams = append(standing.Teams, models.StandingTeam{
				ID:       fmt.Sprintf("%c%d", 'a'+g, p),
				Name:     fmt.Sprintf("Team %s%d", letter, p),
				Position: p,
				Points:   3 * (teamsPerGroup - p),
			})
		}
		out = append(out, standing)
	}
	return out
}

// seededTeams returns n bracket entrants from a single group, positions 1..n.
func seededTeams(n int) []bracketTeam {
	teams := make([]bracketTeam, 0, n)
	for i := 1; i <= n; i++ {
		teams = append(teams, bracketTeam{
			Team:      models.StandingTeam{ID: fmt.Sprintf("t%d", i), Name: fmt.Sprintf("Team %d", i), Position: i},
			GroupID:   "g",
			GroupName: "Group",
		})
	}
	return teams
}

func matchByID(matches []models.PlacementMatch, id string) (models.PlacementMatch, bool) {
	for _, m := range matches {
		if m.ID == id {
			return m, true
		}
	}
	return models.PlacementMatch{}, false
}

func roundLabels(matches []models.PlacementMatch) []string {
	labels := make([]string, 0, len(matches))
	for _, m := range matches {
		labels = append(labels, m.RoundLabel)
	}
	return labels
}
