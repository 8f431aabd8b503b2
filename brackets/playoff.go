package brackets

import "github.com/Dosada05/placement-system/models"

// PlayoffMaxTeams is the number of entrants a playoff bracket uses.
// Lower-ranked entrants are left out.
const PlayoffMaxTeams = 4

type PlayoffGenerator struct{}

func NewPlayoffGenerator() BracketGenerator {
	return &PlayoffGenerator{}
}

func (g *PlayoffGenerator) GetName() string {
	return "Playoff"
}

func (g *PlayoffGenerator) GenerateBracket(params GenerateBracketParams) []models.PlacementMatch {
	bracket := params.Bracket
	builder := newMatchBuilder(bracket.ID)

	teams := make([]models.PlacementTeam, 0, len(params.Teams))
	for _, t := range params.Teams {
		teams = append(teams, t.placementTeam())
	}

	matches := make([]models.PlacementMatch, 0, 4)

	switch {
	case len(teams) >= 4:
		sf1 := builder.newMatch("sf", 1, teams[0], teams[1])
		sf1.RoundLabel = LabelSemiFinal
		sf2 := builder.newMatch("sf", 1, teams[2], teams[3])
		sf2.RoundLabel = LabelSemiFinal

		final := builder.newMatch("final", 2, winnerOf(sf1), winnerOf(sf2))
		final.RoundLabel = LabelFinal

		matches = append(matches, sf1, sf2, final)

		if bracket.IncludeThirdPlace {
			third := builder.newMatch(stageTagThirdPlace, 2, loserOf(sf1), loserOf(sf2))
			third.RoundLabel = LabelThirdPlace
			matches = append(matches, third)
		}

	case len(teams) == 3:
		// Лучший посев ждёт победителя полуфинала 2-го и 3-го.
		sf := builder.newMatch("sf", 1, teams[1], teams[2])
		sf.RoundLabel = LabelSemiFinal

		final := builder.newMatch("final", 2, teams[0], winnerOf(sf))
		final.RoundLabel = LabelFinal

		matches = append(matches, sf, final)

	case len(teams) == 2:
		final := builder.newMatch("final", 1, teams[0], teams[1])
		final.RoundLabel = LabelFinal
		matches = append(matches, final)
	}

	assignRoundLabels(bracket.ID, matches)

	return matches
}
