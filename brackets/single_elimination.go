package brackets

import (
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

type SingleEliminationGenerator struct {
}

func NewSingleEliminationGenerator() BracketGenerator {
	return &SingleEliminationGenerator{}
}

func (g *SingleEliminationGenerator) GetName() string {
	return "SingleElimination"
}

// GenerateBracket pairs neighbours of the seeded list (1v2, 3v4, ...) round
// after round until one competitor is left. An odd competitor out moves to
// the next round without playing.
func (g *SingleEliminationGenerator) GenerateBracket(params GenerateBracketParams) []models.PlacementMatch {
	bracket := params.Bracket
	builder := newMatchBuilder(bracket.ID)

	currentRound := make([]models.PlacementTeam, 0, len(params.Teams))
	for _, t := range params.Teams {
		currentRound = append(currentRound, t.placementTeam())
	}

	allMatches := make([]models.PlacementMatch, 0)
	// индексы матчей в allMatches по раундам
	rounds := make([][]int, 0)

	for r := 1; len(currentRound) > 1; r++ {
		nextRound := make([]models.PlacementTeam, 0, (len(currentRound)+1)/2)
		roundMatches := make([]int, 0, len(currentRound)/2)

		for i := 0; i < len(currentRound); i += 2 {
			if i+1 >= len(currentRound) {
				nextRound = append(nextRound, currentRound[i])
				break
			}

			m := builder.newMatch(fmt.Sprintf("r%d", r), r, currentRound[i], currentRound[i+1])
			roundMatches = append(roundMatches, len(allMatches))
			allMatches = append(allMatches, m)
			nextRound = append(nextRound, winnerOf(m))
		}

		rounds = append(rounds, roundMatches)
		currentRound = nextRound
	}

	if bracket.IncludeThirdPlace && len(rounds) >= 2 {
		semis := rounds[len(rounds)-2]
		if len(semis) >= 2 {
			sf1, sf2 := allMatches[semis[0]], allMatches[semis[1]]
			third := builder.newMatch(stageTagThirdPlace, sf1.Round+1, loserOf(sf1), loserOf(sf2))
			allMatches = append(allMatches, third)
		}
	}

	if (bracket.IncludeFifthPlace || bracket.IncludeSeventhPlace) && len(rounds) >= 3 {
		quarters := rounds[len(rounds)-3]
		if len(quarters) >= 4 {
			allMatches = append(allMatches, g.fifthPlaceMatches(builder, bracket, allMatches, quarters)...)
		}
	}

	assignRoundLabels(bracket.ID, allMatches)

	return allMatches
}

// fifthPlaceMatches lets the losers of the first four quarter-finals play
// for places five to eight.
func (g *SingleEliminationGenerator) fifthPlaceMatches(builder *matchBuilder, bracket models.PlacementBracket, all []models.PlacementMatch, quarters []int) []models.PlacementMatch {
	qf := func(i int) models.PlacementMatch { return all[quarters[i]] }
	round := qf(0).Round

	semi1 := builder.newMatch(stageTagFifthPlaceSemi, round+1, loserOf(qf(0)), loserOf(qf(1)))
	semi1.RoundLabel = LabelFifthPlaceSemi
	semi2 := builder.newMatch(stageTagFifthPlaceSemi, round+1, loserOf(qf(2)), loserOf(qf(3)))
	semi2.RoundLabel = LabelFifthPlaceSemi

	matches := []models.PlacementMatch{semi1, semi2}

	if bracket.IncludeFifthPlace {
		fifth := builder.newMatch(stageTagFifthPlace, round+2, winnerOf(semi1), winnerOf(semi2))
		fifth.RoundLabel = LabelFifthPlace
		matches = append(matches, fifth)
	}
	if bracket.IncludeSeventhPlace {
		seventh := builder.newMatch(stageTagSeventhPlace, round+2, loserOf(semi1), loserOf(semi2))
		seventh.RoundLabel = LabelSeventhPlace
		matches = append(matches, seventh)
	}

	return matches
}
