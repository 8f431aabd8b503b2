package brackets

import (
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

// bracketTeam is a standings entry selected for a bracket, tagged with the
// group it finished in.
type bracketTeam struct {
	Team      models.StandingTeam
	GroupID   string
	GroupName string
}

type GenerateBracketParams struct {
	Bracket models.PlacementBracket
	Teams   []bracketTeam // отсортированы по месту в группе
}

type BracketGenerator interface {
	GenerateBracket(params GenerateBracketParams) []models.PlacementMatch

	GetName() string
}

func generatorFor(format models.MatchFormat) (BracketGenerator, bool) {
	switch format {
	case models.MatchFormatSingleElimination:
		return NewSingleEliminationGenerator(), true
	case models.MatchFormatPlayoff:
		return NewPlayoffGenerator(), true
	case models.MatchFormatRoundRobin:
		return NewRoundRobinGenerator(), true
	}
	return nil, false
}

// matchBuilder numbers the matches of one bracket. A new builder is created
// for every bracket of every generation call.
type matchBuilder struct {
	bracketID string
	counter   int
}

func newMatchBuilder(bracketID string) *matchBuilder {
	return &matchBuilder{bracketID: bracketID}
}

func (b *matchBuilder) newMatch(stageTag string, round int, home, away models.PlacementTeam) models.PlacementMatch {
	b.counter++
	return models.PlacementMatch{
		ID:          matchID(b.bracketID, stageTag, b.counter),
		HomeTeam:    home,
		AwayTeam:    away,
		Round:       round,
		MatchNumber: b.counter,
		MatchLabel:  fmt.Sprintf("Game %d", b.counter),
	}
}

func matchID(bracketID, stageTag string, counter int) string {
	return fmt.Sprintf("placement-%s-%s-%d", bracketID, stageTag, counter)
}

func (t bracketTeam) placementTeam() models.PlacementTeam {
	pos := t.Team.Position
	return models.PlacementTeam{
		ID:       fmt.Sprintf("%s-%d", t.GroupID, pos),
		Name:     fmt.Sprintf("%s %s", GetOrdinal(pos), t.GroupName),
		Position: pos,
		Source: models.GroupPositionSource{
			GroupID:   t.GroupID,
			GroupName: t.GroupName,
			Position:  pos,
		},
	}
}

func winnerOf(m models.PlacementMatch) models.PlacementTeam {
	return models.PlacementTeam{
		ID:     "winner-" + m.ID,
		Name:   fmt.Sprintf("Winner of Game %d", m.MatchNumber),
		Source: models.MatchWinnerSource{MatchReference: referenceTo(m)},
	}
}

func loserOf(m models.PlacementMatch) models.PlacementTeam {
	return models.PlacementTeam{
		ID:     "loser-" + m.ID,
		Name:   fmt.Sprintf("Loser of Game %d", m.MatchNumber),
		Source: models.MatchLoserSource{MatchReference: referenceTo(m)},
	}
}

func referenceTo(m models.PlacementMatch) models.MatchReference {
	return models.MatchReference{MatchID: m.ID, MatchNumber: m.MatchNumber, Round: m.Round}
}
