package brackets

import (
	"testing"

	"github.com/Dosada05/placement-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeneratePlacementMatches_SimplePlacementTwoGroups(t *testing.T) {
	cfg, ok := GetPlacementSystemTemplate("simple-placement")
	require.True(t, ok)

	result := GeneratePlacementMatches(groupStandings(2, 4), cfg)

	require.Len(t, result, 2)
	championship := result[0]
	assert.Equal(t, "championship", championship.BracketID)
	assert.Equal(t, "Championship", championship.BracketName)
	require.Len(t, championship.Matches, 4)

	semi1 := championship.Matches[0]
	assert.Equal(t, "placement-championship-r1-1", semi1.ID)
	assert.Equal(t, "A-1", semi1.HomeTeam.ID)
	assert.Equal(t, "1st Group A", semi1.HomeTeam.Name)
	assert.Equal(t, 1, semi1.HomeTeam.Position)
	assert.Equal(t, models.GroupPositionSource{GroupID: "A", GroupName: "Group A", Position: 1}, semi1.HomeTeam.Source)
	assert.Equal(t, "1st Group B", semi1.AwayTeam.Name)

	semi2 := championship.Matches[1]
	assert.Equal(t, "2nd Group A", semi2.HomeTeam.Name)
	assert.Equal(t, "2nd Group B", semi2.AwayTeam.Name)

	final := championship.Matches[2]
	assert.Equal(t, LabelFinal, final.RoundLabel)
	assert.Equal(t, "Winner of Game 1", final.HomeTeam.Name)
	assert.Equal(t, "Winner of Game 2", final.AwayTeam.Name)

	third := championship.Matches[3]
	assert.Equal(t, "placement-championship-third-4", third.ID)
	assert.Equal(t, LabelThirdPlace, third.RoundLabel)
	assert.Equal(t, "Loser of Game 1", third.HomeTeam.Name)
	assert.Equal(t, "Loser of Game 2", third.AwayTeam.Name)

	consolation := result[1]
	assert.Equal(t, "consolation", consolation.BracketID)
	require.Len(t, consolation.Matches, 3)
	assert.Equal(t, "3rd Group A", consolation.Matches[0].HomeTeam.Name)
	assert.Equal(t, "4th Group B", consolation.Matches[1].AwayTeam.Name)
	// Нумерация в каждой сетке своя.
	assert.Equal(t, "placement-consolation-r1-1", consolation.Matches[0].ID)
	assert.Equal(t, 1, consolation.Matches[0].MatchNumber)
}

func TestGeneratePlacementMatches_BracketOrderFollowsConfiguration(t *testing.T) {
	cfg, _ := GetPlacementSystemTemplate("tiered-brackets")

	result := GeneratePlacementMatches(groupStandings(2, 4), cfg)

	require.Len(t, result, 3)
	assert.Equal(t, "gold", result[0].BracketID)
	assert.Equal(t, "silver", result[1].BracketID)
	assert.Equal(t, "bronze", result[2].BracketID)
	// Мест 5-6 в группах нет: сетка есть, матчей нет.
	assert.NotNil(t, result[2].Matches)
	assert.Empty(t, result[2].Matches)
}

func TestGeneratePlacementMatches_EmptyStandings(t *testing.T) {
	cfg, _ := GetPlacementSystemTemplate("swiss-style")

	result := GeneratePlacementMatches(nil, cfg)

	require.Len(t, result, 2)
	for _, b := range result {
		assert.NotNil(t, b.Matches)
		assert.Empty(t, b.Matches)
	}
}

func TestGeneratePlacementMatches_UnknownFormatYieldsEmptyBracket(t *testing.T) {
	cfg := models.PlacementSystemConfiguration{
		Name: "odd",
		Brackets: []models.PlacementBracket{
			{ID: "odd", Name: "Odd", Positions: []int{1, 2}, MatchFormat: "double-elimination"},
		},
	}

	result := GeneratePlacementMatches(groupStandings(2, 2), cfg)

	require.Len(t, result, 1)
	assert.NotNil(t, result[0].Matches)
	assert.Empty(t, result[0].Matches)
}

func TestGeneratePlacementMatches_IsDeterministic(t *testing.T) {
	standings := groupStandings(4, 4)
	for _, cfg := range GetAllPlacementSystemTemplates() {
		assert.Equal(t, GeneratePlacementMatches(standings, cfg), GeneratePlacementMatches(standings, cfg), cfg.ID)
	}
}

func TestGeneratePlacementMatches_SameRankKeepsGroupOrder(t *testing.T) {
	standings := groupStandings(3, 2)
	cfg := models.PlacementSystemConfiguration{
		Name: "winners",
		Brackets: []models.PlacementBracket{
			{ID: "w", Positions: []int{1}, MatchFormat: models.MatchFormatSingleElimination},
		},
	}

	result := GeneratePlacementMatches(standings, cfg)

	matches := result[0].Matches
	require.Len(t, matches, 2)
	assert.Equal(t, "A-1", matches[0].HomeTeam.ID)
	assert.Equal(t, "B-1", matches[0].AwayTeam.ID)
	assert.Equal(t, "C-1", matches[1].AwayTeam.ID)
}

func TestBracketTeamCount(t *testing.T) {
	standings := groupStandings(3, 4)

	assert.Equal(t, 6, BracketTeamCount(standings, []int{1, 2}))
	assert.Equal(t, 3, BracketTeamCount(standings, []int{4}))
	assert.Equal(t, 0, BracketTeamCount(standings, []int{7}))
	assert.Equal(t, 0, BracketTeamCount(standings, nil))
}
