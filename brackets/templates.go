package brackets

import (
	"sort"
	"strings"

	"github.com/Dosada05/placement-system/models"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

var placementSystemTemplates = []models.PlacementSystemConfiguration{
	{
		ID:          "simple-placement",
		Name:        "Simple Placement",
		Description: "Group winners and runners-up play for the title, third and fourth placed teams play for fifth place.",
		Type:        models.PlacementTypeSimple,
		Brackets: []models.PlacementBracket{
			{
				ID:                "championship",
				Name:              "Championship",
				Description:       "Top two of every group",
				Positions:         []int{1, 2},
				MatchFormat:       models.MatchFormatSingleElimination,
				IncludeThirdPlace: true,
			},
			{
				ID:          "consolation",
				Name:        "Consolation",
				Description: "Third and fourth of every group",
				Positions:   []int{3, 4},
				MatchFormat: models.MatchFormatSingleElimination,
			},
		},
		SeedingRules: &models.SeedingRules{
			Method:      models.SeedingStandard,
			Tiebreakers: []string{"points", "goalDifference"},
		},
	},
	{
		ID:          "tiered-brackets",
		Name:        "Tiered Brackets",
		Description: "Gold, silver and bronze brackets fed by group finishing position.",
		Type:        models.PlacementTypeTiered,
		Brackets: []models.PlacementBracket{
			{
				ID:                "gold",
				Name:              "Gold",
				Positions:         []int{1, 2},
				MatchFormat:       models.MatchFormatSingleElimination,
				IncludeThirdPlace: true,
			},
			{
				ID:                "silver",
				Name:              "Silver",
				Positions:         []int{3, 4},
				MatchFormat:       models.MatchFormatSingleElimination,
				IncludeThirdPlace: true,
			},
			{
				ID:          "bronze",
				Name:        "Bronze",
				Positions:   []int{5, 6},
				MatchFormat: models.MatchFormatSingleElimination,
			},
		},
		SeedingRules: &models.SeedingRules{
			Method:      models.SeedingStandard,
			Tiebreakers: []string{"points", "goalDifference", "goalsFor"},
		},
	},
	{
		ID:          "cross-group",
		Name:        "Cross-Group Matching",
		Description: "Group winners meet runners-up of the neighbouring group.",
		Type:        models.PlacementTypeCrossGroup,
		Brackets: []models.PlacementBracket{
			{
				ID:                "upper",
				Name:              "Upper Bracket",
				Positions:         []int{1, 2},
				MatchFormat:       models.MatchFormatSingleElimination,
				IncludeThirdPlace: true,
			},
			{
				ID:          "lower",
				Name:        "Lower Bracket",
				Positions:   []int{3, 4},
				MatchFormat: models.MatchFormatSingleElimination,
			},
		},
		CrossGroupMatching: &models.CrossGroupMatching{
			Enabled: true,
			Rules: []models.CrossGroupRule{
				{
					BracketID: "upper",
					Pairings: []models.GroupPairing{
						{HomeGroupIndex: 0, HomePosition: 1, AwayGroupIndex: 1, AwayPosition: 2},
						{HomeGroupIndex: 1, HomePosition: 1, AwayGroupIndex: 0, AwayPosition: 2},
					},
				},
				{
					BracketID: "lower",
					Pairings: []models.GroupPairing{
						{HomeGroupIndex: 0, HomePosition: 3, AwayGroupIndex: 1, AwayPosition: 4},
						{HomeGroupIndex: 1, HomePosition: 3, AwayGroupIndex: 0, AwayPosition: 4},
					},
				},
			},
		},
	},
	{
		ID:          "swiss-style",
		Name:        "Swiss Style",
		Description: "Teams of similar finishing position play a short round robin.",
		Type:        models.PlacementTypeSwiss,
		Brackets: []models.PlacementBracket{
			{
				ID:          "top-pool",
				Name:        "Top Pool",
				Positions:   []int{1, 2},
				MatchFormat: models.MatchFormatRoundRobin,
			},
			{
				ID:          "bottom-pool",
				Name:        "Bottom Pool",
				Positions:   []int{3, 4},
				MatchFormat: models.MatchFormatRoundRobin,
			},
		},
		SeedingRules: &models.SeedingRules{
			Method:      models.SeedingSnake,
			Tiebreakers: []string{"points", "goalDifference", "headToHead"},
		},
	},
	{
		ID:          "playoff",
		Name:        "Playoff",
		Description: "Semi-finals and a final for the top two of every group.",
		Type:        models.PlacementTypePlayoff,
		Brackets: []models.PlacementBracket{
			{
				ID:                "playoff",
				Name:              "Playoff",
				Positions:         []int{1, 2},
				MatchFormat:       models.MatchFormatPlayoff,
				IncludeThirdPlace: true,
			},
		},
	},
	{
		ID:          "finnish-traditional",
		Name:        "Finnish Traditional",
		Description: "Medal playoff for the top two, placement playoff for the rest.",
		Type:        models.PlacementTypeTiered,
		Brackets: []models.PlacementBracket{
			{
				ID:                "medal",
				Name:              "Medal Playoff",
				Positions:         []int{1, 2},
				MatchFormat:       models.MatchFormatPlayoff,
				IncludeThirdPlace: true,
			},
			{
				ID:                  "placement",
				Name:                "Placement Playoff",
				Positions:           []int{3, 4},
				MatchFormat:         models.MatchFormatPlayoff,
				IncludeThirdPlace:   true,
				IncludeFifthPlace:   true,
				IncludeSeventhPlace: true,
			},
		},
		SeedingRules: &models.SeedingRules{
			Method:      models.SeedingStandard,
			Tiebreakers: []string{"points", "goalDifference", "goalsFor", "headToHead"},
		},
	},
}

// GetPlacementSystemTemplate looks a template up by exact id.
func GetPlacementSystemTemplate(id string) (models.PlacementSystemConfiguration, bool) {
	for _, t := range placementSystemTemplates {
		if t.ID == id {
			return cloneConfiguration(t), true
		}
	}
	return models.PlacementSystemConfiguration{}, false
}

func GetAllPlacementSystemTemplates() []models.PlacementSystemConfiguration {
	out := make([]models.PlacementSystemConfiguration, 0, len(placementSystemTemplates))
	for _, t := range placementSystemTemplates {
		out = append(out, cloneConfiguration(t))
	}
	return out
}

func GetPlacementSystemTemplatesByType(systemType models.PlacementSystemType) []models.PlacementSystemConfiguration {
	out := make([]models.PlacementSystemConfiguration, 0)
	for _, t := range placementSystemTemplates {
		if t.Type == systemType {
			out = append(out, cloneConfiguration(t))
		}
	}
	return out
}

// SearchPlacementSystemTemplates returns the templates whose id or name
// fuzzily matches query (case-insensitive), closest match first. An empty
// query returns the whole catalog.
func SearchPlacementSystemTemplates(query string) []models.PlacementSystemConfiguration {
	query = strings.TrimSpace(query)
	if query == "" {
		return GetAllPlacementSystemTemplates()
	}

	type ranked struct {
		index    int
		distance int
	}
	hits := make([]ranked, 0)
	for i, t := range placementSystemTemplates {
		best := -1
		for _, target := range []string{t.ID, t.Name} {
			if d := fuzzy.RankMatchFold(query, target); d >= 0 && (best < 0 || d < best) {
				best = d
			}
		}
		if best >= 0 {
			hits = append(hits, ranked{index: i, distance: best})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].distance < hits[j].distance })

	out := make([]models.PlacementSystemConfiguration, 0, len(hits))
	for _, h := range hits {
		out = append(out, cloneConfiguration(placementSystemTemplates[h.index]))
	}
	return out
}

// cloneConfiguration deep-copies a template so callers cannot change the catalog.
func cloneConfiguration(src models.PlacementSystemConfiguration) models.PlacementSystemConfiguration {
	dst := src

	dst.Brackets = make([]models.PlacementBracket, len(src.Brackets))
	for i, b := range src.Brackets {
		b.Positions = append([]int(nil), b.Positions...)
		dst.Brackets[i] = b
	}

	if src.CrossGroupMatching != nil {
		cgm := *src.CrossGroupMatching
		if src.CrossGroupMatching.Rules != nil {
			cgm.Rules = make([]models.CrossGroupRule, len(src.CrossGroupMatching.Rules))
			for i, r := range src.CrossGroupMatching.Rules {
				r.Pairings = append([]models.GroupPairing(nil), r.Pairings...)
				cgm.Rules[i] = r
			}
		}
		dst.CrossGroupMatching = &cgm
	}

	if src.SeedingRules != nil {
		sr := *src.SeedingRules
		sr.Tiebreakers = append([]string(nil), src.SeedingRules.Tiebreakers...)
		dst.SeedingRules = &sr
	}

	return dst
}
