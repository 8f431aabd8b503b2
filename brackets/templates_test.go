package brackets

import (
	"testing"

	"github.com/Dosada05/placement-system/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplates_Catalog(t *testing.T) {
	all := GetAllPlacementSystemTemplates()

	ids := make([]string, 0, len(all))
	for _, tmpl := range all {
		ids = append(ids, tmpl.ID)
	}
	assert.Equal(t, []string{
		"simple-placement",
		"tiered-brackets",
		"cross-group",
		"swiss-style",
		"playoff",
		"finnish-traditional",
	}, ids)
}

func TestTemplates_LookupByID(t *testing.T) {
	tmpl, ok := GetPlacementSystemTemplate("tiered-brackets")
	require.True(t, ok)
	assert.Equal(t, models.PlacementTypeTiered, tmpl.Type)
	require.Len(t, tmpl.Brackets, 3)
	assert.Equal(t, []int{5, 6}, tmpl.Brackets[2].Positions)

	_, ok = GetPlacementSystemTemplate("Tiered-Brackets")
	assert.False(t, ok)
	_, ok = GetPlacementSystemTemplate("")
	assert.False(t, ok)
}

func TestTemplates_ByType(t *testing.T) {
	tiered := GetPlacementSystemTemplatesByType(models.PlacementTypeTiered)
	require.Len(t, tiered, 2)
	assert.Equal(t, "tiered-brackets", tiered[0].ID)
	assert.Equal(t, "finnish-traditional", tiered[1].ID)

	custom := GetPlacementSystemTemplatesByType(models.PlacementTypeCustom)
	assert.NotNil(t, custom)
	assert.Empty(t, custom)
}

func TestTemplates_CallersCannotModifyCatalog(t *testing.T) {
	tmpl, ok := GetPlacementSystemTemplate("cross-group")
	require.True(t, ok)

	tmpl.Name = "changed"
	tmpl.Brackets[0].Positions[0] = 99
	tmpl.CrossGroupMatching.Rules[0].Pairings[0].HomePosition = 99

	fresh, _ := GetPlacementSystemTemplate("cross-group")
	assert.Equal(t, "Cross-Group Matching", fresh.Name)
	assert.Equal(t, 1, fresh.Brackets[0].Positions[0])
	assert.Equal(t, 1, fresh.CrossGroupMatching.Rules[0].Pairings[0].HomePosition)
}

func TestTemplates_Search(t *testing.T) {
	hits := SearchPlacementSystemTemplates("SWISS")
	require.NotEmpty(t, hits)
	assert.Equal(t, "swiss-style", hits[0].ID)

	hits = SearchPlacementSystemTemplates("playoff")
	require.NotEmpty(t, hits)
	assert.Equal(t, "playoff", hits[0].ID)

	hits = SearchPlacementSystemTemplates("tierbr")
	require.Len(t, hits, 1)
	assert.Equal(t, "tiered-brackets", hits[0].ID)

	assert.Empty(t, SearchPlacementSystemTemplates("zzz"))
	assert.Len(t, SearchPlacementSystemTemplates("  "), 6)
}
