package brackets

import (
	"fmt"
	"strings"

	"github.com/Dosada05/placement-system/models"
)

const (
	LabelFinal             = "Final"
	LabelSemiFinal         = "Semi-Final"
	LabelQuarterFinal      = "Quarter-Final"
	LabelThirdPlace        = "Third Place"
	LabelFifthPlaceSemi    = "Fifth Place Semi-Final"
	LabelFifthPlace        = "Fifth Place"
	LabelSeventhPlace      = "Seventh Place"
	stageTagThirdPlace     = "third"
	stageTagFifthPlaceSemi = "fifth-sf"
	stageTagFifthPlace     = "fifth"
	stageTagSeventhPlace   = "seventh"
)

// assignRoundLabels fills RoundLabel of every unlabelled match from its
// distance to the last round. Labels that are already set are kept.
func assignRoundLabels(bracketID string, matches []models.PlacementMatch) {
	maxRound := 0
	for _, m := range matches {
		if m.Round > maxRound {
			maxRound = m.Round
		}
	}

	thirdPrefix := fmt.Sprintf("placement-%s-%s-", bracketID, stageTagThirdPlace)

	for i := range matches {
		m := &matches[i]
		if m.RoundLabel != "" {
			continue
		}

		switch {
		case strings.HasPrefix(m.ID, thirdPrefix):
			m.RoundLabel = LabelThirdPlace
		case maxRound <= 1 || m.Round == maxRound:
			m.RoundLabel = LabelFinal
		case m.Round == maxRound-1:
			m.RoundLabel = LabelSemiFinal
		case m.Round == maxRound-2:
			m.RoundLabel = LabelQuarterFinal
		default:
			m.RoundLabel = fmt.Sprintf("Round %d", m.Round)
		}
	}
}

// GetOrdinal returns n with its English ordinal suffix: 1st, 2nd, 3rd, 11th, 22nd.
func GetOrdinal(n int) string {
	abs := n
	if abs < 0 {
		abs = -abs
	}

	suffix := "th"
	switch abs % 100 {
	case 11, 12, 13:
	default:
		switch abs % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return fmt.Sprintf("%d%s", n, suffix)
}
