package brackets

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Dosada05/placement-system/models"
)

// ValidatePlacementSystemConfiguration checks the structure of cfg. All
// problems are collected; the function itself never fails.
func ValidatePlacementSystemConfiguration(cfg models.PlacementSystemConfiguration) models.ValidationResult {
	errs := make([]string, 0)

	if strings.TrimSpace(cfg.Name) == "" {
		errs = append(errs, "Configuration name is required")
	}

	if len(cfg.Brackets) == 0 {
		errs = append(errs, "At least one bracket is required")
	}

	seenIDs := make(map[string]bool, len(cfg.Brackets))
	duplicateIDs := make([]string, 0)
	positionUse := make(map[int]int)

	for _, b := range cfg.Brackets {
		if seenIDs[b.ID] {
			duplicateIDs = append(duplicateIDs, b.ID)
		}
		seenIDs[b.ID] = true

		for _, p := range b.Positions {
			positionUse[p]++
		}

		if !b.MatchFormat.IsValid() {
			errs = append(errs, fmt.Sprintf("Bracket %q has unsupported match format %q", b.ID, b.MatchFormat))
		}
	}

	if len(duplicateIDs) > 0 {
		errs = append(errs, fmt.Sprintf("Bracket IDs must be unique (duplicated: %s)", strings.Join(duplicateIDs, ", ")))
	}

	conflicts := make([]int, 0)
	for p, n := range positionUse {
		if n > 1 {
			conflicts = append(conflicts, p)
		}
	}
	sort.Ints(conflicts)
	for _, p := range conflicts {
		errs = append(errs, fmt.Sprintf("Position %d is assigned to multiple brackets", p))
	}

	if cfg.CrossGroupMatching != nil && cfg.CrossGroupMatching.Enabled && cfg.CrossGroupMatching.Rules == nil {
		errs = append(errs, "Cross-group matching rules are required when cross-group matching is enabled")
	}

	return models.ValidationResult{
		IsValid: len(errs) == 0,
		Errors:  errs,
	}
}
