package services

import (
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

func standingKey(groupID string, position int) string {
	return fmt.Sprintf("%s#%d", groupID, position)
}

// indexStandingTeams maps group+position to the id of the team that finished there.
func indexStandingTeams(standings []models.GroupStanding) map[string]string {
	index := make(map[string]string)
	for _, g := range standings {
		for _, t := range g.Teams {
			key := standingKey(g.GroupID, t.Position)
			if _, taken := index[key]; !taken {
				index[key] = t.ID
			}
		}
	}
	return index
}

func resolveGroupSlot(slot models.PlacementTeam, teamIDs map[string]string) *string {
	src, ok := slot.Source.(models.GroupPositionSource)
	if !ok {
		return nil
	}
	id, ok := teamIDs[standingKey(src.GroupID, src.Position)]
	if !ok {
		return nil
	}
	return &id
}

func newScheduledMatch(tournamentID int, bracket models.BracketMatches, pm models.PlacementMatch, teamIDs map[string]string) *models.ScheduledPlacementMatch {
	m := &models.ScheduledPlacementMatch{
		TournamentID: tournamentID,
		BracketID:    bracket.BracketID,
		BracketName:  bracket.BracketName,
		MatchUID:     pm.ID,
		Round:        pm.Round,
		RoundLabel:   pm.RoundLabel,
		MatchNumber:  pm.MatchNumber,
		MatchLabel:   pm.MatchLabel,
		HomeSlot:     pm.HomeTeam,
		AwaySlot:     pm.AwayTeam,
		HomeTeamID:   resolveGroupSlot(pm.HomeTeam, teamIDs),
		AwayTeamID:   resolveGroupSlot(pm.AwayTeam, teamIDs),
	}
	m.Status = readinessStatus(m)
	return m
}

func readinessStatus(m *models.ScheduledPlacementMatch) models.MatchStatus {
	if m.HomeTeamID != nil && m.AwayTeamID != nil {
		return models.StatusScheduled
	}
	return models.StatusPending
}

// outcomeFor returns the team a slot source receives from a completed match,
// if the source points at that match.
func outcomeFor(completed *models.ScheduledPlacementMatch, source models.TeamSource) (string, bool) {
	switch src := source.(type) {
	case models.MatchWinnerSource:
		if src.MatchID == completed.MatchUID && completed.WinnerTeamID != nil {
			return *completed.WinnerTeamID, true
		}
	case models.MatchLoserSource:
		if src.MatchID == completed.MatchUID {
			if loser := completed.LoserTeamID(); loser != nil {
				return *loser, true
			}
		}
	case models.GroupPositionSource:
	}
	return "", false
}

// propagateResult writes the outcome of completed into the slots of
// dependent that reference it. Reports whether dependent changed.
func propagateResult(completed, dependent *models.ScheduledPlacementMatch) bool {
	if dependent.ID == completed.ID || dependent.Status == models.MatchStatusCompleted {
		return false
	}

	changed := false
	if id, ok := outcomeFor(completed, dependent.HomeSlot.Source); ok {
		if dependent.HomeTeamID == nil || *dependent.HomeTeamID != id {
			dependent.HomeTeamID = &id
			changed = true
		}
	}
	if id, ok := outcomeFor(completed, dependent.AwaySlot.Source); ok {
		if dependent.AwayTeamID == nil || *dependent.AwayTeamID != id {
			dependent.AwayTeamID = &id
			changed = true
		}
	}

	if changed {
		dependent.Status = readinessStatus(dependent)
	}
	return changed
}
