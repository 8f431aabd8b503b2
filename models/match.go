package models

import "time"

type MatchStatus string

const (
	StatusPending        MatchStatus = "pending"
	StatusScheduled      MatchStatus = "scheduled"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCanceled  MatchStatus = "canceled"
)

// ScheduledPlacementMatch: сохранённый матч за место. HomeTeamID/AwayTeamID
// заполняются, когда слот разрешён в конкретную команду.
type ScheduledPlacementMatch struct {
	ID           int           `json:"id" db:"id"`
	TournamentID int           `json:"tournament_id" db:"tournament_id"`
	BracketID    string        `json:"bracket_id" db:"bracket_id"`
	BracketName  string        `json:"bracket_name" db:"bracket_name"`
	MatchUID     string        `json:"match_uid" db:"match_uid"`
	Round        int           `json:"round" db:"round"`
	RoundLabel   string        `json:"round_label" db:"round_label"`
	MatchNumber  int           `json:"match_number" db:"match_number"`
	MatchLabel   string        `json:"match_label" db:"match_label"`
	HomeSlot     PlacementTeam `json:"home_slot" db:"home_slot"`
	AwaySlot     PlacementTeam `json:"away_slot" db:"away_slot"`
	HomeTeamID   *string       `json:"home_team_id,omitempty" db:"home_team_id"`
	AwayTeamID   *string       `json:"away_team_id,omitempty" db:"away_team_id"`
	WinnerTeamID *string       `json:"winner_team_id,omitempty" db:"winner_team_id"`
	Status       MatchStatus   `json:"status" db:"status"`
	CreatedAt    time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" db:"updated_at"`
}

// LoserTeamID returns the other participant once a winner is recorded.
func (m *ScheduledPlacementMatch) LoserTeamID() *string {
	if m.WinnerTeamID == nil || m.HomeTeamID == nil || m.AwayTeamID == nil {
		return nil
	}
	if *m.WinnerTeamID == *m.HomeTeamID {
		return m.AwayTeamID
	}
	return m.HomeTeamID
}
