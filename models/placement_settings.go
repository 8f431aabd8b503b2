package models

import "time"

// PlacementSettings хранится per-tournament как JSON {enabled, systemId}.
type PlacementSettings struct {
	TournamentID int       `json:"tournamentId" db:"tournament_id"`
	Enabled      bool      `json:"enabled" db:"enabled"`
	SystemID     string    `json:"systemId" db:"system_id"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}
