package models

type PlacementSystemType string

const (
	PlacementTypeSimple     PlacementSystemType = "simple"
	PlacementTypeTiered     PlacementSystemType = "tiered"
	PlacementTypeCrossGroup PlacementSystemType = "cross-group"
	PlacementTypeSwiss      PlacementSystemType = "swiss"
	PlacementTypePlayoff    PlacementSystemType = "playoff"
	PlacementTypeCustom     PlacementSystemType = "custom"
)

type MatchFormat string

const (
	MatchFormatSingleElimination MatchFormat = "single-elimination"
	MatchFormatRoundRobin        MatchFormat = "round-robin"
	MatchFormatPlayoff           MatchFormat = "playoff"
)

func (f MatchFormat) IsValid() bool {
	switch f {
	case MatchFormatSingleElimination, MatchFormatRoundRobin, MatchFormatPlayoff:
		return true
	}
	return false
}

// PlacementBracket описывает часть системы розыгрыша мест: какие места в
// группах попадают в сетку и в каком формате она играется.
type PlacementBracket struct {
	ID                  string      `json:"id"`
	Name                string      `json:"name"`
	Description         string      `json:"description,omitempty"`
	Positions           []int       `json:"positions"`
	MatchFormat         MatchFormat `json:"matchFormat"`
	IncludeThirdPlace   bool        `json:"includeThirdPlace,omitempty"`
	IncludeFifthPlace   bool        `json:"includeFifthPlace,omitempty"`
	IncludeSeventhPlace bool        `json:"includeSeventhPlace,omitempty"`
}

// GroupPairing pairs a rank of one group (by index in the standings list)
// with a rank of another.
type GroupPairing struct {
	HomeGroupIndex int `json:"homeGroupIndex"`
	HomePosition   int `json:"homePosition"`
	AwayGroupIndex int `json:"awayGroupIndex"`
	AwayPosition   int `json:"awayPosition"`
}

type CrossGroupRule struct {
	BracketID string         `json:"bracketId"`
	Pairings  []GroupPairing `json:"pairings"`
}

// CrossGroupMatching is display metadata; generation is rank based.
// A nil Rules slice means the rules were not provided.
type CrossGroupMatching struct {
	Enabled bool             `json:"enabled"`
	Rules   []CrossGroupRule `json:"rules,omitempty"`
}

type SeedingMethod string

const (
	SeedingStandard SeedingMethod = "standard"
	SeedingRandom   SeedingMethod = "random"
	SeedingSnake    SeedingMethod = "snake"
)

type SeedingRules struct {
	Method      SeedingMethod `json:"method"`
	Tiebreakers []string      `json:"tiebreakers"`
}

type PlacementSystemConfiguration struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Description        string              `json:"description,omitempty"`
	Type               PlacementSystemType `json:"type"`
	Brackets           []PlacementBracket  `json:"brackets"`
	CrossGroupMatching *CrossGroupMatching `json:"crossGroupMatching,omitempty"`
	SeedingRules       *SeedingRules       `json:"seedingRules,omitempty"`
}

// StandingTeam: команда в итоговой таблице группы. Position начинается с 1.
type StandingTeam struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Position       int    `json:"position"`
	Points         int    `json:"points"`
	GoalDifference int    `json:"goalDifference"`
}

type GroupStanding struct {
	GroupID   string         `json:"groupId"`
	GroupName string         `json:"groupName"`
	Teams     []StandingTeam `json:"teams"`
}

// PlacementMatch is an intended fixture. Home and away slots may still be
// symbolic; see TeamSource.
type PlacementMatch struct {
	ID          string        `json:"id"`
	HomeTeam    PlacementTeam `json:"homeTeam"`
	AwayTeam    PlacementTeam `json:"awayTeam"`
	Round       int           `json:"round"`
	RoundLabel  string        `json:"roundLabel"`
	MatchNumber int           `json:"matchNumber"`
	MatchLabel  string        `json:"matchLabel"`
}

type BracketMatches struct {
	BracketID   string           `json:"bracketId"`
	BracketName string           `json:"bracketName"`
	Matches     []PlacementMatch `json:"matches"`
}

type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}
