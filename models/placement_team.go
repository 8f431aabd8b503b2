package models

import (
	"encoding/json"
	"fmt"
)

type TeamSourceType string

const (
	SourceGroupPosition TeamSourceType = "group-position"
	SourceMatchWinner   TeamSourceType = "match-winner"
	SourceMatchLoser    TeamSourceType = "match-loser"
)

// TeamSource tells where a placement slot gets its team from. The set of
// implementations is closed: GroupPositionSource, MatchWinnerSource and
// MatchLoserSource.
type TeamSource interface {
	SourceType() TeamSourceType
	isTeamSource()
}

type GroupPositionSource struct {
	GroupID   string `json:"groupId"`
	GroupName string `json:"groupName"`
	Position  int    `json:"position"`
}

// MatchReference points at a match generated earlier in the same call.
type MatchReference struct {
	MatchID     string `json:"matchId"`
	MatchNumber int    `json:"matchNumber"`
	Round       int    `json:"round"`
}

type MatchWinnerSource struct {
	MatchReference
}

type MatchLoserSource struct {
	MatchReference
}

func (GroupPositionSource) SourceType() TeamSourceType { return SourceGroupPosition }
func (MatchWinnerSource) SourceType() TeamSourceType   { return SourceMatchWinner }
func (MatchLoserSource) SourceType() TeamSourceType    { return SourceMatchLoser }

func (GroupPositionSource) isTeamSource() {}
func (MatchWinnerSource) isTeamSource()   {}
func (MatchLoserSource) isTeamSource()    {}

type PlacementTeam struct {
	ID       string
	Name     string
	Position int // 0 для символических участников
	Source   TeamSource
}

// wireSource is the flat JSON shape of a TeamSource.
type wireSource struct {
	Type        TeamSourceType `json:"type"`
	GroupID     string         `json:"groupId,omitempty"`
	GroupName   string         `json:"groupName,omitempty"`
	Position    int            `json:"position,omitempty"`
	MatchID     string         `json:"matchId,omitempty"`
	MatchNumber int            `json:"matchNumber,omitempty"`
	Round       int            `json:"round,omitempty"`
}

type wireTeam struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Position int         `json:"position"`
	Source   *wireSource `json:"source"`
}

func (t PlacementTeam) MarshalJSON() ([]byte, error) {
	wt := wireTeam{ID: t.ID, Name: t.Name, Position: t.Position}

	switch src := t.Source.(type) {
	case GroupPositionSource:
		wt.Source = &wireSource{Type: SourceGroupPosition, GroupID: src.GroupID, GroupName: src.GroupName, Position: src.Position}
	case MatchWinnerSource:
		wt.Source = &wireSource{Type: SourceMatchWinner, MatchID: src.MatchID, MatchNumber: src.MatchNumber, Round: src.Round}
	case MatchLoserSource:
		wt.Source = &wireSource{Type: SourceMatchLoser, MatchID: src.MatchID, MatchNumber: src.MatchNumber, Round: src.Round}
	case nil:
	default:
		return nil, fmt.Errorf("unsupported team source %T", src)
	}

	return json.Marshal(wt)
}

func (t *PlacementTeam) UnmarshalJSON(data []byte) error {
	var wt wireTeam
	if err := json.Unmarshal(data, &wt); err != nil {
		return err
	}

	t.ID = wt.ID
	t.Name = wt.Name
	t.Position = wt.Position
	t.Source = nil

	if wt.Source == nil {
		return nil
	}

	ref := MatchReference{MatchID: wt.Source.MatchID, MatchNumber: wt.Source.MatchNumber, Round: wt.Source.Round}
	switch wt.Source.Type {
	case SourceGroupPosition:
		t.Source = GroupPositionSource{GroupID: wt.Source.GroupID, GroupName: wt.Source.GroupName, Position: wt.Source.Position}
	case SourceMatchWinner:
		t.Source = MatchWinnerSource{MatchReference: ref}
	case SourceMatchLoser:
		t.Source = MatchLoserSource{MatchReference: ref}
	default:
		return fmt.Errorf("unknown team source type %q", wt.Source.Type)
	}
	return nil
}
