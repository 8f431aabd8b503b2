package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/Dosada05/placement-system/models"
	"github.com/Dosada05/placement-system/repositories"
	"github.com/Dosada05/placement-system/storage"
)

type fakeTxRunner struct {
	calls int
}

func (f *fakeTxRunner) WithinTransaction(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.calls++
	return fn(nil)
}

type fakeTournamentRepo struct {
	tournaments map[int]*models.Tournament
}

func (f *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	t, ok := f.tournaments[id]
	if !ok {
		return nil, repositories.ErrTournamentNotFound
	}
	cp := *t
	return &cp, nil
}

type fakeStandingRepo struct {
	standings map[int][]models.GroupStanding
	err       error
}

func (f *fakeStandingRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.GroupStanding, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.standings[tournamentID], nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings map[int]models.PlacementSettings
}

func (f *fakeSettingsRepo) GetByTournament(ctx context.Context, tournamentID int) (*models.PlacementSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.settings[tournamentID]
	if !ok {
		return nil, repositories.ErrPlacementSettingsNotFound
	}
	return &s, nil
}

func (f *fakeSettingsRepo) Upsert(ctx context.Context, settings *models.PlacementSettings) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.settings[settings.TournamentID] = *settings
	return nil
}

type fakePlacementMatchRepo struct {
	nextID  int
	matches map[int]models.ScheduledPlacementMatch
}

func newFakePlacementMatchRepo() *fakePlacementMatchRepo {
	return &fakePlacementMatchRepo{matches: make(map[int]models.ScheduledPlacementMatch)}
}

func (f *fakePlacementMatchRepo) Create(ctx context.Context, exec repositories.SQLExecutor, m *models.ScheduledPlacementMatch) error {
	for _, existing := range f.matches {
		if existing.TournamentID == m.TournamentID && existing.MatchUID == m.MatchUID {
			return repositories.ErrPlacementMatchConflict
		}
	}
	f.nextID++
	m.ID = f.nextID
	f.matches[m.ID] = *m
	return nil
}

func (f *fakePlacementMatchRepo) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	for id, m := range f.matches {
		if m.TournamentID == tournamentID {
			delete(f.matches, id)
		}
	}
	return nil
}

func (f *fakePlacementMatchRepo) ListByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) ([]*models.ScheduledPlacementMatch, error) {
	out := make([]*models.ScheduledPlacementMatch, 0)
	for _, m := range f.matches {
		if m.TournamentID == tournamentID {
			cp := m
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePlacementMatchRepo) GetByUID(ctx context.Context, exec repositories.SQLExecutor, tournamentID int, matchUID string) (*models.ScheduledPlacementMatch, error) {
	for _, m := range f.matches {
		if m.TournamentID == tournamentID && m.MatchUID == matchUID {
			cp := m
			return &cp, nil
		}
	}
	return nil, repositories.ErrPlacementMatchNotFound
}

func (f *fakePlacementMatchRepo) UpdateResult(ctx context.Context, exec repositories.SQLExecutor, id int, winnerTeamID *string, status models.MatchStatus) error {
	m, ok := f.matches[id]
	if !ok {
		return repositories.ErrPlacementMatchNotFound
	}
	m.WinnerTeamID = winnerTeamID
	m.Status = status
	f.matches[id] = m
	return nil
}

func (f *fakePlacementMatchRepo) UpdateTeams(ctx context.Context, exec repositories.SQLExecutor, id int, homeTeamID, awayTeamID *string, status models.MatchStatus) error {
	m, ok := f.matches[id]
	if !ok {
		return repositories.ErrPlacementMatchNotFound
	}
	m.HomeTeamID = homeTeamID
	m.AwayTeamID = awayTeamID
	m.Status = status
	f.matches[id] = m
	return nil
}

func (f *fakePlacementMatchRepo) byUID(uid string) models.ScheduledPlacementMatch {
	for _, m := range f.matches {
		if m.MatchUID == uid {
			return m
		}
	}
	panic(fmt.Sprintf("no placement match %s", uid))
}

type broadcast struct {
	room    string
	message interface{}
}

type fakeBroadcaster struct {
	sent []broadcast
}

func (f *fakeBroadcaster) BroadcastToRoom(roomID string, message interface{}) {
	f.sent = append(f.sent, broadcast{room: roomID, message: message})
}

type fakeUploader struct {
	keys   []string
	bodies [][]byte
	err    error
}

func (f *fakeUploader) Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*storage.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(reader); err != nil {
		return nil, err
	}
	f.keys = append(f.keys, key)
	f.bodies = append(f.bodies, buf.Bytes())
	return &storage.UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *fakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func twoGroupStandings() []models.GroupStanding {
	groups := make([]models.GroupStanding, 0, 2)
	for _, letter := range []string{"A", "B"} {
		g := models.GroupStanding{GroupID: letter, GroupName: "Group " + letter}
		for p := 1; p <= 4; p++ {
			g.Teams = append(g.Teams, models.StandingTeam{
				ID:       fmt.Sprintf("%s%d", letter, p),
				Name:     fmt.Sprintf("Team %s%d", letter, p),
				Position: p,
			})
		}
		groups = append(groups, g)
	}
	return groups
}
