package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/placement-system/brackets"
	"github.com/Dosada05/placement-system/db"
	"github.com/Dosada05/placement-system/models"
	"github.com/Dosada05/placement-system/repositories"
	"github.com/Dosada05/placement-system/storage"
	"golang.org/x/sync/errgroup"
)

// RoomBroadcaster is implemented by brackets.Hub.
type RoomBroadcaster interface {
	BroadcastToRoom(roomID string, message interface{})
}

type PlacementService interface {
	ListTemplates(ctx context.Context, filter TemplateFilter) []models.PlacementSystemConfiguration
	GetTemplate(ctx context.Context, id string) (*models.PlacementSystemConfiguration, error)
	ValidateConfiguration(ctx context.Context, cfg models.PlacementSystemConfiguration) models.ValidationResult

	GetSettings(ctx context.Context, tournamentID int) (*models.PlacementSettings, error)
	UpdateSettings(ctx context.Context, actor models.CurrentUser, tournamentID int, input UpdatePlacementSettingsInput) (*models.PlacementSettings, error)

	PreviewPlacementMatches(ctx context.Context, tournamentID int, override *models.PlacementSystemConfiguration) (*PlacementPreview, error)
	GenerateAndSavePlacementMatches(ctx context.Context, actor models.CurrentUser, tournamentID int) ([]*models.ScheduledPlacementMatch, error)
	ListPlacementMatches(ctx context.Context, tournamentID int) ([]*models.ScheduledPlacementMatch, error)
	RecordPlacementResult(ctx context.Context, actor models.CurrentUser, tournamentID int, matchUID string, input RecordPlacementResultInput) (*models.ScheduledPlacementMatch, error)
}

// TemplateFilter narrows the template catalog. Zero value lists everything.
type TemplateFilter struct {
	Type  *models.PlacementSystemType
	Query string
}

type UpdatePlacementSettingsInput struct {
	Enabled  bool   `json:"enabled"`
	SystemID string `json:"systemId"`
}

type RecordPlacementResultInput struct {
	WinnerTeamID string `json:"winnerTeamId"`
}

type PlacementPreview struct {
	TournamentID  int                                 `json:"tournamentId"`
	Configuration models.PlacementSystemConfiguration `json:"configuration"`
	Standings     []models.GroupStanding              `json:"standings"`
	Brackets      []models.BracketMatches             `json:"brackets"`
}

type placementService struct {
	tx             db.TxRunner
	tournamentRepo repositories.TournamentRepository
	standingRepo   repositories.GroupStandingRepository
	settingsRepo   repositories.PlacementSettingsRepository
	matchRepo      repositories.PlacementMatchRepository
	broadcaster    RoomBroadcaster
	snapshots      *SnapshotArchiver
	logger         *slog.Logger
}

func NewPlacementService(
	tx db.TxRunner,
	tournamentRepo repositories.TournamentRepository,
	standingRepo repositories.GroupStandingRepository,
	settingsRepo repositories.PlacementSettingsRepository,
	matchRepo repositories.PlacementMatchRepository,
	broadcaster RoomBroadcaster,
	uploader storage.FileUploader,
	logger *slog.Logger,
) PlacementService {
	return &placementService{
		tx:             tx,
		tournamentRepo: tournamentRepo,
		standingRepo:   standingRepo,
		settingsRepo:   settingsRepo,
		matchRepo:      matchRepo,
		broadcaster:    broadcaster,
		snapshots:      NewSnapshotArchiver(uploader),
		logger:         logger,
	}
}

func (s *placementService) ListTemplates(ctx context.Context, filter TemplateFilter) []models.PlacementSystemConfiguration {
	query := strings.TrimSpace(filter.Query)
	if query == "" {
		if filter.Type != nil {
			return brackets.GetPlacementSystemTemplatesByType(*filter.Type)
		}
		return brackets.GetAllPlacementSystemTemplates()
	}

	found := brackets.SearchPlacementSystemTemplates(query)
	if filter.Type == nil {
		return found
	}
	out := make([]models.PlacementSystemConfiguration, 0, len(found))
	for _, t := range found {
		if t.Type == *filter.Type {
			out = append(out, t)
		}
	}
	return out
}

func (s *placementService) GetTemplate(ctx context.Context, id string) (*models.PlacementSystemConfiguration, error) {
	tmpl, ok := brackets.GetPlacementSystemTemplate(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, id)
	}
	return &tmpl, nil
}

func (s *placementService) ValidateConfiguration(ctx context.Context, cfg models.PlacementSystemConfiguration) models.ValidationResult {
	return brackets.ValidatePlacementSystemConfiguration(cfg)
}

func (s *placementService) GetSettings(ctx context.Context, tournamentID int) (*models.PlacementSettings, error) {
	settings, err := s.settingsRepo.GetByTournament(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrPlacementSettingsNotFound) {
			if _, tErr := s.getTournament(ctx, tournamentID); tErr != nil {
				return nil, tErr
			}
			return &models.PlacementSettings{TournamentID: tournamentID}, nil
		}
		return nil, fmt.Errorf("failed to get placement settings for tournament %d: %w", tournamentID, err)
	}
	return settings, nil
}

func (s *placementService) UpdateSettings(ctx context.Context, actor models.CurrentUser, tournamentID int, input UpdatePlacementSettingsInput) (*models.PlacementSettings, error) {
	if err := s.authorizeTournamentWrite(ctx, actor, tournamentID); err != nil {
		return nil, err
	}

	systemID := strings.TrimSpace(input.SystemID)
	if input.Enabled && systemID == "" {
		return nil, fmt.Errorf("%w: systemId is required when placement is enabled", ErrValidationFailed)
	}
	if systemID != "" {
		if _, ok := brackets.GetPlacementSystemTemplate(systemID); !ok {
			return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, systemID)
		}
	}

	settings := &models.PlacementSettings{
		TournamentID: tournamentID,
		Enabled:      input.Enabled,
		SystemID:     systemID,
	}
	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to save placement settings for tournament %d: %w", tournamentID, err)
	}

	s.logger.Info("placement settings updated",
		slog.Int("tournament_id", tournamentID),
		slog.Bool("enabled", settings.Enabled),
		slog.String("system_id", settings.SystemID),
		slog.Int("user_id", actor.ID))

	return settings, nil
}

func (s *placementService) PreviewPlacementMatches(ctx context.Context, tournamentID int, override *models.PlacementSystemConfiguration) (*PlacementPreview, error) {
	var (
		standings []models.GroupStanding
		settings  *models.PlacementSettings
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := s.getTournament(gCtx, tournamentID)
		return err
	})

	g.Go(func() error {
		var err error
		standings, err = s.standingRepo.ListByTournament(gCtx, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to load group standings for tournament %d: %w", tournamentID, err)
		}
		return nil
	})

	if override == nil {
		g.Go(func() error {
			var err error
			settings, err = s.settingsRepo.GetByTournament(gCtx, tournamentID)
			if err != nil {
				if errors.Is(err, repositories.ErrPlacementSettingsNotFound) {
					return ErrPlacementNotConfigured
				}
				return fmt.Errorf("failed to load placement settings for tournament %d: %w", tournamentID, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	cfg, err := s.resolveConfiguration(settings, override)
	if err != nil {
		return nil, err
	}

	if result := brackets.ValidatePlacementSystemConfiguration(cfg); !result.IsValid {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPlacementConfiguration, strings.Join(result.Errors, "; "))
	}

	if len(standings) == 0 {
		return nil, ErrNoGroupStandings
	}

	s.warnAboutIgnoredOptions(tournamentID, cfg, standings)

	return &PlacementPreview{
		TournamentID:  tournamentID,
		Configuration: cfg,
		Standings:     standings,
		Brackets:      brackets.GeneratePlacementMatches(standings, cfg),
	}, nil
}

func (s *placementService) GenerateAndSavePlacementMatches(ctx context.Context, actor models.CurrentUser, tournamentID int) ([]*models.ScheduledPlacementMatch, error) {
	if err := s.authorizeTournamentWrite(ctx, actor, tournamentID); err != nil {
		return nil, err
	}

	preview, err := s.PreviewPlacementMatches(ctx, tournamentID, nil)
	if err != nil {
		return nil, err
	}

	teamIDs := indexStandingTeams(preview.Standings)
	saved := make([]*models.ScheduledPlacementMatch, 0)

	err = s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.matchRepo.DeleteByTournament(ctx, exec, tournamentID); err != nil {
			return err
		}

		for _, bracket := range preview.Brackets {
			for _, pm := range bracket.Matches {
				m := newScheduledMatch(tournamentID, bracket, pm, teamIDs)
				if err := s.matchRepo.Create(ctx, exec, m); err != nil {
					return fmt.Errorf("failed to save placement match %s: %w", pm.ID, err)
				}
				saved = append(saved, m)
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save placement matches for tournament %d: %w", tournamentID, err)
	}

	s.logger.Info("placement matches generated",
		slog.Int("tournament_id", tournamentID),
		slog.String("system_id", preview.Configuration.ID),
		slog.Int("matches", len(saved)))

	s.broadcaster.BroadcastToRoom(brackets.TournamentRoom(tournamentID), brackets.WebSocketMessage{
		Type:    brackets.EventPlacementMatchesGenerated,
		Payload: saved,
		RoomID:  brackets.TournamentRoom(tournamentID),
	})

	if location, err := s.snapshots.Archive(ctx, preview); err != nil {
		s.logger.Error("failed to archive placement snapshot", slog.Int("tournament_id", tournamentID), slog.Any("error", err))
	} else if location != "" {
		s.logger.Info("placement snapshot archived", slog.Int("tournament_id", tournamentID), slog.String("location", location))
	}

	return saved, nil
}

func (s *placementService) ListPlacementMatches(ctx context.Context, tournamentID int) ([]*models.ScheduledPlacementMatch, error) {
	if _, err := s.getTournament(ctx, tournamentID); err != nil {
		return nil, err
	}
	matches, err := s.matchRepo.ListByTournament(ctx, nil, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list placement matches for tournament %d: %w", tournamentID, err)
	}
	return matches, nil
}

func (s *placementService) RecordPlacementResult(ctx context.Context, actor models.CurrentUser, tournamentID int, matchUID string, input RecordPlacementResultInput) (*models.ScheduledPlacementMatch, error) {
	if err := s.authorizeTournamentWrite(ctx, actor, tournamentID); err != nil {
		return nil, err
	}

	winnerID := strings.TrimSpace(input.WinnerTeamID)
	if winnerID == "" {
		return nil, fmt.Errorf("%w: winnerTeamId is required", ErrValidationFailed)
	}

	var (
		completed *models.ScheduledPlacementMatch
		updated   []*models.ScheduledPlacementMatch
	)

	err := s.tx.WithinTransaction(ctx, func(exec repositories.SQLExecutor) error {
		match, err := s.matchRepo.GetByUID(ctx, exec, tournamentID, matchUID)
		if err != nil {
			if errors.Is(err, repositories.ErrPlacementMatchNotFound) {
				return ErrPlacementMatchNotFound
			}
			return err
		}

		switch {
		case match.Status == models.MatchStatusCompleted:
			return ErrPlacementMatchAlreadyCompleted
		case match.HomeTeamID == nil || match.AwayTeamID == nil:
			return ErrPlacementMatchNotReady
		case winnerID != *match.HomeTeamID && winnerID != *match.AwayTeamID:
			return ErrInvalidWinner
		}

		match.WinnerTeamID = &winnerID
		match.Status = models.MatchStatusCompleted
		if err := s.matchRepo.UpdateResult(ctx, exec, match.ID, match.WinnerTeamID, match.Status); err != nil {
			return err
		}
		completed = match

		all, err := s.matchRepo.ListByTournament(ctx, exec, tournamentID)
		if err != nil {
			return err
		}
		for _, dependent := range all {
			if !propagateResult(match, dependent) {
				continue
			}
			if err := s.matchRepo.UpdateTeams(ctx, exec, dependent.ID, dependent.HomeTeamID, dependent.AwayTeamID, dependent.Status); err != nil {
				return fmt.Errorf("failed to advance result of %s into %s: %w", match.MatchUID, dependent.MatchUID, err)
			}
			updated = append(updated, dependent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("placement match result recorded",
		slog.Int("tournament_id", tournamentID),
		slog.String("match_uid", matchUID),
		slog.String("winner_team_id", winnerID),
		slog.Int("dependent_matches", len(updated)))

	room := brackets.TournamentRoom(tournamentID)
	for _, m := range append([]*models.ScheduledPlacementMatch{completed}, updated...) {
		s.broadcaster.BroadcastToRoom(room, brackets.WebSocketMessage{
			Type:    brackets.EventPlacementMatchUpdated,
			Payload: m,
			RoomID:  room,
		})
	}

	return completed, nil
}

func (s *placementService) resolveConfiguration(settings *models.PlacementSettings, override *models.PlacementSystemConfiguration) (models.PlacementSystemConfiguration, error) {
	if override != nil {
		return *override, nil
	}
	if settings == nil || settings.SystemID == "" {
		return models.PlacementSystemConfiguration{}, ErrPlacementNotConfigured
	}
	if !settings.Enabled {
		return models.PlacementSystemConfiguration{}, ErrPlacementDisabled
	}
	tmpl, ok := brackets.GetPlacementSystemTemplate(settings.SystemID)
	if !ok {
		return models.PlacementSystemConfiguration{}, fmt.Errorf("%w: %s", ErrTemplateNotFound, settings.SystemID)
	}
	return tmpl, nil
}

// warnAboutIgnoredOptions logs bracket options the generator does not act on.
func (s *placementService) warnAboutIgnoredOptions(tournamentID int, cfg models.PlacementSystemConfiguration, standings []models.GroupStanding) {
	for _, b := range cfg.Brackets {
		if b.MatchFormat != models.MatchFormatPlayoff {
			continue
		}
		if n := brackets.BracketTeamCount(standings, b.Positions); n > brackets.PlayoffMaxTeams {
			s.logger.Warn("playoff bracket uses only the top entrants",
				slog.Int("tournament_id", tournamentID),
				slog.String("bracket_id", b.ID),
				slog.Int("entrants", n),
				slog.Int("used", brackets.PlayoffMaxTeams))
		}
		if b.IncludeFifthPlace || b.IncludeSeventhPlace {
			s.logger.Warn("fifth and seventh place matches are not generated for playoff brackets",
				slog.Int("tournament_id", tournamentID),
				slog.String("bracket_id", b.ID))
		}
	}
}

func (s *placementService) getTournament(ctx context.Context, tournamentID int) (*models.Tournament, error) {
	t, err := s.tournamentRepo.GetByID(ctx, tournamentID)
	if err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return nil, ErrTournamentNotFound
		}
		return nil, fmt.Errorf("failed to get tournament %d: %w", tournamentID, err)
	}
	return t, nil
}

// authorizeTournamentWrite allows admins and the organizer of the tournament.
func (s *placementService) authorizeTournamentWrite(ctx context.Context, actor models.CurrentUser, tournamentID int) error {
	t, err := s.getTournament(ctx, tournamentID)
	if err != nil {
		return err
	}
	switch {
	case actor.Role == models.RoleAdmin:
		return nil
	case actor.Role == models.RoleOrganizer && t.OrganizerID == actor.ID:
		return nil
	}
	return ErrForbiddenOperation
}
