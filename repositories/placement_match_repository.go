package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

var (
	ErrPlacementMatchNotFound = errors.New("placement match not found")
	ErrPlacementMatchConflict = errors.New("placement match uid already exists for this tournament")
)

type PlacementMatchRepository interface {
	Create(ctx context.Context, exec SQLExecutor, match *models.ScheduledPlacementMatch) error
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
	ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.ScheduledPlacementMatch, error)
	GetByUID(ctx context.Context, exec SQLExecutor, tournamentID int, matchUID string) (*models.ScheduledPlacementMatch, error)
	UpdateResult(ctx context.Context, exec SQLExecutor, id int, winnerTeamID *string, status models.MatchStatus) error
	UpdateTeams(ctx context.Context, exec SQLExecutor, id int, homeTeamID, awayTeamID *string, status models.MatchStatus) error
}

type postgresPlacementMatchRepository struct {
	db *sql.DB
}

func NewPostgresPlacementMatchRepository(db *sql.DB) PlacementMatchRepository {
	return &postgresPlacementMatchRepository{db: db}
}

func (r *postgresPlacementMatchRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

const placementMatchColumns = `
	id, tournament_id, bracket_id, bracket_name, match_uid, round, round_label,
	match_number, match_label, home_slot, away_slot, home_team_id, away_team_id,
	winner_team_id, status, created_at, updated_at`

func (r *postgresPlacementMatchRepository) Create(ctx context.Context, exec SQLExecutor, m *models.ScheduledPlacementMatch) error {
	homeSlot, err := json.Marshal(m.HomeSlot)
	if err != nil {
		return fmt.Errorf("failed to encode home slot of %s: %w", m.MatchUID, err)
	}
	awaySlot, err := json.Marshal(m.AwaySlot)
	if err != nil {
		return fmt.Errorf("failed to encode away slot of %s: %w", m.MatchUID, err)
	}

	query := `
		INSERT INTO placement_matches
			(tournament_id, bracket_id, bracket_name, match_uid, round, round_label,
			 match_number, match_label, home_slot, away_slot, home_team_id, away_team_id,
			 winner_team_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id, created_at, updated_at`

	err = r.getExecutor(exec).QueryRowContext(ctx, query,
		m.TournamentID,
		m.BracketID,
		m.BracketName,
		m.MatchUID,
		m.Round,
		m.RoundLabel,
		m.MatchNumber,
		m.MatchLabel,
		homeSlot,
		awaySlot,
		m.HomeTeamID,
		m.AwayTeamID,
		m.WinnerTeamID,
		m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)

	return r.handlePlacementMatchError(err)
}

func (r *postgresPlacementMatchRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	_, err := r.getExecutor(exec).ExecContext(ctx, `DELETE FROM placement_matches WHERE tournament_id = $1`, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to delete placement matches of tournament %d: %w", tournamentID, err)
	}
	return nil
}

func (r *postgresPlacementMatchRepository) ListByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) ([]*models.ScheduledPlacementMatch, error) {
	query := `SELECT ` + placementMatchColumns + `
		FROM placement_matches
		WHERE tournament_id = $1
		ORDER BY id ASC`

	rows, err := r.getExecutor(exec).QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	matches := make([]*models.ScheduledPlacementMatch, 0)
	for rows.Next() {
		m, err := scanPlacementMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}

func (r *postgresPlacementMatchRepository) GetByUID(ctx context.Context, exec SQLExecutor, tournamentID int, matchUID string) (*models.ScheduledPlacementMatch, error) {
	query := `SELECT ` + placementMatchColumns + `
		FROM placement_matches
		WHERE tournament_id = $1 AND match_uid = $2`

	m, err := scanPlacementMatch(r.getExecutor(exec).QueryRowContext(ctx, query, tournamentID, matchUID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlacementMatchNotFound
		}
		return nil, err
	}
	return m, nil
}

func (r *postgresPlacementMatchRepository) UpdateResult(ctx context.Context, exec SQLExecutor, id int, winnerTeamID *string, status models.MatchStatus) error {
	query := `
		UPDATE placement_matches
		SET winner_team_id = $1, status = $2, updated_at = NOW()
		WHERE id = $3`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, winnerTeamID, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlacementMatchNotFound)
}

func (r *postgresPlacementMatchRepository) UpdateTeams(ctx context.Context, exec SQLExecutor, id int, homeTeamID, awayTeamID *string, status models.MatchStatus) error {
	query := `
		UPDATE placement_matches
		SET home_team_id = $1, away_team_id = $2, status = $3, updated_at = NOW()
		WHERE id = $4`
	result, err := r.getExecutor(exec).ExecContext(ctx, query, homeTeamID, awayTeamID, status, id)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlacementMatchNotFound)
}

func scanPlacementMatch(rowScanner interface{ Scan(...interface{}) error }) (*models.ScheduledPlacementMatch, error) {
	var (
		m                  models.ScheduledPlacementMatch
		homeSlot, awaySlot []byte
		homeID, awayID     sql.NullString
		winnerID           sql.NullString
	)
	err := rowScanner.Scan(
		&m.ID,
		&m.TournamentID,
		&m.BracketID,
		&m.BracketName,
		&m.MatchUID,
		&m.Round,
		&m.RoundLabel,
		&m.MatchNumber,
		&m.MatchLabel,
		&homeSlot,
		&awaySlot,
		&homeID,
		&awayID,
		&winnerID,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(homeSlot, &m.HomeSlot); err != nil {
		return nil, fmt.Errorf("failed to decode home slot of %s: %w", m.MatchUID, err)
	}
	if err := json.Unmarshal(awaySlot, &m.AwaySlot); err != nil {
		return nil, fmt.Errorf("failed to decode away slot of %s: %w", m.MatchUID, err)
	}
	m.HomeTeamID = nullStringPtr(homeID)
	m.AwayTeamID = nullStringPtr(awayID)
	m.WinnerTeamID = nullStringPtr(winnerID)

	return &m, nil
}

func nullStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func (r *postgresPlacementMatchRepository) handlePlacementMatchError(err error) error {
	if err == nil {
		return nil
	}
	if code, constraint, ok := pqErrorCode(err); ok {
		switch {
		case code == pqUniqueViolation && constraint == "placement_matches_tournament_uid_key":
			return ErrPlacementMatchConflict
		case code == pqForeignKeyViolation:
			return ErrTournamentNotFound
		}
	}
	return err
}
