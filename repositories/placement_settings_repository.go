package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

var ErrPlacementSettingsNotFound = errors.New("placement settings not found")

type PlacementSettingsRepository interface {
	GetByTournament(ctx context.Context, tournamentID int) (*models.PlacementSettings, error)
	Upsert(ctx context.Context, settings *models.PlacementSettings) error
}

// settingsBlob is what is stored in the settings JSONB column.
type settingsBlob struct {
	Enabled  bool   `json:"enabled"`
	SystemID string `json:"systemId"`
}

type postgresPlacementSettingsRepository struct {
	db *sql.DB
}

func NewPostgresPlacementSettingsRepository(db *sql.DB) PlacementSettingsRepository {
	return &postgresPlacementSettingsRepository{db: db}
}

func (r *postgresPlacementSettingsRepository) GetByTournament(ctx context.Context, tournamentID int) (*models.PlacementSettings, error) {
	query := `
		SELECT tournament_id, settings, updated_at
		FROM tournament_placement_settings
		WHERE tournament_id = $1`

	var (
		settings models.PlacementSettings
		raw      []byte
	)
	err := r.db.QueryRowContext(ctx, query, tournamentID).Scan(&settings.TournamentID, &raw, &settings.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlacementSettingsNotFound
		}
		return nil, err
	}

	var blob settingsBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return nil, fmt.Errorf("invalid placement settings json for tournament %d: %w", tournamentID, err)
	}
	settings.Enabled = blob.Enabled
	settings.SystemID = blob.SystemID

	return &settings, nil
}

func (r *postgresPlacementSettingsRepository) Upsert(ctx context.Context, settings *models.PlacementSettings) error {
	raw, err := json.Marshal(settingsBlob{Enabled: settings.Enabled, SystemID: settings.SystemID})
	if err != nil {
		return err
	}

	query := `
		INSERT INTO tournament_placement_settings (tournament_id, settings, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (tournament_id) DO UPDATE SET settings = EXCLUDED.settings, updated_at = NOW()
		RETURNING updated_at`

	err = r.db.QueryRowContext(ctx, query, settings.TournamentID, raw).Scan(&settings.UpdatedAt)
	if err != nil {
		if code, _, ok := pqErrorCode(err); ok && code == pqForeignKeyViolation {
			return ErrTournamentNotFound
		}
		return err
	}
	return nil
}
