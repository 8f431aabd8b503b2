package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dosada05/placement-system/models"
)

type GroupStandingRepository interface {
	// ListByTournament returns the final table of every group, groups in
	// display order and teams by position.
	ListByTournament(ctx context.Context, tournamentID int) ([]models.GroupStanding, error)
}

type postgresGroupStandingRepository struct {
	db *sql.DB
}

func NewPostgresGroupStandingRepository(db *sql.DB) GroupStandingRepository {
	return &postgresGroupStandingRepository{db: db}
}

func (r *postgresGroupStandingRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.GroupStanding, error) {
	query := `
		SELECT g.id, g.name, s.team_id, s.team_name, s.position, s.points, s.goal_difference
		FROM tournament_groups g
		JOIN group_standings s ON s.group_id = g.id
		WHERE g.tournament_id = $1
		ORDER BY g.sort_order ASC, g.id ASC, s.position ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to query group standings for tournament %d: %w", tournamentID, err)
	}
	defer rows.Close()

	standings := make([]models.GroupStanding, 0)
	groupIndex := make(map[string]int)

	for rows.Next() {
		var (
			groupID, groupName string
			team               models.StandingTeam
		)
		if err := rows.Scan(&groupID, &groupName, &team.ID, &team.Name, &team.Position, &team.Points, &team.GoalDifference); err != nil {
			return nil, fmt.Errorf("failed to scan group standing row: %w", err)
		}

		idx, ok := groupIndex[groupID]
		if !ok {
			idx = len(standings)
			groupIndex[groupID] = idx
			standings = append(standings, models.GroupStanding{GroupID: groupID, GroupName: groupName, Teams: []models.StandingTeam{}})
		}
		standings[idx].Teams = append(standings[idx].Teams, team)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return standings, nil
}
