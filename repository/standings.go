package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type StandingsRepository struct {
	db *sqlx.DB
}

func NewStandingsRepository(db *sqlx.DB) *StandingsRepository {
	return &StandingsRepository{db: db}
}

// ReplaceAll swaps the stored table of a league in one transaction.
func (r *StandingsRepository) ReplaceAll(ctx context.Context, league string, rows []StandingRow) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin standings transaction: %w", err)
	}

	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM standings WHERE league = $1`, league); err != nil {
		return fmt.Errorf("failed to clear standings of league %s: %w", league, err)
	}

	query := `INSERT INTO standings
		(league, rank, team_id, team_name, played, won, drawn, lost, goals_for, goals_against, points, updated_at)
		VALUES (:league, :rank, :team_id, :team_name, :played, :won, :drawn, :lost, :goals_for, :goals_against, :points, :updated_at)`

	for _, row := range rows {
		if _, err := tx.NamedExecContext(ctx, query, row); err != nil {
			return fmt.Errorf("failed to insert standings row of team %s: %w", row.TeamID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit standings transaction: %w", err)
	}

	return nil
}

func (r *StandingsRepository) List(ctx context.Context, league string) ([]StandingRow, error) {
	var rows []StandingRow

	err := r.db.SelectContext(ctx, &rows, `SELECT league, rank, team_id, team_name, played, won, drawn, lost, goals_for, goals_against, points, updated_at FROM standings WHERE league = $1 ORDER BY rank ASC`, league)
	if err != nil {
		return nil, fmt.Errorf("failed to list standings of league %s: %w", league, err)
	}

	return rows, nil
}
