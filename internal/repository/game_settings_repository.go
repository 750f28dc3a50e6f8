package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
)

// GameSettingsRepository persists the single game configuration row.
type GameSettingsRepository struct {
	db *sqlx.DB
}

// NewGameSettingsRepository constructs the repository.
func NewGameSettingsRepository(db *sqlx.DB) *GameSettingsRepository {
	return &GameSettingsRepository{db: db}
}

// Get returns the game settings row, or sql.ErrNoRows when none exists yet.
func (r *GameSettingsRepository) Get(ctx context.Context) (*models.GameSettings, error) {
	const query = `SELECT id, scenarios_per_game, difficulty_progression, leaderboard_size, time_limit, last_updated
FROM game_settings LIMIT 1`
	var s models.GameSettings
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts the initial game settings row.
func (r *GameSettingsRepository) Create(ctx context.Context, s *models.GameSettings) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.LastUpdated = time.Now().UTC()
	const query = `INSERT INTO game_settings (id, scenarios_per_game, difficulty_progression, leaderboard_size, time_limit, last_updated)
VALUES (:id, :scenarios_per_game, :difficulty_progression, :leaderboard_size, :time_limit, :last_updated)`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("create game settings: %w", err)
	}
	return nil
}

// Update overwrites the game settings row.
func (r *GameSettingsRepository) Update(ctx context.Context, s *models.GameSettings) error {
	s.LastUpdated = time.Now().UTC()
	const query = `UPDATE game_settings
SET scenarios_per_game = :scenarios_per_game, difficulty_progression = :difficulty_progression,
    leaderboard_size = :leaderboard_size, time_limit = :time_limit, last_updated = :last_updated
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("update game settings: %w", err)
	}
	return nil
}
