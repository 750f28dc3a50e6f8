package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
)

// ResponseRepository persists per-scenario player answers.
type ResponseRepository struct {
	db *sqlx.DB
}

// NewResponseRepository constructs the repository.
func NewResponseRepository(db *sqlx.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// Create inserts a new response row.
func (r *ResponseRepository) Create(ctx context.Context, resp *models.PlayerResponse) error {
	if resp.ID == "" {
		resp.ID = uuid.NewString()
	}
	if resp.Timestamp.IsZero() {
		resp.Timestamp = time.Now().UTC()
	}
	const query = `INSERT INTO player_responses (id, session_id, scenario_id, player_id, selected_option, points_earned, response_time, timestamp)
VALUES (:id, :session_id, :scenario_id, :player_id, :selected_option, :points_earned, :response_time, :timestamp)`
	if _, err := r.db.NamedExecContext(ctx, query, resp); err != nil {
		return fmt.Errorf("create player response: %w", err)
	}
	return nil
}

// ListBySession returns a session's responses in answer order.
func (r *ResponseRepository) ListBySession(ctx context.Context, sessionID string) ([]models.PlayerResponse, error) {
	const query = `SELECT id, session_id, scenario_id, player_id, selected_option, points_earned, response_time, timestamp
FROM player_responses WHERE session_id = $1 ORDER BY timestamp ASC, id ASC`
	var responses []models.PlayerResponse
	if err := r.db.SelectContext(ctx, &responses, query, sessionID); err != nil {
		return nil, fmt.Errorf("list responses by session: %w", err)
	}
	return responses, nil
}
