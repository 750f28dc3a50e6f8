package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
)

// SessionRepository persists game play sessions.
type SessionRepository struct {
	db *sqlx.DB
}

// NewSessionRepository constructs the repository.
func NewSessionRepository(db *sqlx.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create inserts a new open session.
func (r *SessionRepository) Create(ctx context.Context, s *models.GameSession) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.StartTime.IsZero() {
		s.StartTime = time.Now().UTC()
	}
	const query = `INSERT INTO game_sessions (id, player_id, tech_level, scenarios_played, total_score, start_time, end_time, is_completed)
VALUES (:id, :player_id, :tech_level, :scenarios_played, :total_score, :start_time, :end_time, :is_completed)`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("create game session: %w", err)
	}
	return nil
}

// GetByID retrieves one session row.
func (r *SessionRepository) GetByID(ctx context.Context, id string) (*models.GameSession, error) {
	const query = `SELECT id, player_id, tech_level, scenarios_played, total_score, start_time, end_time, is_completed
FROM game_sessions WHERE id = $1`
	var s models.GameSession
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListByPlayer returns a player's sessions, most recent first.
func (r *SessionRepository) ListByPlayer(ctx context.Context, playerID string) ([]models.GameSession, error) {
	const query = `SELECT id, player_id, tech_level, scenarios_played, total_score, start_time, end_time, is_completed
FROM game_sessions WHERE player_id = $1 ORDER BY start_time DESC, id DESC`
	var sessions []models.GameSession
	if err := r.db.SelectContext(ctx, &sessions, query, playerID); err != nil {
		return nil, fmt.Errorf("list sessions by player: %w", err)
	}
	return sessions, nil
}

// MarkCompleted transitions an open session to completed. The is_completed
// guard makes the transition single-shot even under concurrent calls:
// sql.ErrNoRows means the session was missing or already completed.
func (r *SessionRepository) MarkCompleted(ctx context.Context, id string, totalScore int, endTime time.Time) error {
	const query = `UPDATE game_sessions
SET is_completed = TRUE, end_time = $2, total_score = $3
WHERE id = $1 AND is_completed = FALSE`
	res, err := r.db.ExecContext(ctx, query, id, endTime, totalScore)
	if err != nil {
		return fmt.Errorf("complete game session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check session completion rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// CountCompletedByPlayer returns the player's completed-session count.
func (r *SessionRepository) CountCompletedByPlayer(ctx context.Context, playerID string) (int, error) {
	var count int
	const query = `SELECT COUNT(*) FROM game_sessions WHERE player_id = $1 AND is_completed = TRUE`
	if err := r.db.GetContext(ctx, &count, query, playerID); err != nil {
		return 0, fmt.Errorf("count completed sessions: %w", err)
	}
	return count, nil
}
