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

// PlayerRepository persists game players.
type PlayerRepository struct {
	db *sqlx.DB
}

// NewPlayerRepository constructs the repository.
func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Create inserts a new player.
func (r *PlayerRepository) Create(ctx context.Context, p *models.Player) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO players (id, username, password_hash, avatar, tech_level, total_points, created_at, last_login)
VALUES (:id, :username, :password_hash, :avatar, :tech_level, :total_points, :created_at, :last_login)`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("create player: %w", err)
	}
	return nil
}

// GetByID retrieves one player row.
func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*models.Player, error) {
	const query = `SELECT id, username, password_hash, avatar, tech_level, total_points, created_at, last_login
FROM players WHERE id = $1`
	var p models.Player
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// GetByUsername retrieves one player by unique username.
func (r *PlayerRepository) GetByUsername(ctx context.Context, username string) (*models.Player, error) {
	const query = `SELECT id, username, password_hash, avatar, tech_level, total_points, created_at, last_login
FROM players WHERE username = $1`
	var p models.Player
	if err := r.db.GetContext(ctx, &p, query, username); err != nil {
		return nil, err
	}
	return &p, nil
}

// List returns every player, oldest registration first.
func (r *PlayerRepository) List(ctx context.Context) ([]models.Player, error) {
	const query = `SELECT id, username, password_hash, avatar, tech_level, total_points, created_at, last_login
FROM players ORDER BY created_at ASC, id ASC`
	var players []models.Player
	if err := r.db.SelectContext(ctx, &players, query); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return players, nil
}

// ListByTechLevel filters players by declared tier.
func (r *PlayerRepository) ListByTechLevel(ctx context.Context, level models.TechLevel) ([]models.Player, error) {
	const query = `SELECT id, username, password_hash, avatar, tech_level, total_points, created_at, last_login
FROM players WHERE tech_level = $1 ORDER BY created_at ASC, id ASC`
	var players []models.Player
	if err := r.db.SelectContext(ctx, &players, query, level); err != nil {
		return nil, fmt.Errorf("list players by tech level: %w", err)
	}
	return players, nil
}

// UpdateProfile overwrites avatar and tech level.
func (r *PlayerRepository) UpdateProfile(ctx context.Context, id, avatar string, level models.TechLevel) error {
	res, err := r.db.ExecContext(ctx, `UPDATE players SET avatar = $2, tech_level = $3 WHERE id = $1`, id, avatar, level)
	if err != nil {
		return fmt.Errorf("update player profile: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check player update rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// TouchLastLogin records a successful credential check.
func (r *PlayerRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE players SET last_login = $2 WHERE id = $1`, id, at); err != nil {
		return fmt.Errorf("touch player last login: %w", err)
	}
	return nil
}

// AddPoints credits a completed session's score to the player's running total.
// The delta is applied in SQL so concurrent completions cannot lose updates.
func (r *PlayerRepository) AddPoints(ctx context.Context, id string, delta int) error {
	res, err := r.db.ExecContext(ctx, `UPDATE players SET total_points = total_points + $2 WHERE id = $1`, id, delta)
	if err != nil {
		return fmt.Errorf("add player points: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check player points rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
