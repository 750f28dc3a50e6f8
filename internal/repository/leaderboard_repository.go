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

// LeaderboardRepository persists the materialized ranking rows.
type LeaderboardRepository struct {
	db *sqlx.DB
}

// NewLeaderboardRepository constructs the repository.
func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

// GetByPlayer retrieves a player's leaderboard row.
func (r *LeaderboardRepository) GetByPlayer(ctx context.Context, playerID string) (*models.LeaderboardEntry, error) {
	const query = `SELECT id, player_id, username, avatar, total_points, tech_level, rank, games_played, last_updated
FROM leaderboard WHERE player_id = $1`
	var entry models.LeaderboardEntry
	if err := r.db.GetContext(ctx, &entry, query, playerID); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Insert adds a new leaderboard row.
func (r *LeaderboardRepository) Insert(ctx context.Context, entry *models.LeaderboardEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.LastUpdated.IsZero() {
		entry.LastUpdated = time.Now().UTC()
	}
	const query = `INSERT INTO leaderboard (id, player_id, username, avatar, total_points, tech_level, rank, games_played, last_updated)
VALUES (:id, :player_id, :username, :avatar, :total_points, :tech_level, :rank, :games_played, :last_updated)`
	if _, err := r.db.NamedExecContext(ctx, query, entry); err != nil {
		return fmt.Errorf("insert leaderboard entry: %w", err)
	}
	return nil
}

// UpdateStats overwrites a player's point total, denormalized profile
// fields and games-played counter. Ranks are rewritten separately.
func (r *LeaderboardRepository) UpdateStats(ctx context.Context, entry *models.LeaderboardEntry) error {
	entry.LastUpdated = time.Now().UTC()
	const query = `UPDATE leaderboard
SET username = :username, avatar = :avatar, total_points = :total_points,
    tech_level = :tech_level, games_played = :games_played, last_updated = :last_updated
WHERE player_id = :player_id`
	res, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return fmt.Errorf("update leaderboard stats: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check leaderboard update rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ListByRank returns the top entries in rank order.
func (r *LeaderboardRepository) ListByRank(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	const query = `SELECT id, player_id, username, avatar, total_points, tech_level, rank, games_played, last_updated
FROM leaderboard ORDER BY rank ASC, player_id ASC LIMIT $1`
	var entries []models.LeaderboardEntry
	if err := r.db.SelectContext(ctx, &entries, query, limit); err != nil {
		return nil, fmt.Errorf("list leaderboard: %w", err)
	}
	return entries, nil
}

// DeleteAll clears the board ahead of a full rebuild.
func (r *LeaderboardRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM leaderboard`); err != nil {
		return fmt.Errorf("clear leaderboard: %w", err)
	}
	return nil
}

// RecalculateRanks rewrites every rank from the current point totals in a
// single transaction. Ordering is total_points DESC with player_id as the
// tie-break, so equal scores always rank the same way. Readers never observe
// a half-ranked board.
func (r *LeaderboardRepository) RecalculateRanks(ctx context.Context) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rank transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var playerIDs []string
	const selectQuery = `SELECT player_id FROM leaderboard ORDER BY total_points DESC, player_id ASC`
	if err := tx.SelectContext(ctx, &playerIDs, selectQuery); err != nil {
		return fmt.Errorf("read leaderboard ordering: %w", err)
	}

	now := time.Now().UTC()
	const updateQuery = `UPDATE leaderboard SET rank = $2, last_updated = $3 WHERE player_id = $1`
	for i, playerID := range playerIDs {
		if _, err := tx.ExecContext(ctx, updateQuery, playerID, i+1, now); err != nil {
			return fmt.Errorf("write rank for player %s: %w", playerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rank transaction: %w", err)
	}
	return nil
}
