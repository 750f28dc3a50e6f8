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

// SnapshotRepository persists document-set snapshots and performs the atomic
// restore transaction.
type SnapshotRepository struct {
	db *sqlx.DB
}

// NewSnapshotRepository constructs the repository.
func NewSnapshotRepository(db *sqlx.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// Create inserts a snapshot row. The payload is written exactly once here and
// never updated afterwards.
func (r *SnapshotRepository) Create(ctx context.Context, snap *models.Snapshot) error {
	if snap.ID == "" {
		snap.ID = uuid.NewString()
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO snapshots (id, name, kind, size, payload, created_at)
VALUES (:id, :name, :kind, :size, :payload, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, snap); err != nil {
		return fmt.Errorf("create snapshot: %w", err)
	}
	return nil
}

// GetByID retrieves one snapshot including its payload.
func (r *SnapshotRepository) GetByID(ctx context.Context, id string) (*models.Snapshot, error) {
	const query = `SELECT id, name, kind, size, payload, created_at FROM snapshots WHERE id = $1`
	var snap models.Snapshot
	if err := r.db.GetContext(ctx, &snap, query, id); err != nil {
		return nil, err
	}
	return &snap, nil
}

// ListNewestFirst returns snapshot metadata for the API listing. Payloads are
// omitted to keep the listing cheap.
func (r *SnapshotRepository) ListNewestFirst(ctx context.Context) ([]models.Snapshot, error) {
	const query = `SELECT id, name, kind, size, created_at FROM snapshots
ORDER BY created_at DESC, id DESC`
	var snaps []models.Snapshot
	if err := r.db.SelectContext(ctx, &snaps, query); err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	return snaps, nil
}

// ListOldestFirst returns snapshot metadata in eviction order. Equal
// timestamps fall back to id order so eviction stays stable.
func (r *SnapshotRepository) ListOldestFirst(ctx context.Context) ([]models.Snapshot, error) {
	const query = `SELECT id, name, kind, size, created_at FROM snapshots
ORDER BY created_at ASC, id ASC`
	var snaps []models.Snapshot
	if err := r.db.SelectContext(ctx, &snaps, query); err != nil {
		return nil, fmt.Errorf("list snapshots for eviction: %w", err)
	}
	return snaps, nil
}

// Delete removes a snapshot row.
func (r *SnapshotRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM snapshots WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check snapshot delete rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Restore replaces both document tables with the payload's contents inside a
// single transaction, preserving original ids. Either both tables are fully
// replaced or neither is. Concurrent restores race; the last commit wins.
func (r *SnapshotRepository) Restore(ctx context.Context, payload *models.SnapshotPayload) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin restore tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM templates`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear templates: %w", err)
	}
	const insertTemplate = `INSERT INTO templates (id, name, description, icon, color, content, created_at)
VALUES (:id, :name, :description, :icon, :color, :content, :created_at)`
	for i := range payload.Templates {
		if _, err := tx.NamedExecContext(ctx, insertTemplate, payload.Templates[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("restore template %s: %w", payload.Templates[i].ID, err)
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM proposals`); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("clear proposals: %w", err)
	}
	const insertProposal = `INSERT INTO proposals (id, title, client_name, status, template_id, content, created_at, updated_at)
VALUES (:id, :title, :client_name, :status, :template_id, :content, :created_at, :updated_at)`
	for i := range payload.Proposals {
		if _, err := tx.NamedExecContext(ctx, insertProposal, payload.Proposals[i]); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("restore proposal %s: %w", payload.Proposals[i].ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit restore tx: %w", err)
	}
	return nil
}
