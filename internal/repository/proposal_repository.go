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

// ProposalRepository persists proposal documents.
type ProposalRepository struct {
	db *sqlx.DB
}

// NewProposalRepository constructs the repository.
func NewProposalRepository(db *sqlx.DB) *ProposalRepository {
	return &ProposalRepository{db: db}
}

// List returns all proposals, most recent first.
func (r *ProposalRepository) List(ctx context.Context) ([]models.Proposal, error) {
	const query = `SELECT id, title, client_name, status, template_id, content, created_at, updated_at
FROM proposals ORDER BY created_at DESC, id ASC`
	var proposals []models.Proposal
	if err := r.db.SelectContext(ctx, &proposals, query); err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return proposals, nil
}

// GetByID retrieves one proposal row.
func (r *ProposalRepository) GetByID(ctx context.Context, id string) (*models.Proposal, error) {
	const query = `SELECT id, title, client_name, status, template_id, content, created_at, updated_at
FROM proposals WHERE id = $1`
	var p models.Proposal
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		return nil, err
	}
	return &p, nil
}

// Create inserts a new proposal.
func (r *ProposalRepository) Create(ctx context.Context, p *models.Proposal) error {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	const query = `INSERT INTO proposals (id, title, client_name, status, template_id, content, created_at, updated_at)
VALUES (:id, :title, :client_name, :status, :template_id, :content, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("create proposal: %w", err)
	}
	return nil
}

// Update overwrites mutable proposal fields and refreshes updated_at.
func (r *ProposalRepository) Update(ctx context.Context, p *models.Proposal) error {
	p.UpdatedAt = time.Now().UTC()
	const query = `UPDATE proposals
SET title = :title, client_name = :client_name, status = :status, template_id = :template_id,
    content = :content, updated_at = :updated_at
WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, p)
	if err != nil {
		return fmt.Errorf("update proposal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check proposal update rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a proposal row.
func (r *ProposalRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM proposals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete proposal: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check proposal delete rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
