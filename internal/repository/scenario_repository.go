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

// ScenarioRepository persists decision scenarios.
type ScenarioRepository struct {
	db *sqlx.DB
}

// NewScenarioRepository constructs the repository.
func NewScenarioRepository(db *sqlx.DB) *ScenarioRepository {
	return &ScenarioRepository{db: db}
}

// List returns all scenarios.
func (r *ScenarioRepository) List(ctx context.Context) ([]models.Scenario, error) {
	const query = `SELECT id, question, options, scores, tech_level, category, explanation, created_at
FROM scenarios ORDER BY created_at ASC, id ASC`
	var scenarios []models.Scenario
	if err := r.db.SelectContext(ctx, &scenarios, query); err != nil {
		return nil, fmt.Errorf("list scenarios: %w", err)
	}
	return scenarios, nil
}

// ListByTechLevel filters scenarios by tier.
func (r *ScenarioRepository) ListByTechLevel(ctx context.Context, level models.TechLevel) ([]models.Scenario, error) {
	const query = `SELECT id, question, options, scores, tech_level, category, explanation, created_at
FROM scenarios WHERE tech_level = $1 ORDER BY created_at ASC, id ASC`
	var scenarios []models.Scenario
	if err := r.db.SelectContext(ctx, &scenarios, query, level); err != nil {
		return nil, fmt.Errorf("list scenarios by tech level: %w", err)
	}
	return scenarios, nil
}

// GetByID retrieves one scenario row.
func (r *ScenarioRepository) GetByID(ctx context.Context, id string) (*models.Scenario, error) {
	const query = `SELECT id, question, options, scores, tech_level, category, explanation, created_at
FROM scenarios WHERE id = $1`
	var s models.Scenario
	if err := r.db.GetContext(ctx, &s, query, id); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts a new scenario.
func (r *ScenarioRepository) Create(ctx context.Context, s *models.Scenario) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	const query = `INSERT INTO scenarios (id, question, options, scores, tech_level, category, explanation, created_at)
VALUES (:id, :question, :options, :scores, :tech_level, :category, :explanation, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("create scenario: %w", err)
	}
	return nil
}

// Update overwrites mutable scenario fields.
func (r *ScenarioRepository) Update(ctx context.Context, s *models.Scenario) error {
	const query = `UPDATE scenarios
SET question = :question, options = :options, scores = :scores, tech_level = :tech_level,
    category = :category, explanation = :explanation
WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, s)
	if err != nil {
		return fmt.Errorf("update scenario: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check scenario update rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// Delete removes a scenario row.
func (r *ScenarioRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete scenario: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("check scenario delete rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
