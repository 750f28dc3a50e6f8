package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
)

// SettingsRepository persists the single system settings row.
type SettingsRepository struct {
	db *sqlx.DB
}

// NewSettingsRepository constructs the repository.
func NewSettingsRepository(db *sqlx.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the settings row, or sql.ErrNoRows when none exists yet.
func (r *SettingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	const query = `SELECT id, backup_time, backup_enabled, max_backups,
       company_name, company_logo, company_address, company_email, company_phone, updated_at
FROM settings LIMIT 1`
	var s models.Settings
	if err := r.db.GetContext(ctx, &s, query); err != nil {
		return nil, err
	}
	return &s, nil
}

// Create inserts the initial settings row.
func (r *SettingsRepository) Create(ctx context.Context, s *models.Settings) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	s.UpdatedAt = time.Now().UTC()
	const query = `INSERT INTO settings
	(id, backup_time, backup_enabled, max_backups, company_name, company_logo, company_address, company_email, company_phone, updated_at)
	VALUES (:id, :backup_time, :backup_enabled, :max_backups, :company_name, :company_logo, :company_address, :company_email, :company_phone, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("create settings: %w", err)
	}
	return nil
}

// Update overwrites the settings row.
func (r *SettingsRepository) Update(ctx context.Context, s *models.Settings) error {
	s.UpdatedAt = time.Now().UTC()
	const query = `UPDATE settings
SET backup_time = :backup_time, backup_enabled = :backup_enabled, max_backups = :max_backups,
    company_name = :company_name, company_logo = :company_logo, company_address = :company_address,
    company_email = :company_email, company_phone = :company_phone, updated_at = :updated_at
WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	return nil
}
