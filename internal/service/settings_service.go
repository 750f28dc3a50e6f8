package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type settingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Create(ctx context.Context, s *models.Settings) error
	Update(ctx context.Context, s *models.Settings) error
}

// scheduleRearmer lets a settings change move or cancel the nightly backup
// without the settings service knowing scheduler internals.
type scheduleRearmer interface {
	Rearm(policy models.RetentionPolicy)
}

// Defaults written when no settings row exists yet.
const (
	defaultBackupTime  = "23:00"
	defaultMaxBackups  = 30
	defaultCompanyName = "Your Company"
)

// SettingsService manages the single system settings row.
type SettingsService struct {
	store     settingsStore
	scheduler scheduleRearmer
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSettingsService constructs a SettingsService.
func NewSettingsService(store settingsStore, scheduler scheduleRearmer, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SettingsService{store: store, scheduler: scheduler, validator: validate, logger: logger}
}

// Get returns the settings row, creating it with defaults on first access.
func (s *SettingsService) Get(ctx context.Context) (*models.Settings, error) {
	settings, err := s.store.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}

	settings = &models.Settings{
		BackupTime:    defaultBackupTime,
		BackupEnabled: true,
		MaxBackups:    defaultMaxBackups,
		CompanyName:   defaultCompanyName,
	}
	if err := s.store.Create(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to initialise settings")
	}
	s.logger.Info("settings initialised with defaults")
	return settings, nil
}

// Policy returns the retention policy derived from current settings. It backs
// the snapshot pruner and the scheduler.
func (s *SettingsService) Policy(ctx context.Context) (models.RetentionPolicy, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return models.RetentionPolicy{}, err
	}
	policy, err := settings.Policy()
	if err != nil {
		return models.RetentionPolicy{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "stored backup time is invalid")
	}
	return policy, nil
}

// Update applies a partial settings change. A change to the backup time or the
// enabled flag re-arms the nightly schedule immediately.
func (s *SettingsService) Update(ctx context.Context, req dto.UpdateSettingsRequest) (*models.Settings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid settings payload")
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if req.BackupTime != nil {
		trimmed := strings.TrimSpace(*req.BackupTime)
		if _, _, err := models.ParseBackupTime(trimmed); err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, "backupTime must be HH:MM")
		}
		settings.BackupTime = trimmed
	}
	if req.BackupEnabled != nil {
		settings.BackupEnabled = *req.BackupEnabled
	}
	if req.MaxBackups != nil {
		if *req.MaxBackups < 1 {
			return nil, appErrors.Clone(appErrors.ErrValidation, "maxBackups must be at least 1")
		}
		settings.MaxBackups = *req.MaxBackups
	}
	if req.CompanyName != nil {
		settings.CompanyName = *req.CompanyName
	}
	if req.CompanyLogo != nil {
		settings.CompanyLogo = *req.CompanyLogo
	}
	if req.CompanyAddress != nil {
		settings.CompanyAddress = *req.CompanyAddress
	}
	if req.CompanyEmail != nil {
		settings.CompanyEmail = *req.CompanyEmail
	}
	if req.CompanyPhone != nil {
		settings.CompanyPhone = *req.CompanyPhone
	}

	if err := s.store.Update(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update settings")
	}

	if s.scheduler != nil {
		policy, err := settings.Policy()
		if err == nil {
			s.scheduler.Rearm(policy)
		}
	}
	return settings, nil
}
