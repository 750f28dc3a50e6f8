package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type gameSettingsStore interface {
	Get(ctx context.Context) (*models.GameSettings, error)
	Create(ctx context.Context, s *models.GameSettings) error
	Update(ctx context.Context, s *models.GameSettings) error
}

// GameSettingsService manages the single game tuning row.
type GameSettingsService struct {
	store     gameSettingsStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewGameSettingsService constructs a GameSettingsService.
func NewGameSettingsService(store gameSettingsStore, validate *validator.Validate, logger *zap.Logger) *GameSettingsService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GameSettingsService{store: store, validator: validate, logger: logger}
}

// Get returns game settings, creating the row with defaults on first access.
func (s *GameSettingsService) Get(ctx context.Context) (*models.GameSettings, error) {
	settings, err := s.store.Get(ctx)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load game settings")
	}

	settings = &models.GameSettings{
		ScenariosPerGame:      10,
		DifficultyProgression: true,
		LeaderboardSize:       10,
		TimeLimit:             30,
	}
	if err := s.store.Create(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to initialise game settings")
	}
	s.logger.Info("game settings initialised with defaults")
	return settings, nil
}

// Update applies a partial game settings change.
func (s *GameSettingsService) Update(ctx context.Context, req dto.UpdateGameSettingsRequest) (*models.GameSettings, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid game settings payload")
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	if req.ScenariosPerGame != nil {
		settings.ScenariosPerGame = *req.ScenariosPerGame
	}
	if req.DifficultyProgression != nil {
		settings.DifficultyProgression = *req.DifficultyProgression
	}
	if req.LeaderboardSize != nil {
		settings.LeaderboardSize = *req.LeaderboardSize
	}
	if req.TimeLimit != nil {
		settings.TimeLimit = *req.TimeLimit
	}

	if err := s.store.Update(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update game settings")
	}
	return settings, nil
}
