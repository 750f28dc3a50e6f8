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

type scenarioStore interface {
	List(ctx context.Context) ([]models.Scenario, error)
	ListByTechLevel(ctx context.Context, level models.TechLevel) ([]models.Scenario, error)
	GetByID(ctx context.Context, id string) (*models.Scenario, error)
	Create(ctx context.Context, s *models.Scenario) error
	Update(ctx context.Context, s *models.Scenario) error
	Delete(ctx context.Context, id string) error
}

// ScenarioService manages decision scenarios.
type ScenarioService struct {
	store     scenarioStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewScenarioService constructs a ScenarioService.
func NewScenarioService(store scenarioStore, validate *validator.Validate, logger *zap.Logger) *ScenarioService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScenarioService{store: store, validator: validate, logger: logger}
}

// List returns scenarios, optionally filtered by tech level.
func (s *ScenarioService) List(ctx context.Context, level string) ([]models.Scenario, error) {
	if level != "" {
		lvl := models.TechLevel(level)
		if !models.ValidTechLevel(lvl) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "techLevel must be beginner, intermediate or advanced")
		}
		scenarios, err := s.store.ListByTechLevel(ctx, lvl)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list scenarios")
		}
		return scenarios, nil
	}
	scenarios, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list scenarios")
	}
	return scenarios, nil
}

// Get returns one scenario.
func (s *ScenarioService) Get(ctx context.Context, id string) (*models.Scenario, error) {
	scenario, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load scenario")
	}
	return scenario, nil
}

// Create stores a new scenario.
func (s *ScenarioService) Create(ctx context.Context, req dto.CreateScenarioRequest) (*models.Scenario, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid scenario payload")
	}
	level := models.TechLevel(req.TechLevel)
	if !models.ValidTechLevel(level) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "techLevel must be beginner, intermediate or advanced")
	}

	scenario := &models.Scenario{
		Question:    req.Question,
		Options:     req.Options,
		Scores:      req.Scores,
		TechLevel:   level,
		Category:    req.Category,
		Explanation: req.Explanation,
	}
	if err := s.store.Create(ctx, scenario); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create scenario")
	}
	return scenario, nil
}

// Update applies a partial scenario change.
func (s *ScenarioService) Update(ctx context.Context, id string, req dto.UpdateScenarioRequest) (*models.Scenario, error) {
	scenario, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Question != nil {
		scenario.Question = *req.Question
	}
	if len(req.Options) > 0 {
		scenario.Options = req.Options
	}
	if len(req.Scores) > 0 {
		scenario.Scores = req.Scores
	}
	if req.TechLevel != nil {
		level := models.TechLevel(*req.TechLevel)
		if !models.ValidTechLevel(level) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "techLevel must be beginner, intermediate or advanced")
		}
		scenario.TechLevel = level
	}
	if req.Category != nil {
		scenario.Category = *req.Category
	}
	if req.Explanation != nil {
		scenario.Explanation = *req.Explanation
	}

	if err := s.store.Update(ctx, scenario); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update scenario")
	}
	return scenario, nil
}

// Delete removes one scenario.
func (s *ScenarioService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "scenario not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete scenario")
	}
	return nil
}
