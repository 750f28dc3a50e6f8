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

type proposalStore interface {
	List(ctx context.Context) ([]models.Proposal, error)
	GetByID(ctx context.Context, id string) (*models.Proposal, error)
	Create(ctx context.Context, p *models.Proposal) error
	Update(ctx context.Context, p *models.Proposal) error
	Delete(ctx context.Context, id string) error
}

// ProposalService manages client-facing proposal documents.
type ProposalService struct {
	store     proposalStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewProposalService constructs a ProposalService.
func NewProposalService(store proposalStore, validate *validator.Validate, logger *zap.Logger) *ProposalService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalService{store: store, validator: validate, logger: logger}
}

// List returns all proposals, most recent first.
func (s *ProposalService) List(ctx context.Context) ([]models.Proposal, error) {
	proposals, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list proposals")
	}
	return proposals, nil
}

// Get returns one proposal.
func (s *ProposalService) Get(ctx context.Context, id string) (*models.Proposal, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "proposal not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load proposal")
	}
	return p, nil
}

// Create stores a new proposal, defaulting status to draft.
func (s *ProposalService) Create(ctx context.Context, req dto.CreateProposalRequest) (*models.Proposal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid proposal payload")
	}
	status := models.ProposalStatusDraft
	if req.Status != "" {
		status = models.ProposalStatus(req.Status)
		if !models.ValidProposalStatus(status) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "status must be draft, sent, approved or rejected")
		}
	}

	p := &models.Proposal{
		Title:      req.Title,
		ClientName: req.ClientName,
		Status:     status,
		TemplateID: req.TemplateID,
		Content:    req.Content,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create proposal")
	}
	return p, nil
}

// Update applies a partial proposal change.
func (s *ProposalService) Update(ctx context.Context, id string, req dto.UpdateProposalRequest) (*models.Proposal, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		if *req.Title == "" {
			return nil, appErrors.Clone(appErrors.ErrValidation, "proposal title cannot be empty")
		}
		p.Title = *req.Title
	}
	if req.ClientName != nil {
		p.ClientName = *req.ClientName
	}
	if req.Status != nil {
		status := models.ProposalStatus(*req.Status)
		if !models.ValidProposalStatus(status) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "status must be draft, sent, approved or rejected")
		}
		p.Status = status
	}
	if req.TemplateID != nil {
		p.TemplateID = req.TemplateID
	}
	if len(req.Content) > 0 {
		p.Content = req.Content
	}

	if err := s.store.Update(ctx, p); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "proposal not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update proposal")
	}
	return p, nil
}

// Delete removes one proposal.
func (s *ProposalService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "proposal not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete proposal")
	}
	return nil
}
