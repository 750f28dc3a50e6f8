package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type sessionStore interface {
	Create(ctx context.Context, s *models.GameSession) error
	GetByID(ctx context.Context, id string) (*models.GameSession, error)
	ListByPlayer(ctx context.Context, playerID string) ([]models.GameSession, error)
	MarkCompleted(ctx context.Context, id string, totalScore int, endTime time.Time) error
}

type sessionPlayerStore interface {
	GetByID(ctx context.Context, id string) (*models.Player, error)
	AddPoints(ctx context.Context, id string, delta int) error
}

type sessionResponseStore interface {
	Create(ctx context.Context, resp *models.PlayerResponse) error
	ListBySession(ctx context.Context, sessionID string) ([]models.PlayerResponse, error)
}

type sessionRanker interface {
	UpsertAndRerank(ctx context.Context, player *models.Player) error
}

// SessionService runs the play-session lifecycle. Completing a session is the
// single write path that changes scores anywhere in the system.
type SessionService struct {
	sessions  sessionStore
	players   sessionPlayerStore
	responses sessionResponseStore
	ranker    sessionRanker
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSessionService constructs a SessionService.
func NewSessionService(sessions sessionStore, players sessionPlayerStore, responses sessionResponseStore, ranker sessionRanker, validate *validator.Validate, logger *zap.Logger) *SessionService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionService{
		sessions:  sessions,
		players:   players,
		responses: responses,
		ranker:    ranker,
		validator: validate,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create opens a new session for a player.
func (s *SessionService) Create(ctx context.Context, req dto.CreateSessionRequest) (*models.GameSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid session payload")
	}
	level := models.TechLevel(req.TechLevel)
	if !models.ValidTechLevel(level) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "techLevel must be beginner, intermediate or advanced")
	}
	if _, err := s.players.GetByID(ctx, req.PlayerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load player")
	}

	session := &models.GameSession{
		PlayerID:        req.PlayerID,
		TechLevel:       level,
		ScenariosPlayed: req.ScenariosPlayed,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session")
	}
	return session, nil
}

// Get returns one session.
func (s *SessionService) Get(ctx context.Context, id string) (*models.GameSession, error) {
	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	return session, nil
}

// ListByPlayer returns a player's sessions, most recent first.
func (s *SessionService) ListByPlayer(ctx context.Context, playerID string) ([]models.GameSession, error) {
	sessions, err := s.sessions.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list sessions")
	}
	return sessions, nil
}

// Complete finishes a session exactly once: it credits the score to the
// player's running total and folds the new total into the leaderboard. A
// second completion of the same session is rejected, never double-credited.
func (s *SessionService) Complete(ctx context.Context, id string, req dto.CompleteSessionRequest) (*models.GameSession, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid completion payload")
	}
	score := *req.TotalScore

	endTime := s.now()
	if err := s.sessions.MarkCompleted(ctx, id, score, endTime); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish a missing session from one already completed.
			existing, getErr := s.sessions.GetByID(ctx, id)
			if getErr != nil {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
			}
			if existing.IsCompleted {
				return nil, appErrors.Clone(appErrors.ErrInvalidState, "session already completed")
			}
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to complete session")
	}

	session, err := s.sessions.GetByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload session")
	}

	if err := s.players.AddPoints(ctx, session.PlayerID, score); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to credit player points")
	}
	player, err := s.players.GetByID(ctx, session.PlayerID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load player")
	}

	if err := s.ranker.UpsertAndRerank(ctx, player); err != nil {
		return nil, err
	}
	s.logger.Info("session completed",
		zap.String("session", id),
		zap.String("player", player.ID),
		zap.Int("score", score))
	return session, nil
}

// RecordResponse stores one answered scenario within a session.
func (s *SessionService) RecordResponse(ctx context.Context, req dto.CreateResponseRequest) (*models.PlayerResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid response payload")
	}

	session, err := s.sessions.GetByID(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "session not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load session")
	}
	if session.IsCompleted {
		return nil, appErrors.Clone(appErrors.ErrInvalidState, "session already completed")
	}

	resp := &models.PlayerResponse{
		SessionID:      req.SessionID,
		ScenarioID:     req.ScenarioID,
		PlayerID:       req.PlayerID,
		SelectedOption: *req.SelectedOption,
		PointsEarned:   *req.PointsEarned,
		ResponseTime:   req.ResponseTime,
	}
	if err := s.responses.Create(ctx, resp); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to record response")
	}
	return resp, nil
}

// ListResponses returns a session's responses in answer order.
func (s *SessionService) ListResponses(ctx context.Context, sessionID string) ([]models.PlayerResponse, error) {
	responses, err := s.responses.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list responses")
	}
	return responses, nil
}
