package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type playerStore interface {
	Create(ctx context.Context, p *models.Player) error
	GetByID(ctx context.Context, id string) (*models.Player, error)
	GetByUsername(ctx context.Context, username string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
	ListByTechLevel(ctx context.Context, level models.TechLevel) ([]models.Player, error)
	UpdateProfile(ctx context.Context, id, avatar string, level models.TechLevel) error
	TouchLastLogin(ctx context.Context, id string, at time.Time) error
}

type playerRanker interface {
	SyncPlayer(ctx context.Context, playerID string) error
}

// PlayerService manages game accounts and credential checks.
type PlayerService struct {
	store     playerStore
	ranker    playerRanker
	validator *validator.Validate
	logger    *zap.Logger
}

// NewPlayerService constructs a PlayerService. ranker may be nil, in which
// case leaderboard rows are only created on session completion.
func NewPlayerService(store playerStore, ranker playerRanker, validate *validator.Validate, logger *zap.Logger) *PlayerService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlayerService{store: store, ranker: ranker, validator: validate, logger: logger}
}

// Register creates a new player account with a hashed password. Usernames
// are unique; a taken name is reported as a conflict, not an internal error.
func (s *PlayerService) Register(ctx context.Context, req dto.RegisterPlayerRequest) (*models.Player, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid registration payload")
	}
	level := models.TechLevelBeginner
	if req.TechLevel != "" {
		level = models.TechLevel(req.TechLevel)
		if !models.ValidTechLevel(level) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "techLevel must be beginner, intermediate or advanced")
		}
	}

	username := strings.TrimSpace(req.Username)
	if _, err := s.store.GetByUsername(ctx, username); err == nil {
		return nil, appErrors.Clone(appErrors.ErrConflict, "username already taken")
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash password")
	}

	player := &models.Player{
		Username:     username,
		PasswordHash: string(hash),
		Avatar:       req.Avatar,
		TechLevel:    level,
	}
	if err := s.store.Create(ctx, player); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create player")
	}
	s.syncLeaderboard(ctx, player.ID)
	s.logger.Info("player registered", zap.String("id", player.ID), zap.String("username", player.Username))
	return player, nil
}

// syncLeaderboard keeps the derived board row in step with the account. The
// account write has already committed, so a sync failure is logged rather
// than surfaced; the row catches up on the next ranking mutation.
func (s *PlayerService) syncLeaderboard(ctx context.Context, playerID string) {
	if s.ranker == nil {
		return
	}
	if err := s.ranker.SyncPlayer(ctx, playerID); err != nil {
		s.logger.Warn("leaderboard sync failed", zap.String("playerId", playerID), zap.Error(err))
	}
}

// Login verifies credentials and records the login time. Unknown usernames
// and wrong passwords produce the same error.
func (s *PlayerService) Login(ctx context.Context, req dto.LoginRequest) (*models.Player, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	player, err := s.store.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrInvalidCredentials
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load player")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(player.PasswordHash), []byte(req.Password)); err != nil {
		return nil, appErrors.ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.store.TouchLastLogin(ctx, player.ID, now); err != nil {
		s.logger.Warn("failed to record login time", zap.String("id", player.ID), zap.Error(err))
	} else {
		player.LastLogin = &now
	}
	return player, nil
}

// Get returns one player.
func (s *PlayerService) Get(ctx context.Context, id string) (*models.Player, error) {
	player, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load player")
	}
	return player, nil
}

// List returns all players, optionally filtered by tech level.
func (s *PlayerService) List(ctx context.Context, level string) ([]models.Player, error) {
	if level != "" {
		lvl := models.TechLevel(level)
		if !models.ValidTechLevel(lvl) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "techLevel must be beginner, intermediate or advanced")
		}
		players, err := s.store.ListByTechLevel(ctx, lvl)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list players")
		}
		return players, nil
	}
	players, err := s.store.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list players")
	}
	return players, nil
}

// Update changes cosmetic profile fields.
func (s *PlayerService) Update(ctx context.Context, id string, req dto.UpdatePlayerRequest) (*models.Player, error) {
	player, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Avatar != nil {
		player.Avatar = *req.Avatar
	}
	if req.TechLevel != nil {
		level := models.TechLevel(*req.TechLevel)
		if !models.ValidTechLevel(level) {
			return nil, appErrors.Clone(appErrors.ErrValidation, "techLevel must be beginner, intermediate or advanced")
		}
		player.TechLevel = level
	}

	if err := s.store.UpdateProfile(ctx, id, player.Avatar, player.TechLevel); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update player")
	}
	s.syncLeaderboard(ctx, id)
	return player, nil
}
