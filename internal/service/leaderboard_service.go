package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type leaderboardStore interface {
	GetByPlayer(ctx context.Context, playerID string) (*models.LeaderboardEntry, error)
	Insert(ctx context.Context, entry *models.LeaderboardEntry) error
	UpdateStats(ctx context.Context, entry *models.LeaderboardEntry) error
	ListByRank(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	DeleteAll(ctx context.Context) error
	RecalculateRanks(ctx context.Context) error
}

type leaderboardPlayerReader interface {
	GetByID(ctx context.Context, id string) (*models.Player, error)
	List(ctx context.Context) ([]models.Player, error)
}

type leaderboardSessionCounter interface {
	CountCompletedByPlayer(ctx context.Context, playerID string) (int, error)
}

const leaderboardCachePattern = "leaderboard:*"

// LeaderboardService maintains the derived ranking rows. Every write path
// ends with a full rank recomputation, so provisional ranks never reach a
// reader.
type LeaderboardService struct {
	store    leaderboardStore
	players  leaderboardPlayerReader
	sessions leaderboardSessionCounter
	cache    *CacheService
	logger   *zap.Logger
	limit    int
}

// NewLeaderboardService constructs a LeaderboardService. limit caps the
// number of entries returned by Get.
func NewLeaderboardService(store leaderboardStore, players leaderboardPlayerReader, sessions leaderboardSessionCounter, cache *CacheService, logger *zap.Logger, limit int) *LeaderboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if limit < 1 {
		limit = 100
	}
	return &LeaderboardService{
		store:    store,
		players:  players,
		sessions: sessions,
		cache:    cache,
		logger:   logger,
		limit:    limit,
	}
}

// Get returns the top entries in rank order, serving from cache when fresh.
func (s *LeaderboardService) Get(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit < 1 || limit > s.limit {
		limit = s.limit
	}
	key := fmt.Sprintf("leaderboard:top:%d", limit)

	var cached []models.LeaderboardEntry
	if s.cache != nil {
		if hit, _ := s.cache.Get(ctx, key, &cached); hit {
			return cached, nil
		}
	}

	entries, err := s.store.ListByRank(ctx, limit)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read leaderboard")
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}

	if s.cache != nil {
		_ = s.cache.Set(ctx, key, entries, 0)
	}
	return entries, nil
}

// GetPlayerEntry returns one player's current standing.
func (s *LeaderboardService) GetPlayerEntry(ctx context.Context, playerID string) (*models.LeaderboardEntry, error) {
	entry, err := s.store.GetByPlayer(ctx, playerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "player has no leaderboard entry")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read leaderboard entry")
	}
	return entry, nil
}

// UpsertAndRerank folds a player's new point total into the board and
// recomputes every rank. A brand-new entry carries a provisional rank only
// until the recomputation a few statements later, inside this same call.
func (s *LeaderboardService) UpsertAndRerank(ctx context.Context, player *models.Player) error {
	entry, err := s.store.GetByPlayer(ctx, player.ID)
	switch {
	case err == nil:
		entry.Username = player.Username
		entry.Avatar = player.Avatar
		entry.TechLevel = player.TechLevel
		entry.TotalPoints = player.TotalPoints
		entry.GamesPlayed++
		if err := s.store.UpdateStats(ctx, entry); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update leaderboard entry")
		}
	case errors.Is(err, sql.ErrNoRows):
		fresh := &models.LeaderboardEntry{
			PlayerID:    player.ID,
			Username:    player.Username,
			Avatar:      player.Avatar,
			TotalPoints: player.TotalPoints,
			TechLevel:   player.TechLevel,
			Rank:        models.ProvisionalRank,
			GamesPlayed: 1,
		}
		if err := s.store.Insert(ctx, fresh); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert leaderboard entry")
		}
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read leaderboard entry")
	}

	if err := s.RecalculateRanks(ctx); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// SyncPlayer refreshes one entry from the player's account record without
// crediting a game: the games-played figure is recomputed from completed
// sessions, not incremented. Used on registration and profile updates.
func (s *LeaderboardService) SyncPlayer(ctx context.Context, playerID string) error {
	player, err := s.players.GetByID(ctx, playerID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load player")
	}

	games := 0
	if s.sessions != nil {
		games, err = s.sessions.CountCompletedByPlayer(ctx, playerID)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sessions")
		}
	}

	entry, err := s.store.GetByPlayer(ctx, playerID)
	switch {
	case err == nil:
		entry.Username = player.Username
		entry.Avatar = player.Avatar
		entry.TechLevel = player.TechLevel
		entry.TotalPoints = player.TotalPoints
		entry.GamesPlayed = games
		if err := s.store.UpdateStats(ctx, entry); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update leaderboard entry")
		}
	case errors.Is(err, sql.ErrNoRows):
		fresh := &models.LeaderboardEntry{
			PlayerID:    player.ID,
			Username:    player.Username,
			Avatar:      player.Avatar,
			TotalPoints: player.TotalPoints,
			TechLevel:   player.TechLevel,
			Rank:        models.ProvisionalRank,
			GamesPlayed: games,
		}
		if err := s.store.Insert(ctx, fresh); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to insert leaderboard entry")
		}
	default:
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read leaderboard entry")
	}

	if err := s.RecalculateRanks(ctx); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

// RecalculateRanks rewrites every rank from current point totals.
func (s *LeaderboardService) RecalculateRanks(ctx context.Context) error {
	if err := s.store.RecalculateRanks(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrTransaction.Code, appErrors.ErrTransaction.Status, "rank recomputation aborted")
	}
	return nil
}

// Rebuild reconstructs the whole board from the players table. Used when the
// derived rows have drifted or after a restore.
func (s *LeaderboardService) Rebuild(ctx context.Context) error {
	if err := s.store.DeleteAll(ctx); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to clear leaderboard")
	}

	players, err := s.players.List(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list players")
	}
	for i := range players {
		games := 0
		if s.sessions != nil {
			games, err = s.sessions.CountCompletedByPlayer(ctx, players[i].ID)
			if err != nil {
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count sessions")
			}
		}
		entry := &models.LeaderboardEntry{
			PlayerID:    players[i].ID,
			Username:    players[i].Username,
			Avatar:      players[i].Avatar,
			TotalPoints: players[i].TotalPoints,
			TechLevel:   players[i].TechLevel,
			Rank:        models.ProvisionalRank,
			GamesPlayed: games,
		}
		if err := s.store.Insert(ctx, entry); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to rebuild leaderboard entry")
		}
	}

	if err := s.RecalculateRanks(ctx); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	s.logger.Info("leaderboard rebuilt", zap.Int("players", len(players)))
	return nil
}

func (s *LeaderboardService) invalidateCache(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, leaderboardCachePattern); err != nil {
		s.logger.Warn("leaderboard cache invalidation failed", zap.Error(err))
	}
}
