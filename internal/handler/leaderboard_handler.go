package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/response"
)

type leaderboardService interface {
	Get(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
	GetPlayerEntry(ctx context.Context, playerID string) (*models.LeaderboardEntry, error)
	Rebuild(ctx context.Context) error
}

// LeaderboardHandler exposes ranking endpoints.
type LeaderboardHandler struct {
	service leaderboardService
}

// NewLeaderboardHandler builds a new handler.
func NewLeaderboardHandler(service leaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{service: service}
}

// Get godoc
// @Summary Get the leaderboard in rank order
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {object} response.Envelope
// @Router /game/leaderboard [get]
func (h *LeaderboardHandler) Get(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	entries, err := h.service.Get(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// GetPlayer godoc
// @Summary Get one player's standing
// @Tags Leaderboard
// @Produce json
// @Param playerId path string true "Player ID"
// @Success 200 {object} response.Envelope
// @Router /game/leaderboard/{playerId} [get]
func (h *LeaderboardHandler) GetPlayer(c *gin.Context) {
	entry, err := h.service.GetPlayerEntry(c.Request.Context(), c.Param("playerId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entry, nil)
}

// TopPlayers godoc
// @Summary Get the top players
// @Tags Leaderboard
// @Produce json
// @Param limit query int false "Maximum entries"
// @Success 200 {object} response.Envelope
// @Router /game/players/top [get]
func (h *LeaderboardHandler) TopPlayers(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	entries, err := h.service.Get(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}

// Refresh godoc
// @Summary Rebuild the leaderboard from player records
// @Tags Leaderboard
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /game/leaderboard/refresh [post]
func (h *LeaderboardHandler) Refresh(c *gin.Context) {
	if err := h.service.Rebuild(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	entries, err := h.service.Get(c.Request.Context(), 0)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, entries, nil)
}
