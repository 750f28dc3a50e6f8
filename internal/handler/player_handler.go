package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/response"
)

type playerService interface {
	Register(ctx context.Context, req dto.RegisterPlayerRequest) (*models.Player, error)
	Login(ctx context.Context, req dto.LoginRequest) (*models.Player, error)
	Get(ctx context.Context, id string) (*models.Player, error)
	List(ctx context.Context, level string) ([]models.Player, error)
	Update(ctx context.Context, id string, req dto.UpdatePlayerRequest) (*models.Player, error)
}

// PlayerHandler exposes player account endpoints.
type PlayerHandler struct {
	service playerService
}

// NewPlayerHandler builds a new handler.
func NewPlayerHandler(service playerService) *PlayerHandler {
	return &PlayerHandler{service: service}
}

// Register godoc
// @Summary Register a new player
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.RegisterPlayerRequest true "Registration payload"
// @Success 201 {object} response.Envelope
// @Router /game/players [post]
func (h *PlayerHandler) Register(c *gin.Context) {
	var req dto.RegisterPlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid registration payload"))
		return
	}
	player, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, player)
}

// Login godoc
// @Summary Verify player credentials
// @Tags Players
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Router /game/players/login [post]
func (h *PlayerHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	player, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, player, nil)
}

// List godoc
// @Summary List players
// @Tags Players
// @Produce json
// @Param techLevel query string false "Filter by tech level"
// @Success 200 {object} response.Envelope
// @Router /game/players [get]
func (h *PlayerHandler) List(c *gin.Context) {
	players, err := h.service.List(c.Request.Context(), c.Query("techLevel"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, players, nil)
}

// Get godoc
// @Summary Get a player
// @Tags Players
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} response.Envelope
// @Router /game/players/{id} [get]
func (h *PlayerHandler) Get(c *gin.Context) {
	player, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, player, nil)
}

// Update godoc
// @Summary Update a player profile
// @Tags Players
// @Accept json
// @Produce json
// @Param id path string true "Player ID"
// @Param payload body dto.UpdatePlayerRequest true "Profile payload"
// @Success 200 {object} response.Envelope
// @Router /game/players/{id} [put]
func (h *PlayerHandler) Update(c *gin.Context) {
	var req dto.UpdatePlayerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid profile payload"))
		return
	}
	player, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, player, nil)
}
