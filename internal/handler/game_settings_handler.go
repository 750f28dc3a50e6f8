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

type gameSettingsService interface {
	Get(ctx context.Context) (*models.GameSettings, error)
	Update(ctx context.Context, req dto.UpdateGameSettingsRequest) (*models.GameSettings, error)
}

// GameSettingsHandler exposes game tuning endpoints.
type GameSettingsHandler struct {
	service gameSettingsService
}

// NewGameSettingsHandler builds a new handler.
func NewGameSettingsHandler(service gameSettingsService) *GameSettingsHandler {
	return &GameSettingsHandler{service: service}
}

// Get godoc
// @Summary Get game settings
// @Tags GameSettings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /game/settings [get]
func (h *GameSettingsHandler) Get(c *gin.Context) {
	settings, err := h.service.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}

// Update godoc
// @Summary Update game settings
// @Tags GameSettings
// @Accept json
// @Produce json
// @Param payload body dto.UpdateGameSettingsRequest true "Game settings payload"
// @Success 200 {object} response.Envelope
// @Router /game/settings [put]
func (h *GameSettingsHandler) Update(c *gin.Context) {
	var req dto.UpdateGameSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid game settings payload"))
		return
	}
	settings, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}
