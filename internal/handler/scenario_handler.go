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

type scenarioService interface {
	List(ctx context.Context, level string) ([]models.Scenario, error)
	Get(ctx context.Context, id string) (*models.Scenario, error)
	Create(ctx context.Context, req dto.CreateScenarioRequest) (*models.Scenario, error)
	Update(ctx context.Context, id string, req dto.UpdateScenarioRequest) (*models.Scenario, error)
	Delete(ctx context.Context, id string) error
}

// ScenarioHandler exposes decision scenario endpoints.
type ScenarioHandler struct {
	service scenarioService
}

// NewScenarioHandler builds a new handler.
func NewScenarioHandler(service scenarioService) *ScenarioHandler {
	return &ScenarioHandler{service: service}
}

// List godoc
// @Summary List scenarios
// @Tags Scenarios
// @Produce json
// @Param techLevel query string false "Filter by tech level"
// @Success 200 {object} response.Envelope
// @Router /game/scenarios [get]
func (h *ScenarioHandler) List(c *gin.Context) {
	scenarios, err := h.service.List(c.Request.Context(), c.Query("techLevel"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scenarios, nil)
}

// Get godoc
// @Summary Get a scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 200 {object} response.Envelope
// @Router /game/scenarios/{id} [get]
func (h *ScenarioHandler) Get(c *gin.Context) {
	scenario, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scenario, nil)
}

// Create godoc
// @Summary Create a scenario
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param payload body dto.CreateScenarioRequest true "Scenario payload"
// @Success 201 {object} response.Envelope
// @Router /game/scenarios [post]
func (h *ScenarioHandler) Create(c *gin.Context) {
	var req dto.CreateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid scenario payload"))
		return
	}
	scenario, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, scenario)
}

// Update godoc
// @Summary Update a scenario
// @Tags Scenarios
// @Accept json
// @Produce json
// @Param id path string true "Scenario ID"
// @Param payload body dto.UpdateScenarioRequest true "Scenario payload"
// @Success 200 {object} response.Envelope
// @Router /game/scenarios/{id} [put]
func (h *ScenarioHandler) Update(c *gin.Context) {
	var req dto.UpdateScenarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid scenario payload"))
		return
	}
	scenario, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, scenario, nil)
}

// Delete godoc
// @Summary Delete a scenario
// @Tags Scenarios
// @Produce json
// @Param id path string true "Scenario ID"
// @Success 204
// @Router /game/scenarios/{id} [delete]
func (h *ScenarioHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
