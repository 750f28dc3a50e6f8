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

type sessionService interface {
	Create(ctx context.Context, req dto.CreateSessionRequest) (*models.GameSession, error)
	Get(ctx context.Context, id string) (*models.GameSession, error)
	ListByPlayer(ctx context.Context, playerID string) ([]models.GameSession, error)
	Complete(ctx context.Context, id string, req dto.CompleteSessionRequest) (*models.GameSession, error)
	RecordResponse(ctx context.Context, req dto.CreateResponseRequest) (*models.PlayerResponse, error)
	ListResponses(ctx context.Context, sessionID string) ([]models.PlayerResponse, error)
}

// SessionHandler exposes game session endpoints.
type SessionHandler struct {
	service sessionService
}

// NewSessionHandler builds a new handler.
func NewSessionHandler(service sessionService) *SessionHandler {
	return &SessionHandler{service: service}
}

// Create godoc
// @Summary Open a new game session
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body dto.CreateSessionRequest true "Session payload"
// @Success 201 {object} response.Envelope
// @Router /game/sessions [post]
func (h *SessionHandler) Create(c *gin.Context) {
	var req dto.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid session payload"))
		return
	}
	session, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, session)
}

// Get godoc
// @Summary Get a session
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /game/sessions/{id} [get]
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// ListByPlayer godoc
// @Summary List a player's sessions
// @Tags Sessions
// @Produce json
// @Param id path string true "Player ID"
// @Success 200 {object} response.Envelope
// @Router /game/players/{id}/sessions [get]
func (h *SessionHandler) ListByPlayer(c *gin.Context) {
	sessions, err := h.service.ListByPlayer(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, sessions, nil)
}

// Complete godoc
// @Summary Complete a session and credit its score
// @Tags Sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param payload body dto.CompleteSessionRequest true "Completion payload"
// @Success 200 {object} response.Envelope
// @Router /game/sessions/{id}/complete [post]
func (h *SessionHandler) Complete(c *gin.Context) {
	var req dto.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid completion payload"))
		return
	}
	session, err := h.service.Complete(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, session, nil)
}

// RecordResponse godoc
// @Summary Record a scenario answer
// @Tags Sessions
// @Accept json
// @Produce json
// @Param payload body dto.CreateResponseRequest true "Response payload"
// @Success 201 {object} response.Envelope
// @Router /game/responses [post]
func (h *SessionHandler) RecordResponse(c *gin.Context) {
	var req dto.CreateResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid response payload"))
		return
	}
	resp, err := h.service.RecordResponse(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, resp)
}

// ListResponses godoc
// @Summary List a session's answers
// @Tags Sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} response.Envelope
// @Router /game/sessions/{id}/responses [get]
func (h *SessionHandler) ListResponses(c *gin.Context) {
	responses, err := h.service.ListResponses(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, responses, nil)
}
