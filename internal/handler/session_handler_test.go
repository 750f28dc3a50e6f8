package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type sessionServiceMock struct {
	completeErr error
}

func (m *sessionServiceMock) Create(ctx context.Context, req dto.CreateSessionRequest) (*models.GameSession, error) {
	return &models.GameSession{ID: "sess-1", PlayerID: req.PlayerID}, nil
}

func (m *sessionServiceMock) Get(ctx context.Context, id string) (*models.GameSession, error) {
	return &models.GameSession{ID: id}, nil
}

func (m *sessionServiceMock) ListByPlayer(ctx context.Context, playerID string) ([]models.GameSession, error) {
	return nil, nil
}

func (m *sessionServiceMock) Complete(ctx context.Context, id string, req dto.CompleteSessionRequest) (*models.GameSession, error) {
	if m.completeErr != nil {
		return nil, m.completeErr
	}
	return &models.GameSession{ID: id, IsCompleted: true, TotalScore: *req.TotalScore}, nil
}

func (m *sessionServiceMock) RecordResponse(ctx context.Context, req dto.CreateResponseRequest) (*models.PlayerResponse, error) {
	return &models.PlayerResponse{ID: "resp-1"}, nil
}

func (m *sessionServiceMock) ListResponses(ctx context.Context, sessionID string) ([]models.PlayerResponse, error) {
	return nil, nil
}

func TestSessionHandlerCompleteAlreadyCompleted(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler(&sessionServiceMock{
		completeErr: appErrors.Clone(appErrors.ErrInvalidState, "session already completed"),
	})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]int{"totalScore": 100})
	req, _ := http.NewRequest(http.MethodPost, "/game/sessions/sess-1/complete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

	handler.Complete(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_STATE")
}

func TestSessionHandlerCompleteInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler(&sessionServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/game/sessions/sess-1/complete", bytes.NewReader([]byte(`not json`)))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

	handler.Complete(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionHandlerComplete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewSessionHandler(&sessionServiceMock{})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	body, _ := json.Marshal(map[string]int{"totalScore": 250})
	req, _ := http.NewRequest(http.MethodPost, "/game/sessions/sess-1/complete", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "sess-1"}}

	handler.Complete(c)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"totalScore":250`)
}
