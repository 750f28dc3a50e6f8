package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type sessionStoreStub struct {
	sessions map[string]*models.GameSession
	nextID   int
}

func newSessionStoreStub() *sessionStoreStub {
	return &sessionStoreStub{sessions: map[string]*models.GameSession{}}
}

func (s *sessionStoreStub) Create(ctx context.Context, session *models.GameSession) error {
	s.nextID++
	if session.ID == "" {
		session.ID = "sess-1"
	}
	if session.StartTime.IsZero() {
		session.StartTime = time.Now()
	}
	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

func (s *sessionStoreStub) GetByID(ctx context.Context, id string) (*models.GameSession, error) {
	if session, ok := s.sessions[id]; ok {
		copied := *session
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *sessionStoreStub) ListByPlayer(ctx context.Context, playerID string) ([]models.GameSession, error) {
	var out []models.GameSession
	for _, session := range s.sessions {
		if session.PlayerID == playerID {
			out = append(out, *session)
		}
	}
	return out, nil
}

func (s *sessionStoreStub) MarkCompleted(ctx context.Context, id string, totalScore int, endTime time.Time) error {
	session, ok := s.sessions[id]
	if !ok || session.IsCompleted {
		return sql.ErrNoRows
	}
	session.IsCompleted = true
	session.TotalScore = totalScore
	session.EndTime = &endTime
	return nil
}

type playerPointsStub struct {
	players map[string]*models.Player
	credits []int
}

func (s *playerPointsStub) GetByID(ctx context.Context, id string) (*models.Player, error) {
	if player, ok := s.players[id]; ok {
		copied := *player
		return &copied, nil
	}
	return nil, sql.ErrNoRows
}

func (s *playerPointsStub) AddPoints(ctx context.Context, id string, delta int) error {
	player, ok := s.players[id]
	if !ok {
		return sql.ErrNoRows
	}
	player.TotalPoints += delta
	s.credits = append(s.credits, delta)
	return nil
}

type responseStoreStub struct {
	responses []models.PlayerResponse
}

func (s *responseStoreStub) Create(ctx context.Context, resp *models.PlayerResponse) error {
	if resp.ID == "" {
		resp.ID = "resp-1"
	}
	s.responses = append(s.responses, *resp)
	return nil
}

func (s *responseStoreStub) ListBySession(ctx context.Context, sessionID string) ([]models.PlayerResponse, error) {
	var out []models.PlayerResponse
	for _, resp := range s.responses {
		if resp.SessionID == sessionID {
			out = append(out, resp)
		}
	}
	return out, nil
}

type rankerSpy struct {
	players []*models.Player
	err     error
}

func (r *rankerSpy) UpsertAndRerank(ctx context.Context, player *models.Player) error {
	if r.err != nil {
		return r.err
	}
	r.players = append(r.players, player)
	return nil
}

func newSessionServiceForTest(sessions *sessionStoreStub, players *playerPointsStub, ranker *rankerSpy) *SessionService {
	return NewSessionService(sessions, players, &responseStoreStub{}, ranker, validator.New(), nil)
}

func TestSessionServiceCompleteCreditsAndReranks(t *testing.T) {
	sessions := newSessionStoreStub()
	sessions.sessions["sess-1"] = &models.GameSession{ID: "sess-1", PlayerID: "p-1", TechLevel: models.TechLevelBeginner}
	players := &playerPointsStub{players: map[string]*models.Player{
		"p-1": {ID: "p-1", Username: "ada", TotalPoints: 100},
	}}
	ranker := &rankerSpy{}
	svc := newSessionServiceForTest(sessions, players, ranker)

	score := 250
	session, err := svc.Complete(context.Background(), "sess-1", dto.CompleteSessionRequest{TotalScore: &score})
	require.NoError(t, err)
	assert.True(t, session.IsCompleted)
	assert.Equal(t, 250, session.TotalScore)
	assert.NotNil(t, session.EndTime)

	assert.Equal(t, []int{250}, players.credits)
	assert.Equal(t, 350, players.players["p-1"].TotalPoints)

	require.Len(t, ranker.players, 1)
	assert.Equal(t, 350, ranker.players[0].TotalPoints)
}

func TestSessionServiceTwoCompletionsAccumulate(t *testing.T) {
	sessions := newSessionStoreStub()
	sessions.sessions["sess-1"] = &models.GameSession{ID: "sess-1", PlayerID: "p-1"}
	sessions.sessions["sess-2"] = &models.GameSession{ID: "sess-2", PlayerID: "p-1"}
	players := &playerPointsStub{players: map[string]*models.Player{
		"p-1": {ID: "p-1", Username: "ada"},
	}}
	board := newLeaderboardStoreStub()
	board.entries["rival"] = &models.LeaderboardEntry{PlayerID: "rival", TotalPoints: 12, Rank: 1}
	ranker := NewLeaderboardService(board, playerReaderStub{}, sessionCounterStub{}, nil, nil, 100)
	svc := NewSessionService(sessions, players, &responseStoreStub{}, ranker, validator.New(), nil)

	first, second := 10, 15
	_, err := svc.Complete(context.Background(), "sess-1", dto.CompleteSessionRequest{TotalScore: &first})
	require.NoError(t, err)
	_, err = svc.Complete(context.Background(), "sess-2", dto.CompleteSessionRequest{TotalScore: &second})
	require.NoError(t, err)

	assert.Equal(t, 25, players.players["p-1"].TotalPoints)

	entry := board.entries["p-1"]
	require.NotNil(t, entry)
	assert.Equal(t, 25, entry.TotalPoints)
	assert.Equal(t, 2, entry.GamesPlayed)

	// Ranks were recomputed against the rest of the board.
	assert.Equal(t, 1, entry.Rank)
	assert.Equal(t, 2, board.entries["rival"].Rank)
}

func TestSessionServiceCompleteTwiceRejected(t *testing.T) {
	sessions := newSessionStoreStub()
	sessions.sessions["sess-1"] = &models.GameSession{ID: "sess-1", PlayerID: "p-1"}
	players := &playerPointsStub{players: map[string]*models.Player{"p-1": {ID: "p-1"}}}
	ranker := &rankerSpy{}
	svc := newSessionServiceForTest(sessions, players, ranker)

	score := 100
	_, err := svc.Complete(context.Background(), "sess-1", dto.CompleteSessionRequest{TotalScore: &score})
	require.NoError(t, err)

	_, err = svc.Complete(context.Background(), "sess-1", dto.CompleteSessionRequest{TotalScore: &score})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErrors.FromError(err).Code)

	// Only the first completion credited points.
	assert.Equal(t, []int{100}, players.credits)
}

func TestSessionServiceCompleteMissingSession(t *testing.T) {
	svc := newSessionServiceForTest(newSessionStoreStub(), &playerPointsStub{players: map[string]*models.Player{}}, &rankerSpy{})
	score := 10
	_, err := svc.Complete(context.Background(), "ghost", dto.CompleteSessionRequest{TotalScore: &score})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSessionServiceCompleteRejectsNegativeScore(t *testing.T) {
	sessions := newSessionStoreStub()
	sessions.sessions["sess-1"] = &models.GameSession{ID: "sess-1", PlayerID: "p-1"}
	svc := newSessionServiceForTest(sessions, &playerPointsStub{players: map[string]*models.Player{}}, &rankerSpy{})

	negative := -5
	_, err := svc.Complete(context.Background(), "sess-1", dto.CompleteSessionRequest{TotalScore: &negative})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSessionServiceCreateValidatesPlayer(t *testing.T) {
	svc := newSessionServiceForTest(newSessionStoreStub(), &playerPointsStub{players: map[string]*models.Player{}}, &rankerSpy{})
	_, err := svc.Create(context.Background(), dto.CreateSessionRequest{
		PlayerID:        "ghost",
		TechLevel:       "beginner",
		ScenariosPlayed: json.RawMessage(`[]`),
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSessionServiceRecordResponseOnCompletedSession(t *testing.T) {
	sessions := newSessionStoreStub()
	sessions.sessions["sess-1"] = &models.GameSession{ID: "sess-1", PlayerID: "p-1", IsCompleted: true}
	svc := newSessionServiceForTest(sessions, &playerPointsStub{players: map[string]*models.Player{}}, &rankerSpy{})

	option, points := 1, 20
	_, err := svc.RecordResponse(context.Background(), dto.CreateResponseRequest{
		SessionID:      "sess-1",
		ScenarioID:     "scn-1",
		PlayerID:       "p-1",
		SelectedOption: &option,
		PointsEarned:   &points,
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidState.Code, appErrors.FromError(err).Code)
}
