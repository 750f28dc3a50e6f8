package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
)

func newSessionRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSessionRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO game_sessions")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	session := &models.GameSession{
		PlayerID:  "player-1",
		TechLevel: models.TechLevelIntermediate,
	}
	require.NoError(t, repo.Create(context.Background(), session))
	require.NotEmpty(t, session.ID)
	require.False(t, session.StartTime.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryListByPlayerOrdersNewestFirst(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	now := time.Now().UTC()
	rows := sqlmock.NewRows([]string{"id", "player_id", "tech_level", "scenarios_played", "total_score", "start_time", "end_time", "is_completed"}).
		AddRow("sess-2", "player-1", "beginner", []byte(`[]`), 15, now, nil, true).
		AddRow("sess-1", "player-1", "beginner", []byte(`[]`), 10, now.Add(-time.Hour), nil, true)

	// Ties on start_time break by id descending, matching the other listings.
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY start_time DESC, id DESC")).
		WithArgs("player-1").
		WillReturnRows(rows)

	sessions, err := repo.ListByPlayer(context.Background(), "player-1")
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	require.Equal(t, "sess-2", sessions[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryMarkCompleted(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	now := time.Now().UTC()

	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND is_completed = FALSE")).
		WithArgs("sess-1", now, 450).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.MarkCompleted(context.Background(), "sess-1", 450, now))

	// Second completion hits the guard and affects zero rows.
	mock.ExpectExec(regexp.QuoteMeta("WHERE id = $1 AND is_completed = FALSE")).
		WithArgs("sess-1", now, 450).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.MarkCompleted(context.Background(), "sess-1", 450, now)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionRepositoryCountCompleted(t *testing.T) {
	db, mock, cleanup := newSessionRepoMock(t)
	defer cleanup()

	repo := NewSessionRepository(db)
	rows := sqlmock.NewRows([]string{"count"}).AddRow(7)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM game_sessions")).
		WithArgs("player-1").
		WillReturnRows(rows)

	count, err := repo.CountCompletedByPlayer(context.Background(), "player-1")
	require.NoError(t, err)
	require.Equal(t, 7, count)
	require.NoError(t, mock.ExpectationsWereMet())
}
