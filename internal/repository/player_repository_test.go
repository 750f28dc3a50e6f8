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

func newPlayerRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestPlayerRepositoryCreateAndGetByUsername(t *testing.T) {
	db, mock, cleanup := newPlayerRepoMock(t)
	defer cleanup()

	repo := NewPlayerRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO players")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	player := &models.Player{
		Username:     "ada",
		PasswordHash: "$2a$10$hash",
		TechLevel:    models.TechLevelBeginner,
	}
	require.NoError(t, repo.Create(context.Background(), player))
	require.NotEmpty(t, player.ID)

	rows := sqlmock.NewRows([]string{"id", "username", "password_hash", "avatar", "tech_level", "total_points", "created_at", "last_login"}).
		AddRow(player.ID, "ada", "$2a$10$hash", "", "beginner", 0, time.Now(), nil)
	mock.ExpectQuery(regexp.QuoteMeta("FROM players WHERE username = $1")).
		WithArgs("ada").
		WillReturnRows(rows)

	found, err := repo.GetByUsername(context.Background(), "ada")
	require.NoError(t, err)
	require.Equal(t, player.ID, found.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPlayerRepositoryAddPoints(t *testing.T) {
	db, mock, cleanup := newPlayerRepoMock(t)
	defer cleanup()

	repo := NewPlayerRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("SET total_points = total_points + $2")).
		WithArgs("player-1", 250).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.AddPoints(context.Background(), "player-1", 250))

	mock.ExpectExec(regexp.QuoteMeta("SET total_points = total_points + $2")).
		WithArgs("ghost", 10).
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.AddPoints(context.Background(), "ghost", 10)
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
