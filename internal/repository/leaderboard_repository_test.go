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

func newLeaderboardRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestLeaderboardRepositoryInsertAndGet(t *testing.T) {
	db, mock, cleanup := newLeaderboardRepoMock(t)
	defer cleanup()

	repo := NewLeaderboardRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO leaderboard")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	entry := &models.LeaderboardEntry{
		PlayerID:    "player-1",
		Username:    "ada",
		TotalPoints: 120,
		TechLevel:   models.TechLevelBeginner,
		Rank:        models.ProvisionalRank,
		GamesPlayed: 1,
	}
	require.NoError(t, repo.Insert(context.Background(), entry))
	require.NotEmpty(t, entry.ID)

	rows := sqlmock.NewRows([]string{"id", "player_id", "username", "avatar", "total_points", "tech_level", "rank", "games_played", "last_updated"}).
		AddRow(entry.ID, "player-1", "ada", "", 120, "beginner", 1, 1, time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM leaderboard WHERE player_id = $1")).
		WithArgs("player-1").
		WillReturnRows(rows)

	found, err := repo.GetByPlayer(context.Background(), "player-1")
	require.NoError(t, err)
	require.Equal(t, 120, found.TotalPoints)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepositoryUpdateStatsMissing(t *testing.T) {
	db, mock, cleanup := newLeaderboardRepoMock(t)
	defer cleanup()

	repo := NewLeaderboardRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leaderboard")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStats(context.Background(), &models.LeaderboardEntry{PlayerID: "ghost"})
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepositoryRecalculateRanks(t *testing.T) {
	db, mock, cleanup := newLeaderboardRepoMock(t)
	defer cleanup()

	repo := NewLeaderboardRepository(db)

	mock.ExpectBegin()
	ordering := sqlmock.NewRows([]string{"player_id"}).
		AddRow("player-high").
		AddRow("player-mid").
		AddRow("player-low")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total_points DESC, player_id ASC")).
		WillReturnRows(ordering)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leaderboard SET rank = $2")).
		WithArgs("player-high", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leaderboard SET rank = $2")).
		WithArgs("player-mid", 2, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leaderboard SET rank = $2")).
		WithArgs("player-low", 3, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.RecalculateRanks(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestLeaderboardRepositoryRecalculateRanksRollsBack(t *testing.T) {
	db, mock, cleanup := newLeaderboardRepoMock(t)
	defer cleanup()

	repo := NewLeaderboardRepository(db)

	mock.ExpectBegin()
	ordering := sqlmock.NewRows([]string{"player_id"}).
		AddRow("player-high").
		AddRow("player-low")
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY total_points DESC, player_id ASC")).
		WillReturnRows(ordering)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leaderboard SET rank = $2")).
		WithArgs("player-high", 1, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE leaderboard SET rank = $2")).
		WithArgs("player-low", 2, sqlmock.AnyArg()).
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.RecalculateRanks(context.Background())
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
