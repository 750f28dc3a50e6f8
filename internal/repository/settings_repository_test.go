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

func newSettingsRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSettingsRepositoryGetEmpty(t *testing.T) {
	db, mock, cleanup := newSettingsRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	mock.ExpectQuery(regexp.QuoteMeta("FROM settings LIMIT 1")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background())
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSettingsRepositoryCreateAndGet(t *testing.T) {
	db, mock, cleanup := newSettingsRepoMock(t)
	defer cleanup()

	repo := NewSettingsRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO settings")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	settings := &models.Settings{
		BackupTime:    "23:00",
		BackupEnabled: true,
		MaxBackups:    30,
		CompanyName:   "Your Company",
	}
	require.NoError(t, repo.Create(context.Background(), settings))
	require.NotEmpty(t, settings.ID)

	rows := sqlmock.NewRows([]string{"id", "backup_time", "backup_enabled", "max_backups", "company_name", "company_logo", "company_address", "company_email", "company_phone", "updated_at"}).
		AddRow(settings.ID, "23:00", true, 30, "Your Company", "", "", "", "", time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM settings LIMIT 1")).
		WillReturnRows(rows)

	found, err := repo.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "23:00", found.BackupTime)
	require.Equal(t, 30, found.MaxBackups)
	require.NoError(t, mock.ExpectationsWereMet())
}
