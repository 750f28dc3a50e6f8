package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
)

func newSnapshotRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestSnapshotRepositoryCreateAssignsID(t *testing.T) {
	db, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	repo := NewSnapshotRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO snapshots")).
		WillReturnResult(sqlmock.NewResult(1, 1))

	snap := &models.Snapshot{
		Name:    "Backup - January 15, 2025",
		Kind:    models.SnapshotKindManual,
		Size:    "2.00 KB",
		Payload: json.RawMessage(`{"templates":[],"proposals":[]}`),
	}
	require.NoError(t, repo.Create(context.Background(), snap))
	require.NotEmpty(t, snap.ID)
	require.False(t, snap.CreatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepositoryListOrdering(t *testing.T) {
	db, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	repo := NewSnapshotRepository(db)
	older := time.Now().Add(-time.Hour)
	newer := time.Now()

	rows := sqlmock.NewRows([]string{"id", "name", "kind", "size", "created_at"}).
		AddRow("snap-2", "newer", "manual", "1.00 KB", newer).
		AddRow("snap-1", "older", "scheduled", "500 B", older)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at DESC, id DESC")).
		WillReturnRows(rows)

	snaps, err := repo.ListNewestFirst(context.Background())
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	require.Equal(t, "snap-2", snaps[0].ID)

	evictRows := sqlmock.NewRows([]string{"id", "name", "kind", "size", "created_at"}).
		AddRow("snap-1", "older", "scheduled", "500 B", older).
		AddRow("snap-2", "newer", "manual", "1.00 KB", newer)
	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY created_at ASC, id ASC")).
		WillReturnRows(evictRows)

	snaps, err = repo.ListOldestFirst(context.Background())
	require.NoError(t, err)
	require.Equal(t, "snap-1", snaps[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	repo := NewSnapshotRepository(db)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM snapshots WHERE id = $1")).
		WithArgs("snap-missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), "snap-missing")
	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepositoryRestoreCommitsBothTables(t *testing.T) {
	db, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	repo := NewSnapshotRepository(db)
	payload := &models.SnapshotPayload{
		Templates: []models.Template{{
			ID:        "tpl-1",
			Name:      "Quote",
			Content:   json.RawMessage(`{}`),
			CreatedAt: time.Now(),
		}},
		Proposals: []models.Proposal{{
			ID:        "prop-1",
			Title:     "Acme rollout",
			Status:    models.ProposalStatusDraft,
			Content:   json.RawMessage(`{}`),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM templates")).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO templates")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM proposals")).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO proposals")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Restore(context.Background(), payload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepositoryRestoreRollsBackOnFailure(t *testing.T) {
	db, mock, cleanup := newSnapshotRepoMock(t)
	defer cleanup()

	repo := NewSnapshotRepository(db)
	payload := &models.SnapshotPayload{
		Templates: []models.Template{{
			ID:        "tpl-1",
			Name:      "Quote",
			Content:   json.RawMessage(`{}`),
			CreatedAt: time.Now(),
		}},
	}

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM templates")).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO templates")).
		WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.Restore(context.Background(), payload)
	require.Error(t, err)
	require.Contains(t, err.Error(), "restore template tpl-1")
	require.NoError(t, mock.ExpectationsWereMet())
}
