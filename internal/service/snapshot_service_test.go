package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type snapshotStoreStub struct {
	snaps      []models.Snapshot
	createErr  error
	deleteErr  error
	restoreErr error
	restored   *models.SnapshotPayload
	deleted    []string
	nextID     int
}

func (s *snapshotStoreStub) Create(ctx context.Context, snap *models.Snapshot) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.nextID++
	if snap.ID == "" {
		snap.ID = fmt.Sprintf("snap-%d", s.nextID)
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().Add(time.Duration(s.nextID) * time.Second)
	}
	s.snaps = append(s.snaps, *snap)
	return nil
}

func (s *snapshotStoreStub) GetByID(ctx context.Context, id string) (*models.Snapshot, error) {
	for i := range s.snaps {
		if s.snaps[i].ID == id {
			snap := s.snaps[i]
			return &snap, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (s *snapshotStoreStub) ListNewestFirst(ctx context.Context) ([]models.Snapshot, error) {
	out := make([]models.Snapshot, len(s.snaps))
	for i := range s.snaps {
		out[len(s.snaps)-1-i] = s.snaps[i]
	}
	return out, nil
}

func (s *snapshotStoreStub) ListOldestFirst(ctx context.Context) ([]models.Snapshot, error) {
	out := make([]models.Snapshot, len(s.snaps))
	copy(out, s.snaps)
	return out, nil
}

func (s *snapshotStoreStub) Delete(ctx context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for i := range s.snaps {
		if s.snaps[i].ID == id {
			s.snaps = append(s.snaps[:i], s.snaps[i+1:]...)
			s.deleted = append(s.deleted, id)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (s *snapshotStoreStub) Restore(ctx context.Context, payload *models.SnapshotPayload) error {
	if s.restoreErr != nil {
		return s.restoreErr
	}
	s.restored = payload
	return nil
}

type templateReaderStub struct {
	templates []models.Template
	err       error
}

func (s templateReaderStub) List(ctx context.Context) ([]models.Template, error) {
	return s.templates, s.err
}

type proposalReaderStub struct {
	proposals []models.Proposal
	err       error
}

func (s proposalReaderStub) List(ctx context.Context) ([]models.Proposal, error) {
	return s.proposals, s.err
}

type policyReaderStub struct {
	policy models.RetentionPolicy
	err    error
}

func (s policyReaderStub) Policy(ctx context.Context) (models.RetentionPolicy, error) {
	return s.policy, s.err
}

func TestSnapshotServiceCreateDefaults(t *testing.T) {
	store := &snapshotStoreStub{}
	svc := NewSnapshotService(store,
		templateReaderStub{templates: []models.Template{{ID: "tpl-1", Content: json.RawMessage(`{}`)}}},
		proposalReaderStub{},
		policyReaderStub{policy: models.RetentionPolicy{MaxSnapshots: 30, Enabled: true}},
		nil, nil)

	snap, err := svc.Create(context.Background(), dto.CreateBackupRequest{})
	require.NoError(t, err)
	assert.Equal(t, models.SnapshotKindManual, snap.Kind)
	assert.Contains(t, snap.Name, "Backup - ")
	assert.NotEmpty(t, snap.Size)

	var payload models.SnapshotPayload
	require.NoError(t, json.Unmarshal(snap.Payload, &payload))
	assert.Len(t, payload.Templates, 1)
	assert.NotNil(t, payload.Proposals)
}

func TestSnapshotServiceCreateRejectsUnknownKind(t *testing.T) {
	svc := NewSnapshotService(&snapshotStoreStub{}, templateReaderStub{}, proposalReaderStub{}, policyReaderStub{}, nil, nil)
	_, err := svc.Create(context.Background(), dto.CreateBackupRequest{Type: "weekly"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSnapshotServiceRetentionPrunesOldest(t *testing.T) {
	store := &snapshotStoreStub{}
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Create(context.Background(), &models.Snapshot{Name: "seed"}))
	}
	svc := NewSnapshotService(store, templateReaderStub{}, proposalReaderStub{},
		policyReaderStub{policy: models.RetentionPolicy{MaxSnapshots: 2, Enabled: true}},
		nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateBackupRequest{Name: "latest"})
	require.NoError(t, err)

	// 4 snapshots existed after the create; the 2 oldest were evicted.
	assert.Len(t, store.snaps, 2)
	assert.Len(t, store.deleted, 2)
	assert.Equal(t, "latest", store.snaps[len(store.snaps)-1].Name)
}

func TestSnapshotServiceRetentionRerunIsNoOp(t *testing.T) {
	store := &snapshotStoreStub{}
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Create(context.Background(), &models.Snapshot{Name: "seed"}))
	}
	svc := NewSnapshotService(store, templateReaderStub{}, proposalReaderStub{},
		policyReaderStub{policy: models.RetentionPolicy{MaxSnapshots: 2, Enabled: true}},
		nil, nil)

	_, err := svc.Create(context.Background(), dto.CreateBackupRequest{Name: "latest"})
	require.NoError(t, err)
	pruned := len(store.deleted)
	require.Len(t, store.snaps, 2)

	// A second enforcement with no new snapshot deletes nothing further.
	svc.enforceRetention(context.Background())
	assert.Equal(t, pruned, len(store.deleted))
	assert.Len(t, store.snaps, 2)
}

func TestSnapshotServiceRetentionFailureDoesNotFailCreate(t *testing.T) {
	store := &snapshotStoreStub{}
	require.NoError(t, store.Create(context.Background(), &models.Snapshot{Name: "seed"}))
	svc := NewSnapshotService(store, templateReaderStub{}, proposalReaderStub{},
		policyReaderStub{err: errors.New("settings unavailable")},
		nil, nil)

	snap, err := svc.Create(context.Background(), dto.CreateBackupRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, snap.ID)
}

func TestSnapshotServiceRestoreNotFound(t *testing.T) {
	svc := NewSnapshotService(&snapshotStoreStub{}, templateReaderStub{}, proposalReaderStub{}, policyReaderStub{}, nil, nil)
	err := svc.Restore(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestSnapshotServiceRestoreCorruptPayload(t *testing.T) {
	store := &snapshotStoreStub{snaps: []models.Snapshot{{
		ID:      "snap-bad",
		Payload: json.RawMessage(`{"templates":`),
	}}}
	svc := NewSnapshotService(store, templateReaderStub{}, proposalReaderStub{}, policyReaderStub{}, nil, nil)
	err := svc.Restore(context.Background(), "snap-bad")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSnapshotServiceRestoreTransactionFailure(t *testing.T) {
	store := &snapshotStoreStub{
		snaps: []models.Snapshot{{
			ID:      "snap-1",
			Payload: json.RawMessage(`{"templates":[],"proposals":[]}`),
		}},
		restoreErr: errors.New("constraint violation"),
	}
	svc := NewSnapshotService(store, templateReaderStub{}, proposalReaderStub{}, policyReaderStub{}, nil, nil)
	err := svc.Restore(context.Background(), "snap-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTransaction.Code, appErrors.FromError(err).Code)
}

func TestSnapshotServiceRestoreSurvivesSnapshot(t *testing.T) {
	store := &snapshotStoreStub{snaps: []models.Snapshot{{
		ID:      "snap-1",
		Payload: json.RawMessage(`{"templates":[{"id":"tpl-1","name":"n","description":"","icon":"","color":"","content":{},"createdAt":"2025-01-01T00:00:00Z"}],"proposals":[]}`),
	}}}
	svc := NewSnapshotService(store, templateReaderStub{}, proposalReaderStub{}, policyReaderStub{}, nil, nil)

	require.NoError(t, svc.Restore(context.Background(), "snap-1"))
	require.NotNil(t, store.restored)
	assert.Equal(t, "tpl-1", store.restored.Templates[0].ID)

	// The snapshot row is untouched by its own restore.
	snap, err := store.GetByID(context.Background(), "snap-1")
	require.NoError(t, err)
	assert.NotEmpty(t, snap.Payload)
}
