package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
	"github.com/Zamara-Intern12/Financial-Frontier/pkg/sizefmt"
)

type snapshotStore interface {
	Create(ctx context.Context, snap *models.Snapshot) error
	GetByID(ctx context.Context, id string) (*models.Snapshot, error)
	ListNewestFirst(ctx context.Context) ([]models.Snapshot, error)
	ListOldestFirst(ctx context.Context) ([]models.Snapshot, error)
	Delete(ctx context.Context, id string) error
	Restore(ctx context.Context, payload *models.SnapshotPayload) error
}

type snapshotTemplateReader interface {
	List(ctx context.Context) ([]models.Template, error)
}

type snapshotProposalReader interface {
	List(ctx context.Context) ([]models.Proposal, error)
}

type retentionPolicyReader interface {
	Policy(ctx context.Context) (models.RetentionPolicy, error)
}

// snapshotNameLayout renders the user-facing default snapshot name.
const snapshotNameLayout = "January 2, 2006 - 3:04 PM"

// SnapshotService builds, restores and prunes document-set snapshots.
type SnapshotService struct {
	store     snapshotStore
	templates snapshotTemplateReader
	proposals snapshotProposalReader
	policies  retentionPolicyReader
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time
}

// NewSnapshotService constructs a SnapshotService.
func NewSnapshotService(store snapshotStore, templates snapshotTemplateReader, proposals snapshotProposalReader, policies retentionPolicyReader, metrics *MetricsService, logger *zap.Logger) *SnapshotService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SnapshotService{
		store:     store,
		templates: templates,
		proposals: proposals,
		policies:  policies,
		metrics:   metrics,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Create captures the current document set as a new snapshot, then prunes the
// oldest snapshots past the retention limit. Pruning is best effort: a failed
// eviction never fails the snapshot that was just written.
func (s *SnapshotService) Create(ctx context.Context, req dto.CreateBackupRequest) (*models.Snapshot, error) {
	kind, err := resolveSnapshotKind(req.Type)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = "Backup - " + s.now().Format(snapshotNameLayout)
	}

	payload, raw, err := s.buildPayload(ctx)
	if err != nil {
		return nil, err
	}

	snap := &models.Snapshot{
		Name:    name,
		Kind:    kind,
		Size:    sizefmt.Format(int64(len(raw))),
		Payload: raw,
	}
	if err := s.store.Create(ctx, snap); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create backup")
	}
	s.logger.Info("backup created",
		zap.String("id", snap.ID),
		zap.String("kind", string(kind)),
		zap.Int("templates", len(payload.Templates)),
		zap.Int("proposals", len(payload.Proposals)),
		zap.String("size", snap.Size))
	s.metrics.RecordBackupCreated(string(kind))

	s.enforceRetention(ctx)
	return snap, nil
}

// CreateScheduled captures a snapshot on behalf of the daily timer.
func (s *SnapshotService) CreateScheduled(ctx context.Context) (*models.Snapshot, error) {
	return s.Create(ctx, dto.CreateBackupRequest{Type: string(models.SnapshotKindScheduled)})
}

// List returns snapshot metadata newest first. Payloads are not included.
func (s *SnapshotService) List(ctx context.Context) ([]models.Snapshot, error) {
	snaps, err := s.store.ListNewestFirst(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list backups")
	}
	return snaps, nil
}

// Delete removes one snapshot.
func (s *SnapshotService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "backup not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete backup")
	}
	return nil
}

// Restore replaces the live document set with a snapshot's contents. The swap
// is all-or-nothing: on any failure the live tables are left untouched. The
// snapshot itself is read-only and survives the restore.
func (s *SnapshotService) Restore(ctx context.Context, id string) error {
	snap, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "backup not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load backup")
	}

	var payload models.SnapshotPayload
	if err := json.Unmarshal(snap.Payload, &payload); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "backup payload is corrupt")
	}

	if err := s.store.Restore(ctx, &payload); err != nil {
		s.metrics.RecordRestore(false)
		return appErrors.Wrap(err, appErrors.ErrTransaction.Code, appErrors.ErrTransaction.Status, "restore aborted, no changes applied")
	}
	s.metrics.RecordRestore(true)
	s.logger.Info("backup restored",
		zap.String("id", id),
		zap.Int("templates", len(payload.Templates)),
		zap.Int("proposals", len(payload.Proposals)))
	return nil
}

// buildPayload serializes the full live document set into the canonical
// snapshot shape. Empty tables serialize as empty arrays, never null.
func (s *SnapshotService) buildPayload(ctx context.Context) (*models.SnapshotPayload, json.RawMessage, error) {
	templates, err := s.templates.List(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read templates")
	}
	proposals, err := s.proposals.List(ctx)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read proposals")
	}
	if templates == nil {
		templates = []models.Template{}
	}
	if proposals == nil {
		proposals = []models.Proposal{}
	}
	payload := &models.SnapshotPayload{Templates: templates, Proposals: proposals}
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to serialize backup payload")
	}
	return payload, raw, nil
}

// enforceRetention deletes the oldest snapshots beyond the configured limit.
// Errors are logged and swallowed; the next successful backup retries.
func (s *SnapshotService) enforceRetention(ctx context.Context) {
	if s.policies == nil {
		return
	}
	policy, err := s.policies.Policy(ctx)
	if err != nil {
		s.logger.Warn("retention policy unavailable, skipping pruning", zap.Error(err))
		return
	}
	if policy.MaxSnapshots < 1 {
		return
	}

	snaps, err := s.store.ListOldestFirst(ctx)
	if err != nil {
		s.logger.Warn("failed to list backups for pruning", zap.Error(err))
		return
	}
	excess := len(snaps) - policy.MaxSnapshots
	for i := 0; i < excess; i++ {
		if err := s.store.Delete(ctx, snaps[i].ID); err != nil {
			s.logger.Warn("failed to prune backup",
				zap.String("id", snaps[i].ID),
				zap.Error(err))
			continue
		}
		s.metrics.RecordBackupPruned()
		s.logger.Info("pruned backup past retention limit",
			zap.String("id", snaps[i].ID),
			zap.String("name", snaps[i].Name))
	}
}

func resolveSnapshotKind(raw string) (models.SnapshotKind, error) {
	switch models.SnapshotKind(strings.TrimSpace(raw)) {
	case "", models.SnapshotKindManual:
		return models.SnapshotKindManual, nil
	case models.SnapshotKindScheduled:
		return models.SnapshotKindScheduled, nil
	default:
		return "", appErrors.Clone(appErrors.ErrValidation, "backup type must be manual or scheduled")
	}
}
