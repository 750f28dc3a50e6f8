package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
)

type scheduledSnapshotCreator interface {
	CreateScheduled(ctx context.Context) (*models.Snapshot, error)
}

type schedulerPolicyReader interface {
	Policy(ctx context.Context) (models.RetentionPolicy, error)
}

// BackupScheduler arms a single timer for the next configured backup time.
// At most one timer exists at any moment: arming a new schedule always
// cancels the previous one first, so a settings change can never leave a
// stale firing behind.
type BackupScheduler struct {
	snapshots scheduledSnapshotCreator
	policies  schedulerPolicyReader
	logger    *zap.Logger
	now       func() time.Time

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// NewBackupScheduler constructs a BackupScheduler.
func NewBackupScheduler(snapshots scheduledSnapshotCreator, policies schedulerPolicyReader, logger *zap.Logger) *BackupScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BackupScheduler{
		snapshots: snapshots,
		policies:  policies,
		logger:    logger,
		now:       func() time.Time { return time.Now() },
	}
}

// Start reads the stored policy and arms the first firing.
func (s *BackupScheduler) Start(ctx context.Context) error {
	policy, err := s.policies.Policy(ctx)
	if err != nil {
		return err
	}
	s.Rearm(policy)
	return nil
}

// Rearm replaces the current schedule with one derived from the policy.
// A disabled policy cancels any pending firing.
func (s *BackupScheduler) Rearm(policy models.RetentionPolicy) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	if s.stopped || !policy.Enabled {
		s.logger.Info("backup schedule disarmed")
		return
	}
	s.armLocked(policy)
}

// Stop cancels the pending firing permanently.
func (s *BackupScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	s.cancelLocked()
}

// NextFiring reports the wall-clock time of the next scheduled backup for the
// given policy, relative to now.
func (s *BackupScheduler) NextFiring(policy models.RetentionPolicy) time.Time {
	return nextFiring(s.now(), policy.Hour, policy.Minute)
}

func (s *BackupScheduler) armLocked(policy models.RetentionPolicy) {
	next := nextFiring(s.now(), policy.Hour, policy.Minute)
	delay := next.Sub(s.now())
	s.timer = time.AfterFunc(delay, func() { s.fire(policy) })
	s.logger.Info("backup schedule armed",
		zap.Time("next", next),
		zap.Int("hour", policy.Hour),
		zap.Int("minute", policy.Minute))
}

func (s *BackupScheduler) cancelLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// fire runs one scheduled backup, then re-reads the policy and arms the next
// day's firing. A failed backup never breaks the chain.
func (s *BackupScheduler) fire(policy models.RetentionPolicy) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	if _, err := s.snapshots.CreateScheduled(ctx); err != nil {
		s.logger.Error("scheduled backup failed", zap.Error(err))
	}

	// Settings may have changed while the backup ran.
	current, err := s.policies.Policy(ctx)
	if err != nil {
		s.logger.Warn("could not re-read backup policy, reusing previous schedule", zap.Error(err))
		current = policy
	}
	s.Rearm(current)
}

// nextFiring returns the next wall-clock occurrence of hour:minute strictly
// after now.
func nextFiring(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
