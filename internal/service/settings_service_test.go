package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zamara-Intern12/Financial-Frontier/internal/dto"
	"github.com/Zamara-Intern12/Financial-Frontier/internal/models"
	appErrors "github.com/Zamara-Intern12/Financial-Frontier/pkg/errors"
)

type settingsStoreStub struct {
	settings *models.Settings
	err      error
}

func (s *settingsStoreStub) Get(ctx context.Context) (*models.Settings, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.settings == nil {
		return nil, sql.ErrNoRows
	}
	copied := *s.settings
	return &copied, nil
}

func (s *settingsStoreStub) Create(ctx context.Context, settings *models.Settings) error {
	if settings.ID == "" {
		settings.ID = "settings-1"
	}
	copied := *settings
	s.settings = &copied
	return nil
}

func (s *settingsStoreStub) Update(ctx context.Context, settings *models.Settings) error {
	copied := *settings
	s.settings = &copied
	return nil
}

type rearmSpy struct {
	policies []models.RetentionPolicy
}

func (r *rearmSpy) Rearm(policy models.RetentionPolicy) {
	r.policies = append(r.policies, policy)
}

func TestSettingsServiceGetInitialisesDefaults(t *testing.T) {
	store := &settingsStoreStub{}
	svc := NewSettingsService(store, nil, validator.New(), nil)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "23:00", settings.BackupTime)
	assert.True(t, settings.BackupEnabled)
	assert.Equal(t, 30, settings.MaxBackups)
	assert.Equal(t, "Your Company", settings.CompanyName)

	// Second read returns the persisted row, no re-initialisation.
	again, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSettingsServicePolicy(t *testing.T) {
	store := &settingsStoreStub{settings: &models.Settings{
		ID: "settings-1", BackupTime: "02:30", BackupEnabled: true, MaxBackups: 5,
	}}
	svc := NewSettingsService(store, nil, validator.New(), nil)

	policy, err := svc.Policy(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, policy.Hour)
	assert.Equal(t, 30, policy.Minute)
	assert.Equal(t, 5, policy.MaxSnapshots)
	assert.True(t, policy.Enabled)
}

func TestSettingsServiceUpdateRejectsBadTime(t *testing.T) {
	svc := NewSettingsService(&settingsStoreStub{}, nil, validator.New(), nil)
	bad := "25:99"
	_, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{BackupTime: &bad})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSettingsServiceUpdateRejectsZeroRetention(t *testing.T) {
	svc := NewSettingsService(&settingsStoreStub{}, nil, validator.New(), nil)
	zero := 0
	_, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{MaxBackups: &zero})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestSettingsServiceUpdateRearmsScheduler(t *testing.T) {
	store := &settingsStoreStub{}
	spy := &rearmSpy{}
	svc := NewSettingsService(store, spy, validator.New(), nil)

	newTime := "04:15"
	settings, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{BackupTime: &newTime})
	require.NoError(t, err)
	assert.Equal(t, "04:15", settings.BackupTime)

	require.Len(t, spy.policies, 1)
	assert.Equal(t, 4, spy.policies[0].Hour)
	assert.Equal(t, 15, spy.policies[0].Minute)
}

func TestSettingsServiceUpdatePartial(t *testing.T) {
	store := &settingsStoreStub{settings: &models.Settings{
		ID: "settings-1", BackupTime: "23:00", BackupEnabled: true, MaxBackups: 30, CompanyName: "Acme",
	}}
	svc := NewSettingsService(store, nil, validator.New(), nil)

	disabled := false
	settings, err := svc.Update(context.Background(), dto.UpdateSettingsRequest{BackupEnabled: &disabled})
	require.NoError(t, err)
	assert.False(t, settings.BackupEnabled)
	assert.Equal(t, "23:00", settings.BackupTime)
	assert.Equal(t, "Acme", settings.CompanyName)
}
