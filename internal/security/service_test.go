package security

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/platform/restc"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/shared"
	"github.com/PapaBear1981/SupplyLine-V2-sub001/internal/store"
)

type stubRepo struct {
	settings Settings
	getCalls int
	updated  *SettingsInput
}

func (r *stubRepo) Get(context.Context) (Settings, error) {
	r.getCalls++
	return r.settings, nil
}

func (r *stubRepo) Update(_ context.Context, input SettingsInput) (Settings, error) {
	r.updated = &input
	r.settings = Settings{SessionTimeoutMinutes: input.SessionTimeoutMinutes}
	return r.settings, nil
}

func TestGetSyncsSessionTimeout(t *testing.T) {
	repo := &stubRepo{settings: Settings{SessionTimeoutMinutes: 30}}
	session := shared.NewSession()
	svc := NewService(repo, store.New(time.Minute), session)

	settings, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, 30, settings.SessionTimeoutMinutes)
	require.Equal(t, 30*time.Minute, session.Timeout())
}

func TestUpdateValidatesTimeoutBounds(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo, store.New(time.Minute), shared.NewSession())

	_, err := svc.Update(context.Background(), SettingsInput{SessionTimeoutMinutes: 2})
	require.ErrorIs(t, err, restc.ErrValidation)

	_, err = svc.Update(context.Background(), SettingsInput{SessionTimeoutMinutes: 3000})
	require.ErrorIs(t, err, restc.ErrValidation)
	require.Nil(t, repo.updated)
}

func TestUpdateInvalidatesCachedSettings(t *testing.T) {
	repo := &stubRepo{settings: Settings{SessionTimeoutMinutes: 30}}
	session := shared.NewSession()
	svc := NewService(repo, store.New(time.Minute), session)
	ctx := context.Background()

	_, err := svc.Get(ctx)
	require.NoError(t, err)
	_, err = svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, repo.getCalls)

	updated, err := svc.Update(ctx, SettingsInput{SessionTimeoutMinutes: 45})
	require.NoError(t, err)
	require.Equal(t, 45, updated.SessionTimeoutMinutes)
	require.Equal(t, 45*time.Minute, session.Timeout())

	_, err = svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, repo.getCalls, "update must drop the cached settings")
}
