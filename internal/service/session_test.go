package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trustrent-backend/internal/domain"
	"trustrent-backend/internal/repository/memory"
)

func TestSessionService_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Landlord", func(t *testing.T) {
		f := newFixture(t)
		sess, err := f.svc.Session.Authenticate(ctx, domain.UserRoleLandlord)
		require.NoError(t, err)
		assert.Equal(t, domain.UserRoleLandlord, sess.Role)
		assert.Equal(t, memory.DemoLandlordID, sess.UserID)

		user, err := f.svc.Session.CurrentUser(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Alex Sterling", user.Name)
	})

	t.Run("Resets page and selection", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Session.Authenticate(ctx, domain.UserRoleLandlord)
		require.NoError(t, err)
		require.NoError(t, f.svc.Session.SelectProperty(ctx, "prop_002"))

		sess, err := f.svc.Session.Authenticate(ctx, domain.UserRoleTenant)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultPage, sess.Page)
		assert.Nil(t, sess.SelectedPropertyID)
		assert.Equal(t, memory.DemoTenantID, sess.UserID)

		current, err := f.svc.Session.Current(ctx)
		require.NoError(t, err)
		assert.Equal(t, sess, current)
	})

	t.Run("Invalid role", func(t *testing.T) {
		f := newFixture(t)
		_, err := f.svc.Session.Authenticate(ctx, "ADMIN")
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	})
}

func TestSessionService_Deauthenticate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Session.Authenticate(ctx, domain.UserRoleLandlord)
	require.NoError(t, err)
	require.NoError(t, f.svc.Session.SelectProperty(ctx, "prop_001"))

	require.NoError(t, f.svc.Session.Deauthenticate(ctx))
	first, err := f.svc.Session.Current(ctx)
	require.NoError(t, err)
	assert.False(t, first.Authenticated())
	assert.Equal(t, domain.DefaultPage, first.Page)
	assert.Nil(t, first.SelectedPropertyID)

	require.NoError(t, f.svc.Session.Deauthenticate(ctx))
	second, err := f.svc.Session.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = f.svc.Session.CurrentUser(ctx)
	assert.ErrorIs(t, err, domain.ErrNoActiveSession)
}

func TestSessionService_NavigateAndSelect(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Session.Authenticate(ctx, domain.UserRoleLandlord)
	require.NoError(t, err)

	t.Run("Navigate accepts any token", func(t *testing.T) {
		require.NoError(t, f.svc.Session.Navigate(ctx, "not-a-page"))
		sess, _ := f.svc.Session.Current(ctx)
		assert.Equal(t, "not-a-page", sess.Page)
	})

	t.Run("Select accepts dangling ids", func(t *testing.T) {
		require.NoError(t, f.svc.Session.SelectProperty(ctx, "prop_missing"))
		sess, _ := f.svc.Session.Current(ctx)
		assert.Equal(t, "property-details", sess.Page)
		require.NotNil(t, sess.SelectedPropertyID)
		assert.Equal(t, "prop_missing", *sess.SelectedPropertyID)
	})
}

func TestSessionService_CancelsInFlightAdvice(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, err := f.svc.Session.Authenticate(ctx, domain.UserRoleTenant)
	require.NoError(t, err)

	callCtx, done := f.svc.Calls.Track(ctx)
	defer done()
	assert.Equal(t, 1, f.svc.Calls.InFlight())

	require.NoError(t, f.svc.Session.Navigate(ctx, "payments"))
	assert.ErrorIs(t, callCtx.Err(), context.Canceled)
	assert.Equal(t, 0, f.svc.Calls.InFlight())
}
