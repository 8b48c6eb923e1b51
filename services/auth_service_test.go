package services_test

import (
	"context"
	"path/filepath"
	"testing"

	"restaurant-backend/database"
	"restaurant-backend/models"
	"restaurant-backend/repository"
	"restaurant-backend/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestBackend(t *testing.T) (repository.API, *database.Store) {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "auth.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	store := database.NewStore(db, zap.NewNop())
	return repository.NewMockAPI(context.Background(), store, 0, zap.NewNop()), store
}

func TestSessionStartsUnknownThenAnonymous(t *testing.T) {
	api, store := newTestBackend(t)
	auth := services.NewAuthService(api, store, zap.NewNop())

	state, user := auth.Current()
	assert.Equal(t, services.SessionUnknown, state)
	assert.Nil(t, user)

	auth.Load(context.Background())
	state, user = auth.Current()
	assert.Equal(t, services.SessionAnonymous, state)
	assert.Nil(t, user)
}

func TestLoginEstablishesAndPersistsSession(t *testing.T) {
	api, store := newTestBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api, store, zap.NewNop())
	auth.Load(ctx)

	user, svcErr := auth.Login(ctx, "admin", "admin123")
	require.Nil(t, svcErr)
	require.NotNil(t, user)

	state, current := auth.Current()
	assert.Equal(t, services.SessionAuthenticated, state)
	assert.Equal(t, models.RoleAdmin, current.Role)

	// A restart restores the persisted session.
	restarted := services.NewAuthService(api, store, zap.NewNop())
	restarted.Load(ctx)
	state, current = restarted.Current()
	assert.Equal(t, services.SessionAuthenticated, state)
	assert.Equal(t, "admin", current.Username)
}

func TestLoginFailureKeepsAnonymous(t *testing.T) {
	api, store := newTestBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api, store, zap.NewNop())
	auth.Load(ctx)

	user, svcErr := auth.Login(ctx, "admin", "nope")
	assert.Nil(t, user)
	require.NotNil(t, svcErr)
	assert.Equal(t, 401, svcErr.StatusCode)

	state, _ := auth.Current()
	assert.Equal(t, services.SessionAnonymous, state)
}

func TestRegisterLogsNewCustomerIn(t *testing.T) {
	api, store := newTestBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api, store, zap.NewNop())
	auth.Load(ctx)

	user, svcErr := auth.Register(ctx, "alice", "pw1")
	require.Nil(t, svcErr)
	assert.Equal(t, 4, user.ID)
	assert.Equal(t, models.RoleCustomer, user.Role)

	state, current := auth.Current()
	assert.Equal(t, services.SessionAuthenticated, state)
	assert.Equal(t, "alice", current.Username)
}

func TestRegisterDuplicateUsernameConflicts(t *testing.T) {
	api, store := newTestBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api, store, zap.NewNop())
	auth.Load(ctx)

	user, svcErr := auth.Register(ctx, "customer1", "pw")
	assert.Nil(t, user)
	require.NotNil(t, svcErr)
	assert.Equal(t, 409, svcErr.StatusCode)

	state, _ := auth.Current()
	assert.Equal(t, services.SessionAnonymous, state)
}

func TestLogoutClearsPersistedSession(t *testing.T) {
	api, store := newTestBackend(t)
	ctx := context.Background()

	auth := services.NewAuthService(api, store, zap.NewNop())
	auth.Load(ctx)
	_, svcErr := auth.Login(ctx, "customer1", "customer1")
	require.Nil(t, svcErr)

	auth.Logout(ctx)
	state, user := auth.Current()
	assert.Equal(t, services.SessionAnonymous, state)
	assert.Nil(t, user)

	restarted := services.NewAuthService(api, store, zap.NewNop())
	restarted.Load(ctx)
	state, _ = restarted.Current()
	assert.Equal(t, services.SessionAnonymous, state)
}
