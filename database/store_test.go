package database_test

import (
	"context"
	"path/filepath"
	"testing"

	"restaurant-backend/database"
	"restaurant-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	return db
}

func TestReadMissingKeyLeavesDefault(t *testing.T) {
	db := newTestDB(t)
	store := database.NewStore(db, zap.NewNop())

	users := []models.User{{ID: 9, Username: "fallback", Role: models.RoleCustomer}}
	store.Read(context.Background(), "users", &users)

	assert.Len(t, users, 1)
	assert.Equal(t, "fallback", users[0].Username)
}

func TestWriteReadRoundtrip(t *testing.T) {
	db := newTestDB(t)
	store := database.NewStore(db, zap.NewNop())
	ctx := context.Background()

	written := []models.MenuItem{
		{ID: 1, Name: "Nasi Lemak", Category: models.CategoryFood, Price: 6.00},
		{ID: 2, Name: "Teh Tarik", Category: models.CategoryDrink, Price: 2.50},
	}
	store.Write(ctx, "menuItems", written)

	read := []models.MenuItem{}
	store.Read(ctx, "menuItems", &read)
	assert.Equal(t, written, read)
}

func TestWriteOverwritesExistingKey(t *testing.T) {
	db := newTestDB(t)
	store := database.NewStore(db, zap.NewNop())
	ctx := context.Background()

	store.Write(ctx, "passwords", map[int]string{1: "first"})
	store.Write(ctx, "passwords", map[int]string{1: "second", 2: "extra"})

	passwords := map[int]string{}
	store.Read(ctx, "passwords", &passwords)
	assert.Equal(t, map[int]string{1: "second", 2: "extra"}, passwords)
}

func TestHas(t *testing.T) {
	db := newTestDB(t)
	store := database.NewStore(db, zap.NewNop())
	ctx := context.Background()

	assert.False(t, store.Has(ctx, "orders"))
	store.Write(ctx, "orders", []models.Order{})
	assert.True(t, store.Has(ctx, "orders"))
}

func TestCorruptValueLeavesDefault(t *testing.T) {
	db := newTestDB(t)
	store := database.NewStore(db, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, db.Create(&database.Record{Key: "users", Value: "{not json"}).Error)

	users := []models.User{{ID: 1, Username: "default"}}
	store.Read(ctx, "users", &users)
	assert.Equal(t, "default", users[0].Username)
}

func TestValuesSurviveReconnect(t *testing.T) {
	path := filepath.Join(t.TempDir(), "durable.db")
	ctx := context.Background()

	db, err := database.Connect(path)
	require.NoError(t, err)
	store := database.NewStore(db, zap.NewNop())
	store.Write(ctx, "session", &models.User{ID: 2, Username: "customer1", Role: models.RoleCustomer})
	require.NoError(t, database.Close(db))

	db2, err := database.Connect(path)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db2) })

	var user *models.User
	database.NewStore(db2, zap.NewNop()).Read(ctx, "session", &user)
	require.NotNil(t, user)
	assert.Equal(t, "customer1", user.Username)
}
