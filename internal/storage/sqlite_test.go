package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plumline/claimdesk/internal/common"
	"github.com/plumline/claimdesk/internal/model"
	"github.com/plumline/claimdesk/internal/service"
)

func createTestStorage(t *testing.T) *SQLiteStorage {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "claimdesk.db")
	store, err := NewSQLiteStorage(dbPath)
	require.NoError(t, err)
	require.NoError(t, store.Migrate(context.Background()))

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestNewSQLiteStorage_EmptyPath(t *testing.T) {
	_, err := NewSQLiteStorage("")
	assert.Error(t, err)
}

func TestMigrate_Idempotent(t *testing.T) {
	store := createTestStorage(t)

	// Running migrations again on an up-to-date schema is a no-op.
	require.NoError(t, store.Migrate(context.Background()))

	var version int
	err := store.db.QueryRow(`SELECT MAX(version) FROM schema_version`).Scan(&version)
	require.NoError(t, err)
	assert.Equal(t, ExpectedSchemaVersion, version)
}

func TestAppendOverride_RequiresActor(t *testing.T) {
	store := createTestStorage(t)

	err := store.AppendOverride(context.Background(), service.OverrideRecord{
		ClaimID:   7,
		NewStatus: "APPROVED",
	})
	assert.Error(t, err)
}

func TestOverridesForClaim(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	first := service.OverrideRecord{
		ClaimID:        42,
		Actor:          "Amodini",
		PreviousStatus: "MANUAL_REVIEW",
		NewStatus:      "APPROVED",
		PreviousAmount: 0,
		NewAmount:      1800,
		Synced:         true,
	}
	second := service.OverrideRecord{
		ClaimID:        42,
		Actor:          "Amodini",
		PreviousStatus: "APPROVED",
		NewStatus:      "REJECTED",
		PreviousAmount: 1800,
		NewAmount:      0,
		Synced:         false,
	}
	require.NoError(t, store.AppendOverride(ctx, first))
	require.NoError(t, store.AppendOverride(ctx, second))
	require.NoError(t, store.AppendOverride(ctx, service.OverrideRecord{
		ClaimID:   99,
		Actor:     "Ravi",
		NewStatus: "REJECTED",
	}))

	records, err := store.OverridesForClaim(ctx, 42)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Oldest first.
	assert.Equal(t, "APPROVED", records[0].NewStatus)
	assert.Equal(t, 1800.0, records[0].NewAmount)
	assert.True(t, records[0].Synced)
	assert.False(t, records[0].CreatedAt.IsZero())

	assert.Equal(t, "REJECTED", records[1].NewStatus)
	assert.False(t, records[1].Synced)
}

func TestOverridesForClaim_Empty(t *testing.T) {
	store := createTestStorage(t)

	records, err := store.OverridesForClaim(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecentOverrides(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, store.AppendOverride(ctx, service.OverrideRecord{
			ClaimID:   i,
			Actor:     "Amodini",
			NewStatus: "APPROVED",
		}))
	}

	records, err := store.RecentOverrides(ctx, 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	// Newest first.
	assert.Equal(t, int64(5), records[0].ClaimID)
	assert.Equal(t, int64(3), records[2].ClaimID)
}

func TestRecentOverrides_DefaultLimit(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	for i := int64(1); i <= 25; i++ {
		require.NoError(t, store.AppendOverride(ctx, service.OverrideRecord{
			ClaimID:   i,
			Actor:     "Amodini",
			NewStatus: "REJECTED",
		}))
	}

	records, err := store.RecentOverrides(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 20)
}

func TestAppendOverride_PreservesCreatedAt(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	when := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, store.AppendOverride(ctx, service.OverrideRecord{
		ClaimID:   7,
		Actor:     "Amodini",
		NewStatus: "APPROVED",
		CreatedAt: when,
	}))

	records, err := store.OverridesForClaim(ctx, 7)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.True(t, records[0].CreatedAt.Equal(when))
}

func TestSessionRoundTrip(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	user := model.User{Name: "Amodini", Role: model.RoleAdmin, MemberID: "M-100"}
	require.NoError(t, store.SaveUser(ctx, user))

	loaded, err := store.LoadUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, user, *loaded)
}

func TestSaveUser_Overwrites(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUser(ctx, model.User{Name: "Amodini", Role: model.RoleAdmin}))
	require.NoError(t, store.SaveUser(ctx, model.User{Name: "Ravi", Role: model.RoleMember}))

	loaded, err := store.LoadUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ravi", loaded.Name)
	assert.Equal(t, model.RoleMember, loaded.Role)
}

func TestSaveUser_RequiresName(t *testing.T) {
	store := createTestStorage(t)

	err := store.SaveUser(context.Background(), model.User{Role: model.RoleMember})
	assert.Error(t, err)
}

func TestLoadUser_NoSession(t *testing.T) {
	store := createTestStorage(t)

	_, err := store.LoadUser(context.Background())
	assert.ErrorIs(t, err, common.ErrNoSavedSession)
}

func TestClearUser(t *testing.T) {
	store := createTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveUser(ctx, model.User{Name: "Amodini", Role: model.RoleAdmin}))
	require.NoError(t, store.ClearUser(ctx))

	_, err := store.LoadUser(ctx)
	assert.ErrorIs(t, err, common.ErrNoSavedSession)

	// Clearing an already-empty session is fine.
	require.NoError(t, store.ClearUser(ctx))
}

func TestValidateContext_Cancelled(t *testing.T) {
	store := createTestStorage(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := store.AppendOverride(ctx, service.OverrideRecord{ClaimID: 1, Actor: "Amodini"})
	assert.ErrorIs(t, err, context.Canceled)
}
