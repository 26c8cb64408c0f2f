package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nidhi8595/DevTinder3/internal/client/models"
	"github.com/Nidhi8595/DevTinder3/internal/logging"
)

func testUser() *models.User {
	return &models.User{
		ID:        "u-1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Skills:    []string{"Go"},
		Interests: []string{"Compilers"},
	}
}

func TestVault_SaveThenLoad_RoundTrips(t *testing.T) {
	db := setupDB(t)
	v := NewSessionVault(db, logging.Nop())
	ctx := context.Background()

	require.NoError(t, v.Save(ctx, "tok-abc", testUser()))

	token, user, ok := v.Load(ctx)
	require.True(t, ok)
	require.Equal(t, "tok-abc", token)
	require.Equal(t, testUser(), user)
}

func TestVault_Load_EmptyStore_ReportsNoSession(t *testing.T) {
	db := setupDB(t)
	v := NewSessionVault(db, logging.Nop())

	_, _, ok := v.Load(context.Background())
	require.False(t, ok)
}

func TestVault_Load_MissingToken_ReportsNoSession(t *testing.T) {
	db := setupDB(t)
	v := NewSessionVault(db, logging.Nop())
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session_store(key, value) VALUES(?, ?)`,
		KeyUser, []byte(`{"id":"u-1","email":"ada@example.com"}`))
	require.NoError(t, err)

	_, _, ok := v.Load(ctx)
	require.False(t, ok)
}

func TestVault_Load_MalformedUser_DiscardsSession(t *testing.T) {
	db := setupDB(t)
	v := NewSessionVault(db, logging.Nop())
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session_store(key, value) VALUES(?, ?)`, KeyToken, []byte("tok"))
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO session_store(key, value) VALUES(?, ?)`, KeyUser, []byte("{not json"))
	require.NoError(t, err)

	_, _, ok := v.Load(ctx)
	require.False(t, ok)

	// The malformed pair is gone, so the next load starts clean.
	raw, err := NewSQLiteRepository(db).Get(ctx, KeyToken)
	require.NoError(t, err)
	require.Nil(t, raw)
}

func TestVault_Load_UserMissingRequiredFields_DiscardsSession(t *testing.T) {
	db := setupDB(t)
	v := NewSessionVault(db, logging.Nop())
	ctx := context.Background()

	_, err := db.Exec(`INSERT INTO session_store(key, value) VALUES(?, ?)`, KeyToken, []byte("tok"))
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO session_store(key, value) VALUES(?, ?)`, KeyUser, []byte(`{"name":"no id"}`))
	require.NoError(t, err)

	_, _, ok := v.Load(ctx)
	require.False(t, ok)
}

func TestVault_Clear_RemovesBothKeys(t *testing.T) {
	db := setupDB(t)
	v := NewSessionVault(db, logging.Nop())
	ctx := context.Background()

	require.NoError(t, v.Save(ctx, "tok", testUser()))
	require.NoError(t, v.Clear(ctx))

	_, _, ok := v.Load(ctx)
	require.False(t, ok)

	repo := NewSQLiteRepository(db)
	for _, k := range []string{KeyToken, KeyUser} {
		raw, err := repo.Get(ctx, k)
		require.NoError(t, err)
		require.Nil(t, raw)
	}
}

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	db, err := Open(ctx, "file:vaulttest?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	v := NewSessionVault(db, logging.Nop())
	require.NoError(t, v.Save(ctx, "tok", testUser()))
	_, _, ok := v.Load(ctx)
	require.True(t, ok)
}
