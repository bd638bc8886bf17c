package redis

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMiniredisClient(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))
}

func TestNewSessionStore_KeyValidation(t *testing.T) {
	_, err := NewSessionStore("not-hex")
	assert.Error(t, err)

	_, err = NewSessionStore("abcd")
	assert.Error(t, err)

	_, err = NewSessionStore(strings.Repeat("00", 32))
	assert.NoError(t, err)
}

func TestSessionStore_RoundTrip(t *testing.T) {
	newMiniredisClient(t)

	store, err := NewSessionStore(strings.Repeat("ab", 32))
	require.NoError(t, err)

	ctx := context.Background()
	data := &SessionData{
		UserID:       "0f0d9a9e-0000-4000-8000-000000000001",
		Email:        "kim@company.com",
		Role:         "admin",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}

	require.NoError(t, store.CreateSession(ctx, "sid-1", data, time.Minute))

	got, err := store.GetSession(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	// Stored value must not be readable plaintext.
	raw, err := Get(ctx, "session:sid-1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "kim@company.com")

	require.NoError(t, store.DeleteSession(ctx, "sid-1"))
	_, err = store.GetSession(ctx, "sid-1")
	assert.Error(t, err)
}

func TestSessionStore_DecryptRejectsTampering(t *testing.T) {
	newMiniredisClient(t)

	store, err := NewSessionStore(strings.Repeat("cd", 32))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.CreateSession(ctx, "sid-2", &SessionData{Email: "a@b.com"}, time.Minute))

	require.NoError(t, Set(ctx, "session:sid-2", "00ff00ff", time.Minute))
	_, err = store.GetSession(ctx, "sid-2")
	assert.Error(t, err)
}
