package session

import (
	"context"
	"testing"
	"time"

	"skillswap/internal/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-123"

func newRedisManager(t *testing.T) (*Manager, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewManager(testSecret, 24*time.Hour, NewStore(rdb)), mr
}

func TestManager_IssueAndValidate(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()
	user := &models.User{ID: 42, Username: "sarah_dev", IsAdmin: true}

	token, claims, err := m.Issue(ctx, user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "42", claims.Subject)
	assert.True(t, claims.Admin)

	assert.True(t, mr.Exists("session:"+claims.ID))
	assert.Equal(t, 24*time.Hour, mr.TTL("session:"+claims.ID))

	got, err := m.Validate(ctx, token)
	require.NoError(t, err)
	id, err := got.UserID()
	require.NoError(t, err)
	assert.Equal(t, uint(42), id)
	assert.Equal(t, "sarah_dev", got.Username)
}

func TestManager_Revoke(t *testing.T) {
	m, _ := newRedisManager(t)
	ctx := context.Background()

	token, _, err := m.Issue(ctx, &models.User{ID: 7, Username: "mike_designer"})
	require.NoError(t, err)

	require.NoError(t, m.Revoke(ctx, token))
	_, err = m.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)

	assert.NoError(t, m.Revoke(ctx, token), "revoking twice is harmless")
}

func TestManager_RecordExpiry(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()

	token, _, err := m.Issue(ctx, &models.User{ID: 7, Username: "mike_designer"})
	require.NoError(t, err)

	mr.FastForward(25 * time.Hour)
	_, err = m.Validate(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestManager_RejectsBadTokens(t *testing.T) {
	m, _ := newRedisManager(t)
	ctx := context.Background()
	user := &models.User{ID: 1, Username: "alice"}

	other := NewManager("a-completely-different-secret-value", time.Hour, NewMemoryStore())
	forged, _, err := other.Issue(ctx, user)
	require.NoError(t, err)

	past := NewManager(testSecret, time.Hour, m.store)
	past.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	expired, _, err := past.Issue(ctx, user)
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "x", Subject: "1", Issuer: Issuer},
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"wrong secret": forged,
		"expired":      expired,
		"alg none":     unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := m.Validate(ctx, token)
			assert.ErrorIs(t, err, ErrInvalidSession)
		})
	}
}

func TestManager_StoreUnavailable(t *testing.T) {
	m, mr := newRedisManager(t)
	ctx := context.Background()

	token, _, err := m.Issue(ctx, &models.User{ID: 3, Username: "carol"})
	require.NoError(t, err)

	mr.Close()
	_, err = m.Validate(ctx, token)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSession)
}

func TestManager_MissingSecret(t *testing.T) {
	m := NewManager("", time.Hour, NewMemoryStore())
	_, _, err := m.Issue(context.Background(), &models.User{ID: 1})
	assert.Error(t, err)
}

func TestMemoryStore(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.Save(ctx, "a", 5, time.Hour))
	id, ok, err := s.Lookup(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, uint(5), id)

	now = now.Add(time.Hour)
	_, ok, _ = s.Lookup(ctx, "a")
	assert.False(t, ok, "entry expires at its ttl")

	require.NoError(t, s.Save(ctx, "b", 6, time.Hour))
	require.NoError(t, s.Delete(ctx, "b"))
	_, ok, _ = s.Lookup(ctx, "b")
	assert.False(t, ok)
}

func TestNewStore_FallsBackToMemory(t *testing.T) {
	_, ok := NewStore(nil).(*MemoryStore)
	assert.True(t, ok)
}
