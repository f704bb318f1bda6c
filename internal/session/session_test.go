package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartGetEnd(t *testing.T) {
	store := NewStore(time.Minute)

	require.False(t, store.Active())

	token := store.Start(Session{Email: "natalia@demo.com", Name: "natalia", Role: "Productor"})
	require.NotEmpty(t, token)
	require.True(t, store.Active())

	sess, ok := store.Get(token)
	require.True(t, ok)
	require.Equal(t, "natalia@demo.com", sess.Email)
	require.Equal(t, "Productor", sess.Role)

	store.End(token)
	_, ok = store.Get(token)
	require.False(t, ok)
	require.False(t, store.Active())

	// Ending again is a no-op.
	store.End(token)
}

func TestTokensAreUnique(t *testing.T) {
	store := NewStore(time.Minute)

	first := store.Start(Session{Email: "a@demo.com"})
	second := store.Start(Session{Email: "b@demo.com"})
	require.NotEqual(t, first, second)

	sess, ok := store.Get(second)
	require.True(t, ok)
	require.Equal(t, "b@demo.com", sess.Email)
}

func TestSessionsExpire(t *testing.T) {
	store := NewStore(20 * time.Millisecond)

	token := store.Start(Session{Email: "a@demo.com"})
	require.True(t, store.Active())

	time.Sleep(50 * time.Millisecond)

	_, ok := store.Get(token)
	require.False(t, ok)
	require.False(t, store.Active())
}

func TestGetUnknownToken(t *testing.T) {
	store := NewStore(time.Minute)

	_, ok := store.Get("not-a-token")
	require.False(t, ok)
}
