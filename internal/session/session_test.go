package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueAndParse(t *testing.T) {
	id := uuid.New()
	now := time.Date(2023, 8, 5, 10, 0, 0, 0, time.UTC)

	token, issued, err := Issue(secret, id, time.Hour, now)
	require.NoError(t, err)
	assert.Equal(t, Authenticated, issued.State)

	sess, err := Parse(context.Background(), secret, token, now.Add(30*time.Minute), NewMemoryRevoker())
	require.NoError(t, err)
	assert.Equal(t, Authenticated, sess.State)
	assert.Equal(t, id, sess.ProfessionalID)
	assert.Equal(t, issued.TokenID, sess.TokenID)
	assert.NoError(t, sess.Require())
}

func TestParseExpired(t *testing.T) {
	now := time.Date(2023, 8, 5, 10, 0, 0, 0, time.UTC)
	token, _, err := Issue(secret, uuid.New(), time.Hour, now)
	require.NoError(t, err)

	sess, err := Parse(context.Background(), secret, token, now.Add(2*time.Hour), nil)
	require.NoError(t, err)
	assert.Equal(t, Expired, sess.State)
	assert.ErrorIs(t, sess.Require(), ErrExpired)
}

func TestParseAnonymous(t *testing.T) {
	now := time.Now()

	tokenOtherKey, _, err := Issue("other", uuid.New(), time.Hour, now)
	require.NoError(t, err)

	noSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        "x",
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	})
	noSubjectSigned, err := noSubject.SignedString([]byte(secret))
	require.NoError(t, err)

	for _, tok := range []string{"", "garbage", tokenOtherKey, noSubjectSigned} {
		sess, err := Parse(context.Background(), secret, tok, now, nil)
		require.NoError(t, err)
		assert.Equal(t, Anonymous, sess.State)
		assert.ErrorIs(t, sess.Require(), ErrAnonymous)
	}
}

func TestRevokedTokenIsExpired(t *testing.T) {
	now := time.Now()
	revoker := NewMemoryRevoker()

	token, issued, err := Issue(secret, uuid.New(), time.Hour, now)
	require.NoError(t, err)

	require.NoError(t, revoker.Revoke(context.Background(), issued.TokenID, issued.ExpiresAt))

	sess, err := Parse(context.Background(), secret, token, now, revoker)
	require.NoError(t, err)
	assert.Equal(t, Expired, sess.State)
}

type unreachableRevoker struct{}

func (unreachableRevoker) Revoke(context.Context, string, time.Time) error {
	return errors.New("redis: connection refused")
}

func (unreachableRevoker) IsRevoked(context.Context, string) (bool, error) {
	return false, errors.New("redis: connection refused")
}

func TestParseFailsWhenRevokerIsUnreachable(t *testing.T) {
	now := time.Now()
	token, _, err := Issue(secret, uuid.New(), time.Hour, now)
	require.NoError(t, err)

	sess, err := Parse(context.Background(), secret, token, now, unreachableRevoker{})
	require.Error(t, err)
	assert.Equal(t, Anonymous, sess.State)

	// a bad token never reaches the revoker
	sess, err = Parse(context.Background(), secret, "not-a-jwt", now, unreachableRevoker{})
	require.NoError(t, err)
	assert.Equal(t, Anonymous, sess.State)
}

func TestMemoryRevokerForgetsAfterExpiry(t *testing.T) {
	base := time.Date(2023, 8, 5, 10, 0, 0, 0, time.UTC)
	clock := base
	m := NewMemoryRevoker()
	m.now = func() time.Time { return clock }

	require.NoError(t, m.Revoke(context.Background(), "jti", base.Add(time.Minute)))

	revoked, err := m.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.True(t, revoked)

	clock = base.Add(2 * time.Minute)
	revoked, err = m.IsRevoked(context.Background(), "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestZeroSessionIsAnonymous(t *testing.T) {
	var s Session
	assert.Equal(t, Anonymous, s.State)
	assert.Equal(t, "anonymous", s.State.String())
	assert.Error(t, s.Require())
}
