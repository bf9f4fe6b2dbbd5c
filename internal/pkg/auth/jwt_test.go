package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(exp time.Duration) *JWTService {
	return NewJWTService(JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    exp,
		TokenIssuer: "placement-portal-test",
	})
}

func TestIssueAndVerify(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Hour)

	token, err := svc.Issue(42, "student")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.SubjectID)
	assert.Equal(t, "student", claims.SubjectKind)
	assert.Equal(t, "placement-portal-test", claims.Issuer)
}

func TestVerifyExpiredToken(t *testing.T) {
	t.Parallel()

	svc := newTestService(-time.Minute)

	token, err := svc.Issue(1, "admin")
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := newTestService(time.Hour).Issue(1, "student")
	require.NoError(t, err)

	other := NewJWTService(JWTConfig{SecretKey: "other-secret", TokenExp: time.Hour})
	_, err = other.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyGarbage(t *testing.T) {
	t.Parallel()

	svc := newTestService(time.Hour)

	for _, token := range []string{"", "   ", "not.a.token", "a.b"} {
		_, err := svc.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", token)
	}
}

func TestExtractBearerToken(t *testing.T) {
	t.Parallel()

	token, err := ExtractBearerToken("Bearer abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	token, err = ExtractBearerToken("abc123")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)

	_, err = ExtractBearerToken("")
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestTokenExpirySeconds(t *testing.T) {
	t.Parallel()

	svc := newTestService(168 * time.Hour)
	assert.Equal(t, int64(604800), svc.TokenExpirySeconds())
}
