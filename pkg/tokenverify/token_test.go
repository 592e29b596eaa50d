package tokenverify

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signed(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	raw, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return raw
}

func TestVerifyResolvesClaims(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	raw := signed(t, "test-secret", jwt.MapClaims{
		"uid":     "user-1",
		"email":   "user@example.com",
		"name":    "User One",
		"picture": "https://img.example.com/u1.png",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	identity, err := Verify("Bearer " + raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", identity.UID)
	assert.Equal(t, "user@example.com", identity.Email)
	assert.Equal(t, "User One", identity.Name)
	assert.Equal(t, "https://img.example.com/u1.png", identity.Photo)
}

func TestVerifyFallsBackToSubjectClaim(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	raw := signed(t, "test-secret", jwt.MapClaims{
		"sub":   "subject-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	identity, err := Verify("Bearer " + raw)
	require.NoError(t, err)
	assert.Equal(t, "subject-1", identity.UID)
}

func TestVerifyRejectsBadInput(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	_, err := Verify("")
	assert.ErrorIs(t, err, ErrEmptyHeader)

	_, err = Verify("Basic abc123")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Verify("Bearer ")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Verify("Bearer not.a.token")
	assert.Error(t, err)
}

func TestVerifyRejectsWrongSignatureAndExpiry(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	forged := signed(t, "other-secret", jwt.MapClaims{
		"uid":   "user-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	_, err := Verify("Bearer " + forged)
	assert.Error(t, err)

	expired := signed(t, "test-secret", jwt.MapClaims{
		"uid":   "user-1",
		"email": "user@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	})
	_, err = Verify("Bearer " + expired)
	assert.Error(t, err)
}

func TestVerifyRequiresIdentityClaims(t *testing.T) {
	t.Setenv(SecretEnvKey, "test-secret")

	raw := signed(t, "test-secret", jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := Verify("Bearer " + raw)
	assert.ErrorIs(t, err, ErrMissingClaims)
}
