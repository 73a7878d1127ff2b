package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-test-secret-test-secret"

func signToken(t *testing.T, secret string, claims jwt.Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestResolveUserID(t *testing.T) {
	verifier := NewJWTVerifier(testSecret)
	userID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		token := signToken(t, testSecret, Claims{
			UserID: userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		got, err := verifier.ResolveUserID("Bearer " + token)
		require.NoError(t, err)
		assert.Equal(t, userID, got)
	})

	t.Run("Missing Authorization header", func(t *testing.T) {
		_, err := verifier.ResolveUserID("")
		assert.ErrorIs(t, err, ErrMissingAuthorization)
	})

	t.Run("Not a bearer credential", func(t *testing.T) {
		_, err := verifier.ResolveUserID("Basic dXNlcjpwYXNz")
		assert.ErrorIs(t, err, ErrMissingAuthorization)
	})

	t.Run("Expired token", func(t *testing.T) {
		token := signToken(t, testSecret, Claims{
			UserID: userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		})

		_, err := verifier.ResolveUserID("Bearer " + token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Wrong signing key", func(t *testing.T) {
		token := signToken(t, "another-secret-another-secret-zzzz", Claims{
			UserID: userID.String(),
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := verifier.ResolveUserID("Bearer " + token)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	})

	t.Run("Missing userId claim", func(t *testing.T) {
		token := signToken(t, testSecret, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := verifier.ResolveUserID("Bearer " + token)
		assert.ErrorIs(t, err, ErrUserIDMissing)
	})

	t.Run("Malformed userId claim", func(t *testing.T) {
		token := signToken(t, testSecret, Claims{
			UserID: "not-a-uuid",
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})

		_, err := verifier.ResolveUserID("Bearer " + token)
		assert.ErrorIs(t, err, ErrUserIDInvalid)
	})
}

func TestBearerToken(t *testing.T) {
	token, err := BearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = BearerToken("abc.def.ghi")
	assert.ErrorIs(t, err, ErrMissingAuthorization)
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(ErrMissingAuthorization))
	assert.True(t, IsAuthError(ErrTokenInvalid))
	assert.True(t, IsAuthError(ErrUserIDMissing))
	assert.True(t, IsAuthError(ErrUserIDInvalid))
	assert.False(t, IsAuthError(assert.AnError))
}
