package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"docsage/internal/auth/jwtverifier"
	"docsage/internal/config"
	"docsage/internal/domain"
)

const testSecret = "unit-test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	assert.NoError(t, err)
	return signed
}

func newVerifierConfig(issuer string) *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: testSecret,
		Issuer:    issuer,
	}
}

func TestVerify_ValidToken(t *testing.T) {
	v := jwtverifier.New(newVerifierConfig("docsage-identity"))
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub":   "user-123",
		"email": "user@example.com",
		"iss":   "docsage-identity",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	claims, err := v.Verify(context.Background(), token)

	assert.NoError(t, err)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
}

func TestVerify_WrongSecret(t *testing.T) {
	v := jwtverifier.New(newVerifierConfig(""))
	token := signToken(t, "some-other-secret", jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_ExpiredToken(t *testing.T) {
	v := jwtverifier.New(newVerifierConfig(""))
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_WrongIssuer(t *testing.T) {
	v := jwtverifier.New(newVerifierConfig("docsage-identity"))
	token := signToken(t, testSecret, jwt.MapClaims{
		"sub": "user-123",
		"iss": "someone-else",
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_MissingSubject(t *testing.T) {
	v := jwtverifier.New(newVerifierConfig(""))
	token := signToken(t, testSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	_, err := v.Verify(context.Background(), token)

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestVerify_Garbage(t *testing.T) {
	v := jwtverifier.New(newVerifierConfig(""))

	_, err := v.Verify(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
