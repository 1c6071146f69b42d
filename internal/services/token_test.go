package services

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"bloglist/internal/config"
	"bloglist/internal/storage"
)

func testTokenService(secret string, ttl time.Duration) *TokenService {
	cfg := config.Config{}
	cfg.Token.Secret = secret
	cfg.Token.TTL = ttl
	return NewTokenService(cfg)
}

func TestTokenIssueVerifyRoundtrip(t *testing.T) {
	svc := testTokenService("unit-test-secret", time.Hour)
	u := &storage.User{ID: 42, Username: "mluukkai"}

	token, exp, err := svc.Issue(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.True(t, exp.After(time.Now()))

	ident, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, uint64(42), ident.UserID)
	require.Equal(t, "mluukkai", ident.Username)
}

func TestTokenVerifyWrongSecret(t *testing.T) {
	issuer := testTokenService("secret-a", time.Hour)
	verifier := testTokenService("secret-b", time.Hour)

	token, _, err := issuer.Issue(&storage.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyMalformed(t *testing.T) {
	svc := testTokenService("unit-test-secret", time.Hour)
	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(raw); err == nil {
			t.Fatalf("Verify(%q) succeeded, want error", raw)
		}
	}
}

func TestTokenVerifyExpired(t *testing.T) {
	svc := testTokenService("unit-test-secret", -time.Minute)
	token, _, err := svc.Issue(&storage.User{ID: 7, Username: "bob"})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenVerifyMissingIdentityClaim(t *testing.T) {
	// 同一密钥签名但不携带 uid 声明：合法签名也不构成身份。
	secret := "unit-test-secret"
	claims := jwt.MapClaims{
		"sub": "nobody",
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	svc := testTokenService(secret, time.Hour)
	_, err = svc.Verify(raw)
	require.ErrorIs(t, err, ErrInvalidToken)
}
