package jwt

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	tok, err := svc.GenerateToken("boss@field.vn", "owner")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "boss@field.vn", claims.Subject)
	assert.Equal(t, "owner", claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 2*time.Second)
}

func TestService_RejectsAfterExpiry(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	svc := New("test-secret", 30*time.Minute)
	svc.now = func() time.Time { return issuedAt }

	tok, err := svc.GenerateToken("mgr@field.vn", "manager")
	require.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(29 * time.Minute) }
	_, err = svc.ValidateToken(tok)
	assert.NoError(t, err)

	svc.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	_, err = svc.ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_RejectsForeignSecret(t *testing.T) {
	tok, err := New("secret-a", time.Hour).GenerateToken("a@field.vn", "admin")
	require.NoError(t, err)

	_, err = New("secret-b", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_RejectsOtherAlgorithms(t *testing.T) {
	claims := Claims{
		Role: "admin",
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   "a@field.vn",
			ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodNone, claims).SignedString(jwtlib.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = New("secret", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_RejectsMissingSubject(t *testing.T) {
	tok, err := New("secret", time.Hour).GenerateToken("", "admin")
	require.NoError(t, err)

	_, err = New("secret", time.Hour).ValidateToken(tok)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
