package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestService_RoundTrip(t *testing.T) {
	svc := New("test-secret", time.Hour)

	token, err := svc.GenerateToken(7, "worker")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, int64(7), claims.UserID)
	assert.Equal(t, "worker", claims.Role)
}

func TestService_WrongSecret(t *testing.T) {
	issuer := New("secret-a", time.Hour)
	verifier := New("secret-b", time.Hour)

	token, _ := issuer.GenerateToken(7, "customer")

	_, err := verifier.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_ExpiredToken(t *testing.T) {
	svc := New("test-secret", -time.Minute)

	token, _ := svc.GenerateToken(7, "customer")

	_, err := svc.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_Garbage(t *testing.T) {
	svc := New("test-secret", time.Hour)

	for _, bad := range []string{"", "abc", "a.b.c"} {
		_, err := svc.ValidateToken(bad)
		assert.ErrorIs(t, err, ErrInvalidToken, "token %q", bad)
	}
}
