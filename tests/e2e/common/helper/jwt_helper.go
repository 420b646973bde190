//go:build e2e

package helper

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// MintAccessToken produces a token shaped like the identity backend's,
// signed with the test secret.
func MintAccessToken(t *testing.T, secret string, userID uuid.UUID) string {
	t.Helper()

	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err, "failed to sign test token")
	return signed
}
