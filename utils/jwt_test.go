package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetJWTSecretRejectsEmpty(t *testing.T) {
	assert.Error(t, SetJWTSecret(""))
}

func TestTokenRoundTrip(t *testing.T) {
	assert.NoError(t, SetJWTSecret("unit-test-secret"))

	token, err := GenerateToken(42, "staff")
	assert.NoError(t, err)

	claims, err := ParseToken(token)
	assert.NoError(t, err)
	assert.EqualValues(t, 42, claims.UserID)
	assert.Equal(t, "staff", claims.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	assert.NoError(t, SetJWTSecret("unit-test-secret"))

	_, err := ParseToken("definitely.not.ajwt")
	assert.Error(t, err)
}
