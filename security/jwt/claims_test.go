package jwt

import (
	"testing"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims jwtstd.MapClaims) string {
	t.Helper()
	token, err := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, claims).SignedString([]byte("upstream-secret"))
	require.NoError(t, err)
	return token
}

func TestParse(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := sign(t, jwtstd.MapClaims{"sub": "user-1", "exp": exp.Unix()})

	c, err := Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", c.Subject)
	assert.True(t, exp.Equal(c.ExpiresAt))
	assert.Equal(t, "user-1", Subject(token))
}

func TestParseInvalid(t *testing.T) {
	_, err := Parse("not-a-token")
	assert.ErrorIs(t, err, ErrTokenParsing)
	assert.Equal(t, "", Subject(""))
}
