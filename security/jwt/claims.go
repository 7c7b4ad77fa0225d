// Package jwt reads claims from access tokens issued by the upstream API.
//
// boardfront never holds the signing key; tokens are decoded without
// verification and only used for log fields. The upstream API remains the
// authority on every request.
package jwt

import (
	"errors"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
)

// ErrTokenParsing is returned for tokens that are not well-formed JWTs.
var ErrTokenParsing = errors.New("token parsing error")

// Claims is the unverified view of an access token.
type Claims struct {
	Subject   string
	ExpiresAt time.Time
}

// Parse decodes token without verifying its signature.
func Parse(token string) (*Claims, error) {
	if token == "" {
		return nil, ErrTokenParsing
	}
	mc := jwtstd.MapClaims{}
	if _, _, err := jwtstd.NewParser().ParseUnverified(token, mc); err != nil {
		return nil, errors.Join(ErrTokenParsing, err)
	}
	c := &Claims{}
	if sub, err := mc.GetSubject(); err == nil {
		c.Subject = sub
	}
	if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
		c.ExpiresAt = exp.Time
	}
	return c, nil
}

// Subject returns the sub claim, or "" when token cannot be decoded.
func Subject(token string) string {
	c, err := Parse(token)
	if err != nil {
		return ""
	}
	return c.Subject
}
