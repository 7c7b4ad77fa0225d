package session

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/structs"
)

// Refresher renews the token pair held by a store.
type Refresher interface {
	Refresh(ctx context.Context, store cookie.TokenStore) (*structs.TokenPair, error)
}

// RequireRole gates a route group on the profile kept in the user cookie.
// The upstream API still authorizes every call; this only spares a round trip.
func (p Policy) RequireRole(opts cookie.Options, refresher Refresher, role structs.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cookie.FromGin(c, opts)
		if !p.ensureSession(c, store, refresher) {
			return
		}
		profile := store.UserStatus()
		if profile.Role == nil || *profile.Role != role {
			p.Handle(c, store, ecode.New(ecode.KindForbidden, ""))
			return
		}
		c.Next()
	}
}

// RequireLogin rejects requests without a session.
func (p Policy) RequireLogin(opts cookie.Options, refresher Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cookie.FromGin(c, opts)
		if !p.ensureSession(c, store, refresher) {
			return
		}
		c.Next()
	}
}

// ensureSession reports whether store holds a complete pair, renewing an
// expired access token first. The session is cleared only when no refresh
// token is left or the refresh fails.
func (p Policy) ensureSession(c *gin.Context, store *cookie.Store, refresher Refresher) bool {
	if store.LoginStatus() {
		return true
	}
	tokens := store.Tokens()
	if tokens.AccessToken == "" && tokens.RefreshToken != "" && refresher != nil {
		ctx := c.Request.Context()
		_, err := refresher.Refresh(ctx, store)
		if err == nil {
			return true
		}
		logger.Debugf(ctx, "session gate refresh failed: %v", err)
	}
	p.Handle(c, store, ecode.SessionExpired())
	return false
}
