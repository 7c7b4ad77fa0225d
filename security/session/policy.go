// Package session turns authentication failures from the upstream API into
// browser navigation: an expired session clears the cookies and sends the
// user to sign in, a forbidden action sends them to the forbidden page.
package session

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/config"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/net/cookie"
)

// ExpiredMarker is appended to the sign-in URL after a forced sign out.
const ExpiredMarker = "session_expired"

// ErrForbidden signals a navigation to the forbidden page.
var ErrForbidden = errors.New("forbidden")

// Redirect signals a navigation to Location.
type Redirect struct {
	Location string
}

func (r *Redirect) Error() string {
	return "redirect to " + r.Location
}

// Policy holds the navigation targets.
type Policy struct {
	SignInURL    string
	ForbiddenURL string
}

// NewPolicy creates a policy from the frontend config.
func NewPolicy(cfg *config.Frontend) Policy {
	p := Policy{SignInURL: "/login", ForbiddenURL: "/forbidden"}
	if cfg != nil {
		if cfg.SignInURL != "" {
			p.SignInURL = cfg.SignInURL
		}
		if cfg.ForbiddenURL != "" {
			p.ForbiddenURL = cfg.ForbiddenURL
		}
	}
	return p
}

// ExpiredLocation is the sign-in URL carrying the expiry marker.
func (p Policy) ExpiredLocation() string {
	u, err := url.Parse(p.SignInURL)
	if err != nil {
		return p.SignInURL
	}
	q := u.Query()
	q.Set("error", ExpiredMarker)
	u.RawQuery = q.Encode()
	return u.String()
}

// Enforce applies the policy to err. Unauthorized clears the session and
// yields a *Redirect, Forbidden yields ErrForbidden. Anything else, including
// nil, yields nil and is left for the caller to render.
func (p Policy) Enforce(store cookie.TokenStore, err error) error {
	e, ok := ecode.As(err)
	if !ok {
		return nil
	}
	switch e.Kind {
	case ecode.KindUnauthorized:
		store.ClearAuth()
		return &Redirect{Location: p.ExpiredLocation()}
	case ecode.KindForbidden:
		return ErrForbidden
	default:
		return nil
	}
}

// Abort writes the navigation for an Enforce result and stops the chain.
// It reports false when there is nothing to abort with.
func (p Policy) Abort(c *gin.Context, nav error) bool {
	var redirect *Redirect
	switch {
	case errors.As(nav, &redirect):
		c.Header("Location", redirect.Location)
		c.AbortWithStatusJSON(http.StatusSeeOther, gin.H{"redirect": redirect.Location})
		return true
	case errors.Is(nav, ErrForbidden):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"redirect": p.ForbiddenURL})
		return true
	default:
		return false
	}
}

// Handle enforces err against the store and aborts when it navigates.
func (p Policy) Handle(c *gin.Context, store cookie.TokenStore, err error) bool {
	return p.Abort(c, p.Enforce(store, err))
}
