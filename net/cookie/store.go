package cookie

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/structs"
)

const storeKey = "cookie_store"

// TokenStore is the token capability the request pipeline depends on.
type TokenStore interface {
	Tokens() structs.TokenPair
	SetAccessToken(token string)
	SetRefreshToken(token string)
	ClearAuth()
}

// Store is the cookie jar of one request/response pair.
type Store struct {
	r    *http.Request
	w    http.ResponseWriter
	opts Options

	mu sync.Mutex
	// pending holds values written during this request; nil marks a cleared cookie.
	pending map[string]*string
}

var _ TokenStore = (*Store)(nil)

// NewStore binds a store to a request and its response writer.
func NewStore(w http.ResponseWriter, r *http.Request, opts Options) *Store {
	return &Store{r: r, w: w, opts: opts, pending: make(map[string]*string)}
}

// FromGin returns the store of the current gin request, creating it once.
func FromGin(c *gin.Context, opts Options) *Store {
	if v, ok := c.Get(storeKey); ok {
		if s, ok := v.(*Store); ok {
			return s
		}
	}
	s := NewStore(c.Writer, c.Request, opts)
	c.Set(storeKey, s)
	return s
}

// get reads a cookie, pending writes first.
func (s *Store) get(name string) string {
	s.mu.Lock()
	v, written := s.pending[name]
	s.mu.Unlock()
	if written {
		if v == nil {
			return ""
		}
		return *v
	}
	if s.r == nil {
		return ""
	}
	value, err := Get(s.r, name)
	if err != nil {
		return ""
	}
	return value
}

// set writes a cookie and records it as pending.
func (s *Store) set(name, value string, maxAge int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if maxAge < 0 {
		s.pending[name] = nil
	} else {
		s.pending[name] = &value
	}
	replaceCookie(s.w, s.opts.newCookie(name, value, maxAge))
}

// Tokens returns the current token pair; absent cookies yield empty strings.
func (s *Store) Tokens() structs.TokenPair {
	return structs.TokenPair{
		AccessToken:  s.get(AccessTokenName),
		RefreshToken: s.get(RefreshTokenName),
	}
}

// SetAccessToken sets access token cookie
func (s *Store) SetAccessToken(token string) {
	s.set(AccessTokenName, token, s.opts.AccessMaxAge)
}

// SetRefreshToken sets refresh token cookie
func (s *Store) SetRefreshToken(token string) {
	s.set(RefreshTokenName, token, s.opts.RefreshMaxAge)
}

// SetTokens sets both token cookies.
func (s *Store) SetTokens(pair structs.TokenPair) {
	s.SetAccessToken(pair.AccessToken)
	s.SetRefreshToken(pair.RefreshToken)
}

// SetUser stores the profile snapshot. The JSON is URL-escaped because raw
// JSON is not a valid cookie value.
func (s *Store) SetUser(profile structs.Profile) error {
	b, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode user cookie: %w", err)
	}
	s.set(UserName, url.QueryEscape(string(b)), s.opts.RefreshMaxAge)
	return nil
}

// ClearAuth expires the token and user cookies together.
func (s *Store) ClearAuth() {
	for _, name := range []string{AccessTokenName, RefreshTokenName, UserName} {
		s.set(name, "", -1)
	}
}

// LoginStatus reports whether both tokens are present.
func (s *Store) LoginStatus() bool {
	return s.Tokens().Complete()
}

// UserStatus returns the stored profile, or the anonymous profile when the
// session is not logged in or the cookie cannot be decoded.
func (s *Store) UserStatus() structs.Profile {
	if !s.LoginStatus() {
		return structs.Anonymous()
	}
	raw := s.get(UserName)
	if raw == "" {
		return structs.Anonymous()
	}
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		return structs.Anonymous()
	}
	var profile structs.Profile
	if err := json.Unmarshal([]byte(decoded), &profile); err != nil {
		return structs.Anonymous()
	}
	if profile.Role != nil && !profile.Role.Valid() {
		profile.Role = nil
	}
	return profile
}
