package cookie

import (
	"net/http"
	"strings"

	"github.com/ncobase/boardfront/config"
)

// Cookie names
const (
	AccessTokenName  = "access_token"
	RefreshTokenName = "refresh_token"
	UserName         = "user"
)

// Cookie max ages (in seconds)
const (
	AccessTokenMaxAge  = 60 * 15          // 15 minutes
	RefreshTokenMaxAge = 60 * 60 * 24 * 7 // 7 days
	UserMaxAge         = RefreshTokenMaxAge
)

// Options are the attributes shared by all session cookies.
type Options struct {
	Domain        string
	Secure        bool
	AccessMaxAge  int
	RefreshMaxAge int
}

// DefaultOptions returns development defaults: no domain, not Secure.
func DefaultOptions() Options {
	return Options{
		AccessMaxAge:  AccessTokenMaxAge,
		RefreshMaxAge: RefreshTokenMaxAge,
	}
}

// OptionsFromConfig derives cookie options from the run mode and auth config.
func OptionsFromConfig(cfg *config.Config) Options {
	opts := DefaultOptions()
	opts.Secure = cfg.IsProduction()
	if cfg.Auth == nil {
		return opts
	}
	if cfg.Auth.AccessMaxAge > 0 {
		opts.AccessMaxAge = cfg.Auth.AccessMaxAge
	}
	if cfg.Auth.RefreshMaxAge > 0 {
		opts.RefreshMaxAge = cfg.Auth.RefreshMaxAge
	}
	if c := cfg.Auth.Cookie; c != nil {
		opts.Domain = c.Domain
		if c.Secure != nil {
			opts.Secure = *c.Secure
		}
	}
	return opts
}

// formatDomain formats the domain
func formatDomain(domain string) string {
	if domain == "" {
		return ""
	}
	if domain != "localhost" && !strings.HasPrefix(domain, ".") {
		return "." + domain
	}
	return domain
}

// newCookie builds a session cookie. maxAge < 0 expires it.
func (o Options) newCookie(name, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		MaxAge:   maxAge,
		Path:     "/",
		Domain:   formatDomain(o.Domain),
		Secure:   o.Secure,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// replaceCookie writes c, dropping any Set-Cookie already queued for the same name.
func replaceCookie(w http.ResponseWriter, c *http.Cookie) {
	h := w.Header()
	prefix := c.Name + "="
	var kept []string
	for _, line := range h.Values("Set-Cookie") {
		if !strings.HasPrefix(line, prefix) {
			kept = append(kept, line)
		}
	}
	h.Del("Set-Cookie")
	for _, line := range kept {
		h.Add("Set-Cookie", line)
	}
	if v := c.String(); v != "" {
		h.Add("Set-Cookie", v)
	}
}

// Get gets cookie value by name
func Get(r *http.Request, key string) (string, error) {
	cookie, err := r.Cookie(key)
	if err != nil {
		return "", err
	}
	return cookie.Value, nil
}
