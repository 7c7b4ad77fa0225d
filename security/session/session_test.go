package session

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/structs"
	"github.com/ncobase/boardfront/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeStore struct {
	pair    structs.TokenPair
	cleared int
}

func (f *fakeStore) Tokens() structs.TokenPair { return f.pair }
func (f *fakeStore) SetAccessToken(t string)   { f.pair.AccessToken = t }
func (f *fakeStore) SetRefreshToken(t string)  { f.pair.RefreshToken = t }

func (f *fakeStore) ClearAuth() {
	f.pair = structs.TokenPair{}
	f.cleared++
}

var policy = Policy{SignInURL: "/login", ForbiddenURL: "/forbidden"}

func TestEnforce(t *testing.T) {
	t.Run("unauthorized clears and redirects", func(t *testing.T) {
		store := &fakeStore{pair: structs.TokenPair{AccessToken: "a", RefreshToken: "r"}}
		nav := policy.Enforce(store, ecode.SessionExpired())

		var redirect *Redirect
		require.True(t, errors.As(nav, &redirect))
		assert.Equal(t, "/login?error=session_expired", redirect.Location)
		assert.Equal(t, 1, store.cleared)
		assert.Equal(t, structs.TokenPair{}, store.Tokens())
	})

	t.Run("forbidden keeps the session", func(t *testing.T) {
		store := &fakeStore{pair: structs.TokenPair{AccessToken: "a", RefreshToken: "r"}}
		nav := policy.Enforce(store, ecode.Classify(http.StatusForbidden, nil))
		assert.ErrorIs(t, nav, ErrForbidden)
		assert.Zero(t, store.cleared)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		store := &fakeStore{}
		for _, err := range []error{
			nil,
			errors.New("plain"),
			ecode.Network(),
			ecode.Classify(http.StatusConflict, nil),
			ecode.Classify(http.StatusNotFound, nil),
		} {
			assert.NoError(t, policy.Enforce(store, err))
		}
		assert.Zero(t, store.cleared)
	})
}

func TestExpiredLocationKeepsQuery(t *testing.T) {
	p := Policy{SignInURL: "/login?next=%2Fboards"}
	u, err := url.Parse(p.ExpiredLocation())
	require.NoError(t, err)
	assert.Equal(t, "/boards", u.Query().Get("next"))
	assert.Equal(t, ExpiredMarker, u.Query().Get("error"))
}

func TestAbort(t *testing.T) {
	t.Run("redirect", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		assert.True(t, policy.Abort(c, &Redirect{Location: "/login?error=session_expired"}))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login?error=session_expired", w.Header().Get("Location"))
		assert.JSONEq(t, `{"redirect":"/login?error=session_expired"}`, w.Body.String())
	})

	t.Run("forbidden", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		assert.True(t, policy.Abort(c, ErrForbidden))
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.JSONEq(t, `{"redirect":"/forbidden"}`, w.Body.String())
	})

	t.Run("nothing", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		assert.False(t, policy.Abort(c, nil))
		assert.False(t, c.IsAborted())
	})
}

func userCookie(t *testing.T, role structs.Role) *http.Cookie {
	b, err := json.Marshal(structs.Profile{Name: "kim", Role: types.ToPointer(role)})
	require.NoError(t, err)
	return &http.Cookie{Name: cookie.UserName, Value: url.QueryEscape(string(b))}
}

func TestRequireRole(t *testing.T) {
	r := gin.New()
	r.GET("/admin", policy.RequireRole(cookie.DefaultOptions(), nil, structs.RoleAdmin), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	serve := func(cookies ...*http.Cookie) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		for _, c := range cookies {
			req.AddCookie(c)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}
	tokens := []*http.Cookie{
		{Name: cookie.AccessTokenName, Value: "a"},
		{Name: cookie.RefreshTokenName, Value: "r"},
	}

	w := serve(append(tokens, userCookie(t, structs.RoleAdmin))...)
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(append(tokens, userCookie(t, structs.RoleUser))...)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// a stale admin profile without tokens is anonymous
	w = serve(userCookie(t, structs.RoleAdmin))
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login?error=session_expired", w.Header().Get("Location"))
}

func TestRequireLogin(t *testing.T) {
	r := gin.New()
	r.GET("/me", policy.RequireLogin(cookie.DefaultOptions(), nil), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessTokenName, Value: "a"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Contains(t, w.Header().Values("Set-Cookie"), "access_token=; Path=/; Max-Age=0; HttpOnly; SameSite=Lax")

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: cookie.AccessTokenName, Value: "a"})
	req.AddCookie(&http.Cookie{Name: cookie.RefreshTokenName, Value: "r"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

type fakeRefresher struct {
	pair  *structs.TokenPair
	calls int
}

func (f *fakeRefresher) Refresh(_ context.Context, store cookie.TokenStore) (*structs.TokenPair, error) {
	f.calls++
	if f.pair == nil {
		return nil, errors.New("refresh rejected")
	}
	store.SetAccessToken(f.pair.AccessToken)
	store.SetRefreshToken(f.pair.RefreshToken)
	return f.pair, nil
}

func TestGateRenewsExpiredAccessToken(t *testing.T) {
	serve := func(refresher Refresher) *httptest.ResponseRecorder {
		r := gin.New()
		r.GET("/admin", policy.RequireRole(cookie.DefaultOptions(), refresher, structs.RoleAdmin), func(c *gin.Context) {
			c.String(http.StatusOK, cookie.FromGin(c, cookie.DefaultOptions()).Tokens().AccessToken)
		})
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.AddCookie(&http.Cookie{Name: cookie.RefreshTokenName, Value: "r"})
		req.AddCookie(userCookie(t, structs.RoleAdmin))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("refresh succeeds", func(t *testing.T) {
		refresher := &fakeRefresher{pair: &structs.TokenPair{AccessToken: "fresh", RefreshToken: "r2"}}
		w := serve(refresher)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fresh", w.Body.String())
		assert.Equal(t, 1, refresher.calls)
		for _, c := range w.Result().Cookies() {
			assert.True(t, c.MaxAge > 0, "cookie %s must not expire", c.Name)
		}
	})

	t.Run("refresh fails", func(t *testing.T) {
		refresher := &fakeRefresher{}
		w := serve(refresher)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login?error=session_expired", w.Header().Get("Location"))
		assert.Equal(t, 1, refresher.calls)
	})

	t.Run("no refresh token", func(t *testing.T) {
		refresher := &fakeRefresher{pair: &structs.TokenPair{AccessToken: "fresh", RefreshToken: "r2"}}
		r := gin.New()
		r.GET("/me", policy.RequireLogin(cookie.DefaultOptions(), refresher), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.AddCookie(userCookie(t, structs.RoleAdmin))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Zero(t, refresher.calls)
	})
}
