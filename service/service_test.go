package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/structs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type tagRecorder struct {
	mu   sync.Mutex
	tags []string
}

func (r *tagRecorder) Invalidate(_ context.Context, tags ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tags = append(r.tags, tags...)
	return nil
}

func setup(t *testing.T, h http.HandlerFunc) (*Service, *tagRecorder) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	rec := &tagRecorder{}
	c, err := apiclient.New(srv.URL, apiclient.WithRevalidator(rec))
	require.NoError(t, err)
	return New(c, Options{}), rec
}

func newStore(cookies ...*http.Cookie) (*cookie.Store, *httptest.ResponseRecorder) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w := httptest.NewRecorder()
	return cookie.NewStore(w, r, cookie.DefaultOptions()), w
}

func loggedIn() []*http.Cookie {
	return []*http.Cookie{
		{Name: cookie.AccessTokenName, Value: "acc"},
		{Name: cookie.RefreshTokenName, Value: "ref"},
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestLogin(t *testing.T) {
	svc, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, loginPath, r.URL.Path)
		var body structs.LoginBody
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if body.Password != "correct-horse" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  "acc",
			"refresh_token": "ref",
			"user":          map[string]any{"id": "1", "name": "Kim", "nickname": "kim", "email": "kim@example.com", "role": "admin"},
		})
	})

	t.Run("success stores the session", func(t *testing.T) {
		store, w := newStore()
		profile, err := svc.Auth.Login(context.Background(), store, &structs.LoginBody{Email: "kim@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.True(t, profile.IsAdmin())

		session := svc.Auth.Session(store)
		assert.True(t, session.LoggedIn)
		assert.Equal(t, "kim", session.User.Nickname)
		assert.Len(t, w.Result().Cookies(), 3)
	})

	t.Run("bad credentials are not a session expiry", func(t *testing.T) {
		store, _ := newStore()
		_, err := svc.Auth.Login(context.Background(), store, &structs.LoginBody{Email: "kim@example.com", Password: "wrong-pass"})
		e, ok := ecode.As(err)
		require.True(t, ok)
		assert.Equal(t, ecode.KindUnauthorized, e.Kind)
		assert.Equal(t, "Invalid credentials", e.Message)
		assert.False(t, store.LoginStatus())
	})
}

func TestLoginIncompleteTokens(t *testing.T) {
	svc, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"access_token": "acc"})
	})
	store, _ := newStore()
	_, err := svc.Auth.Login(context.Background(), store, &structs.LoginBody{})
	assert.True(t, ecode.IsKind(err, ecode.KindServerError))
	assert.False(t, store.LoginStatus())
}

func TestLogoutClearsEvenWhenUpstreamFails(t *testing.T) {
	var got map[string]string
	var auth string
	svc, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&got)
		auth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusInternalServerError)
	})
	store, w := newStore(loggedIn()...)

	svc.Auth.Logout(context.Background(), store)

	assert.Equal(t, "ref", got["refresh_token"])
	assert.Equal(t, "Bearer acc", auth)
	assert.False(t, store.LoginStatus())
	for _, c := range w.Result().Cookies() {
		assert.True(t, c.MaxAge < 0)
	}
}

func TestMeRefreshesProfile(t *testing.T) {
	svc, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer acc", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, structs.User{ID: "1", Name: "Kim", Nickname: "kimmy", Role: structs.RoleUser})
	})
	store, _ := newStore(loggedIn()...)

	user, err := svc.Auth.Me(context.Background(), store)
	require.NoError(t, err)
	assert.Equal(t, "1", user.ID)
	assert.Equal(t, "kimmy", store.UserStatus().Nickname)
}

func TestCommentTree(t *testing.T) {
	svc, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/posts/p1/comments", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		_, _ = io.WriteString(w, `{
			"data": [
				{"id": "c1", "content": "first", "parentId": null},
				{"id": "c2", "content": "reply", "parentId": "c1"},
				{"id": "c3", "content": "deleted", "parentId": null},
				{"id": "c4", "content": "reply 2", "parentId": "c1"}
			],
			"currentPage": 2, "totalItems": 24, "totalPages": 2
		}`)
	})
	store, _ := newStore()

	tree, err := svc.Comments.Tree(context.Background(), store, "p1", paging.Params{Page: 2})
	require.NoError(t, err)
	require.Len(t, tree.Parents, 2)
	assert.Equal(t, "c1", tree.Parents[0].ID)
	assert.Equal(t, "c3", tree.Parents[1].ID)
	require.Len(t, tree.Children["c1"], 2)
	assert.Equal(t, "c2", tree.Children["c1"][0].ID)
	assert.Equal(t, "c4", tree.Children["c1"][1].ID)
	assert.Equal(t, 2, tree.CurrentPage)
	assert.Equal(t, 2, tree.TotalPages)
}

func TestBoardCreateDerivesSlug(t *testing.T) {
	var sent structs.BoardBody
	svc, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		writeJSON(w, http.StatusCreated, structs.Board{ID: "b1", Slug: sent.Slug, Name: sent.Name})
	})
	store, _ := newStore(loggedIn()...)

	board, err := svc.Boards.Create(context.Background(), store, &structs.BoardBody{Name: "Free Talk", Type: structs.BoardTypeGeneral, CategoryID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "free-talk", sent.Slug)
	assert.Equal(t, "free-talk", board.Slug)
	assert.Equal(t, []string{TagBoards, TagCategories}, rec.tags)
}

func TestBoardConflict(t *testing.T) {
	svc, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]string{"message": `Slug "foo" is already in use`})
	})
	store, _ := newStore(loggedIn()...)

	_, err := svc.Boards.Create(context.Background(), store, &structs.BoardBody{Slug: "foo", Name: "Foo", Type: structs.BoardTypeGeneral, CategoryID: "c1"})
	e, ok := ecode.As(err)
	require.True(t, ok)
	assert.Equal(t, ecode.KindConflict, e.Kind)
	assert.Equal(t, `Slug "foo" is already in use`, e.Message)
	assert.Empty(t, rec.tags)
}

func TestPostListPastLastPage(t *testing.T) {
	svc, _ := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/boards/free/posts", r.URL.Path)
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		_, _ = io.WriteString(w, `{"data": null, "currentPage": 9, "totalItems": 3, "totalPages": 1}`)
	})
	store, _ := newStore()

	page, err := svc.Posts.List(context.Background(), store, "free", paging.Params{Page: 9})
	require.NoError(t, err)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.Equal(t, 9, page.CurrentPage)
}

func TestPostDeleteRevalidates(t *testing.T) {
	svc, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.WriteHeader(http.StatusNoContent)
	})
	store, _ := newStore(loggedIn()...)

	require.NoError(t, svc.Posts.Delete(context.Background(), store, "p1", "free"))
	assert.ElementsMatch(t, []string{TagPost("p1"), TagComments("p1"), TagPosts("free")}, rec.tags)
}

func TestUserUpdateRole(t *testing.T) {
	svc, rec := setup(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/u1/role", r.URL.Path)
		assert.Equal(t, http.MethodPatch, r.Method)
		writeJSON(w, http.StatusOK, structs.User{ID: "u1", Role: structs.RoleBot})
	})
	store, _ := newStore(loggedIn()...)

	user, err := svc.Users.UpdateRole(context.Background(), store, "u1", &structs.UserRoleBody{Role: structs.RoleBot})
	require.NoError(t, err)
	assert.Equal(t, structs.RoleBot, user.Role)
	assert.Equal(t, []string{TagUsers}, rec.tags)
}
