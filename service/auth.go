package service

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/ncobase/boardfront/ctxutil"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/structs"
)

const (
	loginPath  = "/auth/login"
	signupPath = "/auth/signup"
	logoutPath = "/auth/logout"
	mePath     = "/users/me"
)

// AuthService handles sign in and the session cookies.
type AuthService struct {
	client        *apiclient.Client
	logoutTimeout time.Duration
}

// NewAuthService creates the auth service.
func NewAuthService(c *apiclient.Client, logoutTimeout time.Duration) *AuthService {
	if logoutTimeout <= 0 {
		logoutTimeout = ctxutil.DefaultAsyncTimeout
	}
	return &AuthService{client: c, logoutTimeout: logoutTimeout}
}

// Login signs in and stores the issued tokens and profile.
func (s *AuthService) Login(ctx context.Context, store SessionStore, body *structs.LoginBody) (structs.Profile, error) {
	res, err := apiclient.Call[structs.LoginResult](ctx, s.client, apiclient.Post(loginPath, body))
	if err != nil {
		return structs.Anonymous(), err
	}
	if !res.Complete() {
		logger.Warnf(ctx, "login response without a complete token pair")
		return structs.Anonymous(), ecode.New(ecode.KindServerError, "invalid response body")
	}

	store.SetAccessToken(res.AccessToken)
	store.SetRefreshToken(res.RefreshToken)
	profile := res.User.Profile()
	if err := store.SetUser(profile); err != nil {
		logger.Errorf(ctx, "store user cookie: %v", err)
	}
	logger.Infof(ctx, "user %s signed in", res.User.ID)
	return profile, nil
}

// Signup creates an account. It does not sign in.
func (s *AuthService) Signup(ctx context.Context, body *structs.SignupBody) (*structs.User, error) {
	return apiclient.Call[*structs.User](ctx, s.client, apiclient.Post(signupPath, body))
}

// Logout revokes the refresh token upstream on a best effort basis and always
// clears the local cookies.
func (s *AuthService) Logout(ctx context.Context, store SessionStore) {
	tokens := store.Tokens()
	defer store.ClearAuth()
	if tokens.RefreshToken == "" {
		return
	}

	ctx, cancel := ctxutil.WithAsyncContext(ctx, s.logoutTimeout)
	defer cancel()

	req := apiclient.Post(logoutPath, map[string]string{"refresh_token": tokens.RefreshToken})
	if tokens.AccessToken != "" {
		req.Header = http.Header{"Authorization": {"Bearer " + tokens.AccessToken}}
	}
	if _, err := apiclient.Call[json.RawMessage](ctx, s.client, req); err != nil {
		logger.Warnf(ctx, "upstream logout failed: %v", err)
	}
}

// Refresh renews the session's token pair. Route gates use it when only the
// access token has expired.
func (s *AuthService) Refresh(ctx context.Context, store cookie.TokenStore) (*structs.TokenPair, error) {
	return s.client.Refresh(ctx, store)
}

// Session reports the login state from the cookies alone.
func (s *AuthService) Session(store SessionStore) structs.Session {
	return structs.Session{LoggedIn: store.LoginStatus(), User: store.UserStatus()}
}

// Me loads the current user and refreshes the profile cookie.
func (s *AuthService) Me(ctx context.Context, store SessionStore) (*structs.User, error) {
	user, err := apiclient.Fetch[*structs.User](ctx, s.client, store, apiclient.Get(mePath, nil))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ecode.New(ecode.KindServerError, "invalid response body")
	}
	if err := store.SetUser(user.Profile()); err != nil {
		logger.Errorf(ctx, "store user cookie: %v", err)
	}
	return user, nil
}
