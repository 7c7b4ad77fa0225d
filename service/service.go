// Package service implements the board operations on top of the upstream
// API. Every method takes the session's token store and returns either data
// or an *ecode.Error.
package service

import (
	"time"

	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/structs"
)

// SessionStore is the cookie capability the auth flows need on top of the
// token store.
type SessionStore interface {
	cookie.TokenStore
	SetUser(profile structs.Profile) error
	LoginStatus() bool
	UserStatus() structs.Profile
}

var _ SessionStore = (*cookie.Store)(nil)

// Service groups the per-resource services.
type Service struct {
	Auth       *AuthService
	Boards     *BoardService
	Categories *CategoryService
	Posts      *PostService
	Comments   *CommentService
	Users      *UserService
}

// Options tunes the services.
type Options struct {
	LogoutTimeout time.Duration
}

// New creates the services over one upstream client.
func New(c *apiclient.Client, opts Options) *Service {
	return &Service{
		Auth:       NewAuthService(c, opts.LogoutTimeout),
		Boards:     &BoardService{client: c},
		Categories: &CategoryService{client: c},
		Posts:      &PostService{client: c},
		Comments:   &CommentService{client: c},
		Users:      &UserService{client: c},
	}
}
