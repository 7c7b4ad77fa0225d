package service

import (
	"context"
	"net/url"

	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/structs"
)

// UserService manages accounts for administrators.
type UserService struct {
	client *apiclient.Client
}

func userPath(id string) string {
	return "/users/" + url.PathEscape(id)
}

// List returns one page of users.
func (s *UserService) List(ctx context.Context, store cookie.TokenStore, params paging.Params) (*paging.Envelope[structs.User], error) {
	return pageOf[structs.User](ctx, s.client, store, "/users", params)
}

// UpdateRole changes a user's role.
func (s *UserService) UpdateRole(ctx context.Context, store cookie.TokenStore, id string, body *structs.UserRoleBody) (*structs.User, error) {
	req := apiclient.Patch(userPath(id)+"/role", body).Revalidates(TagUsers)
	return one[structs.User](ctx, s.client, store, req)
}

// Delete deletes a user.
func (s *UserService) Delete(ctx context.Context, store cookie.TokenStore, id string) error {
	return apiclient.Exec(ctx, s.client, store, apiclient.Delete(userPath(id)).Revalidates(TagUsers))
}
