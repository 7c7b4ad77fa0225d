package service

import (
	"context"
	"net/url"

	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/structs"
)

// CategoryService reads and manages categories.
type CategoryService struct {
	client *apiclient.Client
}

// List returns all categories with their boards.
func (s *CategoryService) List(ctx context.Context, store cookie.TokenStore) ([]structs.Category, error) {
	req := apiclient.Get("/categories", nil).Tagged(TagCategories)
	return listOf[structs.Category](ctx, s.client, store, req)
}

// AdminList returns one page of categories.
func (s *CategoryService) AdminList(ctx context.Context, store cookie.TokenStore, params paging.Params) (*paging.Envelope[structs.Category], error) {
	return pageOf[structs.Category](ctx, s.client, store, "/categories", params)
}

// Create creates a category.
func (s *CategoryService) Create(ctx context.Context, store cookie.TokenStore, body *structs.CategoryBody) (*structs.Category, error) {
	req := apiclient.Post("/categories", body).Revalidates(TagCategories)
	return one[structs.Category](ctx, s.client, store, req)
}

// Update updates a category.
func (s *CategoryService) Update(ctx context.Context, store cookie.TokenStore, id string, body *structs.CategoryBody) (*structs.Category, error) {
	req := apiclient.Patch("/categories/"+url.PathEscape(id), body).Revalidates(TagCategories)
	return one[structs.Category](ctx, s.client, store, req)
}

// Delete deletes a category.
func (s *CategoryService) Delete(ctx context.Context, store cookie.TokenStore, id string) error {
	req := apiclient.Delete("/categories/"+url.PathEscape(id)).Revalidates(TagCategories, TagBoards)
	return apiclient.Exec(ctx, s.client, store, req)
}
