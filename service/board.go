package service

import (
	"context"
	"net/url"

	"github.com/gosimple/slug"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/structs"
)

// BoardService reads and manages boards.
type BoardService struct {
	client *apiclient.Client
}

// List returns the boards, optionally of one category.
func (s *BoardService) List(ctx context.Context, store cookie.TokenStore, q *structs.BoardQuery) ([]structs.Board, error) {
	var query url.Values
	if q != nil && q.CategoryID != "" {
		query = url.Values{"categoryId": {q.CategoryID}}
	}
	req := apiclient.Get("/boards", query).Tagged(TagBoards)
	return listOf[structs.Board](ctx, s.client, store, req)
}

// Get returns one board by slug.
func (s *BoardService) Get(ctx context.Context, store cookie.TokenStore, boardSlug string) (*structs.Board, error) {
	req := apiclient.Get("/boards/"+url.PathEscape(boardSlug), nil).Tagged(TagBoard(boardSlug))
	return one[structs.Board](ctx, s.client, store, req)
}

// AdminList returns one page of all boards.
func (s *BoardService) AdminList(ctx context.Context, store cookie.TokenStore, params paging.Params) (*paging.Envelope[structs.Board], error) {
	return pageOf[structs.Board](ctx, s.client, store, "/boards/admin", params)
}

// Create creates a board. An empty slug is derived from the name.
func (s *BoardService) Create(ctx context.Context, store cookie.TokenStore, body *structs.BoardBody) (*structs.Board, error) {
	if body.Slug == "" {
		body.Slug = slug.Make(body.Name)
	}
	if !slug.IsSlug(body.Slug) {
		return nil, ecode.New(ecode.KindBadRequest, ecode.FieldIsInvalid("slug"))
	}
	req := apiclient.Post("/boards", body).Revalidates(TagBoards, TagCategories)
	return one[structs.Board](ctx, s.client, store, req)
}

// Update updates a board. boardSlug is the slug before the update; a rename
// also drops the cached reads under the old slug.
func (s *BoardService) Update(ctx context.Context, store cookie.TokenStore, id, boardSlug string, body *structs.BoardBody) (*structs.Board, error) {
	if boardSlug == "" {
		return nil, ecode.New(ecode.KindBadRequest, ecode.FieldIsRequired("slug"))
	}
	if body.Slug != "" && !slug.IsSlug(body.Slug) {
		return nil, ecode.New(ecode.KindBadRequest, ecode.FieldIsInvalid("slug"))
	}
	req := apiclient.Patch("/boards/"+url.PathEscape(id), body).Revalidates(boardTags(boardSlug)...)
	board, err := one[structs.Board](ctx, s.client, store, req)
	if err != nil {
		return nil, err
	}
	if board.Slug != "" && board.Slug != boardSlug {
		s.client.Invalidate(ctx, TagBoard(board.Slug), TagPosts(board.Slug))
	}
	return board, nil
}

// Delete deletes a board and drops every cached read of it.
func (s *BoardService) Delete(ctx context.Context, store cookie.TokenStore, id, boardSlug string) error {
	if boardSlug == "" {
		return ecode.New(ecode.KindBadRequest, ecode.FieldIsRequired("slug"))
	}
	req := apiclient.Delete("/boards/"+url.PathEscape(id)).Revalidates(boardTags(boardSlug)...)
	return apiclient.Exec(ctx, s.client, store, req)
}

func boardTags(boardSlug string) []string {
	return []string{TagBoards, TagCategories, TagBoard(boardSlug), TagPosts(boardSlug)}
}
