package service

import (
	"context"
	"net/url"

	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/structs"
)

// PostService reads and writes posts.
type PostService struct {
	client *apiclient.Client
}

func postPath(id string) string {
	return "/posts/" + url.PathEscape(id)
}

func boardPostsPath(boardSlug string) string {
	return "/boards/" + url.PathEscape(boardSlug) + "/posts"
}

// List returns one page of a board's posts.
func (s *PostService) List(ctx context.Context, store cookie.TokenStore, boardSlug string, params paging.Params) (*paging.Envelope[structs.Post], error) {
	return pageOf[structs.Post](ctx, s.client, store, boardPostsPath(boardSlug), params, TagPosts(boardSlug))
}

// Get returns one post. Reads count views upstream, so they are not cached.
func (s *PostService) Get(ctx context.Context, store cookie.TokenStore, id string) (*structs.Post, error) {
	return one[structs.Post](ctx, s.client, store, apiclient.Get(postPath(id), nil))
}

// Create writes a post to a board.
func (s *PostService) Create(ctx context.Context, store cookie.TokenStore, boardSlug string, body *structs.PostBody) (*structs.Post, error) {
	req := apiclient.Post(boardPostsPath(boardSlug), body).Revalidates(TagPosts(boardSlug))
	return one[structs.Post](ctx, s.client, store, req)
}

// Update edits a post.
func (s *PostService) Update(ctx context.Context, store cookie.TokenStore, id string, body *structs.PostBody) (*structs.Post, error) {
	req := apiclient.Patch(postPath(id), body).Revalidates(TagPost(id))
	post, err := one[structs.Post](ctx, s.client, store, req)
	if err != nil {
		return nil, err
	}
	s.client.Invalidate(ctx, TagPosts(post.BoardSlug))
	return post, nil
}

// Delete deletes a post. boardSlug, when known, refreshes the board listing.
func (s *PostService) Delete(ctx context.Context, store cookie.TokenStore, id, boardSlug string) error {
	tags := []string{TagPost(id), TagComments(id)}
	if boardSlug != "" {
		tags = append(tags, TagPosts(boardSlug))
	}
	return apiclient.Exec(ctx, s.client, store, apiclient.Delete(postPath(id)).Revalidates(tags...))
}

// Like toggles the caller's like on a post.
func (s *PostService) Like(ctx context.Context, store cookie.TokenStore, id string) (*structs.LikeResult, error) {
	req := apiclient.Post(postPath(id)+"/like", nil).Revalidates(TagPost(id))
	return one[structs.LikeResult](ctx, s.client, store, req)
}
