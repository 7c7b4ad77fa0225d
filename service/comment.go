package service

import (
	"context"
	"net/url"

	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/structs"
)

// CommentService reads and writes comments.
type CommentService struct {
	client *apiclient.Client
}

func commentPath(id string) string {
	return "/comments/" + url.PathEscape(id)
}

func postCommentsPath(postID string) string {
	return postPath(postID) + "/comments"
}

// Tree returns one page of a post's comments grouped by parent.
func (s *CommentService) Tree(ctx context.Context, store cookie.TokenStore, postID string, params paging.Params) (*structs.CommentTree, error) {
	page, err := pageOf[structs.Comment](ctx, s.client, store, postCommentsPath(postID), params, TagComments(postID))
	if err != nil {
		return nil, err
	}
	tree := structs.BuildCommentTree(*page)
	return &tree, nil
}

// Create adds a comment or a reply.
func (s *CommentService) Create(ctx context.Context, store cookie.TokenStore, postID string, body *structs.CommentBody) (*structs.Comment, error) {
	req := apiclient.Post(postCommentsPath(postID), body).Revalidates(TagComments(postID), TagPost(postID))
	return one[structs.Comment](ctx, s.client, store, req)
}

// Update edits a comment. postID is the post the comment belongs to.
func (s *CommentService) Update(ctx context.Context, store cookie.TokenStore, id, postID string, body *structs.CommentUpdateBody) (*structs.Comment, error) {
	if postID == "" {
		return nil, errPostIDRequired()
	}
	req := apiclient.Patch(commentPath(id), body).Revalidates(TagComments(postID))
	return one[structs.Comment](ctx, s.client, store, req)
}

// Delete soft-deletes a comment upstream.
func (s *CommentService) Delete(ctx context.Context, store cookie.TokenStore, id, postID string) error {
	if postID == "" {
		return errPostIDRequired()
	}
	req := apiclient.Delete(commentPath(id)).Revalidates(TagComments(postID), TagPost(postID))
	return apiclient.Exec(ctx, s.client, store, req)
}

// Like toggles the caller's like on a comment.
func (s *CommentService) Like(ctx context.Context, store cookie.TokenStore, id, postID string) (*structs.LikeResult, error) {
	if postID == "" {
		return nil, errPostIDRequired()
	}
	req := apiclient.Post(commentPath(id)+"/like", nil).Revalidates(TagComments(postID))
	return one[structs.LikeResult](ctx, s.client, store, req)
}

// errPostIDRequired rejects comment mutations that could not revalidate
// the post's comment tree.
func errPostIDRequired() error {
	return ecode.New(ecode.KindBadRequest, ecode.FieldIsRequired("postId"))
}
