package structs

import (
	"time"

	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/types"
)

// Comment is a post comment. Soft-deleted comments arrive with placeholder
// content and author and are rendered like any other comment.
type Comment struct {
	ID             string    `json:"id"`
	Content        string    `json:"content"`
	LikeCount      int       `json:"likeCount"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
	AuthorNickname string    `json:"authorNickname"`
	ParentID       *string   `json:"parentId"`
	HasReplies     bool      `json:"hasReplies"`
}

// GetParentID implements types.ParentNode
func (c Comment) GetParentID() string {
	if c.ParentID == nil {
		return ""
	}
	return *c.ParentID
}

// CommentTree is one page of comments grouped for two-level display.
type CommentTree struct {
	Parents     []Comment            `json:"parents"`
	Children    map[string][]Comment `json:"children"`
	CurrentPage int                  `json:"currentPage"`
	TotalItems  int                  `json:"totalItems"`
	TotalPages  int                  `json:"totalPages"`
}

// BuildCommentTree groups a page of comments by parent, keeping the
// server-provided order. Depth is not checked; the upstream caps it.
func BuildCommentTree(page paging.Envelope[Comment]) CommentTree {
	g := types.GroupByParent(page.Data)
	return CommentTree{
		Parents:     g.Parents,
		Children:    g.Children,
		CurrentPage: page.CurrentPage,
		TotalItems:  page.TotalItems,
		TotalPages:  page.TotalPages,
	}
}

// CommentBody comment create form
type CommentBody struct {
	Content  string  `json:"content" validate:"required,min=1,max=1000"`
	ParentID *string `json:"parentId" validate:"omitempty,min=1"`
}

// CommentUpdateBody comment update form
type CommentUpdateBody struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
