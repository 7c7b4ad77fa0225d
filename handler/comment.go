package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/net/resp"
	"github.com/ncobase/boardfront/structs"
)

// CommentTree returns one page of comments grouped by parent.
func (h *Handler) CommentTree(c *gin.Context) {
	tree, err := h.service.Comments.Tree(c.Request.Context(), h.store(c), c.Param("id"), pageParams(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, tree)
}

// CreateComment adds a comment or reply to a post.
func (h *Handler) CreateComment(c *gin.Context) {
	var body structs.CommentBody
	if !bind(c, &body) {
		return
	}
	comment, err := h.service.Comments.Create(c.Request.Context(), h.store(c), c.Param("id"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, comment)
}

// UpdateComment edits a comment. ?postId= is required.
func (h *Handler) UpdateComment(c *gin.Context) {
	var body structs.CommentUpdateBody
	if !bind(c, &body) {
		return
	}
	comment, err := h.service.Comments.Update(c.Request.Context(), h.store(c), c.Param("id"), c.Query("postId"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, comment)
}

// DeleteComment deletes a comment. ?postId= is required.
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.service.Comments.Delete(c.Request.Context(), h.store(c), c.Param("id"), c.Query("postId")); err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, "deleted")
}

// LikeComment toggles a like. ?postId= is required.
func (h *Handler) LikeComment(c *gin.Context) {
	res, err := h.service.Comments.Like(c.Request.Context(), h.store(c), c.Param("id"), c.Query("postId"))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, res)
}
