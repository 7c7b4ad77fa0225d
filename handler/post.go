package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/net/resp"
	"github.com/ncobase/boardfront/structs"
)

// ListPosts lists one page of a board's posts.
func (h *Handler) ListPosts(c *gin.Context) {
	page, err := h.service.Posts.List(c.Request.Context(), h.store(c), c.Param("slug"), pageParams(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, page)
}

// CreatePost writes a post.
func (h *Handler) CreatePost(c *gin.Context) {
	var body structs.PostBody
	if !bind(c, &body) {
		return
	}
	post, err := h.service.Posts.Create(c.Request.Context(), h.store(c), c.Param("slug"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, post)
}

// GetPost returns one post.
func (h *Handler) GetPost(c *gin.Context) {
	post, err := h.service.Posts.Get(c.Request.Context(), h.store(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, post)
}

// UpdatePost edits a post.
func (h *Handler) UpdatePost(c *gin.Context) {
	var body structs.PostBody
	if !bind(c, &body) {
		return
	}
	post, err := h.service.Posts.Update(c.Request.Context(), h.store(c), c.Param("id"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, post)
}

// DeletePost deletes a post. ?board=<slug> refreshes that board's listing.
func (h *Handler) DeletePost(c *gin.Context) {
	if err := h.service.Posts.Delete(c.Request.Context(), h.store(c), c.Param("id"), c.Query("board")); err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, "deleted")
}

// LikePost toggles a like.
func (h *Handler) LikePost(c *gin.Context) {
	res, err := h.service.Posts.Like(c.Request.Context(), h.store(c), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, res)
}
