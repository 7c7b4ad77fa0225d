package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/net/resp"
	"github.com/ncobase/boardfront/structs"
)

// ListCategories lists categories with their boards.
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.service.Categories.List(c.Request.Context(), h.store(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, categories)
}

// ListBoards lists boards, optionally by category.
func (h *Handler) ListBoards(c *gin.Context) {
	var q structs.BoardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Debugf(c.Request.Context(), "ignoring bad board query: %v", err)
	}
	boards, err := h.service.Boards.List(c.Request.Context(), h.store(c), &q)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, boards)
}

// GetBoard returns one board.
func (h *Handler) GetBoard(c *gin.Context) {
	board, err := h.service.Boards.Get(c.Request.Context(), h.store(c), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, board)
}
