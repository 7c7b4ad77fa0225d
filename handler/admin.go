package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/net/resp"
	"github.com/ncobase/boardfront/structs"
)

// AdminListBoards lists one page of boards.
func (h *Handler) AdminListBoards(c *gin.Context) {
	page, err := h.service.Boards.AdminList(c.Request.Context(), h.store(c), pageParams(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, page)
}

// AdminCreateBoard creates a board.
func (h *Handler) AdminCreateBoard(c *gin.Context) {
	var body structs.BoardBody
	if !bind(c, &body) {
		return
	}
	board, err := h.service.Boards.Create(c.Request.Context(), h.store(c), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, board)
}

// AdminUpdateBoard updates a board. ?slug= is the current slug.
func (h *Handler) AdminUpdateBoard(c *gin.Context) {
	var body structs.BoardBody
	if !bind(c, &body) {
		return
	}
	board, err := h.service.Boards.Update(c.Request.Context(), h.store(c), c.Param("id"), c.Query("slug"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, board)
}

// AdminDeleteBoard deletes a board. ?slug= is required.
func (h *Handler) AdminDeleteBoard(c *gin.Context) {
	if err := h.service.Boards.Delete(c.Request.Context(), h.store(c), c.Param("id"), c.Query("slug")); err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, "deleted")
}

// AdminListCategories lists one page of categories.
func (h *Handler) AdminListCategories(c *gin.Context) {
	page, err := h.service.Categories.AdminList(c.Request.Context(), h.store(c), pageParams(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, page)
}

// AdminCreateCategory creates a category.
func (h *Handler) AdminCreateCategory(c *gin.Context) {
	var body structs.CategoryBody
	if !bind(c, &body) {
		return
	}
	category, err := h.service.Categories.Create(c.Request.Context(), h.store(c), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, category)
}

// AdminUpdateCategory updates a category.
func (h *Handler) AdminUpdateCategory(c *gin.Context) {
	var body structs.CategoryBody
	if !bind(c, &body) {
		return
	}
	category, err := h.service.Categories.Update(c.Request.Context(), h.store(c), c.Param("id"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, category)
}

// AdminDeleteCategory deletes a category.
func (h *Handler) AdminDeleteCategory(c *gin.Context) {
	if err := h.service.Categories.Delete(c.Request.Context(), h.store(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, "deleted")
}

// AdminListUsers lists one page of users.
func (h *Handler) AdminListUsers(c *gin.Context) {
	page, err := h.service.Users.List(c.Request.Context(), h.store(c), pageParams(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, page)
}

// AdminUpdateUserRole changes a user's role.
func (h *Handler) AdminUpdateUserRole(c *gin.Context) {
	var body structs.UserRoleBody
	if !bind(c, &body) {
		return
	}
	user, err := h.service.Users.UpdateRole(c.Request.Context(), h.store(c), c.Param("id"), &body)
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, user)
}

// AdminDeleteUser deletes a user.
func (h *Handler) AdminDeleteUser(c *gin.Context) {
	if err := h.service.Users.Delete(c.Request.Context(), h.store(c), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, "deleted")
}
