package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/structs"
)

// Register mounts the API routes on r.
func (h *Handler) Register(r gin.IRouter) {
	auth := r.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/signup", h.Signup)
	auth.POST("/logout", h.Logout)
	auth.GET("/session", h.Session)
	auth.GET("/me", h.policy.RequireLogin(h.cookies, h.service.Auth), h.Me)

	r.GET("/categories", h.ListCategories)
	r.GET("/boards", h.ListBoards)
	r.GET("/boards/:slug", h.GetBoard)
	r.GET("/boards/:slug/posts", h.ListPosts)
	r.POST("/boards/:slug/posts", h.CreatePost)

	r.GET("/posts/:id", h.GetPost)
	r.PUT("/posts/:id", h.UpdatePost)
	r.DELETE("/posts/:id", h.DeletePost)
	r.POST("/posts/:id/like", h.LikePost)
	r.GET("/posts/:id/comments", h.CommentTree)
	r.POST("/posts/:id/comments", h.CreateComment)

	r.PUT("/comments/:id", h.UpdateComment)
	r.DELETE("/comments/:id", h.DeleteComment)
	r.POST("/comments/:id/like", h.LikeComment)

	admin := r.Group("/admin", h.policy.RequireRole(h.cookies, h.service.Auth, structs.RoleAdmin))
	admin.GET("/boards", h.AdminListBoards)
	admin.POST("/boards", h.AdminCreateBoard)
	admin.PUT("/boards/:id", h.AdminUpdateBoard)
	admin.DELETE("/boards/:id", h.AdminDeleteBoard)
	admin.GET("/categories", h.AdminListCategories)
	admin.POST("/categories", h.AdminCreateCategory)
	admin.PUT("/categories/:id", h.AdminUpdateCategory)
	admin.DELETE("/categories/:id", h.AdminDeleteCategory)
	admin.GET("/users", h.AdminListUsers)
	admin.PATCH("/users/:id/role", h.AdminUpdateUserRole)
	admin.DELETE("/users/:id", h.AdminDeleteUser)
}
