package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/net/resp"
	"github.com/ncobase/boardfront/structs"
)

// Login signs in. Credential errors are rendered inline, not redirected.
func (h *Handler) Login(c *gin.Context) {
	var body structs.LoginBody
	if !bind(c, &body) {
		return
	}
	profile, err := h.service.Auth.Login(c.Request.Context(), h.store(c), &body)
	if err != nil {
		renderInline(c, err)
		return
	}
	resp.Success(c.Writer, structs.Session{LoggedIn: true, User: profile})
}

// Signup creates an account.
func (h *Handler) Signup(c *gin.Context) {
	var body structs.SignupBody
	if !bind(c, &body) {
		return
	}
	user, err := h.service.Auth.Signup(c.Request.Context(), &body)
	if err != nil {
		renderInline(c, err)
		return
	}
	resp.WithStatusCode(c.Writer, http.StatusCreated, user)
}

// Logout clears the session.
func (h *Handler) Logout(c *gin.Context) {
	h.service.Auth.Logout(c.Request.Context(), h.store(c))
	resp.Success(c.Writer, structs.Session{User: structs.Anonymous()})
}

// Session reports the cookie session.
func (h *Handler) Session(c *gin.Context) {
	resp.Success(c.Writer, h.service.Auth.Session(h.store(c)))
}

// Me returns the current user from the upstream API.
func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Auth.Me(c.Request.Context(), h.store(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	resp.Success(c.Writer, user)
}

func renderInline(c *gin.Context, err error) {
	e, ok := ecode.As(err)
	if !ok {
		e = ecode.New(ecode.KindServerError, "")
	}
	resp.Fail(c.Writer, resp.FromError(e))
}
