// Package handler provides the JSON endpoints called by the browser.
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/net/resp"
	"github.com/ncobase/boardfront/paging"
	"github.com/ncobase/boardfront/security/session"
	"github.com/ncobase/boardfront/service"
	"github.com/ncobase/boardfront/validator"
)

// Handler serves the /api routes.
type Handler struct {
	service *service.Service
	policy  session.Policy
	cookies cookie.Options
}

// New creates a handler.
func New(svc *service.Service, policy session.Policy, cookies cookie.Options) *Handler {
	return &Handler{service: svc, policy: policy, cookies: cookies}
}

func (h *Handler) store(c *gin.Context) *cookie.Store {
	return cookie.FromGin(c, h.cookies)
}

// bind decodes the JSON body into dst and validates it. It writes the 400
// response itself and reports false on failure.
func bind[T any](c *gin.Context, dst *T) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		resp.Fail(c.Writer, resp.BadRequest(err.Error()))
		c.Abort()
		return false
	}
	if errs := validator.ValidateStruct(dst, validator.Language(c.GetHeader("Accept-Language"))); len(errs) > 0 {
		resp.Fail(c.Writer, resp.InvalidParams(errs))
		c.Abort()
		return false
	}
	return true
}

func pageParams(c *gin.Context) paging.Params {
	var params paging.Params
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Debugf(c.Request.Context(), "ignoring bad paging query: %v", err)
	}
	return paging.NormalizeParams(params)
}

// fail routes err through the session policy and renders what is left.
func (h *Handler) fail(c *gin.Context, err error) {
	if h.policy.Handle(c, h.store(c), err) {
		return
	}
	if e, ok := ecode.As(err); ok {
		resp.Fail(c.Writer, resp.FromError(e))
		return
	}
	logger.Errorf(c.Request.Context(), "unclassified error: %v", err)
	resp.Fail(c.Writer, resp.InternalServer(ecode.Text(ecode.ServerErr)))
}
