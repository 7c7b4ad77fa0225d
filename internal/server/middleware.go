package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/ctxutil"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/security/jwt"
	"github.com/sirupsen/logrus"
)

const requestIDHeader = "X-Request-ID"

// traceMiddleware stamps the request context with trace, request and user ids
// and the client info.
func traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := ctxutil.WithGinContext(c.Request.Context(), c)
		ctx, _ = ctxutil.EnsureTraceID(ctx)
		if id := c.GetHeader(requestIDHeader); id != "" {
			ctx = ctxutil.SetRequestID(ctx, id)
		}
		ctx = ctxutil.SetClientInfo(ctx, c.Request)
		if token, err := cookie.Get(c.Request, cookie.AccessTokenName); err == nil {
			if sub := jwt.Subject(token); sub != "" {
				ctx = ctxutil.SetUserID(ctx, sub)
			}
		}
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, ctxutil.GetRequestID(ctx))
		c.Next()
	}
}

// loggerMiddleware logs one line per request.
func loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		ctx := c.Request.Context()
		fields := logrus.Fields{
			"method":    method,
			"path":      path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
			"client_ip": ctxutil.GetClientIP(ctx),
		}
		if uid := ctxutil.GetUserID(ctx); uid != "" {
			fields["user_id"] = uid
		}
		entry := logger.WithFields(ctx, fields)
		switch status := c.Writer.Status(); {
		case status >= 500:
			entry.Error("HTTP request")
		case status >= 400:
			entry.Warn("HTTP request")
		default:
			entry.Info("HTTP request")
		}
	}
}
