// Package server wires the router, middleware and HTTP server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ncobase/boardfront/config"
	"github.com/ncobase/boardfront/ecode"
	"github.com/ncobase/boardfront/handler"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/net/resp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Server serves the browser-facing API.
type Server struct {
	config  *config.Config
	handler *handler.Handler
	engine  *gin.Engine
}

// NewServer creates a server.
func NewServer(cfg *config.Config, h *handler.Handler) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if h == nil {
		return nil, fmt.Errorf("handler is nil")
	}
	return &Server{config: cfg, handler: h}, nil
}

// SetupRouter builds the gin engine.
func (s *Server) SetupRouter() *gin.Engine {
	if s.config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.CustomRecovery(recoverWithSentry))
	if origins := s.allowOrigins(); len(origins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "X-Request-ID"},
			ExposeHeaders:    []string{"Location", "X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}
	r.Use(traceMiddleware(), loggerMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
	})
	r.NoRoute(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotFound("route not found"))
	})
	r.NoMethod(func(c *gin.Context) {
		resp.Fail(c.Writer, resp.NotAllowed(ecode.Text(ecode.MethodNotAllowed)))
	})

	s.handler.Register(r.Group("/api"))

	s.engine = r
	return r
}

func (s *Server) allowOrigins() []string {
	if s.config.Server == nil {
		return nil
	}
	return s.config.Server.AllowOrigins
}

// Handler returns the engine wrapped with tracing and error reporting.
func (s *Server) Handler() http.Handler {
	if s.engine == nil {
		s.SetupRouter()
	}
	var h http.Handler = s.engine
	h = sentryhttp.New(sentryhttp.Options{}).Handle(h)
	return otelhttp.NewHandler(h, s.config.AppName)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	sc := s.config.Server
	if sc == nil {
		sc = &config.Server{Port: 3000, ShutdownTimeout: 30 * time.Second}
	}
	srv := &http.Server{
		Addr:              net.JoinHostPort(sc.Host, strconv.Itoa(sc.Port)),
		Handler:           s.Handler(),
		ReadTimeout:       sc.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      sc.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof(ctx, "listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Infof(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), sc.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	return nil
}

// recoverWithSentry reports a handler panic and renders a 500.
func recoverWithSentry(c *gin.Context, recovered any) {
	ctx := c.Request.Context()
	if hub := sentry.GetHubFromContext(ctx); hub != nil {
		hub.RecoverWithContext(ctx, recovered)
	}
	logger.Errorf(ctx, "panic recovered: %v", recovered)
	resp.Fail(c.Writer, resp.InternalServer("internal server error"))
	c.Abort()
}
