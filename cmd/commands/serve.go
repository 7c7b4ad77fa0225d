package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ncobase/boardfront/cache"
	"github.com/ncobase/boardfront/config"
	"github.com/ncobase/boardfront/handler"
	"github.com/ncobase/boardfront/internal/server"
	"github.com/ncobase/boardfront/logging/logger"
	"github.com/ncobase/boardfront/logging/observes"
	"github.com/ncobase/boardfront/net/apiclient"
	"github.com/ncobase/boardfront/net/cookie"
	"github.com/ncobase/boardfront/security/session"
	"github.com/ncobase/boardfront/service"
	"github.com/ncobase/boardfront/version"
	"github.com/spf13/cobra"
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, configFile)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "config file path")
	return cmd
}

func serve(ctx context.Context, configFile string) error {
	config.SetPath(configFile)
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cleanup, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer cleanup()
	info := version.GetVersionInfo()
	logger.StdLogger().SetVersion(info.Version)

	config.Watch(func(c *config.Config) {
		if c.Logger != nil {
			logger.StdLogger().SetLevel(logger.ParseLevel(c.Logger.Level))
			logger.Infof(context.Background(), "log level set to %s", c.Logger.Level)
		}
	})

	if err := initObserves(cfg, info.Version); err != nil {
		logger.Warnf(ctx, "sentry disabled: %v", err)
	}
	defer observes.FlushSentry(2 * time.Second)

	shutdownTracer, err := observes.NewTracer(tracerOption(cfg, info.Version))
	if err != nil {
		logger.Warnf(ctx, "tracing disabled: %v", err)
	} else {
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdownTracer(sctx); err != nil {
				logger.Warnf(sctx, "tracer shutdown: %v", err)
			}
		}()
	}

	var tagCache interface {
		apiclient.Revalidator
		apiclient.ResponseCache
	} = cache.Noop{}
	rc, err := cache.NewClient(ctx, cfg.Data.Redis)
	switch {
	case err != nil:
		logger.Warnf(ctx, "response cache disabled: %v", err)
	case rc != nil:
		defer rc.Close()
		tagCache = cache.NewRedis(rc, cfg.Data.Cache.TTL)
	}

	client, err := apiclient.NewFromConfig(cfg.Upstream,
		apiclient.WithRevalidator(tagCache),
		apiclient.WithResponseCache(tagCache),
	)
	if err != nil {
		return fmt.Errorf("failed to create upstream client: %w", err)
	}

	svc := service.New(client, service.Options{LogoutTimeout: cfg.Upstream.LogoutTimeout})
	h := handler.New(svc, session.NewPolicy(cfg.Frontend), cookie.OptionsFromConfig(cfg))
	srv, err := server.NewServer(cfg, h)
	if err != nil {
		return err
	}
	srv.SetupRouter()

	logger.Infof(ctx, "%s %s serving, upstream %s", cfg.AppName, info.Version, cfg.Upstream.BaseURL)
	return srv.Run(ctx)
}

func initObserves(cfg *config.Config, release string) error {
	if cfg.Observes == nil || cfg.Observes.Sentry == nil {
		return nil
	}
	sc := cfg.Observes.Sentry
	if sc.Release != "" {
		release = sc.Release
	}
	env := sc.Environment
	if env == "" {
		env = cfg.RunMode
	}
	return observes.NewSentry(&observes.SentryOptions{
		Dsn:         sc.Endpoint,
		Name:        cfg.AppName,
		Release:     release,
		Environment: env,
		SampleRate:  sc.SampleRate,
	})
}

func tracerOption(cfg *config.Config, release string) *observes.TracerOption {
	if cfg.Observes == nil || cfg.Observes.Tracer == nil {
		return &observes.TracerOption{}
	}
	tc := cfg.Observes.Tracer
	if tc.ServiceVersion != "" {
		release = tc.ServiceVersion
	}
	env := tc.Environment
	if env == "" {
		env = cfg.RunMode
	}
	return &observes.TracerOption{
		URL:                tc.Endpoint,
		Name:               tc.ServiceName,
		Version:            release,
		Environment:        env,
		SamplingRate:       tc.SamplingRate,
		Insecure:           tc.Insecure,
		BatchTimeout:       tc.BatchTimeout,
		ExportTimeout:      tc.ExportTimeout,
		MaxExportBatchSize: tc.MaxExportBatchSize,
	}
}
