// Package internal provides the main application initialization and
// runtime logic.
package internal

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/haldor/keepintouch/internal/api"
	"github.com/haldor/keepintouch/internal/generator"
	"github.com/haldor/keepintouch/internal/logservice"
	"github.com/haldor/keepintouch/internal/mcpserver"
	"github.com/haldor/keepintouch/internal/models"
	"github.com/haldor/keepintouch/internal/storage"
)

// service bundles everything built for one enabled communication
// service.
type service struct {
	kind  models.Kind
	cfg   *ServiceConfig
	store *storage.File
	svc   *logservice.Service
	gen   *generator.Generator
}

// Run starts the application with the given options.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	cfg := app.config

	// Initialize structured JSON logger.
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.App.Level(),
	}))
	slog.SetDefault(logger)

	services, err := buildServices(cfg, logger)
	if err != nil {
		return err
	}

	// Email and SMS seed their stores once, before any server accepts
	// requests. The call loop starts later, under the errgroup.
	for _, s := range services {
		if s.kind == models.KindCalls || !s.cfg.Generator.Enabled {
			continue
		}
		if err := s.gen.Seed(s.cfg.Generator.Conversations); err != nil {
			return fmt.Errorf("seed %s: %w", s.kind, err)
		}
	}

	// Shutdown signals cancel the group context, unblocking the call
	// generator and the watcher alongside the servers.
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(signalCtx)

	var servers []*http.Server
	var stores []*storage.File
	for _, s := range services {
		stores = append(stores, s.store)

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.RealIP)
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)
		r.Mount("/", api.NewRouter(s.svc))

		srv := &http.Server{
			Addr:    s.cfg.Address(),
			Handler: r,
		}
		servers = append(servers, srv)

		logger.Info("Server starting...",
			slog.String("service", string(s.kind)),
			slog.String("http_address", s.cfg.Address()),
			slog.String("data_file", s.store.Path()))

		g.Go(func() error {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("%s HTTP server error: %w", s.kind, err)
			}
			return nil
		})

		if s.kind == models.KindCalls && s.cfg.Generator.Enabled {
			g.Go(func() error {
				return s.gen.Run(gCtx)
			})
		}
	}

	// Flag out-of-band edits to the data files.
	g.Go(func() error {
		return storage.Watch(gCtx, stores, logger, nil)
	})

	// Drain the servers once the group context is cancelled, whether by
	// a signal or by a failing goroutine.
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down servers...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, srv := range servers {
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("HTTP server shutdown error", slog.String("error", err.Error()))
			}
		}

		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("Application error", slog.String("error", err.Error()))
		return err
	}

	logger.Info("Servers stopped successfully")
	return nil
}

// RunMCP serves the collect/list/analyze operations over stdio MCP.
// Generators and HTTP servers do not run in this mode.
func RunMCP(_ context.Context, opts ...Option) error {
	app := &application{}

	for _, opt := range opts {
		opt(app)
	}

	if app.config == nil {
		return fmt.Errorf("config is required")
	}

	// Log to stderr: stdout carries the MCP transport.
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: app.config.App.Level(),
	}))

	services, err := buildServices(app.config, logger)
	if err != nil {
		return err
	}

	byKind := make(map[models.Kind]*logservice.Service, len(services))
	for _, s := range services {
		byKind[s.kind] = s.svc
	}

	return mcpserver.New(byKind).ServeStdio()
}

// buildServices opens the store and constructs the service layer and
// generator for every enabled service.
func buildServices(cfg *Config, logger *slog.Logger) ([]*service, error) {
	var services []*service
	for kind, svcCfg := range cfg.Services.ByKind() {
		if !svcCfg.Enabled {
			continue
		}
		schema, err := models.SchemaFor(kind)
		if err != nil {
			return nil, err
		}
		store, err := storage.Open(svcCfg.DataFile)
		if err != nil {
			return nil, fmt.Errorf("open %s store: %w", kind, err)
		}
		gen := generator.New(store, schema, logger,
			generator.WithInterval(svcCfg.Generator.MinInterval(), svcCfg.Generator.MaxInterval()))
		services = append(services, &service{
			kind:  kind,
			cfg:   svcCfg,
			store: store,
			svc:   logservice.NewService(store, schema),
			gen:   gen,
		})
	}
	if len(services) == 0 {
		return nil, fmt.Errorf("no services enabled")
	}
	return services, nil
}
