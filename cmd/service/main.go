package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/vgi/vgi-server/internal/client/twitch"
	"github.com/vgi/vgi-server/internal/config"
	api "github.com/vgi/vgi-server/internal/generated"
	"github.com/vgi/vgi-server/internal/infra"
	"github.com/vgi/vgi-server/internal/rest"
	"github.com/vgi/vgi-server/internal/roster"
	"github.com/vgi/vgi-server/internal/service"
	"github.com/vgi/vgi-server/internal/web"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	members := roster.MustLoad(cfg.Roster.Path)

	twitchClient, err := twitch.New(cfg)
	if err != nil {
		log.Fatalf("failed to create twitch client: %v", err)
	}
	defer twitchClient.Close()

	aggregator := service.New(twitchClient, members)

	handler := rest.New(aggregator)
	router := chi.NewRouter()

	router.Use(middleware.Recoverer)
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(infra.Timeout(cfg.Service.RequestTimeout))

	router.Get("/health", handler.Health)
	router.Get("/ready", handler.Ready)
	router.Get("/api/openapi.yaml", handler.GetOpenAPI)

	api.HandlerWithOptions(handler, api.ChiServerOptions{
		BaseRouter:       router,
		ErrorHandlerFunc: handler.ParamError,
	})
	router.NotFound(web.SPA(cfg.Service.StaticDir))

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Service.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Service.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
		defer cancel()

		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down HTTP server: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
