package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"media-share/internal/adapters/cache/pagecache"
	"media-share/internal/adapters/filesystem"
	"media-share/internal/adapters/handlers/http/chi"
	"media-share/internal/adapters/handlers/http/chi/v1/media"
	"media-share/internal/adapters/mime"
	"media-share/internal/adapters/view"
	"media-share/internal/config"
	"media-share/internal/core/service/browse"
	"media-share/internal/core/service/pathguard"
	"media-share/internal/core/service/stream"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	if cfg.Media.CreateRoot {
		if err := os.MkdirAll(cfg.Media.Root, 0o755); err != nil {
			logger.Error("failed to create media root", "root", cfg.Media.Root, "error", err)
			os.Exit(1)
		}
	}

	guard, err := pathguard.NewGuard(cfg.Media.Root)
	if err != nil {
		logger.Error("failed to init media root", "root", cfg.Media.Root, "error", err)
		os.Exit(1)
	}
	logger.Info("serving media", "root", guard.Root())

	//adapters
	resolver := mime.NewResolver()
	lister := filesystem.NewLister()
	renderer, err := view.NewRenderer()
	if err != nil {
		logger.Error("failed to init templates", "error", err)
		os.Exit(1)
	}
	listingCache := pagecache.New(cfg.Media.ListingCacheTTL)

	streamService := stream.NewStreamService(guard, resolver, cfg.Stream, logger)
	browseService := browse.NewBrowseService(guard, lister, resolver)

	//http
	mediaHandler := media.NewMediaHandlerV1(streamService, browseService, renderer, listingCache, cfg, logger)

	router := chi.NewRouter(logger, mediaHandler, cfg.Env.Env)
	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}
