package cmd

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

	"github.com/spf13/cobra"

	"miniapps/internal/cache"
	"miniapps/internal/config"
	"miniapps/internal/handlers"
	"miniapps/internal/router"
	"miniapps/internal/storage"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server. The grid page is served at /mini-apps/ and the
catalog at /mini-apps/apps.json. Icons are served from S3 when S3_ENDPOINT
is configured, otherwise from ASSETS_DIR.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides APP_HOST/APP_PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	setupLogger(cfg)

	addr := cfg.Addr()
	if serveAddr != "" {
		addr = serveAddr
	}
	slog.Info("configuration loaded", "env", cfg.Env, "addr", addr)

	apps, err := loadApps(cfg.AppsFile)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	slog.Info("catalog loaded", "apps", len(apps), "file", cfg.AppsFile)

	renderer, err := newRenderer(cfg.SiteTitle, router.MountPath+"/", cfg.HostTemplate)
	if err != nil {
		return fmt.Errorf("initialize renderer: %w", err)
	}

	// A nil *cache.PageCache must not end up inside the interface.
	var pageCache handlers.PageCache
	if cfg.CacheEnabled() {
		valkeyClient, err := cache.ConnectValkey(cmd.Context(), cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword, cfg.ValkeyDB)
		if err != nil {
			return fmt.Errorf("connect to valkey: %w", err)
		}
		defer valkeyClient.Close()
		pageCache = cache.NewPageCache(valkeyClient, cfg.PageCacheTTL)
	} else {
		slog.Warn("valkey not configured, page cache disabled")
	}

	storageClient, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3Prefix)
	if err != nil {
		return fmt.Errorf("initialize S3 storage: %w", err)
	}
	var assets http.Handler
	if storageClient != nil {
		slog.Info("serving icons from s3", "endpoint", cfg.S3Endpoint, "bucket", storageClient.Bucket())
		assets = handlers.S3Assets(storageClient, router.MountPath)
	} else {
		slog.Info("serving icons from disk", "dir", cfg.AssetsDir)
		assets = handlers.LocalAssets(cfg.AssetsDir, router.MountPath)
	}

	miniApps := handlers.NewMiniApps(renderer, apps, pageCache, assets)
	r := router.New(miniApps, cfg.AllowedOrigins, cfg.FrameAncestors)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server starting", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case sig := <-quit:
		slog.Info("shutdown signal received", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server stopped gracefully")
	return nil
}
