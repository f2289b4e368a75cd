// server is the Claude Setup Advisor binary. It analyzes free-text task
// descriptions and recommends Claude Code features over two transports:
// an MCP stdio server for assistants and an HTTP API for UIs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fredcamaral/gomcp-sdk/transport"

	"lerian-claude-advisor/internal/api"
	"lerian-claude-advisor/internal/catalog"
	"lerian-claude-advisor/internal/config"
	"lerian-claude-advisor/internal/logging"
	advisormcp "lerian-claude-advisor/internal/mcp"
)

func main() {
	var (
		mode = flag.String("mode", "http", "Server mode: stdio or http")
		addr = flag.String("addr", "", "HTTP listen address (overrides config when mode=http)")
	)
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(logging.ParseLogLevel(cfg.Logging.Level), cfg.Logging.Format)

	store, err := catalog.Load(cfg.Catalog.Dir)
	if err != nil {
		logger.Error("failed to load catalogs", "error", err)
		os.Exit(1)
	}
	logger.Info("catalogs loaded",
		"categories", len(store.Categories()),
		"features", store.FeatureCount(),
		"patterns", len(store.Patterns()),
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "stdio":
		if err := runStdio(ctx, store, logger); err != nil {
			logger.Error("MCP server failed", "error", err)
			os.Exit(1)
		}
	case "http":
		if err := runHTTP(ctx, cfg, store, logger, *addr); err != nil {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	default:
		logger.Error("invalid mode, use 'stdio' or 'http'", "mode", *mode)
		os.Exit(1)
	}
}

func runStdio(ctx context.Context, store *catalog.Store, logger logging.Logger) error {
	advisor, err := advisormcp.NewAdvisorServer(store, logger)
	if err != nil {
		return err
	}

	advisor.GetMCPServer().SetTransport(transport.NewStdioTransport())
	if err := advisor.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func runHTTP(ctx context.Context, cfg *config.Config, store *catalog.Store, logger logging.Logger, addrOverride string) error {
	router := api.NewRouter(cfg, store, logger)

	addr := addrOverride
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	}

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Handler(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
