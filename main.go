package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ekaya-inc/airtable-mcp/pkg/airtable"
	"github.com/ekaya-inc/airtable-mcp/pkg/audit"
	"github.com/ekaya-inc/airtable-mcp/pkg/auth"
	"github.com/ekaya-inc/airtable-mcp/pkg/config"
	"github.com/ekaya-inc/airtable-mcp/pkg/handlers"
	"github.com/ekaya-inc/airtable-mcp/pkg/mcp"
	"github.com/ekaya-inc/airtable-mcp/pkg/mcp/tools"
	"github.com/ekaya-inc/airtable-mcp/pkg/metrics"
	"github.com/ekaya-inc/airtable-mcp/pkg/middleware"
	"github.com/ekaya-inc/airtable-mcp/pkg/nango"
)

// Version is set at build time via ldflags
var Version = "dev"

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load(Version)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("Configuration loaded",
		zap.String("version", cfg.Version),
		zap.String("environment", cfg.Env),
		zap.String("transport", cfg.Transport),
		zap.String("airtable_base_url", cfg.Airtable.BaseURL),
		zap.Duration("timeout", cfg.Airtable.Timeout),
		zap.String("nango_base_url", cfg.Nango.BaseURL),
		zap.Bool("nango_secret_set", cfg.Nango.SecretKey != ""))

	// Missing Nango settings are not fatal; every tool call reports them.
	identity := nango.IdentityFromConfig(cfg.Nango)
	if err := identity.Validate(); err != nil {
		logger.Warn("Nango is not fully configured; Airtable tools will fail until it is", zap.Error(err))
	}

	collector := metrics.New()
	httpClient := &http.Client{Timeout: cfg.Airtable.Timeout}

	tokenProvider := auth.NewTokenProvider(nango.NewClient(httpClient, logger), identity, collector, logger)
	gateway := airtable.NewGateway(cfg.Airtable.BaseURL, tokenProvider, httpClient, collector, logger)

	mcpServer := mcp.NewServer(mcp.ServerName, cfg.Version, logger, mcp.NewToolCallAuditor(logger, collector))
	tools.RegisterHealthTool(mcpServer.MCP(), cfg.Version, cfg.Transport)
	tools.RegisterAirtableTools(mcpServer.MCP(), &tools.AirtableToolDeps{
		Gateway: gateway,
		Auditor: audit.NewSecurityAuditor(logger),
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	switch cfg.Transport {
	case config.TransportHTTP:
		err = serveHTTP(ctx, cfg, mcpServer, collector, logger)
	default:
		err = mcpServer.ServeStdio(ctx, os.Stdin, os.Stdout)
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal("Server failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// newLogger writes to stderr in every mode so stdout stays reserved for
// stdio JSON-RPC.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if cfg.IsLocal() {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}

	return zapCfg.Build()
}

func serveHTTP(ctx context.Context, cfg *config.Config, mcpServer *mcp.Server, collector *metrics.Collector, logger *zap.Logger) error {
	mux := http.NewServeMux()

	handlers.NewHealthHandler(cfg, logger).RegisterRoutes(mux)
	handlers.NewMetricsHandler(collector).RegisterRoutes(mux)
	handlers.NewMCPHandler(mcpServer, logger.Named("mcp-http")).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           middleware.RequestLogger(logger.Named("http"))(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting airtable-mcp over HTTP",
			zap.String("addr", srv.Addr),
			zap.String("mcp_path", handlers.MCPPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
