// Command doordash-mcp serves DoorDash Drive tools over MCP, on stdio by
// default or over HTTP.
package main

import (
	"context"
	"flag"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/metrics"
	"github.com/effective-security/xlog"

	"doordash-mcp/internal/config"
	"doordash-mcp/internal/dispatch"
	"doordash-mcp/internal/doordash"
	"doordash-mcp/internal/mcpserver"
	"doordash-mcp/internal/server"
)

var logger = xlog.NewPackageLogger("doordash-mcp", "main")

var logLevels = map[string]xlog.LogLevel{
	"DEBUG":   xlog.DEBUG,
	"INFO":    xlog.INFO,
	"NOTICE":  xlog.NOTICE,
	"WARNING": xlog.WARNING,
	"ERROR":   xlog.ERROR,
}

func main() {
	cfgPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	// stdout carries protocol messages; logs go to stderr
	xlog.SetFormatter(xlog.NewStringFormatter(os.Stderr))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *cfgPath); err != nil {
		logger.KV(xlog.ERROR, "reason", "server error", "err", err.Error())
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if lvl, ok := logLevels[cfg.LogLevel]; ok {
		xlog.SetGlobalLogLevel(lvl)
	}

	if missing := cfg.Credentials().Missing(); len(missing) > 0 {
		logger.KV(xlog.WARNING,
			"reason", "DoorDash credentials not set; tool calls fail until configured",
			"missing", missing,
		)
	}

	sink, err := setupMetrics()
	if err != nil {
		return err
	}
	// SIGUSR1 dumps the current interval to stderr
	sig := metrics.DefaultInmemSignal(sink)
	defer sig.Stop()

	var opts []dispatch.Option
	if cfg.StrictArguments {
		opts = append(opts, dispatch.WithStrictArguments())
	}
	handler := mcpserver.NewHandler(dispatch.New(provisioner(cfg), opts...))

	switch cfg.Transport {
	case config.TransportHTTP:
		return serveHTTP(ctx, cfg, handler, sink)
	default:
		return serveStdio(ctx, handler)
	}
}

// setupMetrics installs an in-memory sink as the global metrics provider.
func setupMetrics() (*metrics.InmemSink, error) {
	sink := metrics.NewInmemSink(10*time.Second, time.Minute)
	if _, err := metrics.NewGlobal(metrics.DefaultConfig(mcpserver.ServerName), sink); err != nil {
		return nil, errors.Wrap(err, "unable to initialize metrics")
	}
	return sink, nil
}

// serveStdio returns when stdin is closed or ctx is done; a blocked read
// does not delay shutdown.
func serveStdio(ctx context.Context, handler *mcpserver.Handler) error {
	errc := make(chan error, 1)
	go func() {
		errc <- handler.ServeStdio(ctx)
	}()
	logger.KV(xlog.INFO, "status", "DoorDash MCP Server running on stdio")

	select {
	case err := <-errc:
		if errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}

// provisioner re-reads the credentials on every attempt.
func provisioner(cfg *config.Config) dispatch.Provisioner {
	return func() dispatch.Backend {
		if c := doordash.Provision(cfg.Credentials()); c != nil {
			return c
		}
		return nil
	}
}

func serveHTTP(ctx context.Context, cfg *config.Config, handler *mcpserver.Handler, sink *metrics.InmemSink) error {
	if cfg.Token == "" {
		logger.KV(xlog.WARNING, "reason", "MCP_TOKEN not set; endpoints will be open. Set MCP_TOKEN to secure.")
	}
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.New(server.Config{Token: cfg.Token, Metrics: sink}, handler).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		if cfg.TLSCertFile != "" {
			logger.KV(xlog.INFO, "status", "starting MCP HTTPS server", "port", cfg.Port)
			errc <- srv.ListenAndServeTLS(cfg.TLSCertFile, cfg.TLSKeyFile)
			return
		}
		logger.KV(xlog.WARNING, "reason", "TLS_CERT_FILE and TLS_KEY_FILE not set; serving plain HTTP. Run behind a TLS-terminating proxy.")
		logger.KV(xlog.INFO, "status", "starting MCP HTTP server", "port", cfg.Port)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "server error")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
