package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"lost-found/observability"
	"lost-found/remote"
	"lost-found/transport"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/database"
	grpc3 "github.com/mama165/sdk-go/grpc"
	"github.com/mama165/sdk-go/logs"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Store server terminated with error: %v\n", err)
	}
	os.Exit(code)
}

// run keeps every defer (badger lock, store listeners) ahead of os.Exit.
func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)
	ctx := context.Background()

	// 2. Database (BadgerDB)
	db, err := badger.Open(buildBadgerOpts(config, logger, ctx))
	if err != nil {
		return exitRuntime, fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		logger.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	if logger.Enabled(ctx, slog.LevelDebug) && config.InspectPort > 0 {
		logger.Info("Debug Badger inspector available", "url", fmt.Sprintf("http://localhost:%d/inspect", config.InspectPort))
		database.StartDebugServer(db, config.InspectPort, "/inspect", LeafMapper)
	}

	store := remote.NewDiskStore(db, logger)
	defer store.Close()

	// 3. Metrics
	registry := prometheus.NewRegistry()
	metrics := observability.NewStoreMetrics(registry)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	metricsServer := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", config.Host, config.MetricsPort),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	errChan := make(chan error, 2)

	go func() {
		logger.Info("Serving metrics", "address", metricsServer.Addr)
		if err := metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("metrics server error: %w", err)
		}
	}()

	// 5. gRPC Server Setup
	address := fmt.Sprintf("%s:%d", config.Host, config.Port)
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return exitRuntime, fmt.Errorf("failed to listen on %s: %w", address, err)
	}
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc3.UnaryLoggingInterceptor(logger),
			metrics.UnaryInterceptor(),
		),
		grpc.ChainStreamInterceptor(metrics.StreamInterceptor()),
	)
	transport.NewStoreServer(store, logger, config.ReadDeadline).Register(s)

	go func() {
		logger.Info("Starting gRPC server", "address", address, "at", time.Now().UTC())
		for serviceName := range s.GetServiceInfo() {
			logger.Debug("gRPC exposed services", "name", serviceName)
		}
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- fmt.Errorf("gRPC server error: %w", err)
		}
	}()

	// 6. Wait for Stop or Error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		s.Stop()
		return exitRuntime, err
	}

	// 7. Graceful Shutdown
	logger.Info("Shutting down gracefully...")
	s.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = metricsServer.Shutdown(shutdownCtx)
	logger.Info("Program stopped cleanly")
	return exitOK, nil
}

func buildBadgerOpts(config Config, logger *slog.Logger, ctx context.Context) badger.Options {
	options := badger.DefaultOptions(config.BadgerFilepath)
	if logger.Enabled(ctx, slog.LevelDebug) {
		return options.WithLoggingLevel(badger.DEBUG).WithBypassLockGuard(true)
	}
	return options.WithLoggingLevel(badger.INFO)
}

// LeafMapper shows each stored leaf with its type in the badger inspector.
func LeafMapper(key string, val []byte) database.InspectRow {
	row := database.DefaultMapper(key, val)
	value, err := remote.DecodeLeaf(val)
	if err != nil {
		row.Detail = "Error: unmarshal failed"
		return row
	}
	row.Type = fmt.Sprintf("%T", value)
	row.Detail = fmt.Sprint(value)
	return row
}
