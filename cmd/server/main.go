// Package main is the entry point for the audit ledger API server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"auditledger/internal/domain/audit"
	v1 "auditledger/internal/infrastructure/http/v1"
	"auditledger/internal/infrastructure/storage/postgres"
	"auditledger/internal/infrastructure/storage/postgres/audit_repo"
	"auditledger/pkg/logger"
)

func main() {
	// Local development convenience; real deployments set env directly.
	_ = godotenv.Load()

	log, err := logger.New(logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") == "development",
	})
	if err != nil {
		fmt.Printf("failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	log.Info("starting audit ledger server")

	// --- Record store connection ---
	poolCfg := postgres.DefaultPoolConfig(mustEnv("DATABASE_URL"))
	if maxConns := getEnvInt("DB_MAX_CONNS", 0); maxConns > 0 {
		poolCfg.MaxConns = int32(maxConns)
	}
	pool, err := postgres.NewPool(ctx, poolCfg)
	if err != nil {
		log.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()
	log.Info("database connection established")

	// --- Audit report service ---
	recordRepo := audit_repo.NewRecordRepo(pool.Pool)

	opts := []audit.Option{}
	if loc, err := time.LoadLocation(getEnv("FISCAL_TIMEZONE", "UTC")); err == nil {
		opts = append(opts, audit.WithLocation(loc))
	} else {
		log.Warnw("invalid FISCAL_TIMEZONE, using UTC", "error", err)
	}
	if getEnv("SNAPSHOTS_ENABLED", "true") == "true" {
		snapshots, err := postgres.NewSnapshotStore(pool.Pool)
		if err != nil {
			log.Fatalw("failed to create snapshot store", "error", err)
		}
		opts = append(opts, audit.WithSnapshots(snapshots))
	}

	auditService := audit.NewService(recordRepo, opts...)

	// --- Router ---
	router := v1.NewRouter(v1.RouterConfig{
		Pool:         pool,
		Logger:       log,
		AuditService: auditService,
	})

	// --- HTTP Server ---
	port := getEnv("APP_PORT", "8080")
	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infow("http server listening", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalw("http server failed", "error", err)
		}
	}()

	// --- Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Errorw("forced shutdown", "error", err)
	}

	log.Info("server stopped")
}

// --- env helpers ---

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func mustEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("required environment variable %s is not set\n", key)
		os.Exit(1)
	}
	return val
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}
