package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"almanac/internal/holidays"
	holidayHandler "almanac/internal/holidays/handler"
	holidayMetrics "almanac/internal/holidays/metrics"
	"almanac/internal/jurisdiction/yamlrules"
	"almanac/internal/platform/config"
	"almanac/internal/platform/httpserver"
	"almanac/internal/platform/logger"
	platformMetrics "almanac/internal/platform/metrics"
	"almanac/internal/platform/middleware"
	"almanac/internal/registry"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. Holiday logic lives in internal packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Debug)

	reg, err := buildRegistry(cfg, log)
	if err != nil {
		log.Error("failed to build jurisdiction registry", "error", err)
		os.Exit(1)
	}

	svc, err := holidays.New(reg,
		holidays.WithLogger(log),
		holidays.WithMetrics(holidayMetrics.New()),
		holidays.WithPrecomputeLimit(cfg.PrecomputeLimit),
	)
	if err != nil {
		log.Error("failed to build holiday service", "error", err)
		os.Exit(1)
	}

	httpMetrics := platformMetrics.New()
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(log))
	r.Use(httpMetrics.Middleware)
	r.Handle("/metrics", promhttp.Handler())
	holidayHandler.New(svc, log, cfg.MaxYearSpan).Register(r)

	log.Info("starting almanac",
		"addr", cfg.Addr,
		"countries", len(reg.Countries()),
		"subdivisions", len(reg.AllQualified()),
		"rules_dir", cfg.RulesDir,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = httpserver.Run(ctx, httpserver.New(cfg.Addr, r), cfg.ShutdownTimeout, log)
	stop()
	if err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}

// buildRegistry returns the built-in catalog, extended with the YAML rule
// files of cfg.RulesDir when one is configured.
func buildRegistry(cfg config.Server, log *slog.Logger) (*registry.Registry, error) {
	if cfg.RulesDir == "" {
		return registry.Default(), nil
	}
	extra, err := yamlrules.NewLoader(yamlrules.WithLogger(log)).LoadDir(cfg.RulesDir)
	if err != nil {
		return nil, err
	}
	return registry.New(append(registry.Builtins(), extra...)...)
}
