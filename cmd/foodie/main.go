package main

import (
	"context"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"foodie/pkg/config"
	"foodie/pkg/demo"
	"foodie/pkg/logger"
	"foodie/pkg/otel"
	"foodie/pkg/settings"
)

// foodie runs every design pattern demonstration once and exits.
func main() {
	os.Exit(run(context.Background(), os.Getenv("FOODIE_CONFIG"), os.Stdout))
}

func run(ctx context.Context, configPath string, out io.Writer) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		logger.New(out, logger.LevelInfo, "foodie", nil).Error(ctx, "load config", "error", err)
		return 1
	}

	level, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.New(out, logger.LevelInfo, cfg.Service, nil).Error(ctx, "parse log level", "error", err)
		return 1
	}
	log := logger.New(out, level, cfg.Service, otel.GetTraceID)
	defer log.Sync()

	tp, shutdown, err := otel.InitTracing(log, otel.Config{
		ServiceName: cfg.Service,
		Enabled:     cfg.Tracing.Enabled,
		Probability: cfg.Tracing.SampleProbability(),
		Writer:      out,
	})
	if err != nil {
		log.Error(ctx, "init tracing", "error", err)
		return 1
	}
	defer shutdown(context.Background())
	ctx = otel.InjectTracing(ctx, tp.Tracer(cfg.Service))

	settings.Instance().Merge(cfg.Settings)

	runner := demo.NewRunner(demo.Deps{
		Log:      log,
		Config:   cfg,
		Registry: prometheus.NewRegistry(),
	})
	if err := runner.Run(ctx, demo.Catalogue()); err != nil {
		log.Error(ctx, "demonstrations failed", "error", err)
		return 1
	}
	log.Info(ctx, "all demonstrations completed")
	return 0
}
