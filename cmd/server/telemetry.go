package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"urnik-backend/lib/telemetry"

	"github.com/lmittmann/tint"
)

func initSlog(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))
	slog.SetDefault(logger)
}

// initTelemetry returns a function that flushes and stops exporters.
func initTelemetry(ctx context.Context, cfg telemetry.Config) (func(), error) {
	t, err := telemetry.Setup(ctx, "urnik-backend", cfg)
	if err != nil {
		return nil, err
	}
	if t.MeterProvider != nil {
		telemetry.InstrumentPerfStats(ctx, perfStatsInterval)
	}

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := t.Shutdown(shutdownCtx); err != nil {
			slog.Warn("telemetry shutdown", "err", err)
		}
	}, nil
}
