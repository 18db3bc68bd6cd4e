package main

import (
	"flag"
	"net/http"

	"urnik-backend/internal/scrapers/fri"
	"urnik-backend/internal/service"
	"urnik-backend/internal/telemetry"
	"urnik-backend/internal/timetable"
	"urnik-backend/lib/configutil"
	"urnik-backend/lib/serviceutil"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging.")
	configPath := flag.String("config", "config.json5", "Path to the config file, <name>.local.<ext> is merged on top.")
	listen := flag.String("listen", "", "Address to listen on, overrides the config.")
	flag.Parse()

	initSlog(*verbose)

	ctx, stop := serviceutil.SignalContext()
	defer stop()

	cfg, err := configutil.ReadConfig(*configPath, defaultConfig)
	if err != nil {
		serviceutil.Fatal("read config", err)
	}
	if *listen != "" {
		cfg.Listen = *listen
	}

	shutdownTelemetry, err := initTelemetry(ctx, cfg.Telemetry)
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer shutdownTelemetry()

	tel := telemetry.SlogAPI{}

	client, err := fri.NewClient(cfg.Upstream.clientOptions(), tel)
	if err != nil {
		serviceutil.Fatal("init fri client", err)
	}
	registry := timetable.NewRegistry(fri.NewScraper(client, tel))

	mux := http.NewServeMux()
	service.NewService(registry, service.WithTelemetry(tel)).Register(mux)
	limiter := service.NewRateLimiter(cfg.RateLimit.options(), tel)

	err = serviceutil.StartHttpServer(ctx, cfg.Listen, limiter.Wrap(mux))
	if err != nil {
		serviceutil.Fatal("http server", err)
	}
}
