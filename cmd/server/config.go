package main

import (
	"time"

	"urnik-backend/internal/scrapers/fri"
	"urnik-backend/internal/service"
	"urnik-backend/lib/configutil"
	"urnik-backend/lib/telemetry"
)

type UpstreamConfig struct {
	BaseUrl          string              `json:"base_url"`
	Semester         string              `json:"semester"`
	Timeout          configutil.Duration `json:"timeout"`
	Retries          int                 `json:"retries"`
	BrowserTransport bool                `json:"browser_transport"`
}

type RateLimitConfig struct {
	Interval configutil.Duration `json:"interval"`
	Burst    int                 `json:"burst"`
	Clients  int                 `json:"clients"`
}

type Config struct {
	Listen    string           `json:"listen"`
	Upstream  UpstreamConfig   `json:"upstream"`
	RateLimit RateLimitConfig  `json:"rate_limit"`
	Telemetry telemetry.Config `json:"telemetry"`
}

var defaultConfig = Config{
	Listen: "127.0.0.1:8080",
	Upstream: UpstreamConfig{
		BaseUrl:  fri.DefaultBaseUrl,
		Semester: fri.DefaultSemester,
		Timeout:  configutil.Duration(fri.DefaultTimeout),
		Retries:  1,
	},
	RateLimit: RateLimitConfig{
		Interval: configutil.Duration(service.DefaultRateInterval),
		Burst:    service.DefaultRateBurst,
		Clients:  service.DefaultRateClients,
	},
}

func (c UpstreamConfig) clientOptions() fri.ClientOptions {
	return fri.ClientOptions{
		BaseUrl:          c.BaseUrl,
		Semester:         c.Semester,
		Timeout:          c.Timeout.Std(),
		Retries:          c.Retries,
		BrowserTransport: c.BrowserTransport,
	}
}

func (c RateLimitConfig) options() service.RateLimitOptions {
	return service.RateLimitOptions{
		Interval: c.Interval.Std(),
		Burst:    c.Burst,
		Clients:  c.Clients,
	}
}

const perfStatsInterval = 30 * time.Second
