package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"urnik-backend/internal/telemetry"
	"urnik-backend/internal/textutil"
	"urnik-backend/internal/timetable"

	"github.com/antzucaro/matchr"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	report_timetable_get     = "timetable.get"
	report_timetable_encode  = "timetable.encode"
	report_timetable_unknown = "timetable.unknown-institution"
)

// suggestThreshold is the minimum Jaro-Winkler similarity for a "did you mean" hint.
const suggestThreshold = 0.7

var (
	meter              = otel.Meter("urnik.service")
	timetableRequests  = mustCounter(meter.Int64Counter("timetable_requests"))
	timetableFailures  = mustCounter(meter.Int64Counter("timetable_failures"))
	rateLimitRejection = mustCounter(meter.Int64Counter("rate_limit_rejections"))
)

func mustCounter(counter metric.Int64Counter, err error) metric.Int64Counter {
	if err != nil {
		panic(err)
	}
	return counter
}

type serviceConfig struct {
	tel telemetry.API
}

type Option func(cfg *serviceConfig)

func WithTelemetry(tel telemetry.API) Option {
	return func(cfg *serviceConfig) {
		cfg.tel = tel
	}
}

// Service serves timetables of every registered institution over HTTP.
type Service struct {
	registry timetable.Registry
	tel      telemetry.API
}

func NewService(registry timetable.Registry, options ...Option) Service {
	cfg := serviceConfig{}
	for _, opt := range options {
		opt(&cfg)
	}
	if cfg.tel == nil {
		cfg.tel = telemetry.SlogAPI{}
	}

	return Service{
		registry: registry,
		tel:      telemetry.NewScopedAPI("service", cfg.tel),
	}
}

func (s Service) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /timetable/{uni}/{group}", s.handleTimetable)
}

func (s Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	var help strings.Builder
	help.WriteString("Hello!\n\n")
	help.WriteString("Endpoints:\n")
	help.WriteString("/ - current page\n")
	help.WriteString("/timetable/{uni}/{group}\n\n")
	help.WriteString("Currently supported unis:\n")
	for _, id := range s.registry.IDs() {
		fmt.Fprintf(&help, "- %s\n", id)
	}

	writeText(w, http.StatusOK, help.String())
}

func (s Service) handleTimetable(w http.ResponseWriter, r *http.Request) {
	uni := r.PathValue("uni")
	group := r.PathValue("group")

	institution, ok := s.registry.Get(uni)
	if !ok {
		s.tel.ReportDebug(report_timetable_unknown, uni)
		writeText(w, http.StatusNotFound, s.unknownInstitution(uni))
		return
	}

	ctx := r.Context()
	attrs := metric.WithAttributes(attribute.String("uni", uni))
	timetableRequests.Add(ctx, 1, attrs)

	blocks, err := institution.Timetable(ctx, group)
	if err != nil {
		timetableFailures.Add(ctx, 1, attrs)
		s.tel.ReportWarning(report_timetable_get, err, uni, group)
		switch {
		case errors.Is(err, timetable.ErrFetch):
			writeText(w, http.StatusBadGateway, "Error fetching")
		case errors.Is(err, timetable.ErrParse):
			writeText(w, http.StatusBadGateway, "Error parsing")
		default:
			writeText(w, http.StatusInternalServerError, "Internal error")
		}
		return
	}
	if blocks == nil {
		blocks = []timetable.TimeBlock{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(blocks); err != nil {
		s.tel.ReportBroken(report_timetable_encode, err, uni, group)
	}
}

func (s Service) unknownInstitution(uni string) string {
	ids := s.registry.IDs()

	var message strings.Builder
	fmt.Fprintf(&message, "Unsupported uni %q.\n", uni)

	best := ""
	bestScore := 0.0
	for _, id := range ids {
		score := matchr.JaroWinkler(textutil.NormalizeName(uni), id, false)
		if score > bestScore {
			best, bestScore = id, score
		}
	}
	if bestScore >= suggestThreshold {
		fmt.Fprintf(&message, "Did you mean %q?\n", best)
	}

	fmt.Fprintf(&message, "Currently supported unis: %s\n", strings.Join(ids, ", "))
	return message.String()
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}
