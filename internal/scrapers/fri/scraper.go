package fri

import (
	"context"
	"strings"

	"urnik-backend/internal/assert"
	"urnik-backend/internal/telemetry"
	"urnik-backend/internal/timetable"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	report_scraper_timetable = "scraper.timetable"
	report_scraper_entries   = "scraper.entries"
)

var tracer = otel.Tracer("urnik.scrapers.fri")

// Fetcher returns the raw allocations page of a group.
//
// note: fault injection point
type Fetcher interface {
	FetchPage(ctx context.Context, group string) (string, error)
}

// Scraper serves the FRI timetable as a timetable.Institution.
type Scraper struct {
	fetcher Fetcher
	tel     telemetry.API
}

func NewScraper(fetcher Fetcher, tel telemetry.API) Scraper {
	assert.NotNil(fetcher, "fetcher")
	assert.NotNil(tel, "tel")

	return Scraper{
		fetcher: fetcher,
		tel:     telemetry.NewScopedAPI("fri_scraper", tel),
	}
}

func (s Scraper) ID() string {
	return "fri"
}

func (s Scraper) Timetable(ctx context.Context, group string) ([]timetable.TimeBlock, error) {
	ctx, span := tracer.Start(ctx, "Timetable")
	defer span.End()
	span.SetAttributes(attribute.String("group", group))

	page, err := s.fetcher.FetchPage(ctx, group)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch page")
		return nil, err
	}

	blocks, err := ParseTimetable(strings.NewReader(page))
	if err != nil {
		s.tel.ReportBroken(report_scraper_timetable, err, group)
		span.RecordError(err)
		span.SetStatus(codes.Error, "parse page")
		return nil, err
	}

	undecoded := 0
	for _, b := range blocks {
		if b.Day == timetable.Unknown || b.Time == timetable.Unknown {
			undecoded++
		}
	}
	if undecoded > 0 {
		s.tel.ReportWarning(report_scraper_entries, "entries without a position", group, undecoded)
	}
	s.tel.ReportCount(report_scraper_entries, int64(len(blocks)))
	span.SetAttributes(attribute.Int("entries", len(blocks)))

	return blocks, nil
}
