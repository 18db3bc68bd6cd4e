package fri

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"urnik-backend/internal/assert"
	"urnik-backend/internal/telemetry"
	"urnik-backend/internal/timetable"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
)

const (
	report_client_fetch_page = "client.fetch-page"
)

const (
	DefaultBaseUrl  = "https://urnik.fri.uni-lj.si"
	DefaultSemester = "fri-2024_2025-letni"
	DefaultTimeout  = 15 * time.Second
)

type ClientOptions struct {
	// BaseUrl defaults to DefaultBaseUrl.
	BaseUrl string
	// Semester is the timetable slug in the path, defaults to DefaultSemester.
	Semester string
	// Timeout bounds a single attempt, defaults to DefaultTimeout.
	Timeout time.Duration
	// Retries is the number of extra attempts after a transport error or 5xx.
	Retries int
	// BrowserTransport makes requests look like they come from a browser.
	BrowserTransport bool
}

// Client downloads allocation pages from the timetable site.
type Client struct {
	http     *resty.Client
	semester string
	tel      telemetry.API
}

func NewClient(opts ClientOptions, tel telemetry.API) (Client, error) {
	assert.NotNil(tel, "tel")
	tel = telemetry.NewScopedAPI("fri_client", tel)

	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.Semester == "" {
		opts.Semester = DefaultSemester
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return Client{}, fmt.Errorf("parse base url: %w", err)
	}
	if baseUrl.Scheme == "" || baseUrl.Host == "" {
		return Client{}, fmt.Errorf("base url must be absolute: %q", opts.BaseUrl)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(opts.BaseUrl)
	httpClient.SetTimeout(opts.Timeout)
	httpClient.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	httpClient.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	if opts.BrowserTransport {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}

	if opts.Retries > 0 {
		httpClient.SetRetryCount(opts.Retries)
		httpClient.SetRetryWaitTime(500 * time.Millisecond)
		httpClient.SetRetryMaxWaitTime(3 * time.Second)
		httpClient.AddRetryCondition(func(res *resty.Response, err error) bool {
			return err != nil || res.StatusCode() >= 500
		})
	}

	telemetry.InstrumentResty(httpClient, tel, tracer)

	return Client{
		http:     httpClient,
		semester: opts.Semester,
		tel:      tel,
	}, nil
}

// FetchPage returns the raw allocations page of group. The group is passed
// through unchanged as the `group` query parameter.
func (c Client) FetchPage(ctx context.Context, group string) (string, error) {
	ctx, span := tracer.Start(ctx, "FetchPage")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParam("group", group).
		SetPathParam("semester", c.semester).
		Get("/timetable/{semester}/allocations")
	if err != nil {
		c.tel.ReportBroken(
			report_client_fetch_page,
			fmt.Errorf("fetch: %w", err),
			group,
		)
		return "", fmt.Errorf("%w: %w", timetable.ErrFetch, err)
	}
	if !res.IsSuccess() {
		err := fmt.Errorf("unexpected status %s", res.Status())
		c.tel.ReportBroken(report_client_fetch_page, err, group)
		return "", fmt.Errorf("%w: %w", timetable.ErrFetch, err)
	}

	return res.String(), nil
}
