package service

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"urnik-backend/internal/assert"
	"urnik-backend/internal/telemetry"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	report_ratelimit_reject = "ratelimit.reject"
)

const (
	DefaultRateInterval = 60 * time.Second
	DefaultRateBurst    = 3
	DefaultRateClients  = 4096
)

type RateLimitOptions struct {
	// Interval is the time it takes to earn back one request.
	Interval time.Duration
	// Burst is the number of requests a client can make at once.
	Burst int
	// Clients bounds the number of clients tracked at a time.
	Clients int
}

// RateLimiter rejects requests of a client once it has used up its burst,
// one request is earned back every interval.
type RateLimiter struct {
	limit rate.Limit
	burst int

	mutex    sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	tel      telemetry.API
}

func NewRateLimiter(opts RateLimitOptions, tel telemetry.API) *RateLimiter {
	assert.NotNil(tel, "tel")
	if opts.Interval <= 0 {
		opts.Interval = DefaultRateInterval
	}
	if opts.Burst <= 0 {
		opts.Burst = DefaultRateBurst
	}
	if opts.Clients <= 0 {
		opts.Clients = DefaultRateClients
	}

	// a limiter that has sat unused for this long is full again, so dropping
	// it is the same as keeping it. the expiry is only renewed by Add.
	ttl := opts.Interval * time.Duration(opts.Burst)

	return &RateLimiter{
		limit:    rate.Every(opts.Interval),
		burst:    opts.Burst,
		limiters: expirable.NewLRU[string, *rate.Limiter](opts.Clients, nil, ttl),
		tel:      telemetry.NewScopedAPI("ratelimit", tel),
	}
}

func (l *RateLimiter) limiter(client string) *rate.Limiter {
	l.mutex.Lock()
	defer l.mutex.Unlock()

	limiter, ok := l.limiters.Get(client)
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
	}
	l.limiters.Add(client, limiter)
	return limiter
}

// Wrap rejects requests over the limit with 429 instead of queueing them.
func (l *RateLimiter) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client := clientKey(r)
		reservation := l.limiter(client).Reserve()
		delay := reservation.Delay()
		if delay > 0 {
			reservation.Cancel()
			rateLimitRejection.Add(r.Context(), 1)
			l.tel.ReportDebug(report_ratelimit_reject, client, delay.String())

			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(delay.Seconds()))))
			writeText(w, http.StatusTooManyRequests, "Too many requests, retry later.")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientKey identifies a client by its remote IP.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
