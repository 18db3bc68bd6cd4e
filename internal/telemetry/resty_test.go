package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestInstrumentRestyEndsRetriedSpans(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			conn, _, err := w.(http.Hijacker).Hijack()
			if err == nil {
				conn.Close()
			}
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	spans := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(spans))
	tracer := provider.Tracer("resty_test")

	client := resty.New().
		SetRetryCount(1).
		SetRetryWaitTime(time.Millisecond).
		SetRetryMaxWaitTime(5 * time.Millisecond)
	rec := &Recorder{}
	InstrumentResty(client, rec, tracer)

	ctx, root := tracer.Start(context.Background(), "fetch")
	res, err := client.R().SetContext(ctx).Get(server.URL)
	root.End()
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, res.StatusCode())
	require.EqualValues(t, 2, hits.Load())

	attempts := 0
	for _, span := range spans.Ended() {
		if span.Name() != "http GET" {
			continue
		}
		attempts++
		require.Equal(t, root.SpanContext().SpanID(), span.Parent().SpanID())
	}
	require.Equal(t, 2, attempts)
	require.Len(t, rec.Kind(KindDebug), 3)
}
