package fri

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"urnik-backend/internal/telemetry"
	"urnik-backend/internal/timetable"

	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ClientOptions) (Client, *telemetry.Recorder) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts.BaseUrl = server.URL
	rec := &telemetry.Recorder{}
	client, err := NewClient(opts, rec)
	require.NoError(t, err)
	return client, rec
}

func TestFetchPage(t *testing.T) {
	var path, group string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		group = r.URL.Query().Get("group")
		_, _ = w.Write([]byte(twoEntryPage))
	}, ClientOptions{Semester: "fri-2025_2026-zimski"})

	page, err := client.FetchPage(context.Background(), "UNI-1_RI_BUN")
	require.NoError(t, err)
	require.Equal(t, twoEntryPage, page)
	require.Equal(t, "/timetable/fri-2025_2026-zimski/allocations", path)
	require.Equal(t, "UNI-1_RI_BUN", group)
}

func TestFetchPageDefaultSemester(t *testing.T) {
	var path string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
	}, ClientOptions{})

	_, err := client.FetchPage(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "/timetable/"+DefaultSemester+"/allocations", path)
}

func TestFetchPageStatus(t *testing.T) {
	client, rec := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}, ClientOptions{})

	_, err := client.FetchPage(context.Background(), "missing")
	require.ErrorIs(t, err, timetable.ErrFetch)

	broken := rec.Kind(telemetry.KindBroken)
	require.Len(t, broken, 1)
	require.Equal(t, "fri_client: "+report_client_fetch_page, broken[0].ID)
}

func TestFetchPageTimeout(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}, ClientOptions{Timeout: 50 * time.Millisecond})

	start := time.Now()
	_, err := client.FetchPage(context.Background(), "slow")
	require.ErrorIs(t, err, timetable.ErrFetch)
	require.Less(t, time.Since(start), 5*time.Second)
}

func TestFetchPageRetriesServerErrors(t *testing.T) {
	var calls int32
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}, ClientOptions{Retries: 1})

	page, err := client.FetchPage(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, "ok", page)
	require.EqualValues(t, 2, atomic.LoadInt32(&calls))
}

func TestFetchPageUnreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	client, err := NewClient(ClientOptions{BaseUrl: url, Timeout: time.Second}, &telemetry.Recorder{})
	require.NoError(t, err)

	_, err = client.FetchPage(context.Background(), "1")
	require.ErrorIs(t, err, timetable.ErrFetch)
}

func TestNewClientRejectsRelativeUrl(t *testing.T) {
	_, err := NewClient(ClientOptions{BaseUrl: "urnik.fri.uni-lj.si"}, &telemetry.Recorder{})
	require.Error(t, err)
}

func TestFetchPageBrowserTransport(t *testing.T) {
	var language string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		language = r.Header.Get("Accept-Language")
		_, _ = w.Write([]byte(twoEntryPage))
	}, ClientOptions{BrowserTransport: true})

	_, isDefault := client.http.GetClient().Transport.(*http.Transport)
	require.False(t, isDefault)

	page, err := client.FetchPage(context.Background(), "1")
	require.NoError(t, err)
	require.Equal(t, twoEntryPage, page)
	require.Equal(t, "en-US,en;q=0.5", language)
}
