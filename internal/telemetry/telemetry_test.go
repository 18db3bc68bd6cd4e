package telemetry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScopedAPIPrefixesIds(t *testing.T) {
	rec := &Recorder{}
	scoped := NewScopedAPI("fri_scraper", rec)

	scoped.ReportBroken("client.fetch-page", "boom")
	scoped.ReportWarning("assemble.entry", 3)
	scoped.ReportDebug("located entries", 12)
	scoped.ReportCount("entries", 12)

	reports := rec.Reports()
	require.Len(t, reports, 4)
	require.Equal(t, Report{Kind: KindBroken, ID: "fri_scraper: client.fetch-page", Params: []any{"boom"}}, reports[0])
	require.Equal(t, "fri_scraper: assemble.entry", reports[1].ID)
	require.Equal(t, "fri_scraper: located entries", reports[2].ID)
	require.Equal(t, []any{int64(12)}, reports[3].Params)

	require.Len(t, rec.Kind(KindWarning), 1)
	require.Empty(t, (&Recorder{}).Reports())
}

func TestNestedScopes(t *testing.T) {
	rec := &Recorder{}
	scoped := NewScopedAPI("outer", NewScopedAPI("inner", rec))
	scoped.ReportWarning("thing")

	require.Equal(t, "inner: outer: thing", rec.Reports()[0].ID)
}
