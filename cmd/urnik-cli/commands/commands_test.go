package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"urnik-backend/internal/timetable"

	"github.com/stretchr/testify/require"
)

const savedPage = `<div style="grid-area: dayTHU">
	<div class="grid-entry" style="grid-row: 4 / span 2;">
		<a>Compilers</a><span class="entry-type">| P</span>
		<a class="link-classroom">P22</a><a class="link-teacher">B. Slivnik</a>
	</div>
</div>`

func run(t *testing.T, args ...string) string {
	t.Helper()
	*asJson = false
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, rootCmd.Execute())
	return out.String()
}

func savePage(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "page.html")
	require.NoError(t, os.WriteFile(path, []byte(savedPage), 0644))
	return path
}

func TestParseTable(t *testing.T) {
	out := run(t, "parse", savePage(t))
	require.Contains(t, out, "Compilers")
	require.Contains(t, out, "Thu")
	require.Contains(t, out, "10:00-12:00")
	require.Contains(t, out, "B. Slivnik")
}

func TestParseJson(t *testing.T) {
	out := run(t, "parse", "--json", savePage(t))

	var blocks []timetable.TimeBlock
	require.NoError(t, json.Unmarshal([]byte(out), &blocks))
	require.Len(t, blocks, 1)
	require.Equal(t, 3, blocks[0].Day)
	require.Equal(t, 10, blocks[0].Time)
	require.Equal(t, "P", blocks[0].Subject.Type)
	require.Equal(t, "FRI", blocks[0].Subject.Location)
}

func TestHourRange(t *testing.T) {
	block := timetable.NewTimeBlock()
	require.Equal(t, "?", hourRange(block))
	block.Time = 9
	require.Equal(t, "9:00", hourRange(block))
	block.Duration = 3
	require.Equal(t, "9:00-12:00", hourRange(block))
	require.Equal(t, "?", dayName(timetable.Unknown))
	require.Equal(t, "Mon", dayName(0))
}

type pageFetcher string

func (p pageFetcher) FetchPage(context.Context, string) (string, error) {
	return string(p), nil
}

func TestSavingFetcherRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pages", "63.html")
	fetcher := savingFetcher{fetcher: pageFetcher(savedPage), path: path}

	page, err := fetcher.FetchPage(context.Background(), "63")
	require.NoError(t, err)
	require.Equal(t, savedPage, page)

	saved, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, savedPage, string(saved))

	require.Contains(t, run(t, "parse", path), "Compilers")
}
