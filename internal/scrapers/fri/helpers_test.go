package fri

import (
	"strings"
	"testing"

	"urnik-backend/internal/htmlutil"

	"github.com/stretchr/testify/require"
)

func entriesOf(t testing.TB, page string) []htmlutil.Node {
	t.Helper()
	doc, err := htmlutil.ParseDocument(strings.NewReader(page))
	require.NoError(t, err)
	return LocateEntries(doc)
}

// twoEntryPage is a trimmed down allocations page: one complete entry and one
// with no position and no type.
const twoEntryPage = `<!DOCTYPE html>
<html>
<body>
<div class="grid">
	<div class="grid-day-column" style="grid-area: dayMON">
		<div class="grid-entry" style="grid-row: 2 / span 3;">
			<div class="top-aligned">
				<a class="link-subject" href="/timetable/fri-2024_2025-letni/allocations?subject=63280">Algorithms</a>
				<span class="entry-type">| LAB</span>
			</div>
			<div class="bottom-aligned">
				<a class="link-classroom" href="/timetable/fri-2024_2025-letni/allocations?classroom=P02">P02</a>
				<a class="link-teacher" href="/timetable/fri-2024_2025-letni/allocations?teacher=1">J. Smith</a>
			</div>
		</div>
	</div>
	<div class="grid-day-column">
		<div class="grid-entry">
			<span class="unrelated">nothing useful</span>
		</div>
	</div>
</div>
</body>
</html>`
