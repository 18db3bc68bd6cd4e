package fri

import (
	"regexp"
	"strconv"

	"urnik-backend/internal/htmlutil"
	"urnik-backend/internal/timetable"
)

// firstHour is the hour of the first row of the grid.
const firstHour = 6

var (
	rowSpanRegex = regexp.MustCompile(`grid-row: (\d?\d) / span (\d?\d);`)
	dayAreaRegex = regexp.MustCompile(`grid-area: day(...)`)
)

var dayIndex = map[string]int{
	"MON": 0,
	"TUE": 1,
	"WED": 2,
	"THU": 3,
	"FRI": 4,
}

// Position is where an entry sits on the weekly grid.
type Position struct {
	Day      int
	Time     int
	Duration int
}

// DecodePosition reads the hour and duration from the entry's own inline
// style and the weekday from its parent's. Anything that does not match
// becomes timetable.Unknown.
func DecodePosition(entry htmlutil.Node) Position {
	pos := Position{
		Day:      timetable.Unknown,
		Time:     timetable.Unknown,
		Duration: timetable.Unknown,
	}

	if style, ok := entry.Attr("style"); ok {
		pos.Time, pos.Duration = decodeRowSpan(style)
	}
	if parent, ok := entry.Parent(); ok {
		if style, ok := parent.Attr("style"); ok {
			pos.Day = decodeDay(style)
		}
	}

	return pos
}

func decodeRowSpan(style string) (int, int) {
	groups := rowSpanRegex.FindStringSubmatch(style)
	if len(groups) < 3 {
		return timetable.Unknown, timetable.Unknown
	}
	row, err := strconv.Atoi(groups[1])
	if err != nil {
		return timetable.Unknown, timetable.Unknown
	}
	span, err := strconv.Atoi(groups[2])
	if err != nil {
		return timetable.Unknown, timetable.Unknown
	}
	return firstHour + row, span
}

func decodeDay(style string) int {
	groups := dayAreaRegex.FindStringSubmatch(style)
	if len(groups) < 2 {
		return timetable.Unknown
	}
	day, ok := dayIndex[groups[1]]
	if !ok {
		return timetable.Unknown
	}
	return day
}
