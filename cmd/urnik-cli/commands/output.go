package commands

import (
	"encoding/json"
	"io"
	"strconv"

	"urnik-backend/internal/timetable"

	"github.com/jedib0t/go-pretty/v6/table"
)

var dayNames = []string{"Mon", "Tue", "Wed", "Thu", "Fri"}

func dayName(day int) string {
	if day < 0 || day >= len(dayNames) {
		return "?"
	}
	return dayNames[day]
}

func hourRange(block timetable.TimeBlock) string {
	if block.Time == timetable.Unknown {
		return "?"
	}
	if block.Duration == timetable.Unknown {
		return strconv.Itoa(block.Time) + ":00"
	}
	return strconv.Itoa(block.Time) + ":00-" + strconv.Itoa(block.Time+block.Duration) + ":00"
}

func writeTimetable(out io.Writer, blocks []timetable.TimeBlock, asJson bool) error {
	if asJson {
		if blocks == nil {
			blocks = []timetable.TimeBlock{}
		}
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(blocks)
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Day", "Hours", "Subject", "Type", "Professor", "Classroom"})
	for _, b := range blocks {
		t.AppendRow(table.Row{
			dayName(b.Day),
			hourRange(b),
			b.Subject.Name,
			b.Subject.Type,
			b.Professor,
			b.Classroom,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "Entries", len(blocks)})
	t.Render()
	return nil
}
