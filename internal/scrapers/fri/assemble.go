package fri

import (
	"fmt"
	"io"

	"urnik-backend/internal/htmlutil"
	"urnik-backend/internal/timetable"
)

// Location is the campus tag attached to every subject.
const Location = "FRI"

// Assemble builds exactly one block per entry, in the order given.
func Assemble(entries []htmlutil.Node, location string) []timetable.TimeBlock {
	blocks := make([]timetable.TimeBlock, 0, len(entries))
	for _, entry := range entries {
		blocks = append(blocks, assembleEntry(entry, location))
	}
	return blocks
}

func assembleEntry(entry htmlutil.Node, location string) timetable.TimeBlock {
	pos := DecodePosition(entry)
	fields := ExtractFields(entry)

	block := timetable.NewTimeBlock()
	block.Day = pos.Day
	block.Time = pos.Time
	block.Duration = pos.Duration
	block.Professor = fields.Professor
	block.Classroom = fields.Classroom
	// the page only carries one label for a subject
	block.Subject = timetable.Subject{
		Name:         fields.Subject,
		Abbreviation: fields.Subject,
		Location:     location,
		Type:         fields.Type,
	}
	return block
}

// ParseTimetable extracts the timetable from a full allocations page.
func ParseTimetable(r io.Reader) ([]timetable.TimeBlock, error) {
	doc, err := htmlutil.ParseDocument(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", timetable.ErrParse, err)
	}
	return Assemble(LocateEntries(doc), Location), nil
}
