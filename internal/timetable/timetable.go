package timetable

import (
	"context"
	"errors"
	"sort"

	"urnik-backend/internal/assert"
	"urnik-backend/internal/textutil"
)

var (
	// ErrFetch is returned when an upstream page could not be retrieved.
	ErrFetch = errors.New("error fetching")
	// ErrParse is returned when a retrieved page could not be turned into a tree.
	ErrParse = errors.New("error parsing")
)

// NotAvailable is written into every string field whose source node is missing.
const NotAvailable = "N/A"

// Unknown is the value of day, time and duration when the position could not
// be decoded. 0 is a valid day (Monday) so it cannot be reused here.
const Unknown = -1

type Subject struct {
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	Location     string `json:"location"`
	Type         string `json:"type"`
}

// TimeBlock is one scheduled occurrence on the weekly grid.
type TimeBlock struct {
	// Day is 0 (Monday) through 4 (Friday).
	Day int `json:"day"`
	// Time is the absolute starting hour of the block.
	Time int `json:"time"`
	// Duration is measured in hours.
	Duration  int     `json:"duration"`
	Professor string  `json:"professor"`
	Classroom string  `json:"classroom"`
	Subject   Subject `json:"subject"`
}

func NewSubject() Subject {
	return Subject{
		Name:         NotAvailable,
		Abbreviation: NotAvailable,
		Location:     NotAvailable,
		Type:         NotAvailable,
	}
}

// NewTimeBlock returns a block with every field set to its sentinel.
func NewTimeBlock() TimeBlock {
	return TimeBlock{
		Day:       Unknown,
		Time:      Unknown,
		Duration:  Unknown,
		Professor: NotAvailable,
		Classroom: NotAvailable,
		Subject:   NewSubject(),
	}
}

// Institution is a timetable source that can be queried by group.
//
// note: fault injection point
type Institution interface {
	// ID is the path segment the institution is served under.
	ID() string
	Timetable(ctx context.Context, group string) ([]TimeBlock, error)
}

// Registry maps institution ids to their implementation. Lookups ignore case
// and whitespace.
type Registry struct {
	institutions map[string]Institution
}

func NewRegistry(institutions ...Institution) Registry {
	r := Registry{institutions: map[string]Institution{}}
	for _, inst := range institutions {
		assert.NotNil(inst, "institution")
		assert.NotEmptyStr(inst.ID(), "institution id")
		r.institutions[textutil.NormalizeName(inst.ID())] = inst
	}
	return r
}

func (r Registry) Get(id string) (Institution, bool) {
	inst, ok := r.institutions[textutil.NormalizeName(id)]
	return inst, ok
}

// IDs returns the normalized ids of every institution in sorted order.
func (r Registry) IDs() []string {
	ids := make([]string, 0, len(r.institutions))
	for id := range r.institutions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
