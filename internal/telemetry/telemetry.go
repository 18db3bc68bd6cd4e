package telemetry

import (
	"fmt"
)

// API is the sink every component reports to instead of logging directly.
// Tests swap it for a Recorder to assert on what was reported.
//
// note: fault injection point
type API interface {
	// ReportBroken reports a component that failed in a way that should be looked at.
	//
	// The id names the component and method, not the specific failure, ex. `client.fetch-page`.
	// Ids are lowercase, underscores separate words of a component and dashes separate words
	// of a method. Details go into params.
	ReportBroken(id string, params ...any)

	// ReportWarning reports something unexpected that did not fail the operation.
	ReportWarning(id string, params ...any)

	// ReportDebug reports information that is dropped outside of verbose mode.
	ReportDebug(msg string, params ...any)

	// ReportCount reports the value of a counter at this point in time. Values are
	// points in a series and should not be summed.
	ReportCount(id string, count int64)
}

// ScopedAPI prefixes every id with a namespace, like a sub-logger.
type ScopedAPI struct {
	namespace string
	inner     API
}

func NewScopedAPI(namespace string, inner API) ScopedAPI {
	return ScopedAPI{namespace: namespace, inner: inner}
}

func (s ScopedAPI) ReportBroken(id string, params ...any) {
	s.inner.ReportBroken(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportWarning(id string, params ...any) {
	s.inner.ReportWarning(fmt.Sprintf("%s: %s", s.namespace, id), params...)
}

func (s ScopedAPI) ReportDebug(msg string, params ...any) {
	s.inner.ReportDebug(fmt.Sprintf("%s: %s", s.namespace, msg), params...)
}

func (s ScopedAPI) ReportCount(id string, count int64) {
	s.inner.ReportCount(fmt.Sprintf("%s: %s", s.namespace, id), count)
}
