package datemath

import (
	"time"

	"task-scheduler/pkg/timeblock"
)

// HintKind tells how much of a time expression was recognised.
type HintKind string

const (
	HintNone     HintKind = "none"
	HintSpecific HintKind = "specific"
	HintPeriod   HintKind = "period"
)

const (
	ConfidenceSpecific = 0.9
	ConfidencePeriod   = 0.6
)

// TimeHint is the structured result of parsing a free-form time phrase.
// Date is always set (today when no date phrase is present).
// Confidence is diagnostic only.
type TimeHint struct {
	Kind       HintKind        `json:"kind"`
	Date       time.Time       `json:"date"`
	Time       timeblock.Clock `json:"time,omitempty"`
	Period     string          `json:"period,omitempty"`
	Block      timeblock.Type  `json:"block,omitempty"`
	Window     Window          `json:"window,omitempty"`
	Confidence float64         `json:"confidence"`
}

// HasTime reports whether the hint carries an exact start time.
func (h TimeHint) HasTime() bool { return h.Kind == HintSpecific }

// DateString formats Date in storage layout.
func (h TimeHint) DateString() string { return timeblock.FormatDate(h.Date) }

// Window is a half-open [Start, End) range of the day.
type Window struct {
	Start timeblock.Clock `json:"start"`
	End   timeblock.Clock `json:"end"`
}

// Contains reports whether [start, start+duration) fits inside w.
func (w Window) Contains(start timeblock.Clock, duration int) bool {
	return start >= w.Start && start.Add(duration) <= w.End
}

// period is one row of the named period table.
type period struct {
	word   string
	block  timeblock.Type
	window Window
}
