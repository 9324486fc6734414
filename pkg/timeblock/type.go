package timeblock

// Type is the coarse time-of-day bucket of a start time.
type Type string

const (
	TypeMorning     Type = "morning"
	TypeForenoon    Type = "forenoon"
	TypeAfternoon   Type = "afternoon"
	TypeEvening     Type = "evening"
	TypeUnscheduled Type = "unscheduled"
)

// TypeOf classifies c by its hour: morning [07,09), forenoon [09,12),
// afternoon [12,18), evening [18,24). Anything else is unscheduled.
func TypeOf(c Clock) Type {
	h := c.Hour()
	switch {
	case h >= 7 && h < 9:
		return TypeMorning
	case h >= 9 && h < 12:
		return TypeForenoon
	case h >= 12 && h < 18:
		return TypeAfternoon
	case h >= 18 && h < 24:
		return TypeEvening
	default:
		return TypeUnscheduled
	}
}

// IsValid reports whether t is one of the known buckets.
func (t Type) IsValid() bool {
	switch t {
	case TypeMorning, TypeForenoon, TypeAfternoon, TypeEvening, TypeUnscheduled:
		return true
	}
	return false
}
