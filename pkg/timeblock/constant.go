package timeblock

const (
	// DateLayout is the storage layout of calendar dates.
	DateLayout = "2006-01-02"
	// ClockLayout is the storage layout of start times.
	ClockLayout = "15:04"

	MinutesPerDay = 24 * 60

	// GridStep is the slot granularity in minutes.
	GridStep = 30

	MinDuration     = 20
	MaxDuration     = 120
	DefaultDuration = 60
)
