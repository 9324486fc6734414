package gcalendar

import "time"

// CreateEventRequest is the input for creating an event.
type CreateEventRequest struct {
	CalendarID  string // defaults to the client's calendar
	Summary     string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Timezone    string // IANA name, e.g. "Asia/Shanghai"
}

// Event is a simplified calendar event.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	AllDay      bool
	// Transparent events do not block time.
	Transparent bool
}

// ListEventsRequest is the input for listing events in [TimeMin, TimeMax).
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
