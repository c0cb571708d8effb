package gcalendar

import (
	"context"
	"time"
)

// Calendar is the subset of Google Calendar used for deadline export.
type Calendar interface {
	CreateAllDayEvent(ctx context.Context, req AllDayEventRequest) (*Event, error)
	ListEvents(ctx context.Context, req ListEventsRequest) ([]Event, error)
}

// AllDayEventRequest creates an event spanning the whole of Date.
type AllDayEventRequest struct {
	CalendarID  string
	Summary     string
	Description string
	Date        time.Time
}

// Event is a simplified Google Calendar event. Date is set for all-day
// events, StartTime/EndTime for timed ones.
type Event struct {
	ID          string
	Summary     string
	Description string
	HtmlLink    string
	Date        string
	StartTime   time.Time
	EndTime     time.Time
}

// ListEventsRequest is the input for listing Google Calendar events.
type ListEventsRequest struct {
	CalendarID string
	TimeMin    time.Time
	TimeMax    time.Time
	MaxResults int64
}
