package gcalendar

// AllDayEvent is the input for creating an all-day Google Calendar event on
// a single calendar date.
type AllDayEvent struct {
	Summary     string
	Description string
	Date        string // YYYY-MM-DD
}

// Event is a simplified representation of a created Google Calendar event.
type Event struct {
	ID       string
	Summary  string
	HtmlLink string
	Date     string
}
