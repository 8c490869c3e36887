package events

// Event is a single calendar/meetup event.
//
// ID is assigned by the store and immutable once set; only Title may change.
type Event struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
}

// Seed returns the records every fresh store starts with.
func Seed() []Event {
	return []Event{
		{ID: 1, Title: "Tech Meetup"},
		{ID: 2, Title: "Python Workshop"},
	}
}
