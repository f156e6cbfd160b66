package domain

import "time"

// DateLayout is the wire format for event dates. Events carry a calendar
// day with no time-of-day component.
const DateLayout = "2006-01-02"

type Event struct {
	ID    int64     `json:"id"`
	Title string    `json:"title"`
	Date  time.Time `json:"date"`
}

func (e *Event) GetID() int64   { return e.ID }
func (e *Event) SetID(id int64) { e.ID = id }

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
