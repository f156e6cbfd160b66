package repository

import (
	"strings"
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type EventRepository struct {
	storage *Storage[*domain.Event]
	log     logger.Logger
}

func NewEventRepo(log logger.Logger) *EventRepository {
	return &EventRepository{
		storage: NewStorage[*domain.Event](),
		log:     log,
	}
}

// Create stores the event under a fresh id. Events carry no uniqueness
// constraint.
func (r *EventRepository) Create(event *domain.Event) *domain.Event {
	saved := r.storage.Save(event)

	r.log.Info("event saved", logger.Int64("event_id", saved.ID))

	return saved
}

// Update applies a partial update matched by id: an empty title or a zero
// date keeps the stored value.
func (r *EventRepository) Update(updated *domain.Event) (*domain.Event, error) {
	event, ok, _ := r.storage.Mutate(updated.ID, func(current *domain.Event, _ []*domain.Event) (*domain.Event, error) {
		next := *current

		if updated.Title != "" {
			next.Title = updated.Title
		}
		if !updated.Date.IsZero() {
			next.Date = updated.Date
		}

		return &next, nil
	})
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	r.log.Info("event updated", logger.Int64("event_id", event.ID))

	return event, nil
}

// Get returns the event and whether it exists.
func (r *EventRepository) Get(id int64) (*domain.Event, bool) {
	return r.storage.Get(id)
}

// GetByTitle returns the page of events whose title contains titlePart.
func (r *EventRepository) GetByTitle(titlePart string, pageSize, pageNum int) []*domain.Event {
	var matched []*domain.Event
	for _, e := range r.storage.All() {
		if strings.Contains(e.Title, titlePart) {
			matched = append(matched, e)
		}
	}

	return paginate(matched, pageSize, pageNum)
}

// GetForDay returns the page of events scheduled on the given calendar day.
func (r *EventRepository) GetForDay(day time.Time, pageSize, pageNum int) []*domain.Event {
	var matched []*domain.Event
	for _, e := range r.storage.All() {
		if domain.SameDay(e.Date, day) {
			matched = append(matched, e)
		}
	}

	return paginate(matched, pageSize, pageNum)
}

// Delete removes the event if present and reports whether a removal
// occurred. Tickets referencing the event are left untouched.
func (r *EventRepository) Delete(id int64) bool {
	deleted := r.storage.Delete(id)
	if deleted {
		r.log.Info("event deleted", logger.Int64("event_id", id))
	}

	return deleted
}

// Put inserts an event keeping its preassigned id. Preload only.
func (r *EventRepository) Put(event *domain.Event) {
	r.storage.Put(event)
}
