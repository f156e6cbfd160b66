package repository

import (
	"sort"
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// The sorted ticket queries join against the user and event stores. Only
// reads are needed, so the dependencies are the narrow lookup surface.
type userSource interface {
	Get(id int64) (*domain.User, bool)
}

type eventSource interface {
	Get(id int64) (*domain.Event, bool)
}

type TicketRepository struct {
	storage *Storage[*domain.Ticket]
	users   userSource
	events  eventSource
	log     logger.Logger
}

func NewTicketRepo(users userSource, events eventSource, log logger.Logger) *TicketRepository {
	return &TicketRepository{
		storage: NewStorage[*domain.Ticket](),
		users:   users,
		events:  events,
		log:     log,
	}
}

// Book stores the ticket under a fresh id unless an active ticket already
// holds the same (event, category, place) slot, in which case it fails with
// domain.ErrPlaceTaken. The conflict check and the insert run in one
// critical section. The referenced user and event ids are not verified to
// exist; callers own that check if they need it.
func (r *TicketRepository) Book(ticket *domain.Ticket) (*domain.Ticket, error) {
	booked, err := r.storage.SaveIf(ticket, func(existing []*domain.Ticket) error {
		for _, t := range existing {
			if t.EventID == ticket.EventID && t.Category == ticket.Category && t.Place == ticket.Place {
				return domain.ErrPlaceTaken
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to book ticket",
			logger.Int64("event_id", ticket.EventID),
			logger.String("category", string(ticket.Category)),
			logger.Int("place", ticket.Place),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	r.log.Info("ticket booked",
		logger.Int64("ticket_id", booked.ID),
		logger.Int64("user_id", booked.UserID),
		logger.Int64("event_id", booked.EventID),
	)

	return booked, nil
}

// GetByUser returns the page of the user's tickets sorted by the referenced
// event's date, most recent first. Tickets whose event no longer exists
// sort last.
func (r *TicketRepository) GetByUser(userID int64, pageSize, pageNum int) []*domain.Ticket {
	type dated struct {
		ticket *domain.Ticket
		date   time.Time
	}

	var matched []dated
	for _, t := range r.storage.All() {
		if t.UserID != userID {
			continue
		}
		var date time.Time
		if event, ok := r.events.Get(t.EventID); ok {
			date = event.Date
		}
		matched = append(matched, dated{ticket: t, date: date})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].date.After(matched[j].date)
	})

	tickets := make([]*domain.Ticket, 0, len(matched))
	for _, m := range matched {
		tickets = append(tickets, m.ticket)
	}

	return paginate(tickets, pageSize, pageNum)
}

// GetByEvent returns the page of the event's tickets sorted by the booking
// user's email in ascending order. Tickets whose user no longer exists sort
// first under the empty email.
func (r *TicketRepository) GetByEvent(eventID int64, pageSize, pageNum int) []*domain.Ticket {
	type mailed struct {
		ticket *domain.Ticket
		email  string
	}

	var matched []mailed
	for _, t := range r.storage.All() {
		if t.EventID != eventID {
			continue
		}
		var email string
		if user, ok := r.users.Get(t.UserID); ok {
			email = user.Email
		}
		matched = append(matched, mailed{ticket: t, email: email})
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].email < matched[j].email
	})

	tickets := make([]*domain.Ticket, 0, len(matched))
	for _, m := range matched {
		tickets = append(tickets, m.ticket)
	}

	return paginate(tickets, pageSize, pageNum)
}

// Get returns the ticket and whether it exists.
func (r *TicketRepository) Get(id int64) (*domain.Ticket, bool) {
	return r.storage.Get(id)
}

// Cancel removes the ticket if present and reports whether a removal
// occurred. Cancelling immediately frees the seat for rebooking.
func (r *TicketRepository) Cancel(id int64) bool {
	cancelled := r.storage.Delete(id)
	if cancelled {
		r.log.Info("ticket cancelled", logger.Int64("ticket_id", id))
	}

	return cancelled
}

// Put inserts a ticket keeping its preassigned id. Preload only.
func (r *TicketRepository) Put(ticket *domain.Ticket) {
	r.storage.Put(ticket)
}
