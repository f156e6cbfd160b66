package facade

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stpnv0/TicketBooker/internal/service"
	"github.com/wb-go/wbf/logger"
)

// DataPreloader loads one batch of seed entities into its store, preserving
// the ids the seed data carries.
type DataPreloader interface {
	Preload() error
}

// BookingFacade is the single call surface over the user, event and ticket
// services. It delegates without adding logic of its own.
type BookingFacade struct {
	users      *service.UserService
	events     *service.EventService
	tickets    *service.TicketService
	preloaders []DataPreloader
	log        logger.Logger
}

func New(
	users *service.UserService,
	events *service.EventService,
	tickets *service.TicketService,
	preloaders []DataPreloader,
	log logger.Logger,
) *BookingFacade {
	return &BookingFacade{
		users:      users,
		events:     events,
		tickets:    tickets,
		preloaders: preloaders,
		log:        log,
	}
}

// PreloadData runs every configured preloader once. Meant to be called
// before the facade serves its first request.
func (f *BookingFacade) PreloadData() error {
	for _, p := range f.preloaders {
		if err := p.Preload(); err != nil {
			return fmt.Errorf("preload data: %w", err)
		}
	}

	f.log.Info("seed data preloaded", logger.Int("preloaders", len(f.preloaders)))

	return nil
}

// Users

func (f *BookingFacade) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	return f.users.Create(ctx, user)
}

func (f *BookingFacade) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	return f.users.Update(ctx, user)
}

func (f *BookingFacade) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	return f.users.GetByID(ctx, id)
}

func (f *BookingFacade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.users.GetByEmail(ctx, email)
}

func (f *BookingFacade) GetUsersByName(ctx context.Context, namePart string, pageSize, pageNum int) []*domain.User {
	return f.users.GetByName(ctx, namePart, pageSize, pageNum)
}

func (f *BookingFacade) DeleteUser(ctx context.Context, id int64) bool {
	return f.users.Delete(ctx, id)
}

// Events

func (f *BookingFacade) CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	return f.events.Create(ctx, event)
}

func (f *BookingFacade) UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	return f.events.Update(ctx, event)
}

func (f *BookingFacade) GetEventByID(ctx context.Context, id int64) (*domain.Event, error) {
	return f.events.GetByID(ctx, id)
}

func (f *BookingFacade) GetEventsByTitle(ctx context.Context, titlePart string, pageSize, pageNum int) []*domain.Event {
	return f.events.GetByTitle(ctx, titlePart, pageSize, pageNum)
}

func (f *BookingFacade) GetEventsForDay(ctx context.Context, day time.Time, pageSize, pageNum int) []*domain.Event {
	return f.events.GetForDay(ctx, day, pageSize, pageNum)
}

func (f *BookingFacade) DeleteEvent(ctx context.Context, id int64) bool {
	return f.events.Delete(ctx, id)
}

// Tickets

func (f *BookingFacade) BookTicket(ctx context.Context, userID, eventID int64, category domain.Category, place int) (*domain.Ticket, error) {
	return f.tickets.Book(ctx, userID, eventID, category, place)
}

func (f *BookingFacade) GetBookedTicketsByUser(ctx context.Context, user *domain.User, pageSize, pageNum int) []*domain.Ticket {
	return f.tickets.GetBookedByUser(ctx, user, pageSize, pageNum)
}

func (f *BookingFacade) GetBookedTicketsByEvent(ctx context.Context, event *domain.Event, pageSize, pageNum int) []*domain.Ticket {
	return f.tickets.GetBookedByEvent(ctx, event, pageSize, pageNum)
}

func (f *BookingFacade) CancelTicket(ctx context.Context, id int64) bool {
	return f.tickets.Cancel(ctx, id)
}
