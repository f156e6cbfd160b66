package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stpnv0/TicketBooker/internal/service/ports"
)

type TicketService struct {
	repo ports.TicketRepo
}

func NewTicketService(repo ports.TicketRepo) *TicketService {
	return &TicketService{repo: repo}
}

// Book books a place for the user at the event. The user and event ids are
// not checked for existence; the store only guards the seat itself.
func (s *TicketService) Book(ctx context.Context, userID, eventID int64, category domain.Category, place int) (*domain.Ticket, error) {
	if place <= 0 {
		return nil, fmt.Errorf("%w: place must be positive", domain.ErrValidation)
	}

	ticket := &domain.Ticket{
		UserID:   userID,
		EventID:  eventID,
		Category: category,
		Place:    place,
	}

	booked, err := s.repo.Book(ticket)
	if err != nil {
		return nil, fmt.Errorf("book ticket: %w", err)
	}

	return booked, nil
}

// GetBookedByUser returns the page of the user's tickets, newest event
// first.
func (s *TicketService) GetBookedByUser(ctx context.Context, user *domain.User, pageSize, pageNum int) []*domain.Ticket {
	return s.repo.GetByUser(user.ID, pageSize, pageNum)
}

// GetBookedByEvent returns the page of the event's tickets ordered by the
// booking user's email.
func (s *TicketService) GetBookedByEvent(ctx context.Context, event *domain.Event, pageSize, pageNum int) []*domain.Ticket {
	return s.repo.GetByEvent(event.ID, pageSize, pageNum)
}

func (s *TicketService) Cancel(ctx context.Context, id int64) bool {
	return s.repo.Cancel(id)
}
