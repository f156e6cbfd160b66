package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stpnv0/TicketBooker/internal/service/ports"
)

type EventService struct {
	repo ports.EventRepo
}

func NewEventService(repo ports.EventRepo) *EventService {
	return &EventService{repo: repo}
}

// Create stores a new event. Any id the caller supplied is ignored; the
// store assigns one.
func (s *EventService) Create(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	if event.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}

	return s.repo.Create(event), nil
}

// Update applies a partial update; an empty title or zero date keeps the
// stored value.
func (s *EventService) Update(ctx context.Context, event *domain.Event) (*domain.Event, error) {
	updated, err := s.repo.Update(event)
	if err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return updated, nil
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	event, ok := s.repo.Get(id)
	if !ok {
		return nil, domain.ErrEventNotFound
	}

	return event, nil
}

// GetByTitle matches titles with a contains approach and returns the
// requested page.
func (s *EventService) GetByTitle(ctx context.Context, titlePart string, pageSize, pageNum int) []*domain.Event {
	return s.repo.GetByTitle(titlePart, pageSize, pageNum)
}

// GetForDay returns the page of events falling on the given calendar day.
func (s *EventService) GetForDay(ctx context.Context, day time.Time, pageSize, pageNum int) []*domain.Event {
	return s.repo.GetForDay(day, pageSize, pageNum)
}

func (s *EventService) Delete(ctx context.Context, id int64) bool {
	return s.repo.Delete(id)
}
