package ports

import (
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
)

type EventRepo interface {
	Create(event *domain.Event) *domain.Event
	Update(event *domain.Event) (*domain.Event, error)
	Get(id int64) (*domain.Event, bool)
	GetByTitle(titlePart string, pageSize, pageNum int) []*domain.Event
	GetForDay(day time.Time, pageSize, pageNum int) []*domain.Event
	Delete(id int64) bool
}
