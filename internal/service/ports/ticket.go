package ports

import (
	"github.com/stpnv0/TicketBooker/internal/domain"
)

type TicketRepo interface {
	Book(ticket *domain.Ticket) (*domain.Ticket, error)
	Get(id int64) (*domain.Ticket, bool)
	GetByUser(userID int64, pageSize, pageNum int) []*domain.Ticket
	GetByEvent(eventID int64, pageSize, pageNum int) []*domain.Ticket
	Cancel(id int64) bool
}
