package ports

import (
	"github.com/stpnv0/TicketBooker/internal/domain"
)

type UserRepo interface {
	Create(user *domain.User) (*domain.User, error)
	Update(user *domain.User) (*domain.User, error)
	Get(id int64) (*domain.User, bool)
	GetByEmail(email string) (*domain.User, bool)
	GetByName(namePart string, pageSize, pageNum int) []*domain.User
	Delete(id int64) bool
}
