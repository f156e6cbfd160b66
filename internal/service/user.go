package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stpnv0/TicketBooker/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// Create stores a new user. Any id the caller supplied is ignored; the
// store assigns one.
func (s *UserService) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	if user.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}

	created, err := s.repo.Create(user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return created, nil
}

// Update applies a partial update; empty fields keep their stored values.
func (s *UserService) Update(ctx context.Context, user *domain.User) (*domain.User, error) {
	updated, err := s.repo.Update(user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return updated, nil
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := s.repo.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := s.repo.GetByEmail(email)
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	return user, nil
}

// GetByName matches names with a contains approach and returns the
// requested page. An empty result is not an error.
func (s *UserService) GetByName(ctx context.Context, namePart string, pageSize, pageNum int) []*domain.User {
	return s.repo.GetByName(namePart, pageSize, pageNum)
}

func (s *UserService) Delete(ctx context.Context, id int64) bool {
	return s.repo.Delete(id)
}
