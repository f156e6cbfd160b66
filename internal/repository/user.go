package repository

import (
	"strings"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type UserRepository struct {
	storage *Storage[*domain.User]
	log     logger.Logger
}

func NewUserRepo(log logger.Logger) *UserRepository {
	return &UserRepository{
		storage: NewStorage[*domain.User](),
		log:     log,
	}
}

// Create stores the user under a fresh id. Fails with domain.ErrEmailTaken
// when another user already holds the email; the uniqueness check and the
// insert run in one critical section.
func (r *UserRepository) Create(user *domain.User) (*domain.User, error) {
	saved, err := r.storage.SaveIf(user, func(existing []*domain.User) error {
		for _, u := range existing {
			if u.Email == user.Email {
				return domain.ErrEmailTaken
			}
		}
		return nil
	})
	if err != nil {
		r.log.Error("failed to create user",
			logger.String("email", user.Email),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	r.log.Info("user saved", logger.Int64("user_id", saved.ID))

	return saved, nil
}

// Update applies a partial update matched by id. Empty name or email fields
// keep the stored value. A non-empty email that differs from the stored one
// is re-validated against the full live set; the check only runs on a
// changed email, so a user keeping their own email never collides with
// themselves.
func (r *UserRepository) Update(updated *domain.User) (*domain.User, error) {
	user, ok, err := r.storage.Mutate(updated.ID, func(current *domain.User, all []*domain.User) (*domain.User, error) {
		next := *current

		if updated.Email != "" && updated.Email != current.Email {
			for _, u := range all {
				if u.Email == updated.Email {
					return nil, domain.ErrEmailTaken
				}
			}
			next.Email = updated.Email
		}

		if updated.Name != "" {
			next.Name = updated.Name
		}

		return &next, nil
	})
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		r.log.Error("failed to update user",
			logger.Int64("user_id", updated.ID),
			logger.String("error", err.Error()),
		)
		return nil, err
	}

	r.log.Info("user updated", logger.Int64("user_id", user.ID))

	return user, nil
}

// Get returns the user and whether it exists.
func (r *UserRepository) Get(id int64) (*domain.User, bool) {
	return r.storage.Get(id)
}

// GetByEmail returns the first user with exactly the given email. Email
// uniqueness guarantees at most one match.
func (r *UserRepository) GetByEmail(email string) (*domain.User, bool) {
	for _, u := range r.storage.All() {
		if u.Email == email {
			return u, true
		}
	}

	return nil, false
}

// GetByName returns the page of users whose name contains namePart.
func (r *UserRepository) GetByName(namePart string, pageSize, pageNum int) []*domain.User {
	var matched []*domain.User
	for _, u := range r.storage.All() {
		if strings.Contains(u.Name, namePart) {
			matched = append(matched, u)
		}
	}

	return paginate(matched, pageSize, pageNum)
}

// Delete removes the user if present and reports whether a removal occurred.
func (r *UserRepository) Delete(id int64) bool {
	deleted := r.storage.Delete(id)
	if deleted {
		r.log.Info("user deleted", logger.Int64("user_id", id))
	}

	return deleted
}

// Put inserts a user keeping its preassigned id. Preload only.
func (r *UserRepository) Put(user *domain.User) {
	r.storage.Put(user)
}
