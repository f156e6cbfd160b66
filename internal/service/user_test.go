package service

import (
	"context"
	"testing"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stpnv0/TicketBooker/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

// The repositories are plain in-memory stores, so the services are tested
// against the real thing instead of mocks.

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newUserService(t *testing.T) *UserService {
	t.Helper()
	return NewUserService(repository.NewUserRepo(newTestLogger(t)))
}

func TestUserService_Create_Success(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(context.Background(), &domain.User{Name: "Ann", Email: "ann@x.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "Ann", user.Name)
}

func TestUserService_Create_EmptyEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(context.Background(), &domain.User{Name: "Ann"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(context.Background(), &domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &domain.User{Name: "Bo", Email: "ann@x.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestUserService_GetByID_NotFound(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.GetByID(context.Background(), 42)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_GetByEmail(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Create(context.Background(), &domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	user, err := svc.GetByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ann", user.Name)

	_, err = svc.GetByEmail(context.Background(), "missing@x.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Update_NotFound(t *testing.T) {
	svc := newUserService(t)

	_, err := svc.Update(context.Background(), &domain.User{ID: 42, Name: "ghost"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserService_Delete(t *testing.T) {
	svc := newUserService(t)

	user, err := svc.Create(context.Background(), &domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	assert.True(t, svc.Delete(context.Background(), user.ID))
	assert.False(t, svc.Delete(context.Background(), user.ID))
}
