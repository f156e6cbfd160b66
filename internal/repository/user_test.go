package repository

import (
	"testing"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestUserRepository_Create_Success(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	user, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	_, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	_, err = repo.Create(&domain.User{Name: "Bo", Email: "ann@x.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	_, ok := repo.GetByEmail("ann@x.com")
	assert.True(t, ok, "prior state must be unchanged")
}

func TestUserRepository_Update_PartialFields(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	created, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	updated, err := repo.Update(&domain.User{ID: created.ID, Name: "", Email: "bo@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "Ann", updated.Name, "empty name keeps the stored value")
	assert.Equal(t, "bo@x.com", updated.Email)
}

func TestUserRepository_Update_SameEmailNoConflict(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	created, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	updated, err := repo.Update(&domain.User{ID: created.ID, Name: "Anna", Email: "ann@x.com"})

	require.NoError(t, err)
	assert.Equal(t, "Anna", updated.Name)
	assert.Equal(t, "ann@x.com", updated.Email)
}

func TestUserRepository_Update_DuplicateEmail(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	_, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	bo, err := repo.Create(&domain.User{Name: "Bo", Email: "bo@x.com"})
	require.NoError(t, err)

	_, err = repo.Update(&domain.User{ID: bo.ID, Email: "ann@x.com"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	got, ok := repo.Get(bo.ID)
	require.True(t, ok)
	assert.Equal(t, "bo@x.com", got.Email, "failed update leaves the user unchanged")
}

func TestUserRepository_Update_NotFound(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	_, err := repo.Update(&domain.User{ID: 42, Name: "ghost"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	_, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	user, ok := repo.GetByEmail("ann@x.com")
	require.True(t, ok)
	assert.Equal(t, "Ann", user.Name)

	_, ok = repo.GetByEmail("ANN@x.com")
	assert.False(t, ok, "email match is case-sensitive")
}

func TestUserRepository_GetByName_Pagination(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	for _, u := range []*domain.User{
		{Name: "Ann Lee", Email: "a@x.com"},
		{Name: "Bo", Email: "b@x.com"},
		{Name: "Joanne", Email: "c@x.com"},
		{Name: "Annette", Email: "d@x.com"},
	} {
		_, err := repo.Create(u)
		require.NoError(t, err)
	}

	page1 := repo.GetByName("Ann", 2, 1)
	require.Len(t, page1, 2)
	assert.Equal(t, "Ann Lee", page1[0].Name)
	assert.Equal(t, "Annette", page1[1].Name)

	page2 := repo.GetByName("Ann", 2, 2)
	assert.Empty(t, page2)

	all := repo.GetByName("", 10, 1)
	assert.Len(t, all, 4, "empty name part matches everyone")
}

func TestUserRepository_Delete(t *testing.T) {
	repo := NewUserRepo(newTestLogger(t))

	created, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)

	assert.True(t, repo.Delete(created.ID))
	assert.False(t, repo.Delete(created.ID))
}
