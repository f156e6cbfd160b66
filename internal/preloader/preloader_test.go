package preloader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stpnv0/TicketBooker/internal/repository"
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

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestUserPreloader_KeepsSeedIDs(t *testing.T) {
	log := newTestLogger(t)
	repo := repository.NewUserRepo(log)

	path := writeFile(t, "users.json",
		`[{"id": 1, "name": "Jules Mcnally", "email": "jules@extex.org"},
		  {"id": 3, "name": "Ina Fulton", "email": "ina@nickia.com"}]`)

	require.NoError(t, NewUserPreloader(path, repo, log).Preload())

	user, ok := repo.Get(3)
	require.True(t, ok)
	assert.Equal(t, "Ina Fulton", user.Name)

	created, err := repo.Create(&domain.User{Name: "Ann", Email: "ann@x.com"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), created.ID, "sequence starts above the max preloaded id")
}

func TestUserPreloader_MissingFile(t *testing.T) {
	log := newTestLogger(t)
	repo := repository.NewUserRepo(log)

	err := NewUserPreloader(filepath.Join(t.TempDir(), "absent.json"), repo, log).Preload()

	require.Error(t, err)
}

func TestEventPreloader_ParsesDates(t *testing.T) {
	log := newTestLogger(t)
	repo := repository.NewEventRepo(log)

	path := writeFile(t, "events.json",
		`[{"id": 2, "title": "Jazz Evening", "date": "2026-10-02"}]`)

	require.NoError(t, NewEventPreloader(path, repo, log).Preload())

	event, ok := repo.Get(2)
	require.True(t, ok)
	assert.Equal(t, "Jazz Evening", event.Title)
	assert.Equal(t, "2026-10-02", event.Date.Format(domain.DateLayout))
}

func TestEventPreloader_BadDate(t *testing.T) {
	log := newTestLogger(t)
	repo := repository.NewEventRepo(log)

	path := writeFile(t, "events.json",
		`[{"id": 1, "title": "Jazz Evening", "date": "02.10.2026"}]`)

	require.Error(t, NewEventPreloader(path, repo, log).Preload())
}

func TestTicketPreloader_ValidatesCategory(t *testing.T) {
	log := newTestLogger(t)
	users := repository.NewUserRepo(log)
	events := repository.NewEventRepo(log)
	repo := repository.NewTicketRepo(users, events, log)

	good := writeFile(t, "tickets.json",
		`[{"id": 1, "user_id": 1, "event_id": 1, "category": "PREMIUM", "place": 7}]`)
	require.NoError(t, NewTicketPreloader(good, repo, log).Preload())

	ticket, ok := repo.Get(1)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryPremium, ticket.Category)

	bad := writeFile(t, "bad.json",
		`[{"id": 2, "user_id": 1, "event_id": 1, "category": "BALCONY", "place": 7}]`)
	err := NewTicketPreloader(bad, repo, log).Preload()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
