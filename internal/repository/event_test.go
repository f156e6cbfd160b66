package repository

import (
	"testing"
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(value string) time.Time {
	d, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEventRepository_Create(t *testing.T) {
	repo := NewEventRepo(newTestLogger(t))

	event := repo.Create(&domain.Event{Title: "Jazz Evening", Date: day("2026-10-02")})

	assert.Equal(t, int64(1), event.ID)
}

func TestEventRepository_GetByTitle_Pagination(t *testing.T) {
	repo := NewEventRepo(newTestLogger(t))

	repo.Create(&domain.Event{Title: "Jazz Evening", Date: day("2026-10-02")})
	repo.Create(&domain.Event{Title: "Rock Festival", Date: day("2026-10-02")})
	repo.Create(&domain.Event{Title: "Jazz Brunch", Date: day("2026-10-03")})
	repo.Create(&domain.Event{Title: "Midnight Jazz", Date: day("2026-10-04")})

	page1 := repo.GetByTitle("Jazz", 2, 1)
	require.Len(t, page1, 2)
	assert.Equal(t, "Jazz Evening", page1[0].Title)
	assert.Equal(t, "Jazz Brunch", page1[1].Title)

	page2 := repo.GetByTitle("Jazz", 2, 2)
	require.Len(t, page2, 1)
	assert.Equal(t, "Midnight Jazz", page2[0].Title)

	page3 := repo.GetByTitle("Jazz", 2, 3)
	assert.Empty(t, page3)
}

func TestEventRepository_GetForDay(t *testing.T) {
	repo := NewEventRepo(newTestLogger(t))

	repo.Create(&domain.Event{Title: "Jazz Evening", Date: day("2026-10-02")})
	repo.Create(&domain.Event{Title: "Rock Festival", Date: day("2026-10-02")})
	repo.Create(&domain.Event{Title: "Symphony Night", Date: day("2026-11-15")})

	events := repo.GetForDay(day("2026-10-02"), 10, 1)
	require.Len(t, events, 2)

	events = repo.GetForDay(day("2026-01-01"), 10, 1)
	assert.Empty(t, events)
}

func TestEventRepository_Update_PartialFields(t *testing.T) {
	repo := NewEventRepo(newTestLogger(t))

	created := repo.Create(&domain.Event{Title: "Jazz Evening", Date: day("2026-10-02")})

	updated, err := repo.Update(&domain.Event{ID: created.ID, Title: "Jazz Night"})
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", updated.Title)
	assert.True(t, updated.Date.Equal(day("2026-10-02")), "zero date keeps the stored value")

	updated, err = repo.Update(&domain.Event{ID: created.ID, Date: day("2026-10-09")})
	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", updated.Title, "empty title keeps the stored value")
	assert.True(t, updated.Date.Equal(day("2026-10-09")))
}

func TestEventRepository_Update_NotFound(t *testing.T) {
	repo := NewEventRepo(newTestLogger(t))

	_, err := repo.Update(&domain.Event{ID: 42, Title: "ghost"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventRepository_Delete(t *testing.T) {
	repo := NewEventRepo(newTestLogger(t))

	created := repo.Create(&domain.Event{Title: "Jazz Evening", Date: day("2026-10-02")})

	assert.True(t, repo.Delete(created.ID))
	assert.False(t, repo.Delete(created.ID))
}
