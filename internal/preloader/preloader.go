// Package preloader loads seed entities from JSON files into the stores
// before the first request. Seed entities keep the ids the files carry;
// each store's id sequence starts above the highest preloaded id.
package preloader

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type userSink interface {
	Put(user *domain.User)
}

type eventSink interface {
	Put(event *domain.Event)
}

type ticketSink interface {
	Put(ticket *domain.Ticket)
}

func loadSeed[T any](path string) ([]T, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var entries []T
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}

	return entries, nil
}

type UserPreloader struct {
	path string
	sink userSink
	log  logger.Logger
}

func NewUserPreloader(path string, sink userSink, log logger.Logger) *UserPreloader {
	return &UserPreloader{path: path, sink: sink, log: log}
}

func (p *UserPreloader) Preload() error {
	users, err := loadSeed[domain.User](p.path)
	if err != nil {
		return fmt.Errorf("preload users: %w", err)
	}

	for i := range users {
		p.sink.Put(&users[i])
	}

	p.log.Info("users preloaded",
		logger.String("file", p.path),
		logger.Int("count", len(users)),
	)

	return nil
}

type EventPreloader struct {
	path string
	sink eventSink
	log  logger.Logger
}

func NewEventPreloader(path string, sink eventSink, log logger.Logger) *EventPreloader {
	return &EventPreloader{path: path, sink: sink, log: log}
}

// eventSeed carries the date as a plain calendar day.
type eventSeed struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

func (p *EventPreloader) Preload() error {
	entries, err := loadSeed[eventSeed](p.path)
	if err != nil {
		return fmt.Errorf("preload events: %w", err)
	}

	for _, e := range entries {
		date, err := time.Parse(domain.DateLayout, e.Date)
		if err != nil {
			return fmt.Errorf("preload events: parse date %q: %w", e.Date, err)
		}
		p.sink.Put(&domain.Event{ID: e.ID, Title: e.Title, Date: date})
	}

	p.log.Info("events preloaded",
		logger.String("file", p.path),
		logger.Int("count", len(entries)),
	)

	return nil
}

type TicketPreloader struct {
	path string
	sink ticketSink
	log  logger.Logger
}

func NewTicketPreloader(path string, sink ticketSink, log logger.Logger) *TicketPreloader {
	return &TicketPreloader{path: path, sink: sink, log: log}
}

func (p *TicketPreloader) Preload() error {
	tickets, err := loadSeed[domain.Ticket](p.path)
	if err != nil {
		return fmt.Errorf("preload tickets: %w", err)
	}

	for i := range tickets {
		if _, err := domain.ParseCategory(string(tickets[i].Category)); err != nil {
			return fmt.Errorf("preload tickets: %w", err)
		}
		p.sink.Put(&tickets[i])
	}

	p.log.Info("tickets preloaded",
		logger.String("file", p.path),
		logger.Int("count", len(tickets)),
	)

	return nil
}
