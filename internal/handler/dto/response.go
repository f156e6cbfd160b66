package dto

import (
	"github.com/stpnv0/TicketBooker/internal/domain"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EventResponse struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Date  string `json:"date"`
}

type TicketResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"user_id"`
	EventID  int64  `json:"event_id"`
	Category string `json:"category"`
	Place    int    `json:"place"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:    e.ID,
		Title: e.Title,
		Date:  e.Date.Format(domain.DateLayout),
	}
}

func ToTicketResponse(t *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:       t.ID,
		UserID:   t.UserID,
		EventID:  t.EventID,
		Category: string(t.Category),
		Place:    t.Place,
	}
}
