package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/stpnv0/TicketBooker/internal/domain"
	"github.com/stpnv0/TicketBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	defaultPageSize = 10
	defaultPageNum  = 1
)

type UserSvc interface {
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	GetUserByID(ctx context.Context, id int64) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUsersByName(ctx context.Context, namePart string, pageSize, pageNum int) []*domain.User
	DeleteUser(ctx context.Context, id int64) bool
}

type EventSvc interface {
	CreateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	UpdateEvent(ctx context.Context, event *domain.Event) (*domain.Event, error)
	GetEventByID(ctx context.Context, id int64) (*domain.Event, error)
	GetEventsByTitle(ctx context.Context, titlePart string, pageSize, pageNum int) []*domain.Event
	GetEventsForDay(ctx context.Context, day time.Time, pageSize, pageNum int) []*domain.Event
	DeleteEvent(ctx context.Context, id int64) bool
}

type TicketSvc interface {
	BookTicket(ctx context.Context, userID, eventID int64, category domain.Category, place int) (*domain.Ticket, error)
	GetBookedTicketsByUser(ctx context.Context, user *domain.User, pageSize, pageNum int) []*domain.Ticket
	GetBookedTicketsByEvent(ctx context.Context, event *domain.Event, pageSize, pageNum int) []*domain.Ticket
	CancelTicket(ctx context.Context, id int64) bool
}

type Handler struct {
	userService   UserSvc
	eventService  EventSvc
	ticketService TicketSvc
}

func NewHandler(userService UserSvc, eventService EventSvc, ticketService TicketSvc) *Handler {
	return &Handler{
		userService:   userService,
		eventService:  eventService,
		ticketService: ticketService,
	}
}

// Users

func (h *Handler) CreateUser(c *ginext.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &domain.User{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

func (h *Handler) GetUser(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// SearchUsers resolves an exact email lookup when the email query parameter
// is set; otherwise it pages through users whose name contains the name
// parameter (an empty parameter matches everyone).
func (h *Handler) SearchUsers(c *ginext.Context) {
	if email := c.Query("email"); email != "" {
		user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.ToUserResponse(user))
		return
	}

	pageSize, pageNum, ok := pageParams(c)
	if !ok {
		return
	}

	users := h.userService.GetUsersByName(c.Request.Context(), c.Query("name"), pageSize, pageNum)

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateUser(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), &domain.User{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) DeleteUser(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted := h.userService.DeleteUser(c.Request.Context(), id)

	c.JSON(http.StatusOK, ginext.H{"deleted": deleted})
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid date format, expected " + domain.DateLayout,
		})
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &domain.Event{
		Title: req.Title,
		Date:  date,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

// SearchEvents pages events for an exact calendar day when the day query
// parameter is set, otherwise by title substring (an empty title matches
// everything).
func (h *Handler) SearchEvents(c *ginext.Context) {
	pageSize, pageNum, ok := pageParams(c)
	if !ok {
		return
	}

	var events []*domain.Event
	if rawDay := c.Query("day"); rawDay != "" {
		day, err := time.Parse(domain.DateLayout, rawDay)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid day format, expected " + domain.DateLayout,
			})
			return
		}
		events = h.eventService.GetEventsForDay(c.Request.Context(), day, pageSize, pageNum)
	} else {
		events = h.eventService.GetEventsByTitle(c.Request.Context(), c.Query("title"), pageSize, pageNum)
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(domain.DateLayout, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid date format, expected " + domain.DateLayout,
			})
			return
		}
		date = parsed
	}

	event, err := h.eventService.UpdateEvent(c.Request.Context(), &domain.Event{
		ID:    id,
		Title: req.Title,
		Date:  date,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	deleted := h.eventService.DeleteEvent(c.Request.Context(), id)

	c.JSON(http.StatusOK, ginext.H{"deleted": deleted})
}

// Tickets

func (h *Handler) BookTicket(c *ginext.Context) {
	var req dto.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		h.handleError(c, err)
		return
	}

	ticket, err := h.ticketService.BookTicket(c.Request.Context(), req.UserID, req.EventID, category, req.Place)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTicketResponse(ticket))
}

func (h *Handler) GetUserTickets(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pageSize, pageNum, ok := pageParams(c)
	if !ok {
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tickets := h.ticketService.GetBookedTicketsByUser(c.Request.Context(), user, pageSize, pageNum)

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEventTickets(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	pageSize, pageNum, ok := pageParams(c)
	if !ok {
		return
	}

	event, err := h.eventService.GetEventByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	tickets := h.ticketService.GetBookedTicketsByEvent(c.Request.Context(), event, pageSize, pageNum)

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		resp = append(resp, dto.ToTicketResponse(t))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelTicket(c *ginext.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	cancelled := h.ticketService.CancelTicket(c.Request.Context(), id)

	c.JSON(http.StatusOK, ginext.H{"cancelled": cancelled})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrPlaceTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}

func parseID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return 0, false
	}

	return id, true
}

func pageParams(c *ginext.Context) (pageSize, pageNum int, ok bool) {
	pageSize, pageNum = defaultPageSize, defaultPageNum

	if raw := c.Query("pageSize"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pageSize"})
			return 0, 0, false
		}
		pageSize = v
	}

	if raw := c.Query("pageNum"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid pageNum"})
			return 0, 0, false
		}
		pageNum = v
	}

	return pageSize, pageNum, true
}
