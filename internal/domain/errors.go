package domain

import "errors"

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrEventNotFound  = errors.New("event not found")
	ErrTicketNotFound = errors.New("ticket not found")
)

var (
	ErrEmailTaken = errors.New("user email must be unique")
	ErrPlaceTaken = errors.New("place is already booked")
)

var (
	ErrValidation = errors.New("validation error")
)
