package dto

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateUserRequest carries a partial update: empty fields keep the stored
// values.
type UpdateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type CreateEventRequest struct {
	Title string `json:"title" binding:"required"`
	Date  string `json:"date" binding:"required"`
}

type UpdateEventRequest struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

type BookTicketRequest struct {
	UserID   int64  `json:"user_id" binding:"required"`
	EventID  int64  `json:"event_id" binding:"required"`
	Category string `json:"category" binding:"required"`
	Place    int    `json:"place" binding:"required,gt=0"`
}
