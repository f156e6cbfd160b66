package domain

import "fmt"

type Category string

const (
	CategoryBar      Category = "BAR"
	CategoryStandard Category = "STANDARD"
	CategoryPremium  Category = "PREMIUM"
)

// ParseCategory converts a raw string into a Category.
func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryBar, CategoryStandard, CategoryPremium:
		return c, nil
	default:
		return "", fmt.Errorf("%w: unknown ticket category %q", ErrValidation, s)
	}
}

// Ticket references its user and event by id only; the stores do not
// cascade-delete tickets when a user or event is removed.
type Ticket struct {
	ID       int64    `json:"id"`
	UserID   int64    `json:"user_id"`
	EventID  int64    `json:"event_id"`
	Category Category `json:"category"`
	Place    int      `json:"place"`
}

func (t *Ticket) GetID() int64   { return t.ID }
func (t *Ticket) SetID(id int64) { t.ID = id }
