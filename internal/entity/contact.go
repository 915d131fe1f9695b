package entity

import (
	"context"
	"time"
)

type ContactRequest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// Records are insert-only: nothing updates or deletes a request after it
// is stored, so implementations only need Create and List.
type ContactRepositoryInterface interface {
	Create(ctx context.Context, c *ContactRequest) error
	List(ctx context.Context) ([]*ContactRequest, error)
}
