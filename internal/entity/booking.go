package entity

import (
	"context"
	"time"
)

type BookingRequest struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Company       string    `json:"company,omitempty"`
	PreferredTime string    `json:"preferred_time,omitempty"`
	Message       string    `json:"message,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BookingRepositoryInterface interface {
	Create(ctx context.Context, b *BookingRequest) error
	List(ctx context.Context) ([]*BookingRequest, error)
}
