package database

import (
	"context"
	"sync"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

// In-memory repositories back the reference deployment: records are
// insert-only, so a map guarded by an RWMutex is race-free without any
// further coordination.

type MemoryContactRepository struct {
	mu       sync.RWMutex
	requests map[string]*entity.ContactRequest
	order    []string
}

func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{
		requests: make(map[string]*entity.ContactRequest),
	}
}

func (r *MemoryContactRepository) Create(ctx context.Context, c *entity.ContactRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	r.requests[c.ID] = &stored
	r.order = append(r.order, c.ID)
	return nil
}

func (r *MemoryContactRepository) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ContactRequest, 0, len(r.order))
	for _, id := range r.order {
		record := *r.requests[id]
		out = append(out, &record)
	}
	return out, nil
}

type MemoryBookingRepository struct {
	mu       sync.RWMutex
	requests map[string]*entity.BookingRequest
	order    []string
}

func NewMemoryBookingRepository() *MemoryBookingRepository {
	return &MemoryBookingRepository{
		requests: make(map[string]*entity.BookingRequest),
	}
}

func (r *MemoryBookingRepository) Create(ctx context.Context, b *entity.BookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *b
	r.requests[b.ID] = &stored
	r.order = append(r.order, b.ID)
	return nil
}

func (r *MemoryBookingRepository) List(ctx context.Context) ([]*entity.BookingRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.BookingRequest, 0, len(r.order))
	for _, id := range r.order {
		record := *r.requests[id]
		out = append(out, &record)
	}
	return out, nil
}
