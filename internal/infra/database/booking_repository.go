package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.BookingRequest) error {
	query := `
		INSERT INTO booking_requests (id, name, email, company, preferred_time, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		b.ID,
		b.Name,
		b.Email,
		nullable(b.Company),
		nullable(b.PreferredTime),
		nullable(b.Message),
		b.CreatedAt,
	)
	if err != nil {
		log.Printf("booking insert failed: %v", err)
		return err
	}

	return nil
}

func (r *BookingRepository) List(ctx context.Context) ([]*entity.BookingRequest, error) {
	query := `
		SELECT id, name, email, COALESCE(company, ''), COALESCE(preferred_time, ''), COALESCE(message, ''), created_at
		FROM booking_requests
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*entity.BookingRequest
	for rows.Next() {
		var b entity.BookingRequest
		if err := rows.Scan(&b.ID, &b.Name, &b.Email, &b.Company, &b.PreferredTime, &b.Message, &b.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, &b)
	}

	return requests, rows.Err()
}
