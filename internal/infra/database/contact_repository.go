package database

import (
	"context"
	"database/sql"
	"log"

	"github.com/efdeugenio/thynra.com/internal/entity"
)

type ContactRepository struct {
	DB *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{DB: db}
}

func (r *ContactRepository) Create(ctx context.Context, c *entity.ContactRequest) error {
	query := `
		INSERT INTO contact_requests (id, name, email, company, phone, message, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.DB.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Email,
		nullable(c.Company),
		nullable(c.Phone),
		c.Message,
		c.CreatedAt,
	)
	if err != nil {
		log.Printf("contact insert failed: %v", err)
		return err
	}

	return nil
}

func (r *ContactRepository) List(ctx context.Context) ([]*entity.ContactRequest, error) {
	query := `
		SELECT id, name, email, COALESCE(company, ''), COALESCE(phone, ''), message, created_at
		FROM contact_requests
		ORDER BY created_at
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []*entity.ContactRequest
	for rows.Next() {
		var c entity.ContactRequest
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Company, &c.Phone, &c.Message, &c.CreatedAt); err != nil {
			return nil, err
		}
		requests = append(requests, &c)
	}

	return requests, rows.Err()
}

// nullable maps the empty string to NULL so optional columns stay NULL
// instead of accumulating empty strings.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
