package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (phone, name, email, district, city, captured_by, status, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, 'NOVO', NOW())
		ON CONFLICT (phone)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, leads.name),
			email = COALESCE(EXCLUDED.email, leads.email),
			district = COALESCE(EXCLUDED.district, leads.district),
			city = COALESCE(EXCLUDED.city, leads.city),
			updated_at = NOW()
		RETURNING id, status, created_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.Phone,
		nullString(lead.Name),
		nullString(lead.Email),
		nullString(lead.District),
		nullString(lead.City),
		nullString(lead.CapturedBy),
	).Scan(
		&lead.ID,
		&lead.Status,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	return err
}

func (r *LeadRepository) List(ctx context.Context) ([]*entity.Lead, error) {
	query := `
		SELECT id, phone, name, email, district, city, captured_by, status, created_at, updated_at
		FROM leads ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar leads: %w", err)
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		var l entity.Lead
		var name, email, district, city, capturedBy sql.NullString

		if err := rows.Scan(&l.ID, &l.Phone, &name, &email, &district, &city, &capturedBy, &l.Status, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}

		l.Name = name.String
		l.Email = email.String
		l.District = district.String
		l.City = city.String
		l.CapturedBy = capturedBy.String
		leads = append(leads, &l)
	}

	return leads, rows.Err()
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
