package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type PlanRepository struct {
	DB *sql.DB
}

func NewPlanRepository(db *sql.DB) *PlanRepository {
	return &PlanRepository{DB: db}
}

func (r *PlanRepository) FindByID(ctx context.Context, id string) (*entity.Plan, error) {
	query := `SELECT id, name, price_cents, operator_code FROM plans WHERE id = $1`

	var plan entity.Plan
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&plan.ID,
		&plan.Name,
		&plan.PriceCents,
		&plan.OperatorCode,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrPlanNotFound
		}
		return nil, fmt.Errorf("falha ao buscar plano: %w", err)
	}

	return &plan, nil
}

func (r *PlanRepository) List(ctx context.Context) ([]*entity.Plan, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id, name, price_cents, operator_code FROM plans ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar planos: %w", err)
	}
	defer rows.Close()

	var plans []*entity.Plan
	for rows.Next() {
		var p entity.Plan
		if err := rows.Scan(&p.ID, &p.Name, &p.PriceCents, &p.OperatorCode); err != nil {
			return nil, err
		}
		plans = append(plans, &p)
	}

	return plans, rows.Err()
}
