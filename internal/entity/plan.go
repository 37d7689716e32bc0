package entity

import (
	"context"
	"errors"
)

var ErrPlanNotFound = errors.New("plano não encontrado")

// Plan é um plano de telefonia/internet ofertado na venda.
type Plan struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PriceCents   int    `json:"price_cents"`
	OperatorCode string `json:"operator_code"`
}

type PlanRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*Plan, error)
	List(ctx context.Context) ([]*Plan, error)
}
