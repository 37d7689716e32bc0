package entity

import (
	"context"
	"time"
)

// Lead é um contato captado na rua antes de virar venda.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name,omitempty"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	District   string    `json:"district,omitempty"`
	City       string    `json:"city,omitempty"`
	Status     string    `json:"status"` // NOVO, CONTATADO, CONVERTIDO
	CapturedBy string    `json:"captured_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type LeadRepositoryInterface interface {
	// Upsert dedup por telefone: captar o mesmo contato duas vezes só atualiza.
	Upsert(ctx context.Context, lead *Lead) error
	List(ctx context.Context) ([]*Lead, error)
}
