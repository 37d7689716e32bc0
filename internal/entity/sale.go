package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var (
	ErrSaleNotFound      = errors.New("venda não encontrada")
	ErrSaleAlreadyExists = errors.New("já existe uma venda para este CPF e plano")
	ErrInvalidBillingDay = errors.New("dia de vencimento deve estar entre 1 e 25")
)

// Value Object: Address
type Address struct {
	ZipCode    string `json:"zip_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`
}

// Customer é o snapshot dos dados do cliente congelado dentro da venda.
type Customer struct {
	Name      string  `json:"name"`
	Phone     string  `json:"phone"`
	Email     string  `json:"email"`
	CPF       string  `json:"cpf"`
	BirthDate string  `json:"birth_date"`
	Address   Address `json:"address"`
}

// Entidade: Sale
type Sale struct {
	ID       string   `json:"id"`
	Status   Status   `json:"status"`
	Customer Customer `json:"customer"`

	PlanID        string `json:"plan_id"`
	PlanName      string `json:"plan_name"`
	BillingDueDay int    `json:"billing_due_day"` // 1 a 25

	InstallationDate *time.Time `json:"installation_date,omitempty"`
	LossReason       string     `json:"loss_reason,omitempty"`

	// Dono fixado na criação, nunca transferido.
	SellerID   string `json:"seller_id"`
	SellerName string `json:"seller_name"`
	TeamID     string `json:"team_id,omitempty"`
	TeamName   string `json:"team_name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatusExtra carrega os campos extras exigidos por certas transições.
type StatusExtra struct {
	InstallationDate *time.Time
	LossReason       string
}

// SaleFilter restringe a listagem. O escopo de visibilidade (próprias vendas,
// equipe ou todas) é decidido pela sessão do chamador, nunca pelo cliente.
type SaleFilter struct {
	Status   Status
	SellerID string
	TeamID   string
}

// StatusCount alimenta o dashboard por função.
type StatusCount struct {
	Status Status `json:"status"`
	Count  int    `json:"count"`
}

type SaleRepositoryInterface interface {
	Create(ctx context.Context, s *Sale) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Sale, error)
	List(ctx context.Context, filter SaleFilter) ([]*Sale, error)
	UpdateStatus(ctx context.Context, id string, status Status, extra StatusExtra) error
	UpdateCustomer(ctx context.Context, id string, c Customer) error
	CountByStatus(ctx context.Context, filter SaleFilter) ([]StatusCount, error)
}

// Factory
func NewSale(customer Customer, planID, planName string, billingDueDay int, sellerID, sellerName, teamID, teamName string) (*Sale, error) {
	if billingDueDay < 1 || billingDueDay > 25 {
		return nil, ErrInvalidBillingDay
	}

	sale := &Sale{
		ID:            uuid.New().String(),
		Status:        StatusPending,
		Customer:      customer,
		PlanID:        planID,
		PlanName:      planName,
		BillingDueDay: billingDueDay,
		SellerID:      sellerID,
		SellerName:    sellerName,
		TeamID:        teamID,
		TeamName:      teamName,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	if err := sale.Validate(); err != nil {
		return nil, err
	}

	return sale, nil
}

func (s *Sale) Validate() error {
	if s.Customer.Name == "" {
		return errors.New("name is required")
	}
	if s.Customer.CPF == "" {
		return errors.New("cpf is required")
	}
	if s.Customer.Phone == "" {
		return errors.New("phone is required")
	}
	if s.PlanID == "" {
		return errors.New("plan_id is required")
	}
	if s.SellerID == "" {
		return errors.New("seller_id is required")
	}
	return nil
}
