package usecase

import (
	"time"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type CreateSaleInput struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	CPF       string `json:"cpf"`
	BirthDate string `json:"birth_date"`

	ZipCode    string `json:"zip_code"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	Complement string `json:"complement"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state"`

	PlanID        string `json:"plan_id"`
	BillingDueDay int    `json:"billing_due_day"`
}

type CreateSaleOutput struct {
	ID     string        `json:"id"`
	Status entity.Status `json:"status"`
	Msg    string        `json:"msg"`
}

// UpdateStatusInput descreve uma transição pedida pela apresentação.
//
// MarkLostAllowed é decidido pelo chamador: alguns contextos de tela
// escondem a ação "marcar perdida" mesmo para quem tem a permissão.
type UpdateStatusInput struct {
	Target           entity.Status `json:"target"`
	InstallationDate *time.Time    `json:"installation_date,omitempty"`
	LossReason       string        `json:"loss_reason,omitempty"`
	Force            bool          `json:"force,omitempty"`
	MarkLostAllowed  bool          `json:"-"`
}

// UpdateCustomerInput corrige o snapshot do cliente. Campo vazio mantém o
// valor atual — não há apagamento de campo por esta via.
type UpdateCustomerInput struct {
	Name      string `json:"name,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Email     string `json:"email,omitempty"`
	BirthDate string `json:"birth_date,omitempty"`

	ZipCode    string `json:"zip_code,omitempty"`
	Street     string `json:"street,omitempty"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
}

type CreateUserInput struct {
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	TeamID string      `json:"team_id,omitempty"`
}

type CreateUserOutput struct {
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
}

type UploadDocumentInput struct {
	SaleID      string
	Category    entity.DocumentCategory
	Filename    string
	ContentType string
	Data        []byte
}

type UploadDocumentOutput struct {
	ID         string `json:"id"`
	StorageKey string `json:"storage_key"`
}

type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginOutput struct {
	Token string      `json:"token"`
	ID    string      `json:"id"`
	Name  string      `json:"name"`
	Role  entity.Role `json:"role"`
}

type DashboardOutput struct {
	Total    int                  `json:"total"`
	ByStatus []entity.StatusCount `json:"by_status"`
}
