package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

type UpdateCustomerUseCase struct {
	SaleRepo entity.SaleRepositoryInterface
	Logger   *zap.Logger
}

func NewUpdateCustomerUseCase(saleRepo entity.SaleRepositoryInterface, logger *zap.Logger) *UpdateCustomerUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpdateCustomerUseCase{SaleRepo: saleRepo, Logger: logger}
}

// Execute corrige campos do snapshot do cliente. Fora a permissão, não há
// regra de negócio: é correção livre de cadastro.
func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, sess auth.Session, saleID string, input UpdateCustomerInput) error {
	if !sess.Capabilities().CanEditCustomer {
		return NewUnauthorized("sua função não permite editar dados do cliente")
	}

	sale, err := uc.SaleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return NewNotFound("venda não encontrada")
		}
		return NewPersistenceError("falha ao buscar venda: " + err.Error())
	}

	updated := mergeCustomer(sale.Customer, input)

	if err := uc.SaleRepo.UpdateCustomer(ctx, sale.ID, updated); err != nil {
		return NewPersistenceError("falha ao atualizar cliente: " + err.Error())
	}

	uc.Logger.Info("snapshot do cliente corrigido",
		zap.String("sale_id", sale.ID),
		zap.String("user_id", sess.UserID),
	)

	return nil
}

func mergeCustomer(current entity.Customer, input UpdateCustomerInput) entity.Customer {
	pick := func(newVal, oldVal string) string {
		if newVal != "" {
			return newVal
		}
		return oldVal
	}

	current.Name = pick(input.Name, current.Name)
	current.Phone = pick(input.Phone, current.Phone)
	current.Email = pick(input.Email, current.Email)
	current.BirthDate = pick(input.BirthDate, current.BirthDate)

	current.Address.ZipCode = pick(input.ZipCode, current.Address.ZipCode)
	current.Address.Street = pick(input.Street, current.Address.Street)
	current.Address.Number = pick(input.Number, current.Address.Number)
	current.Address.Complement = pick(input.Complement, current.Address.Complement)
	current.Address.District = pick(input.District, current.Address.District)
	current.Address.City = pick(input.City, current.Address.City)
	current.Address.State = pick(input.State, current.Address.State)

	return current
}
