package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/infra/queue"
)

type CreateSaleUseCase struct {
	SaleRepo entity.SaleRepositoryInterface
	PlanRepo entity.PlanRepositoryInterface
	TeamRepo entity.TeamRepositoryInterface
	Queue    QueueProducerInterface
	Logger   *zap.Logger
}

func NewCreateSaleUseCase(
	saleRepo entity.SaleRepositoryInterface,
	planRepo entity.PlanRepositoryInterface,
	teamRepo entity.TeamRepositoryInterface,
	producer QueueProducerInterface,
	logger *zap.Logger,
) *CreateSaleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateSaleUseCase{
		SaleRepo: saleRepo,
		PlanRepo: planRepo,
		TeamRepo: teamRepo,
		Queue:    producer,
		Logger:   logger,
	}
}

// Execute cria a venda com status inicial "pending". A gravação da venda e a
// publicação do evento rodam numa saga: se o evento falhar, a venda recém
// gravada é apagada — nada de registro órfão.
func (uc *CreateSaleUseCase) Execute(ctx context.Context, sess auth.Session, input CreateSaleInput) (*CreateSaleOutput, error) {
	if !sess.Capabilities().CanCreateSale {
		return nil, NewUnauthorized("sua função não permite cadastrar vendas")
	}

	if fieldErrors := ValidateCreateSaleInput(input); len(fieldErrors) > 0 {
		msg := "validation failed: "
		for _, e := range fieldErrors {
			msg += e.Field + " (" + e.Message + "), "
		}
		return nil, NewValidationError(msg)
	}

	plan, err := uc.PlanRepo.FindByID(ctx, input.PlanID)
	if err != nil {
		if errors.Is(err, entity.ErrPlanNotFound) {
			return nil, NewValidationError("plano inválido")
		}
		return nil, NewPersistenceError("falha ao buscar plano: " + err.Error())
	}

	teamName := ""
	if sess.TeamID != "" {
		if team, err := uc.TeamRepo.FindByID(ctx, sess.TeamID); err == nil {
			teamName = team.Name
		}
	}

	customer := entity.Customer{
		Name:      input.Name,
		Phone:     input.Phone,
		Email:     input.Email,
		CPF:       input.CPF,
		BirthDate: input.BirthDate,
		Address: entity.Address{
			ZipCode:    input.ZipCode,
			Street:     input.Street,
			Number:     input.Number,
			Complement: input.Complement,
			District:   input.District,
			City:       input.City,
			State:      input.State,
		},
	}

	sale, err := entity.NewSale(customer, plan.ID, plan.Name, input.BillingDueDay, sess.UserID, sess.Name, sess.TeamID, teamName)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	txn := NewTransaction(uc.Logger)

	txn.AddOperation("create_sale", func(ctx context.Context) error {
		return uc.SaleRepo.Create(ctx, sale)
	})
	txn.AddCompensation("delete_sale", func(ctx context.Context) error {
		return uc.SaleRepo.Delete(ctx, sale.ID)
	})

	txn.AddOperation("publish_sale_created", func(ctx context.Context) error {
		return uc.Queue.PublishSaleCreated(ctx, queue.SaleCreatedPayload{
			SaleID:     sale.ID,
			Customer:   sale.Customer.Name,
			PlanName:   sale.PlanName,
			SellerID:   sale.SellerID,
			SellerName: sale.SellerName,
			TeamName:   sale.TeamName,
		})
	})

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrSaleAlreadyExists) {
			return nil, NewValidationError(entity.ErrSaleAlreadyExists.Error())
		}
		return nil, NewPersistenceError("falha ao registrar venda: " + err.Error())
	}

	uc.Logger.Info("venda cadastrada",
		zap.String("sale_id", sale.ID),
		zap.String("seller_id", sale.SellerID),
		zap.String("plan_id", sale.PlanID),
	)

	return &CreateSaleOutput{
		ID:     sale.ID,
		Status: sale.Status,
		Msg:    "Venda cadastrada com sucesso!",
	}, nil
}
