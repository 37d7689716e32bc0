package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

type UpdateSaleStatusUseCase struct {
	SaleRepo entity.SaleRepositoryInterface
	Logger   *zap.Logger
}

func NewUpdateSaleStatusUseCase(saleRepo entity.SaleRepositoryInterface, logger *zap.Logger) *UpdateSaleStatusUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UpdateSaleStatusUseCase{SaleRepo: saleRepo, Logger: logger}
}

// Execute aplica uma transição de status:
//
//  1. checa permissão da sessão (Unauthorized);
//  2. checa campos extras exigidos pelo alvo (ValidationError, sem escrita);
//  3. grava status + extras num único update.
//
// Nada de retry aqui: falha de persistência sobe para a apresentação decidir.
// Escritas concorrentes não são coordenadas — vale a última (lacuna
// conhecida, sem token de versão).
func (uc *UpdateSaleStatusUseCase) Execute(ctx context.Context, sess auth.Session, saleID string, input UpdateStatusInput) error {
	caps := sess.Capabilities()

	if !caps.CanManageStatus {
		return NewUnauthorized("sua função não permite alterar o status da venda")
	}
	if input.Target == entity.StatusLost && (!caps.CanMarkLost || !input.MarkLostAllowed) {
		return NewUnauthorized("marcar como perdida não está disponível aqui")
	}
	if input.Force && !caps.CanForceAnyStatus {
		return NewUnauthorized("sua função não permite pular etapas do funil")
	}

	if !entity.IsValidStatus(input.Target) {
		return NewValidationError("status alvo desconhecido")
	}

	sale, err := uc.SaleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return NewNotFound("venda não encontrada")
		}
		return NewPersistenceError("falha ao buscar venda: " + err.Error())
	}

	reapply := sale.Status == input.Target

	var needsDate, needsReason bool
	switch {
	case input.Force:
		// Modo privilegiado: qualquer alvo, exigências só pelo destino. Os
		// invariantes das etapas puladas não são revalidados — comportamento
		// herdado do sistema observado, mantido de propósito e logado abaixo.
		needsDate, needsReason = entity.RequirementsFor(input.Target)
	case reapply:
		// Reaplicar o status atual é idempotente; mantém as exigências do alvo.
		needsDate, needsReason = entity.RequirementsFor(input.Target)
	default:
		action, ok := legalAction(sale.Status, input.Target)
		if !ok {
			return NewValidationError("transição de " + string(sale.Status) + " para " + string(input.Target) + " não é permitida")
		}
		needsDate = action.RequiresInstallationDate
		needsReason = action.RequiresLossReason
	}

	extra := entity.StatusExtra{
		InstallationDate: input.InstallationDate,
		LossReason:       strings.TrimSpace(input.LossReason),
	}

	if needsDate && extra.InstallationDate == nil && sale.InstallationDate == nil {
		return NewValidationError("data de instalação é obrigatória para este status")
	}
	if needsReason && extra.LossReason == "" {
		return NewValidationError("motivo da perda é obrigatório")
	}

	if input.Force && !reapply && !entity.CanTransition(sale.Status, input.Target) {
		uc.Logger.Warn("pulo de status fora do caminho do funil",
			zap.String("sale_id", sale.ID),
			zap.String("from", string(sale.Status)),
			zap.String("to", string(input.Target)),
			zap.String("user_id", sess.UserID),
		)
	}

	if err := uc.SaleRepo.UpdateStatus(ctx, sale.ID, input.Target, extra); err != nil {
		return NewPersistenceError("falha ao atualizar status: " + err.Error())
	}

	uc.Logger.Info("status da venda atualizado",
		zap.String("sale_id", sale.ID),
		zap.String("from", string(sale.Status)),
		zap.String("to", string(input.Target)),
		zap.Bool("force", input.Force),
	)

	return nil
}

func legalAction(current, target entity.Status) (entity.StatusAction, bool) {
	for _, a := range entity.NextActions(current) {
		if a.Target == target {
			return a, true
		}
	}
	return entity.StatusAction{}, false
}
