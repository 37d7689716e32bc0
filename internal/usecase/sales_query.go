package usecase

import (
	"context"
	"errors"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

// SalesQueryUseCase concentra as leituras de venda. O escopo de visibilidade
// (próprias / equipe / todas) é derivado da sessão e convertido em filtro
// explícito do repositório — nunca rederivado por componente de tela.
type SalesQueryUseCase struct {
	SaleRepo entity.SaleRepositoryInterface
}

func NewSalesQueryUseCase(saleRepo entity.SaleRepositoryInterface) *SalesQueryUseCase {
	return &SalesQueryUseCase{SaleRepo: saleRepo}
}

func scopeFilter(sess auth.Session) entity.SaleFilter {
	caps := sess.Capabilities()
	switch {
	case caps.CanViewAllSales:
		return entity.SaleFilter{}
	case caps.CanViewTeamSales:
		return entity.SaleFilter{TeamID: sess.TeamID}
	default:
		return entity.SaleFilter{SellerID: sess.UserID}
	}
}

func (uc *SalesQueryUseCase) List(ctx context.Context, sess auth.Session, status entity.Status) ([]*entity.Sale, error) {
	if status != "" && !entity.IsValidStatus(status) {
		return nil, NewValidationError("status de filtro desconhecido")
	}

	filter := scopeFilter(sess)
	filter.Status = status

	sales, err := uc.SaleRepo.List(ctx, filter)
	if err != nil {
		return nil, NewPersistenceError("falha ao listar vendas: " + err.Error())
	}
	return sales, nil
}

// saleVisible aplica o escopo da sessão a uma venda já carregada:
// todas / equipe / próprias.
func saleVisible(sess auth.Session, sale *entity.Sale) bool {
	caps := sess.Capabilities()
	return caps.CanViewAllSales ||
		(caps.CanViewTeamSales && sale.TeamID != "" && sale.TeamID == sess.TeamID) ||
		sale.SellerID == sess.UserID
}

func (uc *SalesQueryUseCase) Get(ctx context.Context, sess auth.Session, saleID string) (*entity.Sale, error) {
	sale, err := uc.SaleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return nil, NewNotFound("venda não encontrada")
		}
		return nil, NewPersistenceError("falha ao buscar venda: " + err.Error())
	}

	// Venda fora do escopo responde como inexistente, não como proibida.
	if !saleVisible(sess, sale) {
		return nil, NewNotFound("venda não encontrada")
	}

	return sale, nil
}

func (uc *SalesQueryUseCase) Dashboard(ctx context.Context, sess auth.Session) (*DashboardOutput, error) {
	counts, err := uc.SaleRepo.CountByStatus(ctx, scopeFilter(sess))
	if err != nil {
		return nil, NewPersistenceError("falha ao montar dashboard: " + err.Error())
	}

	total := 0
	for _, c := range counts {
		total += c.Count
	}

	return &DashboardOutput{Total: total, ByStatus: counts}, nil
}
