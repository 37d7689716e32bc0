package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

func saleWithStatus(status entity.Status) *entity.Sale {
	return &entity.Sale{
		ID:       "sale-1",
		Status:   status,
		SellerID: "seller-1",
		TeamID:   "team-1",
	}
}

func sessionWithRole(role entity.Role) auth.Session {
	return auth.Session{UserID: "user-1", Name: "Fulano", Role: role, TeamID: "team-1"}
}

func TestUpdateStatus_VendedorNaoAlteraStatus(t *testing.T) {
	repo := new(MockSaleRepository)
	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleVendedor), "sale-1", UpdateStatusInput{
		Target:          entity.StatusInProgress,
		MarkLostAllowed: true,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeUnauthorized, ErrorCode(err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_AvancoNoFunil(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, "sale-1", entity.StatusInProgress, mock.Anything).Return(nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisorEquipe), "sale-1", UpdateStatusInput{
		Target:          entity.StatusInProgress,
		MarkLostAllowed: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_PuloDeEtapaSemForceFalha(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusPending), nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisorEquipe), "sale-1", UpdateStatusInput{
		Target:          entity.StatusGenerated,
		MarkLostAllowed: true,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeValidationError, ErrorCode(err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_ForcePorSupervisorEquipeFalha(t *testing.T) {
	repo := new(MockSaleRepository)
	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisorEquipe), "sale-1", UpdateStatusInput{
		Target:          entity.StatusGenerated,
		Force:           true,
		MarkLostAllowed: true,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeUnauthorized, ErrorCode(err))
	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ForcePorSupervisorPulaEtapas(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusPending), nil)
	repo.On("UpdateStatus", mock.Anything, "sale-1", entity.StatusGenerated, mock.Anything).Return(nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:          entity.StatusGenerated,
		Force:           true,
		MarkLostAllowed: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_AguardandoAtivacaoExigeDataDeInstalacao(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusGenerated), nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:          entity.StatusAwaitingActivation,
		MarkLostAllowed: true,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeValidationError, ErrorCode(err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_AguardandoAtivacaoComDataPassa(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusGenerated), nil)

	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	repo.On("UpdateStatus", mock.Anything, "sale-1", entity.StatusAwaitingActivation,
		entity.StatusExtra{InstallationDate: &date}).Return(nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:           entity.StatusAwaitingActivation,
		InstallationDate: &date,
		MarkLostAllowed:  true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_DataJaGravadaSatisfazExigencia(t *testing.T) {
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	sale := saleWithStatus(entity.StatusAwaitingActivation)
	sale.InstallationDate = &date

	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(sale, nil)
	repo.On("UpdateStatus", mock.Anything, "sale-1", entity.StatusActivated, mock.Anything).Return(nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:          entity.StatusActivated,
		MarkLostAllowed: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_PerdidaExigeMotivo(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusGenerated), nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	for _, reason := range []string{"", "   "} {
		err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
			Target:          entity.StatusLost,
			LossReason:      reason,
			MarkLostAllowed: true,
		})
		assert.Error(t, err)
		assert.Equal(t, CodeValidationError, ErrorCode(err))
	}
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_PerdidaComMotivoPassa(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusGenerated), nil)
	repo.On("UpdateStatus", mock.Anything, "sale-1", entity.StatusLost,
		entity.StatusExtra{LossReason: "cliente desistiu"}).Return(nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:          entity.StatusLost,
		LossReason:      "cliente desistiu",
		MarkLostAllowed: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_PerdidaAposAgendamentoDaInstalacao(t *testing.T) {
	// O cliente pode desistir mesmo com a instalação já agendada: "lost"
	// continua alcançável a partir de awaiting_activation, sem modo forçado.
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusAwaitingActivation), nil)
	repo.On("UpdateStatus", mock.Anything, "sale-1", entity.StatusLost,
		entity.StatusExtra{LossReason: "cliente desistiu"}).Return(nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:          entity.StatusLost,
		LossReason:      "cliente desistiu",
		MarkLostAllowed: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_PerdidaSuprimidaPeloChamador(t *testing.T) {
	repo := new(MockSaleRepository)
	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:          entity.StatusLost,
		LossReason:      "cliente desistiu",
		MarkLostAllowed: false,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeUnauthorized, ErrorCode(err))
}

func TestUpdateStatus_TerminalNaoTemSaida(t *testing.T) {
	for _, status := range []entity.Status{entity.StatusActivated, entity.StatusLost} {
		repo := new(MockSaleRepository)
		repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(status), nil)

		uc := NewUpdateSaleStatusUseCase(repo, nil)

		err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
			Target:          entity.StatusPending,
			MarkLostAllowed: true,
		})

		assert.Error(t, err)
		assert.Equal(t, CodeValidationError, ErrorCode(err))
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	}
}

func TestUpdateStatus_ReaplicarStatusAtualEIdempotente(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-1").Return(saleWithStatus(entity.StatusInProgress), nil)
	repo.On("UpdateStatus", mock.Anything, "sale-1", entity.StatusInProgress, mock.Anything).Return(nil)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisorEquipe), "sale-1", UpdateStatusInput{
		Target:          entity.StatusInProgress,
		MarkLostAllowed: true,
	})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateStatus_VendaInexistente(t *testing.T) {
	repo := new(MockSaleRepository)
	repo.On("FindByID", mock.Anything, "sale-x").Return(nil, entity.ErrSaleNotFound)

	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-x", UpdateStatusInput{
		Target:          entity.StatusInProgress,
		MarkLostAllowed: true,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeNotFound, ErrorCode(err))
}

func TestUpdateStatus_AlvoDesconhecido(t *testing.T) {
	repo := new(MockSaleRepository)
	uc := NewUpdateSaleStatusUseCase(repo, nil)

	err := uc.Execute(context.Background(), sessionWithRole(entity.RoleSupervisor), "sale-1", UpdateStatusInput{
		Target:          entity.Status("inventado"),
		MarkLostAllowed: true,
	})

	assert.Error(t, err)
	assert.Equal(t, CodeValidationError, ErrorCode(err))
}
