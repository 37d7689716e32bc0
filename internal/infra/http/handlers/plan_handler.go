package handlers

import (
	"net/http"

	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/usecase"
)

// PlanHandler alimenta o seletor de planos do formulário de venda.
type PlanHandler struct {
	PlanRepo entity.PlanRepositoryInterface
}

func NewPlanHandler(planRepo entity.PlanRepositoryInterface) *PlanHandler {
	return &PlanHandler{PlanRepo: planRepo}
}

// List devolve o catálogo inteiro. Qualquer usuário autenticado consulta:
// todo papel pode registrar ou corrigir uma venda.
func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.PlanRepo.List(r.Context())
	if err != nil {
		writeErrorResponse(w, http.StatusInternalServerError, usecase.CodePersistence, "falha ao listar planos")
		return
	}

	if plans == nil {
		plans = []*entity.Plan{}
	}

	writeJSON(w, http.StatusOK, plans)
}
