package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/infra/http/middleware"
	"github.com/gfsouza/vendas-crm/internal/usecase"
)

type SaleHandler struct {
	CreateSaleUC     *usecase.CreateSaleUseCase
	UpdateStatusUC   *usecase.UpdateSaleStatusUseCase
	UpdateCustomerUC *usecase.UpdateCustomerUseCase
	Query            *usecase.SalesQueryUseCase
}

func NewSaleHandler(
	createUC *usecase.CreateSaleUseCase,
	statusUC *usecase.UpdateSaleStatusUseCase,
	customerUC *usecase.UpdateCustomerUseCase,
	query *usecase.SalesQueryUseCase,
) *SaleHandler {
	return &SaleHandler{
		CreateSaleUC:     createUC,
		UpdateStatusUC:   statusUC,
		UpdateCustomerUC: customerUC,
		Query:            query,
	}
}

func (h *SaleHandler) Create(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	var input usecase.CreateSaleInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	output, err := h.CreateSaleUC.Execute(r.Context(), sess, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordSaleCreated()
	writeJSON(w, http.StatusCreated, output)
}

func (h *SaleHandler) List(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	status := entity.Status(r.URL.Query().Get("status"))

	sales, err := h.Query.List(r.Context(), sess, status)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if sales == nil {
		sales = []*entity.Sale{}
	}
	writeJSON(w, http.StatusOK, sales)
}

func (h *SaleHandler) Get(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	sale, err := h.Query.Get(r.Context(), sess, chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sale)
}

// NextActions devolve os alvos legais do status atual para a tela montar os
// botões de transição. Papel sem permissão recebe lista vazia — a ação nunca
// é oferecida, e o PATCH falharia de qualquer jeito.
func (h *SaleHandler) NextActions(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	sale, err := h.Query.Get(r.Context(), sess, chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if !sess.Capabilities().CanManageStatus {
		writeJSON(w, http.StatusOK, []entity.StatusAction{})
		return
	}

	writeJSON(w, http.StatusOK, entity.NextActions(sale.Status))
}

func (h *SaleHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	saleID := chi.URLParam(r, "id")

	var input usecase.UpdateStatusInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	// Pela API a ação "marcar perdida" está sempre disponível; telas que a
	// suprimem simplesmente não oferecem o botão.
	input.MarkLostAllowed = true

	sale, err := h.Query.Get(r.Context(), sess, saleID)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if err := h.UpdateStatusUC.Execute(r.Context(), sess, saleID, input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordStatusTransition(string(sale.Status), string(input.Target))
	writeJSON(w, http.StatusOK, map[string]string{"status": string(input.Target)})
}

func (h *SaleHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	var input usecase.UpdateCustomerInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "JSON inválido")
		return
	}

	if err := h.UpdateCustomerUC.Execute(r.Context(), sess, chi.URLParam(r, "id"), input); err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *SaleHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	output, err := h.Query.Dashboard(r.Context(), sess)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, output)
}
