package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/infra/http/middleware"
	"github.com/gfsouza/vendas-crm/internal/infra/integration/viacep"
)

// CEPHandler expõe a consulta de endereço por CEP usada pelo app de campo
// para preencher o endereço do cliente durante a venda.
type CEPHandler struct {
	Client *viacep.Client
	Logger *zap.Logger
}

func NewCEPHandler(client *viacep.Client, logger *zap.Logger) *CEPHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CEPHandler{Client: client, Logger: logger}
}

func (h *CEPHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	cep := chi.URLParam(r, "cep")

	address, err := h.Client.Lookup(r.Context(), cep)
	if err != nil {
		switch {
		case errors.Is(err, viacep.ErrInvalidCEP):
			writeErrorResponse(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "CEP inválido: informe 8 dígitos")
		case errors.Is(err, viacep.ErrCEPNotFound):
			writeErrorResponse(w, http.StatusNotFound, "NOT_FOUND", "CEP não encontrado")
		default:
			h.Logger.Error("falha na consulta ViaCEP", zap.String("cep", cep), zap.Error(err))
			middleware.RecordIntegrationError("viacep")
			writeErrorResponse(w, http.StatusBadGateway, "INTEGRATION_ERROR", "serviço de CEP indisponível")
		}
		return
	}

	writeJSON(w, http.StatusOK, address)
}
