package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gfsouza/vendas-crm/internal/usecase"
)

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]string{
		"error":   code,
		"message": message,
	})
}

// writeUseCaseError converte a taxonomia de erros do caso de uso em status
// HTTP. Transição falhada não muda nada na tela: a apresentação só re-busca
// a venda quando a resposta é 2xx.
func writeUseCaseError(w http.ResponseWriter, err error) {
	code := usecase.ErrorCode(err)

	var status int
	switch code {
	case usecase.CodeUnauthorized:
		status = http.StatusForbidden
	case usecase.CodeValidationError:
		status = http.StatusUnprocessableEntity
	case usecase.CodeNotFound:
		status = http.StatusNotFound
	default:
		status = http.StatusInternalServerError
	}

	msg := err.Error()
	var de *usecase.DomainError
	if errors.As(err, &de) {
		msg = de.Message
	}

	writeErrorResponse(w, status, code, msg)
}
