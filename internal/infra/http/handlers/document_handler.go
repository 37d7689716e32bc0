package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/infra/http/middleware"
	"github.com/gfsouza/vendas-crm/internal/usecase"
)

type DocumentHandler struct {
	UploadUC *usecase.UploadDocumentUseCase
}

func NewDocumentHandler(uploadUC *usecase.UploadDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{UploadUC: uploadUC}
}

// Upload recebe multipart com o campo "file" e a categoria na query string.
func (h *DocumentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	if err := r.ParseMultipartForm(entity.MaxDocumentSize); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "upload inválido ou grande demais")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "campo 'file' ausente")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, entity.MaxDocumentSize+1))
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "falha ao ler arquivo")
		return
	}

	input := usecase.UploadDocumentInput{
		SaleID:      chi.URLParam(r, "id"),
		Category:    entity.DocumentCategory(r.URL.Query().Get("category")),
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	output, err := h.UploadUC.Execute(r.Context(), sess, input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	middleware.RecordDocumentUploaded(string(input.Category))
	writeJSON(w, http.StatusCreated, output)
}

func (h *DocumentHandler) ListBySale(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.SessionFrom(r.Context())
	if !ok {
		writeErrorResponse(w, http.StatusUnauthorized, "UNAUTHORIZED", "sessão ausente")
		return
	}

	docs, err := h.UploadUC.ListBySale(r.Context(), sess, chi.URLParam(r, "id"))
	if err != nil {
		writeUseCaseError(w, err)
		return
	}

	if docs == nil {
		docs = []*entity.Document{}
	}
	writeJSON(w, http.StatusOK, docs)
}
