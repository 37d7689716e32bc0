package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrDocumentNotFound   = errors.New("documento não encontrado")
	ErrInvalidCategory    = errors.New("categoria de documento inválida")
	ErrInvalidContentType = errors.New("tipo de arquivo não aceito")
	ErrDocumentTooLarge   = errors.New("arquivo excede o tamanho máximo")
)

// DocumentCategory agrupa os anexos exigidos no cadastro da venda.
type DocumentCategory string

const (
	CategoryFrontID        DocumentCategory = "documento_frente"
	CategoryBackID         DocumentCategory = "documento_verso"
	CategoryProofOfAddress DocumentCategory = "comprovante_residencia"
	CategoryHouseFront     DocumentCategory = "fachada_casa"
	CategorySelfie         DocumentCategory = "selfie"
)

var AllCategories = []DocumentCategory{
	CategoryFrontID,
	CategoryBackID,
	CategoryProofOfAddress,
	CategoryHouseFront,
	CategorySelfie,
}

// MaxDocumentSize limita o upload em 10 MiB.
const MaxDocumentSize = 10 << 20

func IsValidCategory(c DocumentCategory) bool {
	for _, v := range AllCategories {
		if v == c {
			return true
		}
	}
	return false
}

type Document struct {
	ID          string           `json:"id"`
	SaleID      string           `json:"sale_id"`
	Category    DocumentCategory `json:"category"`
	Filename    string           `json:"filename"`
	ContentType string           `json:"content_type"`
	SizeBytes   int64            `json:"size_bytes"`
	StorageKey  string           `json:"storage_key"`
	UploadedAt  time.Time        `json:"uploaded_at"`
}

type DocumentRepositoryInterface interface {
	Create(ctx context.Context, d *Document) error
	ListBySale(ctx context.Context, saleID string) ([]*Document, error)
}

func NewDocument(saleID string, category DocumentCategory, filename, contentType string, sizeBytes int64) (*Document, error) {
	if !IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	if sizeBytes > MaxDocumentSize {
		return nil, ErrDocumentTooLarge
	}
	if filename == "" {
		return nil, errors.New("filename is required")
	}

	return &Document{
		ID:          uuid.New().String(),
		SaleID:      saleID,
		Category:    category,
		Filename:    filename,
		ContentType: contentType,
		SizeBytes:   sizeBytes,
		UploadedAt:  time.Now(),
	}, nil
}
