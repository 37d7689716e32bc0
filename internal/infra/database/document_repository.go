package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type DocumentRepository struct {
	DB *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(ctx context.Context, d *entity.Document) error {
	query := `
		INSERT INTO documents (id, sale_id, category, filename, content_type, size_bytes, storage_key, uploaded_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		d.ID, d.SaleID, string(d.Category), d.Filename, d.ContentType, d.SizeBytes, d.StorageKey, d.UploadedAt,
	)
	if err != nil {
		return fmt.Errorf("falha ao gravar documento: %w", err)
	}
	return nil
}

func (r *DocumentRepository) ListBySale(ctx context.Context, saleID string) ([]*entity.Document, error) {
	query := `
		SELECT id, sale_id, category, filename, content_type, size_bytes, storage_key, uploaded_at
		FROM documents WHERE sale_id = $1 ORDER BY uploaded_at
	`

	rows, err := r.DB.QueryContext(ctx, query, saleID)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar documentos: %w", err)
	}
	defer rows.Close()

	var docs []*entity.Document
	for rows.Next() {
		var d entity.Document
		var category string

		if err := rows.Scan(&d.ID, &d.SaleID, &category, &d.Filename, &d.ContentType, &d.SizeBytes, &d.StorageKey, &d.UploadedAt); err != nil {
			return nil, err
		}

		d.Category = entity.DocumentCategory(category)
		docs = append(docs, &d)
	}

	return docs, rows.Err()
}
