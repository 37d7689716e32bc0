package usecase

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

// MIMEs aceitos para anexos de venda.
var allowedContentTypes = map[string]bool{
	"image/jpeg":      true,
	"image/png":       true,
	"image/webp":      true,
	"application/pdf": true,
}

type UploadDocumentUseCase struct {
	SaleRepo entity.SaleRepositoryInterface
	DocRepo  entity.DocumentRepositoryInterface
	Storage  DocumentStorageInterface
	Logger   *zap.Logger
}

func NewUploadDocumentUseCase(
	saleRepo entity.SaleRepositoryInterface,
	docRepo entity.DocumentRepositoryInterface,
	storage DocumentStorageInterface,
	logger *zap.Logger,
) *UploadDocumentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadDocumentUseCase{
		SaleRepo: saleRepo,
		DocRepo:  docRepo,
		Storage:  storage,
		Logger:   logger,
	}
}

// Execute valida o anexo, sobe o objeto para o storage e grava os metadados.
// O objeto sobe primeiro; se a gravação dos metadados falhar, a compensação
// apaga o objeto do storage.
func (uc *UploadDocumentUseCase) Execute(ctx context.Context, sess auth.Session, input UploadDocumentInput) (*UploadDocumentOutput, error) {
	if !sess.Capabilities().CanEditCustomer {
		return nil, NewUnauthorized("sua função não permite anexar documentos")
	}

	if !allowedContentTypes[input.ContentType] {
		return nil, NewValidationError(entity.ErrInvalidContentType.Error())
	}
	if len(input.Data) == 0 {
		return nil, NewValidationError("arquivo vazio")
	}

	if err := uc.fetchVisibleSale(ctx, sess, input.SaleID); err != nil {
		return nil, err
	}

	doc, err := entity.NewDocument(input.SaleID, input.Category, input.Filename, input.ContentType, int64(len(input.Data)))
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	doc.StorageKey = fmt.Sprintf("%s/%s/%s_%s", doc.SaleID, doc.Category, doc.ID, doc.Filename)

	txn := NewTransaction(uc.Logger)

	txn.AddOperation("upload_object", func(ctx context.Context) error {
		return uc.Storage.Upload(ctx, doc.StorageKey, input.Data, input.ContentType)
	})
	txn.AddCompensation("delete_object", func(ctx context.Context) error {
		return uc.Storage.Delete(ctx, doc.StorageKey)
	})

	txn.AddOperation("create_document", func(ctx context.Context) error {
		return uc.DocRepo.Create(ctx, doc)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, NewPersistenceError("falha ao anexar documento: " + err.Error())
	}

	uc.Logger.Info("documento anexado",
		zap.String("sale_id", doc.SaleID),
		zap.String("category", string(doc.Category)),
		zap.Int64("size_bytes", doc.SizeBytes),
	)

	return &UploadDocumentOutput{ID: doc.ID, StorageKey: doc.StorageKey}, nil
}

func (uc *UploadDocumentUseCase) ListBySale(ctx context.Context, sess auth.Session, saleID string) ([]*entity.Document, error) {
	if err := uc.fetchVisibleSale(ctx, sess, saleID); err != nil {
		return nil, err
	}

	docs, err := uc.DocRepo.ListBySale(ctx, saleID)
	if err != nil {
		return nil, NewPersistenceError("falha ao listar documentos: " + err.Error())
	}
	return docs, nil
}

// fetchVisibleSale carrega a venda e aplica o mesmo escopo de visibilidade
// das leituras: venda de outro vendedor ou equipe responde como inexistente,
// para que anexos não vazem por ID adivinhado.
func (uc *UploadDocumentUseCase) fetchVisibleSale(ctx context.Context, sess auth.Session, saleID string) error {
	sale, err := uc.SaleRepo.FindByID(ctx, saleID)
	if err != nil {
		if errors.Is(err, entity.ErrSaleNotFound) {
			return NewNotFound("venda não encontrada")
		}
		return NewPersistenceError("falha ao buscar venda: " + err.Error())
	}

	if !saleVisible(sess, sale) {
		return NewNotFound("venda não encontrada")
	}
	return nil
}
