package usecase

import (
	"context"

	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/infra/queue"
)

type QueueProducerInterface interface {
	PublishSaleCreated(ctx context.Context, payload queue.SaleCreatedPayload) error
	PublishUserProvisioned(ctx context.Context, payload queue.UserProvisionedPayload) error
}

// DocumentStorageInterface é o object store de anexos (S3 em produção).
type DocumentStorageInterface interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	Delete(ctx context.Context, key string) error
}

type TokenServiceInterface interface {
	GenerateToken(user *entity.User) (string, error)
}
