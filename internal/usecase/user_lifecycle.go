package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

// UserLifecycleUseCase cobre desativar, reativar e excluir definitivamente.
// São as operações privilegiadas que no sistema original rodavam como
// funções de backend com credenciais elevadas.
type UserLifecycleUseCase struct {
	UserRepo entity.UserRepositoryInterface
	Logger   *zap.Logger
}

func NewUserLifecycleUseCase(userRepo entity.UserRepositoryInterface, logger *zap.Logger) *UserLifecycleUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserLifecycleUseCase{UserRepo: userRepo, Logger: logger}
}

func (uc *UserLifecycleUseCase) Deactivate(ctx context.Context, sess auth.Session, userID string) error {
	return uc.setActive(ctx, sess, userID, false)
}

func (uc *UserLifecycleUseCase) Reactivate(ctx context.Context, sess auth.Session, userID string) error {
	return uc.setActive(ctx, sess, userID, true)
}

func (uc *UserLifecycleUseCase) setActive(ctx context.Context, sess auth.Session, userID string, active bool) error {
	if !sess.Capabilities().CanManageUsers {
		return NewUnauthorized("somente o administrador geral gerencia usuários")
	}

	if _, err := uc.UserRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return NewNotFound("usuário não encontrado")
		}
		return NewPersistenceError("falha ao buscar usuário: " + err.Error())
	}

	if err := uc.UserRepo.SetActive(ctx, userID, active); err != nil {
		return NewPersistenceError("falha ao atualizar usuário: " + err.Error())
	}

	uc.Logger.Info("situação do usuário alterada",
		zap.String("user_id", userID),
		zap.Bool("active", active),
	)
	return nil
}

// Delete remove o usuário em definitivo. Exige desativação prévia.
func (uc *UserLifecycleUseCase) Delete(ctx context.Context, sess auth.Session, userID string) error {
	if !sess.Capabilities().CanManageUsers {
		return NewUnauthorized("somente o administrador geral gerencia usuários")
	}

	user, err := uc.UserRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return NewNotFound("usuário não encontrado")
		}
		return NewPersistenceError("falha ao buscar usuário: " + err.Error())
	}

	if user.Active {
		return NewValidationError(entity.ErrUserStillActive.Error())
	}

	if err := uc.UserRepo.Delete(ctx, userID); err != nil {
		return NewPersistenceError("falha ao excluir usuário: " + err.Error())
	}

	uc.Logger.Info("usuário excluído definitivamente", zap.String("user_id", userID))
	return nil
}
