package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type LoginUseCase struct {
	UserRepo entity.UserRepositoryInterface
	Tokens   TokenServiceInterface
	Logger   *zap.Logger
}

func NewLoginUseCase(userRepo entity.UserRepositoryInterface, tokens TokenServiceInterface, logger *zap.Logger) *LoginUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LoginUseCase{UserRepo: userRepo, Tokens: tokens, Logger: logger}
}

func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	user, err := uc.UserRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			// Mesma mensagem do erro de senha: não vaza quais e-mails existem.
			return nil, NewUnauthorized("credenciais inválidas")
		}
		return nil, NewPersistenceError("falha ao buscar usuário: " + err.Error())
	}

	if !user.Active {
		return nil, NewUnauthorized("usuário desativado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, NewUnauthorized("credenciais inválidas")
	}

	token, err := uc.Tokens.GenerateToken(user)
	if err != nil {
		return nil, NewPersistenceError("falha ao emitir token: " + err.Error())
	}

	uc.Logger.Info("login efetuado",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return &LoginOutput{
		Token: token,
		ID:    user.ID,
		Name:  user.Name,
		Role:  user.Role,
	}, nil
}
