package usecase

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/mail"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
	"github.com/gfsouza/vendas-crm/internal/infra/queue"
)

type CreateUserUseCase struct {
	UserRepo entity.UserRepositoryInterface
	TeamRepo entity.TeamRepositoryInterface
	Queue    QueueProducerInterface
	Logger   *zap.Logger
}

func NewCreateUserUseCase(
	userRepo entity.UserRepositoryInterface,
	teamRepo entity.TeamRepositoryInterface,
	producer QueueProducerInterface,
	logger *zap.Logger,
) *CreateUserUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CreateUserUseCase{
		UserRepo: userRepo,
		TeamRepo: teamRepo,
		Queue:    producer,
		Logger:   logger,
	}
}

// Execute cria o usuário com senha provisória e publica o evento que dispara
// o e-mail de boas-vindas. Operação privilegiada: só administrador geral.
func (uc *CreateUserUseCase) Execute(ctx context.Context, sess auth.Session, input CreateUserInput) (*CreateUserOutput, error) {
	if !sess.Capabilities().CanManageUsers {
		return nil, NewUnauthorized("somente o administrador geral gerencia usuários")
	}

	if strings.TrimSpace(input.Name) == "" {
		return nil, NewValidationError("name is required")
	}
	if _, err := mail.ParseAddress(input.Email); err != nil {
		return nil, NewValidationError("email is invalid")
	}

	if input.TeamID != "" {
		if _, err := uc.TeamRepo.FindByID(ctx, input.TeamID); err != nil {
			if errors.Is(err, entity.ErrTeamNotFound) {
				return nil, NewValidationError("equipe inválida")
			}
			return nil, NewPersistenceError("falha ao buscar equipe: " + err.Error())
		}
	}

	tempPassword, err := generateTempPassword()
	if err != nil {
		return nil, NewPersistenceError("falha ao gerar senha provisória: " + err.Error())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewPersistenceError("falha ao gerar hash de senha: " + err.Error())
	}

	user, err := entity.NewUser(input.Name, input.Email, input.Role, input.TeamID, string(hash))
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	txn := NewTransaction(uc.Logger)

	txn.AddOperation("create_user", func(ctx context.Context) error {
		return uc.UserRepo.Create(ctx, user)
	})
	txn.AddCompensation("delete_user", func(ctx context.Context) error {
		return uc.UserRepo.Delete(ctx, user.ID)
	})

	txn.AddOperation("publish_user_provisioned", func(ctx context.Context) error {
		return uc.Queue.PublishUserProvisioned(ctx, queue.UserProvisionedPayload{
			UserID:       user.ID,
			Name:         user.Name,
			Email:        user.Email,
			Role:         string(user.Role),
			TempPassword: tempPassword,
		})
	})

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, NewValidationError(entity.ErrEmailAlreadyExists.Error())
		}
		return nil, NewPersistenceError("falha ao criar usuário: " + err.Error())
	}

	uc.Logger.Info("usuário criado",
		zap.String("user_id", user.ID),
		zap.String("role", string(user.Role)),
	)

	return &CreateUserOutput{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

func generateTempPassword() (string, error) {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
