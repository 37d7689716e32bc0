package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("já existe um usuário com este e-mail")
	ErrUserStillActive    = errors.New("usuário ativo não pode ser excluído")
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         Role      `json:"role"`
	Active       bool      `json:"active"`
	TeamID       string    `json:"team_id,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type UserRepositoryInterface interface {
	Create(ctx context.Context, u *User) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	SetActive(ctx context.Context, id string, active bool) error
}

func NewUser(name, email string, role Role, teamID, passwordHash string) (*User, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	switch role {
	case RoleAdminGeral, RoleSupervisor, RoleSupervisorEquipe, RoleVendedor:
	default:
		return nil, errors.New("função inválida")
	}

	return &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		Role:         role,
		Active:       true,
		TeamID:       teamID,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}, nil
}
