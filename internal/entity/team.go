package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrTeamNotFound      = errors.New("equipe não encontrada")
	ErrNotTeamSupervisor = errors.New("usuário não tem a função supervisor_equipe")
)

// Team agrupa vendedores sob no máximo um supervisor de equipe.
type Team struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	SupervisorID string    `json:"supervisor_id,omitempty"`
	MemberCount  int       `json:"member_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TeamRepositoryInterface interface {
	Create(ctx context.Context, t *Team) error
	FindByID(ctx context.Context, id string) (*Team, error)
	List(ctx context.Context) ([]*Team, error)
	Rename(ctx context.Context, teamID, name string) error
	SetSupervisor(ctx context.Context, teamID, supervisorID string) error
}

func NewTeam(name string) (*Team, error) {
	if name == "" {
		return nil, errors.New("name is required")
	}
	return &Team{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}, nil
}
