package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/gfsouza/vendas-crm/internal/auth"
	"github.com/gfsouza/vendas-crm/internal/entity"
)

type TeamUseCase struct {
	TeamRepo entity.TeamRepositoryInterface
	UserRepo entity.UserRepositoryInterface
	Logger   *zap.Logger
}

func NewTeamUseCase(teamRepo entity.TeamRepositoryInterface, userRepo entity.UserRepositoryInterface, logger *zap.Logger) *TeamUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TeamUseCase{TeamRepo: teamRepo, UserRepo: userRepo, Logger: logger}
}

func (uc *TeamUseCase) Create(ctx context.Context, sess auth.Session, name string) (*entity.Team, error) {
	if !sess.Capabilities().CanManageTeams {
		return nil, NewUnauthorized("somente o administrador geral gerencia equipes")
	}

	team, err := entity.NewTeam(name)
	if err != nil {
		return nil, NewValidationError(err.Error())
	}

	if err := uc.TeamRepo.Create(ctx, team); err != nil {
		return nil, NewPersistenceError("falha ao criar equipe: " + err.Error())
	}

	uc.Logger.Info("equipe criada", zap.String("team_id", team.ID), zap.String("name", team.Name))
	return team, nil
}

func (uc *TeamUseCase) Rename(ctx context.Context, sess auth.Session, teamID, name string) error {
	if !sess.Capabilities().CanManageTeams {
		return NewUnauthorized("somente o administrador geral gerencia equipes")
	}
	if name == "" {
		return NewValidationError("name is required")
	}

	if err := uc.TeamRepo.Rename(ctx, teamID, name); err != nil {
		if errors.Is(err, entity.ErrTeamNotFound) {
			return NewNotFound("equipe não encontrada")
		}
		return NewPersistenceError("falha ao renomear equipe: " + err.Error())
	}

	uc.Logger.Info("equipe renomeada", zap.String("team_id", teamID), zap.String("name", name))
	return nil
}

// AssignSupervisor define o (único) supervisor da equipe. O usuário indicado
// precisa ter a função supervisor_equipe.
func (uc *TeamUseCase) AssignSupervisor(ctx context.Context, sess auth.Session, teamID, userID string) error {
	if !sess.Capabilities().CanManageTeams {
		return NewUnauthorized("somente o administrador geral gerencia equipes")
	}

	if _, err := uc.TeamRepo.FindByID(ctx, teamID); err != nil {
		if errors.Is(err, entity.ErrTeamNotFound) {
			return NewNotFound("equipe não encontrada")
		}
		return NewPersistenceError("falha ao buscar equipe: " + err.Error())
	}

	user, err := uc.UserRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return NewNotFound("usuário não encontrado")
		}
		return NewPersistenceError("falha ao buscar usuário: " + err.Error())
	}

	if user.Role != entity.RoleSupervisorEquipe {
		return NewValidationError(entity.ErrNotTeamSupervisor.Error())
	}

	if err := uc.TeamRepo.SetSupervisor(ctx, teamID, userID); err != nil {
		return NewPersistenceError("falha ao definir supervisor: " + err.Error())
	}

	uc.Logger.Info("supervisor de equipe definido",
		zap.String("team_id", teamID),
		zap.String("user_id", userID),
	)
	return nil
}
