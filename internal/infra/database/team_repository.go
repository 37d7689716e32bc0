package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type TeamRepository struct {
	DB *sql.DB
}

func NewTeamRepository(db *sql.DB) *TeamRepository {
	return &TeamRepository{DB: db}
}

func (r *TeamRepository) Create(ctx context.Context, t *entity.Team) error {
	query := `
		INSERT INTO teams (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.DB.ExecContext(ctx, query, t.ID, t.Name, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("falha ao gravar equipe: %w", err)
	}
	return nil
}

func (r *TeamRepository) FindByID(ctx context.Context, id string) (*entity.Team, error) {
	query := `
		SELECT t.id, t.name, t.supervisor_id, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM users u WHERE u.team_id = t.id) AS member_count
		FROM teams t WHERE t.id = $1
	`

	var t entity.Team
	var supervisorID sql.NullString

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &supervisorID, &t.CreatedAt, &t.UpdatedAt, &t.MemberCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrTeamNotFound
		}
		return nil, fmt.Errorf("falha ao buscar equipe: %w", err)
	}

	t.SupervisorID = supervisorID.String
	return &t, nil
}

func (r *TeamRepository) List(ctx context.Context) ([]*entity.Team, error) {
	query := `
		SELECT t.id, t.name, t.supervisor_id, t.created_at, t.updated_at,
		       (SELECT COUNT(*) FROM users u WHERE u.team_id = t.id) AS member_count
		FROM teams t ORDER BY t.name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar equipes: %w", err)
	}
	defer rows.Close()

	var teams []*entity.Team
	for rows.Next() {
		var t entity.Team
		var supervisorID sql.NullString

		if err := rows.Scan(&t.ID, &t.Name, &supervisorID, &t.CreatedAt, &t.UpdatedAt, &t.MemberCount); err != nil {
			return nil, err
		}

		t.SupervisorID = supervisorID.String
		teams = append(teams, &t)
	}

	return teams, rows.Err()
}

func (r *TeamRepository) Rename(ctx context.Context, teamID, name string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE teams SET name = $1, updated_at = NOW() WHERE id = $2`,
		name, teamID,
	)
	if err != nil {
		return fmt.Errorf("falha ao renomear equipe: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrTeamNotFound
	}
	return nil
}

func (r *TeamRepository) SetSupervisor(ctx context.Context, teamID, supervisorID string) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE teams SET supervisor_id = $1, updated_at = NOW() WHERE id = $2`,
		supervisorID, teamID,
	)
	if err != nil {
		return fmt.Errorf("falha ao definir supervisor: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrTeamNotFound
	}
	return nil
}
