package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(ctx context.Context, u *entity.User) error {
	query := `
		INSERT INTO users (id, name, email, role, active, team_id, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''), $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		u.ID, u.Name, u.Email, string(u.Role), u.Active, u.TeamID, u.PasswordHash,
		u.CreatedAt, u.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}
		return fmt.Errorf("falha ao gravar usuário: %w", err)
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	return err
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.findBy(ctx, "id", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findBy(ctx, "email", email)
}

func (r *UserRepository) findBy(ctx context.Context, column, value string) (*entity.User, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, role, active, team_id, password_hash, created_at, updated_at
		FROM users WHERE %s = $1
	`, column)

	var u entity.User
	var role string
	var teamID sql.NullString

	err := r.DB.QueryRowContext(ctx, query, value).Scan(
		&u.ID, &u.Name, &u.Email, &role, &u.Active, &teamID, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("falha ao buscar usuário: %w", err)
	}

	u.Role = entity.Role(role)
	u.TeamID = teamID.String
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT id, name, email, role, active, team_id, created_at, updated_at
		FROM users ORDER BY name
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar usuários: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		var u entity.User
		var role string
		var teamID sql.NullString

		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &role, &u.Active, &teamID, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}

		u.Role = entity.Role(role)
		u.TeamID = teamID.String
		users = append(users, &u)
	}

	return users, rows.Err()
}

func (r *UserRepository) SetActive(ctx context.Context, id string, active bool) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET active = $1, updated_at = NOW() WHERE id = $2`,
		active, id,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar usuário: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrUserNotFound
	}
	return nil
}
