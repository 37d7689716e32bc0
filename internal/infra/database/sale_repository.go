package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/gfsouza/vendas-crm/internal/entity"
)

type SaleRepository struct {
	DB *sql.DB
}

func NewSaleRepository(db *sql.DB) *SaleRepository {
	return &SaleRepository{DB: db}
}

const saleColumns = `
	id, status,
	customer_name, customer_phone, customer_email, customer_cpf, customer_birth_date,
	zip_code, street, number, complement, district, city, state,
	plan_id, plan_name, billing_due_day,
	installation_date, loss_reason,
	seller_id, seller_name, team_id, team_name,
	created_at, updated_at
`

func (r *SaleRepository) Create(ctx context.Context, s *entity.Sale) error {
	query := `
		INSERT INTO sales (
			id, status,
			customer_name, customer_phone, customer_email, customer_cpf, customer_birth_date,
			zip_code, street, number, complement, district, city, state,
			plan_id, plan_name, billing_due_day,
			seller_id, seller_name, team_id, team_name,
			created_at, updated_at
		) VALUES (
			$1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17,
			$18, $19, NULLIF($20, ''), $21,
			$22, $23
		)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID, string(s.Status),
		s.Customer.Name, s.Customer.Phone, s.Customer.Email, s.Customer.CPF, s.Customer.BirthDate,
		s.Customer.Address.ZipCode, s.Customer.Address.Street, s.Customer.Address.Number,
		s.Customer.Address.Complement, s.Customer.Address.District, s.Customer.Address.City, s.Customer.Address.State,
		s.PlanID, s.PlanName, s.BillingDueDay,
		s.SellerID, s.SellerName, s.TeamID, s.TeamName,
		s.CreatedAt, s.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrSaleAlreadyExists
		}
		return fmt.Errorf("falha ao gravar venda: %w", err)
	}

	return nil
}

func (r *SaleRepository) Delete(ctx context.Context, id string) error {
	// Usado apenas pela compensação da saga de criação; o fluxo normal nunca
	// apaga vendas.
	_, err := r.DB.ExecContext(ctx, `DELETE FROM sales WHERE id = $1`, id)
	return err
}

func (r *SaleRepository) FindByID(ctx context.Context, id string) (*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE id = $1`
	row := r.DB.QueryRowContext(ctx, query, id)

	sale, err := scanSale(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSaleNotFound
		}
		return nil, fmt.Errorf("falha ao buscar venda: %w", err)
	}
	return sale, nil
}

func (r *SaleRepository) List(ctx context.Context, filter entity.SaleFilter) ([]*entity.Sale, error) {
	query := `SELECT ` + saleColumns + ` FROM sales WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		args = append(args, string(filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.SellerID != "" {
		args = append(args, filter.SellerID)
		query += fmt.Sprintf(" AND seller_id = $%d", len(args))
	}
	if filter.TeamID != "" {
		args = append(args, filter.TeamID)
		query += fmt.Sprintf(" AND team_id = $%d", len(args))
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao listar vendas: %w", err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		sale, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler venda: %w", err)
		}
		sales = append(sales, sale)
	}

	return sales, rows.Err()
}

// UpdateStatus grava status e campos extras num único update. É o único
// grupo de colunas que esta operação toca.
func (r *SaleRepository) UpdateStatus(ctx context.Context, id string, status entity.Status, extra entity.StatusExtra) error {
	query := `
		UPDATE sales SET
			status = $1,
			installation_date = COALESCE($2, installation_date),
			loss_reason = CASE WHEN $3 <> '' THEN $3 ELSE loss_reason END,
			updated_at = NOW()
		WHERE id = $4
	`

	res, err := r.DB.ExecContext(ctx, query, string(status), extra.InstallationDate, extra.LossReason, id)
	if err != nil {
		return fmt.Errorf("falha ao atualizar status: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepository) UpdateCustomer(ctx context.Context, id string, c entity.Customer) error {
	query := `
		UPDATE sales SET
			customer_name = $1, customer_phone = $2, customer_email = $3,
			customer_cpf = $4, customer_birth_date = $5,
			zip_code = $6, street = $7, number = $8, complement = $9,
			district = $10, city = $11, state = $12,
			updated_at = NOW()
		WHERE id = $13
	`

	res, err := r.DB.ExecContext(ctx, query,
		c.Name, c.Phone, c.Email, c.CPF, c.BirthDate,
		c.Address.ZipCode, c.Address.Street, c.Address.Number, c.Address.Complement,
		c.Address.District, c.Address.City, c.Address.State,
		id,
	)
	if err != nil {
		return fmt.Errorf("falha ao atualizar cliente: %w", err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return entity.ErrSaleNotFound
	}
	return nil
}

func (r *SaleRepository) CountByStatus(ctx context.Context, filter entity.SaleFilter) ([]entity.StatusCount, error) {
	query := `SELECT status, COUNT(*) FROM sales WHERE 1=1`
	args := []any{}

	if filter.SellerID != "" {
		args = append(args, filter.SellerID)
		query += fmt.Sprintf(" AND seller_id = $%d", len(args))
	}
	if filter.TeamID != "" {
		args = append(args, filter.TeamID)
		query += fmt.Sprintf(" AND team_id = $%d", len(args))
	}

	query += " GROUP BY status"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("falha ao contar vendas: %w", err)
	}
	defer rows.Close()

	var counts []entity.StatusCount
	for rows.Next() {
		var c entity.StatusCount
		var status string
		if err := rows.Scan(&status, &c.Count); err != nil {
			return nil, err
		}
		c.Status = entity.Status(status)
		counts = append(counts, c)
	}

	return counts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSale(row rowScanner) (*entity.Sale, error) {
	var s entity.Sale
	var status string
	var installationDate sql.NullTime
	var lossReason, email, complement, teamID, teamName sql.NullString

	err := row.Scan(
		&s.ID, &status,
		&s.Customer.Name, &s.Customer.Phone, &email, &s.Customer.CPF, &s.Customer.BirthDate,
		&s.Customer.Address.ZipCode, &s.Customer.Address.Street, &s.Customer.Address.Number,
		&complement, &s.Customer.Address.District, &s.Customer.Address.City, &s.Customer.Address.State,
		&s.PlanID, &s.PlanName, &s.BillingDueDay,
		&installationDate, &lossReason,
		&s.SellerID, &s.SellerName, &teamID, &teamName,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	s.Status = entity.Status(status)
	s.Customer.Email = email.String
	s.Customer.Address.Complement = complement.String
	s.TeamID = teamID.String
	s.TeamName = teamName.String
	s.LossReason = lossReason.String
	if installationDate.Valid {
		s.InstallationDate = &installationDate.Time
	}

	return &s, nil
}
