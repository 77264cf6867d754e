package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tu-usuario/listing-portal/internal/domain/entity"
	"github.com/tu-usuario/listing-portal/internal/domain/repository"
)

// CompanyRepository implementación PostgreSQL del puerto de empresas y giros.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

var _ repository.CompanyRepository = (*CompanyRepository)(nil)

// NewCompanyRepository construye el repositorio sobre el pool pgx.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

// companyColumns devuelve la lista de columnas de Company, calificadas con el
// alias dado. En joins con users la calificación es obligatoria: ambas tablas
// tienen id, name, email, status, created_at y updated_at, y la lista sin
// calificar falla con "column reference is ambiguous".
func companyColumns(alias string) string {
	p := ""
	if alias != "" {
		p = alias + "."
	}
	return p + "id, " + p + "name, COALESCE(" + p + "company_type_id::text, ''), " +
		p + "email, " + p + "status, " + p + "created_at, " + p + "updated_at"
}

// GetByID devuelve la empresa o nil si no existe.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns("")+` FROM companies WHERE id = $1`, id)
	return scanCompany(row)
}

// GetByUserID devuelve la empresa dueña del usuario, o nil si no tiene.
func (r *CompanyRepository) GetByUserID(ctx context.Context, userID string) (*entity.Company, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT `+companyColumns("c")+`
		FROM companies c
		JOIN users u ON u.company_id = c.id
		WHERE u.id = $1`, userID)
	return scanCompany(row)
}

// GetTypeName devuelve el nombre legible del giro, o "" si no existe.
func (r *CompanyRepository) GetTypeName(ctx context.Context, companyTypeID string) (string, error) {
	var name string
	err := r.pool.QueryRow(ctx, `SELECT name FROM company_types WHERE id = $1`, companyTypeID).Scan(&name)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("consultar giro: %w", err)
	}
	return name, nil
}

func scanCompany(row pgx.Row) (*entity.Company, error) {
	var c entity.Company
	err := row.Scan(&c.ID, &c.Name, &c.CompanyTypeID, &c.Email, &c.Status, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan empresa: %w", err)
	}
	return &c, nil
}
