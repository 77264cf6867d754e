package postgres

import (
	"context"

	"github.com/tu-usuario/listing-portal/internal/application/identity"
	"github.com/tu-usuario/listing-portal/internal/domain/entity"
	"github.com/tu-usuario/listing-portal/internal/domain/repository"
)

// Directory adapta los repositorios de usuario y empresa al puerto que
// consume el resolver de identidad (cadena usuario → empresa → giro).
type Directory struct {
	users     repository.UserRepository
	companies repository.CompanyRepository
}

var _ identity.Directory = (*Directory)(nil)

// NewDirectory construye el adaptador.
func NewDirectory(users repository.UserRepository, companies repository.CompanyRepository) *Directory {
	return &Directory{users: users, companies: companies}
}

// CurrentUser paso 1 de la cadena.
func (d *Directory) CurrentUser(ctx context.Context, userID string) (*entity.User, error) {
	return d.users.GetByID(ctx, userID)
}

// OwningCompany paso 2 de la cadena.
func (d *Directory) OwningCompany(ctx context.Context, userID string) (*entity.Company, error) {
	return d.companies.GetByUserID(ctx, userID)
}

// CompanyTypeName paso 3 de la cadena.
func (d *Directory) CompanyTypeName(ctx context.Context, companyTypeID string) (string, error) {
	return d.companies.GetTypeName(ctx, companyTypeID)
}
