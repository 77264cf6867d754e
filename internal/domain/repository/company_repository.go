package repository

import (
	"context"

	"github.com/tu-usuario/listing-portal/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company y su giro (DIP).
type CompanyRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	// GetByUserID devuelve la empresa dueña del usuario, o nil si no tiene.
	GetByUserID(ctx context.Context, userID string) (*entity.Company, error)
	// GetTypeName devuelve el nombre legible del giro de empresa.
	GetTypeName(ctx context.Context, companyTypeID string) (string, error)
}
