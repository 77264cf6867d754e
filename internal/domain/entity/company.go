package entity

import "time"

// Company representa la empresa vendedora dueña de los listados.
type Company struct {
	ID            string
	Name          string
	CompanyTypeID string // vacío si la empresa aún no tiene giro asignado
	Email         string
	Status        string // active, suspended, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CompanyType es el giro/línea de negocio de una empresa ("Textile", "Media",
// "Hotels", ...). El nombre NO es un enum cerrado: valores desconocidos caen
// al entitlement por defecto del catálogo, nunca fallan.
type CompanyType struct {
	ID   string
	Name string
}
