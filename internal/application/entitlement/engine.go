// Package entitlement es el motor puro de autorización de listados: dada la
// identidad resuelta y el contexto de llegada, decide qué categorías y bonos
// puede usar el usuario. Sin estado, sin I/O, sin condiciones de error; el
// resultado se recalcula en cada petición y nunca se cachea (cualquiera de
// sus entradas puede cambiar entre peticiones).
package entitlement

import (
	"github.com/tu-usuario/listing-portal/internal/application/entrycontext"
	"github.com/tu-usuario/listing-portal/internal/application/identity"
	"github.com/tu-usuario/listing-portal/pkg/catalog"
)

// Orígenes de llegada reconocidos por las políticas.
const (
	SourceAdmin     = "admin"     // consola de administración
	SourceDashboard = "dashboard" // embed estándar del dashboard de vendedor
)

// DefaultCompanyType placeholder cuando ni la identidad ni el contexto de
// llegada aportan un giro. Es una entrada mapeada (estrecha) del catálogo,
// distinta del default fail-open que reciben los giros no mapeados.
const DefaultCompanyType = "Others"

// AdminSourcePolicy decide cuándo los privilegios de administrador otorgan el
// catálogo completo. Un admin que navega por el embed estándar del dashboard
// se trata a propósito como un usuario normal acotado por giro.
type AdminSourcePolicy string

const (
	// PolicyAdminSource catálogo completo solo si source == "admin".
	PolicyAdminSource AdminSourcePolicy = "admin-source"
	// PolicyNonDashboard catálogo completo para cualquier source distinto del
	// dashboard embebido.
	PolicyNonDashboard AdminSourcePolicy = "non-dashboard"
)

// ParsePolicy mapea el valor de configuración a la política; valores
// desconocidos caen a PolicyAdminSource.
func ParsePolicy(s string) AdminSourcePolicy {
	if s == string(PolicyNonDashboard) {
		return PolicyNonDashboard
	}
	return PolicyAdminSource
}

// Effective es el veredicto del motor: los conjuntos permitidos, en el orden
// del catálogo. Derivado, nunca almacenado.
type Effective struct {
	AllowedCategories []catalog.CategoryDescriptor
	AllowedVouchers   []catalog.VoucherDescriptor
}

// EffectiveCompanyType aplica la precedencia de giro: el de la identidad (si
// no está vacío) gana sobre el del contexto de llegada; si ambos faltan, el
// placeholder por defecto.
func EffectiveCompanyType(snap identity.Snapshot, arrival entrycontext.Context) string {
	if snap.CompanyTypeName != "" {
		return snap.CompanyTypeName
	}
	if arrival.CompanyType != "" {
		return arrival.CompanyType
	}
	return DefaultCompanyType
}

// AdminAll informa si esta llegada califica para el modo admin-catálogo-completo
// bajo la política dada.
func AdminAll(policy AdminSourcePolicy, isAdmin bool, source string) bool {
	if !isAdmin {
		return false
	}
	if policy == PolicyNonDashboard {
		return source != SourceDashboard
	}
	return source == SourceAdmin
}

// Evaluate calcula el entitlement efectivo. Siempre devuelve un resultado
// bien formado, posiblemente vacío.
func Evaluate(snap identity.Snapshot, arrival entrycontext.Context, policy AdminSourcePolicy) Effective {
	companyType := EffectiveCompanyType(snap, arrival)
	adminAll := AdminAll(policy, snap.IsAdmin, arrival.Source)
	return Effective{
		AllowedCategories: catalog.CategoriesFor(companyType, adminAll),
		AllowedVouchers:   catalog.VouchersFor(companyType, adminAll),
	}
}

// AllowsCategory informa si un slug concreto está permitido.
func (e Effective) AllowsCategory(slug string) bool {
	for _, c := range e.AllowedCategories {
		if c.Slug == slug {
			return true
		}
	}
	return false
}

// AllowsVoucher informa si un id de bono concreto está permitido.
func (e Effective) AllowsVoucher(id string) bool {
	for _, v := range e.AllowedVouchers {
		if v.ID == id {
			return true
		}
	}
	return false
}
