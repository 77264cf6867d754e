package dto

import "github.com/tu-usuario/listing-portal/pkg/catalog"

// IdentityResponse vista del último ciclo de resolución de identidad.
type IdentityResponse struct {
	Loading         bool          `json:"loading"`
	IsAdmin         bool          `json:"is_admin"`
	CompanyTypeName string        `json:"company_type_name"`
	User            *UserResponse `json:"user,omitempty"`
	Error           string        `json:"error,omitempty"`
}

// EntryContextResponse contexto de llegada resuelto (campo vacío = ausente).
type EntryContextResponse struct {
	Source      string `json:"source"`
	CompanyType string `json:"companyType"`
}

// EntitlementsResponse conjuntos permitidos vigentes para el usuario actual.
type EntitlementsResponse struct {
	AllowedCategories []catalog.CategoryDescriptor `json:"allowed_categories"`
	AllowedVouchers   []catalog.VoucherDescriptor  `json:"allowed_vouchers"`
}

// MenuEntry entrada del menú lateral.
type MenuEntry struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

// NavigationResponse menú lateral filtrado por entitlements.
type NavigationResponse struct {
	Categories []MenuEntry `json:"categories"`
	Vouchers   []MenuEntry `json:"vouchers"`
}

// CategoryPickerResponse selector de categorías. Message se llena con el
// estado-vacío explícito cuando no hay opciones (nunca una grilla vacía muda).
type CategoryPickerResponse struct {
	Categories []catalog.CategoryDescriptor `json:"categories"`
	Message    string                       `json:"message,omitempty"`
}

// VoucherPickerResponse selector de bonos, mismo criterio de estado vacío.
type VoucherPickerResponse struct {
	Vouchers []catalog.VoucherDescriptor `json:"vouchers"`
	Message  string                      `json:"message,omitempty"`
}
