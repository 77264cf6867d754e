// Package catalog contiene el catálogo fijo de categorías de listado y bonos
// (vouchers), y el mapa de entitlements por giro de empresa. Es data estática:
// inmutable en runtime y sin condiciones de error — entradas desconocidas
// degradan a la entrada por defecto, nunca fallan.
package catalog

// CategoryDescriptor describe una categoría de producto/media publicable.
type CategoryDescriptor struct {
	Slug  string `json:"slug"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// VoucherDescriptor describe un tipo de bono publicable.
type VoucherDescriptor struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

// =============================================================================
// Catálogo de categorías — 8 categorías físicas + 2 de media. Orden estable:
// los filtros por entitlement preservan SIEMPRE este orden, no el del mapa.
// =============================================================================

var categories = []CategoryDescriptor{
	{Slug: "textile", Label: "Textil", Path: "/listings/new/textile"},
	{Slug: "electronics", Label: "Electrónica", Path: "/listings/new/electronics"},
	{Slug: "homekitchen", Label: "Hogar y Cocina", Path: "/listings/new/homekitchen"},
	{Slug: "beautyhealth", Label: "Belleza y Salud", Path: "/listings/new/beautyhealth"},
	{Slug: "sports", Label: "Deportes", Path: "/listings/new/sports"},
	{Slug: "toys", Label: "Juguetes", Path: "/listings/new/toys"},
	{Slug: "foodbeverage", Label: "Alimentos y Bebidas", Path: "/listings/new/foodbeverage"},
	{Slug: "other", Label: "Otros Productos", Path: "/listings/new/other"},
	{Slug: "mediaonline", Label: "Media Online", Path: "/listings/new/mediaonline"},
	{Slug: "mediaoffline", Label: "Media Offline", Path: "/listings/new/mediaoffline"},
}

// =============================================================================
// Catálogo de bonos — 11 tipos. Mismo criterio de orden estable.
// =============================================================================

var vouchers = []VoucherDescriptor{
	{ID: "hotelsVoucher", Label: "Bono de Hotel", Path: "/listings/new/voucher/hotels"},
	{ID: "restaurantVoucher", Label: "Bono de Restaurante", Path: "/listings/new/voucher/restaurant"},
	{ID: "spaVoucher", Label: "Bono de Spa", Path: "/listings/new/voucher/spa"},
	{ID: "travelVoucher", Label: "Bono de Viaje", Path: "/listings/new/voucher/travel"},
	{ID: "airlineVoucher", Label: "Bono Aéreo", Path: "/listings/new/voucher/airline"},
	{ID: "eventVoucher", Label: "Bono de Evento", Path: "/listings/new/voucher/event"},
	{ID: "cinemaVoucher", Label: "Bono de Cine", Path: "/listings/new/voucher/cinema"},
	{ID: "activityVoucher", Label: "Bono de Actividad", Path: "/listings/new/voucher/activity"},
	{ID: "retailVoucher", Label: "Bono de Compra", Path: "/listings/new/voucher/retail"},
	{ID: "giftVoucher", Label: "Bono de Regalo", Path: "/listings/new/voucher/gift"},
	{ID: "otherVoucher", Label: "Otros Bonos", Path: "/listings/new/voucher/other"},
}

// DefaultEntry clave de la entrada por defecto en ambos mapas de entitlements.
// Aplica a cualquier giro de empresa no listado explícitamente (fail-open para
// productos: catálogo completo).
const DefaultEntry = "default"

// =============================================================================
// Entitlements de categorías por giro de empresa. Un slice vacío es
// intencional: hay giros solo-bonos (hoteles, aerolíneas, entretenimiento).
// Invariante: todo slug referido aquí existe en el catálogo de categorías.
// =============================================================================

var categoryEntitlements = map[string][]string{
	"Textile":                {"textile"},
	"Electronics":            {"electronics"},
	"Media":                  {"mediaonline", "mediaoffline"},
	"Hotels":                 {},
	"Airlines":               {},
	"Entertainment & Events": {},
	"Others":                 {"other"},
	DefaultEntry: {
		"textile", "electronics", "homekitchen", "beautyhealth", "sports",
		"toys", "foodbeverage", "other", "mediaonline", "mediaoffline",
	},
}

// =============================================================================
// Entitlements de bonos por giro de empresa.
// Invariante: todo id referido aquí existe en el catálogo de bonos.
// =============================================================================

var voucherEntitlements = map[string][]string{
	"Textile":                {"retailVoucher", "giftVoucher"},
	"Electronics":            {"retailVoucher", "giftVoucher"},
	"Media":                  {},
	"Hotels":                 {"hotelsVoucher", "restaurantVoucher", "spaVoucher"},
	"Airlines":               {"airlineVoucher", "travelVoucher"},
	"Entertainment & Events": {"eventVoucher", "cinemaVoucher", "activityVoucher"},
	"Others":                 {"otherVoucher"},
	DefaultEntry: {
		"hotelsVoucher", "restaurantVoucher", "spaVoucher", "travelVoucher",
		"airlineVoucher", "eventVoucher", "cinemaVoucher", "activityVoucher",
		"retailVoucher", "giftVoucher", "otherVoucher",
	},
}

// AllCategories devuelve el catálogo completo de categorías en orden estable.
func AllCategories() []CategoryDescriptor {
	out := make([]CategoryDescriptor, len(categories))
	copy(out, categories)
	return out
}

// AllVouchers devuelve el catálogo completo de bonos en orden estable.
func AllVouchers() []VoucherDescriptor {
	out := make([]VoucherDescriptor, len(vouchers))
	copy(out, vouchers)
	return out
}

// CategoriesFor devuelve las categorías permitidas para un giro de empresa.
// isAdmin=true devuelve el catálogo completo sin filtrar, sea cual sea el giro.
// Giro no mapeado usa la entrada por defecto. El resultado preserva el orden
// del catálogo y puede ser vacío.
func CategoriesFor(companyType string, isAdmin bool) []CategoryDescriptor {
	if isAdmin {
		return AllCategories()
	}
	allowed, ok := categoryEntitlements[companyType]
	if !ok {
		allowed = categoryEntitlements[DefaultEntry]
	}
	set := toSet(allowed)
	out := make([]CategoryDescriptor, 0, len(allowed))
	for _, c := range categories {
		if set[c.Slug] {
			out = append(out, c)
		}
	}
	return out
}

// VouchersFor devuelve los bonos permitidos para un giro de empresa.
// Misma semántica que CategoriesFor.
func VouchersFor(companyType string, isAdmin bool) []VoucherDescriptor {
	if isAdmin {
		return AllVouchers()
	}
	allowed, ok := voucherEntitlements[companyType]
	if !ok {
		allowed = voucherEntitlements[DefaultEntry]
	}
	set := toSet(allowed)
	out := make([]VoucherDescriptor, 0, len(allowed))
	for _, v := range vouchers {
		if set[v.ID] {
			out = append(out, v)
		}
	}
	return out
}

func toSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, it := range items {
		set[it] = true
	}
	return set
}
