package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/listing-portal/internal/application/entitlement"
	"github.com/tu-usuario/listing-portal/internal/application/identity"
)

// Tipos de listado que puede declarar una ruta protegida.
const (
	KindProduct = "product"
	KindVoucher = "voucher"
)

// GuardDeps dependencias compartidas por todos los guards de listado. Policy
// y SellerHubPath vienen de configuración y se aplican de forma uniforme al
// guard y a la proyección del menú.
type GuardDeps struct {
	Resolver      *identity.Resolver
	Policy        entitlement.AdminSourcePolicy
	SellerHubPath string
}

// RequireListing devuelve un middleware Fiber que aplica el veredicto del
// motor de entitlements en el borde de la ruta. Debe usarse DESPUÉS de
// AuthMiddleware y EntryContext.
//
// kind es "product" o "voucher". param es el nombre del path param con el
// identificador concreto (slug de categoría o id de bono); param vacío marca
// una ruta selector, permitida solo si el conjunto correspondiente no está
// vacío.
//
// Comportamiento:
//   - identidad aún resolviendo  → 204 sin cuerpo (no se redirige en falso
//     con identidad incompleta; el cliente reintenta).
//   - fallo de autenticación     → redirect al seller hub, igual que cualquier
//     acceso denegado (sin pantalla de error).
//   - denegado                   → 303 See Other al seller hub (el cliente
//     reemplaza la entrada de historial, no la apila).
//   - permitido                  → continúa con el contenido protegido.
//
// Es una compuerta binaria: no existe acceso parcial.
func RequireListing(kind, param string, deps GuardDeps) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Redirect(deps.SellerHubPath, fiber.StatusSeeOther)
		}

		snap := deps.Resolver.EnsureStarted(userID)
		if snap.Loading {
			return c.SendStatus(fiber.StatusNoContent)
		}
		if snap.State == identity.StateUserFailed {
			return c.Redirect(deps.SellerHubPath, fiber.StatusSeeOther)
		}

		eff := entitlement.Evaluate(snap, GetEntryContext(c), deps.Policy)

		if !listingAllowed(eff, kind, requestedID(c, param)) {
			return c.Redirect(deps.SellerHubPath, fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

func requestedID(c *fiber.Ctx, param string) string {
	if param == "" {
		return ""
	}
	return c.Params(param)
}

func listingAllowed(eff entitlement.Effective, kind, id string) bool {
	switch kind {
	case KindVoucher:
		if id == "" {
			return len(eff.AllowedVouchers) > 0
		}
		return eff.AllowsVoucher(id)
	default:
		if id == "" {
			return len(eff.AllowedCategories) > 0
		}
		return eff.AllowsCategory(id)
	}
}
