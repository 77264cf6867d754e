package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/listing-portal/internal/application/auth"
	"github.com/tu-usuario/listing-portal/internal/application/dto"
	"github.com/tu-usuario/listing-portal/internal/application/entitlement"
	"github.com/tu-usuario/listing-portal/internal/application/identity"
)

// EntitlementHandler expone las lecturas del motor de entitlements: menú
// filtrado, conjuntos permitidos, contexto de llegada e identidad.
type EntitlementHandler struct {
	deps GuardDeps
}

// NewEntitlementHandler construye el handler con las mismas dependencias que
// el guard (misma política: el menú nunca puede divergir de la compuerta).
func NewEntitlementHandler(deps GuardDeps) *EntitlementHandler {
	return &EntitlementHandler{deps: deps}
}

// Navigation godoc
// @Summary      Menú lateral filtrado por entitlements
// @Tags         entitlements
// @Produce      json
// @Success      200  {object}  dto.NavigationResponse
// @Router       /api/navigation [get]
//
// Regla extra de la proyección: con identidad aún resolviendo Y llegada por
// el dashboard embebido, se suprime el menú completo (lista vacía) para no
// mostrar un flash de categorías de otro alcance antes de que resuelva la
// identidad. Con cualquier otro origen el menú sale de inmediato: el default
// permisivo ya aplica antes de que llegue la identidad.
func (h *EntitlementHandler) Navigation(c *fiber.Ctx) error {
	arrival := GetEntryContext(c)
	snap := h.deps.Resolver.EnsureStarted(GetUserID(c))

	if snap.Loading && arrival.Source == entitlement.SourceDashboard {
		return c.JSON(dto.NavigationResponse{Categories: []dto.MenuEntry{}, Vouchers: []dto.MenuEntry{}})
	}
	if snap.State == identity.StateUserFailed {
		// Consistente con el guard: sin identidad no hay entradas de menú.
		return c.JSON(dto.NavigationResponse{Categories: []dto.MenuEntry{}, Vouchers: []dto.MenuEntry{}})
	}

	eff := entitlement.Evaluate(snap, arrival, h.deps.Policy)
	out := dto.NavigationResponse{
		Categories: make([]dto.MenuEntry, 0, len(eff.AllowedCategories)),
		Vouchers:   make([]dto.MenuEntry, 0, len(eff.AllowedVouchers)),
	}
	for _, cat := range eff.AllowedCategories {
		out.Categories = append(out.Categories, dto.MenuEntry{Label: cat.Label, Path: cat.Path})
	}
	for _, v := range eff.AllowedVouchers {
		out.Vouchers = append(out.Vouchers, dto.MenuEntry{Label: v.Label, Path: v.Path})
	}
	return c.JSON(out)
}

// Entitlements godoc
// @Summary      Conjuntos permitidos vigentes para el usuario actual
// @Tags         entitlements
// @Produce      json
// @Success      200  {object}  dto.EntitlementsResponse
// @Router       /api/entitlements [get]
func (h *EntitlementHandler) Entitlements(c *fiber.Ctx) error {
	snap := h.deps.Resolver.EnsureStarted(GetUserID(c))
	eff := entitlement.Evaluate(snap, GetEntryContext(c), h.deps.Policy)
	return c.JSON(dto.EntitlementsResponse{
		AllowedCategories: eff.AllowedCategories,
		AllowedVouchers:   eff.AllowedVouchers,
	})
}

// EntryContext godoc
// @Summary      Contexto de llegada resuelto (source + companyType)
// @Tags         entitlements
// @Produce      json
// @Success      200  {object}  dto.EntryContextResponse
// @Router       /api/entry-context [get]
func (h *EntitlementHandler) EntryContext(c *fiber.Ctx) error {
	arrival := GetEntryContext(c)
	return c.JSON(dto.EntryContextResponse{Source: arrival.Source, CompanyType: arrival.CompanyType})
}

// Identity godoc
// @Summary      Último ciclo de resolución de identidad
// @Tags         identity
// @Produce      json
// @Success      200  {object}  dto.IdentityResponse
// @Router       /api/identity [get]
func (h *EntitlementHandler) Identity(c *fiber.Ctx) error {
	snap := h.deps.Resolver.EnsureStarted(GetUserID(c))
	return c.JSON(dto.IdentityResponse{
		Loading:         snap.Loading,
		IsAdmin:         snap.IsAdmin,
		CompanyTypeName: snap.CompanyTypeName,
		User:            auth.ToUserResponse(snap.User),
		Error:           snap.Error,
	})
}

// Refetch godoc
// @Summary      Relanza la cadena de resolución de identidad
// @Tags         identity
// @Success      202
// @Router       /api/identity/refetch [post]
func (h *EntitlementHandler) Refetch(c *fiber.Ctx) error {
	h.deps.Resolver.Refetch(GetUserID(c))
	return c.SendStatus(fiber.StatusAccepted)
}
