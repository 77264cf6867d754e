package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/listing-portal/internal/application/dto"
	"github.com/tu-usuario/listing-portal/internal/application/entitlement"
	"github.com/tu-usuario/listing-portal/pkg/catalog"
)

// Mensajes de estado-vacío de los selectores. Nunca se responde una grilla
// vacía muda: el giro de la empresa puede no publicar este tipo de listado.
const (
	emptyCategoriesMessage = "tu tipo de empresa no publica productos; revisa los bonos disponibles"
	emptyVouchersMessage   = "tu tipo de empresa no publica bonos; revisa las categorías disponibles"
)

// ListingHandler rutas de creación de listados: selectores y entradas por
// categoría/bono. El contenido real del wizard vive fuera de este servicio;
// aquí solo se sirve lo que el guard dejó pasar.
type ListingHandler struct {
	deps GuardDeps
}

// NewListingHandler construye el handler.
func NewListingHandler(deps GuardDeps) *ListingHandler {
	return &ListingHandler{deps: deps}
}

// CategoryPicker godoc
// @Summary      Selector de categorías de producto permitidas
// @Tags         listings
// @Produce      json
// @Success      200  {object}  dto.CategoryPickerResponse
// @Router       /api/listings/categories [get]
func (h *ListingHandler) CategoryPicker(c *fiber.Ctx) error {
	eff := h.evaluate(c)
	out := dto.CategoryPickerResponse{Categories: eff.AllowedCategories}
	if len(out.Categories) == 0 {
		out.Categories = []catalog.CategoryDescriptor{}
		out.Message = emptyCategoriesMessage
	}
	return c.JSON(out)
}

// VoucherPicker godoc
// @Summary      Selector de bonos permitidos
// @Tags         listings
// @Produce      json
// @Success      200  {object}  dto.VoucherPickerResponse
// @Router       /api/listings/vouchers [get]
func (h *ListingHandler) VoucherPicker(c *fiber.Ctx) error {
	eff := h.evaluate(c)
	out := dto.VoucherPickerResponse{Vouchers: eff.AllowedVouchers}
	if len(out.Vouchers) == 0 {
		out.Vouchers = []catalog.VoucherDescriptor{}
		out.Message = emptyVouchersMessage
	}
	return c.JSON(out)
}

// CategoryEntry godoc
// @Summary      Entrada de creación para una categoría concreta (tras el guard)
// @Tags         listings
// @Produce      json
// @Param        slug  path  string  true  "Slug de la categoría"
// @Success      200   {object}  catalog.CategoryDescriptor
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/listings/categories/{slug} [get]
func (h *ListingHandler) CategoryEntry(c *fiber.Ctx) error {
	slug := c.Params("slug")
	for _, cat := range catalog.AllCategories() {
		if cat.Slug == slug {
			return c.JSON(cat)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "categoría no existe"})
}

// VoucherEntry godoc
// @Summary      Entrada de creación para un bono concreto (tras el guard)
// @Tags         listings
// @Produce      json
// @Param        id   path  string  true  "ID del bono"
// @Success      200  {object}  catalog.VoucherDescriptor
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/listings/vouchers/{id} [get]
func (h *ListingHandler) VoucherEntry(c *fiber.Ctx) error {
	id := c.Params("id")
	for _, v := range catalog.AllVouchers() {
		if v.ID == id {
			return c.JSON(v)
		}
	}
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "bono no existe"})
}

// NewListingEntry contenido tras el guard en modo selector (conjunto no
// vacío garantizado): confirma que el usuario puede iniciar el wizard.
func (h *ListingHandler) NewListingEntry(c *fiber.Ctx) error {
	eff := h.evaluate(c)
	return c.JSON(dto.EntitlementsResponse{
		AllowedCategories: eff.AllowedCategories,
		AllowedVouchers:   eff.AllowedVouchers,
	})
}

func (h *ListingHandler) evaluate(c *fiber.Ctx) entitlement.Effective {
	snap := h.deps.Resolver.EnsureStarted(GetUserID(c))
	return entitlement.Evaluate(snap, GetEntryContext(c), h.deps.Policy)
}
