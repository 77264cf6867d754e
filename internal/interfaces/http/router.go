package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/tu-usuario/listing-portal/internal/application/auth"
	"github.com/tu-usuario/listing-portal/internal/application/entitlement"
	"github.com/tu-usuario/listing-portal/internal/application/identity"
	"github.com/tu-usuario/listing-portal/internal/domain/entity"
	"github.com/tu-usuario/listing-portal/pkg/catalog"
	"github.com/tu-usuario/listing-portal/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	Resolver      *identity.Resolver
	Policy        entitlement.AdminSourcePolicy
	SellerHubPath string
	JWTSecret     string
	Sessions      *session.Store
	Log           *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	guard := GuardDeps{
		Resolver:      deps.Resolver,
		Policy:        deps.Policy,
		SellerHubPath: deps.SellerHubPath,
	}

	// Seller hub: ruta de aterrizaje de todo acceso denegado.
	app.Get(deps.SellerHubPath, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"page": "sellerhub"})
	})

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas: Bearer Token + contexto de llegada sticky por sesión.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret), EntryContext(deps.Sessions, deps.Log))

	entHandler := NewEntitlementHandler(guard)
	protected.Get("/navigation", entHandler.Navigation)
	protected.Get("/entitlements", entHandler.Entitlements)
	protected.Get("/entry-context", entHandler.EntryContext)
	protected.Get("/identity", entHandler.Identity)
	protected.Post("/identity/refetch", entHandler.Refetch)

	// Listados: selectores sin guard de vacuidad (responden estado-vacío
	// explícito); entradas concretas y arranque de wizard tras el guard.
	listings := protected.Group("/listings")
	listingHandler := NewListingHandler(guard)
	listings.Get("/categories", listingHandler.CategoryPicker)
	listings.Get("/categories/:slug", RequireListing(KindProduct, "slug", guard), listingHandler.CategoryEntry)
	listings.Get("/vouchers", listingHandler.VoucherPicker)
	listings.Get("/vouchers/:id", RequireListing(KindVoucher, "id", guard), listingHandler.VoucherEntry)
	listings.Get("/new", RequireListing(KindProduct, "", guard), listingHandler.NewListingEntry)
	listings.Get("/new/voucher", RequireListing(KindVoucher, "", guard), listingHandler.NewListingEntry)

	// Consola admin: catálogo completo sin filtrar, solo rol admin.
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin))
	admin.Get("/catalog", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"categories": catalog.AllCategories(),
			"vouchers":   catalog.AllVouchers(),
		})
	})
}
