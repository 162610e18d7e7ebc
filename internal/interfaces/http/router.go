package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/edievo/edsis-api/internal/application/auth"
	"github.com/edievo/edsis-api/internal/application/usecase"
	"github.com/edievo/edsis-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	ProductUC  *usecase.ProductUseCase
	CatalogUC  *usecase.CatalogUseCase
	BookingUC  *usecase.BookingUseCase
	DiscountUC *usecase.DiscountUseCase
	RatesUC    *usecase.RatesUseCase
	ImportUC   *usecase.ImportUseCase
	ExportUC   *usecase.ExportUseCase
	JWTSecret  string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything else requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)
	products.Post("/:id/stock", productHandler.AddStock)
	products.Get("/:id/units", productHandler.Units)
	products.Get("/:id/labels", productHandler.Labels)
	products.Post("/:id/discounts", productHandler.AssignDiscounts)

	// Catalog tree
	catalog := protected.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/tree", catalogHandler.Tree)

	// Unit lifecycle
	units := protected.Group("/units")
	bookingHandler := NewBookingHandler(deps.BookingUC)
	units.Post("/:id/book", bookingHandler.Book)
	units.Post("/:id/release", bookingHandler.Release)
	units.Post("/:id/sell", bookingHandler.Sell)
	units.Post("/:id/relocate", bookingHandler.Relocate)

	// Bookings
	bookings := protected.Group("/bookings")
	bookings.Get("/", bookingHandler.List)
	bookings.Post("/sweep", RequireRole(entity.RoleAdmin), bookingHandler.Sweep)

	// Discounts
	discounts := protected.Group("/discounts")
	discountHandler := NewDiscountHandler(deps.DiscountUC)
	discounts.Post("/", discountHandler.Create)
	discounts.Get("/", discountHandler.List)
	discounts.Get("/:id", discountHandler.GetByID)
	discounts.Put("/:id", discountHandler.Update)
	discounts.Delete("/:id", discountHandler.Delete)

	// Exchange rates
	rates := protected.Group("/rates")
	ratesHandler := NewRatesHandler(deps.RatesUC)
	rates.Get("/", ratesHandler.Get)
	rates.Put("/", RequireRole(entity.RoleAdmin), ratesHandler.Update)

	// Bulk transfer
	transferHandler := NewTransferHandler(deps.ImportUC, deps.ExportUC)
	protected.Post("/import", transferHandler.Import)
	protected.Get("/import/template", transferHandler.Template)
	protected.Get("/export", transferHandler.Export)
}
