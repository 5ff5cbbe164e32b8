package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jcaicedo/catalogo-obras-api/internal/application/auth"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/budgets"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/catalogs"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/usecase"
	"github.com/jcaicedo/catalogo-obras-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ConceptUC   *usecase.ConceptUseCase
	CatalogUC   *catalogs.CatalogUseCase
	BudgetUC    *budgets.LineUseCase
	ResolverUC  *usecase.PriceResolverUseCase
	UnitPriceUC *usecase.UnitPriceUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Solo admin y costos administran el catálogo maestro de conceptos y los
	// catálogos de precios; los residentes consultan y arman presupuestos.
	pricing := RequireRole(entity.RoleAdmin, entity.RoleCostos)

	// Concepts (protegido)
	concepts := protected.Group("/concepts")
	conceptHandler := NewConceptHandler(deps.ConceptUC)
	concepts.Get("/", conceptHandler.List)
	concepts.Get("/categories", conceptHandler.ListByCategory)
	concepts.Get("/:id", conceptHandler.GetByID)
	concepts.Post("/", pricing, conceptHandler.Create)
	concepts.Put("/:id", pricing, conceptHandler.Update)
	concepts.Delete("/:id", pricing, conceptHandler.Obsolete)

	// Catalogs (protegido)
	catalogsGroup := protected.Group("/catalogs")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogsGroup.Get("/", catalogHandler.List)
	catalogsGroup.Get("/:id", catalogHandler.GetByID)
	catalogsGroup.Get("/:id/entries", catalogHandler.ListEntries)
	catalogsGroup.Get("/:id/stats", catalogHandler.Stats)
	catalogsGroup.Post("/", pricing, catalogHandler.Create)
	catalogsGroup.Put("/:id", pricing, catalogHandler.Update)
	catalogsGroup.Delete("/:id", pricing, catalogHandler.Delete)
	catalogsGroup.Post("/:id/status", pricing, catalogHandler.Transition)
	catalogsGroup.Post("/:id/entries", pricing, catalogHandler.AddEntry)
	catalogsGroup.Post("/:id/duplicate", pricing, catalogHandler.Duplicate)
	catalogsGroup.Post("/:id/apply-factor", pricing, catalogHandler.ApplyFactor)

	// Budgets (protegido)
	budgetsGroup := protected.Group("/budgets")
	budgetHandler := NewBudgetHandler(deps.BudgetUC)
	budgetsGroup.Post("/", budgetHandler.Create)
	budgetsGroup.Get("/:id", budgetHandler.GetByID)
	budgetsGroup.Post("/:id/status", budgetHandler.SetStatus)
	budgetsGroup.Get("/:id/lines", budgetHandler.ListLines)
	budgetsGroup.Post("/:id/lines", budgetHandler.AddLine)
	budgetsGroup.Post("/:id/lines/reorder", budgetHandler.Reorder)
	budgetsGroup.Post("/:id/lines/from-concept/:concept_id", budgetHandler.AddFromConcept)

	// Budget lines por ID propio (protegido)
	lines := protected.Group("/budget-lines")
	lines.Put("/:line_id", budgetHandler.UpdateLine)
	lines.Delete("/:line_id", budgetHandler.DeleteLine)

	// Prices (protegido)
	prices := protected.Group("/prices")
	priceHandler := NewPriceHandler(deps.ResolverUC, deps.UnitPriceUC)
	prices.Get("/resolve/:concept_id", priceHandler.Resolve)

	unitPrices := protected.Group("/unit-prices")
	unitPrices.Post("/", pricing, priceHandler.CreateUnitPrice)
	unitPrices.Post("/:id/approve", pricing, priceHandler.ApproveUnitPrice)
}
