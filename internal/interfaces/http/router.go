package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Compras-api/internal/application/planner"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlanRun         *planner.PlanRunUseCase
	WeightsUC       *planner.WeightsUseCase
	ProductUC       *usecase.ProductUseCase
	SupplierUC      *usecase.SupplierUseCase
	ContainerUC     *usecase.ContainerUseCase
	PurchaseOrderUC *usecase.PurchaseOrderUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Motor de planificación
	planning := api.Group("/planning")
	planningHandler := NewPlanningHandler(deps.PlanRun)
	planning.Post("/runs", planningHandler.Run)

	weightsHandler := NewWeightsHandler(deps.WeightsUC)
	planning.Get("/weights/:category", weightsHandler.Get)
	planning.Put("/weights/:category", weightsHandler.Update)

	// Catálogo maestro
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.GetBySKU)

	// Proveedores y ofertas
	suppliers := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SupplierUC)
	suppliers.Get("/", supplierHandler.List)
	suppliers.Get("/:id", supplierHandler.GetByID)
	suppliers.Get("/:id/offers", supplierHandler.ListOffers)

	// Catálogo logístico
	containers := api.Group("/containers")
	containerHandler := NewContainerHandler(deps.ContainerUC)
	containers.Get("/", containerHandler.List)

	// Borradores generados por el motor (solo lectura)
	pos := api.Group("/purchase-orders")
	poHandler := NewPurchaseOrderHandler(deps.PurchaseOrderUC)
	pos.Get("/", poHandler.List)
	pos.Get("/:number", poHandler.GetByNumber)
}
