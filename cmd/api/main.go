package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Compras-api/internal/application/planner"
	"github.com/jhoicas/Compras-api/internal/application/usecase"
	"github.com/jhoicas/Compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Compras-api/internal/interfaces/http"
	"github.com/jhoicas/Compras-api/pkg/config"
	"github.com/jhoicas/Compras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	forecastRepo := postgres.NewForecastRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	weightsRepo := postgres.NewWeightsRepository(pool)
	containerRepo := postgres.NewContainerSpecRepository(pool)
	poRepo := postgres.NewPurchaseOrderRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	planRunUC := planner.NewPlanRunUseCase(
		productRepo, inventoryRepo, forecastRepo, supplierRepo, weightsRepo, containerRepo,
		txRunner,
		planner.Defaults{
			HorizonMonths:          cfg.Planning.HorizonMonths,
			PreferredContainerType: cfg.Planning.PreferredContainerType,
		},
		log,
	)
	weightsUC := planner.NewWeightsUseCase(weightsRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	supplierUC := usecase.NewSupplierUseCase(supplierRepo)
	containerUC := usecase.NewContainerUseCase(containerRepo)
	poUC := usecase.NewPurchaseOrderUseCase(poRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		PlanRun:         planRunUC,
		WeightsUC:       weightsUC,
		ProductUC:       productUC,
		SupplierUC:      supplierUC,
		ContainerUC:     containerUC,
		PurchaseOrderUC: poUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
