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

	"github.com/jcaicedo/catalogo-obras-api/internal/application/auth"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/budgets"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/catalogs"
	"github.com/jcaicedo/catalogo-obras-api/internal/application/usecase"
	"github.com/jcaicedo/catalogo-obras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jcaicedo/catalogo-obras-api/internal/interfaces/http"
	"github.com/jcaicedo/catalogo-obras-api/pkg/config"
	"github.com/jcaicedo/catalogo-obras-api/pkg/logger"
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

	conceptRepo := postgres.NewConceptRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)
	entryRepo := postgres.NewCatalogEntryRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	lineRepo := postgres.NewBudgetLineRepository(pool)
	unitPriceRepo := postgres.NewUnitPriceRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	conceptUC := usecase.NewConceptUseCase(conceptRepo)
	resolverUC := usecase.NewPriceResolverUseCase(conceptRepo, entryRepo, unitPriceRepo)
	unitPriceUC := usecase.NewUnitPriceUseCase(unitPriceRepo, conceptRepo)
	catalogUC := catalogs.NewCatalogUseCase(catalogRepo, entryRepo, conceptRepo, txRunner)
	budgetUC := budgets.NewLineUseCase(budgetRepo, lineRepo, conceptRepo, resolverUC, txRunner)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

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
		Title:    "Catálogo de Obras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ConceptUC:   conceptUC,
		CatalogUC:   catalogUC,
		BudgetUC:    budgetUC,
		ResolverUC:  resolverUC,
		UnitPriceUC: unitPriceUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
