package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/jhoicas/inventar/docs"
	"github.com/jhoicas/inventar/internal/application/export"
	"github.com/jhoicas/inventar/internal/application/form"
	appinventory "github.com/jhoicas/inventar/internal/application/inventory"
	"github.com/jhoicas/inventar/internal/application/usecase"
	"github.com/jhoicas/inventar/internal/infrastructure/localstore"
	"github.com/jhoicas/inventar/internal/infrastructure/metrics"
	infrapdf "github.com/jhoicas/inventar/internal/infrastructure/pdf"
	infraseed "github.com/jhoicas/inventar/internal/infrastructure/seed"
	"github.com/jhoicas/inventar/internal/infrastructure/spreadsheet"
	"github.com/jhoicas/inventar/internal/infrastructure/storage"
	httpRouter "github.com/jhoicas/inventar/internal/interfaces/http"
	"github.com/jhoicas/inventar/pkg/config"
	"github.com/jhoicas/inventar/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

// @title        Inventar API
// @version      1.0
// @description  Inventario de productos: tabla, formulario con confirmación de borrado y exports.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	kv, closer, err := storage.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Store.Driver).Msg("conexión al almacén")
	}
	defer closer.Close()

	recordStore := localstore.NewRecordStore(kv, cfg.Store.RecordsKey, log.Component("localstore"))
	recordRepo := appinventory.NewRecordRepository(recordStore)

	// Semilla: solo con SEED_URL y con la lista vacía.
	var fetcher appinventory.SeedFetcher
	if cfg.Seed.URL != "" {
		fetcher = infraseed.NewHTTPFetcher(cfg.Seed.URL)
	}
	seedRes, err := appinventory.NewBootstrapper(recordStore, fetcher, appinventory.SeedPolicy(cfg.Seed.Policy), log.Component("seed")).Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("bootstrap de datos semilla")
	}
	if fetcher != nil {
		metrics.SeedFetchTotal.WithLabelValues(seedRes.Label()).Inc()
	}

	tableRenderer := appinventory.NewTableRenderer(cfg.App.Currency)
	formCtrl := form.NewController(recordRepo, form.RealScheduler{}, log.Component("form"))
	exportUC := export.NewUseCase(recordRepo, infrapdf.NewMarotoPDFGenerator(cfg.App.Name), spreadsheet.NewSheetGenerator(), cfg.App.Currency)
	preferencesUC := usecase.NewPreferencesUseCase(kv)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestID())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs (solo si se generó docs/swagger.json)
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "Inventar API",
		}))
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:       cfg.App.Name,
		Records:       recordRepo,
		Table:         tableRenderer,
		Form:          formCtrl,
		Export:        exportUC,
		PreferencesUC: preferencesUC,
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
