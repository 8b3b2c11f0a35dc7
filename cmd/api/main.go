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

	"github.com/tu-usuario/invoicer-api/docs"
	appanalytics "github.com/tu-usuario/invoicer-api/internal/application/analytics"
	"github.com/tu-usuario/invoicer-api/internal/application/auth"
	"github.com/tu-usuario/invoicer-api/internal/application/billing"
	"github.com/tu-usuario/invoicer-api/internal/application/usecase"
	"github.com/tu-usuario/invoicer-api/internal/infrastructure/localstore"
	infrapdf "github.com/tu-usuario/invoicer-api/internal/infrastructure/pdf"
	httpRouter "github.com/tu-usuario/invoicer-api/internal/interfaces/http"
	"github.com/tu-usuario/invoicer-api/pkg/config"
	"github.com/tu-usuario/invoicer-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Almacén de colecciones JSON. Open valida cada colección y descarta
	// las que estén corruptas (arranque con colección vacía).
	store, err := localstore.Open(cfg.Store.DataDir, log)
	if err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Store.DataDir).Msg("abrir almacén de datos")
	}

	clientRepo := localstore.NewClientRepository(store)
	productRepo := localstore.NewProductRepository(store)
	invoiceRepo := localstore.NewInvoiceRepository(store)
	seqRepo := localstore.NewSequenceRepository(store)
	userRepo := localstore.NewUserRepository(store)

	clientUC := billing.NewClientUseCase(clientRepo, invoiceRepo)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo, clientRepo, productRepo, seqRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(invoiceRepo, clientRepo)

	// PDF: representación imprimible de la factura
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	invoicePDFUC := billing.NewPDFUseCase(invoiceRepo, clientRepo, userRepo, pdfGenerator)

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
		BasePath:    "/",
		FileContent: docs.SwaggerJSON,
		Path:        "docs",
		Title:       "Invoicer API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ClientUC:    clientUC,
		InvoiceUC:   invoiceUC,
		InvoicePDF:  invoicePDFUC,
		ProductUC:   productUC,
		DashboardUC: dashboardUC,
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
