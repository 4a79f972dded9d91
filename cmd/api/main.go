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

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Cotizador-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Cotizador-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Cotizador-api/internal/interfaces/http"
	"github.com/jhoicas/Cotizador-api/pkg/config"
	"github.com/jhoicas/Cotizador-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Msg("iniciando aplicación")

	ctx := context.Background()

	if err := postgres.UpMigrations(cfg.DB.ConnectionString()); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Repositorios
	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	membershipRepo := postgres.NewMembershipRepository(pool)
	tradeRepo := postgres.NewTradeRepository(pool)
	serviceRepo := postgres.NewServiceRepository(pool)
	jobRepo := postgres.NewJobRepository(pool)
	jobItemRepo := postgres.NewJobItemRepository(pool)
	jobAssignmentRepo := postgres.NewJobAssignmentRepository(pool)
	inviteRepo := postgres.NewInviteRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Núcleo de acceso compartido por todos los casos de uso protegidos
	accessSvc := usecase.NewAccessService(membershipRepo, companyRepo, tradeRepo)

	authUC := auth.NewAuthUseCase(userRepo, membershipRepo, tradeRepo, inviteRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	memberUC := usecase.NewMemberUseCase(membershipRepo, userRepo, companyRepo, tradeRepo, inviteRepo, auditRepo)
	catalogUC := usecase.NewCatalogUseCase(tradeRepo, companyRepo, accessSvc)
	serviceUC := usecase.NewServiceUseCase(serviceRepo, accessSvc)
	jobUC := usecase.NewJobUseCase(jobRepo, jobItemRepo, jobAssignmentRepo, serviceRepo, membershipRepo, companyRepo, auditRepo, accessSvc)
	estimateUC := usecase.NewEstimateUseCase()
	auditUC := usecase.NewAuditUseCase(auditRepo)

	// PDF de cotización
	quoteGenerator := infrapdf.NewMarotoQuoteGenerator()
	quotePDFUC := quote.NewPDFUseCase(
		jobRepo, jobItemRepo, jobAssignmentRepo, companyRepo,
		quoteGenerator, accessSvc.AllowedSpecialtyIDs,
		cfg.Quote.Currency, cfg.Quote.ValidityDays,
	)

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
		Title:    "Cotizador Pro API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		CompanyUC:  companyUC,
		MemberUC:   memberUC,
		CatalogUC:  catalogUC,
		ServiceUC:  serviceUC,
		JobUC:      jobUC,
		EstimateUC: estimateUC,
		AuditUC:    auditUC,
		QuotePDF:   quotePDFUC,
		AccessSvc:  accessSvc,
		JWTSecret:  cfg.JWT.Secret,
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
