package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cotizador-api/internal/application/auth"
	"github.com/jhoicas/Cotizador-api/internal/application/quote"
	"github.com/jhoicas/Cotizador-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	CompanyUC  *usecase.CompanyUseCase
	MemberUC   *usecase.MemberUseCase
	CatalogUC  *usecase.CatalogUseCase
	ServiceUC  *usecase.ServiceUseCase
	JobUC      *usecase.JobUseCase
	EstimateUC *usecase.EstimateUseCase
	AuditUC    *usecase.AuditUseCase
	QuotePDF   *quote.PDFUseCase
	AccessSvc  *usecase.AccessService
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/invites/accept", authHandler.AcceptInvite)

	// Catálogo de oficios (público: el registro necesita elegir oficio)
	catalogHandler := NewCatalogHandler(deps.CatalogUC, deps.AccessSvc)
	api.Get("/trades", catalogHandler.ListTrades)
	api.Get("/trades/:id/specialties", catalogHandler.ListSpecialties)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Especialidades del actor (protegido)
	protected.Get("/me/specialties", catalogHandler.MySpecialties)

	// Empresa (protegido)
	companyHandler := NewCompanyHandler(deps.CompanyUC, deps.AccessSvc)
	protected.Get("/company", companyHandler.Me)
	protected.Put("/company", companyHandler.Update)

	// Miembros (protegido)
	members := protected.Group("/members")
	memberHandler := NewMemberHandler(deps.MemberUC, deps.AccessSvc)
	members.Get("/", memberHandler.List)
	members.Post("/invites", memberHandler.Invite)
	members.Put("/:userId/permissions", memberHandler.UpdatePermissions)
	members.Put("/:userId/specialties", memberHandler.UpdateSpecialties)
	members.Put("/:userId/role", memberHandler.UpdateRole)
	members.Delete("/:userId", memberHandler.Deactivate)

	// Servicios con precio (protegido)
	services := protected.Group("/services")
	serviceHandler := NewServiceHandler(deps.ServiceUC, deps.AccessSvc)
	services.Post("/", serviceHandler.Create)
	services.Get("/", serviceHandler.List)
	services.Get("/:id", serviceHandler.GetByID)
	services.Put("/:id", serviceHandler.Update)
	services.Delete("/:id", serviceHandler.Delete)

	// Trabajos y cotizaciones (protegido)
	jobs := protected.Group("/jobs")
	jobHandler := NewJobHandler(deps.JobUC, deps.QuotePDF, deps.AccessSvc)
	jobs.Post("/", jobHandler.Create)
	jobs.Get("/", jobHandler.List)
	jobs.Get("/:id", jobHandler.Detail)
	jobs.Put("/:id", jobHandler.Update)
	jobs.Put("/:id/status", jobHandler.UpdateStatus)
	jobs.Post("/:id/items", jobHandler.AddItem)
	jobs.Put("/:id/items/:itemId", jobHandler.UpdateItem)
	jobs.Delete("/:id/items/:itemId", jobHandler.DeleteItem)
	jobs.Post("/:id/assignments", jobHandler.Share)
	jobs.Get("/:id/assignments", jobHandler.ListAssignments)
	jobs.Get("/:id/quote.pdf", jobHandler.QuotePDF)

	// Calculadora de estimación (protegido)
	estimateHandler := NewEstimateHandler(deps.EstimateUC, deps.AccessSvc)
	protected.Post("/estimates", estimateHandler.Estimate)

	// Auditoría (protegido)
	auditHandler := NewAuditHandler(deps.AuditUC, deps.AccessSvc)
	protected.Get("/audit", auditHandler.List)
}
