package api

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/docs"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/api/handler"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/api/middleware"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/domain"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/ports"
	"github.com/Md-Rashedul-Islam-Rajib/Empuls-Server/internal/core/service"
)

// Repositories are the storage adapters the router builds its services on.
type Repositories struct {
	Users       ports.UserRepository
	Payments    ports.PaymentRepository
	WorkLogs    ports.WorkLogRepository
	Catalog     ports.CatalogRepository
	Messages    ports.MessageRepository
	Audit       ports.AuditRepository
	Idempotency ports.IdempotencyStore
}

// Options configures the HTTP surface.
type Options struct {
	TokenSecret string
	TokenTTL    time.Duration
	CORSOrigins []string
	Logger      zerolog.Logger
	// Registerer receives the HTTP request metrics. A private registry is
	// used when nil.
	Registerer prometheus.Registerer
	// Health lists the dependencies pinged by /health/ready.
	Health []handler.Dependency
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(repos Repositories, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	registerer := opts.Registerer
	if registerer == nil {
		registerer = prometheus.NewRegistry()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     opts.CORSOrigins,
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Idempotency-Key"},
		AllowCredentials: true,
	}))
	e.Use(middleware.RequestLogger(opts.Logger))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "empuls",
		Registerer: registerer,
		Skipper: func(c echo.Context) bool {
			return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/swagger")
		},
	}))

	// --- Dependencies ---
	log := opts.Logger
	tokenService := service.NewTokenService(repos.Users, opts.TokenSecret, opts.TokenTTL, log.With().Str("component", "token").Logger())
	userService := service.NewUserService(repos.Users, repos.Audit, log.With().Str("component", "users").Logger())
	payrollService := service.NewPayrollService(repos.Payments, repos.Audit, log.With().Str("component", "payroll").Logger())
	workLogService := service.NewWorkLogService(repos.WorkLogs, repos.Idempotency, log.With().Str("component", "worklog").Logger())
	catalogService := service.NewCatalogService(repos.Catalog, repos.Messages, repos.Idempotency, log.With().Str("component", "catalog").Logger())

	authHandler := handler.NewAuthHandler(tokenService)
	userHandler := handler.NewUserHandler(userService)
	payrollHandler := handler.NewPayrollHandler(payrollService)
	workLogHandler := handler.NewWorkLogHandler(workLogService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	healthHandler := handler.NewHealthHandler(opts.Health...)

	auth := middleware.Auth(tokenService)
	isAdmin := middleware.VerifyAdmin(repos.Users)
	isHR := middleware.VerifyHR(repos.Users)
	isEmployee := middleware.VerifyEmployee(repos.Users)
	isStaff := middleware.RequireRole(repos.Users, domain.RoleHR, domain.RoleAdmin)

	// --- Probes, metrics and docs (no auth required) ---
	e.GET("/", healthHandler.Root)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Auth ---
	e.POST("/jwt", authHandler.IssueToken)

	// --- Users ---
	e.POST("/users", userHandler.Create)
	e.GET("/users", userHandler.List, auth, middleware.Unless(lookupOfSelf, isStaff))
	e.GET("/users/hr/:email", userHandler.IsHR, auth)
	e.GET("/users/admin/:email", userHandler.IsAdmin, auth)
	e.GET("/users/employee/:email", userHandler.IsEmployee, auth)
	e.PUT("/users/:id", userHandler.Verify, auth, isAdmin)
	e.PATCH("/users/:id", userHandler.Fire, auth, isStaff)
	e.PATCH("/users/:id/HR", userHandler.GrantHR, auth, isAdmin)
	e.PATCH("/users/:id/salary", userHandler.UpdateSalary, auth, isStaff)

	// --- Payroll ---
	e.POST("/payment-history/:id", payrollHandler.Record, auth, isHR)
	e.GET("/payment-history", payrollHandler.History)

	// --- Work logs ---
	e.POST("/work-list", workLogHandler.Submit, auth, isEmployee)
	e.GET("/work-list", workLogHandler.List)

	// --- Catalog ---
	e.GET("/services", catalogHandler.Services)
	e.GET("/testimonials", catalogHandler.Testimonials)
	e.POST("/messages", catalogHandler.PostMessage)
	e.GET("/messages", catalogHandler.Messages)

	return e
}

// lookupOfSelf reports whether the request only reads the caller's own record.
// Emails are stored case-sensitively, so the match is exact.
func lookupOfSelf(c echo.Context) bool {
	caller, _ := c.Get(middleware.ContextKeyEmail).(string)
	email := c.QueryParam("email")
	return email != "" && email == caller
}
