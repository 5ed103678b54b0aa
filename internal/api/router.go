package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/senabank/operator-console/docs"
	"github.com/senabank/operator-console/internal/api/handler"
	"github.com/senabank/operator-console/internal/api/middleware"
	"github.com/senabank/operator-console/internal/core/domain"
	"github.com/senabank/operator-console/internal/core/service"
)

// Deps are the collaborators the HTTP console is built from.
type Deps struct {
	Auth   *service.AuthService
	Health map[string]handler.Pinger
	Log    zerolog.Logger
	// Registry receives the request metrics and backs /metrics. Nil uses
	// the default registry, which also holds the dispatch metrics.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddlewareWithConfig(promConfig(deps.Registry)))
	e.Use(requestLogger(deps.Log))

	// --- Auth routes ---
	authHandler := handler.NewAuthHandler(deps.Auth)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)

	// --- Workspace routes ---
	ws := handler.NewWorkspaceHandler(deps.Auth, deps.Log)
	session := middleware.Session(deps.Auth)

	clerk := e.Group("/clerk", session, middleware.RBAC(domain.RoleClerk))
	clerk.GET("/accounts", ws.AllAccounts)
	clerk.GET("/accounts/summary", ws.Summary)
	clerk.GET("/accounts/:id", ws.AccountByID)
	clerk.GET("/accounts/:id/transactions", ws.AccountWithTransactions)
	clerk.GET("/accounts/:id/summary", ws.SummaryByAccount)
	clerk.POST("/deposit", ws.Deposit)
	clerk.POST("/withdraw", ws.Withdraw)
	clerk.POST("/transfer", ws.Transfer)

	manager := e.Group("/manager", session, middleware.RBAC(domain.RoleManager))
	manager.POST("/clerks", ws.CreateClerk)
	manager.POST("/accounts", ws.AddAccount)
	manager.DELETE("/accounts/:id", ws.DeleteAccount)
	manager.GET("/transactions", ws.AllTransactions)
	manager.GET("/transactions/count/:accountId", ws.TransactionCount)
	manager.GET("/transactions/:id", ws.TransactionByID)
	manager.POST("/transactions/approve", ws.ApproveWithdrawal)

	// --- Health probes and tooling (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Health)

	e.GET("/health", healthHandler.Liveness)            // liveness
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness: ledger and session store
	e.GET("/metrics", promHandler(deps.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}

func promConfig(reg *prometheus.Registry) echoprometheus.MiddlewareConfig {
	conf := echoprometheus.MiddlewareConfig{Subsystem: "console"}
	if reg != nil {
		conf.Registerer = reg
	}
	return conf
}

func promHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}

// requestLogger logs each request through zerolog.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
