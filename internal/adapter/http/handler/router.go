package handler

import (
	"hosting-billing-portal/internal/adapter/http/middleware"
	redisStore "hosting-billing-portal/internal/adapter/storage/redis"
	"hosting-billing-portal/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc           ports.AuthService
	WalletSvc         ports.WalletService
	WithdrawalSvc     ports.WithdrawalService
	PaymentMethodSvc  ports.PaymentMethodService
	TokenSvc          ports.TokenService
	NotificationStore ports.NotificationStore    // nil = notification feed disabled
	RateLimitStore    *redisStore.RateLimitStore // nil = rate limiting disabled
	AuditSvc          ports.AuditService         // nil = audit logging disabled
	HealthCheckers    []ports.HealthChecker
	Logger            zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Swagger documentation
	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	// --- Public routes (no auth) ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/register", rl("auth_register"), authHandler.Register)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
	}

	// --- JWT-authenticated customer routes ---
	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)
	walletHandler := NewWalletHandler(deps.WalletSvc)
	withdrawalHandler := NewWithdrawalHandler(deps.WithdrawalSvc)
	methodHandler := NewPaymentMethodHandler(deps.PaymentMethodSvc)

	account := v1.Group("/account", jwtAuth)
	{
		account.GET("", rl("portal"), walletHandler.GetProfile)
	}

	wallet := v1.Group("/wallet", jwtAuth)
	{
		wallet.GET("/balance", rl("portal"), walletHandler.GetBalance)
		wallet.GET("/limits", rl("portal"), walletHandler.GetLimits)
		wallet.POST("/topup", rl("topup"), walletHandler.Topup)
	}

	withdrawals := v1.Group("/withdrawals", jwtAuth)
	{
		withdrawals.POST("", rl("withdrawals"), withdrawalHandler.Create)
		withdrawals.GET("", rl("portal"), withdrawalHandler.History)
		withdrawals.GET("/:id", rl("portal"), withdrawalHandler.Get)
		withdrawals.POST("/:id/cancel", rl("withdrawals"), withdrawalHandler.Cancel)
	}

	methods := v1.Group("/payment-methods", jwtAuth)
	{
		methods.POST("", rl("portal"), methodHandler.Add)
		methods.GET("", rl("portal"), methodHandler.List)
		methods.DELETE("/:id", rl("portal"), methodHandler.Remove)
	}

	// --- Notification feed (JWT-authenticated) ---
	var notificationHandler *NotificationHandler
	if deps.NotificationStore != nil {
		notificationHandler = NewNotificationHandler(deps.NotificationStore, deps.Logger)
		notifications := v1.Group("/notifications", jwtAuth)
		{
			notifications.GET("", rl("portal"), notificationHandler.ListOwn)
		}
	}

	// --- Operator review routes ---
	adminHandler := NewAdminHandler(deps.WithdrawalSvc)
	admin := v1.Group("/admin", jwtAuth, middleware.RequireOperator())
	{
		admin.GET("/withdrawals", rl("portal"), adminHandler.ListWithdrawals)
		admin.POST("/withdrawals/:id/approve", rl("portal"), adminHandler.Approve)
		admin.POST("/withdrawals/:id/reject", rl("portal"), adminHandler.Reject)
		if notificationHandler != nil {
			admin.GET("/notifications", rl("portal"), notificationHandler.ListOperator)
		}
	}

	return r
}
