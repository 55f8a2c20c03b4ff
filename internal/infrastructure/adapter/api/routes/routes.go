package routes

import (
	coreport "github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/expense-tracker/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Auth    *handler.AuthHandler
	Expense *handler.ExpenseHandler
	Health  *handler.HealthHandler
}

// SetupRoutes configures all the routes for the API under basePath
func SetupRoutes(
	router *gin.Engine,
	basePath string,
	handlers Handlers,
	authUseCase usecase.AuthUseCase,
	logger coreport.Logger,
) {
	api := router.Group(basePath)
	requireAuth := middleware.RequireAuth(authUseCase, logger)

	api.GET("/health", handlers.Health.Health)

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/register", handlers.Auth.Register)
		authRoutes.POST("/login", handlers.Auth.Login)
		authRoutes.GET("/me", requireAuth, handlers.Auth.Me)
	}

	expenseRoutes := api.Group("/expenses", requireAuth)
	{
		expenseRoutes.GET("", handlers.Expense.List)
		expenseRoutes.GET("/summary", handlers.Expense.Summary)
		expenseRoutes.POST("", handlers.Expense.Create)
		expenseRoutes.PUT("/:id", handlers.Expense.Update)
		expenseRoutes.DELETE("/:id", handlers.Expense.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	// request id first so every later log line carries it
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
