package handlers

import (
	"github.com/bizbooks/bookkeeping_app/cmd/docs"
	portssvc "github.com/bizbooks/bookkeeping_app/internal/core/ports/services"
	"github.com/bizbooks/bookkeeping_app/internal/middleware"
	"github.com/bizbooks/bookkeeping_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", GetHome)

	// Register public authentication routes
	public := r.Group("/api")
	registerAuthRoutes(public, services.Auth)

	// Setup API routes with Auth Middleware, passing service interfaces
	setupAPIRoutes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific entity route registrations
func setupAPIRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire api group
	api := r.Group("/api", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience))

	// Delegate route registration to specific handlers, passing required services
	registerMeRoute(api, services.Auth)
	registerIncomeRoutes(api, services.Income)
	registerExpenseRoutes(api, services.Expense)
	registerPurchaseRoutes(api, services.Purchase)
	registerSaleRoutes(api, services.Sale)
	registerCharityRoutes(api, services.Charity)
	registerAccountRoutes(api, services.Account)
	registerLoanRoutes(api, services.Loan)
	registerCategoryRoutes(api, services.Category)
	registerDashboardRoutes(api, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
