package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/SscSPs/erp_ledger_app/cmd/docs"
	portssvc "github.com/SscSPs/erp_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/erp_ledger_app/internal/dto"
	"github.com/SscSPs/erp_ledger_app/internal/middleware"
	"github.com/SscSPs/erp_ledger_app/internal/platform/config"
	"github.com/SscSPs/erp_ledger_app/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var validatorsOnce sync.Once

// registerBindingValidators installs the domain tags (drcr, vouchertype, nature) on gin's validator.
func registerBindingValidators() {
	validatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		if err := dto.RegisterValidators(v); err != nil {
			slog.Error("Failed to register binding validators", slog.String("error", err.Error()))
		}
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// analytics may be nil.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	registerBindingValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	r.GET("/metrics", middleware.MetricsHandler())

	setupAPIV1Routes(r, cfg, services, analytics)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	analytics *utils.PosthogClientWrapper,
) {
	auth := middleware.AnonymousMiddleware()
	if cfg.AuthEnabled {
		auth = middleware.AuthMiddleware(cfg.JWTSecret)
	}
	v1 := r.Group("/api/v1", auth)

	registerCompanyRoutes(v1, services.Company)

	company := v1.Group("/companies/:companyID")
	registerGroupRoutes(company, services.Group)
	registerLedgerRoutes(company, services.Ledger)
	registerVoucherRoutes(company, services.Voucher, analytics)
	registerInventoryRoutes(company, services.Inventory)
	registerReportingRoutes(company, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
