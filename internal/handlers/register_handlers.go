package handlers

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/Sdjishan552/fin/internal/core/ports/services"
	"github.com/Sdjishan552/fin/internal/middleware"
	"github.com/Sdjishan552/fin/internal/platform/config"
	"github.com/Sdjishan552/fin/internal/utils/dateutil"
)

// RegisterValidations installs the custom binding rules. Must run once before
// the engine serves requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("datekey", func(fl validator.FieldLevel) bool {
		return dateutil.IsValid(fl.Field().String())
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using
// interfaces.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) error {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", middleware.ElevationHeader},
	}))

	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	registerHomeRoutes(r)

	// The PIN endpoints share one in-memory limiter keyed by client IP.
	rate, err := limiter.NewRateFromFormatted(cfg.PINRateLimit)
	if err != nil {
		return err
	}
	rateLimit := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	registerElevationRoutes(r, services.Elevation, rateLimit)

	setupAPIV1Routes(r, services, rateLimit)
	return nil
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific
// entity route registrations.
func setupAPIV1Routes(r *gin.Engine, services *portssvc.ServiceContainer, rateLimit gin.HandlerFunc) {
	v1 := r.Group("/api/v1")

	registerLedgerRoutes(v1, services.Ledger, services.Edit, services.Elevation)
	registerAdjustmentRoutes(v1, services.Adjustment, services.Elevation)
	registerReconcileRoutes(v1, services.Reconcile)
	registerReportRoutes(v1, services.Reporting)
	registerAdminRoutes(v1, services.Admin, rateLimit)
}
