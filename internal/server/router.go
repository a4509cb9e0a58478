package server

import (
	"context"
	"net/http"
	"time"

	"fieldbooking/internal/config"
	"fieldbooking/internal/domain"
	"fieldbooking/internal/middleware"
	"fieldbooking/internal/modules/auth"
	"fieldbooking/internal/modules/booking"
	"fieldbooking/internal/modules/catalog"
	"fieldbooking/internal/modules/inventory"
	jwtsvc "fieldbooking/internal/pkg/jwt"
	"fieldbooking/internal/pkg/response"
	"fieldbooking/internal/pkg/validator"
	"fieldbooking/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Deps are the runtime collaborators NewRouter wires together.
type Deps struct {
	DB    *gorm.DB
	Redis *redis.Client
	JWT   *jwtsvc.Service
}

func NewRouter(cfg *config.Config, deps Deps) *gin.Engine {
	validator.RegisterGin()

	userRepo := repository.NewUserRepository(deps.DB)
	slotRepo := repository.NewTimeSlotRepository(deps.DB)
	bookingRepo := repository.NewBookingRepository(deps.DB)
	inventoryRepo := repository.NewInventoryRepository(deps.DB)

	authHandler := auth.NewHandler(auth.NewService(userRepo, deps.JWT))
	catalogHandler := catalog.NewHandler(catalog.NewService(slotRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, slotRepo, cfg.PhoneRegion))
	inventoryHandler := inventory.NewHandler(inventory.NewService(inventoryRepo))

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorLogger())
	r.Use(middleware.CORS())

	r.GET("/health", healthHandler(deps.DB))

	// public
	catalogHandler.RegisterRoutes(r)
	limited := r.Group("/", middleware.RateLimit(cfg.RateLimitConfig, deps.Redis))
	{
		authHandler.RegisterPublicRoutes(limited)
		bookingHandler.RegisterPublicRoutes(limited)
	}

	requireAuth := middleware.JWTAuth(deps.JWT, userRepo)

	// any authenticated staff member
	session := r.Group("/", requireAuth)
	{
		authHandler.RegisterProtectedRoutes(session)
	}

	admin := r.Group("/admin", requireAuth, middleware.StaffOnly())
	{
		bookingHandler.RegisterAdminRoutes(admin)
		inventoryHandler.RegisterAdminRoutes(admin, middleware.RequireRoles(domain.InventoryWriterRoles...))
	}

	return r
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			response.Error(c, http.StatusServiceUnavailable, "DB_UNAVAILABLE", "Database unavailable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	}
}
