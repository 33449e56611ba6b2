// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/burim/garant-backend/internal/config"
	"github.com/burim/garant-backend/internal/handlers"
	"github.com/burim/garant-backend/internal/middleware"
	"github.com/burim/garant-backend/internal/repository"
	"github.com/burim/garant-backend/internal/services"
	"github.com/burim/garant-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	dealRepo := repository.NewDealRepository(db)

	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	authService := services.NewAuthService(userRepo, cfg)
	productService := services.NewProductService(productRepo)
	dealService := services.NewDealService(dealRepo, productRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, storageService)
	dealHandler := handlers.NewDealHandler(dealService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	rateLimits := middleware.NewRateLimits(cfg.RateLimit)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(rateLimits.General)
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(rateLimits.Auth)
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/check-email", authHandler.CheckEmail)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.List)
			products.GET("/:id", productHandler.Get)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", productHandler.Create)
				protected.PATCH("/:id", productHandler.Update)
				protected.DELETE("/:id", productHandler.Delete)
				protected.POST("/upload-attachments", rateLimits.Upload, productHandler.UploadAttachments)
			}
		}

		// Deal routes
		deals := v1.Group("/deals")
		deals.Use(middleware.AuthRequired())
		{
			deals.POST("", dealHandler.Create)
			deals.GET("", dealHandler.List)
			deals.GET("/sells", dealHandler.ListSells)
			deals.GET("/purchases", dealHandler.ListPurchases)
			deals.GET("/:id", dealHandler.Get)

			deals.POST("/:id/pay", dealHandler.Pay)
			deals.POST("/:id/cancel", dealHandler.Cancel)
			deals.POST("/:id/supply", dealHandler.Supply)
			deals.POST("/:id/submit", dealHandler.Submit)
			deals.POST("/:id/arbitration", dealHandler.Arbitration)
		}
	}

	return r
}
