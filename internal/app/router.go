package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"cab/internal/handler"
	"cab/internal/logger"
	"cab/internal/middleware"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler     *handler.AuthHandler
	CustomerHandler *handler.CustomerHandler
	DriverHandler   *handler.DriverHandler
	CabHandler      *handler.CabHandler
	BookingHandler  *handler.BookingHandler
	AdminHandler    *handler.AdminHandler
	RedisClient     *redis.Client
	NewRelicApp     *newrelic.Application
	Logger          logger.ILogger
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(deps.Logger))
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	if deps.RedisClient != nil {
		router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes.
	v1 := router.Group("/v1")
	{
		// Auth routes.
		auth := v1.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/logout", deps.AuthHandler.Logout)
		}

		// Customer routes.
		customers := v1.Group("/customers")
		{
			customers.POST("/register", deps.CustomerHandler.Register)
			customers.PUT("", deps.CustomerHandler.Update)
			customers.GET("", deps.CustomerHandler.GetAll)
			customers.GET("/:id", deps.CustomerHandler.GetByID)
			customers.DELETE("/:id", deps.CustomerHandler.Delete)
		}

		// Driver routes.
		drivers := v1.Group("/drivers")
		{
			drivers.POST("/register", deps.DriverHandler.Register)
			drivers.PUT("", deps.DriverHandler.Update)
			drivers.GET("/best", deps.DriverHandler.GetBest)
			drivers.GET("/:id", deps.DriverHandler.GetByID)
			drivers.DELETE("/:id", deps.DriverHandler.Delete)
		}

		// Cab routes.
		cabs := v1.Group("/cabs")
		{
			cabs.POST("/register", deps.CabHandler.Register)
			cabs.PUT("", deps.CabHandler.Update)
			cabs.GET("", deps.CabHandler.GetOfType)
			cabs.GET("/count", deps.CabHandler.CountOfType)
			cabs.GET("/search", deps.BookingHandler.Search)
			cabs.DELETE("/:id", deps.CabHandler.Delete)
		}

		// Trip routes.
		trips := v1.Group("/trips")
		{
			trips.POST("", deps.BookingHandler.Book)
			trips.POST("/:id/assign", deps.BookingHandler.AssignDriver)
			trips.POST("/:id/complete", deps.BookingHandler.Complete)
			trips.POST("/:id/cancel", deps.BookingHandler.Cancel)
		}

		// Admin routes.
		admin := v1.Group("/admin")
		{
			admin.POST("/register", deps.AdminHandler.Register)
			admin.PUT("", deps.AdminHandler.Update)
			admin.DELETE("/:id", deps.AdminHandler.Delete)
			admin.GET("/trips", deps.AdminHandler.GetAllTrips)
			admin.GET("/trips/cabwise", deps.AdminHandler.GetTripsCabwise)
			admin.GET("/trips/customerwise", deps.AdminHandler.GetTripsCustomerwise)
			admin.GET("/trips/days", deps.AdminHandler.GetTripsForDays)
		}
	}

	return router
}
