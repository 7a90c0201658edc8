package api

import (
	stdhttp "net/http"

	intconfig "evtaxi-admin/internal/config"
	h "evtaxi-admin/internal/http/handlers"
	"evtaxi-admin/internal/http/middleware"
	"evtaxi-admin/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		logging.L().Warn("failed to set trusted proxies", zap.Error(err))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/create-admin", h.CreateAdmin)

		admin := api.Group("", middleware.RequireAdmin([]byte(env.JWTSecret)))

		// Dashboard
		dashboard := admin.Group("/dashboard")
		dashboard.GET("/totals", h.DashboardTotals)
		dashboard.GET("/revenue/:type", h.DashboardRevenue)
		dashboard.GET("/growth/:type", h.DashboardGrowth)
		dashboard.GET("/payment-distribution", h.DashboardPaymentDistribution)

		// Trips
		trips := admin.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/:id", h.GetTripByID)
		trips.GET("/:id/receipt", h.GetTripReceipt)
		trips.PUT("/:id/status", h.UpdateTripStatus)

		// Vehicles
		vehicles := admin.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)
		vehicles.PUT("/:id/status", h.UpdateVehicleStatus)

		// Refund requests
		refunds := admin.Group("/refunds")
		refunds.GET("", h.GetRefunds)
		refunds.PUT("/:id", h.UpdateRefund)

		// Users (riders + vehicle owners)
		users := admin.Group("/users")
		users.GET("", h.GetUsers)
		users.GET("/rider/:id", h.GetRiderByID)
		users.GET("/rider/:id/trips", h.GetRiderTrips)
		users.GET("/driver/:id", h.GetDriverByID)
		users.GET("/driver/:id/vehicles", h.GetDriverVehicles)
		users.GET("/:type/:id", h.GetUserByID)
	}

	return r
}
