package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"hotel-ledger/config"
	"hotel-ledger/controllers"
	"hotel-ledger/middleware"
	"hotel-ledger/utils"
)

// Controllers bundles every handler group the router mounts.
type Controllers struct {
	Auth          *controllers.AuthController
	Hotels        *controllers.HotelController
	Rooms         *controllers.RoomController
	Stays         *controllers.StayController
	Payments      *controllers.PaymentController
	Expenses      *controllers.ExpenseController
	Transfers     *controllers.TransferController
	Reports       *controllers.ReportController
	Closings      *controllers.MonthClosingController
	Users         *controllers.UserController
	CustomMethods *controllers.CustomMethodController
}

// SetupRouter wires middleware and the full API surface.
func SetupRouter(settings *config.Settings, tokens *utils.TokenManager, logger *zap.Logger, ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.Metrics())

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(settings.CORSOrigins) == 1 && settings.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowCredentials = false
	} else {
		corsConfig.AllowOrigins = settings.CORSOrigins
	}
	r.Use(cors.New(corsConfig))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)
		auth.GET("/me", middleware.Auth(tokens), ctl.Auth.Me)
	}

	protected := api.Group("")
	protected.Use(middleware.Auth(tokens))
	{
		protected.GET("/hotels/me", ctl.Hotels.Get)
		protected.PATCH("/hotels/me", ctl.Hotels.Update)

		protected.GET("/rooms", ctl.Rooms.List)
		protected.POST("/rooms", ctl.Rooms.Create)
		protected.PATCH("/rooms/:id", ctl.Rooms.Update)
		protected.DELETE("/rooms/:id", ctl.Rooms.Delete)

		protected.GET("/stays", ctl.Stays.List)
		protected.POST("/stays", ctl.Stays.Create)
		protected.GET("/stays/:id", ctl.Stays.Get)
		protected.PATCH("/stays/:id", ctl.Stays.Update)
		protected.DELETE("/stays/:id", ctl.Stays.Delete)

		protected.GET("/payments", ctl.Payments.List)
		protected.POST("/payments", ctl.Payments.Create)
		protected.PATCH("/payments/:id", ctl.Payments.Update)
		protected.DELETE("/payments/:id", ctl.Payments.Delete)

		protected.GET("/expenses", ctl.Expenses.List)
		protected.POST("/expenses", ctl.Expenses.Create)
		protected.PATCH("/expenses/:id", ctl.Expenses.Update)
		protected.DELETE("/expenses/:id", ctl.Expenses.Delete)

		protected.GET("/transfers", ctl.Transfers.List)
		protected.POST("/transfers", ctl.Transfers.Create)
		protected.PATCH("/transfers/:id", ctl.Transfers.Update)
		protected.DELETE("/transfers/:id", ctl.Transfers.Delete)

		protected.GET("/registers/balances", ctl.Reports.Balances)

		protected.GET("/month-closings", ctl.Closings.List)
		protected.POST("/month-closings/close-previous", ctl.Closings.ClosePrevious)

		protected.GET("/custom-payment-methods", ctl.CustomMethods.List)

		admin := protected.Group("")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/reports", ctl.Reports.Period)

			admin.DELETE("/month-closings/:month", ctl.Closings.Reopen)

			admin.GET("/users", ctl.Users.List)
			admin.POST("/users", ctl.Users.Create)
			admin.PATCH("/users/:id/role", ctl.Users.UpdateRole)
			admin.DELETE("/users/:id", ctl.Users.Delete)

			admin.POST("/custom-payment-methods", ctl.CustomMethods.Create)
			admin.DELETE("/custom-payment-methods/:id", ctl.CustomMethods.Delete)
		}
	}

	return r
}
