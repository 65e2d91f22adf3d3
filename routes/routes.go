package routes

import (
	"net/http"
	"time"

	"resourcebooking/handlers"
	"resourcebooking/middleware"
	"resourcebooking/models"
	"resourcebooking/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterLoginRoutes registers token issue and revocation.
func RegisterLoginRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/login")
	{
		api.POST("", hb.Login.AuthenticateHandler)
		api.POST("/logout", middleware.JWTAuthMiddleware(hb.AuthService, false), hb.Login.LogoutHandler)
	}
}

// RegisterUserRoutes registers user endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		// Registration is public; an admin token lets the caller pick the role.
		api.POST("", middleware.JWTAuthMiddleware(hb.AuthService, true), hb.Users.RegisterUserHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.AuthService, false))
		protected.GET("/all", hb.Users.ListUsersHandler)
		protected.GET("/:id", hb.Users.GetUserByIDHandler)
		protected.PUT("/:id", hb.Users.UpdateUserHandler)
		protected.DELETE("/:id", hb.Users.DeleteUserHandler)
	}
}

// RegisterInstitutionRoutes registers institution endpoints.
func RegisterInstitutionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/institutions")
	{
		api.GET("/all", hb.Institutions.ListInstitutionsHandler)
		api.GET("/:id", hb.Institutions.GetInstitutionHandler)

		admin := api.Group("")
		admin.Use(middleware.JWTAuthMiddleware(hb.AuthService, false), middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Institutions.CreateInstitutionHandler)
		admin.PUT("/:id", hb.Institutions.UpdateInstitutionHandler)
	}
}

// RegisterResourceRoutes registers resource endpoints.
func RegisterResourceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/resources")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService, false))
		api.GET("/all", hb.Resources.ListResourcesHandler)
		api.GET("/:id", hb.Resources.GetResourceHandler)
		api.GET("/:id/health", hb.Resources.ResourceHealthHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		admin.POST("", hb.Resources.CreateResourceHandler)
		admin.PUT("/:id", hb.Resources.UpdateResourceHandler)
		admin.DELETE("/:id", hb.Resources.DeleteResourceHandler)
	}
}

// RegisterBookingRoutes registers booking endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService, false))
		api.GET("/all", hb.Bookings.ListUserBookingsHandler)
		api.GET("/:id", hb.Bookings.GetBookingHandler)
		api.POST("/statistic", middleware.RequireRole(models.RoleAdmin), hb.Bookings.StatisticHandler)
		api.POST("/pending", hb.Bookings.PendingHandler)
		api.POST("/resourcebookings", hb.Bookings.ResourceBookingsHandler)
		api.POST("", hb.Bookings.CreateBookingHandler)
		api.PUT("/:id", hb.Bookings.UpdateBookingHandler)
		api.DELETE("/:id", hb.Bookings.DeleteBookingHandler)
	}
}

// RegisterErrorReportRoutes registers error report endpoints.
func RegisterErrorReportRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/error-reports")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService, false))
		api.GET("/all", hb.ErrorReports.ListErrorReportsHandler)
		api.GET("/active", hb.ErrorReports.ActiveErrorReportsHandler)
		api.GET("/:id", hb.ErrorReports.GetErrorReportHandler)
		api.POST("", hb.ErrorReports.CreateErrorReportHandler)
		api.PUT("/:id", hb.ErrorReports.UpdateErrorReportHandler)
		api.DELETE("/:id", middleware.RequireRole(models.RoleAdmin), hb.ErrorReports.DeleteErrorReportHandler)
	}
}

// RegisterImageRoutes registers image upload endpoints.
func RegisterImageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/images")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AuthService, false), middleware.RequireRole(models.RoleAdmin))
		api.POST("", hb.Images.UploadImageHandler)
		api.DELETE("", hb.Images.DeleteImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint reporting the
// latest dependency snapshot.
func RegisterHealthRoute(r *gin.Engine, monitor *utils.HealthMonitor) {
	r.GET("/health", func(c *gin.Context) {
		if monitor == nil {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
			return
		}
		status := monitor.Status()
		if !status.Healthy {
			c.JSON(http.StatusServiceUnavailable, status)
			return
		}
		c.JSON(http.StatusOK, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	RegisterHealthRoute(r, hb.Health)
	RegisterLoginRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterInstitutionRoutes(r, hb)
	RegisterResourceRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterErrorReportRoutes(r, hb)
	RegisterImageRoutes(r, hb)
}
