package routes

import (
	"net/http"
	"time"

	"drdhobi/handlers"
	"drdhobi/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("/profile", hb.Auth.GetProfileHandler)
		api.PUT("/profile", hb.Auth.UpdateProfileHandler)
		api.POST("/profile/photo", hb.Auth.UploadPhotoHandler)
	}
}

// RegisterBookingRoutes registers customer booking endpoints. Submission is
// public; a valid token attaches the booking to the account.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.POST("", middleware.OptionalAuthMiddleware(hb.UserRepo), hb.Booking.CreateBookingHandler)
		api.GET("/mine", middleware.JWTAuthUserMiddleware(hb.UserRepo), hb.Booking.GetMyBookingsHandler)
	}
}

// RegisterQuoteRoutes registers the instant-quote submission endpoint.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		api.POST("", middleware.OptionalAuthMiddleware(hb.UserRepo), hb.Quote.CreateQuoteHandler)
	}
}

// RegisterPublicRoutes registers the unauthenticated site content endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/pricing", hb.Pricing.GetPricingHandler)
		api.GET("/pricing/rates", hb.Pricing.GetRatesHandler)
		api.GET("/services", hb.Catalog.GetServicesHandler)
		api.GET("/settings", hb.Settings.GetSettingsHandler)
		api.POST("/messages", hb.Inbox.SubmitMessageHandler)
	}
}

// RegisterChatRoutes registers the support chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.Chat.GetChatHandler)
		api.POST("", hb.Chat.ChatActionHandler)
	}
}

// RegisterNotificationRoutes registers the in-app notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.Notification.ListNotificationsHandler)
		api.POST("", hb.Notification.NotificationActionHandler)
	}
}

// RegisterAdminRoutes registers the admin panel endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo), middleware.RequireAdmin())

		api.GET("/bookings", hb.Booking.GetAllBookingsHandler)
		api.PATCH("/bookings/:id/status", hb.Booking.UpdateBookingStatusHandler)
		api.DELETE("/bookings/:id", hb.Booking.DeleteBookingHandler)

		api.GET("/quotes", hb.Quote.GetAllQuotesHandler)
		api.PATCH("/quotes/:id/status", hb.Quote.UpdateQuoteStatusHandler)
		api.DELETE("/quotes/:id", hb.Quote.DeleteQuoteHandler)

		api.POST("/pricing", hb.Pricing.SetPricingHandler)

		api.POST("/services", hb.Catalog.SaveServiceHandler)
		api.DELETE("/services", hb.Catalog.DeleteServiceHandler)

		api.POST("/settings", hb.Settings.SetSettingsHandler)

		api.GET("/messages", hb.Inbox.GetMessagesHandler)
		api.DELETE("/messages/:id", hb.Inbox.DeleteMessageHandler)

		api.GET("/users", hb.Admin.GetAllUsersHandler)
		api.PATCH("/users/:id/role", hb.Admin.SetRoleHandler)
		api.DELETE("/users/:id", hb.Admin.DeleteUserHandler)

		api.POST("/device-tokens", hb.Device.RegisterTokenHandler)
		api.DELETE("/device-tokens", hb.Device.UnregisterTokenHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Dr Dhobi"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterQuoteRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
