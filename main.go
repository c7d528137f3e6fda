package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"drdhobi/config"
	"drdhobi/cron"
	"drdhobi/database"
	tokenRepoPkg "drdhobi/database/repository/admintoken"
	bookingRepoPkg "drdhobi/database/repository/booking"
	catalogRepoPkg "drdhobi/database/repository/catalog"
	chatRepoPkg "drdhobi/database/repository/chat"
	inboxRepoPkg "drdhobi/database/repository/inbox"
	notificationRepoPkg "drdhobi/database/repository/notification"
	quoteRepoPkg "drdhobi/database/repository/quote"
	settingsRepoPkg "drdhobi/database/repository/settings"
	userRepoPkg "drdhobi/database/repository/user"
	"drdhobi/handlers"
	"drdhobi/routes"
	"drdhobi/services/booking"
	"drdhobi/services/catalog"
	"drdhobi/services/chat"
	"drdhobi/services/device"
	"drdhobi/services/inbox"
	"drdhobi/services/notification"
	"drdhobi/services/pricing"
	"drdhobi/services/quote"
	"drdhobi/services/settings"
	"drdhobi/services/tasks"
	"drdhobi/services/user"
	"drdhobi/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()
	utils.FirebaseInit()

	cloudinaryStorageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, photo uploads disabled: %v", err)
		cloudinaryStorageService = nil
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	quoteRepo := quoteRepoPkg.NewMongoQuoteRepo()
	chatRepo := chatRepoPkg.NewMongoChatRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	settingsRepo := settingsRepoPkg.NewMongoSettingsRepo()
	inboxRepo := inboxRepoPkg.NewMongoInboxRepo()
	tokenRepo := tokenRepoPkg.NewMongoTokenRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	notificationService := &notification.DefaultNotificationService{
		Repo:  notificationRepo,
		Users: userRepo,
	}

	pushQueue := tasks.NewAsynqEnqueuer()
	defer pushQueue.Close()

	bookingService := &booking.DefaultBookingService{
		Repo:     bookingRepo,
		Notifier: notificationService,
		Queue:    pushQueue,
	}

	pricingService := &pricing.DefaultPricingService{
		Repo:  settingsRepo,
		Cache: utils.GetCacheClient(),
	}

	quoteService := &quote.DefaultQuoteService{
		Repo:    quoteRepo,
		Pricing: pricingService,
	}

	chatService := &chat.DefaultChatService{
		Repo:     chatRepo,
		Notifier: notificationService,
	}

	catalogService := &catalog.DefaultCatalogService{Repo: catalogRepo}
	settingsService := &settings.DefaultSettingsService{Repo: settingsRepo}
	inboxService := &inbox.DefaultInboxService{
		Repo:     inboxRepo,
		Notifier: notificationService,
	}
	deviceService := &device.DefaultDeviceService{Repo: tokenRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Auth: &handlers.AuthHandler{
			UserService: userService,
			StorageSvc:  cloudinaryStorageService,
		},
		Booking:      &handlers.BookingHandler{BookingService: bookingService},
		Pricing:      &handlers.PricingHandler{PricingService: pricingService},
		Quote:        &handlers.QuoteHandler{QuoteService: quoteService},
		Chat:         &handlers.ChatHandler{ChatService: chatService, UserService: userService},
		Notification: &handlers.NotificationHandler{NotificationService: notificationService},
		Catalog:      &handlers.CatalogHandler{CatalogService: catalogService},
		Settings:     &handlers.SettingsHandler{SettingsService: settingsService},
		Inbox:        &handlers.InboxHandler{InboxService: inboxService},
		Device:       &handlers.DeviceHandler{DeviceService: deviceService},
		Admin:        &handlers.AdminHandler{UserService: userService},
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the booking push worker.
	cron.InitPushWorker(tokenRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
