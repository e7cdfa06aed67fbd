package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mehfil/config"
	"mehfil/cron"
	"mehfil/database"
	"mehfil/database/repository"
	"mehfil/handlers"
	"mehfil/middleware"
	"mehfil/routes"
	"mehfil/services/booking"
	"mehfil/services/catalog"
	"mehfil/services/conversation"
	ai "mehfil/services/intelligence"
	"mehfil/services/notification"
	"mehfil/services/planner"
	"mehfil/services/tasks"
	"mehfil/services/user"
	"mehfil/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func newVendorRepo(logger *zap.Logger) repository.VendorRepository {
	if config.AppConfig.CatalogBackend == "mongo" {
		logger.Info("Using MongoDB vendor catalog")
		return repository.NewMongoVendorRepo(database.DB())
	}
	return repository.NewMemoryVendorRepo()
}

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()
	defer func() { _ = logger.Sync() }()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	database.InitDB()
	cacheClient := utils.GetCacheClient()
	authCache := utils.GetAuthCacheClient()

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	// repositories.
	vendors := newVendorRepo(logger)
	if err := catalog.Bootstrap(rootCtx, vendors); err != nil {
		logger.Fatal("main: failed to load vendor catalog", zap.Error(err))
	}
	bookingRepo := repository.NewMongoBookingRepo(database.DB())
	conversationRepo := repository.NewMongoConversationRepo(database.DB())
	userRepo := repository.NewMongoUserRepository(database.DB())

	images, err := utils.NewImageResolver(config.AppConfig.CloudinaryURL)
	if err != nil {
		logger.Fatal("main: failed to initialize cloudinary", zap.Error(err))
	}

	// mail.
	smtpMailer := notification.NewSMTPMailer(
		config.AppConfig.SMTPHost,
		config.AppConfig.SMTPPort,
		config.AppConfig.EmailUser,
		config.AppConfig.EmailPass,
		config.AppConfig.MailFromName,
		config.AppConfig.AppURL,
		logger,
	)
	dispatcher := &tasks.MailDispatcher{Inline: smtpMailer, Logger: logger}
	var mailQueue *asynq.Client
	if config.AppConfig.MailQueueEnabled {
		mailQueue = asynq.NewClient(cron.MailQueueOpt())
		dispatcher.Queue = mailQueue
		cron.InitMailWorker(rootCtx, smtpMailer)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo:      userRepo,
		Mailer:    dispatcher,
		AuthCache: authCache,
		TokenTTL:  config.AppConfig.JWTTTL,
		Logger:    logger.Named("user"),
	}
	bookingService := &booking.DefaultBookingService{
		Catalog:  vendors,
		Bookings: bookingRepo,
		Users:    userRepo,
		Mailer:   dispatcher,
		Logger:   logger.Named("booking"),
	}
	plannerService := &planner.DefaultPlannerService{Catalog: vendors}
	catalogService := &catalog.DefaultCatalogService{Repo: vendors, Images: images}
	conversationService := &conversation.DefaultConversationService{Repo: conversationRepo}

	model, err := ai.NewGeminiModel(rootCtx, config.AppConfig.GeminiAPIKey, config.AppConfig.GeminiModel)
	if err != nil {
		logger.Fatal("main: failed to initialize Gemini", zap.Error(err))
	}
	chatService := &ai.DefaultChatService{
		Model:       model,
		Planner:     plannerService,
		Bookings:    bookingService,
		Memory:      ai.NewRedisPlanningStore(cacheClient, config.AppConfig.PlanningTTL),
		MaxSteps:    config.AppConfig.ChatMaxSteps,
		MaxDuration: config.AppConfig.ChatMaxDuration,
		Logger:      logger.Named("assistant"),
	}

	// handlers.
	authHandler := handlers.NewAuthHandler(userService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	chatHandler := handlers.NewChatHandler(chatService)
	conversationHandler := handlers.NewConversationHandler(conversationService)
	vendorHandler := handlers.NewVendorHandler(catalogService)

	handlerBundle := &handlers.HandlerBundle{
		Users:     userRepo,
		AuthCache: authCache,

		SignupHandler:         authHandler.Signup,
		LoginHandler:          authHandler.Login,
		LogoutHandler:         authHandler.Logout,
		ForgotPasswordHandler: authHandler.ForgotPassword,
		ResetPasswordHandler:  authHandler.ResetPassword,
		VerifyEmailHandler:    authHandler.VerifyEmail,

		CreateBookingHandler: bookingHandler.CreateBooking,
		ListBookingsHandler:  bookingHandler.ListBookings,

		ChatHandler: chatHandler.Chat,

		AppendMessageHandler:     conversationHandler.AppendMessage,
		ListConversationsHandler: conversationHandler.ListConversations,
		GetConversationHandler:   conversationHandler.GetConversation,
		SaveConversationHandler:  conversationHandler.SaveConversation,

		ListVendorsHandler:    vendorHandler.ListVendors,
		ListVendorsByCategory: vendorHandler.ListByCategory,
		GetVendorHandler:      vendorHandler.GetVendor,

		HealthHandler: handlers.Health,
	}

	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))
	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(rootCtx, 30*time.Second, []*redis.Client{cacheClient, authCache}, database.MongoClient)

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
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stop()
	if mailQueue != nil {
		_ = mailQueue.Close()
	}
	_ = model.Close()
	_ = cacheClient.Close()
	_ = authCache.Close()
	if err := database.Disconnect(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
