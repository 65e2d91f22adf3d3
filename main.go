package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resourcebooking/config"
	"resourcebooking/cron"
	"resourcebooking/database"
	"resourcebooking/database/repository"
	"resourcebooking/handlers"
	"resourcebooking/middleware"
	"resourcebooking/routes"
	"resourcebooking/services/auth"
	"resourcebooking/services/booking"
	"resourcebooking/services/cascade"
	"resourcebooking/services/errorreport"
	"resourcebooking/services/institution"
	"resourcebooking/services/resource"
	"resourcebooking/services/storage"
	"resourcebooking/services/tasks"
	"resourcebooking/services/user"
	"resourcebooking/telemetry"
	"resourcebooking/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/zap"
)

const serviceName = "resourcebooking"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: invalid configuration: %v", err)
	}

	logger, err := utils.NewLogger(cfg.IsProduction(), cfg.LogLevel)
	if err != nil {
		log.Fatalf("main: failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()
	shutdownTracing := telemetry.Setup(ctx, serviceName, logger)

	repos, mongoClient, err := repository.Open(ctx, cfg, database.Connect)
	if err != nil {
		logger.Fatal("main: failed to open repositories", zap.Error(err))
	}
	logger.Info("Repositories ready", zap.String("backend", cfg.StoreBackend))
	checks := map[string]utils.CheckFunc{}
	if mongoClient != nil {
		checks["mongo"] = func(ctx context.Context) error { return mongoClient.Ping(ctx, nil) }
	}

	// Token revocation.
	var revocations auth.RevocationStore = auth.NewMemoryRevocationStore()
	if cfg.RedisEnabled() {
		authClient, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
		if err != nil {
			logger.Fatal("main: failed to connect to redis", zap.Error(err))
		}
		defer authClient.Close()
		checks["redis"] = func(ctx context.Context) error { return authClient.Ping(ctx).Err() }
		revocations = &auth.RedisRevocationStore{Client: authClient}
	} else {
		logger.Warn("REDIS_ADDR not set; revoked tokens are kept in process memory")
	}

	// Image storage.
	var store storage.StorageService = storage.Disabled{}
	if cfg.CloudinaryEnabled() {
		cloudinary, err := storage.NewCloudinaryStorage(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey,
			cfg.CloudinaryAPISecret, cfg.CloudinaryFolder, logger)
		if err != nil {
			logger.Fatal("main: failed to initialize cloudinary storage", zap.Error(err))
		}
		store = cloudinary
	} else {
		logger.Warn("Cloudinary not configured; image endpoints are unavailable")
	}

	// Image clean-up goes through the queue when redis is available, and is
	// skipped entirely without an image host.
	var janitor tasks.ImageJanitor
	if cfg.CloudinaryEnabled() {
		janitor = &tasks.InlineJanitor{Storage: store, Logger: logger}
	}
	var worker *cron.Worker
	if cfg.RedisEnabled() {
		queueOpts := asynq.RedisClientOpt{Addr: cfg.RedisAddr, Password: cfg.RedisPassword, DB: cfg.RedisQueueDB}
		queueClient := asynq.NewClient(queueOpts)
		defer queueClient.Close()
		if cfg.CloudinaryEnabled() {
			janitor = &tasks.QueueJanitor{Client: queueClient, Logger: logger}
		}

		worker = cron.NewWorker(queueOpts, store, logger)
		if err := worker.Start(); err != nil {
			logger.Fatal("main: failed to start background worker", zap.Error(err))
		}
	}

	monitorCtx, stopMonitor := context.WithCancel(ctx)
	defer stopMonitor()
	health := utils.NewHealthMonitor(checks)
	health.Start(monitorCtx, 60*time.Second)

	// services.
	userService := user.NewUserService(repos.Users, logger)
	authService := auth.NewAuthService(userService, revocations, cfg.JWTKey, cfg.JWTIssuer, cfg.JWTAudience,
		time.Duration(cfg.JWTTokenValidityMins)*time.Minute, logger)
	bookingService := booking.NewBookingService(repos.Bookings, logger, cfg.BookingRejectOverlaps)
	errorReportService := errorreport.NewErrorReportService(repos.ErrorReports, repos.Resources, logger)
	resourceService := resource.NewResourceService(repos.Resources)
	institutionService := institution.NewInstitutionService(repos.Institutions)

	coordinator := &cascade.Coordinator{
		Bookings:     bookingService,
		Reports:      errorReportService,
		Resources:    repos.Resources,
		Institutions: repos.Institutions,
		Images:       janitor,
		Logger:       logger,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		AuthService:  authService,
		Health:       health,
		Bookings:     &handlers.BookingHandler{BookingService: bookingService, Logger: logger},
		Resources:    &handlers.ResourceHandler{ResourceService: resourceService, ErrorReportService: errorReportService, Cascade: coordinator, Logger: logger},
		Institutions: &handlers.InstitutionHandler{InstitutionService: institutionService, Cascade: coordinator, Logger: logger},
		ErrorReports: &handlers.ErrorReportHandler{ErrorReportService: errorReportService, Logger: logger},
		Users:        &handlers.UserHandler{UserService: userService, Logger: logger},
		Login:        &handlers.LoginHandler{AuthService: authService, Logger: logger},
		Images:       &handlers.ImageHandler{StorageService: store, Logger: logger},
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxyList()); err != nil {
		logger.Fatal("main: invalid TRUSTED_PROXIES", zap.Error(err))
	}
	router.Use(utils.ErrorHandler(logger))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin, logger))

	routes.RegisterRoutes(router, handlerBundle)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.AppPort,
		Handler:           otelhttp.NewHandler(router, serviceName),
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if worker != nil {
		worker.Shutdown()
	}
	if mongoClient != nil {
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			logger.Warn("main: mongo disconnect failed", zap.Error(err))
		}
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Warn("main: tracer shutdown failed", zap.Error(err))
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
