package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	assetapp "github.com/assettrack/backend/internal/application/asset"
	assignmentapp "github.com/assettrack/backend/internal/application/assignment"
	dashboardapp "github.com/assettrack/backend/internal/application/dashboard"
	employeeapp "github.com/assettrack/backend/internal/application/employee"
	eventapp "github.com/assettrack/backend/internal/application/event"
	identityapp "github.com/assettrack/backend/internal/application/identity"
	notificationapp "github.com/assettrack/backend/internal/application/notification"
	"github.com/assettrack/backend/internal/infrastructure/auth"
	"github.com/assettrack/backend/internal/infrastructure/cache"
	"github.com/assettrack/backend/internal/infrastructure/config"
	"github.com/assettrack/backend/internal/infrastructure/event"
	"github.com/assettrack/backend/internal/infrastructure/logger"
	"github.com/assettrack/backend/internal/infrastructure/persistence"
	"github.com/assettrack/backend/internal/infrastructure/scheduler"
	"github.com/assettrack/backend/internal/infrastructure/storage"
	"github.com/assettrack/backend/internal/infrastructure/telemetry"
	"github.com/assettrack/backend/internal/interfaces/http/handler"
	"github.com/assettrack/backend/internal/interfaces/http/middleware"
	"github.com/assettrack/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "github.com/assettrack/backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Asset Tracker API
//	@version		1.0
//	@description	Asset, employee and assignment lifecycle service

//	@contact.name	API Support
//	@contact.url	https://github.com/assettrack/backend

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

// profileImagePath skips the global body limit; the upload handler enforces its own
const profileImagePath = "/api/v1/users/profile-image"

func main() {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	baseLog, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: cfg.Log.TimeFormat,
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(baseLog)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Telemetry providers are no-ops when disabled
	tracerProvider, err := telemetry.NewTracerProvider(ctx, cfg.Telemetry, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize tracer provider", zap.Error(err))
	}
	meterProvider, err := telemetry.NewMeterProvider(ctx, cfg.Telemetry, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize meter provider", zap.Error(err))
	}
	loggerProvider, err := telemetry.NewLoggerProvider(ctx, cfg.Telemetry, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to initialize logger provider", zap.Error(err))
	}
	profiler, err := telemetry.NewProfiler(cfg.Telemetry, baseLog)
	if err != nil {
		baseLog.Fatal("Failed to start profiler", zap.Error(err))
	}
	if profiler.IsEnabled() && cfg.Telemetry.SpanProfiles {
		tracerProvider.EnableSpanProfiles()
	}

	log := loggerProvider.Bridge(baseLog, cfg.Telemetry.ServiceName, logger.ParseLevel(cfg.Log.Level))

	log.Info("Starting asset tracker",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.Bool("telemetry", tracerProvider.IsEnabled()),
	)

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level),
		logger.WithSlowThreshold(cfg.Telemetry.DBSlowQueryThresh))
	db, err := persistence.Open(&cfg.Database, persistence.WithGormLogger(gormLog))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	backend, err := cache.OpenBackend(ctx, cfg.Redis, cache.WithLogger(log))
	if err != nil {
		log.Fatal("Failed to open cache backend", zap.Error(err))
	}
	defer func() {
		if err := backend.Close(); err != nil {
			log.Error("Error closing cache backend", zap.Error(err))
		}
	}()

	objects := openObjectStorage(ctx, cfg, log)

	// Repositories
	userRepo := persistence.NewGormUserRepository(db.DB)
	assetRepo := persistence.NewGormAssetRepository(db.DB)
	employeeRepo := persistence.NewGormEmployeeRepository(db.DB)
	assignmentRepo := persistence.NewGormAssignmentRepository(db.DB)
	auditRepo := persistence.NewGormAuditLogRepository(db.DB)
	sequences := persistence.NewGormSequenceRepository(db.DB)

	// Application services
	jwtService := auth.NewJWTService(cfg.JWT)
	blacklist := auth.NewTokenBlacklist(backend.KeySet(cache.PrefixRevokedTokens))
	summaries := assignmentapp.NewSummaryLoader(assetRepo, employeeRepo, userRepo)

	authService := identityapp.NewAuthService(userRepo, jwtService, blacklist, log)
	profileService := identityapp.NewProfileService(userRepo, objects, cfg.Storage.MaxImageSize, log)
	assetService := assetapp.NewAssetService(assetRepo, sequences, log)
	employeeService := employeeapp.NewEmployeeService(employeeRepo, assignmentRepo, sequences,
		persistence.NewGormEmployeeTransactionScope(db.DB), log)
	assignmentService := assignmentapp.NewAssignmentService(assignmentRepo, summaries,
		persistence.NewGormAssignmentTransactionScope(db.DB), log)
	dashboardService := dashboardapp.NewDashboardService(assetRepo, employeeRepo, assignmentRepo, summaries, log)
	notificationService := notificationapp.NewNotificationService(assignmentRepo, summaries, log)
	auditService := eventapp.NewAuditService(auditRepo)

	ledgerMetrics, err := telemetry.NewLedgerMetrics(meterProvider.Meter(telemetry.MeterName))
	if err != nil {
		log.Fatal("Failed to register ledger metrics", zap.Error(err))
	}

	// Event bus: audit rows are written once per event even if a publish is retried
	serializer := event.NewSerializer()
	event.RegisterDomainEvents(serializer)
	idempotency := cache.NewIdempotencyStore(backend.KeySet(cache.PrefixEventIdempotency))

	eventBus := event.NewBus(log)
	auditHandler := eventapp.NewAuditLogHandler(auditRepo, serializer, log)
	eventBus.Subscribe(event.NewIdempotentHandler(auditHandler, idempotency, log))
	eventBus.Subscribe(eventapp.NewLedgerMetricsHandler(ledgerMetrics))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}

	authService.SetEventPublisher(eventBus)
	assetService.SetEventPublisher(eventBus)
	employeeService.SetEventPublisher(eventBus)
	assignmentService.SetEventPublisher(eventBus)

	// Prometheus registry shared by HTTP and lifecycle collectors
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.SQL(), "assettrack"),
	)
	httpMetrics, err := middleware.NewHTTPMetrics(registry)
	if err != nil {
		log.Fatal("Failed to register HTTP metrics", zap.Error(err))
	}

	var collector *scheduler.LifecycleCollector
	if cfg.Scheduler.Enabled {
		promSink, err := scheduler.NewPrometheusSink(registry)
		if err != nil {
			log.Fatal("Failed to register lifecycle gauges", zap.Error(err))
		}
		collector, err = scheduler.NewLifecycleCollector(cfg.Scheduler,
			scheduler.NewRepositorySource(assetRepo, employeeRepo, assignmentRepo),
			log, promSink, scheduler.NewOTelSink(ledgerMetrics))
		if err != nil {
			log.Fatal("Failed to create lifecycle collector", zap.Error(err))
		}
		if err := collector.Start(ctx); err != nil {
			log.Fatal("Failed to start lifecycle collector", zap.Error(err))
		}
		log.Info("Lifecycle collector started", zap.String("spec", cfg.Scheduler.LifecycleCronSpec))
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if err := middleware.SetupValidator(); err != nil {
		log.Fatal("Failed to register validators", zap.Error(err))
	}

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	// Order matters: the request ID and logger must exist before anything logs,
	// and the span must be open before the metrics and profiling labels.
	engine.Use(middleware.RequestID(log))
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Tracing(cfg.Telemetry.ServiceName))
	engine.Use(middleware.SpanAttributes())
	engine.Use(httpMetrics.Middleware())
	engine.Use(middleware.Profiling(profiler.IsEnabled()))
	engine.Use(middleware.Secure())
	engine.Use(middleware.CORS(cfg.HTTP))
	engine.Use(middleware.BodyLimit(cfg.HTTP.MaxBodySize, profileImagePath))

	if cfg.HTTP.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
		go limiter.Run(ctx)
		engine.Use(middleware.RateLimit(limiter))
		log.Info("Rate limiting enabled",
			zap.Int("requests", cfg.HTTP.RateLimitRequests),
			zap.Duration("window", cfg.HTTP.RateLimitWindow),
		)
	}

	jwtAuth := middleware.JWTAuth(middleware.JWTMiddlewareConfig{
		JWTService:  jwtService,
		Revocations: authService,
		Logger:      log,
	})
	routeMW := handler.RouteMiddleware{Authenticate: jwtAuth}
	if cfg.HTTP.AuthRateLimitEnabled {
		authLimiter := middleware.NewRateLimiter(cfg.HTTP.AuthRateLimitRequests, cfg.HTTP.AuthRateLimitWindow)
		go authLimiter.Run(ctx)
		routeMW.AuthRateLimit = middleware.RateLimit(authLimiter)
	}

	healthChecks := []handler.HealthCheck{{
		Name:     "database",
		Required: true,
		Ping:     db.Ping,
	}}
	if client := backend.Client(); client != nil {
		healthChecks = append(healthChecks, handler.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	}
	engine.GET("/health", handler.NewHealthHandler(healthChecks...).Health)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})))
	engine.GET("/swagger/*any",
		middleware.SwaggerProtection(cfg.Swagger, jwtAuth),
		ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers := handler.Handlers{
		Auth:       handler.NewAuthHandler(authService),
		User:       handler.NewUserHandler(profileService),
		Asset:      handler.NewAssetHandler(assetService),
		Employee:   handler.NewEmployeeHandler(employeeService),
		Assignment: handler.NewAssignmentHandler(assignmentService, auditService),
		Dashboard:  handler.NewDashboardHandler(dashboardService, notificationService),
	}
	r := router.NewRouter(engine, router.WithAPIVersion("v1"))
	handlers.RegisterRoutes(r, routeMW)
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if collector != nil {
		if err := collector.Stop(shutdownCtx); err != nil {
			log.Error("Error stopping lifecycle collector", zap.Error(err))
		}
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if err := profiler.Stop(); err != nil {
		log.Error("Error stopping profiler", zap.Error(err))
	}
	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down tracer provider", zap.Error(err))
	}
	if err := meterProvider.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down meter provider", zap.Error(err))
	}
	if err := loggerProvider.Shutdown(shutdownCtx); err != nil {
		baseLog.Error("Error shutting down logger provider", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// openObjectStorage returns S3 storage when configured and an in-memory store otherwise
func openObjectStorage(ctx context.Context, cfg *config.Config, log *zap.Logger) identityapp.ObjectStorage {
	if !cfg.Storage.Enabled {
		log.Warn("Object storage disabled, profile images are kept in memory")
		return storage.NewMemoryObjectStorage()
	}
	s3, err := storage.NewS3ObjectStorage(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to initialize object storage", zap.Error(err))
	}
	if err := s3.EnsureBucket(ctx); err != nil {
		log.Fatal("Failed to ensure storage bucket", zap.Error(err))
	}
	log.Info("Object storage ready", zap.String("bucket", s3.Bucket()))
	return s3
}
