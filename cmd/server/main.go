package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RozoAI/rozo-app-backend-sub000/internal/config"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/cache"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/datasources/postgres"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/jobs"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/notify"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/processor"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/infrastructure/repositories"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/handlers"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/interfaces/http/middleware"
	"github.com/RozoAI/rozo-app-backend-sub000/internal/usecases"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/jwt"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/logger"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/metrics"
	"github.com/RozoAI/rozo-app-backend-sub000/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = postgres.Open
	runServer  = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB   = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := loadCfg()

	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "logger initialized", zap.String("env", cfg.Server.Env))

	if err := initRedis(cfg.Redis); err != nil {
		logger.Error(context.Background(), "failed to initialize redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := openDB(cfg.Database.URL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		logger.Warn(context.Background(), "database not available, endpoints will return errors", zap.Error(err))
	}

	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	m := metrics.New(prometheus.DefaultRegisterer)

	// Repositories
	orderRepo := repositories.NewOrderRepository(db)
	depositRepo := repositories.NewDepositRepository(db)
	merchantRepo := repositories.NewMerchantRepository(db)

	// External adapters
	notifier := notify.NewHTTPNotifier(cfg.Notifier)
	processorClient := processor.NewClient(cfg.Payment)
	rateCache := cache.NewRedisRateCache()

	// Usecases
	currencyUsecase := usecases.NewCurrencyUsecase(processorClient, rateCache, cfg.Payment.RateCacheTTL)
	orderUsecase := usecases.NewRecordUsecase(orderRepo, merchantRepo, currencyUsecase, processorClient, cfg.Payment.OrderTTL)
	depositUsecase := usecases.NewRecordUsecase(depositRepo, merchantRepo, currencyUsecase, processorClient, cfg.Payment.DepositTTL)
	webhookUsecase := usecases.NewWebhookUsecase(orderRepo, depositRepo, notifier, m, cfg.Webhook)
	sweeperUsecase := usecases.NewSweeperUsecase(orderRepo, depositRepo, notifier, m, cfg.Sweeper.GracePeriod)

	// Handlers
	authHandler := handlers.NewAuthHandler(merchantRepo, jwtService)
	orderHandler := handlers.NewRecordHandler(orderUsecase)
	depositHandler := handlers.NewRecordHandler(depositUsecase)
	webhookHandler := handlers.NewWebhookHandler(webhookUsecase)
	sweeperHandler := handlers.NewSweeperHandler(sweeperUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)
	webhookAuthMiddleware := middleware.WebhookAuthMiddleware(cfg.Webhook.Token)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeperJob := jobs.NewExpirySweeperJob(sweeperUsecase, cfg.Sweeper.Interval)
	go sweeperJob.Start(ctx)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware(m))

	registerOpsRoutes(r, sweeperHandler)
	registerAPIV1Routes(r, routeDeps{
		authHandler:           authHandler,
		orderHandler:          orderHandler,
		depositHandler:        depositHandler,
		webhookHandler:        webhookHandler,
		authMiddleware:        authMiddleware,
		webhookAuthMiddleware: webhookAuthMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logger.Info(context.Background(), "shutting down server")
		sweeperJob.Stop()
		cancel()
	}()

	logger.Info(context.Background(), "payment backend starting", zap.String("port", cfg.Server.Port))

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}
