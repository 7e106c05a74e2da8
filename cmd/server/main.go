package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	catalogapp "github.com/farmbasket/backend/internal/application/catalog"
	checkoutapp "github.com/farmbasket/backend/internal/application/checkout"
	orderapp "github.com/farmbasket/backend/internal/application/order"
	partnerapp "github.com/farmbasket/backend/internal/application/partner"
	"github.com/farmbasket/backend/internal/domain/shipping"
	"github.com/farmbasket/backend/internal/infrastructure/auth"
	"github.com/farmbasket/backend/internal/infrastructure/config"
	"github.com/farmbasket/backend/internal/infrastructure/event"
	"github.com/farmbasket/backend/internal/infrastructure/logger"
	"github.com/farmbasket/backend/internal/infrastructure/notification"
	"github.com/farmbasket/backend/internal/infrastructure/persistence"
	"github.com/farmbasket/backend/internal/interfaces/http/handler"
	"github.com/farmbasket/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			FarmBasket Checkout API
//	@version		1.0
//	@description	Checkout and order lifecycle backend for the FarmBasket producer marketplace

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log, err := logger.New(cfg.Log)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting FarmBasket backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	// Database connection with a GORM logger backed by zap
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Repositories
	productRepo := persistence.NewGormProductRepository(db.DB)
	producerRepo := persistence.NewGormProducerRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	checkoutStore := persistence.NewGormCheckoutStore(db.DB)
	stockAdjuster := persistence.NewGormStockAdjuster(db.DB)

	// Application services
	estimator := shipping.NewEstimator()
	checkoutService := checkoutapp.NewService(productRepo, orderRepo, checkoutStore, estimator)
	orderService := orderapp.NewService(orderRepo)
	productService := catalogapp.NewProductService(productRepo, producerRepo, stockAdjuster)
	producerService := partnerapp.NewProducerService(producerRepo)

	jwtService := auth.NewJWTService(cfg.JWT)

	// Event bus and producer notification fan-out
	eventBus := event.NewInMemoryEventBus(log)

	var dispatcher orderapp.Dispatcher
	if cfg.Notification.QueueEnabled {
		redisDispatcher, err := notification.NewRedisDispatcherFromConfig(cfg.Redis, cfg.Notification.QueueKey)
		if err != nil {
			log.Fatal("Failed to connect to Redis notification queue", zap.Error(err))
		}
		defer func() {
			if err := redisDispatcher.Close(); err != nil {
				log.Error("Error closing Redis dispatcher", zap.Error(err))
			}
		}()
		dispatcher = redisDispatcher
		log.Info("Notification queue enabled",
			zap.String("addr", cfg.Redis.Addr()),
			zap.String("queue_key", cfg.Notification.QueueKey),
		)
	} else {
		dispatcher = notification.NewLogDispatcher(log)
	}

	notificationHandler := orderapp.NewNotificationHandler(producerRepo, dispatcher, log)
	eventBus.Subscribe(notificationHandler, notificationHandler.EventTypes()...)

	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	defer func() {
		if err := eventBus.Stop(context.Background()); err != nil {
			log.Error("Error stopping event bus", zap.Error(err))
		}
	}()

	// Inject event bus into services that publish events
	checkoutService.SetEventPublisher(eventBus)
	orderService.SetEventPublisher(eventBus)
	productService.SetEventPublisher(eventBus)
	producerService.SetEventPublisher(eventBus)

	// HTTP engine and routes
	engine := router.New(cfg, log, jwtService, router.Handlers{
		System: handler.NewSystemHandler(cfg.App.Name, db),
		Public: []router.RouteRegistrar{
			handler.NewCheckoutHandler(checkoutService),
			handler.NewShippingHandler(estimator),
			handler.NewTrackingHandler(orderService),
		},
		Admin: []router.RouteRegistrar{
			handler.NewOrderHandler(orderService),
			handler.NewProductHandler(productService),
			handler.NewProducerHandler(producerService),
		},
	})

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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
