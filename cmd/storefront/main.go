package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/clients"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/config"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/events"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/handlers"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/repository"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/server"
	"github.com/tm-acme-shop/acme-shop-storefront-service/internal/service"

	_ "github.com/lib/pq"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	logger.Info("Starting storefront-service",
		zap.Int("port", cfg.Server.Port),
		zap.String("commerce_api", cfg.Commerce.BaseURL))

	db, err := initDatabase(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	snapshots := repository.NewRedisSnapshotCache(cfg.Redis, logger)
	verifications := repository.NewPostgresVerificationStore(db, logger)

	cartClient := clients.NewHTTPCartClient(cfg.Commerce, logger)
	orderClient := clients.NewHTTPOrderClient(cfg.Commerce, logger)
	paymentClient := clients.NewHTTPPaymentClient(cfg.Commerce, logger)
	reviewClient := clients.NewHTTPReviewClient(cfg.Commerce, logger)
	catalogClient := clients.NewHTTPCatalogClient(cfg.Commerce, logger)
	userClient := clients.NewHTTPUserClient(cfg.Commerce, logger)

	eventPublisher := events.NewKafkaPublisher(cfg.Kafka, logger)
	defer eventPublisher.Close()

	rewriter := service.NewImageRewriter(cfg.Commerce)

	cartService := service.NewCartService(cartClient, snapshots, rewriter, logger)
	orderService := service.NewOrderService(orderClient, snapshots, rewriter, cfg.Features, logger)
	paymentService := service.NewPaymentService(paymentClient, snapshots, verifications, eventPublisher, cfg.Features, logger)
	reviewService := service.NewReviewService(reviewClient, logger)
	catalogService := service.NewCatalogService(catalogClient, rewriter, logger)
	profileService := service.NewProfileService(userClient, logger)

	h := handlers.NewHandlers(
		cartService,
		orderService,
		paymentService,
		reviewService,
		catalogService,
		profileService,
		cfg,
		logger,
	)

	srv := server.New(h, cfg)

	go func() {
		logger.Info("Server starting",
			zap.Int("port", cfg.Server.Port),
			zap.Bool("enable_checkout_events", cfg.Features.EnableCheckoutEvents),
			zap.Bool("enable_order_snapshots", cfg.Features.EnableOrderSnapshots))
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func initDatabase(cfg *config.Config, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.ConnectionString())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.MaxLifetime)

	if err := db.Ping(); err != nil {
		return nil, err
	}

	logger.Info("Database connected",
		zap.String("host", cfg.Database.Host),
		zap.String("name", cfg.Database.Name))

	return db, nil
}
