package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/prudhivi99/shop-manager/internal/cache"
	"github.com/prudhivi99/shop-manager/internal/config"
	"github.com/prudhivi99/shop-manager/internal/consumer"
	"github.com/prudhivi99/shop-manager/internal/db"
	"github.com/prudhivi99/shop-manager/internal/discovery"
	"github.com/prudhivi99/shop-manager/internal/handlers"
	"github.com/prudhivi99/shop-manager/internal/messaging"
	"github.com/prudhivi99/shop-manager/internal/metrics"
	"github.com/prudhivi99/shop-manager/internal/middleware"
	"github.com/prudhivi99/shop-manager/internal/publisher"
	"github.com/prudhivi99/shop-manager/internal/routes"
	"github.com/prudhivi99/shop-manager/internal/services"
)

const serviceName = "shop-service"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, err := setup()
		if err != nil {
			return err
		}
		defer logger.Sync() //nolint:errcheck

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return serve(ctx, cfg, logger)
	},
}

func serve(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	// Connect to PostgreSQL
	database, err := db.NewPostgresDB(ctx, dbConfig(cfg.Database), logger)
	if err != nil {
		logger.Error("Failed to connect to database", zap.Error(err))
		return err
	}
	defer database.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, logger); err != nil {
			return err
		}
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg)

	// Repositories
	productRepo := db.NewProductRepository(database)
	var productStore services.ProductStore = productRepo
	var productCache services.ProductCache

	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.TTL, logger)
		if err != nil {
			logger.Warn("⚠️ Redis unavailable, product cache disabled", zap.Error(err))
		} else {
			defer redisCache.Close()
			cachedRepo := db.NewCachedProductRepository(productRepo, redisCache, logger)
			productStore = cachedRepo
			productCache = cachedRepo
		}
	}

	// Events
	var events services.EventPublisher = publisher.NopPublisher{}
	if cfg.RabbitMQ.Enabled {
		mq, err := messaging.NewRabbitMQ(messaging.Config{
			Host:     cfg.RabbitMQ.Host,
			Port:     cfg.RabbitMQ.Port,
			User:     cfg.RabbitMQ.User,
			Password: cfg.RabbitMQ.Password,
		}, logger)
		if err != nil {
			logger.Warn("⚠️ RabbitMQ unavailable, events disabled", zap.Error(err))
		} else {
			defer mq.Close()
			if pub, err := publisher.NewEventPublisher(mq); err != nil {
				logger.Warn("⚠️ Failed to set up event publisher", zap.Error(err))
			} else {
				events = pub
				startStockAlertConsumer(mq, m, logger)
			}
		}
	}

	// Services and handlers
	h := routes.Handlers{
		Health:   handlers.NewHealthHandler(database),
		Products: handlers.NewProductHandler(services.NewProductService(productStore, logger)),
		Stock: handlers.NewStockHandler(
			services.NewStockService(db.NewStockRepository(database), productCache, events, logger)),
		Payments: handlers.NewPaymentHandler(services.NewPaymentService(db.NewPaymentRepository(database), logger)),
		Deliveries: handlers.NewDeliveryHandler(
			services.NewDeliveryService(db.NewDeliveryRepository(database), productCache, events, m, logger)),
		Dashboard: handlers.NewDashboardHandler(services.NewDashboardService(db.NewDashboardRepository(database))),
	}

	if cfg.Log.Format != "console" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Metrics(m),
		middleware.Timeout(cfg.Server.RequestTimeout),
	)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))
	routes.Register(r, h)
	if cfg.Server.StaticDir != "" {
		routes.ServeStatic(r, cfg.Server.StaticDir)
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r,
	}

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()
	logger.Info("🚀 "+serviceName+" started", zap.Int("port", cfg.Server.Port))

	if cfg.Consul.Enabled {
		deregister := registerWithConsul(cfg, logger)
		defer deregister()
	}

	select {
	case err := <-serverErr:
		if err != nil {
			logger.Error("Server failed", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	logger.Info("Shutting down " + serviceName + "...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logger.Info("Server exited cleanly")
	return nil
}

func startStockAlertConsumer(mq *messaging.RabbitMQ, m *metrics.Metrics, logger *zap.Logger) {
	messages, err := mq.Consume(publisher.StockLowQueue)
	if err != nil {
		logger.Warn("⚠️ Stock alert consumer not started", zap.Error(err))
		return
	}

	go consumer.NewStockAlertConsumer(m, logger).ProcessStockLow(messages)
}

// registerWithConsul registers the service and returns its deregistration.
// Registry failures are logged and never stop the service.
func registerWithConsul(cfg *config.Config, logger *zap.Logger) func() {
	consul, err := discovery.NewConsulClient(cfg.Consul.Host, cfg.Consul.Port, logger)
	if err != nil {
		logger.Warn("⚠️ Consul unavailable, skipping registration", zap.Error(err))
		return func() {}
	}

	err = consul.Register(discovery.ServiceConfig{
		Name: serviceName,
		ID:   cfg.Consul.ServiceID,
		Port: cfg.Server.Port,
		Tags: []string{"api", "shop"},
	})
	if err != nil {
		logger.Warn("⚠️ Failed to register with Consul", zap.Error(err))
		return func() {}
	}

	return func() {
		if err := consul.Deregister(cfg.Consul.ServiceID); err != nil {
			logger.Warn("⚠️ Failed to deregister from Consul", zap.Error(err))
		}
	}
}
