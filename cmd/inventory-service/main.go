package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"server-inventory-dashboard/internal/inventory-service/api/handler"
	"server-inventory-dashboard/internal/inventory-service/api/routes"
	"server-inventory-dashboard/internal/inventory-service/audit"
	"server-inventory-dashboard/internal/inventory-service/config"
	"server-inventory-dashboard/internal/inventory-service/repository"
	"server-inventory-dashboard/internal/inventory-service/store"
	"server-inventory-dashboard/pkg/infra"
	"server-inventory-dashboard/pkg/logger"
	"server-inventory-dashboard/pkg/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	appConfig, err := config.LoadConfig("./.env")
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, fileSyncer).With(zap.String("service.name", "inventory-service"))
	defer zapLogger.Sync()
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGHUP)
	go func() {
		for {
			<-c
			zapLogger.Info("receive logrotate SIGHUP, reloading log file")
			if e := fileSyncer.Reload(); e != nil {
				zapLogger.Error("failed to reload log file", zap.Error(e))
			} else {
				zapLogger.Info("successfully reloaded log file")
			}
		}
	}()

	// set up database
	db, err := infra.NewPostgresConnection(infra.PostgresConfig{
		Host:     appConfig.Postgres.Host,
		Port:     appConfig.Postgres.Port,
		User:     appConfig.Postgres.User,
		Password: appConfig.Postgres.Password,
		DBName:   appConfig.Postgres.DBName,
	})
	if err != nil {
		zapLogger.Fatal("failed to connect to postgres", zap.Error(err))
	} else {
		zapLogger.Info("connected to postgres successfully")
	}
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm:", zap.Error(err))
	}
	defer sqlDB.Close()

	// set up dependencies
	serverRepo := repository.NewServerRepository(db)
	if appConfig.Redis.Enabled {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host: appConfig.Redis.Host,
			Port: appConfig.Redis.Port,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		defer redisClient.Close()
		zapLogger.Info("connected to redis successfully")
		serverRepo = repository.NewCachedServerRepository(redisClient, serverRepo, appConfig.Redis.CacheTTL)
	}
	historyRepo := repository.NewHistoryRepository(db)
	viewRepo := repository.NewViewRepository(db)

	publisher := audit.NewNopPublisher()
	if appConfig.Kafka.Enabled {
		kafkaWriter := infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.AuditTopic)
		defer kafkaWriter.Close()
		publisher = audit.NewKafkaPublisher(kafkaWriter)
		zapLogger.Info("audit events will be published to kafka", zap.String("topic", appConfig.Kafka.AuditTopic))
	}

	inventory := store.NewInventoryStore(store.Config{
		PageSize:       appConfig.Store.PageSize,
		Actor:          appConfig.Store.Actor,
		NumericAware:   appConfig.Store.NumericAwareSort,
		GatewayTimeout: appConfig.Store.GatewayTimeout,
	}, serverRepo, historyRepo, viewRepo, publisher, zapLogger)

	loadCtx, loadCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err = inventory.Load(loadCtx); err != nil {
		zapLogger.Error("initial inventory load failed, starting with empty state", zap.Error(err))
	}
	loadCancel()

	serverHandler := handler.NewServerHandler(zapLogger, inventory)
	viewHandler := handler.NewViewHandler(zapLogger, inventory)

	m := middleware.NewScopeMiddleware(appConfig.Server.EnforceScopes)

	// Set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	routes.SetUpServerRoutes(r, serverHandler, m)
	routes.SetUpViewRoutes(r, viewHandler, m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: r,
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown:", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}
