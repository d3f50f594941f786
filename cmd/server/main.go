package main

// @title           QuickyBite API
// @version         1.0
// @description     Meal planning, grocery lists, and friend sharing.
// @BasePath        /api/v1
// @schemes         http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"quickybite-service/internal/cache"
	"quickybite-service/internal/config"
	"quickybite-service/internal/database"
	"quickybite-service/internal/events"
	"quickybite-service/internal/friendship"
	"quickybite-service/internal/meal"
	"quickybite-service/internal/notification"
	"quickybite-service/internal/router"
	"quickybite-service/internal/shoppinglist"
	"quickybite-service/internal/storage"
	"quickybite-service/internal/user"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	slog.Info("Starting QuickyBite server")

	// PostgreSQL
	db, err := database.NewPostgresConnection(cfg.Database.PostgresURI(),
		&user.User{},
		&friendship.FriendEdge{},
		&notification.Notification{},
		&meal.Meal{},
		&shoppinglist.ShoppingList{},
		&shoppinglist.ShoppingListItem{},
	)
	if err != nil {
		slog.Error("Failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}

	// Redis is optional: without it counters are derived on every read.
	var counters *cache.Counters
	redisClient, err := database.NewRedisConnection(cfg.Redis.URI)
	if err != nil {
		slog.Warn("Redis unavailable, counter caching disabled", "error", err)
	} else {
		counters = cache.NewCounters(redisClient)
		defer redisClient.Close()
	}

	// MinIO for profile pictures
	uploader, err := storage.NewMinIOClient(cfg.Minio.Endpoint, cfg.Minio.AccessKey, cfg.Minio.SecretKey, cfg.Minio.Bucket)
	if err != nil {
		slog.Error("Failed to connect to MinIO", "error", err)
		os.Exit(1)
	}

	// Kafka event publisher, optional
	var publisher events.Publisher = events.NoopPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Repositories
	userRepo := user.NewRepository(db)
	friendshipRepo := friendship.NewRepository(db)
	notificationRepo := notification.NewRepository(db)
	mealRepo := meal.NewRepository(db)
	shoppingListRepo := shoppinglist.NewRepository(db)

	// Services
	userService := user.NewService(userRepo, friendshipRepo, counters, cfg.JWT.Secret, cfg.JWT.ExpirationTime)
	friendshipService := friendship.NewService(friendshipRepo, userRepo, counters, publisher)
	notificationService := notification.NewService(notificationRepo, userRepo, counters, publisher)
	mealService := meal.NewService(mealRepo)
	shoppingListService := shoppinglist.NewService(shoppingListRepo)

	// HTTP
	engine := gin.Default()
	router.SetupRoutes(
		engine,
		cfg.JWT.Secret,
		user.NewHandler(userService, uploader),
		friendship.NewHandler(friendshipService),
		notification.NewHandler(notificationService),
		meal.NewHandler(mealService),
		shoppinglist.NewHandler(shoppingListService),
	)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		slog.Info("Server starting", "address", server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
