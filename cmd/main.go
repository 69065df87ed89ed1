package main

import (
	"context"
	"net/http"

	cartapp "github.com/Sanushoffl/toteebags/application/cart"
	checkoutapp "github.com/Sanushoffl/toteebags/application/checkout"
	orderapp "github.com/Sanushoffl/toteebags/application/order"
	productapp "github.com/Sanushoffl/toteebags/application/product"
	userapp "github.com/Sanushoffl/toteebags/application/user"
	"github.com/Sanushoffl/toteebags/cmd/config"
	mongoclient "github.com/Sanushoffl/toteebags/cmd/mongo"
	redisclient "github.com/Sanushoffl/toteebags/cmd/redis"
	_ "github.com/Sanushoffl/toteebags/docs"
	orderRepo "github.com/Sanushoffl/toteebags/repository/order"
	productRepo "github.com/Sanushoffl/toteebags/repository/product"
	redisRepo "github.com/Sanushoffl/toteebags/repository/redis"
	userRepo "github.com/Sanushoffl/toteebags/repository/user"
	"github.com/Sanushoffl/toteebags/thirdparty/rabbitmq"
	"github.com/Sanushoffl/toteebags/thirdparty/razorpay"
	"github.com/Sanushoffl/toteebags/transport"
	"github.com/Sanushoffl/toteebags/utils/logger"
	"go.uber.org/zap"
)

// @title TOTEEBAGS STORE API
// @version 1.0
// @description Storefront and admin API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey TokenAuth
// @in header
// @name token
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to mongo
	if err := mongoclient.New(cfg); err != nil {
		logger.Fatal("err connect mongo", zap.Error(err))
	}
	defer func() {
		_ = mongoclient.Close()
	}()
	db := mongoclient.Database(cfg)

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize RabbitMQ publisher and the payment expiration consumer
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = publisher.Close()
	}()

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.InternalAPIURL, cfg.RabbitMQ.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()
	if err := consumer.Start(context.Background()); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}

	// Payment gateway client
	gateway := razorpay.NewClient(cfg.Razorpay.BaseURL, cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret)

	// Initialize repositories
	ProductRepo := productRepo.NewProductRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(cfg, ProductRepo, RedisRepo)
	CartApp := cartapp.NewCartApp(ProductRepo)
	OrderApp := orderapp.NewOrderApp(cfg, OrderRepo, ProductRepo, gateway, publisher)
	CheckoutApp := checkoutapp.NewCheckoutApp(CartApp, OrderApp)

	httpTransport := transport.NewTransport(UserApp, ProductApp, CartApp, CheckoutApp, OrderApp, cfg.RabbitMQ.InternalAPIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
