package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Mongo       MongoConfig
	Redis       RedisConfig
	RabbitMQ    RabbitMQConfig
	Auth        AuthConfig
	Razorpay    RazorpayConfig
	Order       OrderConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type RabbitMQConfig struct {
	Host           string
	Port           int
	User           string
	Password       string
	InternalAPIURL string
	InternalAPIKey string
}

type AuthConfig struct {
	JWTSecret         string
	JWTExpiration     time.Duration
	SessionExpTime    time.Duration
	AdminEmail        string
	AdminPasswordHash string
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	BaseURL   string
}

type OrderConfig struct {
	Currency        string
	DeliveryFee     float64
	PaymentWindow   time.Duration
	ProductCacheTTL time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getenvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

// Load reads configuration from the environment, loading .env if present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Environment: getenv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getenv("SERVER_PORT", "8080"),
			ReadTimeout:  getenvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
			WriteTimeout: getenvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
			IdleTimeout:  getenvDuration("SERVER_IDLE_TIMEOUT", 60*time.Second),
		},
		Mongo: MongoConfig{
			URI:      getenv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getenv("MONGO_DATABASE", "toteebags"),
		},
		Redis: RedisConfig{
			Host:     getenv("REDIS_HOST", "localhost"),
			Port:     getenvInt("REDIS_PORT", 6379),
			Password: getenv("REDIS_PASSWORD", ""),
			DB:       getenvInt("REDIS_DB", 0),
		},
		RabbitMQ: RabbitMQConfig{
			Host:           getenv("RABBITMQ_HOST", "localhost"),
			Port:           getenvInt("RABBITMQ_PORT", 5672),
			User:           getenv("RABBITMQ_USER", "guest"),
			Password:       getenv("RABBITMQ_PASSWORD", "guest"),
			InternalAPIURL: getenv("INTERNAL_API_URL", "http://localhost:8080"),
			InternalAPIKey: getenv("INTERNAL_API_KEY", ""),
		},
		Auth: AuthConfig{
			JWTSecret:         getenv("JWT_SECRET", ""),
			JWTExpiration:     getenvDuration("JWT_EXPIRATION", 24*time.Hour),
			SessionExpTime:    getenvDuration("SESSION_EXPIRATION", 24*time.Hour),
			AdminEmail:        getenv("ADMIN_EMAIL", ""),
			AdminPasswordHash: getenv("ADMIN_PASSWORD_HASH", ""),
		},
		Razorpay: RazorpayConfig{
			KeyID:     getenv("RAZORPAY_KEY_ID", ""),
			KeySecret: getenv("RAZORPAY_KEY_SECRET", ""),
			BaseURL:   getenv("RAZORPAY_BASE_URL", "https://api.razorpay.com"),
		},
		Order: OrderConfig{
			Currency:        getenv("ORDER_CURRENCY", "INR"),
			DeliveryFee:     getenvFloat("DELIVERY_FEE", 10),
			PaymentWindow:   getenvDuration("PAYMENT_WINDOW", 30*time.Minute),
			ProductCacheTTL: getenvDuration("PRODUCT_CACHE_TTL", 5*time.Minute),
		},
	}
}
