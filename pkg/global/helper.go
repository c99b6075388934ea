package global

import (
	"context"
	"log"
	"os"
	"strings"
	"time"
)

func GetEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDefaultTimer() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func GetMongoURI() string {
	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		log.Fatal("MONGODB_URI is not set in environment variables")
		os.Exit(1)
	}
	return mongoURI
}

func GetDatabaseName() string {
	dbName := GetEnvOrDefault("MONGODB_DATABASE", "maasai_craft")
	return dbName
}

// GetAllowedOrigins returns the comma-separated CORS origin list for the
// storefront and admin frontends.
func GetAllowedOrigins() []string {
	raw := GetEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func GetFlutterwavePublicKey() string {
	key := os.Getenv("FLUTTERWAVE_PUBLIC_KEY")
	if key == "" {
		log.Fatal("FLUTTERWAVE_PUBLIC_KEY is not set in environment variables")
		os.Exit(1)
	}
	return key
}

func GetVerifyEndpoint() string {
	endpoint := os.Getenv("VERIFY_ENDPOINT")
	if endpoint == "" {
		log.Fatal("VERIFY_ENDPOINT is not set in environment variables")
		os.Exit(1)
	}
	return endpoint
}

func GetVerifyAPIKey() string {
	return GetEnvOrDefault("VERIFY_API_KEY", "")
}

func GetOrdersEndpoint() string {
	endpoint := os.Getenv("ORDERS_ENDPOINT")
	if endpoint == "" {
		log.Fatal("ORDERS_ENDPOINT is not set in environment variables")
		os.Exit(1)
	}
	return endpoint
}
