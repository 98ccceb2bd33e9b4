package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

// JWTConfig defines the issuer/secret pair used to verify admin tokens.
type JWTConfig struct {
	Issuer   string
	Audience string
	Secret   []byte
}

// Collections names every MongoDB collection the API touches.
type Collections struct {
	Nurseries           string
	Offers              string
	Categories          string
	Sponsors            string
	Banners             string
	Premium             string
	Surveys             string
	Contacts            string
	FailedNotifications string
}

// Config holds runtime configuration shared across the application.
type Config struct {
	Addr                 string
	MongoURI             string
	MongoDatabase        string
	Collections          Collections
	Timeout              time.Duration
	Timezone             string
	Logger               *slog.Logger
	JWT                  JWTConfig
	MessengerEndpoint    string
	MessengerDestination string
	MessengerTimeout     time.Duration
	AdminContactBaseURL  string
	AllowedOrigins       []string
}

// Load reads .env (when present) and environment variables and returns a
// fully populated Config.
func Load() Config {
	_ = godotenv.Load()

	logger := newLogger()

	timeout := 10 * time.Second
	if v := os.Getenv("MONGO_CONNECT_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			timeout = parsed
		}
	}

	messengerTimeout := 3 * time.Second
	if raw := strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_TIMEOUT")); raw != "" {
		if parsed, err := time.ParseDuration(raw); err == nil {
			messengerTimeout = parsed
		}
	}

	jwtSecret := strings.TrimSpace(os.Getenv("AUTH_JWT_SECRET"))
	if jwtSecret == "" {
		logger.Error("AUTH_JWT_SECRET must be configured")
		os.Exit(1)
	}

	cfg := Config{
		Addr:          envOrDefault("HTTP_ADDR", ":8080"),
		MongoURI:      envOrDefault("MONGO_URI", "mongodb://mongo:27017"),
		MongoDatabase: envOrDefault("MONGO_DB", "mashatel"),
		Collections: Collections{
			Nurseries:           envOrDefault("NURSERY_COLLECTION", "nurseries"),
			Offers:              envOrDefault("OFFER_COLLECTION", "offers"),
			Categories:          envOrDefault("CATEGORY_COLLECTION", "categories"),
			Sponsors:            envOrDefault("SPONSOR_COLLECTION", "sponsors"),
			Banners:             envOrDefault("BANNER_COLLECTION", "banners"),
			Premium:             envOrDefault("PREMIUM_COLLECTION", "premium_nurseries"),
			Surveys:             envOrDefault("SURVEY_COLLECTION", "surveys"),
			Contacts:            envOrDefault("CONTACT_COLLECTION", "contacts"),
			FailedNotifications: envOrDefault("FAILED_NOTIFICATION_COLLECTION", "failed_notifications"),
		},
		Timeout:  timeout,
		Timezone: envOrDefault("TIMEZONE", "Asia/Riyadh"),
		Logger:   logger,
		JWT: JWTConfig{
			Issuer:   envOrDefault("AUTH_JWT_ISSUER", "mashatel-auth"),
			Audience: strings.TrimSpace(os.Getenv("AUTH_JWT_AUDIENCE")),
			Secret:   []byte(jwtSecret),
		},
		MessengerEndpoint:    envOrDefault("MESSENGER_GATEWAY_URL", "http://messenger-gateway:3000"),
		MessengerDestination: strings.TrimSpace(os.Getenv("MESSENGER_GATEWAY_DESTINATION")),
		MessengerTimeout:     messengerTimeout,
		AdminContactBaseURL:  strings.TrimSpace(os.Getenv("ADMIN_CONTACT_BASE_URL")),
		AllowedOrigins:       parseList("API_ALLOWED_ORIGINS", []string{"*"}),
	}

	logger.Info("loaded config",
		"addr", cfg.Addr,
		"database", cfg.MongoDatabase,
		"messengerEndpoint", cfg.MessengerEndpoint,
	)

	return cfg
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if strings.EqualFold(strings.TrimSpace(os.Getenv("LOG_LEVEL")), "debug") {
		level = slog.LevelDebug
	}
	return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	}))
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseList(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}

	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			values = append(values, part)
		}
	}

	if len(values) == 0 {
		return fallback
	}
	return values
}
