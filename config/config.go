package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/Dosada05/placement-system/storage"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL        string
	JWTSecretKey       string
	ServerPort         int
	CORSAllowedOrigins []string
	R2                 storage.CloudflareR2UploaderConfig

	// Лимит запросов на изменение с одного адреса. 0 отключает лимит.
	WriteRateLimitPerMinute int
	WriteRateLimitBurst     int

	// NATS необязателен: без NATS_URL события уходят только в WebSocket.
	NATSURL           string
	NATSSubjectPrefix string
}

// Load загружает конфигурацию из переменных окружения.
// Файл .env подгружается, если он есть.
func Load() (*Config, error) {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	jwtKey := os.Getenv("JWT_SECRET_KEY")
	if jwtKey == "" {
		return nil, fmt.Errorf("JWT_SECRET_KEY environment variable is not set")
	}

	portStr := os.Getenv("SERVER_PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SERVER_PORT environment variable: %w", err)
	}
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", port)
	}

	ratePerMinute, err := intFromEnv("WRITE_RATE_LIMIT_PER_MINUTE", 60)
	if err != nil {
		return nil, err
	}
	rateBurst, err := intFromEnv("WRITE_RATE_LIMIT_BURST", 10)
	if err != nil {
		return nil, err
	}

	natsPrefix := os.Getenv("NATS_SUBJECT_PREFIX")
	if natsPrefix == "" {
		natsPrefix = "placement"
	}

	cfg := &Config{
		DatabaseURL:        dbURL,
		JWTSecretKey:       jwtKey,
		ServerPort:         port,
		CORSAllowedOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS"), []string{"*"}),
		R2: storage.CloudflareR2UploaderConfig{
			AccountID:       os.Getenv("R2_ACCOUNT_ID"),
			AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
			BucketName:      os.Getenv("R2_BUCKET_NAME"),
			PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
		},
		WriteRateLimitPerMinute: ratePerMinute,
		WriteRateLimitBurst:     rateBurst,
		NATSURL:                 strings.TrimSpace(os.Getenv("NATS_URL")),
		NATSSubjectPrefix:       natsPrefix,
	}

	return cfg, nil
}

func intFromEnv(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s environment variable: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must not be negative, got %d", key, v)
	}
	return v, nil
}

func splitList(raw string, fallback []string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
