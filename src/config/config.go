package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything main needs to wire the service.
type Config struct {
	AppPort          string
	MongoURI         string
	MongoDB          string
	RedisURI         string
	UploadDir        string
	UploadPublicPath string
	MaxImageSize     int64
	AllowedOrigins   string
	RequestTimeout   time.Duration
	CacheTTL         time.Duration
}

var ErrMissingMongoURI = errors.New("MONGO_URI environment variable not set")

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ Warning: No .env file found")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		AppPort:          getEnv("APP_PORT", "8888"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDB:          getEnv("MONGO_DB", "CourseCatalogDB"),
		RedisURI:         os.Getenv("REDIS_URI"),
		UploadDir:        getEnv("UPLOAD_DIR", "./public/uploads"),
		UploadPublicPath: "/" + strings.Trim(getEnv("UPLOAD_PUBLIC_PATH", "/public/uploads"), "/"),
		AllowedOrigins:   getEnv("ALLOWED_ORIGINS", "*"),
	}
	if cfg.MongoURI == "" {
		return nil, ErrMissingMongoURI
	}

	var err error
	if cfg.MaxImageSize, err = strconv.ParseInt(getEnv("MAX_IMAGE_SIZE", "5242880"), 10, 64); err != nil {
		return nil, fmt.Errorf("invalid MAX_IMAGE_SIZE: %w", err)
	}
	if cfg.RequestTimeout, err = time.ParseDuration(getEnv("REQUEST_TIMEOUT", "5s")); err != nil {
		return nil, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}
	if cfg.CacheTTL, err = time.ParseDuration(getEnv("CACHE_TTL", "2m")); err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
