package config

import (
	"os"
	"strconv"
	"time"
)

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type S3Config struct {
	Endpoint  string
	Region    string
	Bucket    string
	KeyID     string
	AccessKey string
	Timeout   time.Duration
}

type StorageConfig struct {
	Type      string
	MediaRoot string
	MediaURL  string
	S3        S3Config
}

type CacheConfig struct {
	Addr     string
	Password string
	DB       int
	TTL      time.Duration
}

type AppConfig struct {
	Port      string
	GinMode   string
	LogLevel  string
	LogFormat string
	PageSize  int
	Database  DatabaseConfig
	Storage   StorageConfig
	Cache     CacheConfig
}

// Load reads the configuration from the environment. Call it after godotenv.Load.
func Load() *AppConfig {
	LoadJWTSecret()

	return &AppConfig{
		Port:      getEnv("PORT", "8080"),
		GinMode:   getEnv("GIN_MODE", "release"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		PageSize:  getEnvInt("PAGE_SIZE", 6),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "foodgram"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Storage: StorageConfig{
			Type:      getEnv("STORAGE_TYPE", "filesystem"),
			MediaRoot: getEnv("MEDIA_ROOT", "./media"),
			MediaURL:  getEnv("MEDIA_URL", "/media/"),
			S3: S3Config{
				Endpoint:  os.Getenv("S3_ENDPOINT"),
				Region:    os.Getenv("S3_REGION"),
				Bucket:    os.Getenv("S3_BUCKET"),
				KeyID:     os.Getenv("S3_KEY_ID"),
				AccessKey: os.Getenv("S3_ACCESS_KEY"),
				Timeout:   getEnvDuration("S3_TIMEOUT", 30*time.Second),
			},
		},
		Cache: CacheConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvInt("REDIS_DB", 0),
			TTL:      getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}
