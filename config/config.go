package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	AppURL            string `mapstructure:"APP_URL"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	JWTSecret         string `mapstructure:"JWT_SECRET"`
	JWTTTL            time.Duration `mapstructure:"JWT_TTL"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB     int    `mapstructure:"REDIS_CACHE_DB"`
	RedisAuthDB      int    `mapstructure:"REDIS_AUTH_DB"`
	RedisMailQueueDB int    `mapstructure:"REDIS_MAIL_QUEUE_DB"`

	// Vendor catalog backend: "memory" or "mongo".
	CatalogBackend string `mapstructure:"CATALOG_BACKEND"`

	// Assistant.
	GeminiAPIKey    string        `mapstructure:"GEMINI_API_KEY"`
	GeminiModel     string        `mapstructure:"GEMINI_MODEL"`
	ChatMaxSteps    int           `mapstructure:"CHAT_MAX_STEPS"`
	ChatMaxDuration time.Duration `mapstructure:"CHAT_MAX_DURATION"`
	PlanningTTL     time.Duration `mapstructure:"PLANNING_TTL"`

	// Mail.
	SMTPHost         string `mapstructure:"SMTP_HOST"`
	SMTPPort         int    `mapstructure:"SMTP_PORT"`
	EmailUser        string `mapstructure:"EMAIL_USER"`
	EmailPass        string `mapstructure:"EMAIL_PASS"`
	MailFromName     string `mapstructure:"MAIL_FROM_NAME"`
	MailQueueEnabled bool   `mapstructure:"MAIL_QUEUE_ENABLED"`

	// Cloudinary for vendor images.
	CloudinaryURL string `mapstructure:"CLOUDINARY_URL"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_URL", "http://localhost:3000")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("JWT_TTL", "720h")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_AUTH_DB", 1)
	viper.SetDefault("REDIS_MAIL_QUEUE_DB", 2)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "mehfil")
	viper.SetDefault("CATALOG_BACKEND", "memory")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.5-flash")
	viper.SetDefault("CHAT_MAX_STEPS", 10)
	viper.SetDefault("CHAT_MAX_DURATION", "60s")
	viper.SetDefault("PLANNING_TTL", "30m")
	viper.SetDefault("SMTP_HOST", "smtp.gmail.com")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("EMAIL_USER", "")
	viper.SetDefault("EMAIL_PASS", "")
	viper.SetDefault("MAIL_FROM_NAME", "Mehfil AI")
	viper.SetDefault("MAIL_QUEUE_ENABLED", true)
	viper.SetDefault("CLOUDINARY_URL", "")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
