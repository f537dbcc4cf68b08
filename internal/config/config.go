package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret     string `mapstructure:"JWT_SECRET"`
	JWTTTLMinutes int    `mapstructure:"JWT_TTL_MINUTES"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Redis configuration
	RedisAddr     string `mapstructure:"REDIS_ADDR"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`
	RedisDB       int    `mapstructure:"REDIS_DB"`

	// Referral tracking
	PublicBaseURL       string `mapstructure:"PUBLIC_BASE_URL"`
	ReferralCookieName  string `mapstructure:"REFERRAL_COOKIE_NAME"`
	ReferralCookieDays  int    `mapstructure:"REFERRAL_COOKIE_DAYS"`
	ReferralLandingPath string `mapstructure:"REFERRAL_LANDING_PATH"`

	// SMTP configuration
	SMTPHost   string `mapstructure:"SMTP_HOST"`
	SMTPPort   int    `mapstructure:"SMTP_PORT"`
	SMTPUser   string `mapstructure:"SMTP_USER"`
	SMTPPass   string `mapstructure:"SMTP_PASS"`
	SMTPSender string `mapstructure:"SMTP_SENDER"`

	NotifyAdminEmail string `mapstructure:"NOTIFY_ADMIN_EMAIL"`

	// SMS gateway configuration
	SMSAPIURL string `mapstructure:"SMS_API_URL"`
	SMSAPIKey string `mapstructure:"SMS_API_KEY"`

	// Google GenAI configuration
	GenAIAPIKey     string `mapstructure:"GENAI_API_KEY"`
	GenAITextModel  string `mapstructure:"GENAI_TEXT_MODEL"`
	GenAIImageModel string `mapstructure:"GENAI_IMAGE_MODEL"`
	MediaDir        string `mapstructure:"MEDIA_DIR"`
	MediaBaseURL    string `mapstructure:"MEDIA_BASE_URL"`

	// Translation API configuration
	TranslateAPIURL string `mapstructure:"TRANSLATE_API_URL"`
	TranslateAPIKey string `mapstructure:"TRANSLATE_API_KEY"`

	// Payment provider webhook
	PaymentWebhookSecret string `mapstructure:"PAYMENT_WEBHOOK_SECRET"`

	// Commission tiers (yaml). Empty means built-in defaults.
	CommissionTiersFile string `mapstructure:"COMMISSION_TIERS_FILE"`

	// SEO batch generation
	SEOBatchSize    int `mapstructure:"SEO_BATCH_SIZE"`
	SEOBatchDelayMS int `mapstructure:"SEO_BATCH_DELAY_MS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "taxpro")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_TTL_MINUTES", 1440)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	// Redis defaults; empty address disables the cache
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)

	// Referral defaults
	viper.SetDefault("PUBLIC_BASE_URL", "http://localhost:3000")
	viper.SetDefault("REFERRAL_COOKIE_NAME", "ref_code")
	viper.SetDefault("REFERRAL_COOKIE_DAYS", 30)
	viper.SetDefault("REFERRAL_LANDING_PATH", "/get-started")

	// SMTP defaults
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 465)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASS", "")
	viper.SetDefault("SMTP_SENDER", "no-reply@localhost")
	viper.SetDefault("NOTIFY_ADMIN_EMAIL", "")

	// SMS defaults
	viper.SetDefault("SMS_API_URL", "")
	viper.SetDefault("SMS_API_KEY", "")

	// GenAI defaults
	viper.SetDefault("GENAI_API_KEY", "")
	viper.SetDefault("GENAI_TEXT_MODEL", "gemini-2.5-flash")
	viper.SetDefault("GENAI_IMAGE_MODEL", "imagen-4.0-generate-001")
	viper.SetDefault("MEDIA_DIR", "./media")
	viper.SetDefault("MEDIA_BASE_URL", "/media")

	// Translation defaults
	viper.SetDefault("TRANSLATE_API_URL", "https://translation.googleapis.com/language/translate/v2")
	viper.SetDefault("TRANSLATE_API_KEY", "")

	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "")
	viper.SetDefault("COMMISSION_TIERS_FILE", "")

	viper.SetDefault("SEO_BATCH_SIZE", 5)
	viper.SetDefault("SEO_BATCH_DELAY_MS", 2000)
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if config.PaymentWebhookSecret == "" {
			return fmt.Errorf("PAYMENT_WEBHOOK_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" {
		return fmt.Errorf("database name is required")
	}

	if config.SEOBatchSize < 1 {
		return fmt.Errorf("SEO_BATCH_SIZE must be at least 1")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// ReferralCookieMaxAge returns the referral cookie lifetime in seconds
func (c *Config) ReferralCookieMaxAge() int {
	if c.ReferralCookieDays <= 0 {
		return 30 * 24 * 60 * 60
	}
	return c.ReferralCookieDays * 24 * 60 * 60
}
