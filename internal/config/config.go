package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	JWT      JWTConfig
	S3       S3Config
	Log      LogConfig
	CORS     CORSConfig
	Email    EmailConfig
	Geo      GeoConfig
	Regions  RegionsConfig
	Dispatch DispatchConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing and expiry settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
}

// S3Config holds settings for the report bucket.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	PresignExpiry int64  `mapstructure:"presign_expiry"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// EmailConfig holds email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	FrontendURL string `mapstructure:"frontend_url"`
}

// GeoConfig holds dashboard focus settings.
type GeoConfig struct {
	LocateTimeout time.Duration `mapstructure:"locate_timeout"`
}

// RegionsConfig holds the region catalog cache settings.
type RegionsConfig struct {
	CacheSize int           `mapstructure:"cache_size"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// DispatchConfig holds notification dispatcher settings.
type DispatchConfig struct {
	PollIntervalSecs int `mapstructure:"poll_interval_secs"`
	MaxRetries       int `mapstructure:"max_retries"`
	Concurrency      int `mapstructure:"concurrency"`
	BatchSize        int `mapstructure:"batch_size"`
}

// Load reads configuration from environment variables with the HEATWATCH_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("HEATWATCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8000")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "heatwatch")
	v.SetDefault("db.password", "heatwatch_secret")
	v.SetDefault("db.name", "heatwatch_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults: tokens live one day
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "24h")
	v.SetDefault("jwt.issuer", "heatwatch")

	// S3 defaults
	v.SetDefault("s3.region", "eu-west-3")
	v.SetDefault("s3.bucket", "heatwatch-reports")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.presign_expiry", 3600)

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (Vite dev server)
	v.SetDefault("cors.allowed_origins", "http://localhost:5173,http://127.0.0.1:5173,http://localhost:3000")

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "eu-west-3")
	v.SetDefault("email.from_address", "alertes@heatwatch.sn")
	v.SetDefault("email.from_name", "HeatWatch Sénégal")
	v.SetDefault("email.frontend_url", "http://localhost:5173")

	v.SetDefault("geo.locate_timeout", "5s")

	v.SetDefault("regions.cache_size", 128)
	v.SetDefault("regions.cache_ttl", "5m")

	// Dispatch defaults
	v.SetDefault("dispatch.poll_interval_secs", 10)
	v.SetDefault("dispatch.max_retries", 5)
	v.SetDefault("dispatch.concurrency", 5)
	v.SetDefault("dispatch.batch_size", 50)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                 "HEATWATCH_SERVER_PORT",
		"server.read_timeout":         "HEATWATCH_SERVER_READ_TIMEOUT",
		"server.write_timeout":        "HEATWATCH_SERVER_WRITE_TIMEOUT",
		"server.environment":          "HEATWATCH_SERVER_ENVIRONMENT",
		"db.host":                     "HEATWATCH_DB_HOST",
		"db.port":                     "HEATWATCH_DB_PORT",
		"db.user":                     "HEATWATCH_DB_USER",
		"db.password":                 "HEATWATCH_DB_PASSWORD",
		"db.name":                     "HEATWATCH_DB_NAME",
		"db.sslmode":                  "HEATWATCH_DB_SSLMODE",
		"db.max_open":                 "HEATWATCH_DB_MAX_OPEN",
		"db.max_idle":                 "HEATWATCH_DB_MAX_IDLE",
		"jwt.secret":                  "HEATWATCH_JWT_SECRET",
		"jwt.access_expiry":           "HEATWATCH_JWT_ACCESS_EXPIRY",
		"jwt.issuer":                  "HEATWATCH_JWT_ISSUER",
		"s3.region":                   "HEATWATCH_S3_REGION",
		"s3.bucket":                   "HEATWATCH_S3_BUCKET",
		"s3.endpoint":                 "HEATWATCH_S3_ENDPOINT",
		"s3.access_key":               "HEATWATCH_S3_ACCESS_KEY",
		"s3.secret_key":               "HEATWATCH_S3_SECRET_KEY",
		"s3.presign_expiry":           "HEATWATCH_S3_PRESIGN_EXPIRY",
		"log.level":                   "HEATWATCH_LOG_LEVEL",
		"log.format":                  "HEATWATCH_LOG_FORMAT",
		"cors.allowed_origins":        "HEATWATCH_CORS_ALLOWED_ORIGINS",
		"email.provider":              "HEATWATCH_EMAIL_PROVIDER",
		"email.region":                "HEATWATCH_EMAIL_REGION",
		"email.from_address":          "HEATWATCH_EMAIL_FROM_ADDRESS",
		"email.from_name":             "HEATWATCH_EMAIL_FROM_NAME",
		"email.frontend_url":          "HEATWATCH_EMAIL_FRONTEND_URL",
		"geo.locate_timeout":          "HEATWATCH_GEO_LOCATE_TIMEOUT",
		"regions.cache_size":          "HEATWATCH_REGIONS_CACHE_SIZE",
		"regions.cache_ttl":           "HEATWATCH_REGIONS_CACHE_TTL",
		"dispatch.poll_interval_secs": "HEATWATCH_DISPATCH_POLL_INTERVAL_SECS",
		"dispatch.max_retries":        "HEATWATCH_DISPATCH_MAX_RETRIES",
		"dispatch.concurrency":        "HEATWATCH_DISPATCH_CONCURRENCY",
		"dispatch.batch_size":         "HEATWATCH_DISPATCH_BATCH_SIZE",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// PaaS hosts set PORT. Use it unless HEATWATCH_SERVER_PORT is set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("HEATWATCH_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		PresignExpiry: v.GetInt64("s3.presign_expiry"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: splitList(v.GetString("cors.allowed_origins")),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		FrontendURL: v.GetString("email.frontend_url"),
	}
	cfg.Geo = GeoConfig{
		LocateTimeout: v.GetDuration("geo.locate_timeout"),
	}
	cfg.Regions = RegionsConfig{
		CacheSize: v.GetInt("regions.cache_size"),
		CacheTTL:  v.GetDuration("regions.cache_ttl"),
	}
	cfg.Dispatch = DispatchConfig{
		PollIntervalSecs: v.GetInt("dispatch.poll_interval_secs"),
		MaxRetries:       v.GetInt("dispatch.max_retries"),
		Concurrency:      v.GetInt("dispatch.concurrency"),
		BatchSize:        v.GetInt("dispatch.batch_size"),
	}

	if cfg.Server.Environment == "production" && cfg.JWT.Secret == "change-me-in-production" {
		return nil, fmt.Errorf("config.Load: HEATWATCH_JWT_SECRET must be set in production")
	}
	return cfg, nil
}

// splitList parses a comma-separated string, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
