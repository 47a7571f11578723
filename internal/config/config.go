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
	Server     ServerConfig
	DB         DBConfig
	Redis      RedisConfig
	S3         S3Config
	LLM        LLMConfig
	Auth       AuthConfig
	Extraction ExtractionConfig
	CORS       CORSConfig
	Log        LogConfig
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

// RedisConfig holds settings for the conversation read-through cache.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	PoolSize int           `mapstructure:"pool_size"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
	Enabled  bool          `mapstructure:"enabled"`
}

// S3Config holds settings for the extracted-text bucket.
type S3Config struct {
	Region     string `mapstructure:"region"`
	Bucket     string `mapstructure:"bucket"`
	Endpoint   string `mapstructure:"endpoint"`
	AccessKey  string `mapstructure:"access_key"`
	SecretKey  string `mapstructure:"secret_key"`
	TextPrefix string `mapstructure:"text_prefix"`
}

// LLMConfig holds completion endpoint settings.
type LLMConfig struct {
	APIKey      string `mapstructure:"api_key"`
	APIURL      string `mapstructure:"api_url"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	MaxTokens   int    `mapstructure:"max_tokens"`
}

// AuthConfig holds bearer-token verification settings. Tokens are issued by
// the external auth service; this service only validates them.
type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
}

// ExtractionConfig holds background extraction settings.
type ExtractionConfig struct {
	TimeoutSecs   int `mapstructure:"timeout_secs"`
	MaxConcurrent int `mapstructure:"max_concurrent"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from environment variables with the DOCSAGE_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DOCSAGE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "docsage")
	v.SetDefault("db.password", "docsage_secret")
	v.SetDefault("db.name", "docsage_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// Redis defaults
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("redis.cache_ttl", "24h")
	v.SetDefault("redis.enabled", true)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "docsage-documents")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.text_prefix", "extracted-text/")

	// LLM defaults
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.api_url", "https://api.mistral.ai/v1/chat/completions")
	v.SetDefault("llm.model", "mistral-large-latest")
	v.SetDefault("llm.timeout_secs", 180)
	v.SetDefault("llm.max_tokens", 8192)

	// Auth defaults
	v.SetDefault("auth.jwt_secret", "change-me-in-production")
	v.SetDefault("auth.issuer", "docsage")

	// Extraction defaults
	v.SetDefault("extraction.timeout_secs", 300)
	v.SetDefault("extraction.max_concurrent", 4)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":               "DOCSAGE_SERVER_PORT",
		"server.read_timeout":       "DOCSAGE_SERVER_READ_TIMEOUT",
		"server.write_timeout":      "DOCSAGE_SERVER_WRITE_TIMEOUT",
		"server.environment":        "DOCSAGE_SERVER_ENVIRONMENT",
		"db.host":                   "DOCSAGE_DB_HOST",
		"db.port":                   "DOCSAGE_DB_PORT",
		"db.user":                   "DOCSAGE_DB_USER",
		"db.password":               "DOCSAGE_DB_PASSWORD",
		"db.name":                   "DOCSAGE_DB_NAME",
		"db.sslmode":                "DOCSAGE_DB_SSLMODE",
		"db.max_open":               "DOCSAGE_DB_MAX_OPEN",
		"db.max_idle":               "DOCSAGE_DB_MAX_IDLE",
		"redis.addr":                "DOCSAGE_REDIS_ADDR",
		"redis.password":            "DOCSAGE_REDIS_PASSWORD",
		"redis.db":                  "DOCSAGE_REDIS_DB",
		"redis.pool_size":           "DOCSAGE_REDIS_POOL_SIZE",
		"redis.cache_ttl":           "DOCSAGE_REDIS_CACHE_TTL",
		"redis.enabled":             "DOCSAGE_REDIS_ENABLED",
		"s3.region":                 "DOCSAGE_S3_REGION",
		"s3.bucket":                 "DOCSAGE_S3_BUCKET",
		"s3.endpoint":               "DOCSAGE_S3_ENDPOINT",
		"s3.access_key":             "DOCSAGE_S3_ACCESS_KEY",
		"s3.secret_key":             "DOCSAGE_S3_SECRET_KEY",
		"s3.text_prefix":            "DOCSAGE_S3_TEXT_PREFIX",
		"llm.api_key":               "DOCSAGE_LLM_API_KEY",
		"llm.api_url":               "DOCSAGE_LLM_API_URL",
		"llm.model":                 "DOCSAGE_LLM_MODEL",
		"llm.timeout_secs":          "DOCSAGE_LLM_TIMEOUT_SECS",
		"llm.max_tokens":            "DOCSAGE_LLM_MAX_TOKENS",
		"auth.jwt_secret":           "DOCSAGE_AUTH_JWT_SECRET",
		"auth.issuer":               "DOCSAGE_AUTH_ISSUER",
		"extraction.timeout_secs":   "DOCSAGE_EXTRACTION_TIMEOUT_SECS",
		"extraction.max_concurrent": "DOCSAGE_EXTRACTION_MAX_CONCURRENT",
		"cors.allowed_origins":      "DOCSAGE_CORS_ALLOWED_ORIGINS",
		"log.level":                 "DOCSAGE_LOG_LEVEL",
		"log.format":                "DOCSAGE_LOG_FORMAT",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if DOCSAGE_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("DOCSAGE_SERVER_PORT") == "" {
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
	cfg.Redis = RedisConfig{
		Addr:     v.GetString("redis.addr"),
		Password: v.GetString("redis.password"),
		DB:       v.GetInt("redis.db"),
		PoolSize: v.GetInt("redis.pool_size"),
		CacheTTL: v.GetDuration("redis.cache_ttl"),
		Enabled:  v.GetBool("redis.enabled"),
	}
	cfg.S3 = S3Config{
		Region:     v.GetString("s3.region"),
		Bucket:     v.GetString("s3.bucket"),
		Endpoint:   v.GetString("s3.endpoint"),
		AccessKey:  v.GetString("s3.access_key"),
		SecretKey:  v.GetString("s3.secret_key"),
		TextPrefix: v.GetString("s3.text_prefix"),
	}
	cfg.LLM = LLMConfig{
		APIKey:      v.GetString("llm.api_key"),
		APIURL:      v.GetString("llm.api_url"),
		Model:       v.GetString("llm.model"),
		TimeoutSecs: v.GetInt("llm.timeout_secs"),
		MaxTokens:   v.GetInt("llm.max_tokens"),
	}
	cfg.Auth = AuthConfig{
		JWTSecret: v.GetString("auth.jwt_secret"),
		Issuer:    v.GetString("auth.issuer"),
	}
	cfg.Extraction = ExtractionConfig{
		TimeoutSecs:   v.GetInt("extraction.timeout_secs"),
		MaxConcurrent: v.GetInt("extraction.max_concurrent"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	return cfg, nil
}
