package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	LLM        LLMConfig        `yaml:"llm"`
	Generation GenerationConfig `yaml:"generation"`
	Redis      RedisConfig      `yaml:"redis"`
	Log        LogConfig        `yaml:"log"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
// WriteTimeout must outlive LLMConfig.Timeout, generation requests block on the model.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"120s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds access token validation settings. Tokens are issued elsewhere.
type AuthConfig struct {
	JWTSecret string `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"studynotes"`
}

// LLMConfig selects and configures the generative model provider.
type LLMConfig struct {
	Provider        string        `yaml:"provider"          env:"LLM_PROVIDER"          env-default:"gemini"`
	APIKey          string        `yaml:"api_key"           env:"LLM_API_KEY"`
	Model           string        `yaml:"model"             env:"LLM_MODEL"`
	BaseURL         string        `yaml:"base_url"          env:"LLM_BASE_URL"`
	Timeout         time.Duration `yaml:"timeout"           env:"LLM_TIMEOUT"           env-default:"60s"`
	MaxOutputTokens int           `yaml:"max_output_tokens" env:"LLM_MAX_OUTPUT_TOKENS" env-default:"4096"`
}

// GenerationConfig holds note generation settings.
type GenerationConfig struct {
	// MaxRetries of 0 disables retrying failed model calls.
	MaxRetries           int           `yaml:"max_retries"            env:"GENERATION_MAX_RETRIES"            env-default:"0"`
	RetryInitialInterval time.Duration `yaml:"retry_initial_interval" env:"GENERATION_RETRY_INITIAL_INTERVAL" env-default:"1s"`
	RetryMaxInterval     time.Duration `yaml:"retry_max_interval"     env:"GENERATION_RETRY_MAX_INTERVAL"     env-default:"10s"`
	LockTTL              time.Duration `yaml:"lock_ttl"               env:"GENERATION_LOCK_TTL"               env-default:"5m"`
}

// RedisConfig holds the optional Redis connection used for generation locks.
// An empty URL selects the in-process lock.
type RedisConfig struct {
	URL string `yaml:"url" env:"REDIS_URL"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig holds per-user request limits.
type RateLimitConfig struct {
	GeneratePerMinute int           `yaml:"generate_per_minute" env:"RATE_LIMIT_GENERATE_PER_MINUTE" env-default:"10"`
	CleanupInterval   time.Duration `yaml:"cleanup_interval"    env:"RATE_LIMIT_CLEANUP_INTERVAL"    env-default:"5m"`
}

// Supported LLM providers.
const (
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
)

// defaultModels is used when llm.model is left empty.
var defaultModels = map[string]string{
	ProviderGemini:    "gemini-2.0-flash",
	ProviderAnthropic: "claude-sonnet-4-5",
	ProviderOpenAI:    "gpt-4o-mini",
}
