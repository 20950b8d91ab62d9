// internal/config/config.go
package config

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig    `env:",prefix=SERVER_"`
	Database  DatabaseConfig  `env:",prefix=DB_"`
	App       AppConfig       `env:",prefix=APP_"`
	RateLimit RateLimitConfig `env:",prefix=RATE_LIMIT_"`
	S3        S3Settings      `env:",prefix=S3_"`

	JWTSecret          string   `env:"JWT_SECRET,default=dev"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS,default=*"`
}

type ServerConfig struct {
	Port         string `env:"PORT,default=8080"`
	Host         string `env:"HOST,default=0.0.0.0"`
	ReadTimeout  int    `env:"READ_TIMEOUT,default=30"`  // seconds
	WriteTimeout int    `env:"WRITE_TIMEOUT,default=30"` // seconds
}

// DatabaseConfig holds PostgreSQL configuration. URL wins over the discrete fields.
type DatabaseConfig struct {
	URL            string `env:"URL"`
	Host           string `env:"HOST,default=localhost"`
	Port           string `env:"PORT,default=5432"`
	User           string `env:"USER,default=postgres"`
	Password       string `env:"PASSWORD,default=postgres"`
	Name           string `env:"NAME,default=campaign_admin"`
	SSLMode        string `env:"SSL_MODE,default=disable"`
	MaxConns       int    `env:"MAX_CONNS,default=25"`
	MinConns       int    `env:"MIN_CONNS,default=5"`
	CreateIfAbsent bool   `env:"CREATE_IF_ABSENT,default=false"`
}

type AppConfig struct {
	Environment string `env:"ENVIRONMENT,default=development"`
	LogLevel    string `env:"LOG_LEVEL,default=info"`
	LogFormat   string `env:"LOG_FORMAT,default=text"`
}

// RateLimitConfig bounds requests per client IP. RPS <= 0 disables limiting.
type RateLimitConfig struct {
	RPS   float64 `env:"RPS,default=20"`
	Burst int     `env:"BURST,default=40"`
}

// S3Settings configures photo URL signing and report export. An empty Bucket
// disables both.
type S3Settings struct {
	Region          string        `env:"REGION,default=us-east-1"`
	Bucket          string        `env:"BUCKET_NAME"`
	PhotoBucket     string        `env:"PHOTO_BUCKET_NAME"`
	AccessKeyID     string        `env:"ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"SECRET_ACCESS_KEY"`
	PublicBaseURL   string        `env:"PUBLIC_BASE_URL"`
	PresignTTL      time.Duration `env:"PRESIGN_TTL,default=15m"`
}

const devJWTSecret = "dev"

// Load loads configuration from environment variables
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: lookuper}); err != nil {
		return nil, fmt.Errorf("failed to process environment config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings that are only acceptable outside production.
func (c *Config) Validate() error {
	if c.App.IsProduction() {
		if secret := strings.TrimSpace(c.JWTSecret); secret == "" || secret == devJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set to a non-default value in production")
		}
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection URL
func (c *DatabaseConfig) DatabaseURL() string {
	if c.URL != "" {
		return c.URL
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   net.JoinHostPort(c.Host, c.Port),
		Path:   c.Name,
	}
	q := u.Query()
	q.Set("sslmode", c.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

// Addr returns the server listen address
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
