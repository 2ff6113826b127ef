package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the process-wide configuration. It is built once by Load and
// passed by pointer; nothing mutates it afterwards.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"db"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Log      LogConfig      `mapstructure:"log"`
}

// ServerConfig HTTP server settings
type ServerConfig struct {
	Port         int        `mapstructure:"port"`
	MaxBodyBytes int64      `mapstructure:"max_body_bytes"`
	CORS         CORSConfig `mapstructure:"cors"`
}

// CORSConfig cross-origin settings
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// DatabaseConfig PostgreSQL settings
type DatabaseConfig struct {
	Host            string `mapstructure:"host"`
	Port            int    `mapstructure:"port"`
	Name            string `mapstructure:"name"`
	User            string `mapstructure:"user"`
	Password        string `mapstructure:"password"`
	SSLMode         string `mapstructure:"sslmode"`
	Timezone        string `mapstructure:"timezone"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"` // minutes
}

// DSN builds the PostgreSQL connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode, c.Timezone,
	)
}

// AuthConfig token signing and password hashing settings
type AuthConfig struct {
	SecretKey                string `mapstructure:"secret_key"`
	Algorithm                string `mapstructure:"algorithm"`
	AccessTokenExpireMinutes int    `mapstructure:"access_token_expire_minutes"`
	Issuer                   string `mapstructure:"issuer"`
	BcryptCost               int    `mapstructure:"bcrypt_cost"`
}

// AccessTokenTTL returns the configured token lifetime.
func (c *AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenExpireMinutes) * time.Minute
}

// LogConfig logging settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// envBindings maps config keys to the environment names the deployment uses.
var envBindings = map[string]string{
	"server.port":                      "PORT",
	"server.max_body_bytes":            "MAX_BODY_BYTES",
	"server.cors.allow_origins":        "ALLOWED_ORIGINS",
	"db.host":                          "DB_HOST",
	"db.port":                          "DB_PORT",
	"db.name":                          "DB_NAME",
	"db.user":                          "DB_USER",
	"db.password":                      "DB_PASS",
	"db.sslmode":                       "DB_SSLMODE",
	"db.timezone":                      "DB_TIMEZONE",
	"auth.secret_key":                  "SECRET_KEY",
	"auth.algorithm":                   "ALGORITHM",
	"auth.access_token_expire_minutes": "ACCESS_TOKEN_EXPIRE_MINUTES",
	"auth.bcrypt_cost":                 "BCRYPT_COST",
	"log.level":                        "LOG_LEVEL",
	"log.format":                       "LOG_FORMAT",
}

// Load reads configuration.
// Precedence: environment (including .env) > config file > defaults.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read .env: %w", err)
	}

	v := viper.New()

	// ── defaults ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.max_body_bytes", 1<<20)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:3000"})

	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.name", "planeacion")
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.password", "")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("db.max_open_conns", 25)
	v.SetDefault("db.max_idle_conns", 10)
	v.SetDefault("db.conn_max_lifetime", 60)

	v.SetDefault("auth.algorithm", "HS256")
	v.SetDefault("auth.access_token_expire_minutes", 60)
	v.SetDefault("auth.issuer", "planeacion")
	v.SetDefault("auth.bcrypt_cost", 10)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── config file ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── environment ──
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Server.CORS.AllowOrigins = splitOrigins(cfg.Server.CORS.AllowOrigins)
	cfg.Auth.Algorithm = strings.ToUpper(strings.TrimSpace(cfg.Auth.Algorithm))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// splitOrigins flattens comma-joined entries and drops blanks.
func splitOrigins(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, o := range strings.Split(item, ",") {
			if o = strings.TrimSpace(o); o != "" {
				out = append(out, o)
			}
		}
	}
	return out
}

// Validate checks the settings the process cannot run without.
func (c *Config) Validate() error {
	if c.Auth.SecretKey == "" {
		return errors.New("config: auth.secret_key (SECRET_KEY) must be set")
	}
	if len(c.Auth.SecretKey) < 16 {
		return errors.New("config: auth.secret_key must be at least 16 characters")
	}
	switch c.Auth.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("config: unsupported token algorithm %q", c.Auth.Algorithm)
	}
	if c.Auth.AccessTokenExpireMinutes <= 0 {
		return errors.New("config: auth.access_token_expire_minutes must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("config: server.port must be between 1 and 65535")
	}
	for _, o := range c.Server.CORS.AllowOrigins {
		if o != "*" && !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("config: allowed origin %q must start with http:// or https://", o)
		}
	}
	return nil
}
