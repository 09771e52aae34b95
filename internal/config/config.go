// Package config loads runtime settings from configs/config.yml, a .env file
// and the process environment, in increasing order of precedence.
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

// Environments in which an unset signing secret falls back to DevSecret.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
)

// DevSecret is the signing secret used when none is configured in development.
// Refused in every other environment.
const DevSecret = "dev-insecure-secret-change-me"

// Supported credential stores.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

var (
	ErrSecretRequired   = errors.New("jwt secret is required outside development (set JWT_SECRET_KEY)")
	ErrInsecureSecret   = errors.New("jwt secret must not be the development placeholder")
	ErrInvalidAlgorithm = errors.New("jwt algorithm must be one of HS256, HS384, HS512")
	ErrInvalidTTL       = errors.New("jwt expire minutes must be positive")
	ErrInvalidStore     = errors.New("auth store must be memory or sqlite")
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string
	DBPath      string
	CORSOrigins []string

	JWT    JWTConfig
	Auth   AuthConfig
	Server ServerConfig
}

type JWTConfig struct {
	Secret        string
	Algorithm     string
	ExpireMinutes int

	// UsingDevSecret is set when Secret was defaulted to DevSecret.
	UsingDevSecret bool
}

// TokenTTL is the configured access token lifetime.
func (j JWTConfig) TokenTTL() time.Duration {
	return time.Duration(j.ExpireMinutes) * time.Minute
}

type AuthConfig struct {
	Store        string
	ProtectTodos bool
}

type ServerConfig struct {
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// IsDevelopment reports whether insecure fallbacks are allowed.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment || c.Environment == EnvTest
}

// env var names per key; the yaml key is used for the config file.
var envBindings = map[string]string{
	"port":                       "PORT",
	"environment":                "ENVIRONMENT",
	"log.level":                  "LOG_LEVEL",
	"db.path":                    "DATABASE_PATH",
	"cors.origins":               "CORS_ORIGINS",
	"jwt.secret":                 "JWT_SECRET_KEY",
	"jwt.algorithm":              "JWT_ALGORITHM",
	"jwt.expire_minutes":         "JWT_ACCESS_TOKEN_EXPIRE_MINUTES",
	"auth.store":                 "AUTH_STORE",
	"auth.protect_todos":         "AUTH_PROTECT_TODOS",
	"server.read_header_timeout": "SERVER_READ_HEADER_TIMEOUT",
	"server.write_timeout":       "SERVER_WRITE_TIMEOUT",
	"server.idle_timeout":        "SERVER_IDLE_TIMEOUT",
	"server.shutdown_timeout":    "SERVER_SHUTDOWN_TIMEOUT",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")
	v.SetDefault("environment", EnvDevelopment)
	v.SetDefault("log.level", "info")
	v.SetDefault("db.path", "app.db")
	v.SetDefault("cors.origins", []string{"http://localhost:3000"})
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.algorithm", "HS256")
	v.SetDefault("jwt.expire_minutes", 30)
	v.SetDefault("auth.store", StoreMemory)
	v.SetDefault("auth.protect_todos", false)
	v.SetDefault("server.read_header_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.idle_timeout", 60*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
}

// Load reads .env (if present), then <configDir>/config.yml (if present), then
// the environment, and validates the result.
func Load(configDir string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	if configDir != "" {
		v.AddConfigPath(configDir)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper applies defaults and env bindings to v and builds a validated Config.
func FromViper(v *viper.Viper) (*Config, error) {
	setDefaults(v)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	cfg := &Config{
		Port:        v.GetString("port"),
		Environment: strings.ToLower(strings.TrimSpace(v.GetString("environment"))),
		LogLevel:    v.GetString("log.level"),
		DBPath:      v.GetString("db.path"),
		CORSOrigins: splitList(v.GetStringSlice("cors.origins")),
		JWT: JWTConfig{
			Secret:        v.GetString("jwt.secret"),
			Algorithm:     strings.ToUpper(strings.TrimSpace(v.GetString("jwt.algorithm"))),
			ExpireMinutes: v.GetInt("jwt.expire_minutes"),
		},
		Auth: AuthConfig{
			Store:        strings.ToLower(strings.TrimSpace(v.GetString("auth.store"))),
			ProtectTodos: v.GetBool("auth.protect_todos"),
		},
		Server: ServerConfig{
			ReadHeaderTimeout: v.GetDuration("server.read_header_timeout"),
			WriteTimeout:      v.GetDuration("server.write_timeout"),
			IdleTimeout:       v.GetDuration("server.idle_timeout"),
			ShutdownTimeout:   v.GetDuration("server.shutdown_timeout"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config and applies the development secret fallback.
func (c *Config) Validate() error {
	switch c.JWT.Algorithm {
	case "HS256", "HS384", "HS512":
	default:
		return fmt.Errorf("%w: got %q", ErrInvalidAlgorithm, c.JWT.Algorithm)
	}
	if c.JWT.ExpireMinutes <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTTL, c.JWT.ExpireMinutes)
	}
	if c.Auth.Store != StoreMemory && c.Auth.Store != StoreSQLite {
		return fmt.Errorf("%w: got %q", ErrInvalidStore, c.Auth.Store)
	}

	secret := strings.TrimSpace(c.JWT.Secret)
	switch {
	case secret == "" && c.IsDevelopment():
		c.JWT.Secret = DevSecret
		c.JWT.UsingDevSecret = true
	case secret == "":
		return fmt.Errorf("%w (environment %q)", ErrSecretRequired, c.Environment)
	case secret == DevSecret && !c.IsDevelopment():
		return ErrInsecureSecret
	}
	return nil
}

// splitList flattens comma separated entries, as env vars arrive as a single string.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
