// Package config loads the runtime settings from the environment.
//
// An optional .env file is read first, then every process variable is mapped
// onto Config through koanf and checked with validator.
package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"
)

type Config struct {
	Env      string `koanf:"app_env" validate:"required"`
	Port     string `koanf:"port" validate:"required,numeric"`
	LogLevel string `koanf:"log_level" validate:"required"`

	DBHost     string `koanf:"db_host" validate:"required"`
	DBPort     int    `koanf:"db_port" validate:"required,min=1,max=65535"`
	DBUser     string `koanf:"db_user" validate:"required"`
	DBPassword string `koanf:"db_password"`
	DBName     string `koanf:"db_name" validate:"required"`
	DBSSLMode  string `koanf:"db_sslmode" validate:"required,oneof=disable allow prefer require verify-ca verify-full"`
	DBMaxConns int32  `koanf:"db_max_conns" validate:"min=1"`

	CORSOrigins string `koanf:"cors_origins"`

	ReadTimeout  int `koanf:"server_read_timeout" validate:"min=1"`
	WriteTimeout int `koanf:"server_write_timeout" validate:"min=1"`
	IdleTimeout  int `koanf:"server_idle_timeout" validate:"min=1"`

	JWTSecret         string `koanf:"jwt_secret"`
	AdminPasswordHash string `koanf:"admin_password_hash"`
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not loaded, using process environment")
	}

	k := koanf.New(".")
	err := k.Load(env.Provider("", ".", func(s string) string {
		return strings.ToLower(s)
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}
	cfg.setDefaults()

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) setDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if c.Port == "" {
		c.Port = "8080"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.DBPort == 0 {
		c.DBPort = 5432
	}
	if c.DBSSLMode == "" {
		c.DBSSLMode = "disable"
	}
	if c.DBMaxConns == 0 {
		c.DBMaxConns = 10
	}
	if c.CORSOrigins == "" {
		c.CORSOrigins = "*"
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 10
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60
	}
}

// DatabaseURL returns the postgres connection string.
func (c *Config) DatabaseURL() string {
	hostPort := net.JoinHostPort(c.DBHost, strconv.Itoa(c.DBPort))
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     hostPort,
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=" + url.QueryEscape(c.DBSSLMode),
	}
	return u.String()
}

func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// AuthEnabled reports whether the admin token endpoints and guards are active.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != "" && c.AdminPasswordHash != ""
}

func (c *Config) IsLocal() bool {
	return c.Env == "local"
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) ServerTimeouts() (read, write, idle time.Duration) {
	return time.Duration(c.ReadTimeout) * time.Second,
		time.Duration(c.WriteTimeout) * time.Second,
		time.Duration(c.IdleTimeout) * time.Second
}
