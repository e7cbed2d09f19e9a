package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	SourcePostgres = "postgres"
	SourceFixture  = "fixture"
)

type Config struct {
	App        AppConfig
	DataSource string
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Mapper     MapperConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
	LogLevel    string
	LogFormat   string
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout time.Duration
	PoolMaxConns   int32
	AutoMigrate    bool
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
	TTL      time.Duration
}

type JWTConfig struct {
	AccessSecret     string
	RefreshSecret    string
	AccessExpiresIn  time.Duration
	RefreshExpiresIn time.Duration
}

type AdminConfig struct {
	Username string
	Password string
}

type MapperConfig struct {
	// FieldColumns is the raw "field=column,..." list completing mapper gaps.
	FieldColumns string
}

var (
	errMissingRequiredEnv = errors.New("missing required environment variables")
	errInvalidEnv         = errors.New("invalid environment variables")
)

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	var invalid []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optDefault := func(key, def string) string {
		if v := opt(key); v != "" {
			return v
		}
		return def
	}
	optDuration := func(key string, def time.Duration) time.Duration {
		raw := opt(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			invalid = append(invalid, key)
			return def
		}
		return d
	}
	optInt := func(key string, def int) int {
		raw := opt(key)
		if raw == "" {
			return def
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			invalid = append(invalid, key)
			return def
		}
		return n
	}
	optBool := func(key string, def bool) bool {
		raw := opt(key)
		if raw == "" {
			return def
		}
		b, err := strconv.ParseBool(raw)
		if err != nil {
			invalid = append(invalid, key)
			return def
		}
		return b
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
		LogLevel:    optDefault("LOG_LEVEL", "info"),
		LogFormat:   optDefault("LOG_FORMAT", "json"),
	}

	cfg.DataSource = strings.ToLower(optDefault("DATA_SOURCE", SourcePostgres))
	if cfg.DataSource != SourcePostgres && cfg.DataSource != SourceFixture {
		invalid = append(invalid, "DATA_SOURCE")
	}

	cfg.Database = DatabaseConfig{
		DBHost:         opt("DB_HOST"),
		DBPort:         opt("DB_PORT"),
		DBName:         opt("DB_NAME"),
		DBUser:         opt("DB_USER"),
		DBPassword:     opt("DB_PASSWORD"),
		DBSSLMode:      optDefault("DB_SSL_MODE", "disable"),
		ConnectTimeout: optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:   int32(optInt("DB_POOL_MAX_CONNS", 0)),
		AutoMigrate:    optBool("DB_AUTO_MIGRATE", false),
	}

	cfg.Redis = RedisConfig{
		Enabled:  optBool("REDIS_ENABLED", true),
		Host:     optDefault("REDIS_HOST", "localhost"),
		Port:     optDefault("REDIS_PORT", "6379"),
		Password: opt("REDIS_PASSWORD"),
		DB:       optInt("REDIS_DB", 0),
		TTL:      optDuration("REDIS_TTL", 10*time.Minute),
	}

	cfg.JWT = JWTConfig{
		AccessSecret:     opt("JWT_ACCESS_SECRET"),
		RefreshSecret:    opt("JWT_REFRESH_SECRET"),
		AccessExpiresIn:  optDuration("JWT_ACCESS_EXPIRES_IN", 15*time.Minute),
		RefreshExpiresIn: optDuration("JWT_REFRESH_EXPIRES_IN", 7*24*time.Hour),
	}

	if cfg.DataSource == SourcePostgres {
		for _, key := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET"} {
			req(key)
		}
	}

	cfg.Admin = AdminConfig{
		Username: opt("ADMIN_USERNAME"),
		Password: opt("ADMIN_PASSWORD"),
	}

	cfg.Mapper = MapperConfig{
		FieldColumns: opt("MAPPER_FIELD_COLUMNS"),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}
	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errInvalidEnv, strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// UsesPostgres reports whether the catalog is served from the database.
func (c Config) UsesPostgres() bool {
	return c.DataSource == SourcePostgres
}
