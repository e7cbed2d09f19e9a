package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "placement-portal")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoad_FixtureSource(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATA_SOURCE", "fixture")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("MAPPER_FIELD_COLUMNS", "skills=tech_stack_tools_used")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, SourceFixture, cfg.DataSource)
	assert.False(t, cfg.UsesPostgres())
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
	assert.Equal(t, "skills=tech_stack_tools_used", cfg.Mapper.FieldColumns)
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("HTTP_PORT", "")
	t.Setenv("DATA_SOURCE", "fixture")

	_, err := Load()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errMissingRequiredEnv))
	assert.True(t, strings.Contains(err.Error(), "HTTP_PORT"))
}

func TestLoad_PostgresRequiresDatabaseAndJWT(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATA_SOURCE", "postgres")
	for _, k := range []string{"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "JWT_ACCESS_SECRET", "JWT_REFRESH_SECRET"} {
		t.Setenv(k, "")
	}

	_, err := Load()
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "DB_HOST")
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestLoad_Postgres(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATA_SOURCE", "")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_NAME", "portal")
	t.Setenv("DB_USER", "portal")
	t.Setenv("DB_POOL_MAX_CONNS", "8")
	t.Setenv("DB_AUTO_MIGRATE", "true")
	t.Setenv("JWT_ACCESS_SECRET", "a")
	t.Setenv("JWT_REFRESH_SECRET", "r")
	t.Setenv("JWT_ACCESS_EXPIRES_IN", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, int32(8), cfg.Database.PoolMaxConns)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.Equal(t, 30*time.Minute, cfg.JWT.AccessExpiresIn)
}

func TestLoad_InvalidValues(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATA_SOURCE", "mongo")
	t.Setenv("REDIS_TTL", "ten minutes")

	_, err := Load()
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "DATA_SOURCE")
	assert.Contains(t, err.Error(), "REDIS_TTL")
}
