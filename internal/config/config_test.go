package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// setFullEnv sets every required config variable; individual tests override
// or unset what they exercise.
func setFullEnv(t *testing.T) {
	t.Helper()

	t.Setenv("EMPLOYEE_API_PRIMARY_ENV", "test")

	t.Setenv("EMPLOYEE_API_SERVER_PORT", "8080")
	t.Setenv("EMPLOYEE_API_SERVER_READ_TIMEOUT", "10")
	t.Setenv("EMPLOYEE_API_SERVER_WRITE_TIMEOUT", "10")
	t.Setenv("EMPLOYEE_API_SERVER_IDLE_TIMEOUT", "60")
	t.Setenv("EMPLOYEE_API_SERVER_CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://app.example.com")

	t.Setenv("EMPLOYEE_API_DATABASE_HOST", "localhost")
	t.Setenv("EMPLOYEE_API_DATABASE_PORT", "5432")
	t.Setenv("EMPLOYEE_API_DATABASE_USER", "employee")
	t.Setenv("EMPLOYEE_API_DATABASE_PASSWORD", "secret")
	t.Setenv("EMPLOYEE_API_DATABASE_NAME", "employees")
	t.Setenv("EMPLOYEE_API_DATABASE_SSL_MODE", "disable")
	t.Setenv("EMPLOYEE_API_DATABASE_MAX_CONNS", "10")
	t.Setenv("EMPLOYEE_API_DATABASE_MIN_CONNS", "2")
	t.Setenv("EMPLOYEE_API_DATABASE_CONN_MAX_LIFETIME", "3600")
	t.Setenv("EMPLOYEE_API_DATABASE_CONN_MAX_IDLE_TIME", "600")
}

func TestLoadFromEnv(t *testing.T) {
	setFullEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "test", cfg.Primary.Env)
	require.Equal(t, "8080", cfg.Server.Port)
	require.Equal(t, 10, cfg.Server.ReadTimeout)
	require.Equal(t, []string{"http://localhost:3000", "https://app.example.com"}, cfg.Server.CORSAllowedOrigins)

	require.Equal(t, "localhost", cfg.Database.Host)
	require.Equal(t, 5432, cfg.Database.Port)
	require.Equal(t, "secret", cfg.Database.Password)
	require.Equal(t, "disable", cfg.Database.SSLMode)
	require.Equal(t, 10, cfg.Database.MaxConns)
	require.Equal(t, 2, cfg.Database.MinConns)
	require.Equal(t, 3600, cfg.Database.ConnMaxLifetime)
}

func TestLoadSingleCORSOrigin(t *testing.T) {
	setFullEnv(t)
	t.Setenv("EMPLOYEE_API_SERVER_CORS_ALLOWED_ORIGINS", "https://only.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, []string{"https://only.example.com"}, cfg.Server.CORSAllowedOrigins)
}

func TestLoadMissingRequiredFails(t *testing.T) {
	setFullEnv(t)
	t.Setenv("EMPLOYEE_API_DATABASE_HOST", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "validating config")
}
