package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Gestor-Tareas/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, config.SessionDriverCookie, cfg.Session.Driver)
	assert.Equal(t, "gestor_session", cfg.Session.CookieName)
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout())
	assert.Equal(t, "0.0.0.0:3000", cfg.HTTP.Addr())
}

func TestLoad_EnvTienePrioridad(t *testing.T) {
	t.Setenv("API_URL", "http://backend:9000/")
	t.Setenv("SESSION_DRIVER", "REDIS")
	t.Setenv("HTTP_PORT", "8081")
	t.Setenv("SESSION_TTL_MINUTES", "30")
	t.Setenv("SESSION_SECURE", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "http://backend:9000", cfg.Backend.BaseURL, "la barra final se recorta")
	assert.Equal(t, config.SessionDriverRedis, cfg.Session.Driver)
	assert.Equal(t, 8081, cfg.HTTP.Port)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL())
	assert.True(t, cfg.Session.Secure)
}

func TestLoad_DriverInvalido(t *testing.T) {
	t.Setenv("SESSION_DRIVER", "memcached")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoad_EnteroInvalidoUsaDefecto(t *testing.T) {
	t.Setenv("API_TIMEOUT_SECONDS", "abc")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 15, cfg.Backend.TimeoutSeconds)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "gestor", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/gestor?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://otro"
	assert.Equal(t, "postgres://otro", c.ConnectionString())
}
