package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "campus-lostfound-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, []string{"admin@spit.ac.in"}, cfg.Auth.AdminEmails)
	assert.True(t, cfg.Postgres.RunMigrations)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("AUTH_SESSION_TTL_HOURS", "2")
	t.Setenv("ADMIN_EMAILS", "a@spit.ac.in, b@spit.ac.in")
	t.Setenv("POSTGRES_RUN_MIGRATIONS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.App.Addr())
	assert.Equal(t, 2*time.Hour, cfg.Auth.SessionTTL())
	assert.Equal(t, []string{"a@spit.ac.in", "b@spit.ac.in"}, cfg.Auth.AdminEmails)
	assert.False(t, cfg.Postgres.RunMigrations)
}

func TestIsAdminEmailCaseInsensitive(t *testing.T) {
	cfg := AuthConfig{AdminEmails: []string{"Admin@spit.ac.in"}}

	assert.True(t, cfg.IsAdminEmail("admin@spit.ac.in"))
	assert.True(t, cfg.IsAdminEmail("  ADMIN@SPIT.AC.IN "))
	assert.False(t, cfg.IsAdminEmail("student@spit.ac.in"))
}
