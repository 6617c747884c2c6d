package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PETCLINIC_AUTH_DEV_MODE", "true")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Minute, cfg.Clinic.SlotDuration)
	assert.Equal(t, 24*time.Hour, cfg.Clinic.ReminderWindow)
	assert.Equal(t, 90*24*time.Hour, cfg.Notifications.Retention)
	assert.Empty(t, cfg.DB.DSN)
	assert.True(t, cfg.Auth.DevMode)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PETCLINIC_AUTH_JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DSN", "postgres://localhost/petclinic")
	t.Setenv("PETCLINIC_CLINIC_SLOT_DURATION", "45m")
	t.Setenv("PETCLINIC_REDIS_ADDR", "localhost:6379")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost/petclinic", cfg.DB.DSN)
	assert.Equal(t, 45*time.Minute, cfg.Clinic.SlotDuration)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, "s3cret", cfg.Auth.JWTSecret)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
env: production
auth:
  jwt_secret: from-file
clinic:
  timezone: America/Argentina/Buenos_Aires
notifications:
  retention: 720h
`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "from-file", cfg.Auth.JWTSecret)
	assert.Equal(t, 720*time.Hour, cfg.Notifications.Retention)
	assert.Equal(t, "America/Argentina/Buenos_Aires", cfg.Clinic.Location().String())
}

func TestLoad_RequiresSecretOutsideDevMode(t *testing.T) {
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestClinicLocation_FallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, ClinicConfig{Timezone: "Nowhere/Atlantis"}.Location())
	assert.Equal(t, time.UTC, ClinicConfig{}.Location())
}
