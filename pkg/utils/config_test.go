package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearConfigEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_NAME", "PORT", "READ_TIMEOUT", "TIMEZONE", "DB_USER", "DB_NAME",
		"DB_PORT", "DB_SSLMODE", "DB_MAX_CONNS", "ADMIN_USER", "ADMIN_PASSWORD_HASH",
	} {
		// empty values are ignored by the loader
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearConfigEnv(t)

	config, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "fyyur", config.App.Name)
	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, 15*time.Second, config.App.ReadTimeout)
	assert.Equal(t, "5432", config.Database.Port)
	assert.Equal(t, "disable", config.Database.SSLMode)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, "admin", config.Admin.User)
	assert.Empty(t, config.Admin.PasswordHash)
}

func TestLoadConfig_EnvFileAndOverride(t *testing.T) {
	clearConfigEnv(t)

	dir := t.TempDir()
	content := "PORT=9090\nDB_NAME=fyyur_test\nDB_USER=fyyur\nTIMEZONE=UTC\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	t.Setenv("DB_USER", "override")

	config, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "fyyur_test", config.Database.Name)
	assert.Equal(t, "override", config.Database.User)
	assert.Equal(t, "UTC", config.App.Timezone)
}

func TestAppConfig_Location(t *testing.T) {
	loc, err := AppConfig{Timezone: ""}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = AppConfig{Timezone: "UTC"}.Location()
	require.NoError(t, err)
	assert.Equal(t, "UTC", loc.String())

	_, err = AppConfig{Timezone: "Not/AZone"}.Location()
	assert.Error(t, err)
}
