package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "root", cfg.DBUser)
	assert.Equal(t, "sales_management", cfg.DBName)
	assert.Equal(t, "sales_orders_queue", cfg.OrderQueue)
	assert.Equal(t, 10, cfg.MaxPriority)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("DB_NAME", "other_db")
	t.Setenv("SERVER_PORT", "9090")

	cfg := LoadConfig()
	assert.Equal(t, "other_db", cfg.DBName)
	assert.Equal(t, "9090", cfg.ServerPort)
}

func TestSecretFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jwt_secret")
	require.NoError(t, os.WriteFile(path, []byte("  file-secret\n"), 0o600))

	t.Setenv("JWT_SECRET_FILE", path)
	cfg := LoadConfig()
	assert.Equal(t, "file-secret", cfg.JWTSecret)
}
