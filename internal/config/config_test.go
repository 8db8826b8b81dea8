package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "db"
port = 5432
user = "u"
password = "p"
dbname = "paintball"

[admin]
token = "s3cret"

[notify]
channel = "custom_channel"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "custom_channel", cfg.Notify.Channel)
	assert.Equal(t, 90, cfg.Notify.PingIntervalSec, "default ping interval")
	assert.Equal(t, "disable", cfg.Database.SSLMode, "default sslmode")
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=paintball sslmode=disable", cfg.Database.DSN())
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
[admin]
token = "s3cret"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, "bookings_changed", cfg.Notify.Channel)
}

func TestLoad_AdminTokenRequired(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
