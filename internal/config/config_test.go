package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Storage.Format = "sqlite"
	cfg.User.Default = "alice"
	cfg.Categories = []string{"Rent", "Food"}

	path := filepath.Join(t.TempDir(), "spendwise.yaml")
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Storage, got.Storage)
	assert.Equal(t, "alice", got.User.Default)
	assert.Equal(t, cfg.Display.Currency, got.Display.Currency)
	assert.InDelta(t, cfg.Input.MinAmount, got.Input.MinAmount, 0.001)
	assert.Equal(t, []string{"Rent", "Food"}, got.Categories)
	assert.Equal(t, "warn", got.Log.Level)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "data", cfg.Storage.Root)
	assert.Equal(t, "csv", cfg.Storage.Format)
	assert.Equal(t, "₹", cfg.Display.Currency)
	assert.InDelta(t, 1.0, cfg.Input.MinAmount, 0.001)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.False(t, cfg.Log.Development)
	assert.Empty(t, cfg.Categories)
	assert.Empty(t, cfg.User.Default)
	assert.NoError(t, cfg.Validate())
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage:\n  root: /tmp/ledgers\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/ledgers", cfg.Storage.Root)
	assert.Equal(t, "csv", cfg.Storage.Format)
	assert.Equal(t, "₹", cfg.Display.Currency)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendwise.yaml")
	require.NoError(t, os.WriteFile(path, []byte("storage: [\n"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spendwise.yaml")
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "root: data")
	assert.Contains(t, contents, "format: csv")
	assert.Contains(t, contents, "min_amount: 1")
	assert.NotContains(t, contents, "categories")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvRoot, "/srv/ledgers")
	t.Setenv(EnvFormat, "yaml")
	t.Setenv(EnvUser, "bob")
	t.Setenv(EnvLogLevel, "debug")

	cfg := Default()
	ApplyEnv(cfg)

	assert.Equal(t, "/srv/ledgers", cfg.Storage.Root)
	assert.Equal(t, "yaml", cfg.Storage.Format)
	assert.Equal(t, "bob", cfg.User.Default)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(EnvUser+"=carol\n"), 0o644))

	t.Setenv(EnvUser, "")
	require.NoError(t, os.Unsetenv(EnvUser))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "carol", os.Getenv(EnvUser))

	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Storage.Format = "xml"
	cfg.Storage.Root = ""
	cfg.Input.MinAmount = -1

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.format")
	assert.Contains(t, err.Error(), "storage.root")
	assert.Contains(t, err.Error(), "min_amount")
}
