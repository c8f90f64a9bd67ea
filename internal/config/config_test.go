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
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "translation:\n  senderId: ACME\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "/api/v1", cfg.Server.BasePath)
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, "T", cfg.Translation.Usage)
	assert.Equal(t, "ACME", cfg.Translation.SenderID)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("TEST_MONGO_URI", "mongodb://db:27017")
	path := writeConfig(t, `
storage:
  type: mongodb
  mongodb:
    uri: ${TEST_MONGO_URI}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://db:27017", cfg.Storage.MongoDB.URI)
	assert.Equal(t, "x12", cfg.Storage.MongoDB.Database)
	assert.Equal(t, "transactions", cfg.Storage.MongoDB.Collection)
}

func TestLoadValidates(t *testing.T) {
	cases := map[string]string{
		"unknown storage type": "storage:\n  type: postgres\n",
		"mongodb without uri":  "storage:\n  type: mongodb\n",
		"invalid usage":        "translation:\n  usage: X\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, StorageMemory, cfg.Storage.Type)
	assert.Equal(t, 8080, cfg.Server.Port)
	require.NoError(t, cfg.validate())
}
