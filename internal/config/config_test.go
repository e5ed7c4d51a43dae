package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: "9090"
storage:
  type: minio
resume:
  vocabulary_file: configs/skills.yaml
`)

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, "utf8mb4", cfg.Database.Charset)
	assert.Equal(t, 15*time.Second, cfg.Resume.ExtractTimeout)
	assert.Equal(t, int64(10<<20), cfg.Resume.MaxUploadBytes())
	assert.Equal(t, "configs/skills.yaml", cfg.Resume.VocabularyFile)
	assert.Empty(t, cfg.NLP.Endpoint)
	assert.Equal(t, "logs/app.log", cfg.Log.File)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
}

func TestLoadConfigReleaseRequiresStrongSecret(t *testing.T) {
	dir := writeConfig(t, `
server:
  mode: release
storage:
  type: minio
jwt:
  secret: short
`)

	_, err := LoadConfig(dir)
	assert.Error(t, err)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	dir := writeConfig(t, `
storage:
  type: minio
jwt:
  secret: from-file
`)
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.JWT.Secret)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
