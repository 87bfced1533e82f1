package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FileOverDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORAGE_BACKEND", "AI_SERVICE_URL", "DATA_DIR", "SESSION_TTL"} {
		t.Setenv(k, "")
	}
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "8080"
storage:
  backend: postgres
  postgresDsn: postgres://u:p@db/resumes
  cacheTTL: 5m
editor:
  sessionTTL: 1h
log:
  format: text
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, BackendPostgres, cfg.Storage.Backend)
	assert.Equal(t, 5*time.Minute, cfg.Storage.CacheTTL)
	assert.Equal(t, time.Hour, cfg.Editor.SessionTTL)
	assert.Equal(t, "resume-data", cfg.Storage.DataDir)
	assert.Equal(t, "http://ai-service:8000", cfg.AI.ServiceURL)
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"PORT":           "9000",
		"CHROME_PATH":    "/usr/bin/chromium",
		"REDIS_DB":       "2",
		"SESSION_TTL":    "45m",
		"REMOVE_DELAY":   "1s",
		"GITHUB_TOKEN":   "tok",
		"AI_SERVICE_URL": "http://localhost:8000",
	}
	cfg := Default()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "/usr/bin/chromium", cfg.Editor.ChromePath)
	assert.Equal(t, 2, cfg.Storage.RedisDB)
	assert.Equal(t, 45*time.Minute, cfg.Editor.SessionTTL)
	assert.Equal(t, time.Second, cfg.Editor.RemoveDelay)
	assert.Equal(t, "tok", cfg.AI.GitHubToken)
	assert.Equal(t, "http://localhost:8000", cfg.AI.ServiceURL)

	bad := Default()
	assert.Error(t, bad.applyEnv(func(k string) string {
		if k == "REDIS_DB" {
			return "two"
		}
		return ""
	}))
}

func TestValidate(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.Validate())
	cfg.Storage.Backend = "s3"
	assert.EqualError(t, cfg.Validate(), `unknown storage backend "s3"`)

	cfg = Default()
	assert.Equal(t, 300*time.Millisecond, cfg.Editor.RemoveDelay)
	cfg.Editor.RemoveDelay = -time.Second
	assert.EqualError(t, cfg.Validate(), "remove delay must not be negative")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Log.Level = "warn"
	log := cfg.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", "v")
	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	cfg.Log.Format = "text"
	cfg.Logger(&buf).Warn("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}
