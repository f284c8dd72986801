package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp 切换到临时目录并隔离 HOME，避免读到真实配置
func chdirTemp(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
	t.Setenv("HOME", dir)

	return dir
}

func TestLoadConfigDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "default", cfg.Instance)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.Equal(t, "INFO", cfg.Log.Level)
	assert.False(t, cfg.Log.EnableConsole)
	assert.True(t, cfg.Log.EnableFile)
	assert.Equal(t, "logs", cfg.Log.LogDir)
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := chdirTemp(t)

	content := `[default]
instance = prod
cache_ttl = 120

[log]
level = DEBUG
enable_console = true
log_dir = /tmp/deploybot-logs
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".deploybot.ini"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Instance)
	assert.Equal(t, 120, cfg.CacheTTLSeconds)
	assert.Equal(t, "DEBUG", cfg.Log.Level)
	assert.True(t, cfg.Log.EnableConsole)
	assert.Equal(t, "/tmp/deploybot-logs", cfg.Log.LogDir)
}

func TestLoadConfigPartialFile(t *testing.T) {
	dir := chdirTemp(t)

	// 只配置实例名，其余字段保持默认值
	content := "[default]\ninstance = staging\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".deploybot.ini"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Instance)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.Equal(t, "INFO", cfg.Log.Level)
}

func TestLoadConfigInvalidTTL(t *testing.T) {
	dir := chdirTemp(t)

	content := "[default]\ncache_ttl = -5\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".deploybot.ini"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
}
