package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerRoundTrip(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".deploybot.ini")

	m, err := NewManager(configPath)
	require.NoError(t, err)

	t.Run("设置后可以读取", func(t *testing.T) {
		err := m.SetInstance("prod", &Instance{
			BaseURL: "https://deploy.example.com",
			Token:   "token-1234567890",
		})
		require.NoError(t, err)

		inst, err := m.GetInstance("prod")
		require.NoError(t, err)
		assert.Equal(t, "https://deploy.example.com", inst.BaseURL)
		assert.True(t, m.HasInstance("prod"))
	})

	t.Run("落盘后新管理器能加载", func(t *testing.T) {
		m2, err := NewManager(configPath)
		require.NoError(t, err)

		inst, err := m2.GetInstance("prod")
		require.NoError(t, err)
		assert.Equal(t, "token-1234567890", inst.Token)
		assert.Equal(t, []string{"prod"}, m2.ListInstances())
	})

	t.Run("删除后读取报错", func(t *testing.T) {
		require.NoError(t, m.RemoveInstance("prod"))

		_, err := m.GetInstance("prod")
		assert.Error(t, err)

		// 删除也要落盘
		m3, err := NewManager(configPath)
		require.NoError(t, err)
		assert.False(t, m3.HasInstance("prod"))
	})
}

func TestManagerValidation(t *testing.T) {
	m, err := NewManager(filepath.Join(t.TempDir(), ".deploybot.ini"))
	require.NoError(t, err)

	assert.Error(t, m.SetInstance("", &Instance{BaseURL: "https://x", Token: "t"}))
	assert.Error(t, m.SetInstance("prod", nil))
	assert.Error(t, m.SetInstance("prod", &Instance{BaseURL: "https://x"}))
	assert.Error(t, m.RemoveInstance("missing"))
}

func TestEnvFallback(t *testing.T) {
	t.Run("default 实例从环境变量兜底", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://env.example.com")
		t.Setenv(EnvToken, "env-token")

		m, err := NewManager(filepath.Join(t.TempDir(), ".deploybot.ini"))
		require.NoError(t, err)

		inst, err := m.GetInstance("default")
		require.NoError(t, err)
		assert.Equal(t, "https://env.example.com", inst.BaseURL)
		assert.True(t, m.HasInstance("default"))
		assert.Contains(t, m.ListInstances(), "default")
	})

	t.Run("非 default 实例不读环境变量", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://env.example.com")
		t.Setenv(EnvToken, "env-token")

		m, err := NewManager(filepath.Join(t.TempDir(), ".deploybot.ini"))
		require.NoError(t, err)

		_, err = m.GetInstance("prod")
		assert.Error(t, err)
	})

	t.Run("配置文件优先于环境变量", func(t *testing.T) {
		t.Setenv(EnvBaseURL, "https://env.example.com")
		t.Setenv(EnvToken, "env-token")

		configPath := filepath.Join(t.TempDir(), ".deploybot.ini")
		m, err := NewManager(configPath)
		require.NoError(t, err)

		require.NoError(t, m.SetInstance("default", &Instance{
			BaseURL: "https://file.example.com",
			Token:   "file-token",
		}))

		inst, err := m.GetInstance("default")
		require.NoError(t, err)
		assert.Equal(t, "https://file.example.com", inst.BaseURL)
	})
}

func TestManagerPreservesOtherSections(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), ".deploybot.ini")

	// 配置文件里已经有应用配置节
	content := "[default]\ninstance = prod\ncache_ttl = 120\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))

	m, err := NewManager(configPath)
	require.NoError(t, err)
	require.NoError(t, m.SetInstance("prod", &Instance{
		BaseURL: "https://deploy.example.com",
		Token:   "token",
	}))

	// 保存实例凭据不应抹掉应用配置
	saved, err := os.ReadFile(configPath)
	require.NoError(t, err)
	assert.Contains(t, string(saved), "cache_ttl")
	assert.Contains(t, string(saved), "instance:prod")
}
