package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucksec/deploybot/internal/domain"
)

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "10", EnvKey(domain.Environment{ID: "10", UUID: "env-uuid"}))
	assert.Equal(t, "env-uuid", EnvKey(domain.Environment{UUID: "env-uuid"}))
	assert.Equal(t, "", EnvKey(domain.Environment{Name: "production"}))
}

func TestBuildEnvProjectIndex(t *testing.T) {
	t.Run("环境键映射到项目规范 ID", func(t *testing.T) {
		envs := []domain.Environment{
			{ID: "10", ProjectID: "1"},
			{ID: "20", ProjectUUID: "proj-uuid"},
		}

		index := BuildEnvProjectIndex(envs)
		assert.Equal(t, "1", index["10"])
		assert.Equal(t, "proj-uuid", index["20"])
	})

	t.Run("无规范键的环境被跳过", func(t *testing.T) {
		envs := []domain.Environment{
			{Name: "orphan", ProjectID: "1"},
			{ID: "10", ProjectID: "1"},
		}

		index := BuildEnvProjectIndex(envs)
		assert.Len(t, index, 1)
	})
}

func TestBuildEnvNameIndex(t *testing.T) {
	envs := []domain.Environment{
		{ID: "10", Name: "production"},
		{ID: "20"},
	}

	index := BuildEnvNameIndex(envs)
	assert.Equal(t, "production", index["10"])
	assert.Equal(t, UnnamedEnvironment, index["20"])
}

func TestBuildEnvIndex(t *testing.T) {
	envs := []domain.Environment{
		{ID: "10", Name: "production", ProjectName: "alpha"},
	}

	index := BuildEnvIndex(envs)
	require.Contains(t, index, "10")
	assert.Equal(t, "alpha", index["10"].ProjectName)
	assert.Equal(t, "production", index["10"].Name)
}

func TestBuildEnvNameToIDs(t *testing.T) {
	t.Run("同名环境合并进同一个集合", func(t *testing.T) {
		envs := []domain.Environment{
			{ID: "10", Name: "production", ProjectID: "1"},
			{ID: "20", Name: "production", ProjectID: "2"},
			{ID: "30", Name: "staging", ProjectID: "1"},
		}

		index := BuildEnvNameToIDs(envs)
		require.Contains(t, index, "production")
		assert.Len(t, index["production"], 2)
		assert.Contains(t, index["production"], "10")
		assert.Contains(t, index["production"], "20")
		assert.Len(t, index["staging"], 1)
	})

	t.Run("无规范键的环境不计入", func(t *testing.T) {
		envs := []domain.Environment{
			{Name: "production"},
		}

		index := BuildEnvNameToIDs(envs)
		assert.Empty(t, index)
	})
}
