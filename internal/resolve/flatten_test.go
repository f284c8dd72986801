package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucksec/deploybot/internal/domain"
)

func TestFlattenEnvironments(t *testing.T) {
	t.Run("展平后的数量等于各项目环境数之和", func(t *testing.T) {
		projects := []domain.Project{
			{ID: "1", Name: "alpha", Environments: []domain.Environment{
				{ID: "10", Name: "production"},
				{ID: "11", Name: "staging"},
			}},
			{ID: "2", Name: "beta", Environments: []domain.Environment{
				{ID: "20", Name: "production"},
			}},
			{ID: "3", Name: "empty"},
		}

		envs := FlattenEnvironments(projects)
		assert.Len(t, envs, 3)
	})

	t.Run("环境带上项目上下文", func(t *testing.T) {
		projects := []domain.Project{
			{ID: "1", UUID: "proj-uuid", Name: "alpha", Environments: []domain.Environment{
				{ID: "10", Name: "production"},
			}},
		}

		envs := FlattenEnvironments(projects)
		require.Len(t, envs, 1)
		assert.Equal(t, "1", envs[0].ProjectID.String())
		assert.Equal(t, "proj-uuid", envs[0].ProjectUUID)
		assert.Equal(t, "alpha", envs[0].ProjectName)
	})

	t.Run("项目标识符优先于环境内嵌引用", func(t *testing.T) {
		projects := []domain.Project{
			{ID: "1", Name: "alpha", Environments: []domain.Environment{
				{ID: "10", Name: "production", ProjectID: "999"},
			}},
		}

		envs := FlattenEnvironments(projects)
		require.Len(t, envs, 1)
		assert.Equal(t, "1", envs[0].ProjectID.String())
	})

	t.Run("项目无标识符时回退到环境内嵌引用", func(t *testing.T) {
		projects := []domain.Project{
			{Name: "no-id", Environments: []domain.Environment{
				{ID: "10", Name: "production", ProjectUUID: "embedded-uuid"},
			}},
		}

		envs := FlattenEnvironments(projects)
		require.Len(t, envs, 1)
		assert.Equal(t, "embedded-uuid", envs[0].ProjectID.String())
	})

	t.Run("缺失的名称退化为默认值", func(t *testing.T) {
		projects := []domain.Project{
			{ID: "1", Environments: []domain.Environment{
				{ID: "10"},
			}},
		}

		envs := FlattenEnvironments(projects)
		require.Len(t, envs, 1)
		assert.Equal(t, UnnamedProject, envs[0].ProjectName)
		assert.Equal(t, UnnamedEnvironment, envs[0].Name)
	})

	t.Run("空输入返回空切片", func(t *testing.T) {
		assert.Empty(t, FlattenEnvironments(nil))
		assert.Empty(t, FlattenEnvironments([]domain.Project{}))
	})
}
