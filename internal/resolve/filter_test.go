package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucksec/deploybot/internal/domain"
)

// filterFixture 构造两个项目、三个环境和五个资源的测试数据
func filterFixture() ([]domain.ResourceItem, map[string]string, map[string]map[string]struct{}, map[string]domain.Environment) {
	envs := []domain.Environment{
		{ID: "10", Name: "production", ProjectID: "1", ProjectName: "alpha"},
		{ID: "11", Name: "staging", ProjectID: "1", ProjectName: "alpha"},
		{ID: "20", Name: "production", ProjectID: "2", ProjectName: "beta"},
	}

	items := []domain.ResourceItem{
		{ID: "a1", Type: domain.TypeApplication, Name: "web", EnvironmentID: "10", URL: "https://app.example.com", Status: "running:healthy"},
		{ID: "a2", Type: domain.TypeApplication, Name: "api", EnvironmentID: "11", Status: "exited"},
		{ID: "s1", Type: domain.TypeService, Name: "minio", EnvironmentID: "10", Status: "running"},
		{ID: "d1", Type: domain.TypeDatabase, Name: "postgres", EnvironmentID: "20", Status: "running:unhealthy"},
		{ID: "x1", Type: domain.TypeService, Name: "orphan"},
	}

	return items, BuildEnvProjectIndex(envs), BuildEnvNameToIDs(envs), BuildEnvIndex(envs)
}

func TestFilterItems(t *testing.T) {
	items, envProject, envNameToIDs, _ := filterFixture()

	t.Run("all 原样返回", func(t *testing.T) {
		kept := FilterItems(items, FilterAll, envProject, envNameToIDs)
		assert.Equal(t, items, kept)
	})

	t.Run("project 令牌按环境到项目的映射过滤", func(t *testing.T) {
		kept := FilterItems(items, "project:1", envProject, envNameToIDs)
		require.Len(t, kept, 3)
		for _, it := range kept {
			assert.Contains(t, []string{"a1", "a2", "s1"}, it.ID)
		}

		kept = FilterItems(items, "project:2", envProject, envNameToIDs)
		require.Len(t, kept, 1)
		assert.Equal(t, "d1", kept[0].ID)
	})

	t.Run("无环境映射的条目被 project 令牌丢弃", func(t *testing.T) {
		kept := FilterItems(items, "project:1", envProject, envNameToIDs)
		for _, it := range kept {
			assert.NotEqual(t, "x1", it.ID)
		}
	})

	t.Run("env 令牌合并所有同名环境", func(t *testing.T) {
		kept := FilterItems(items, "env:production", envProject, envNameToIDs)
		require.Len(t, kept, 3)
		ids := []string{kept[0].ID, kept[1].ID, kept[2].ID}
		assert.ElementsMatch(t, []string{"a1", "s1", "d1"}, ids)
	})

	t.Run("未知环境名结果为空而不是全量", func(t *testing.T) {
		kept := FilterItems(items, "env:doesNotExist", envProject, envNameToIDs)
		assert.Empty(t, kept)
	})

	t.Run("type 令牌按类型精确匹配", func(t *testing.T) {
		kept := FilterItems(items, "type:application", envProject, envNameToIDs)
		require.Len(t, kept, 2)

		kept = FilterItems(items, "type:database", envProject, envNameToIDs)
		require.Len(t, kept, 1)
		assert.Equal(t, "d1", kept[0].ID)
	})

	t.Run("status 令牌按前缀匹配", func(t *testing.T) {
		kept := FilterItems(items, "status:running", envProject, envNameToIDs)
		require.Len(t, kept, 3)

		kept = FilterItems(items, "status:exited", envProject, envNameToIDs)
		require.Len(t, kept, 1)
		assert.Equal(t, "a2", kept[0].ID)
	})

	t.Run("未知令牌按 all 处理", func(t *testing.T) {
		kept := FilterItems(items, "bogus", envProject, envNameToIDs)
		assert.Equal(t, items, kept)
	})
}

func TestSortGrouped(t *testing.T) {
	items, _, _, envIndex := filterFixture()

	SortGrouped(items, envIndex)

	// 排序键：项目名 > 环境名 > 类型权重 > 条目名称
	// alpha/production: web(app), minio(service)
	// alpha/staging: api(app)
	// beta/production: postgres(db)
	// 无环境的条目项目名为空，排最前
	got := make([]string, 0, len(items))
	for _, it := range items {
		got = append(got, it.ID)
	}
	assert.Equal(t, []string{"x1", "a1", "s1", "a2", "d1"}, got)
}

func TestSortGroupedStable(t *testing.T) {
	envIndex := map[string]domain.Environment{
		"10": {ID: "10", Name: "production", ProjectName: "alpha"},
	}
	items := []domain.ResourceItem{
		{ID: "s1", Type: domain.TypeService, Name: "same", EnvironmentID: "10"},
		{ID: "s2", Type: domain.TypeService, Name: "same", EnvironmentID: "10"},
	}

	SortGrouped(items, envIndex)

	// 全部排序键相等时保持聚合顺序
	assert.Equal(t, "s1", items[0].ID)
	assert.Equal(t, "s2", items[1].ID)
}
