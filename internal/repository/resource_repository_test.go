package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucksec/deploybot/internal/domain"
)

// fakeLister 可编程的平台列表桩
type fakeLister struct {
	mu           sync.Mutex
	projectCalls int
	projects     []domain.Project
	projectErr   error
	teamCalls    int
}

func (f *fakeLister) ListProjects(ctx context.Context) ([]domain.Project, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projectCalls++
	if f.projectErr != nil {
		return nil, f.projectErr
	}
	return f.projects, nil
}

func (f *fakeLister) ListApplications(ctx context.Context) ([]domain.Application, error) {
	return nil, nil
}

func (f *fakeLister) ListServices(ctx context.Context) ([]domain.Service, error) {
	return nil, nil
}

func (f *fakeLister) ListDatabases(ctx context.Context) ([]domain.Database, error) {
	return nil, nil
}

func (f *fakeLister) ListDeployments(ctx context.Context, appUUID string) ([]domain.Deployment, error) {
	return []domain.Deployment{{DeploymentUUID: "dep-" + appUUID}}, nil
}

func (f *fakeLister) ListTeams(ctx context.Context) ([]domain.Team, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.teamCalls++
	return []domain.Team{{ID: "1", Name: "root"}}, nil
}

func (f *fakeLister) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.projectCalls
}

func (f *fakeLister) setProjects(projects []domain.Project) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.projects = projects
}

func TestResourceRepositoryCaching(t *testing.T) {
	t.Run("未过期时不重复抓取", func(t *testing.T) {
		lister := &fakeLister{projects: []domain.Project{{ID: "1", Name: "alpha"}}}
		repo := NewResourceRepository(lister, time.Minute)

		for i := 0; i < 3; i++ {
			projects, stale, err := repo.Projects(context.Background())
			require.NoError(t, err)
			assert.False(t, stale)
			assert.Len(t, projects, 1)
		}
		assert.Equal(t, 1, lister.calls())
	})

	t.Run("首次抓取失败时直接返回错误", func(t *testing.T) {
		lister := &fakeLister{projectErr: fmt.Errorf("boom")}
		repo := NewResourceRepository(lister, time.Minute)

		_, _, err := repo.Projects(context.Background())
		assert.Error(t, err)
	})

	t.Run("过期后返回旧值并标记陈旧", func(t *testing.T) {
		lister := &fakeLister{projects: []domain.Project{{ID: "1", Name: "alpha"}}}
		repo := NewResourceRepository(lister, 10*time.Millisecond)

		_, stale, err := repo.Projects(context.Background())
		require.NoError(t, err)
		assert.False(t, stale)

		time.Sleep(20 * time.Millisecond)
		lister.setProjects([]domain.Project{{ID: "1", Name: "alpha"}, {ID: "2", Name: "beta"}})

		// 过期读：先拿到旧值
		projects, stale, err := repo.Projects(context.Background())
		require.NoError(t, err)
		assert.True(t, stale)
		assert.Len(t, projects, 1)

		// 后台刷新完成后拿到新值
		assert.Eventually(t, func() bool {
			projects, stale, err := repo.Projects(context.Background())
			return err == nil && !stale && len(projects) == 2
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("部署记录按应用分键", func(t *testing.T) {
		lister := &fakeLister{}
		repo := NewResourceRepository(lister, time.Minute)

		d1, _, err := repo.Deployments(context.Background(), "a1")
		require.NoError(t, err)
		d2, _, err := repo.Deployments(context.Background(), "a2")
		require.NoError(t, err)

		assert.Equal(t, "dep-a1", d1[0].DeploymentUUID)
		assert.Equal(t, "dep-a2", d2[0].DeploymentUUID)
	})

	t.Run("Invalidate 后重新抓取", func(t *testing.T) {
		lister := &fakeLister{projects: []domain.Project{{ID: "1", Name: "alpha"}}}
		repo := NewResourceRepository(lister, time.Minute)

		_, _, err := repo.Projects(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, lister.calls())

		repo.Invalidate()

		_, stale, err := repo.Projects(context.Background())
		require.NoError(t, err)
		assert.False(t, stale)
		assert.Equal(t, 2, lister.calls())
	})
}
