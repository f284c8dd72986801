package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucksec/deploybot/internal/domain"
)

const testEnvUUID = "c8b4f1d0-9f3a-4a5e-8f21-6a2b3c4d5e6f"

func newTestLinkService(t *testing.T) LinkService {
	t.Helper()
	client, err := NewPlatformClient("https://deploy.example.com", "test-token")
	require.NoError(t, err)
	return NewLinkService(client)
}

func TestProjectURL(t *testing.T) {
	linkSvc := newTestLinkService(t)

	t.Run("UUID 优先", func(t *testing.T) {
		p := domain.Project{ID: "1", UUID: "proj-uuid", Name: "alpha"}
		assert.Equal(t, "https://deploy.example.com/project/proj-uuid", linkSvc.ProjectURL(p))
	})

	t.Run("无 UUID 时退回规范 ID", func(t *testing.T) {
		p := domain.Project{ID: "1", Name: "alpha"}
		assert.Equal(t, "https://deploy.example.com/project/1", linkSvc.ProjectURL(p))
	})

	t.Run("全部缺失时退回根地址", func(t *testing.T) {
		assert.Equal(t, "https://deploy.example.com", linkSvc.ProjectURL(domain.Project{Name: "alpha"}))
	})
}

func TestEnvironmentURL(t *testing.T) {
	linkSvc := newTestLinkService(t)

	t.Run("环境路径段 UUID 形态优先", func(t *testing.T) {
		env := domain.Environment{ID: "10", UUID: testEnvUUID, ProjectUUID: "proj-uuid"}
		assert.Equal(t,
			"https://deploy.example.com/project/proj-uuid/environment/"+testEnvUUID,
			linkSvc.EnvironmentURL(env))
	})

	t.Run("UUID 缺失时使用规范键", func(t *testing.T) {
		env := domain.Environment{ID: "10", ProjectUUID: "proj-uuid"}
		assert.Equal(t,
			"https://deploy.example.com/project/proj-uuid/environment/10",
			linkSvc.EnvironmentURL(env))
	})

	t.Run("项目上下文缺失时退回根地址", func(t *testing.T) {
		env := domain.Environment{ID: "10"}
		assert.Equal(t, "https://deploy.example.com", linkSvc.EnvironmentURL(env))
	})
}

func TestResourceURL(t *testing.T) {
	linkSvc := newTestLinkService(t)

	t.Run("拼接类型和条目 ID", func(t *testing.T) {
		env := domain.Environment{ID: "10", ProjectUUID: "proj-uuid"}
		item := domain.ResourceItem{ID: "a1", Type: domain.TypeApplication}
		assert.Equal(t,
			"https://deploy.example.com/project/proj-uuid/environment/10/application/a1",
			linkSvc.ResourceURL(item, env))
	})

	t.Run("环境上下文不全时退回环境地址", func(t *testing.T) {
		item := domain.ResourceItem{ID: "a1", Type: domain.TypeApplication}
		assert.Equal(t, "https://deploy.example.com", linkSvc.ResourceURL(item, domain.Environment{}))
	})
}
