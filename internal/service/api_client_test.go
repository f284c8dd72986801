package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	t.Run("缺少 scheme 时补 https 前缀", func(t *testing.T) {
		got, err := normalizeBaseURL("deploy.example.com")
		require.NoError(t, err)
		assert.Equal(t, "https://deploy.example.com", got)
	})

	t.Run("去掉末尾斜杠", func(t *testing.T) {
		got, err := normalizeBaseURL("https://deploy.example.com/")
		require.NoError(t, err)
		assert.Equal(t, "https://deploy.example.com", got)
	})

	t.Run("去掉多余的 API 前缀", func(t *testing.T) {
		got, err := normalizeBaseURL("https://deploy.example.com/api/v1")
		require.NoError(t, err)
		assert.Equal(t, "https://deploy.example.com", got)

		got, err = normalizeBaseURL("https://deploy.example.com/api/v1/")
		require.NoError(t, err)
		assert.Equal(t, "https://deploy.example.com", got)
	})

	t.Run("空地址报错", func(t *testing.T) {
		_, err := normalizeBaseURL("   ")
		assert.Error(t, err)
	})
}

// newTestClient 构造指向测试服务器的客户端
func newTestClient(t *testing.T, handler http.HandlerFunc) PlatformClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewPlatformClient(server.URL, "test-token")
	require.NoError(t, err)
	return client
}

func TestAPIClientAuth(t *testing.T) {
	t.Run("请求带 Bearer 令牌和 JSON Accept 头", func(t *testing.T) {
		var gotAuth, gotAccept string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotAccept = r.Header.Get("Accept")
			w.Write([]byte("[]"))
		})

		_, err := client.ListProjects(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Bearer test-token", gotAuth)
		assert.Equal(t, "application/json", gotAccept)
	})

	t.Run("令牌为空时不发请求直接报错", func(t *testing.T) {
		called := false
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
		}))
		t.Cleanup(server.Close)

		client, err := NewPlatformClient(server.URL, "")
		require.NoError(t, err)

		_, err = client.ListProjects(context.Background())
		assert.Error(t, err)
		assert.False(t, called)
	})
}

func TestAPIClientListShapes(t *testing.T) {
	t.Run("裸数组形态", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/applications", r.URL.Path)
			w.Write([]byte(`[{"uuid":"a1","name":"web"}]`))
		})

		apps, err := client.ListApplications(context.Background())
		require.NoError(t, err)
		require.Len(t, apps, 1)
		assert.Equal(t, "web", apps[0].Name)
	})

	t.Run("data 包裹形态", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"data":[{"uuid":"s1","name":"minio"}]}`))
		})

		services, err := client.ListServices(context.Background())
		require.NoError(t, err)
		require.Len(t, services, 1)
		assert.Equal(t, "minio", services[0].Name)
	})

	t.Run("deployments 包裹形态", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/api/v1/applications/a1/deployments", r.URL.Path)
			w.Write([]byte(`{"deployments":[{"deployment_uuid":"dep-1","status":"finished"}]}`))
		})

		deployments, err := client.ListDeployments(context.Background(), "a1")
		require.NoError(t, err)
		require.Len(t, deployments, 1)
		assert.Equal(t, "dep-1", deployments[0].DeploymentUUID)
	})

	t.Run("null 响应归一化为空列表", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`null`))
		})

		dbs, err := client.ListDatabases(context.Background())
		require.NoError(t, err)
		assert.Empty(t, dbs)
	})
}

func TestAPIClientFlexibleIDs(t *testing.T) {
	t.Run("数字和字符串 ID 都能解码", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[{"id":1,"name":"alpha"},{"id":"proj-2","name":"beta"},{"id":null,"name":"gamma"}]`))
		})

		projects, err := client.ListProjects(context.Background())
		require.NoError(t, err)
		require.Len(t, projects, 3)
		assert.Equal(t, "1", projects[0].ID.String())
		assert.Equal(t, "proj-2", projects[1].ID.String())
		assert.True(t, projects[2].ID.IsZero())
	})
}

func TestAPIClientDeploy(t *testing.T) {
	t.Run("部署走查询参数", func(t *testing.T) {
		var gotPath, gotUUID, gotForce string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotUUID = r.URL.Query().Get("uuid")
			gotForce = r.URL.Query().Get("force")
			w.Write([]byte(`{"message":"queued"}`))
		})

		err := client.Deploy(context.Background(), "a1", true)
		require.NoError(t, err)
		assert.Equal(t, "/api/v1/deploy", gotPath)
		assert.Equal(t, "a1", gotUUID)
		assert.Equal(t, "true", gotForce)
	})

	t.Run("不强制时省略 force 参数", func(t *testing.T) {
		var gotForce string
		var hasForce bool
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotForce = r.URL.Query().Get("force")
			_, hasForce = r.URL.Query()["force"]
			w.Write([]byte(`{}`))
		})

		err := client.Deploy(context.Background(), "a1", false)
		require.NoError(t, err)
		assert.False(t, hasForce)
		assert.Equal(t, "", gotForce)
	})
}

func TestAPIClientLogs(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/applications/a1/logs", r.URL.Path)
		assert.Equal(t, "200", r.URL.Query().Get("lines"))
		w.Write([]byte(`{"logs":"line1\nline2"}`))
	})

	logs, err := client.GetApplicationLogs(context.Background(), "a1", 200)
	require.NoError(t, err)
	assert.Equal(t, "line1\nline2", logs)
}

func TestAPIClientErrors(t *testing.T) {
	t.Run("非 2xx 状态码带响应摘要", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message":"Unauthenticated"}`))
		})

		_, err := client.ListProjects(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "401")
		assert.Contains(t, err.Error(), "Unauthenticated")
	})

	t.Run("响应既不是数组也不是包裹对象", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`"surprise"`))
		})

		_, err := client.ListProjects(context.Background())
		assert.Error(t, err)
	})
}
