package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lucksec/deploybot/internal/domain"
)

// apiClient 部署平台 API 客户端实现
type apiClient struct {
	baseURL    string // 控制台根地址（不带 /api/v1）
	token      string
	httpClient *http.Client
}

// NewPlatformClient 创建部署平台客户端
// baseURL 会被归一化：去掉末尾斜杠和多余的 /api/v1 后缀，缺少 scheme 时补 https://
func NewPlatformClient(baseURL, token string) (PlatformClient, error) {
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	return &apiClient{
		baseURL:    normalized,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// normalizeBaseURL 归一化平台地址
func normalizeBaseURL(baseURL string) (string, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return "", fmt.Errorf("平台地址不能为空")
	}

	if !strings.Contains(baseURL, "://") {
		baseURL = "https://" + baseURL
	}

	baseURL = strings.TrimRight(baseURL, "/")
	// 允许用户把 API 前缀也配进来
	baseURL = strings.TrimSuffix(baseURL, "/api/v1")

	if _, err := url.Parse(baseURL); err != nil {
		return "", fmt.Errorf("平台地址无效: %w", err)
	}

	return baseURL, nil
}

// BaseURL 返回控制台根地址
func (c *apiClient) BaseURL() string {
	return c.baseURL
}

// ListProjects 列出所有项目
func (c *apiClient) ListProjects(ctx context.Context) ([]domain.Project, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/projects", nil)
	if err != nil {
		return nil, fmt.Errorf("获取项目列表失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析项目列表响应失败: %w", err)
	}

	var projects []domain.Project
	if err := json.Unmarshal(list, &projects); err != nil {
		return nil, fmt.Errorf("解析项目列表失败: %w", err)
	}
	return projects, nil
}

// GetProject 获取单个项目（含内嵌环境列表）
func (c *apiClient) GetProject(ctx context.Context, uuid string) (*domain.Project, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/projects/"+url.PathEscape(uuid), nil)
	if err != nil {
		return nil, fmt.Errorf("获取项目失败: %w", err)
	}

	var project domain.Project
	if err := json.Unmarshal(body, &project); err != nil {
		return nil, fmt.Errorf("解析项目响应失败: %w", err)
	}
	return &project, nil
}

// ListEnvironments 列出指定项目的环境
func (c *apiClient) ListEnvironments(ctx context.Context, projectUUID string) ([]domain.Environment, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/projects/"+url.PathEscape(projectUUID)+"/environments", nil)
	if err != nil {
		return nil, fmt.Errorf("获取环境列表失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析环境列表响应失败: %w", err)
	}

	var envs []domain.Environment
	if err := json.Unmarshal(list, &envs); err != nil {
		return nil, fmt.Errorf("解析环境列表失败: %w", err)
	}
	return envs, nil
}

// ListApplications 列出所有应用
func (c *apiClient) ListApplications(ctx context.Context) ([]domain.Application, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/applications", nil)
	if err != nil {
		return nil, fmt.Errorf("获取应用列表失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析应用列表响应失败: %w", err)
	}

	var apps []domain.Application
	if err := json.Unmarshal(list, &apps); err != nil {
		return nil, fmt.Errorf("解析应用列表失败: %w", err)
	}
	return apps, nil
}

// ListServices 列出所有服务
func (c *apiClient) ListServices(ctx context.Context) ([]domain.Service, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/services", nil)
	if err != nil {
		return nil, fmt.Errorf("获取服务列表失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析服务列表响应失败: %w", err)
	}

	var services []domain.Service
	if err := json.Unmarshal(list, &services); err != nil {
		return nil, fmt.Errorf("解析服务列表失败: %w", err)
	}
	return services, nil
}

// ListDatabases 列出所有数据库
func (c *apiClient) ListDatabases(ctx context.Context) ([]domain.Database, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/databases", nil)
	if err != nil {
		return nil, fmt.Errorf("获取数据库列表失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析数据库列表响应失败: %w", err)
	}

	var dbs []domain.Database
	if err := json.Unmarshal(list, &dbs); err != nil {
		return nil, fmt.Errorf("解析数据库列表失败: %w", err)
	}
	return dbs, nil
}

// ListDeployments 列出指定应用的部署记录
func (c *apiClient) ListDeployments(ctx context.Context, appUUID string) ([]domain.Deployment, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/applications/"+url.PathEscape(appUUID)+"/deployments", nil)
	if err != nil {
		return nil, fmt.Errorf("获取部署记录失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析部署记录响应失败: %w", err)
	}

	var deployments []domain.Deployment
	if err := json.Unmarshal(list, &deployments); err != nil {
		return nil, fmt.Errorf("解析部署记录失败: %w", err)
	}
	return deployments, nil
}

// GetApplicationLogs 获取指定应用最近的运行日志
func (c *apiClient) GetApplicationLogs(ctx context.Context, appUUID string, lines int) (string, error) {
	query := url.Values{}
	if lines > 0 {
		query.Set("lines", strconv.Itoa(lines))
	}

	body, err := c.callAPI(ctx, http.MethodGet, "/applications/"+url.PathEscape(appUUID)+"/logs", query)
	if err != nil {
		return "", fmt.Errorf("获取应用日志失败: %w", err)
	}

	var response struct {
		Logs string `json:"logs"`
	}
	if err := json.Unmarshal(body, &response); err != nil {
		return "", fmt.Errorf("解析日志响应失败: %w", err)
	}
	return response.Logs, nil
}

// Deploy 按标识符触发部署
// 相对于列表数据这是 fire-and-forget：不会使已缓存的列表结果失效，
// 界面可能在下一次自然刷新前显示旧状态
func (c *apiClient) Deploy(ctx context.Context, uuid string, force bool) error {
	query := url.Values{}
	query.Set("uuid", uuid)
	if force {
		query.Set("force", "true")
	}

	if _, err := c.callAPI(ctx, http.MethodGet, "/deploy", query); err != nil {
		return fmt.Errorf("触发部署失败: %w", err)
	}
	return nil
}

// ListTeams 列出当前令牌可见的团队
func (c *apiClient) ListTeams(ctx context.Context) ([]domain.Team, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/teams", nil)
	if err != nil {
		return nil, fmt.Errorf("获取团队列表失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析团队列表响应失败: %w", err)
	}

	var teams []domain.Team
	if err := json.Unmarshal(list, &teams); err != nil {
		return nil, fmt.Errorf("解析团队列表失败: %w", err)
	}
	return teams, nil
}

// GetCurrentTeam 获取当前令牌所属的团队
func (c *apiClient) GetCurrentTeam(ctx context.Context) (*domain.Team, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/teams/current", nil)
	if err != nil {
		return nil, fmt.Errorf("获取当前团队失败: %w", err)
	}

	var team domain.Team
	if err := json.Unmarshal(body, &team); err != nil {
		return nil, fmt.Errorf("解析团队响应失败: %w", err)
	}
	return &team, nil
}

// ListEnvVars 列出指定应用的环境变量
func (c *apiClient) ListEnvVars(ctx context.Context, appUUID string) ([]domain.EnvVar, error) {
	body, err := c.callAPI(ctx, http.MethodGet, "/applications/"+url.PathEscape(appUUID)+"/envs", nil)
	if err != nil {
		return nil, fmt.Errorf("获取环境变量失败: %w", err)
	}

	list, err := unwrapList(body)
	if err != nil {
		return nil, fmt.Errorf("解析环境变量响应失败: %w", err)
	}

	var vars []domain.EnvVar
	if err := json.Unmarshal(list, &vars); err != nil {
		return nil, fmt.Errorf("解析环境变量失败: %w", err)
	}
	return vars, nil
}

// callAPI 调用平台 API
func (c *apiClient) callAPI(ctx context.Context, method, path string, query url.Values) ([]byte, error) {
	if c.token == "" {
		return nil, fmt.Errorf("未配置平台 API 令牌")
	}

	fullURL := c.baseURL + "/api/v1" + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("创建请求失败: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("请求失败: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("读取响应失败: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API 返回错误: %d, %s", resp.StatusCode, excerpt(body))
	}

	return body, nil
}

// unwrapList 在边界处把可能被包裹的列表响应归一化为裸数组
// 远端 API 的列表响应有三种形态：裸数组、{"data": [...]}、{"deployments": [...]}，
// 这一步把形态上的不确定性隔离在传输层，核心逻辑只看到统一形态
func unwrapList(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return json.RawMessage("[]"), nil
	}

	// 裸数组形态
	if trimmed[0] == '[' {
		return json.RawMessage(trimmed), nil
	}

	// 包裹对象形态
	var wrapper struct {
		Data        json.RawMessage `json:"data"`
		Deployments json.RawMessage `json:"deployments"`
	}
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, fmt.Errorf("响应既不是数组也不是包裹对象: %w", err)
	}

	if len(wrapper.Data) > 0 && string(wrapper.Data) != "null" {
		return wrapper.Data, nil
	}
	if len(wrapper.Deployments) > 0 && string(wrapper.Deployments) != "null" {
		return wrapper.Deployments, nil
	}
	return json.RawMessage("[]"), nil
}

// excerpt 截取响应体前 200 字节用于错误信息
func excerpt(body []byte) string {
	const limit = 200
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
