package service

import (
	"net/url"
	"strings"

	"github.com/lucksec/deploybot/internal/domain"
	"github.com/lucksec/deploybot/internal/resolve"
)

// LinkService 浏览器深链构造服务接口
// 把本地资源记录转换成平台控制台的页面地址，供 "open" 和复制类操作使用
type LinkService interface {
	// ProjectURL 项目页地址
	ProjectURL(p domain.Project) string

	// EnvironmentURL 环境页地址（需要展平后带项目上下文的环境记录）
	EnvironmentURL(env domain.Environment) string

	// ResourceURL 资源详情页地址
	ResourceURL(item domain.ResourceItem, env domain.Environment) string
}

// linkService 深链构造实现
type linkService struct {
	baseURL string
}

// NewLinkService 创建深链构造服务
func NewLinkService(client PlatformClient) LinkService {
	return &linkService{baseURL: client.BaseURL()}
}

// ProjectURL 项目页地址
// 路径段优先使用 UUID（控制台路由按 UUID 寻址），没有 UUID 时退回规范 ID
func (l *linkService) ProjectURL(p domain.Project) string {
	segment := strings.TrimSpace(p.UUID)
	if segment == "" {
		segment = resolve.FirstID(p.ID)
	}
	if segment == "" {
		return l.baseURL
	}
	return l.baseURL + "/project/" + url.PathEscape(segment)
}

// EnvironmentURL 环境页地址
func (l *linkService) EnvironmentURL(env domain.Environment) string {
	project := strings.TrimSpace(env.ProjectUUID)
	if project == "" {
		project = resolve.FirstID(env.ProjectID)
	}

	segment := envSegment(env)
	if project == "" || segment == "" {
		return l.baseURL
	}
	return l.baseURL + "/project/" + url.PathEscape(project) + "/environment/" + url.PathEscape(segment)
}

// ResourceURL 资源详情页地址
func (l *linkService) ResourceURL(item domain.ResourceItem, env domain.Environment) string {
	envURL := l.EnvironmentURL(env)
	if envURL == l.baseURL || item.ID == "" {
		return envURL
	}
	return envURL + "/" + string(item.Type) + "/" + url.PathEscape(item.ID)
}

// envSegment 选择环境的路径段：UUID 形态优先，其次规范键
func envSegment(env domain.Environment) string {
	if uuid := strings.TrimSpace(env.UUID); uuid != "" && resolve.IsUUID(uuid) {
		return uuid
	}
	return resolve.EnvKey(env)
}
