package service

import (
	"context"

	"github.com/lucksec/deploybot/internal/domain"
)

// PlatformClient 部署平台 API 客户端接口
// 封装对远端部署平台 REST API 的全部访问
type PlatformClient interface {
	// ListProjects 列出所有项目（部分平台版本会内嵌环境列表）
	ListProjects(ctx context.Context) ([]domain.Project, error)

	// GetProject 获取单个项目（含内嵌的环境列表）
	GetProject(ctx context.Context, uuid string) (*domain.Project, error)

	// ListEnvironments 列出指定项目的环境
	ListEnvironments(ctx context.Context, projectUUID string) ([]domain.Environment, error)

	// ListApplications 列出所有应用
	ListApplications(ctx context.Context) ([]domain.Application, error)

	// ListServices 列出所有服务
	ListServices(ctx context.Context) ([]domain.Service, error)

	// ListDatabases 列出所有数据库
	ListDatabases(ctx context.Context) ([]domain.Database, error)

	// ListDeployments 列出指定应用的部署记录
	ListDeployments(ctx context.Context, appUUID string) ([]domain.Deployment, error)

	// GetApplicationLogs 获取指定应用最近的运行日志
	GetApplicationLogs(ctx context.Context, appUUID string, lines int) (string, error)

	// Deploy 按标识符触发部署，force 为 true 时跳过构建缓存强制重建
	Deploy(ctx context.Context, uuid string, force bool) error

	// ListTeams 列出当前令牌可见的团队
	ListTeams(ctx context.Context) ([]domain.Team, error)

	// GetCurrentTeam 获取当前令牌所属的团队
	GetCurrentTeam(ctx context.Context) (*domain.Team, error)

	// ListEnvVars 列出指定应用的环境变量（密钥视图）
	ListEnvVars(ctx context.Context, appUUID string) ([]domain.EnvVar, error)

	// BaseURL 返回平台控制台的根地址（用于构造浏览器深链）
	BaseURL() string
}
