package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/lucksec/deploybot/internal/domain"
	"github.com/lucksec/deploybot/internal/logger"
	"github.com/lucksec/deploybot/internal/repository"
	"github.com/lucksec/deploybot/internal/resolve"
)

// ResourceView 聚合资源视图
// Items 已按过滤令牌筛选并完成分组排序，索引随视图一起返回，
// 供渲染层查显示名和构造 URL
type ResourceView struct {
	Items        []domain.ResourceItem          // 过滤排序后的统一条目
	EnvIndex     map[string]domain.Environment  // 环境键 -> 完整环境记录
	EnvProject   map[string]string              // 环境键 -> 项目规范 ID
	EnvNameToIDs map[string]map[string]struct{} // 环境名 -> 环境键集合
	Stale        bool                           // 任一上游集合来自过期缓存
}

// ResourceService 资源视图服务接口
type ResourceService interface {
	// GroupedResources 获取过滤并排序后的聚合资源视图
	// token 为空时等同于 "all"
	GroupedResources(ctx context.Context, token string) (*ResourceView, error)

	// Projects 获取项目列表（缓存）
	Projects(ctx context.Context) ([]domain.Project, bool, error)

	// Environments 获取全部环境（由项目树展平，带项目上下文）
	Environments(ctx context.Context) ([]domain.Environment, bool, error)

	// Deployments 获取指定应用的部署记录（缓存）
	Deployments(ctx context.Context, appUUID string) ([]domain.Deployment, bool, error)

	// Teams 获取团队列表（缓存）
	Teams(ctx context.Context) ([]domain.Team, bool, error)

	// EnvVars 获取指定应用的环境变量（密钥不缓存，每次直连）
	EnvVars(ctx context.Context, appUUID string) ([]domain.EnvVar, error)

	// ApplicationLogs 获取指定应用最近的运行日志
	ApplicationLogs(ctx context.Context, appUUID string, lines int) (string, error)

	// Redeploy 触发重新部署
	// 相对于列表缓存是 fire-and-forget：不使缓存失效，状态等下次自然刷新
	Redeploy(ctx context.Context, uuid string, force bool) error

	// Invalidate 清空全部列表缓存，下次访问重新拉取
	Invalidate()
}

// resourceService 资源视图服务实现
type resourceService struct {
	client PlatformClient
	repo   repository.ResourceRepository
	log    logger.Logger
}

// NewResourceService 创建资源视图服务
func NewResourceService(client PlatformClient, repo repository.ResourceRepository) ResourceService {
	return &resourceService{
		client: client,
		repo:   repo,
		log:    logger.GetLogger(),
	}
}

// GroupedResources 获取过滤并排序后的聚合资源视图
// 四个上游集合并行抓取、互不等待；个别集合抓取失败时按空集合降级
// （派生索引保持确定性，下一次刷新会补齐），全部失败才返回错误
func (s *resourceService) GroupedResources(ctx context.Context, token string) (*ResourceView, error) {
	var (
		projects []domain.Project
		apps     []domain.Application
		services []domain.Service
		dbs      []domain.Database

		pStale, aStale, sStale, dStale bool
		pErr, aErr, sErr, dErr         error
	)

	g := new(errgroup.Group)
	g.Go(func() error {
		projects, pStale, pErr = s.repo.Projects(ctx)
		return nil
	})
	g.Go(func() error {
		apps, aStale, aErr = s.repo.Applications(ctx)
		return nil
	})
	g.Go(func() error {
		services, sStale, sErr = s.repo.Services(ctx)
		return nil
	})
	g.Go(func() error {
		dbs, dStale, dErr = s.repo.Databases(ctx)
		return nil
	})
	_ = g.Wait()

	if pErr != nil && aErr != nil && sErr != nil && dErr != nil {
		return nil, fmt.Errorf("获取平台资源失败: %w", pErr)
	}
	for _, e := range []error{pErr, aErr, sErr, dErr} {
		if e != nil {
			s.log.Warn("部分资源抓取失败，先用已有数据渲染: %v", e)
		}
	}

	envs := resolve.FlattenEnvironments(projects)
	envIndex := resolve.BuildEnvIndex(envs)
	envProject := resolve.BuildEnvProjectIndex(envs)
	envNameToIDs := resolve.BuildEnvNameToIDs(envs)

	if token == "" {
		token = resolve.FilterAll
	}

	items := resolve.AggregateResources(apps, services, dbs)
	items = resolve.FilterItems(items, token, envProject, envNameToIDs)
	resolve.SortGrouped(items, envIndex)

	return &ResourceView{
		Items:        items,
		EnvIndex:     envIndex,
		EnvProject:   envProject,
		EnvNameToIDs: envNameToIDs,
		Stale:        pStale || aStale || sStale || dStale,
	}, nil
}

// Projects 获取项目列表
func (s *resourceService) Projects(ctx context.Context) ([]domain.Project, bool, error) {
	return s.repo.Projects(ctx)
}

// Environments 获取全部环境（展平后带项目上下文）
func (s *resourceService) Environments(ctx context.Context) ([]domain.Environment, bool, error) {
	projects, stale, err := s.repo.Projects(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("获取环境列表失败: %w", err)
	}
	return resolve.FlattenEnvironments(projects), stale, nil
}

// Deployments 获取指定应用的部署记录
func (s *resourceService) Deployments(ctx context.Context, appUUID string) ([]domain.Deployment, bool, error) {
	return s.repo.Deployments(ctx, appUUID)
}

// Teams 获取团队列表
func (s *resourceService) Teams(ctx context.Context) ([]domain.Team, bool, error) {
	return s.repo.Teams(ctx)
}

// EnvVars 获取指定应用的环境变量（不走缓存）
func (s *resourceService) EnvVars(ctx context.Context, appUUID string) ([]domain.EnvVar, error) {
	return s.client.ListEnvVars(ctx, appUUID)
}

// ApplicationLogs 获取指定应用最近的运行日志
func (s *resourceService) ApplicationLogs(ctx context.Context, appUUID string, lines int) (string, error) {
	return s.client.GetApplicationLogs(ctx, appUUID, lines)
}

// Redeploy 触发重新部署
func (s *resourceService) Redeploy(ctx context.Context, uuid string, force bool) error {
	if err := s.client.Deploy(ctx, uuid, force); err != nil {
		return err
	}
	s.log.Info("已触发部署: uuid=%s force=%v", uuid, force)
	return nil
}

// Invalidate 清空全部列表缓存
func (s *resourceService) Invalidate() {
	s.repo.Invalidate()
}
