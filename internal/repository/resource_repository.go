package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lucksec/deploybot/internal/domain"
	"github.com/lucksec/deploybot/internal/logger"
)

// PlatformLister 平台列表接口（避免循环依赖，只声明仓库需要的读方法）
type PlatformLister interface {
	ListProjects(ctx context.Context) ([]domain.Project, error)
	ListApplications(ctx context.Context) ([]domain.Application, error)
	ListServices(ctx context.Context) ([]domain.Service, error)
	ListDatabases(ctx context.Context) ([]domain.Database, error)
	ListDeployments(ctx context.Context, appUUID string) ([]domain.Deployment, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)
}

// ResourceRepository 资源仓库接口
// 对每类集合维护一份带过期时间的缓存：读取返回最近一次成功的数据和
// 一个陈旧标记，而不是阻塞等待刷新；刷新失败时保留上一次的数据
type ResourceRepository interface {
	// Projects 获取项目列表，stale 表示返回的是过期数据（后台正在刷新）
	Projects(ctx context.Context) (projects []domain.Project, stale bool, err error)

	// Applications 获取应用列表
	Applications(ctx context.Context) ([]domain.Application, bool, error)

	// Services 获取服务列表
	Services(ctx context.Context) ([]domain.Service, bool, error)

	// Databases 获取数据库列表
	Databases(ctx context.Context) ([]domain.Database, bool, error)

	// Deployments 获取指定应用的部署记录
	Deployments(ctx context.Context, appUUID string) ([]domain.Deployment, bool, error)

	// Teams 获取团队列表
	Teams(ctx context.Context) ([]domain.Team, bool, error)

	// Invalidate 丢弃全部缓存条目
	Invalidate()
}

// cacheEntry 缓存条目：最近一次成功的数据 + 抓取时间 + 刷新中标记
type cacheEntry struct {
	value     interface{}
	fetchedAt time.Time
	inflight  bool
}

// resourceRepository 资源仓库实现
type resourceRepository struct {
	client PlatformLister
	ttl    time.Duration

	mu      sync.RWMutex
	entries map[string]*cacheEntry
}

// DefaultCacheTTL 缓存默认过期时间
const DefaultCacheTTL = 60 * time.Second

// refreshTimeout 后台刷新的超时时间
const refreshTimeout = 30 * time.Second

// NewResourceRepository 创建资源仓库实例
// ttl 为 0 时使用默认过期时间
func NewResourceRepository(client PlatformLister, ttl time.Duration) ResourceRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &resourceRepository{
		client:  client,
		ttl:     ttl,
		entries: make(map[string]*cacheEntry),
	}
}

// get 通用缓存读取路径
// 无缓存时同步抓取；缓存未过期时直接返回；缓存过期时返回旧值并触发
// 一次后台刷新（同一键同时只有一个刷新在途）
func (r *resourceRepository) get(ctx context.Context, key string, fetch func(context.Context) (interface{}, error)) (interface{}, bool, error) {
	r.mu.RLock()
	entry, ok := r.entries[key]
	if ok && time.Since(entry.fetchedAt) < r.ttl {
		value := entry.value
		r.mu.RUnlock()
		return value, false, nil
	}
	r.mu.RUnlock()

	// 没有任何可用数据：同步抓取
	if !ok {
		value, err := fetch(ctx)
		if err != nil {
			return nil, false, err
		}
		r.mu.Lock()
		r.entries[key] = &cacheEntry{value: value, fetchedAt: time.Now()}
		r.mu.Unlock()
		return value, false, nil
	}

	// 有过期数据：返回旧值，触发后台刷新
	r.mu.Lock()
	stale := entry.value
	if !entry.inflight {
		entry.inflight = true
		go r.refresh(key, fetch)
	}
	r.mu.Unlock()

	return stale, true, nil
}

// refresh 后台刷新一个缓存键
// 刷新失败时保留上一次成功的数据（陈旧但一致）
func (r *resourceRepository) refresh(key string, fetch func(context.Context) (interface{}, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	value, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[key]
	if !ok {
		// Invalidate 在刷新期间清掉了缓存，丢弃本次结果
		return
	}
	entry.inflight = false

	if err != nil {
		logger.GetLogger().Warn("刷新缓存 %s 失败，继续使用旧数据: %v", key, err)
		return
	}

	entry.value = value
	entry.fetchedAt = time.Now()
}

// Projects 获取项目列表
func (r *resourceRepository) Projects(ctx context.Context) ([]domain.Project, bool, error) {
	value, stale, err := r.get(ctx, "projects", func(ctx context.Context) (interface{}, error) {
		return r.client.ListProjects(ctx)
	})
	if err != nil {
		return nil, false, err
	}
	projects, _ := value.([]domain.Project)
	return projects, stale, nil
}

// Applications 获取应用列表
func (r *resourceRepository) Applications(ctx context.Context) ([]domain.Application, bool, error) {
	value, stale, err := r.get(ctx, "applications", func(ctx context.Context) (interface{}, error) {
		return r.client.ListApplications(ctx)
	})
	if err != nil {
		return nil, false, err
	}
	apps, _ := value.([]domain.Application)
	return apps, stale, nil
}

// Services 获取服务列表
func (r *resourceRepository) Services(ctx context.Context) ([]domain.Service, bool, error) {
	value, stale, err := r.get(ctx, "services", func(ctx context.Context) (interface{}, error) {
		return r.client.ListServices(ctx)
	})
	if err != nil {
		return nil, false, err
	}
	services, _ := value.([]domain.Service)
	return services, stale, nil
}

// Databases 获取数据库列表
func (r *resourceRepository) Databases(ctx context.Context) ([]domain.Database, bool, error) {
	value, stale, err := r.get(ctx, "databases", func(ctx context.Context) (interface{}, error) {
		return r.client.ListDatabases(ctx)
	})
	if err != nil {
		return nil, false, err
	}
	dbs, _ := value.([]domain.Database)
	return dbs, stale, nil
}

// Deployments 获取指定应用的部署记录
func (r *resourceRepository) Deployments(ctx context.Context, appUUID string) ([]domain.Deployment, bool, error) {
	key := fmt.Sprintf("deployments:%s", appUUID)
	value, stale, err := r.get(ctx, key, func(ctx context.Context) (interface{}, error) {
		return r.client.ListDeployments(ctx, appUUID)
	})
	if err != nil {
		return nil, false, err
	}
	deployments, _ := value.([]domain.Deployment)
	return deployments, stale, nil
}

// Teams 获取团队列表
func (r *resourceRepository) Teams(ctx context.Context) ([]domain.Team, bool, error) {
	value, stale, err := r.get(ctx, "teams", func(ctx context.Context) (interface{}, error) {
		return r.client.ListTeams(ctx)
	})
	if err != nil {
		return nil, false, err
	}
	teams, _ := value.([]domain.Team)
	return teams, stale, nil
}

// Invalidate 丢弃全部缓存条目
func (r *resourceRepository) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = make(map[string]*cacheEntry)
}
