package resolve

import (
	"strings"

	"github.com/lucksec/deploybot/internal/domain"
)

// subtitleSeparator 副标题各段之间的分隔符
const subtitleSeparator = " · "

// AggregateResources 将应用、服务、数据库三类资源合并为统一条目列表
// 输出顺序为：全部应用、全部服务、全部数据库，各组内保持输入顺序
// （这一步只做拼接，排序是 SortGrouped 的职责）。
// 每个条目的 ID 保证非空：自然标识符全部缺失时使用类型占位符兜底，
// 保证列表渲染键的稳定性
func AggregateResources(apps []domain.Application, services []domain.Service, dbs []domain.Database) []domain.ResourceItem {
	items := make([]domain.ResourceItem, 0, len(apps)+len(services)+len(dbs))

	for _, a := range apps {
		items = append(items, applicationItem(a))
	}
	for _, s := range services {
		items = append(items, serviceItem(s))
	}
	for _, d := range dbs {
		items = append(items, databaseItem(d))
	}

	return items
}

// applicationItem 将应用映射为统一条目
func applicationItem(a domain.Application) domain.ResourceItem {
	return domain.ResourceItem{
		ID:            fallbackID("app", a.ID, a.UUID, a.Name),
		Type:          domain.TypeApplication,
		Name:          a.Name,
		Subtitle:      joinSubtitle(a.GitBranch, PublicURL(a.FQDN)),
		EnvironmentID: Normalize(a.EnvironmentID),
		Repo:          a.GitRepository,
		URL:           PublicURL(a.FQDN),
		Status:        a.Status,
	}
}

// serviceItem 将服务映射为统一条目
func serviceItem(s domain.Service) domain.ResourceItem {
	return domain.ResourceItem{
		ID:            fallbackID("service", s.ID, s.UUID, s.Name),
		Type:          domain.TypeService,
		Name:          s.Name,
		Subtitle:      s.Description,
		EnvironmentID: Normalize(s.EnvironmentID),
		Kind:          s.ServiceType,
		Status:        s.Status,
	}
}

// databaseItem 将数据库映射为统一条目
func databaseItem(d domain.Database) domain.ResourceItem {
	kind := d.DatabaseType
	if kind == "" {
		// 部分版本的 API 只返回镜像名
		kind = d.Image
	}
	return domain.ResourceItem{
		ID:            fallbackID("db", d.ID, d.UUID, d.Name),
		Type:          domain.TypeDatabase,
		Name:          d.Name,
		Subtitle:      d.Description,
		EnvironmentID: Normalize(d.EnvironmentID),
		Kind:          kind,
		Status:        d.Status,
	}
}

// fallbackID 按 id -> uuid -> name 的顺序取规范 ID，
// 全部缺失时退化为类型占位符，保证非空
func fallbackID(placeholder string, candidates ...interface{}) string {
	if id := FirstID(candidates...); id != "" {
		return id
	}
	return placeholder
}

// joinSubtitle 用分隔符拼接副标题各段，空段会被丢弃
func joinSubtitle(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, subtitleSeparator)
}

// PublicURL 从 FQDN 字段推导公网访问地址
// 取逗号分隔的第一段，没有 scheme 时补 https:// 前缀；
// 字段缺失或修剪后为空时返回空字符串
func PublicURL(fqdn string) string {
	fqdn = strings.TrimSpace(fqdn)
	if fqdn == "" {
		return ""
	}

	first := fqdn
	if idx := strings.Index(fqdn, ","); idx >= 0 {
		first = fqdn[:idx]
	}
	first = strings.TrimSpace(first)
	if first == "" {
		return ""
	}

	if !strings.Contains(first, "://") {
		return "https://" + first
	}
	return first
}
