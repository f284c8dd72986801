package domain

// ResourceType 统一资源条目的类型标签（封闭集合）
type ResourceType string

const (
	TypeApplication ResourceType = "application"
	TypeService     ResourceType = "service"
	TypeDatabase    ResourceType = "database"
)

// ResourceItem 统一的资源条目
// 应用、服务、数据库三类资源聚合成同一种形态，供过滤、排序和列表渲染使用
type ResourceItem struct {
	ID            string       `json:"id"`                       // 规范 ID，保证非空（全部缺失时退化为类型占位符）
	Type          ResourceType `json:"type"`                     // 资源类型
	Name          string       `json:"name"`                     // 显示名称
	Subtitle      string       `json:"subtitle,omitempty"`       // 副标题（按类型组合）
	EnvironmentID string       `json:"environment_id,omitempty"` // 所属环境的规范 ID，缺失时为空字符串
	Repo          string       `json:"repo,omitempty"`           // Git 仓库（仅应用）
	Kind          string       `json:"kind,omitempty"`           // 子类型标签（服务/数据库）
	URL           string       `json:"url,omitempty"`            // 公网访问地址（仅应用，由 FQDN 推导）
	Status        string       `json:"status,omitempty"`         // 运行状态原文
}
