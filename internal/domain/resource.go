package domain

// Project 表示部署平台上的一个项目
type Project struct {
	ID           FlexID        `json:"id"`                     // 项目 ID（数字或 UUID）
	UUID         string        `json:"uuid,omitempty"`         // 项目 UUID（用于控制台 URL）
	Name         string        `json:"name"`                   // 项目名称
	Description  string        `json:"description,omitempty"`  // 项目描述
	Environments []Environment `json:"environments,omitempty"` // 内嵌的环境列表（部分接口返回）
}

// Environment 表示一个部署环境（如 production、staging）
// 展平后会带上所属项目的上下文信息
type Environment struct {
	ID          FlexID `json:"id"`                     // 环境 ID
	UUID        string `json:"uuid,omitempty"`         // 环境 UUID
	Name        string `json:"name"`                   // 环境名称（缺失时默认 "Unnamed Environment"）
	ProjectID   FlexID `json:"project_id,omitempty"`   // 所属项目的规范 ID
	ProjectUUID string `json:"project_uuid,omitempty"` // 所属项目 UUID（原样保留，用于 URL 构造）
	ProjectName string `json:"project_name,omitempty"` // 所属项目名称
	CreatedAt   string `json:"created_at,omitempty"`   // 创建时间
}

// Application 表示一个应用（Git 部署的服务）
type Application struct {
	ID            FlexID `json:"id"`
	UUID          string `json:"uuid,omitempty"`
	Name          string `json:"name"`
	FQDN          string `json:"fqdn,omitempty"`           // 域名，可能是逗号分隔的多个
	GitRepository string `json:"git_repository,omitempty"` // Git 仓库地址
	GitBranch     string `json:"git_branch,omitempty"`     // 部署分支
	BuildPack     string `json:"build_pack,omitempty"`     // 构建方式
	EnvironmentID FlexID `json:"environment_id,omitempty"` // 所属环境 ID
	Status        string `json:"status,omitempty"`         // 运行状态（如 running:healthy）
}

// Service 表示一个一键服务（compose 栈）
type Service struct {
	ID            FlexID `json:"id"`
	UUID          string `json:"uuid,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	ServiceType   string `json:"service_type,omitempty"` // 服务类型标签（如 plausible, minio）
	EnvironmentID FlexID `json:"environment_id,omitempty"`
	Status        string `json:"status,omitempty"`
}

// Database 表示一个托管数据库实例
type Database struct {
	ID            FlexID `json:"id"`
	UUID          string `json:"uuid,omitempty"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	DatabaseType  string `json:"database_type,omitempty"` // 数据库类型标签（如 postgresql, redis）
	Image         string `json:"image,omitempty"`         // 镜像（部分版本的 API 用镜像表示类型）
	EnvironmentID FlexID `json:"environment_id,omitempty"`
	Status        string `json:"status,omitempty"`
}
