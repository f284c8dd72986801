package domain

// Deployment 表示一次部署记录
type Deployment struct {
	ID              FlexID `json:"id"`
	DeploymentUUID  string `json:"deployment_uuid,omitempty"` // 部署 UUID（用于日志查询）
	ApplicationName string `json:"application_name,omitempty"`
	Status          string `json:"status,omitempty"` // 状态：queued, in_progress, finished, failed
	Commit          string `json:"commit,omitempty"`
	CommitMessage   string `json:"commit_message,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
	FinishedAt      string `json:"finished_at,omitempty"`
}

// Team 表示平台上的一个团队
type Team struct {
	ID           FlexID `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	PersonalTeam bool   `json:"personal_team,omitempty"` // 是否为个人团队
}

// EnvVar 表示应用的一个环境变量（密钥视图）
type EnvVar struct {
	UUID        string `json:"uuid,omitempty"`
	Key         string `json:"key"`
	Value       string `json:"value,omitempty"`
	IsBuildTime bool   `json:"is_build_time,omitempty"` // 是否构建期变量
	IsPreview   bool   `json:"is_preview,omitempty"`    // 是否预览环境变量
}
