package resolve

import (
	"strings"

	"github.com/lucksec/deploybot/internal/domain"
)

const (
	// UnnamedProject 项目名称缺失时的默认显示名
	UnnamedProject = "Unnamed Project"

	// UnnamedEnvironment 环境名称缺失时的默认显示名
	UnnamedEnvironment = "Unnamed Environment"
)

// FlattenEnvironments 将项目树中内嵌的环境列表展平为一维环境列表
// 每条环境记录会带上所属项目的规范 ID、UUID 和显示名称。
// 项目自身的规范 ID 优先于环境记录内嵌的项目引用；仅当项目没有任何可用
// 标识符时，才回退到环境自己携带的 project_id/project_uuid 字段。
// 输出顺序保持输入的项目顺序和项目内的环境顺序，不会失败：
// 缺失的名称和 ID 均退化为默认值而不是报错。
func FlattenEnvironments(projects []domain.Project) []domain.Environment {
	envs := make([]domain.Environment, 0)

	for _, p := range projects {
		projectID := FirstID(p.ID, p.UUID)
		projectName := strings.TrimSpace(p.Name)
		if projectName == "" {
			projectName = UnnamedProject
		}

		for _, e := range p.Environments {
			env := e

			if projectID != "" {
				env.ProjectID = domain.FlexID(projectID)
			} else {
				// 项目没有可用标识符时，回退到环境内嵌的项目引用
				env.ProjectID = domain.FlexID(FirstID(e.ProjectID, e.ProjectUUID))
			}

			// 项目 UUID 原样保留（用于控制台 URL，不参与查找）
			if p.UUID != "" {
				env.ProjectUUID = p.UUID
			}
			env.ProjectName = projectName

			if strings.TrimSpace(env.Name) == "" {
				env.Name = UnnamedEnvironment
			}

			envs = append(envs, env)
		}
	}

	return envs
}
