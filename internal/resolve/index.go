package resolve

import (
	"strings"

	"github.com/lucksec/deploybot/internal/domain"
)

// EnvKey 计算环境的规范键：id 优先，其次 uuid
// 两者都缺失时返回空字符串，表示该环境无法被索引
func EnvKey(e domain.Environment) string {
	return FirstID(e.ID, e.UUID)
}

// BuildEnvProjectIndex 构建 环境键 -> 项目规范 ID 的索引
// 没有规范键的环境会被跳过（无法参与过滤和关联，这是刻意的策略）；
// 重复键以后写入的为准
func BuildEnvProjectIndex(envs []domain.Environment) map[string]string {
	index := make(map[string]string, len(envs))
	for _, e := range envs {
		key := EnvKey(e)
		if key == "" {
			continue
		}
		index[key] = FirstID(e.ProjectID, e.ProjectUUID)
	}
	return index
}

// BuildEnvNameIndex 构建 环境键 -> 显示名称 的索引
func BuildEnvNameIndex(envs []domain.Environment) map[string]string {
	index := make(map[string]string, len(envs))
	for _, e := range envs {
		key := EnvKey(e)
		if key == "" {
			continue
		}
		index[key] = displayName(e)
	}
	return index
}

// BuildEnvIndex 构建 环境键 -> 完整环境记录 的索引
// 这是信息最全的索引，同时需要 ID 和名称/URL 上下文的场景都用它
func BuildEnvIndex(envs []domain.Environment) map[string]domain.Environment {
	index := make(map[string]domain.Environment, len(envs))
	for _, e := range envs {
		key := EnvKey(e)
		if key == "" {
			continue
		}
		index[key] = e
	}
	return index
}

// BuildEnvNameToIDs 构建 显示名称 -> 环境键集合 的多值索引
// 环境名称在不同项目间可能重复，按名称过滤时需要合并所有同名环境
func BuildEnvNameToIDs(envs []domain.Environment) map[string]map[string]struct{} {
	index := make(map[string]map[string]struct{})
	for _, e := range envs {
		key := EnvKey(e)
		if key == "" {
			continue
		}
		name := displayName(e)
		ids, ok := index[name]
		if !ok {
			ids = make(map[string]struct{})
			index[name] = ids
		}
		ids[key] = struct{}{}
	}
	return index
}

// displayName 返回环境的显示名称，缺失时用默认名兜底
func displayName(e domain.Environment) string {
	name := strings.TrimSpace(e.Name)
	if name == "" {
		return UnnamedEnvironment
	}
	return name
}
