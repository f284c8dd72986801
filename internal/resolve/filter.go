package resolve

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/lucksec/deploybot/internal/domain"
)

// FilterAll 表示不过滤的令牌
const FilterAll = "all"

// 类型排序权重：application < service < database < 未知
var typeRank = map[domain.ResourceType]int{
	domain.TypeApplication: 1,
	domain.TypeService:     2,
	domain.TypeDatabase:    3,
}

const unknownTypeRank = 99

// FilterItems 按单个过滤令牌筛选统一资源条目
// 令牌语法（封闭集合，按前缀分发）:
//
//	all               不过滤，原样返回
//	project:<id>      保留所属环境映射到该项目 ID 的条目（环境没有项目映射的条目会被丢弃）
//	env:<name>        保留环境键在该名称对应集合中的条目（名称不存在时结果为空，不是全量）
//	type:<kind>       保留类型完全等于 <kind> 的条目（区分大小写）
//	status:<x>        保留运行状态以 <x> 开头的条目（平台状态形如 running:healthy）
//
// 其他任何令牌都按 all 处理（防御性默认，不报错）
func FilterItems(items []domain.ResourceItem, token string, envProject map[string]string, envNameToIDs map[string]map[string]struct{}) []domain.ResourceItem {
	switch {
	case token == FilterAll:
		return items

	case strings.HasPrefix(token, "project:"):
		id := strings.TrimPrefix(token, "project:")
		kept := make([]domain.ResourceItem, 0, len(items))
		for _, it := range items {
			pid := envProject[it.EnvironmentID]
			if pid != "" && pid == id {
				kept = append(kept, it)
			}
		}
		return kept

	case strings.HasPrefix(token, "env:"):
		name := strings.TrimPrefix(token, "env:")
		ids, ok := envNameToIDs[name]
		if !ok {
			// 未知环境名：结果为空，而不是退化为全量
			return []domain.ResourceItem{}
		}
		kept := make([]domain.ResourceItem, 0, len(items))
		for _, it := range items {
			if _, in := ids[it.EnvironmentID]; in {
				kept = append(kept, it)
			}
		}
		return kept

	case strings.HasPrefix(token, "type:"):
		kind := strings.TrimPrefix(token, "type:")
		kept := make([]domain.ResourceItem, 0, len(items))
		for _, it := range items {
			if string(it.Type) == kind {
				kept = append(kept, it)
			}
		}
		return kept

	case strings.HasPrefix(token, "status:"):
		status := strings.TrimPrefix(token, "status:")
		kept := make([]domain.ResourceItem, 0, len(items))
		for _, it := range items {
			if strings.HasPrefix(it.Status, status) {
				kept = append(kept, it)
			}
		}
		return kept

	default:
		return items
	}
}

// SortGrouped 对统一资源条目做稳定多键排序（就地排序）
// 排序键依次为：所属项目显示名、环境显示名、类型权重、条目名称；
// 字符串比较使用区域感知的排序器，全部相等时保持聚合顺序
func SortGrouped(items []domain.ResourceItem, envIndex map[string]domain.Environment) {
	c := collate.New(language.Und)

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		ea := envIndex[a.EnvironmentID]
		eb := envIndex[b.EnvironmentID]

		if r := c.CompareString(ea.ProjectName, eb.ProjectName); r != 0 {
			return r < 0
		}
		if r := c.CompareString(ea.Name, eb.Name); r != 0 {
			return r < 0
		}
		if ra, rb := rankOf(a.Type), rankOf(b.Type); ra != rb {
			return ra < rb
		}
		return c.CompareString(a.Name, b.Name) < 0
	})
}

// rankOf 返回类型的排序权重，未知类型排在最后
func rankOf(t domain.ResourceType) int {
	if r, ok := typeRank[t]; ok {
		return r
	}
	return unknownTypeRank
}
