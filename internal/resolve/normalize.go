// Package resolve 负责把远端 API 返回的异构标识符和嵌套结构
// 归一化为稳定的查找结构，供过滤、分组和 URL 构造使用。
package resolve

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/lucksec/deploybot/internal/domain"
)

// Normalize 将异构标识符归一化为规范字符串
// 接受 nil、字符串、数字、domain.FlexID 等形态；nil 或修剪后为空的值统一返回空字符串。
// 全函数不会失败，且幂等：Normalize(Normalize(v)) == Normalize(v)
func Normalize(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(t)
	case domain.FlexID:
		return strings.TrimSpace(string(t))
	case json.Number:
		return strings.TrimSpace(t.String())
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		// JSON 数字默认解码为 float64，整数值不保留小数部分
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}

// FirstID 按给定的优先级顺序返回第一个非空的规范标识符
// 全部为空时返回空字符串
func FirstID(candidates ...interface{}) string {
	for _, c := range candidates {
		if id := Normalize(c); id != "" {
			return id
		}
	}
	return ""
}

// IsUUID 检查标识符是否为 UUID 形态
// 用于区分数字自增 id 和 UUID，控制台 URL 的路径段优先使用 UUID
func IsUUID(s string) bool {
	return uuid.Validate(s) == nil
}
