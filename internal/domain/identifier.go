package domain

import (
	"encoding/json"
	"strings"
)

// FlexID 兼容数字和字符串两种形态的标识符
// 远端 API 对不同资源返回的 id 形态不一致（部分是数字自增 id，部分是 UUID 字符串），
// 反序列化时统一转成字符串保存，后续归一化由 resolve 包完成
type FlexID string

// UnmarshalJSON 兼容 null、数字、字符串三种 JSON 形态
func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = ""
		return nil
	}

	// 字符串形态
	if s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexID(v)
		return nil
	}

	// 数字形态（用 json.Number 避免大整数精度丢失）
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// MarshalJSON 序列化为字符串
func (f FlexID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

// String 返回字符串表示
func (f FlexID) String() string {
	return string(f)
}

// IsZero 检查标识符是否为空
func (f FlexID) IsZero() bool {
	return strings.TrimSpace(string(f)) == ""
}
