package resolve

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lucksec/deploybot/internal/domain"
)

func TestNormalize(t *testing.T) {
	t.Run("nil 返回空字符串", func(t *testing.T) {
		assert.Equal(t, "", Normalize(nil))
	})

	t.Run("字符串会被修剪", func(t *testing.T) {
		assert.Equal(t, "abc", Normalize("  abc  "))
		assert.Equal(t, "", Normalize("   "))
	})

	t.Run("整数转十进制字符串", func(t *testing.T) {
		assert.Equal(t, "42", Normalize(42))
		assert.Equal(t, "42", Normalize(int64(42)))
	})

	t.Run("JSON 数字不保留小数部分", func(t *testing.T) {
		// JSON 解码默认产出 float64
		assert.Equal(t, "3", Normalize(float64(3)))
		assert.Equal(t, "3.5", Normalize(3.5))
		assert.Equal(t, "7", Normalize(json.Number("7")))
	})

	t.Run("FlexID 按字符串处理", func(t *testing.T) {
		assert.Equal(t, "env-1", Normalize(domain.FlexID(" env-1 ")))
		assert.Equal(t, "", Normalize(domain.FlexID("")))
	})

	t.Run("幂等", func(t *testing.T) {
		inputs := []interface{}{nil, "  x ", 42, 3.5, domain.FlexID("a")}
		for _, in := range inputs {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once))
		}
	})
}

func TestFirstID(t *testing.T) {
	t.Run("按顺序取第一个非空", func(t *testing.T) {
		assert.Equal(t, "1", FirstID(nil, "", 1, "uuid-x"))
	})

	t.Run("全部为空时返回空字符串", func(t *testing.T) {
		assert.Equal(t, "", FirstID(nil, "", "   "))
	})

	t.Run("无参数返回空字符串", func(t *testing.T) {
		assert.Equal(t, "", FirstID())
	})
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID("c8b4f1d0-9f3a-4a5e-8f21-6a2b3c4d5e6f"))
	assert.False(t, IsUUID("42"))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("not-a-uuid"))
}
