package service

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// CopyToClipboard 复制文本到系统剪贴板
// 用于复制资源 ID、访问地址和环境变量值
func CopyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("复制到剪贴板失败: %w", err)
	}
	return nil
}
