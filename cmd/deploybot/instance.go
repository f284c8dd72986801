package main

import (
	"fmt"
	"strings"

	"github.com/lucksec/deploybot/internal/credentials"
	"github.com/spf13/cobra"
)

// instanceCmd 实例管理命令组
func instanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "instance",
		Short: "平台实例管理",
		Long: `管理自托管部署平台实例的地址和 API 令牌。

一个实例对应一套平台部署（如 https://deploy.example.com），
可以同时配置多个实例，通过配置文件的 instance 字段选择默认实例。

default 实例可以从环境变量读取:
  DEPLOYBOT_BASE_URL  平台地址
  DEPLOYBOT_TOKEN     API 令牌

配置文件中的凭据优先级高于环境变量。`,
	}

	cmd.AddCommand(listInstancesCmd())
	cmd.AddCommand(setInstanceCmd())
	cmd.AddCommand(getInstanceCmd())
	cmd.AddCommand(removeInstanceCmd())

	return cmd
}

// listInstancesCmd 列出所有已配置的实例
func listInstancesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出所有已配置的实例",
		Long:  "显示所有已配置实例的名称、地址和打码后的令牌。",
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := credentials.GetDefaultManager()
			names := manager.ListInstances()

			if len(names) == 0 {
				fmt.Println("未配置任何实例")
				fmt.Println("\n提示: 使用 'deploybot instance set <name>' 配置实例")
				return nil
			}

			fmt.Println("已配置的平台实例:")
			fmt.Println()

			for _, name := range names {
				inst, err := manager.GetInstance(name)
				if err != nil {
					fmt.Printf("  %s: 获取失败 - %v\n", name, err)
					continue
				}

				fmt.Printf("  %s:\n", name)
				fmt.Printf("    地址: %s\n", inst.BaseURL)
				fmt.Printf("    令牌: %s\n", maskSecret(inst.Token))
				fmt.Println()
			}

			return nil
		},
	}
	return cmd
}

// setInstanceCmd 设置实例
func setInstanceCmd() *cobra.Command {
	var baseURL, token string

	cmd := &cobra.Command{
		Use:   "set <name>",
		Short: "设置平台实例",
		Long: `设置指定实例的平台地址和 API 令牌。

示例:
  # 交互式设置（会提示输入）
  deploybot instance set default

  # 通过参数设置
  deploybot instance set default --base-url https://deploy.example.com --token <token>`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			manager := credentials.GetDefaultManager()

			// 如果没有通过参数提供，交互式输入
			if baseURL == "" {
				fmt.Printf("请输入实例 %s 的平台地址: ", name)
				fmt.Scanln(&baseURL)
			}

			if token == "" {
				fmt.Printf("请输入实例 %s 的 API 令牌: ", name)
				fmt.Scanln(&token)
			}

			if baseURL == "" || token == "" {
				return fmt.Errorf("平台地址和 API 令牌不能为空")
			}

			inst := &credentials.Instance{
				BaseURL: baseURL,
				Token:   token,
			}

			if err := manager.SetInstance(name, inst); err != nil {
				return fmt.Errorf("设置实例失败: %w", err)
			}

			fmt.Printf("实例 %s 设置成功\n", name)
			return nil
		},
	}

	cmd.Flags().StringVarP(&baseURL, "base-url", "u", "", "平台地址（如 https://deploy.example.com）")
	cmd.Flags().StringVarP(&token, "token", "t", "", "API 令牌")

	return cmd
}

// getInstanceCmd 获取实例
func getInstanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <name>",
		Short: "获取实例配置",
		Long:  "显示指定实例的地址和打码后的令牌。",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			manager := credentials.GetDefaultManager()

			if !manager.HasInstance(name) {
				return fmt.Errorf("未配置实例 %s", name)
			}

			inst, err := manager.GetInstance(name)
			if err != nil {
				return fmt.Errorf("获取实例失败: %w", err)
			}

			fmt.Printf("实例 %s:\n", name)
			fmt.Printf("  地址: %s\n", inst.BaseURL)
			fmt.Printf("  令牌: %s\n", maskSecret(inst.Token))

			return nil
		},
	}
	return cmd
}

// removeInstanceCmd 删除实例
func removeInstanceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <name>",
		Short: "删除实例配置",
		Long:  "从配置文件中删除指定实例。环境变量中的 default 实例不受影响。",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			manager := credentials.GetDefaultManager()

			if !manager.HasInstance(name) {
				return fmt.Errorf("未配置实例 %s", name)
			}

			fmt.Printf("确认删除实例 %s? (yes/no): ", name)
			var confirm string
			fmt.Scanln(&confirm)

			if strings.ToLower(confirm) != "yes" && strings.ToLower(confirm) != "y" {
				fmt.Println("已取消")
				return nil
			}

			if err := manager.RemoveInstance(name); err != nil {
				return fmt.Errorf("删除实例失败: %w", err)
			}

			fmt.Printf("实例 %s 已删除\n", name)
			return nil
		},
	}
	return cmd
}
