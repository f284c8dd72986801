package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/lucksec/deploybot/internal/credentials"
	"github.com/lucksec/deploybot/internal/resolve"
	"github.com/lucksec/deploybot/internal/service"
	"github.com/spf13/cobra"
)

// 动态补全函数

// completeProjects 补全项目 UUID 列表
func completeProjects(resourceSvc service.ResourceService) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if resourceSvc == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		projects, _, err := resourceSvc.Projects(context.Background())
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var completions []string
		for _, project := range projects {
			key := project.UUID
			if key == "" {
				key = project.ID.String()
			}
			if key == "" {
				continue
			}
			if strings.HasPrefix(key, toComplete) || strings.HasPrefix(project.Name, toComplete) {
				completions = append(completions, fmt.Sprintf("%s\t%s", key, project.Name))
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeResources 补全资源规范 ID 列表
// token 限定补全范围（如 type:application 只补全应用）
func completeResources(resourceSvc service.ResourceService, token string) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if resourceSvc == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		view, err := resourceSvc.GroupedResources(context.Background(), token)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}

		var completions []string
		for _, item := range view.Items {
			if strings.HasPrefix(item.ID, toComplete) || strings.HasPrefix(item.Name, toComplete) {
				// 显示格式：ID [类型] 名称
				completions = append(completions, fmt.Sprintf("%s\t[%s] %s", item.ID, item.Type, item.Name))
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

// completeFilterFlag 补全 --filter 标志的过滤令牌
func completeFilterFlag(resourceSvc service.ResourceService) func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if resourceSvc == nil {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}

		// env: 前缀下补全真实环境名
		if strings.HasPrefix(toComplete, "env:") {
			view, err := resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
			if err != nil {
				return nil, cobra.ShellCompDirectiveError
			}
			var completions []string
			for name := range view.EnvNameToIDs {
				token := "env:" + name
				if strings.HasPrefix(token, toComplete) {
					completions = append(completions, token)
				}
			}
			return completions, cobra.ShellCompDirectiveNoFileComp
		}

		tokens := []string{
			"all", "project:", "env:",
			"type:application", "type:service", "type:database",
			"status:running", "status:exited",
		}
		var completions []string
		for _, t := range tokens {
			if strings.HasPrefix(t, toComplete) {
				completions = append(completions, t)
			}
		}
		return completions, cobra.ShellCompDirectiveNoSpace | cobra.ShellCompDirectiveNoFileComp
	}
}

// completeInstances 补全实例名称列表
func completeInstances() func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		manager := credentials.GetDefaultManager()

		var completions []string
		for _, name := range manager.ListInstances() {
			if strings.HasPrefix(name, toComplete) {
				completions = append(completions, name)
			}
		}
		return completions, cobra.ShellCompDirectiveNoFileComp
	}
}

// setupCompletion 设置自动补全命令
func setupCompletion(rootCmd *cobra.Command) {
	// 添加 completion 命令
	completionCmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "生成自动补全脚本",
		Long: `生成指定 shell 的自动补全脚本。

支持的 shell: bash, zsh, fish, powershell

安装方法:

Bash:
  $ source <(deploybot completion bash)

  # 或添加到 ~/.bashrc
  $ echo 'source <(deploybot completion bash)' >> ~/.bashrc

Zsh:
  $ source <(deploybot completion zsh)

  # 或添加到 ~/.zshrc
  $ echo 'source <(deploybot completion zsh)' >> ~/.zshrc

Fish:
  $ deploybot completion fish | source

  # 或添加到 ~/.config/fish/completions/deploybot.fish
  $ deploybot completion fish > ~/.config/fish/completions/deploybot.fish

PowerShell:
  $ deploybot completion powershell | Out-String | Invoke-Expression

  # 或添加到 PowerShell profile
  $ deploybot completion powershell >> $PROFILE
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.ExactValidArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			switch args[0] {
			case "bash":
				rootCmd.GenBashCompletion(os.Stdout)
			case "zsh":
				rootCmd.GenZshCompletion(os.Stdout)
			case "fish":
				rootCmd.GenFishCompletion(os.Stdout, true)
			case "powershell":
				rootCmd.GenPowerShellCompletion(os.Stdout)
			}
		},
	}

	rootCmd.AddCommand(completionCmd)
}
