package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lucksec/deploybot/internal/config"
	"github.com/lucksec/deploybot/internal/credentials"
	"github.com/lucksec/deploybot/internal/domain"
	"github.com/lucksec/deploybot/internal/logger"
	"github.com/lucksec/deploybot/internal/repository"
	"github.com/lucksec/deploybot/internal/resolve"
	"github.com/lucksec/deploybot/internal/service"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config
)

func main() {
	// 加载配置
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	// 初始化日志系统
	logConfig := &logger.Config{
		Level:         logger.ParseLevel(cfg.Log.Level),
		EnableConsole: cfg.Log.EnableConsole,
		EnableFile:    cfg.Log.EnableFile,
		LogDir:        cfg.Log.LogDir,
		LogFile:       cfg.Log.LogFile,
	}

	log, err := logger.InitLogger(logConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志系统失败: %v\n", err)
		os.Exit(1)
	}

	log.Info("deploybot 启动")
	log.Debug("配置加载成功: Instance=%s, CacheTTL=%ds", cfg.Instance, cfg.CacheTTLSeconds)

	// 初始化服务
	// 未配置实例凭据时服务保持 nil，依赖平台 API 的命令会提示先配置实例
	credManager := credentials.GetDefaultManager()
	var resourceSvc service.ResourceService
	var linkSvc service.LinkService

	if inst, err := credManager.GetInstance(cfg.Instance); err == nil {
		client, err := service.NewPlatformClient(inst.BaseURL, inst.Token)
		if err != nil {
			log.Warn("初始化平台客户端失败: %v", err)
		} else {
			repo := repository.NewResourceRepository(client, time.Duration(cfg.CacheTTLSeconds)*time.Second)
			resourceSvc = service.NewResourceService(client, repo)
			linkSvc = service.NewLinkService(client)
		}
	} else {
		log.Debug("实例 %s 未配置凭据: %v", cfg.Instance, err)
	}

	// 创建根命令
	rootCmd := &cobra.Command{
		Use:   "deploybot",
		Short: "deploybot 是一个自托管部署平台的命令行操作台",
		Long: `deploybot 是一个面向自托管部署平台的命令行操作台。
通过平台 REST API 聚合项目、环境、应用、服务和数据库，支持过滤检索、
部署触发、日志查看和控制台页面直达。`,
	}

	// 添加项目命令组
	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "项目管理命令",
	}
	projectCmd.AddCommand(listProjectsCmd(resourceSvc))
	projectCmd.AddCommand(showProjectCmd(resourceSvc))
	projectCmd.AddCommand(openProjectCmd(resourceSvc, linkSvc))
	rootCmd.AddCommand(projectCmd)

	// 添加环境命令组
	envCmd := &cobra.Command{
		Use:   "env",
		Short: "环境管理命令",
	}
	envCmd.AddCommand(listEnvironmentsCmd(resourceSvc))
	rootCmd.AddCommand(envCmd)

	// 添加资源命令组（应用/服务/数据库的统一视图）
	resourceCmd := &cobra.Command{
		Use:   "resource",
		Short: "资源检索命令",
	}
	resourceCmd.AddCommand(listResourcesCmd(resourceSvc))
	resourceCmd.AddCommand(openResourceCmd(resourceSvc, linkSvc))
	resourceCmd.AddCommand(copyResourceURLCmd(resourceSvc, linkSvc))
	rootCmd.AddCommand(resourceCmd)

	// 添加应用命令组
	appCmd := &cobra.Command{
		Use:   "app",
		Short: "应用操作命令",
	}
	appCmd.AddCommand(listTypedResourcesCmd(resourceSvc, domain.TypeApplication))
	appCmd.AddCommand(appLogsCmd(resourceSvc))
	appCmd.AddCommand(appDeployCmd(resourceSvc))
	appCmd.AddCommand(appDeploymentsCmd(resourceSvc))
	rootCmd.AddCommand(appCmd)

	// 添加服务命令组
	serviceCmd := &cobra.Command{
		Use:   "service",
		Short: "服务信息命令",
	}
	serviceCmd.AddCommand(listTypedResourcesCmd(resourceSvc, domain.TypeService))
	rootCmd.AddCommand(serviceCmd)

	// 添加数据库命令组
	dbCmd := &cobra.Command{
		Use:   "db",
		Short: "数据库信息命令",
	}
	dbCmd.AddCommand(listTypedResourcesCmd(resourceSvc, domain.TypeDatabase))
	rootCmd.AddCommand(dbCmd)

	// 添加部署记录命令组
	deploymentCmd := &cobra.Command{
		Use:   "deployment",
		Short: "部署记录命令",
	}
	deploymentCmd.AddCommand(listDeploymentsCmd(resourceSvc))
	rootCmd.AddCommand(deploymentCmd)

	// 添加团队命令组
	teamCmd := &cobra.Command{
		Use:   "team",
		Short: "团队信息命令",
	}
	teamCmd.AddCommand(listTeamsCmd(resourceSvc))
	rootCmd.AddCommand(teamCmd)

	// 添加密钥命令组
	secretCmd := &cobra.Command{
		Use:   "secret",
		Short: "应用环境变量命令",
	}
	secretCmd.AddCommand(listSecretsCmd(resourceSvc))
	rootCmd.AddCommand(secretCmd)

	// 添加交互式控制台命令
	rootCmd.AddCommand(newConsoleCmd(resourceSvc, linkSvc))

	// 添加实例管理命令组
	rootCmd.AddCommand(instanceCmd())

	// 设置自动补全
	setupCompletion(rootCmd)

	// 设置动态补全
	setupDynamicCompletion(rootCmd, resourceSvc)

	// 执行命令
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "执行命令失败: %v\n", err)
		os.Exit(1)
	}
}

// requireService 检查平台服务是否可用
func requireService(resourceSvc service.ResourceService) error {
	if resourceSvc == nil {
		return fmt.Errorf("未配置平台实例 %s，请先运行: deploybot instance set %s", cfg.Instance, cfg.Instance)
	}
	return nil
}

// listProjectsCmd 列出项目命令
func listProjectsCmd(resourceSvc service.ResourceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出所有项目",
		Example: `  # 列出当前实例的所有项目
  deploybot project list`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			projects, stale, err := resourceSvc.Projects(context.Background())
			if err != nil {
				return err
			}

			if len(projects) == 0 {
				fmt.Println("没有找到项目")
				return nil
			}

			printStaleNotice(stale)
			fmt.Println("项目列表:")
			for _, p := range projects {
				line := fmt.Sprintf("  - %s", p.Name)
				if p.UUID != "" {
					line += fmt.Sprintf(" (%s)", p.UUID)
				}
				if count := len(p.Environments); count > 0 {
					line += fmt.Sprintf(" [%d 个环境]", count)
				}
				fmt.Println(line)
				if p.Description != "" {
					fmt.Printf("    %s\n", p.Description)
				}
			}
			return nil
		},
	}
	return cmd
}

// showProjectCmd 查看项目详情命令
func showProjectCmd(resourceSvc service.ResourceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <uuid>",
		Short: "查看项目详情（含环境列表）",
		Example: `  # 按 UUID 或名称查看项目
  deploybot project show my-project`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			projects, stale, err := resourceSvc.Projects(context.Background())
			if err != nil {
				return err
			}

			key := args[0]
			for _, p := range projects {
				if p.UUID != key && p.ID.String() != key && p.Name != key {
					continue
				}

				printStaleNotice(stale)
				fmt.Printf("项目: %s\n", p.Name)
				if p.UUID != "" {
					fmt.Printf("UUID: %s\n", p.UUID)
				}
				if p.Description != "" {
					fmt.Printf("描述: %s\n", p.Description)
				}
				if len(p.Environments) == 0 {
					fmt.Println("环境: (无)")
					return nil
				}
				fmt.Println("环境:")
				for _, e := range p.Environments {
					name := e.Name
					if name == "" {
						name = resolve.UnnamedEnvironment
					}
					fmt.Printf("  - %s", name)
					if k := resolve.EnvKey(e); k != "" {
						fmt.Printf(" (%s)", k)
					}
					fmt.Println()
				}
				return nil
			}
			return fmt.Errorf("未找到项目 %s", key)
		},
	}
	return cmd
}

// openProjectCmd 打开项目控制台页面命令
func openProjectCmd(resourceSvc service.ResourceService, linkSvc service.LinkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <uuid>",
		Short: "输出并复制项目的控制台页面地址",
		Example: `  # 获取项目控制台地址
  deploybot project open a1b2c3d4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			projects, _, err := resourceSvc.Projects(context.Background())
			if err != nil {
				return err
			}

			key := args[0]
			for _, p := range projects {
				if p.UUID == key || p.ID.String() == key || p.Name == key {
					pageURL := linkSvc.ProjectURL(p)
					fmt.Println(pageURL)
					copyWithHint(pageURL)
					return nil
				}
			}
			return fmt.Errorf("未找到项目 %s", key)
		},
	}
	return cmd
}

// listEnvironmentsCmd 列出环境命令
func listEnvironmentsCmd(resourceSvc service.ResourceService) *cobra.Command {
	var projectFilter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出所有环境（带所属项目）",
		Long:  "列出全部项目展平后的环境列表，可以用 --project 按项目名或 UUID 过滤。",
		Example: `  # 列出所有环境
  deploybot env list

  # 只看指定项目的环境
  deploybot env list --project my-project`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			envs, stale, err := resourceSvc.Environments(context.Background())
			if err != nil {
				return err
			}

			if projectFilter != "" {
				var filtered []domain.Environment
				for _, e := range envs {
					if e.ProjectName == projectFilter || e.ProjectUUID == projectFilter || e.ProjectID.String() == projectFilter {
						filtered = append(filtered, e)
					}
				}
				envs = filtered
			}

			if len(envs) == 0 {
				fmt.Println("没有找到环境")
				return nil
			}

			printStaleNotice(stale)
			fmt.Println("环境列表:")
			for _, e := range envs {
				key := resolve.EnvKey(e)
				fmt.Printf("  - %s / %s", e.ProjectName, e.Name)
				if key != "" {
					fmt.Printf(" (%s)", key)
				}
				fmt.Println()
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&projectFilter, "project", "p", "", "按项目名或 UUID 过滤")
	return cmd
}

// listResourcesCmd 统一资源列表命令
func listResourcesCmd(resourceSvc service.ResourceService) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出应用、服务和数据库的统一视图",
		Long: `聚合应用、服务和数据库为统一条目，按 项目 > 环境 > 类型 > 名称 分组排序。

过滤令牌:
  all                保留全部（默认）
  project:<id>       按项目规范 ID 过滤
  env:<name>         按环境名过滤
  type:<kind>        按类型过滤（application/service/database）
  status:<state>     按运行状态前缀过滤（如 running, exited）`,
		Example: `  # 列出全部资源
  deploybot resource list

  # 只看某个环境的资源
  deploybot resource list --filter env:production

  # 只看运行中的应用
  deploybot resource list --filter status:running`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			view, err := resourceSvc.GroupedResources(context.Background(), token)
			if err != nil {
				return err
			}

			if len(view.Items) == 0 {
				fmt.Println("没有匹配的资源")
				return nil
			}

			printStaleNotice(view.Stale)
			printGroupedItems(view)
			return nil
		},
	}

	cmd.Flags().StringVarP(&token, "filter", "f", "all", "过滤令牌（all / project:<id> / env:<name> / type:<kind> / status:<state>）")
	return cmd
}

// printGroupedItems 按环境分组打印资源条目
func printGroupedItems(view *service.ResourceView) {
	lastGroup := ""
	for _, item := range view.Items {
		group := groupHeader(item, view.EnvIndex)
		if group != lastGroup {
			fmt.Printf("\n%s:\n", group)
			lastGroup = group
		}

		line := fmt.Sprintf("  [%s] %s", item.Type, item.Name)
		if item.Status != "" {
			line += fmt.Sprintf(" (%s)", item.Status)
		}
		fmt.Println(line)
		if item.Subtitle != "" {
			fmt.Printf("      %s\n", item.Subtitle)
		}
		if item.URL != "" {
			fmt.Printf("      %s\n", item.URL)
		}
	}
}

// groupHeader 构造条目的分组标题（项目 / 环境）
func groupHeader(item domain.ResourceItem, envIndex map[string]domain.Environment) string {
	env, ok := envIndex[item.EnvironmentID]
	if !ok {
		return "(未知环境)"
	}
	return env.ProjectName + " / " + env.Name
}

// findResourceItem 在聚合视图中按规范 ID 或名称查找条目
func findResourceItem(view *service.ResourceView, key string) (domain.ResourceItem, bool) {
	for _, item := range view.Items {
		if item.ID == key {
			return item, true
		}
	}
	// ID 没有命中时按名称兜底
	for _, item := range view.Items {
		if item.Name == key {
			return item, true
		}
	}
	return domain.ResourceItem{}, false
}

// openResourceCmd 打开资源控制台页面命令
func openResourceCmd(resourceSvc service.ResourceService, linkSvc service.LinkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <id>",
		Short: "输出并复制资源的控制台详情页地址",
		Example: `  # 获取资源详情页地址
  deploybot resource open a1b2c3d4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			view, err := resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
			if err != nil {
				return err
			}

			item, ok := findResourceItem(view, args[0])
			if !ok {
				return fmt.Errorf("未找到资源 %s", args[0])
			}

			env := view.EnvIndex[item.EnvironmentID]
			pageURL := linkSvc.ResourceURL(item, env)
			fmt.Println(pageURL)
			copyWithHint(pageURL)
			return nil
		},
	}
	return cmd
}

// copyResourceURLCmd 复制资源公网地址命令
func copyResourceURLCmd(resourceSvc service.ResourceService, linkSvc service.LinkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url <id>",
		Short: "输出并复制资源的公网访问地址",
		Long:  "输出应用的公网访问地址（由域名推导）。没有公网地址的资源会退回控制台详情页地址。",
		Example: `  # 复制应用的访问地址
  deploybot resource url a1b2c3d4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			view, err := resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
			if err != nil {
				return err
			}

			item, ok := findResourceItem(view, args[0])
			if !ok {
				return fmt.Errorf("未找到资源 %s", args[0])
			}

			target := item.URL
			if target == "" {
				env := view.EnvIndex[item.EnvironmentID]
				target = linkSvc.ResourceURL(item, env)
			}
			fmt.Println(target)
			copyWithHint(target)
			return nil
		},
	}
	return cmd
}

// copyWithHint 尝试写入剪贴板并输出结果提示
// 无图形环境（如 SSH 会话）下剪贴板不可用，失败只提示不报错
func copyWithHint(text string) {
	if err := service.CopyToClipboard(text); err != nil {
		logger.GetLogger().Debug("写入剪贴板失败: %v", err)
		return
	}
	fmt.Println("(已复制到剪贴板)")
}

// listTypedResourcesCmd 按类型列出资源命令（app/service/db 命令组共用）
func listTypedResourcesCmd(resourceSvc service.ResourceService, kind domain.ResourceType) *cobra.Command {
	names := map[domain.ResourceType]string{
		domain.TypeApplication: "应用",
		domain.TypeService:     "服务",
		domain.TypeDatabase:    "数据库",
	}

	cmd := &cobra.Command{
		Use:   "list",
		Short: fmt.Sprintf("列出所有%s", names[kind]),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			view, err := resourceSvc.GroupedResources(context.Background(), "type:"+string(kind))
			if err != nil {
				return err
			}

			if len(view.Items) == 0 {
				fmt.Printf("没有找到%s\n", names[kind])
				return nil
			}

			printStaleNotice(view.Stale)
			printGroupedItems(view)
			return nil
		},
	}
	return cmd
}

// appLogsCmd 查看应用日志命令
func appLogsCmd(resourceSvc service.ResourceService) *cobra.Command {
	var lines int

	cmd := &cobra.Command{
		Use:   "logs <uuid>",
		Short: "查看应用最近的运行日志",
		Example: `  # 查看最近 100 行日志
  deploybot app logs a1b2c3d4

  # 查看最近 500 行日志
  deploybot app logs a1b2c3d4 --lines 500`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			logs, err := resourceSvc.ApplicationLogs(context.Background(), args[0], lines)
			if err != nil {
				return err
			}

			if strings.TrimSpace(logs) == "" {
				fmt.Println("没有日志输出")
				return nil
			}
			fmt.Println(logs)
			return nil
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 100, "返回的日志行数")
	return cmd
}

// appDeployCmd 触发应用部署命令
func appDeployCmd(resourceSvc service.ResourceService) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "deploy <uuid>",
		Short: "触发应用重新部署",
		Long: `按 UUID 触发应用重新部署。

使用 --force 可以跳过构建缓存强制重建镜像。`,
		Example: `  # 触发部署
  deploybot app deploy a1b2c3d4

  # 强制重建（跳过构建缓存）
  deploybot app deploy a1b2c3d4 --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			if err := resourceSvc.Redeploy(context.Background(), args[0], force); err != nil {
				return err
			}

			fmt.Printf("应用 %s 部署已触发", args[0])
			if force {
				fmt.Print("（强制重建）")
			}
			fmt.Println()
			fmt.Println("提示: 使用 'app deployments' 查看部署进度。")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "跳过构建缓存强制重建")
	return cmd
}

// appDeploymentsCmd 查看应用部署记录命令
func appDeploymentsCmd(resourceSvc service.ResourceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployments <uuid>",
		Short: "查看应用的部署记录",
		Example: `  # 查看部署记录
  deploybot app deployments a1b2c3d4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			deployments, stale, err := resourceSvc.Deployments(context.Background(), args[0])
			if err != nil {
				return err
			}

			if len(deployments) == 0 {
				fmt.Println("没有找到部署记录")
				return nil
			}

			printStaleNotice(stale)
			printDeploymentList(deployments)
			return nil
		},
	}
	return cmd
}

// listDeploymentsCmd 查看应用部署记录命令（deployment 命令组入口）
func listDeploymentsCmd(resourceSvc service.ResourceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <app-uuid>",
		Short: "查看指定应用的部署记录",
		Example: `  # 查看部署记录
  deploybot deployment list a1b2c3d4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			deployments, stale, err := resourceSvc.Deployments(context.Background(), args[0])
			if err != nil {
				return err
			}

			if len(deployments) == 0 {
				fmt.Println("没有找到部署记录")
				return nil
			}

			printStaleNotice(stale)
			printDeploymentList(deployments)
			return nil
		},
	}
	return cmd
}

// printDeploymentList 打印部署记录
func printDeploymentList(deployments []domain.Deployment) {
	fmt.Println("部署记录:")
	for _, d := range deployments {
		fmt.Printf("  - [%s] %s\n", d.Status, d.DeploymentUUID)
		if d.Commit != "" {
			msg := d.CommitMessage
			if len(msg) > 60 {
				msg = msg[:60] + "..."
			}
			fmt.Printf("    提交: %.8s %s\n", d.Commit, msg)
		}
		if d.CreatedAt != "" {
			fmt.Printf("    时间: %s\n", d.CreatedAt)
		}
	}
}

// listTeamsCmd 列出团队命令
func listTeamsCmd(resourceSvc service.ResourceService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "列出当前令牌可见的团队",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			teams, stale, err := resourceSvc.Teams(context.Background())
			if err != nil {
				return err
			}

			if len(teams) == 0 {
				fmt.Println("没有找到团队")
				return nil
			}

			printStaleNotice(stale)
			fmt.Println("团队列表:")
			for _, t := range teams {
				line := fmt.Sprintf("  - %s (%s)", t.Name, t.ID.String())
				if t.PersonalTeam {
					line += " [个人团队]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}
	return cmd
}

// listSecretsCmd 列出应用环境变量命令
func listSecretsCmd(resourceSvc service.ResourceService) *cobra.Command {
	var showValues bool

	cmd := &cobra.Command{
		Use:   "list <app-uuid>",
		Short: "列出应用的环境变量",
		Long: `列出指定应用的环境变量。

变量值默认打码显示，使用 --show 查看明文。环境变量不走缓存，每次直连平台。`,
		Example: `  # 列出环境变量（打码）
  deploybot secret list a1b2c3d4

  # 显示明文
  deploybot secret list a1b2c3d4 --show`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}

			vars, err := resourceSvc.EnvVars(context.Background(), args[0])
			if err != nil {
				return err
			}

			if len(vars) == 0 {
				fmt.Println("没有找到环境变量")
				return nil
			}

			fmt.Println("环境变量:")
			for _, v := range vars {
				value := v.Value
				if !showValues {
					value = maskSecret(value)
				}
				line := fmt.Sprintf("  %s=%s", v.Key, value)
				if v.IsBuildTime {
					line += " [构建期]"
				}
				if v.IsPreview {
					line += " [预览]"
				}
				fmt.Println(line)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showValues, "show", false, "显示变量明文")
	return cmd
}

// printStaleNotice 缓存过期提示
func printStaleNotice(stale bool) {
	if stale {
		fmt.Println("(缓存数据，后台刷新中)")
	}
}

// maskSecret 隐藏敏感值
func maskSecret(secret string) string {
	if len(secret) <= 8 {
		return "****"
	}
	return secret[:4] + "****" + secret[len(secret)-4:]
}
