package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	prompt "github.com/c-bata/go-prompt"
	"github.com/lucksec/deploybot/internal/credentials"
	"github.com/lucksec/deploybot/internal/domain"
	"github.com/lucksec/deploybot/internal/resolve"
	"github.com/lucksec/deploybot/internal/service"
	"github.com/spf13/cobra"
)

// console 表示交互式控制台结构体
// 使用 go-prompt 提供带 Tab 补全的 REPL（读取-执行-输出）循环
type console struct {
	resourceSvc service.ResourceService // 资源视图服务
	linkSvc     service.LinkService     // 深链构造服务
}

// newConsoleCmd 创建控制台命令
// 用户执行 `deploybot console` 即可进入交互式控制台
func newConsoleCmd(resourceSvc service.ResourceService, linkSvc service.LinkService) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "进入交互式控制台",
		Long: `进入交互式控制台，对项目、环境和资源进行统一检索和操作。

示例:
  deploybot console

进入控制台后，可使用命令:
  help                         显示帮助
  project list                 列出项目
  env list                     列出环境
  resource list [token]        列出资源（支持过滤令牌）
  resource open <id>           输出资源控制台页面地址
  resource url <id>            输出资源公网访问地址
  app logs <uuid> [lines]      查看应用日志
  app deploy <uuid> [--force]  触发应用部署
  app deployments <uuid>       查看部署记录
  team list                    列出团队
  secret list <app-uuid>       列出应用环境变量（打码）
  instance list                列出实例
  exit / quit                  退出控制台`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireService(resourceSvc); err != nil {
				return err
			}
			c := &console{
				resourceSvc: resourceSvc,
				linkSvc:     linkSvc,
			}
			return c.run()
		},
	}

	return cmd
}

// run 启动交互式控制台主循环（带 Tab 补全）
func (c *console) run() error {
	c.printWelcome()

	// 使用 go-prompt 提供交互式输入和 Tab 补全
	p := prompt.New(
		c.executor,                         // 输入执行函数
		c.completer,                        // 补全函数
		prompt.OptionPrefix("deploybot> "), // 提示符
		prompt.OptionTitle("deploybot console"),             // 标题
		prompt.OptionSuggestionBGColor(prompt.DarkGray),     // 建议背景色
		prompt.OptionSuggestionTextColor(prompt.White),      // 建议文字颜色
		prompt.OptionSelectedSuggestionBGColor(prompt.Blue), // 选中建议背景色
		prompt.OptionSelectedSuggestionTextColor(prompt.White),
	)

	// Run 会阻塞，直到用户退出（Ctrl+D/Ctrl+C）
	p.Run()
	fmt.Println("\n已退出控制台。")
	return nil
}

// executor 执行单行命令
func (c *console) executor(in string) {
	line := strings.TrimSpace(in)
	if line == "" {
		return
	}
	if err := c.handleCommand(line); err != nil {
		fmt.Printf("错误: %v\n", err)
	}
}

// completer 提供 Tab 补全
func (c *console) completer(d prompt.Document) []prompt.Suggest {
	text := d.TextBeforeCursor()
	parts := strings.Fields(text)

	// 如果正在输入第一个单词（顶级命令）
	if len(parts) == 0 {
		return c.topLevelSuggestions("")
	}

	// 当前正在输入的 token
	current := ""
	if d.TextBeforeCursor() == "" || strings.HasSuffix(d.TextBeforeCursor(), " ") {
		// 刚输入了空格，当前 token 为空，下一个参数
		current = ""
	} else {
		current = parts[len(parts)-1]
	}

	switch parts[0] {
	case "project":
		return c.completeProjectConsole(parts[1:], current)
	case "env":
		return c.completeEnvConsole(parts[1:], current)
	case "resource":
		return c.completeResourceConsole(parts[1:], current)
	case "app":
		return c.completeAppConsole(parts[1:], current)
	case "team":
		return filterSuggestions([]prompt.Suggest{
			{Text: "list", Description: "列出团队"},
		}, current)
	case "secret":
		return c.completeSecretConsole(parts[1:], current)
	case "instance":
		return c.completeInstanceConsole(parts[1:], current)
	default:
		// 顶级命令补全
		if len(parts) == 1 {
			return c.topLevelSuggestions(current)
		}
	}

	return []prompt.Suggest{}
}

// filterSuggestions 按前缀筛选建议
func filterSuggestions(suggestions []prompt.Suggest, current string) []prompt.Suggest {
	var res []prompt.Suggest
	for _, s := range suggestions {
		if strings.HasPrefix(s.Text, current) {
			res = append(res, s)
		}
	}
	return res
}

// topLevelSuggestions 顶级命令补全
func (c *console) topLevelSuggestions(current string) []prompt.Suggest {
	cmds := []prompt.Suggest{
		{Text: "help", Description: "显示帮助"},
		{Text: "project", Description: "项目管理命令"},
		{Text: "env", Description: "环境管理命令"},
		{Text: "resource", Description: "资源检索命令"},
		{Text: "app", Description: "应用操作命令"},
		{Text: "team", Description: "团队信息命令"},
		{Text: "secret", Description: "应用环境变量命令"},
		{Text: "instance", Description: "平台实例管理"},
		{Text: "refresh", Description: "清空缓存并重新拉取"},
		{Text: "exit", Description: "退出控制台"},
		{Text: "quit", Description: "退出控制台"},
	}
	return filterSuggestions(cmds, current)
}

// completeProjectConsole project 子命令补全
func (c *console) completeProjectConsole(args []string, current string) []prompt.Suggest {
	if len(args) == 0 {
		return filterSuggestions([]prompt.Suggest{
			{Text: "list", Description: "列出所有项目"},
			{Text: "open", Description: "输出项目控制台页面地址"},
		}, current)
	}

	switch args[0] {
	case "open":
		// project open <uuid>，补全项目
		if len(args) == 1 {
			return c.completeProjectKeys(current)
		}
	}
	return []prompt.Suggest{}
}

// completeEnvConsole env 子命令补全
func (c *console) completeEnvConsole(args []string, current string) []prompt.Suggest {
	if len(args) == 0 {
		return filterSuggestions([]prompt.Suggest{
			{Text: "list", Description: "列出所有环境"},
		}, current)
	}
	return []prompt.Suggest{}
}

// completeResourceConsole resource 子命令补全
func (c *console) completeResourceConsole(args []string, current string) []prompt.Suggest {
	if len(args) == 0 {
		return filterSuggestions([]prompt.Suggest{
			{Text: "list", Description: "列出资源（支持过滤令牌）"},
			{Text: "open", Description: "输出资源控制台页面地址"},
			{Text: "url", Description: "输出资源公网访问地址"},
		}, current)
	}

	switch args[0] {
	case "list":
		// resource list [token]，补全过滤令牌
		if len(args) == 1 {
			return c.completeFilterTokens(current)
		}
	case "open", "url":
		// 补全资源 ID
		if len(args) == 1 {
			return c.completeResourceIDs(current)
		}
	}
	return []prompt.Suggest{}
}

// completeAppConsole app 子命令补全
func (c *console) completeAppConsole(args []string, current string) []prompt.Suggest {
	if len(args) == 0 {
		return filterSuggestions([]prompt.Suggest{
			{Text: "logs", Description: "查看应用日志"},
			{Text: "deploy", Description: "触发应用部署"},
			{Text: "deployments", Description: "查看部署记录"},
		}, current)
	}

	switch args[0] {
	case "logs", "deploy", "deployments":
		// 补全应用 UUID
		if len(args) == 1 {
			return c.completeApplicationIDs(current)
		}
		// deploy 支持 --force 标志
		if args[0] == "deploy" && strings.HasPrefix(current, "-") {
			return filterSuggestions([]prompt.Suggest{
				{Text: "--force", Description: "跳过构建缓存强制重建"},
			}, current)
		}
	}
	return []prompt.Suggest{}
}

// completeSecretConsole secret 子命令补全
func (c *console) completeSecretConsole(args []string, current string) []prompt.Suggest {
	if len(args) == 0 {
		return filterSuggestions([]prompt.Suggest{
			{Text: "list", Description: "列出应用环境变量"},
		}, current)
	}

	if args[0] == "list" && len(args) == 1 {
		return c.completeApplicationIDs(current)
	}
	return []prompt.Suggest{}
}

// completeInstanceConsole instance 子命令补全
func (c *console) completeInstanceConsole(args []string, current string) []prompt.Suggest {
	if len(args) == 0 {
		return filterSuggestions([]prompt.Suggest{
			{Text: "list", Description: "列出所有已配置的实例"},
			{Text: "get", Description: "获取实例配置"},
		}, current)
	}

	switch args[0] {
	case "get":
		if len(args) == 1 {
			manager := credentials.GetDefaultManager()
			var res []prompt.Suggest
			for _, name := range manager.ListInstances() {
				if strings.HasPrefix(name, current) {
					res = append(res, prompt.Suggest{Text: name, Description: "平台实例"})
				}
			}
			return res
		}
	}
	return []prompt.Suggest{}
}

// completeFilterTokens 过滤令牌补全
// env: 前缀下动态补全真实环境名，其余给出令牌骨架
func (c *console) completeFilterTokens(current string) []prompt.Suggest {
	if strings.HasPrefix(current, "env:") {
		view, err := c.resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
		if err != nil {
			return []prompt.Suggest{}
		}
		var res []prompt.Suggest
		for name := range view.EnvNameToIDs {
			token := "env:" + name
			if strings.HasPrefix(token, current) {
				res = append(res, prompt.Suggest{Text: token, Description: fmt.Sprintf("%d 个环境", len(view.EnvNameToIDs[name]))})
			}
		}
		return res
	}

	if strings.HasPrefix(current, "project:") {
		projects, _, err := c.resourceSvc.Projects(context.Background())
		if err != nil {
			return []prompt.Suggest{}
		}
		var res []prompt.Suggest
		for _, p := range projects {
			id := resolve.FirstID(p.ID, p.UUID)
			if id == "" {
				continue
			}
			token := "project:" + id
			if strings.HasPrefix(token, current) {
				res = append(res, prompt.Suggest{Text: token, Description: p.Name})
			}
		}
		return res
	}

	tokens := []prompt.Suggest{
		{Text: "all", Description: "保留全部资源"},
		{Text: "project:", Description: "按项目规范 ID 过滤"},
		{Text: "env:", Description: "按环境名过滤"},
		{Text: "type:application", Description: "只看应用"},
		{Text: "type:service", Description: "只看服务"},
		{Text: "type:database", Description: "只看数据库"},
		{Text: "status:running", Description: "只看运行中的资源"},
		{Text: "status:exited", Description: "只看已停止的资源"},
	}
	return filterSuggestions(tokens, current)
}

// completeProjectKeys 动态补全项目 UUID/名称
func (c *console) completeProjectKeys(current string) []prompt.Suggest {
	projects, _, err := c.resourceSvc.Projects(context.Background())
	if err != nil {
		return []prompt.Suggest{}
	}
	var res []prompt.Suggest
	for _, p := range projects {
		key := p.UUID
		if key == "" {
			key = p.ID.String()
		}
		if key == "" {
			continue
		}
		if strings.HasPrefix(key, current) || strings.HasPrefix(p.Name, current) {
			res = append(res, prompt.Suggest{Text: key, Description: p.Name})
		}
	}
	return res
}

// completeResourceIDs 动态补全资源规范 ID
func (c *console) completeResourceIDs(current string) []prompt.Suggest {
	view, err := c.resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
	if err != nil {
		return []prompt.Suggest{}
	}
	var res []prompt.Suggest
	for _, item := range view.Items {
		if strings.HasPrefix(item.ID, current) || strings.HasPrefix(item.Name, current) {
			desc := fmt.Sprintf("[%s] %s", item.Type, item.Name)
			res = append(res, prompt.Suggest{Text: item.ID, Description: desc})
		}
	}
	return res
}

// completeApplicationIDs 动态补全应用 UUID
func (c *console) completeApplicationIDs(current string) []prompt.Suggest {
	view, err := c.resourceSvc.GroupedResources(context.Background(), "type:application")
	if err != nil {
		return []prompt.Suggest{}
	}
	var res []prompt.Suggest
	for _, item := range view.Items {
		if strings.HasPrefix(item.ID, current) || strings.HasPrefix(item.Name, current) {
			desc := item.Name
			if item.Status != "" {
				desc = fmt.Sprintf("%s (%s)", item.Name, item.Status)
			}
			res = append(res, prompt.Suggest{Text: item.ID, Description: desc})
		}
	}
	return res
}

// printWelcome 打印欢迎信息和基础命令提示
func (c *console) printWelcome() {
	fmt.Println("╔═════════════════════════════════════════════════════════╗")
	fmt.Println("║            DeployBot 交互式控制台 v1.0.0                ║")
	fmt.Println("╚═════════════════════════════════════════════════════════╝")
	fmt.Println()
	fmt.Println("提示: 输入 'help' 查看可用命令，输入 'exit' 或 'quit' 退出")
	fmt.Println("      按 Tab 键自动补全命令和参数")
	fmt.Println()
}

// handleCommand 解析并处理一条命令
func (c *console) handleCommand(line string) error {
	// 支持用空格分隔的简单命令
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return nil
	}

	switch parts[0] {
	case "help", "h", "?":
		c.printHelp()
		return nil
	case "exit", "quit", "q":
		fmt.Println("退出控制台。")
		os.Exit(0)
	case "refresh":
		return c.cmdRefresh()
	case "project":
		return c.handleProjectCommand(parts[1:])
	case "env":
		return c.handleEnvCommand(parts[1:])
	case "resource":
		return c.handleResourceCommand(parts[1:])
	case "app":
		return c.handleAppCommand(parts[1:])
	case "team":
		return c.handleTeamCommand(parts[1:])
	case "secret":
		return c.handleSecretCommand(parts[1:])
	case "instance":
		return c.handleInstanceCommand(parts[1:])
	default:
		fmt.Println("未知命令。输入 'help' 查看支持的命令。")
		return nil
	}
	return nil
}

// handleProjectCommand 处理项目相关命令
func (c *console) handleProjectCommand(args []string) error {
	if len(args) == 0 {
		fmt.Println("用法: project [list|open <uuid>]")
		return nil
	}

	switch args[0] {
	case "list":
		return c.cmdProjectList()
	case "open":
		if len(args) < 2 {
			fmt.Println("用法: project open <uuid>")
			return nil
		}
		return c.cmdProjectOpen(args[1])
	default:
		fmt.Println("未知 project 子命令。支持: list, open")
		return nil
	}
}

// handleEnvCommand 处理环境相关命令
func (c *console) handleEnvCommand(args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.cmdEnvList()
	}
	fmt.Println("未知 env 子命令。支持: list")
	return nil
}

// handleResourceCommand 处理资源相关命令
func (c *console) handleResourceCommand(args []string) error {
	if len(args) == 0 {
		fmt.Println("用法: resource [list [token]|open <id>|url <id>]")
		return nil
	}

	switch args[0] {
	case "list":
		token := resolve.FilterAll
		if len(args) >= 2 {
			token = args[1]
		}
		return c.cmdResourceList(token)
	case "open":
		if len(args) < 2 {
			fmt.Println("用法: resource open <id>")
			return nil
		}
		return c.cmdResourceOpen(args[1])
	case "url":
		if len(args) < 2 {
			fmt.Println("用法: resource url <id>")
			return nil
		}
		return c.cmdResourceURL(args[1])
	default:
		fmt.Println("未知 resource 子命令。支持: list, open, url")
		return nil
	}
}

// handleAppCommand 处理应用相关命令
func (c *console) handleAppCommand(args []string) error {
	if len(args) == 0 {
		fmt.Println("用法: app [logs <uuid> [lines]|deploy <uuid> [--force]|deployments <uuid>]")
		return nil
	}

	switch args[0] {
	case "logs":
		if len(args) < 2 {
			fmt.Println("用法: app logs <uuid> [lines]")
			return nil
		}
		lines := 100
		if len(args) >= 3 {
			if parsed, err := strconv.Atoi(args[2]); err == nil && parsed > 0 {
				lines = parsed
			}
		}
		return c.cmdAppLogs(args[1], lines)
	case "deploy":
		if len(args) < 2 {
			fmt.Println("用法: app deploy <uuid> [--force]")
			return nil
		}
		force := false
		for _, arg := range args[2:] {
			if arg == "--force" || arg == "-f" {
				force = true
			}
		}
		return c.cmdAppDeploy(args[1], force)
	case "deployments":
		if len(args) < 2 {
			fmt.Println("用法: app deployments <uuid>")
			return nil
		}
		return c.cmdAppDeployments(args[1])
	default:
		fmt.Println("未知 app 子命令。支持: logs, deploy, deployments")
		return nil
	}
}

// handleTeamCommand 处理团队相关命令
func (c *console) handleTeamCommand(args []string) error {
	if len(args) == 0 || args[0] == "list" {
		return c.cmdTeamList()
	}
	fmt.Println("未知 team 子命令。支持: list")
	return nil
}

// handleSecretCommand 处理密钥相关命令
func (c *console) handleSecretCommand(args []string) error {
	if len(args) == 0 {
		fmt.Println("用法: secret list <app-uuid>")
		return nil
	}

	switch args[0] {
	case "list":
		if len(args) < 2 {
			fmt.Println("用法: secret list <app-uuid>")
			return nil
		}
		return c.cmdSecretList(args[1])
	default:
		fmt.Println("未知 secret 子命令。支持: list")
		return nil
	}
}

// handleInstanceCommand 处理实例相关命令
// 控制台内只提供只读操作，设置和删除走 CLI 命令
func (c *console) handleInstanceCommand(args []string) error {
	if len(args) == 0 {
		fmt.Println("用法: instance [list|get <name>]")
		return nil
	}

	manager := credentials.GetDefaultManager()

	switch args[0] {
	case "list":
		names := manager.ListInstances()
		if len(names) == 0 {
			fmt.Println("未配置任何实例")
			fmt.Println("\n提示: 使用 'deploybot instance set <name>' 配置实例")
			return nil
		}
		fmt.Println("已配置的平台实例:")
		for _, name := range names {
			inst, err := manager.GetInstance(name)
			if err != nil {
				fmt.Printf("  %s: 获取失败 - %v\n", name, err)
				continue
			}
			fmt.Printf("  - %s: %s (令牌 %s)\n", name, inst.BaseURL, maskSecret(inst.Token))
		}
		return nil
	case "get":
		if len(args) < 2 {
			fmt.Println("用法: instance get <name>")
			return nil
		}
		inst, err := manager.GetInstance(args[1])
		if err != nil {
			return fmt.Errorf("获取实例失败: %w", err)
		}
		fmt.Printf("实例 %s:\n", args[1])
		fmt.Printf("  地址: %s\n", inst.BaseURL)
		fmt.Printf("  令牌: %s\n", maskSecret(inst.Token))
		return nil
	default:
		fmt.Println("未知 instance 子命令。支持: list, get")
		return nil
	}
}

// cmdRefresh 清空缓存并重新拉取
func (c *console) cmdRefresh() error {
	fmt.Println("正在重新拉取平台资源...")
	c.resourceSvc.Invalidate()
	view, err := c.resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
	if err != nil {
		return fmt.Errorf("刷新资源失败: %w", err)
	}
	fmt.Printf("已刷新，共 %d 个资源、%d 个环境。\n", len(view.Items), len(view.EnvIndex))
	return nil
}

// cmdProjectList 列出所有项目
func (c *console) cmdProjectList() error {
	projects, stale, err := c.resourceSvc.Projects(context.Background())
	if err != nil {
		return fmt.Errorf("获取项目列表失败: %w", err)
	}

	if len(projects) == 0 {
		fmt.Println("当前没有项目。")
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
	}
	return nil
}

// cmdProjectOpen 输出项目控制台页面地址
func (c *console) cmdProjectOpen(key string) error {
	projects, _, err := c.resourceSvc.Projects(context.Background())
	if err != nil {
		return fmt.Errorf("获取项目列表失败: %w", err)
	}

	for _, p := range projects {
		if p.UUID == key || p.ID.String() == key || p.Name == key {
			pageURL := c.linkSvc.ProjectURL(p)
			fmt.Println(pageURL)
			copyWithHint(pageURL)
			return nil
		}
	}
	return fmt.Errorf("未找到项目 %s", key)
}

// cmdEnvList 列出所有环境
func (c *console) cmdEnvList() error {
	envs, stale, err := c.resourceSvc.Environments(context.Background())
	if err != nil {
		return fmt.Errorf("获取环境列表失败: %w", err)
	}

	if len(envs) == 0 {
		fmt.Println("当前没有环境。")
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
}

// cmdResourceList 按过滤令牌列出资源
func (c *console) cmdResourceList(token string) error {
	view, err := c.resourceSvc.GroupedResources(context.Background(), token)
	if err != nil {
		return fmt.Errorf("获取资源列表失败: %w", err)
	}

	if len(view.Items) == 0 {
		fmt.Println("没有匹配的资源。")
		return nil
	}

	printStaleNotice(view.Stale)
	printGroupedItems(view)
	return nil
}

// cmdResourceOpen 输出资源控制台页面地址
func (c *console) cmdResourceOpen(key string) error {
	view, err := c.resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
	if err != nil {
		return fmt.Errorf("获取资源列表失败: %w", err)
	}

	item, ok := findResourceItem(view, key)
	if !ok {
		return fmt.Errorf("未找到资源 %s", key)
	}

	env := view.EnvIndex[item.EnvironmentID]
	pageURL := c.linkSvc.ResourceURL(item, env)
	fmt.Println(pageURL)
	copyWithHint(pageURL)
	return nil
}

// cmdResourceURL 输出资源公网访问地址
func (c *console) cmdResourceURL(key string) error {
	view, err := c.resourceSvc.GroupedResources(context.Background(), resolve.FilterAll)
	if err != nil {
		return fmt.Errorf("获取资源列表失败: %w", err)
	}

	item, ok := findResourceItem(view, key)
	if !ok {
		return fmt.Errorf("未找到资源 %s", key)
	}

	target := item.URL
	if target == "" {
		env := view.EnvIndex[item.EnvironmentID]
		target = c.linkSvc.ResourceURL(item, env)
	}
	fmt.Println(target)
	copyWithHint(target)
	return nil
}

// cmdAppLogs 查看应用日志
func (c *console) cmdAppLogs(uuid string, lines int) error {
	logs, err := c.resourceSvc.ApplicationLogs(context.Background(), uuid, lines)
	if err != nil {
		return fmt.Errorf("获取应用日志失败: %w", err)
	}

	if strings.TrimSpace(logs) == "" {
		fmt.Println("没有日志输出。")
		return nil
	}
	fmt.Println(logs)
	return nil
}

// cmdAppDeploy 触发应用部署
func (c *console) cmdAppDeploy(uuid string, force bool) error {
	if force {
		fmt.Println("警告: 强制重建会跳过构建缓存，耗时更长。")
	}

	if err := c.resourceSvc.Redeploy(context.Background(), uuid, force); err != nil {
		return fmt.Errorf("触发部署失败: %w", err)
	}

	fmt.Printf("应用 %s 部署已触发", uuid)
	if force {
		fmt.Print("（强制重建）")
	}
	fmt.Println()
	fmt.Println("提示: 使用 'app deployments' 查看部署进度。")
	return nil
}

// cmdAppDeployments 查看应用部署记录
func (c *console) cmdAppDeployments(uuid string) error {
	deployments, stale, err := c.resourceSvc.Deployments(context.Background(), uuid)
	if err != nil {
		return fmt.Errorf("获取部署记录失败: %w", err)
	}

	if len(deployments) == 0 {
		fmt.Println("没有找到部署记录。")
		return nil
	}

	printStaleNotice(stale)
	fmt.Println("部署记录:")
	for _, d := range deployments {
		c.printDeployment(d)
	}
	return nil
}

// printDeployment 打印一条部署记录
func (c *console) printDeployment(d domain.Deployment) {
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

// cmdTeamList 列出团队
func (c *console) cmdTeamList() error {
	teams, stale, err := c.resourceSvc.Teams(context.Background())
	if err != nil {
		return fmt.Errorf("获取团队列表失败: %w", err)
	}

	if len(teams) == 0 {
		fmt.Println("没有找到团队。")
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
}

// cmdSecretList 列出应用环境变量（打码）
// 控制台内始终打码，查看明文需要走 CLI 的 --show 标志
func (c *console) cmdSecretList(appUUID string) error {
	vars, err := c.resourceSvc.EnvVars(context.Background(), appUUID)
	if err != nil {
		return fmt.Errorf("获取环境变量失败: %w", err)
	}

	if len(vars) == 0 {
		fmt.Println("没有找到环境变量。")
		return nil
	}

	fmt.Println("环境变量:")
	for _, v := range vars {
		line := fmt.Sprintf("  %s=%s", v.Key, maskSecret(v.Value))
		if v.IsBuildTime {
			line += " [构建期]"
		}
		if v.IsPreview {
			line += " [预览]"
		}
		fmt.Println(line)
	}
	return nil
}

// printHelp 打印控制台内可用命令帮助
func (c *console) printHelp() {
	fmt.Println("可用命令:")
	fmt.Println("  help                          显示本帮助")
	fmt.Println("  exit | quit                   退出控制台")
	fmt.Println("  refresh                       重新拉取平台资源")
	fmt.Println()
	fmt.Println("  project list                  列出所有项目")
	fmt.Println("  project open <uuid>           输出项目控制台页面地址")
	fmt.Println()
	fmt.Println("  env list                      列出所有环境")
	fmt.Println()
	fmt.Println("  resource list [token]         列出资源，支持过滤令牌:")
	fmt.Println("                                all / project:<id> / env:<name>")
	fmt.Println("                                type:<kind> / status:<state>")
	fmt.Println("  resource open <id>            输出资源控制台页面地址")
	fmt.Println("  resource url <id>             输出资源公网访问地址")
	fmt.Println()
	fmt.Println("  app logs <uuid> [lines]       查看应用日志")
	fmt.Println("  app deploy <uuid> [--force]   触发应用部署")
	fmt.Println("  app deployments <uuid>        查看部署记录")
	fmt.Println()
	fmt.Println("  team list                     列出团队")
	fmt.Println("  secret list <app-uuid>        列出应用环境变量（打码）")
	fmt.Println("  instance list | get <name>    查看平台实例配置")
	fmt.Println()
	fmt.Println("提示: 建议先通过 'project list' 和 'resource list' 了解平台现状。")
}
