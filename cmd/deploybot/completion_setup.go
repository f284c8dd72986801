package main

import (
	"github.com/lucksec/deploybot/internal/service"
	"github.com/spf13/cobra"
)

// setupDynamicCompletion 设置动态补全
func setupDynamicCompletion(rootCmd *cobra.Command, resourceSvc service.ResourceService) {
	// 项目相关命令的补全
	setupProjectCompletion(rootCmd, resourceSvc)

	// 资源相关命令的补全
	setupResourceCompletion(rootCmd, resourceSvc)

	// 应用相关命令的补全
	setupAppCompletion(rootCmd, resourceSvc)

	// 部署记录命令的补全
	setupDeploymentCompletion(rootCmd, resourceSvc)

	// 密钥相关命令的补全
	setupSecretCompletion(rootCmd, resourceSvc)

	// 实例相关命令的补全
	setupInstanceCompletion(rootCmd)
}

// setupProjectCompletion 设置项目命令的补全
func setupProjectCompletion(rootCmd *cobra.Command, resourceSvc service.ResourceService) {
	projectCmd := findCommand(rootCmd, "project")
	if projectCmd == nil {
		return
	}

	for _, name := range []string{"show", "open"} {
		if sub := findCommand(projectCmd, name); sub != nil {
			sub.ValidArgsFunction = completeProjects(resourceSvc)
		}
	}
}

// setupResourceCompletion 设置资源命令的补全
func setupResourceCompletion(rootCmd *cobra.Command, resourceSvc service.ResourceService) {
	resourceCmd := findCommand(rootCmd, "resource")
	if resourceCmd == nil {
		return
	}

	// resource list --filter 的令牌补全
	listCmd := findCommand(resourceCmd, "list")
	if listCmd != nil {
		listCmd.RegisterFlagCompletionFunc("filter", completeFilterFlag(resourceSvc))
	}

	// resource open <id> / resource url <id>
	openCmd := findCommand(resourceCmd, "open")
	if openCmd != nil {
		openCmd.ValidArgsFunction = completeResources(resourceSvc, "all")
	}

	urlCmd := findCommand(resourceCmd, "url")
	if urlCmd != nil {
		urlCmd.ValidArgsFunction = completeResources(resourceSvc, "all")
	}
}

// setupAppCompletion 设置应用命令的补全
func setupAppCompletion(rootCmd *cobra.Command, resourceSvc service.ResourceService) {
	appCmd := findCommand(rootCmd, "app")
	if appCmd == nil {
		return
	}

	// 应用操作统一按应用 UUID 补全
	for _, name := range []string{"logs", "deploy", "deployments"} {
		if sub := findCommand(appCmd, name); sub != nil {
			sub.ValidArgsFunction = completeResources(resourceSvc, "type:application")
		}
	}
}

// setupDeploymentCompletion 设置部署记录命令的补全
func setupDeploymentCompletion(rootCmd *cobra.Command, resourceSvc service.ResourceService) {
	deploymentCmd := findCommand(rootCmd, "deployment")
	if deploymentCmd == nil {
		return
	}

	if sub := findCommand(deploymentCmd, "list"); sub != nil {
		sub.ValidArgsFunction = completeResources(resourceSvc, "type:application")
	}
}

// setupSecretCompletion 设置密钥命令的补全
func setupSecretCompletion(rootCmd *cobra.Command, resourceSvc service.ResourceService) {
	secretCmd := findCommand(rootCmd, "secret")
	if secretCmd == nil {
		return
	}

	listCmd := findCommand(secretCmd, "list")
	if listCmd != nil {
		listCmd.ValidArgsFunction = completeResources(resourceSvc, "type:application")
	}
}

// setupInstanceCompletion 设置实例命令的补全
func setupInstanceCompletion(rootCmd *cobra.Command) {
	instanceCmd := findCommand(rootCmd, "instance")
	if instanceCmd == nil {
		return
	}

	for _, name := range []string{"get", "remove"} {
		if sub := findCommand(instanceCmd, name); sub != nil {
			sub.ValidArgsFunction = completeInstances()
		}
	}
}

// findCommand 查找命令
func findCommand(root *cobra.Command, name string) *cobra.Command {
	for _, cmd := range root.Commands() {
		if cmd.Name() == name {
			return cmd
		}
		// 递归查找子命令
		if found := findCommand(cmd, name); found != nil {
			return found
		}
	}
	return nil
}
