package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config 应用配置
type Config struct {
	// 默认使用的平台实例名
	Instance string

	// 列表缓存过期时间（秒）
	CacheTTLSeconds int

	// 日志配置
	Log LogConfig
}

// LogConfig 日志配置
type LogConfig struct {
	// 日志级别：DEBUG, INFO, WARN, ERROR
	Level string

	// 是否启用控制台输出
	EnableConsole bool

	// 是否启用文件输出
	EnableFile bool

	// 日志目录
	LogDir string

	// 日志文件名（如果为空，则使用默认格式）
	LogFile string
}

// configPaths 配置文件搜索路径（当前目录优先）
func configPaths() []string {
	paths := []string{".deploybot.ini"}
	if homeDir := os.Getenv("HOME"); homeDir != "" {
		paths = append(paths, filepath.Join(homeDir, ".deploybot", ".deploybot.ini"))
	}
	return paths
}

// LoadConfig 加载配置文件
// 先加载当前目录的 .env（存在时），再按搜索路径读取 ini 配置；
// 配置文件不存在时使用默认值
func LoadConfig() (*Config, error) {
	// .env 中可以放 DEPLOYBOT_BASE_URL / DEPLOYBOT_TOKEN，找不到文件不算错误
	_ = godotenv.Load()

	var configPath string
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err == nil {
			configPath = path
			break
		}
	}

	config := &Config{
		Instance:        "default",
		CacheTTLSeconds: 60,
		Log: LogConfig{
			Level:         "INFO",
			EnableConsole: false,
			EnableFile:    true,
			LogDir:        "logs",
			LogFile:       "",
		},
	}

	// 尝试读取配置文件
	var cfgFile *ini.File
	if configPath != "" {
		loaded, err := ini.Load(configPath)
		if err != nil {
			return nil, fmt.Errorf("加载配置文件 %s 失败: %w", configPath, err)
		}
		cfgFile = loaded
	}

	// 如果成功加载配置文件，读取配置值
	if cfgFile != nil {
		if section := cfgFile.Section("default"); section != nil {
			if instance := section.Key("instance").String(); instance != "" {
				config.Instance = instance
			}
			if ttl, err := section.Key("cache_ttl").Int(); err == nil && ttl > 0 {
				config.CacheTTLSeconds = ttl
			}
		}

		if section := cfgFile.Section("log"); section != nil {
			if level := section.Key("level").String(); level != "" {
				config.Log.Level = level
			}
			if enableConsole := section.Key("enable_console").String(); enableConsole != "" {
				config.Log.EnableConsole = enableConsole == "true" || enableConsole == "1"
			}
			if enableFile := section.Key("enable_file").String(); enableFile != "" {
				config.Log.EnableFile = enableFile == "true" || enableFile == "1"
			}
			if logDir := section.Key("log_dir").String(); logDir != "" {
				config.Log.LogDir = logDir
			}
			if logFile := section.Key("log_file").String(); logFile != "" {
				config.Log.LogFile = logFile
			}
		}
	}

	return config, nil
}
