package credentials

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/ini.v1"
)

// 环境变量名（对 default 实例生效）
const (
	EnvBaseURL = "DEPLOYBOT_BASE_URL"
	EnvToken   = "DEPLOYBOT_TOKEN"
)

// sectionPrefix 实例在配置文件中的节名前缀，避免和应用配置节冲突
const sectionPrefix = "instance:"

// Instance 平台实例凭据
// 一个实例对应一套自托管的部署平台（地址 + API 令牌）
type Instance struct {
	BaseURL string // 平台地址（如 https://deploy.example.com）
	Token   string // API 令牌
}

// Manager 实例凭据管理器接口
type Manager interface {
	// GetInstance 获取指定实例的凭据
	GetInstance(name string) (*Instance, error)

	// SetInstance 设置指定实例的凭据
	SetInstance(name string, inst *Instance) error

	// HasInstance 检查是否已配置实例
	HasInstance(name string) bool

	// ListInstances 列出所有已配置的实例名（按名称排序）
	ListInstances() []string

	// RemoveInstance 删除指定实例
	RemoveInstance(name string) error
}

// manager 实例凭据管理器实现
type manager struct {
	configPath string
	mu         sync.RWMutex
	instances  map[string]*Instance
}

var defaultManager Manager
var once sync.Once

// NewManager 创建实例凭据管理器
func NewManager(configPath string) (Manager, error) {
	m := &manager{
		configPath: configPath,
		instances:  make(map[string]*Instance),
	}

	if err := m.load(); err != nil {
		return nil, fmt.Errorf("加载实例配置失败: %w", err)
	}

	return m, nil
}

// GetDefaultManager 获取默认实例凭据管理器
func GetDefaultManager() Manager {
	once.Do(func() {
		// 优先使用当前目录的 .deploybot.ini
		configPaths := []string{
			".deploybot.ini",
			filepath.Join(os.Getenv("HOME"), ".deploybot", ".deploybot.ini"),
		}

		var configPath string
		for _, path := range configPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}

		// 配置文件不存在时使用第一个路径（保存时会自动创建）
		if configPath == "" {
			configPath = configPaths[0]
		}

		m, err := NewManager(configPath)
		if err != nil {
			// 创建失败时至少保证可以保存
			defaultManager = &manager{
				configPath: configPath,
				instances:  make(map[string]*Instance),
			}
		} else {
			defaultManager = m
		}
	})

	return defaultManager
}

// load 从配置文件加载实例凭据
func (m *manager) load() error {
	if m.configPath == "" {
		return nil
	}
	if _, err := os.Stat(m.configPath); os.IsNotExist(err) {
		return nil
	}

	cfg, err := ini.Load(m.configPath)
	if err != nil {
		// 加载失败时只依赖环境变量兜底
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, section := range cfg.Sections() {
		name := section.Name()
		if !strings.HasPrefix(name, sectionPrefix) {
			continue
		}

		instanceName := strings.TrimPrefix(name, sectionPrefix)
		baseURL := section.Key("base_url").String()
		token := section.Key("token").String()

		if instanceName != "" && baseURL != "" && token != "" {
			m.instances[instanceName] = &Instance{
				BaseURL: baseURL,
				Token:   token,
			}
		}
	}

	return nil
}

// envInstance 从环境变量构造 default 实例凭据
func envInstance() *Instance {
	baseURL := os.Getenv(EnvBaseURL)
	token := os.Getenv(EnvToken)
	if baseURL != "" && token != "" {
		return &Instance{BaseURL: baseURL, Token: token}
	}
	return nil
}

// GetInstance 获取指定实例的凭据
// 配置文件优先；default 实例可以从环境变量兜底
func (m *manager) GetInstance(name string) (*Instance, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if inst, ok := m.instances[name]; ok {
		return inst, nil
	}

	if name == "default" {
		if inst := envInstance(); inst != nil {
			return inst, nil
		}
	}

	return nil, fmt.Errorf("未找到实例 %s 的配置", name)
}

// SetInstance 设置指定实例的凭据
func (m *manager) SetInstance(name string, inst *Instance) error {
	if name == "" {
		return fmt.Errorf("实例名不能为空")
	}
	if inst == nil || inst.BaseURL == "" || inst.Token == "" {
		return fmt.Errorf("实例地址和令牌不能为空")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.instances[name] = inst
	return m.save()
}

// HasInstance 检查是否已配置实例
func (m *manager) HasInstance(name string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.instances[name]; ok {
		return true
	}
	return name == "default" && envInstance() != nil
}

// ListInstances 列出所有已配置的实例名
func (m *manager) ListInstances() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var names []string
	for name := range m.instances {
		names = append(names, name)
	}

	// 环境变量中配置的 default 实例也计入
	if _, ok := m.instances["default"]; !ok && envInstance() != nil {
		names = append(names, "default")
	}

	sort.Strings(names)
	return names
}

// RemoveInstance 删除指定实例
func (m *manager) RemoveInstance(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.instances[name]; !ok {
		return fmt.Errorf("未找到实例 %s 的配置", name)
	}

	delete(m.instances, name)
	return m.save()
}

// save 保存实例凭据到配置文件
func (m *manager) save() error {
	if m.configPath == "" {
		m.configPath = ".deploybot.ini"
	}

	// 确保目录存在
	dir := filepath.Dir(m.configPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("创建配置目录失败: %w", err)
		}
	}

	// 加载现有配置，保留应用配置节
	var cfg *ini.File
	if _, err := os.Stat(m.configPath); err == nil {
		loaded, err := ini.Load(m.configPath)
		if err != nil {
			cfg = ini.Empty()
		} else {
			cfg = loaded
		}
	} else {
		cfg = ini.Empty()
	}

	// 先删掉所有实例节再重写，保证删除操作能落盘
	for _, section := range cfg.Sections() {
		if strings.HasPrefix(section.Name(), sectionPrefix) {
			cfg.DeleteSection(section.Name())
		}
	}

	for name, inst := range m.instances {
		section := cfg.Section(sectionPrefix + name)
		section.Key("base_url").SetValue(inst.BaseURL)
		section.Key("token").SetValue(inst.Token)
	}

	return cfg.SaveTo(m.configPath)
}
