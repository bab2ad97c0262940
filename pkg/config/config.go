package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 项目配置结构体
type Config struct {
	Providers   ProvidersConfig   `yaml:"providers"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Log         LogConfig         `yaml:"log"`
	Server      ServerConfig      `yaml:"server"`
	Knowledge   KnowledgeConfig   `yaml:"knowledge"`
}

// ProvidersConfig 评分引擎的层级配置，按 Order 依次尝试
type ProvidersConfig struct {
	Order     []string  `yaml:"order"`
	Primary   LLMConfig `yaml:"primary"`
	Secondary LLMConfig `yaml:"secondary"`
}

// LLMConfig 远端模型服务配置
type LLMConfig struct {
	BaseURL        string `yaml:"base_url"`
	APIKey         string `yaml:"api_key"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ConcurrencyConfig 远端调用限流配置
type ConcurrencyConfig struct {
	QPS int `yaml:"qps"`
	RPM int `yaml:"rpm"`
}

// LogConfig 日志相关配置
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// ServerConfig HTTP 服务配置
type ServerConfig struct {
	Addr    string `yaml:"addr"`
	Timeout string `yaml:"timeout"`
}

// KnowledgeConfig 知识库配置
type KnowledgeConfig struct {
	// Overlay 可选的 YAML 覆盖文件，用于热更新词表
	Overlay string `yaml:"overlay"`
}

// LoadConfig 从指定路径加载配置
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if len(cfg.Providers.Order) == 0 {
		cfg.Providers.Order = []string{"primary", "secondary", "local"}
	}
	if cfg.Concurrency.QPS == 0 {
		cfg.Concurrency.QPS = 2
	}
	if cfg.Concurrency.RPM == 0 {
		cfg.Concurrency.RPM = 60
	}
	for _, name := range cfg.Providers.Order {
		switch name {
		case "primary", "secondary", "local":
		default:
			return nil, fmt.Errorf("unknown provider in order: %s", name)
		}
	}

	return &cfg, nil
}
