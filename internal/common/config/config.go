package config

import (
	"fmt"
	"os"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/sirupsen/logrus"
)

// Config 应用配置。
type Config struct {
	App     AppConfig     `json:"app"`
	Catalog CatalogConfig `json:"catalog"`
	Consul  ConsulConfig  `json:"consul"`
	Log     LogConfig     `json:"log"`
}

// AppConfig 应用元信息。
type AppConfig struct {
	Name string `json:"name"` // 应用名称
}

// CatalogConfig 目录持久化配置。
type CatalogConfig struct {
	InputPath   string `json:"input_path"`   // 启动时加载的 CSV 路径
	OutputPath  string `json:"output_path"`  // 退出时保存的 CSV 路径
	ReceiptPath string `json:"receipt_path"` // 结算单 JSON 导出路径
}

// ConsulConfig Consul KV 配置源（可选）。Key 为空时不启用。
type ConsulConfig struct {
	Host string `json:"host"`
	Port int    `json:"port"`
	Key  string `json:"key"`
}

// LogConfig 日志配置。
type LogConfig struct {
	Level  string `json:"level"`  // debug, info, warn, error
	Format string `json:"format"` // json, text
	Output string `json:"output"` // stderr, file
	Path   string `json:"path"`   // 日志文件路径
}

var (
	globalConfig *Config
	configOnce   sync.Once
)

// LoadConfig 加载配置。配置文件不存在时使用默认配置。
func LoadConfig(configPath string) (*Config, error) {
	var err error
	configOnce.Do(func() {
		globalConfig = &Config{}
		if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
			logrus.Warnf("Config file not found: %s, using default config", configPath)
			globalConfig = defaultConfig()
			return
		}

		data, readErr := os.ReadFile(configPath)
		if readErr != nil {
			err = fmt.Errorf("failed to read config file: %w", readErr)
			return
		}

		if unmarshalErr := json.Unmarshal(data, globalConfig); unmarshalErr != nil {
			err = fmt.Errorf("failed to parse config file: %w", unmarshalErr)
			return
		}
	})

	if err != nil {
		return nil, err
	}

	return globalConfig, nil
}

// GetConfig 获取全局配置。
func GetConfig() *Config {
	if globalConfig == nil {
		return defaultConfig()
	}
	return globalConfig
}

// defaultConfig 默认配置（本地运行）。
func defaultConfig() *Config {
	return &Config{
		App: AppConfig{
			Name: "drivequest-rentals",
		},
		Catalog: CatalogConfig{
			InputPath:   "vehiculos.csv",
			OutputPath:  "vehiculos_out.csv",
			ReceiptPath: "boletas.json",
		},
		Consul: ConsulConfig{
			Host: "localhost",
			Port: 8500,
			Key:  "",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
			Path:   "logs/app.log",
		},
	}
}
