package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// DefaultPath 默认配置文件路径，文件不存在时使用内置默认值
const DefaultPath = "config/config.yaml"

// EnvPrefix 环境变量前缀，例如 AIRQ_SERVER_PORT 覆盖 server.port
const EnvPrefix = "AIRQ"

// Config 应用配置
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Model   ModelConfig   `mapstructure:"model"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

type AppConfig struct {
	Name     string `mapstructure:"name" validate:"required"`
	Env      string `mapstructure:"env" validate:"oneof=debug release test"`
	LogLevel string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
}

type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port" validate:"min=1,max=65535"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// ModelConfig 模型文件配置，模型在启动时加载一次
type ModelConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

var validate = validator.New()

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "air-quality-api")
	v.SetDefault("app.env", "debug")
	v.SetDefault("app.log_level", "debug")
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 10000)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("model.path", "model/best_catboost_model.json")
	v.SetDefault("metrics.enabled", true)
}

// Load 从配置文件加载配置，环境变量优先于文件
// configPath 为空时只使用默认值和环境变量
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config failed: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config failed: %w", err)
	}

	return &cfg, nil
}

// LoadDefault 加载默认配置文件路径，文件不存在时不报错
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultPath); errors.Is(err, os.ErrNotExist) {
		return Load("")
	}
	return Load(DefaultPath)
}

// Validate 验证配置完整性
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Addr 返回 HTTP Server 监听地址
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// IsDebug 是否开启调试模式
func (c *Config) IsDebug() bool {
	return c.App.Env == "debug"
}
