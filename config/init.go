package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

var (
	instance *Config
	once     sync.Once
)

// Init 加载配置：先读 config.yaml（可缺省），再用环境变量覆盖
func Init() {
	once.Do(func() {
		instance = &Config{}

		v := viper.New()
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				panic(fmt.Errorf("读取配置文件失败: %w", err))
			}
			// 允许无配置文件，全部走环境变量与默认值
		} else if err := v.Unmarshal(instance); err != nil {
			panic(fmt.Errorf("解析配置文件失败: %w", err))
		}

		if err := envconfig.Process("SOBER", instance); err != nil {
			panic(fmt.Errorf("读取环境变量失败: %w", err))
		}

		applyDefaults(instance)
	})
}

// Get 获取全局配置实例
func Get() *Config {
	if instance == nil {
		Init()
	}
	return instance
}

func applyDefaults(c *Config) {
	if c.Host == "" {
		c.Host = "0.0.0.0"
	}
	if c.Port == "" {
		c.Port = "8000"
	}
	if c.Prefix == "" {
		c.Prefix = "api"
	}
	if c.Mode == "" {
		c.Mode = ModeDebug
	}
	if c.JWT.AccessSecret == "" {
		c.JWT.AccessSecret = "dev-secret-change-in-production"
	}
	if c.JWT.AccessExpire <= 0 {
		c.JWT.AccessExpire = 7 * 24 * 3600
	}
	if c.Google.TokenURL == "" {
		c.Google.TokenURL = "https://oauth2.googleapis.com/token"
	}
	if c.Google.UserInfoURL == "" {
		c.Google.UserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	}
	if c.Challenge.LengthDays <= 0 {
		c.Challenge.LengthDays = 30
	}
	if c.Challenge.LookbackDays <= 0 {
		c.Challenge.LookbackDays = 7
	}
	if c.Challenge.MaxHabits <= 0 {
		c.Challenge.MaxHabits = 10
	}
	if c.Challenge.CacheTTL <= 0 {
		c.Challenge.CacheTTL = 300
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.MaxSize <= 0 {
		c.Log.MaxSize = 100
	}
}
