package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Service       ServiceConfig       `mapstructure:"service"`
	Databases     DatabasesConfig     `mapstructure:"databases"`
	Auth          AuthConfig          `mapstructure:"auth"`
	WeChat        WeChatConfig        `mapstructure:"wechat"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
}

type ServiceType string

const (
	API    ServiceType = "API"
	WORKER ServiceType = "WORKER"
)

type ServiceConfig struct {
	Type ServiceType `mapstructure:"type"`
	Port string      `mapstructure:"port"`
}

type DatabasesConfig struct {
	SQL   SQLConfig   `mapstructure:"sql"`
	Redis RedisConfig `mapstructure:"redis"`
}

type SQLConfig struct {
	Host             string `mapstructure:"host"`
	Port             string `mapstructure:"port"`
	Username         string `mapstructure:"username"`
	Password         string `mapstructure:"password"`
	Driver           string `mapstructure:"driver"`
	Database         string `mapstructure:"database"`
	ConnectionString string `mapstructure:"connection_string"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

type AuthConfig struct {
	// JWTSecret is used as-is unless SecretID is set, in which case the
	// secret is fetched from AWS Secrets Manager at startup.
	JWTSecret      string `mapstructure:"jwtSecret"`
	SecretID       string `mapstructure:"secretId"`
	AWSRegion      string `mapstructure:"awsRegion"`
	TokenHours     int    `mapstructure:"tokenHours"`
	BCryptCost     int    `mapstructure:"bcryptCost"`
	AllowedOrigins string `mapstructure:"allowedOrigins"`
}

type WeChatConfig struct {
	AppID           string `mapstructure:"appId"`
	AppSecret       string `mapstructure:"appSecret"`
	SecretID        string `mapstructure:"secretId"`
	RedirectURI     string `mapstructure:"redirectUri"`
	AuthBaseURL     string `mapstructure:"authBaseUrl"`
	APIBaseURL      string `mapstructure:"apiBaseUrl"`
	QRExpirySeconds int    `mapstructure:"qrExpirySeconds"`
}

type NotificationsConfig struct {
	CronSpec            string `mapstructure:"cronSpec"`
	DefaultExpiringDays int    `mapstructure:"defaultExpiringDays"`
	DefaultRentDueDays  int    `mapstructure:"defaultRentDueDays"`
}

func LoadConfig(path, env string) (*Config, error) {
	var cfg Config

	viper.AddConfigPath(path)
	viper.SetConfigName("appsettings")
	viper.SetConfigType("yaml")

	err := viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	// Environment-specific settings overlay the base file when present.
	if env != "" {
		viper.SetConfigName("appsettings." + env)
		if err := viper.MergeInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, err
			}
		}
	}

	err = viper.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}
