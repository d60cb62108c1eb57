package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"github.com/dkeye/callfocus/internal/domain"
)

// MaxMeetingTTL is the backend meeting lifetime. Cached bindings must expire first.
const MaxMeetingTTL = 24 * time.Hour

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

type Config struct {
	Mode          string       `mapstructure:"mode"`
	Port          int          `mapstructure:"port"`
	ServerName    string       `mapstructure:"server_name"`
	PublicBaseURL string       `mapstructure:"public_base_url"`
	Log           LogConfig    `mapstructure:"log"`
	Matrix        MatrixConfig `mapstructure:"matrix"`
	RTK           RTKConfig    `mapstructure:"rtk"`
	Cache         CacheConfig  `mapstructure:"cache"`
	Redis         RedisConfig  `mapstructure:"redis"`
	HTTP          HTTPConfig   `mapstructure:"http"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
}

type MatrixConfig struct {
	HomeserverURL string `mapstructure:"homeserver_url"`
	AccessToken   string `mapstructure:"access_token"`
}

type RTKConfig struct {
	BaseURL    string `mapstructure:"base_url"`
	AccountID  string `mapstructure:"account_id"`
	APIToken   string `mapstructure:"api_token"`
	AppID      string `mapstructure:"app_id"`
	PresetName string `mapstructure:"preset_name"`
}

type CacheConfig struct {
	Backend    string        `mapstructure:"backend"`
	MeetingTTL time.Duration `mapstructure:"meeting_ttl"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type HTTPConfig struct {
	RequestTimeout  time.Duration `mapstructure:"request_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	// ReadLimit caps inbound request bodies, in bytes.
	ReadLimit int64 `mapstructure:"read_limit"`
}

// Flat environment overrides used by existing deployments.
var envBindings = map[string]string{
	"server_name":           "SERVER_NAME",
	"port":                  "PORT",
	"rtk.account_id":        "CF_ACCOUNT_ID",
	"rtk.api_token":         "CF_API_TOKEN",
	"rtk.app_id":            "CF_APP_ID",
	"rtk.preset_name":       "RTK_PRESET_NAME",
	"matrix.homeserver_url": "MATRIX_HOMESERVER_URL",
	"matrix.access_token":   "MATRIX_ACCESS_TOKEN",
	"redis.addr":            "REDIS_ADDR",
}

// Load reads path, or config/config.<CONFIG_ENV>.yaml when path is empty.
// A missing file is not an error; defaults and environment still apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	fileName := path
	if fileName == "" {
		env := os.Getenv("CONFIG_ENV")
		if env == "" {
			env = "dev"
		}
		fileName = fmt.Sprintf("config/config.%s.yaml", env)
	}
	v.SetConfigFile(fileName)

	setDefaults(v)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config %s: %w", fileName, err)
		}
		log.Warn().Str("module", "config").Str("file", fileName).Msg("config file not found, using defaults")
	} else {
		log.Info().Str("module", "config").Str("file", fileName).Msg("loaded config")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("mode", "release")
	v.SetDefault("port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 100)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("rtk.base_url", "https://api.cloudflare.com/client/v4")
	v.SetDefault("rtk.preset_name", domain.DefaultPresetName)
	v.SetDefault("cache.backend", CacheMemory)
	v.SetDefault("cache.meeting_ttl", "23h")
	v.SetDefault("redis.db", 0)
	v.SetDefault("http.request_timeout", "10s")
	v.SetDefault("http.shutdown_timeout", "5s")
	v.SetDefault("http.read_limit", 32768)
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Cache.MeetingTTL <= 0 || c.Cache.MeetingTTL >= MaxMeetingTTL {
		return fmt.Errorf("cache.meeting_ttl must be in (0, %s), got %s", MaxMeetingTTL, c.Cache.MeetingTTL)
	}
	switch c.Cache.Backend {
	case CacheMemory:
	case CacheRedis:
		if c.Redis.Addr == "" {
			return errors.New("redis.addr is required for the redis cache backend")
		}
	default:
		return fmt.Errorf("unknown cache.backend %q", c.Cache.Backend)
	}
	if c.HTTP.RequestTimeout <= 0 {
		return fmt.Errorf("http.request_timeout must be positive")
	}
	if c.HTTP.ReadLimit <= 0 {
		return fmt.Errorf("http.read_limit must be positive")
	}
	if c.CallConfig() != nil {
		if c.ServiceURL() == "" {
			return errors.New("server_name or public_base_url is required when calls are enabled")
		}
		if c.Matrix.AccessToken == "" {
			return errors.New("matrix.access_token is required when calls are enabled")
		}
	}
	return nil
}

// CallConfig returns nil when the backend credentials are incomplete,
// which disables calls.
func (c *Config) CallConfig() *domain.CallConfig {
	cc, err := domain.NewCallConfig(c.RTK.AccountID, c.RTK.APIToken, c.RTK.AppID, c.RTK.PresetName)
	if err != nil {
		return nil
	}
	return cc
}

// ServiceURL is the public base URL clients reach this service at.
func (c *Config) ServiceURL() string {
	if c.PublicBaseURL != "" {
		return strings.TrimRight(c.PublicBaseURL, "/")
	}
	if c.ServerName == "" {
		return ""
	}
	return "https://" + c.ServerName
}

// HomeserverURL defaults to the server name, where the homeserver and this
// service usually share a host.
func (c *Config) HomeserverURL() string {
	if c.Matrix.HomeserverURL != "" {
		return strings.TrimRight(c.Matrix.HomeserverURL, "/")
	}
	if c.ServerName == "" {
		return ""
	}
	return "https://" + c.ServerName
}
