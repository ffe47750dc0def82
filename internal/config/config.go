package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the public SpaceTraders v2 endpoint.
const DefaultAPIURL = "https://api.spacetraders.io/v2"

// Config holds the application configuration loaded from files and environment variables.
type Config struct {
	AppName  string `mapstructure:"app_name"`
	Env      string `mapstructure:"app_env"`
	LogLevel string `mapstructure:"log_level"`

	APIURL      string        `mapstructure:"api_url"`
	APIToken    string        `mapstructure:"api_token"`
	AgentSymbol string        `mapstructure:"agent_symbol"`
	HTTPTimeout time.Duration `mapstructure:"-"`

	HTTPTimeoutSeconds int64 `mapstructure:"http_timeout_seconds"`

	SourcesFile         string        `mapstructure:"sources_file"`
	PublishersFile      string        `mapstructure:"publishers_file"`
	PollIntervalSeconds int64         `mapstructure:"poll_interval_seconds"`
	PollInterval        time.Duration `mapstructure:"-"`

	StorageType            string        `mapstructure:"storage_type"`
	StorageTTLSeconds      int64         `mapstructure:"storage_ttl_seconds"`
	StorageCleanupSeconds  int64         `mapstructure:"storage_cleanup_interval_seconds"`
	StorageTTL             time.Duration `mapstructure:"-"`
	StorageCleanupInterval time.Duration `mapstructure:"-"`
}

// String hides the token when the config is logged.
func (c Config) String() string {
	token := ""
	if c.APIToken != "" {
		token = "***"
	}
	return fmt.Sprintf("{app=%s env=%s api_url=%s token=%s agent=%s poll=%s}",
		c.AppName, c.Env, c.APIURL, token, c.AgentSymbol, c.PollInterval)
}

// PublicAgent is the agent looked up in place of my/agent when no token is
// configured. It is empty whenever a token is present.
func (c Config) PublicAgent() string {
	if c.APIToken != "" {
		return ""
	}
	return c.AgentSymbol
}

// Load reads configuration from environment variables and config files.
func Load() (*Config, error) {
	_ = godotenv.Load("configs/.env")
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetDefault("app_name", "spacetraders-go")
	v.SetDefault("app_env", "development")
	v.SetDefault("log_level", "info")
	v.SetDefault("api_url", DefaultAPIURL)
	v.SetDefault("api_token", "")
	v.SetDefault("agent_symbol", "")
	v.SetDefault("http_timeout_seconds", 15)
	v.SetDefault("sources_file", "./configs/sources.yaml")
	v.SetDefault("publishers_file", "./configs/publishers.yaml")
	v.SetDefault("poll_interval_seconds", 300)
	v.SetDefault("storage_type", "memory")
	v.SetDefault("storage_ttl_seconds", int64((24*time.Hour)/time.Second))
	v.SetDefault("storage_cleanup_interval_seconds", int64(time.Hour/time.Second))

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.APIURL = strings.TrimSpace(cfg.APIURL)
	if cfg.APIURL == "" {
		return nil, fmt.Errorf("api_url is required")
	}
	if u, err := url.Parse(cfg.APIURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid api_url %q (must be an absolute URL)", cfg.APIURL)
	}
	cfg.APIToken = strings.TrimSpace(cfg.APIToken)
	cfg.AgentSymbol = strings.ToUpper(strings.TrimSpace(cfg.AgentSymbol))

	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	if cfg.PollIntervalSeconds <= 0 {
		return nil, fmt.Errorf("invalid poll_interval_seconds (must be positive seconds)")
	}
	cfg.PollInterval = time.Duration(cfg.PollIntervalSeconds) * time.Second

	if cfg.StorageTTLSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_ttl_seconds (must be positive seconds)")
	}
	if cfg.StorageCleanupSeconds <= 0 {
		return nil, fmt.Errorf("invalid storage_cleanup_interval_seconds (must be positive seconds)")
	}
	cfg.StorageTTL = time.Duration(cfg.StorageTTLSeconds) * time.Second
	cfg.StorageCleanupInterval = time.Duration(cfg.StorageCleanupSeconds) * time.Second

	return &cfg, nil
}
