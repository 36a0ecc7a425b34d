package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var defaults = map[string]interface{}{
	"app.name":        "cheongyak-calculator",
	"app.environment": "development",

	"server.address":          ":8080",
	"server.read_timeout":     15 * time.Second,
	"server.write_timeout":    15 * time.Second,
	"server.idle_timeout":     60 * time.Second,
	"server.shutdown_timeout": 10 * time.Second,

	"rate_limit.score.capacity": 5,
	"rate_limit.score.refill":   time.Minute,
	"rate_limit.share.capacity": 3,
	"rate_limit.share.refill":   time.Minute,

	"database.postgres.host":            "",
	"database.postgres.port":            5432,
	"database.postgres.database":        "cheongyak",
	"database.postgres.user":            "postgres",
	"database.postgres.password":        "",
	"database.postgres.max_connections": 10,
	"database.postgres.max_idle":        5,
	"database.postgres.sslmode":         "disable",
	"database.redis.address":            "",
	"database.redis.password":           "",
	"database.redis.db":                 0,

	"cache.ttl": 5 * time.Minute,

	"blog.per_page": 6,

	"share.enabled":       true,
	"share.kakao_app_key": "",
	"share.site_url":      "http://localhost:8080",
	"share.image_url":     "",

	"logging.level":  "info",
	"logging.format": "console",
}

// Load reads configuration. With an explicit path only that file is read;
// otherwise config.yaml is looked up in ./configs and the working directory
// and config.<environment>.yaml is merged on top. Environment variables
// override both, with "." and "-" mapped to "_" (SERVER_ADDRESS, SHARE_KAKAO_APP_KEY).
func Load(path string) (*Config, error) {
	loadEnvFile()

	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read base config: %w", err)
			}
		}

		v.SetConfigName("config." + v.GetString("app.environment"))
		_ = v.MergeInConfig() // optional
	}
	expandEnvPlaceholders(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func loadEnvFile() {
	for _, path := range []string{".env", "../.env"} {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// expandEnvPlaceholders resolves ${VAR} references in string values.
func expandEnvPlaceholders(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		s, ok := v.Get(key).(string)
		if !ok || !strings.Contains(s, "${") {
			continue
		}
		v.Set(key, os.ExpandEnv(s))
	}
}

func (c *Config) Validate() error {
	if c.Server.Address == "" {
		return errors.New("server.address is required")
	}
	for name, b := range map[string]BucketConfig{"score": c.RateLimit.Score, "share": c.RateLimit.Share} {
		if b.Capacity <= 0 {
			return fmt.Errorf("rate_limit.%s.capacity must be positive, got %d", name, b.Capacity)
		}
		if b.Refill <= 0 {
			return fmt.Errorf("rate_limit.%s.refill must be positive", name)
		}
	}
	if c.Blog.PerPage <= 0 {
		return fmt.Errorf("blog.per_page must be positive, got %d", c.Blog.PerPage)
	}
	if c.Share.Enabled && c.Share.SiteURL == "" {
		return errors.New("share.site_url is required when sharing is enabled")
	}
	return nil
}
