package config

import (
	"fmt"
	"time"
)

// Config is the service configuration.
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Blog      BlogConfig      `mapstructure:"blog"`
	Share     ShareConfig     `mapstructure:"share"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string        `mapstructure:"address"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// RateLimitConfig sizes the per-IP token buckets of the score endpoints.
// Sharing builds a card for a result the client already has, so it gets its
// own bucket.
type RateLimitConfig struct {
	Score BucketConfig `mapstructure:"score"`
	Share BucketConfig `mapstructure:"share"`
}

type BucketConfig struct {
	Capacity int           `mapstructure:"capacity"`
	Refill   time.Duration `mapstructure:"refill"`
}

type DatabaseConfig struct {
	Postgres PostgresConfig `mapstructure:"postgres"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// Enabled reports whether a content database is configured. Without one the
// service serves posts from memory.
func (p PostgresConfig) Enabled() bool {
	return p.Host != ""
}

// DSN returns the lib/pq connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

type BlogConfig struct {
	PerPage int `mapstructure:"per_page"`
}

// ShareConfig configures the Kakao share card.
type ShareConfig struct {
	Enabled     bool   `mapstructure:"enabled"`
	KakaoAppKey string `mapstructure:"kakao_app_key"`
	SiteURL     string `mapstructure:"site_url"`
	ImageURL    string `mapstructure:"image_url"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
