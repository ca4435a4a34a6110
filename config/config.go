package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

type DatabaseConfig struct {
	User            string
	Password        string
	Host            string
	Port            string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Address      string
	Password     string
	FlushOnStart bool
}

type TokenConfig struct {
	Secret          string
	Lifetime        time.Duration
	RefreshSecret   string
	RefreshLifetime time.Duration
}

type StorageConfig struct {
	Provider           string
	PhotosPath         string
	DocsPath           string
	GCSBucket          string
	GCSCredentialsJSON string
	S3Bucket           string
	S3Region           string
	S3Endpoint         string
	S3PathStyle        bool
	S3AccessKeyID      string
	S3SecretAccessKey  string
}

type PubSubConfig struct {
	ProjectID       string
	Topic           string
	CredentialsJSON string
}

type RateLimitConfig struct {
	Enabled     bool
	MaxRequests int64
	Window      time.Duration
}

type Config struct {
	Port               string
	Env                string
	LogLevel           string
	CorsAllowedOrigins []string
	SkipMigrations     bool
	PhoneRegion        string
	PermissionCacheTTL time.Duration
	APQCacheTTL        time.Duration

	Database  DatabaseConfig
	Redis     RedisConfig
	Token     TokenConfig
	Storage   StorageConfig
	PubSub    PubSubConfig
	RateLimit RateLimitConfig
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

// Load reads .env, an optional yaml file named by CONFIG_FILE, then the
// process environment. Later sources win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if path := strings.TrimSpace(os.Getenv("CONFIG_FILE")); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, errors.Wrapf(err, "read config file %s", path)
		}
	}
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(key), value
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}
	return fromKoanf(k)
}

func fromKoanf(k *koanf.Koanf) (*Config, error) {
	cfg := &Config{
		Port:               stringOr(k, "port", "8080"),
		Env:                k.String("go_env"),
		LogLevel:           stringOr(k, "log_level", "error"),
		CorsAllowedOrigins: splitAndTrim(k.String("cors_allowed_origins")),
		SkipMigrations:     k.Bool("skip_migrations"),
		PhoneRegion:        stringOr(k, "phone_region", "PE"),
		PermissionCacheTTL: durationOr(k, "permission_cache_ttl", 900*time.Second),
		APQCacheTTL:        durationOr(k, "apq_cache_ttl", 24*time.Hour),
		Database: DatabaseConfig{
			User:            k.String("db_user"),
			Password:        k.String("db_password"),
			Host:            stringOr(k, "db_host", "127.0.0.1"),
			Port:            stringOr(k, "db_port", "3306"),
			Name:            stringOr(k, "db_name", "grange"),
			MaxOpenConns:    intOr(k, "db_max_open_conns", 50),
			MaxIdleConns:    intOr(k, "db_max_idle_conns", 25),
			ConnMaxLifetime: durationOr(k, "db_conn_max_lifetime", 5*time.Minute),
			ConnMaxIdleTime: durationOr(k, "db_conn_max_idle_time", time.Minute),
		},
		Redis: RedisConfig{
			Address:      stringOr(k, "redis_address", "localhost:6379"),
			Password:     k.String("redis_password"),
			FlushOnStart: k.Bool("redis_flush_on_start"),
		},
		Token: TokenConfig{
			Secret:          k.String("jwt_secret"),
			Lifetime:        durationOr(k, "jwt_life_time", 15*time.Minute),
			RefreshSecret:   k.String("jwt_refresh_secret"),
			RefreshLifetime: durationOr(k, "jwt_refresh_time", 7*24*time.Hour),
		},
		Storage: StorageConfig{
			Provider:           strings.ToLower(stringOr(k, "storage_provider", "local")),
			PhotosPath:         stringOr(k, "storage_path_photos", "./storage/photos"),
			DocsPath:           stringOr(k, "storage_path_docs", "./storage/files"),
			GCSBucket:          k.String("gcs_bucket"),
			GCSCredentialsJSON: k.String("gcs_credentials_json"),
			S3Bucket:           k.String("s3_bucket"),
			S3Region:           k.String("s3_region"),
			S3Endpoint:         k.String("s3_endpoint"),
			S3PathStyle:        k.Bool("s3_path_style"),
			S3AccessKeyID:      k.String("s3_access_key_id"),
			S3SecretAccessKey:  k.String("s3_secret_access_key"),
		},
		PubSub: PubSubConfig{
			ProjectID:       firstNonEmpty(k.String("pubsub_project_id"), k.String("google_cloud_project")),
			Topic:           k.String("pubsub_topic"),
			CredentialsJSON: k.String("pubsub_credentials_json"),
		},
		RateLimit: RateLimitConfig{
			Enabled:     k.Bool("rate_limit_enabled"),
			MaxRequests: int64(intOr(k, "rate_limit_max_requests", 600)),
			Window:      durationOr(k, "rate_limit_window", time.Minute),
		},
	}
	if cfg.Token.Secret == "" || cfg.Token.RefreshSecret == "" {
		if cfg.IsProduction() {
			return nil, errors.New("JWT_SECRET and JWT_REFRESH_SECRET are required in production")
		}
		cfg.Token.Secret = firstNonEmpty(cfg.Token.Secret, "grange-dev-secret")
		cfg.Token.RefreshSecret = firstNonEmpty(cfg.Token.RefreshSecret, "grange-dev-refresh-secret")
	}
	return cfg, nil
}

func stringOr(k *koanf.Koanf, key, def string) string {
	if v := strings.TrimSpace(k.String(key)); v != "" {
		return v
	}
	return def
}

func intOr(k *koanf.Koanf, key string, def int) int {
	if !k.Exists(key) {
		return def
	}
	return k.Int(key)
}

// durationOr accepts Go durations ("15m") or plain seconds ("900").
func durationOr(k *koanf.Koanf, key string, def time.Duration) time.Duration {
	raw := strings.TrimSpace(k.String(key))
	if raw == "" {
		return def
	}
	if d, err := time.ParseDuration(raw); err == nil && d > 0 {
		return d
	}
	if n := k.Int64(key); n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func splitAndTrim(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
