package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server      ServerConfig
	Redis       RedisConfig
	Catalog     CatalogConfig
	Geolocation GeolocationConfig
	Cache       CacheConfig
	Auth        AuthConfig
	Worker      WorkerConfig
	Log         LogConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// CatalogConfig describes where the category JSON sources live and which
// of them are essential for a usable catalog.
type CatalogConfig struct {
	BaseURL            string
	Categories         []string
	RequiredCategories []string
	FetchTimeout       time.Duration
}

type GeolocationConfig struct {
	// ResolveTimeout bounds how long a session position may stay pending
	// before it is marked failed with a timeout reason.
	ResolveTimeout time.Duration
	SessionTTL     time.Duration
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
	StatsCacheTTL  time.Duration
}

type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
	// MockLatency simulates backend latency on the mock auth flow.
	MockLatency time.Duration
}

type WorkerConfig struct {
	RefreshEnabled  bool
	RefreshInterval time.Duration
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: viper.GetString("API_HOST"),
			Port: viper.GetInt("API_PORT"),
			Env:  viper.GetString("API_ENV"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetInt("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Catalog: CatalogConfig{
			BaseURL:            viper.GetString("CATALOG_BASE_URL"),
			Categories:         parseList(viper.GetString("CATALOG_CATEGORIES")),
			RequiredCategories: parseList(viper.GetString("CATALOG_REQUIRED")),
			FetchTimeout:       time.Duration(viper.GetInt("CATALOG_FETCH_TIMEOUT")) * time.Second,
		},
		Geolocation: GeolocationConfig{
			ResolveTimeout: time.Duration(viper.GetInt("GEO_RESOLVE_TIMEOUT")) * time.Second,
			SessionTTL:     time.Duration(viper.GetInt("GEO_SESSION_TTL")) * time.Second,
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(viper.GetInt("SEARCH_CACHE_TTL")) * time.Second,
			StatsCacheTTL:  time.Duration(viper.GetInt("STATS_CACHE_TTL")) * time.Second,
		},
		Auth: AuthConfig{
			SigningKey:  viper.GetString("AUTH_SIGNING_KEY"),
			TokenTTL:    time.Duration(viper.GetInt("AUTH_TOKEN_TTL")) * time.Second,
			MockLatency: time.Duration(viper.GetInt("AUTH_MOCK_LATENCY_MS")) * time.Millisecond,
		},
		Worker: WorkerConfig{
			RefreshEnabled:  viper.GetBool("CATALOG_REFRESH_ENABLED"),
			RefreshInterval: time.Duration(viper.GetInt("CATALOG_REFRESH_INTERVAL")) * time.Second,
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	// Set default values if not provided
	if len(cfg.Catalog.Categories) == 0 {
		cfg.Catalog.Categories = []string{"alimentacao", "infantil", "beleza", "lazer", "pets"}
	}
	if len(cfg.Catalog.RequiredCategories) == 0 {
		cfg.Catalog.RequiredCategories = []string{"alimentacao", "infantil", "beleza", "lazer"}
	}
	if cfg.Catalog.FetchTimeout == 0 {
		cfg.Catalog.FetchTimeout = 15 * time.Second
	}
	if cfg.Geolocation.ResolveTimeout == 0 {
		cfg.Geolocation.ResolveTimeout = 10 * time.Second
	}
	if cfg.Geolocation.SessionTTL == 0 {
		cfg.Geolocation.SessionTTL = 30 * time.Minute
	}
	if cfg.Cache.SearchCacheTTL == 0 {
		cfg.Cache.SearchCacheTTL = 60 * time.Second
	}
	if cfg.Cache.StatsCacheTTL == 0 {
		cfg.Cache.StatsCacheTTL = 5 * time.Minute
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = time.Hour
	}
	if cfg.Worker.RefreshInterval == 0 {
		cfg.Worker.RefreshInterval = 15 * time.Minute
	}

	return cfg, nil
}

func parseList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
