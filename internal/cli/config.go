package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Cache backend names accepted in the config file.
const (
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
	CacheBackendNone  = "none"
)

// Config is the on-disk CLI configuration, read from
// ~/.config/stableset/config.toml. Every field has a sensible default, so
// the file is optional. Flags override config values.
//
// Example:
//
//	max_candidates = 20
//
//	[cache]
//	backend = "redis"
//	redis_url = "redis://localhost:6379/0"
//
//	[server]
//	listen = ":8080"
//	archive_uri = "mongodb://localhost:27017"
type Config struct {
	// MaxCandidates caps the candidate count accepted by analyses.
	MaxCandidates int `toml:"max_candidates"`

	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
}

// CacheConfig selects the cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "none".
	Backend string `toml:"backend"`

	// RedisURL is the redis:// connection URL for the redis backend.
	RedisURL string `toml:"redis_url"`
}

// ServerConfig holds settings for the serve command.
type ServerConfig struct {
	// Listen is the HTTP listen address.
	Listen string `toml:"listen"`

	// ArchiveURI is the MongoDB connection URI for the analysis archive.
	// Empty means an in-memory archive.
	ArchiveURI string `toml:"archive_uri"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Cache:  CacheConfig{Backend: CacheBackendFile},
		Server: ServerConfig{Listen: ":8080"},
	}
}

// LoadConfig reads the config file, falling back to defaults when the file
// is missing. A malformed or invalid file is an error; silently ignoring it
// would mask typos.
func LoadConfig() (Config, error) {
	dir, err := configDir()
	if err != nil {
		return DefaultConfig(), nil
	}
	return loadConfigFile(filepath.Join(dir, "config.toml"))
}

func loadConfigFile(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendFile, CacheBackendNone:
	case CacheBackendRedis:
		if c.Cache.RedisURL == "" {
			return fmt.Errorf("cache backend %q requires redis_url", c.Cache.Backend)
		}
	default:
		return fmt.Errorf("unknown cache backend %q (must be file, redis, or none)", c.Cache.Backend)
	}

	if c.MaxCandidates < 0 {
		return fmt.Errorf("max_candidates cannot be negative")
	}
	return nil
}
