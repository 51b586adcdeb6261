package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config carries the settings the download and cache plumbing needs.
// Nothing here lives in package-level state: callers construct a Config
// once and pass it down.
type Config struct {
	// CacheDir is the flat directory holding one manifest file per branch.
	CacheDir string `mapstructure:"cache_dir"`
	// Endpoint is the base URL of the branch manifest export API.
	Endpoint string `mapstructure:"endpoint"`
	// Output is the path the JSON report is written to.
	Output string `mapstructure:"output"`
	// TTL is how long a cached manifest stays fresh.
	TTL time.Duration `mapstructure:"ttl"`
	// Timeout bounds a single manifest download.
	Timeout time.Duration `mapstructure:"timeout"`
}

const (
	defaultCacheDirName = ".branchdiff"
	defaultEndpoint     = "https://rdb.altlinux.org/api/export/branch_binary_packages"
	defaultOutput       = "output.json"
	defaultTTL          = time.Hour
	defaultTimeout      = 30 * time.Second
)

// Load builds the configuration from defaults and BRANCHDIFF_* environment
// variables (BRANCHDIFF_CACHE_DIR, BRANCHDIFF_TTL=30m, ...).
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("cache_dir", defaultCacheDir())
	v.SetDefault("endpoint", defaultEndpoint)
	v.SetDefault("output", defaultOutput)
	v.SetDefault("ttl", defaultTTL)
	v.SetDefault("timeout", defaultTimeout)

	v.SetEnvPrefix("branchdiff")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaultCacheDir falls back to a relative directory when the home
// directory cannot be resolved.
func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultCacheDirName
	}
	return filepath.Join(home, defaultCacheDirName)
}
