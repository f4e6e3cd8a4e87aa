package inputcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vaughan0/go-ini"
)

const (
	appName     = "advent2023"
	DefaultYear = 2023

	// CacheDirEnv overrides the configured cache directory.
	CacheDirEnv = "ADVENT_CACHE_DIR"
)

// Config is read from an ini file like
//
//	[cache]
//	dir = /var/tmp/advent
//
//	[puzzle]
//	year = 2023
type Config struct {
	CacheDir string
	Year     int
}

// DefaultConfigPath returns config.ini in the user's config directory.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appName, "config.ini"), nil
}

// LoadConfig reads the config file at path. A missing file yields the
// default config.
func LoadConfig(path string) (Config, error) {
	conf := Config{Year: DefaultYear}
	f, err := ini.LoadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return conf, nil
		}
		return conf, fmt.Errorf("error loading config (%s): %s", path, err)
	}
	if dir, ok := f.Get("cache", "dir"); ok {
		conf.CacheDir = dir
	}
	if s, ok := f.Get("puzzle", "year"); ok {
		year, err := strconv.Atoi(s)
		if err != nil || year < 2015 {
			return conf, fmt.Errorf("bad puzzle year %q in %s", s, path)
		}
		conf.Year = year
	}
	return conf, nil
}

// ResolveCacheDir picks the cache directory. The first of these that is
// set wins: override (normally a flag), $ADVENT_CACHE_DIR, the config
// file, and finally a directory under the user's cache directory.
func (c Config) ResolveCacheDir(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	if dir := os.Getenv(CacheDirEnv); dir != "" {
		return dir, nil
	}
	if c.CacheDir != "" {
		return c.CacheDir, nil
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("no cache dir configured and no user cache dir: %s", err)
	}
	return filepath.Join(dir, appName), nil
}
