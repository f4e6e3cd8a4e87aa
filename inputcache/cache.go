// Package inputcache keeps puzzle inputs on local disk so that solutions
// can be run repeatedly without looking for the input file each time.
package inputcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/cp"
	"go.uber.org/zap"
)

var ErrNotCached = errors.New("inputcache: input not cached")

// A Cache is a directory of puzzle inputs named y{year}d{day}.txt.
// Every access holds an exclusive lock on the directory's .lock file, so
// several processes may share one cache.
type Cache struct {
	dir    string
	logger *zap.Logger
}

// Open returns a Cache rooted at dir, creating dir if needed.
// A nil logger discards log output.
func Open(dir string, logger *zap.Logger) (*Cache, error) {
	if dir == "" {
		return nil, errors.New("inputcache: empty cache dir")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("inputcache: cannot create cache dir: %w", err)
	}
	return &Cache{dir: dir, logger: logger}, nil
}

// Path returns the file a day's input is stored in.
func (c *Cache) Path(year, day int) string {
	return filepath.Join(c.dir, fmt.Sprintf("y%dd%d.txt", year, day))
}

// Get returns the cached input for a day. If there is none, the error
// wraps ErrNotCached.
func (c *Cache) Get(year, day int) (string, error) {
	unlock, err := c.lock()
	if err != nil {
		return "", err
	}
	defer unlock()

	name := c.Path(year, day)
	b, err := os.ReadFile(name)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: no input for %d day %d at %s", ErrNotCached, year, day, name)
	}
	if err != nil {
		return "", err
	}
	c.logger.Debug("Cache hit", zap.String("path", name), zap.Int("bytes", len(b)))
	return string(b), nil
}

// Put stores data as the input for a day, replacing any cached input.
func (c *Cache) Put(year, day int, data string) error {
	unlock, err := c.lock()
	if err != nil {
		return err
	}
	defer unlock()

	name := c.Path(year, day)
	if err := writeFileAtomic(name, []byte(data)); err != nil {
		return err
	}
	c.logger.Debug("Stored input", zap.String("path", name), zap.Int("bytes", len(data)))
	return nil
}

// Import copies the file src into the cache as the input for a day.
func (c *Cache) Import(year, day int, src string) error {
	if _, err := os.Stat(src); err != nil {
		return fmt.Errorf("inputcache: cannot import: %w", err)
	}
	unlock, err := c.lock()
	if err != nil {
		return err
	}
	defer unlock()

	name := c.Path(year, day)
	if err := cp.CopyFile(name, src); err != nil {
		return fmt.Errorf("inputcache: cannot import %s: %w", src, err)
	}
	c.logger.Info("Imported input", zap.String("src", src), zap.String("path", name))
	return nil
}

func (c *Cache) lock() (unlock func(), err error) {
	name := filepath.Join(c.dir, ".lock")
	f, err := os.OpenFile(name, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, fmt.Errorf("inputcache: cannot create lock file: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("inputcache: cannot lock cache: %w", err)
	}
	return func() {
		if err := unlockFile(f); err != nil {
			c.logger.Warn("Cannot unlock cache", zap.Error(err))
		}
		f.Close()
	}, nil
}

func writeFileAtomic(name string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(name), ".tmp-")
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(f.Name())
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return err
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		os.Remove(f.Name())
		return err
	}
	return os.Rename(f.Name(), name)
}
