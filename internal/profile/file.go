package profile

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// fileDoc is the on-disk layout of a profile.
type fileDoc struct {
	Values map[string]interface{} `yaml:"values"`
}

// File is a YAML-backed profile store. Writes are held in memory until
// Flush is called. File is safe for concurrent use.
type File struct {
	path          string
	userInitiated bool

	mu     sync.Mutex
	values map[string]interface{}
	dirty  bool
}

// Open reads the profile at path. A missing file yields an empty store.
func Open(path string, userInitiated bool) (*File, error) {
	f := &File{
		path:          path,
		userInitiated: userInitiated,
		values:        make(map[string]interface{}),
	}

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}

	var doc fileDoc
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	for k, v := range doc.Values {
		f.values[k] = v
	}
	return f, nil
}

// Path returns the file the store reads and writes.
func (f *File) Path() string {
	return f.path
}

// UserInitiated reports whether the store belongs to a user-initiated
// session.
func (f *File) UserInitiated() bool {
	return f.userInitiated
}

// ReadInt returns the integer stored under key, or def if the key is absent
// or its value is not an integer.
func (f *File) ReadInt(key string, def int) int {
	f.mu.Lock()
	v, ok := f.values[key]
	f.mu.Unlock()
	if !ok {
		return def
	}
	if n, ok := toInt(v); ok {
		return n
	}
	return def
}

// WriteInt stores value under key.
func (f *File) WriteInt(key string, value int) {
	f.mu.Lock()
	f.values[key] = value
	f.dirty = true
	f.mu.Unlock()
}

// Keys returns the stored keys in sorted order.
func (f *File) Keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.values))
	for k := range f.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Flush writes the store back to its file if anything was written since it
// was opened or last flushed. Parent directories are created as needed and
// the file is replaced atomically.
func (f *File) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.dirty {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("failed to create profile directory: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".profile-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp profile: %w", err)
	}
	defer os.Remove(tmp.Name())

	enc := yaml.NewEncoder(tmp)
	enc.SetIndent(2)
	if err := enc.Encode(&fileDoc{Values: f.values}); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := enc.Close(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write profile: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace profile: %w", err)
	}

	f.dirty = false
	return nil
}

// toInt accepts the shapes an integer can take after a YAML round trip,
// including hand-edited strings such as "0xFF00FF".
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return n, true
	case int64:
		if n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case float64:
		if n != math.Trunc(n) || n < math.MinInt32 || n > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 0, 32)
		if err != nil {
			return 0, false
		}
		return int(i), true
	}
	return 0, false
}
