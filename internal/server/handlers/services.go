// Package handlers implements the tool operations behind the HTTP API.
package handlers

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/prospectdb/prospectdb/internal/config"
	"github.com/prospectdb/prospectdb/internal/server/dto"
)

// Services holds the dependencies shared by all tool handlers.
//
// Mutating tools serialize per file path: two concurrent appends to the same
// CSV must not interleave their read-modify-write cycles.
type Services struct {
	// DataDir is the absolute directory all CSV paths are confined to.
	DataDir string
	Cfg     *config.Config
	Version string

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewServices creates the handler services rooted at dataDir.
func NewServices(dataDir string, cfg *config.Config, version string) (*Services, error) {
	abs, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}
	return &Services{
		DataDir: abs,
		Cfg:     cfg,
		Version: version,
		locks:   make(map[string]*sync.Mutex),
	}, nil
}

// resolvePath turns a tool path argument into an absolute path inside the
// data directory. Relative paths resolve against the data directory; absolute
// paths must already point inside it.
func (s *Services) resolvePath(path string) (string, error) {
	if path == "" {
		return "", dto.MissingField("path")
	}
	abs := path
	if !filepath.IsAbs(abs) {
		abs = filepath.Join(s.DataDir, abs)
	}
	abs = filepath.Clean(abs)
	rel, err := filepath.Rel(s.DataDir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", dto.ForbiddenPath(path)
	}
	return abs, nil
}

// lockPath acquires the per-file mutex for path and returns its release func.
func (s *Services) lockPath(path string) func() {
	s.mu.Lock()
	l, ok := s.locks[path]
	if !ok {
		l = &sync.Mutex{}
		s.locks[path] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}

// dedupeColumn applies the configured default when a request omits the column.
func (s *Services) dedupeColumn(requested string) string {
	if requested != "" {
		return requested
	}
	return s.Cfg.DefaultDedupeColumn
}
