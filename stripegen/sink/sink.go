// Package sink holds the destinations stripegen writes generated files to.
package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
)

// OutputSink accepts generated files by slash-separated relative path.
// WriteFile may be called from several goroutines at once.
type OutputSink interface {
	WriteFile(ctx context.Context, path string, content []byte) error
}

// FilesystemSink writes generated files below Root. Each file is written to
// a temporary sibling first, so readers never observe a partial file.
type FilesystemSink struct {
	Root string

	// Mode of created files. Zero means 0644.
	Mode os.FileMode

	// Overwrite replaces existing files. When false, writing a path that
	// already exists fails.
	Overwrite bool
}

// NewFilesystemSink returns a sink that replaces files below root.
func NewFilesystemSink(root string) *FilesystemSink {
	return &FilesystemSink{Root: root, Mode: 0644, Overwrite: true}
}

func (s *FilesystemSink) WriteFile(ctx context.Context, path string, content []byte) error {
	target, err := resolve(s.Root, path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}

	tmp, err := s.stage(dir, content)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Overwrite {
		if err := os.Rename(tmp, target); err != nil {
			return fmt.Errorf("replace %s: %w", path, err)
		}
		return nil
	}
	// Link refuses an existing target, unlike Rename.
	if err := os.Link(tmp, target); err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%s already exists", path)
		}
		return fmt.Errorf("create %s: %w", path, err)
	}
	return nil
}

// stage writes content to a new temporary file in dir with the sink's mode
// and returns its name. The caller removes it.
func (s *FilesystemSink) stage(dir string, content []byte) (string, error) {
	f, err := os.CreateTemp(dir, ".stripegen-*.tmp")
	if err != nil {
		return "", fmt.Errorf("stage file: %w", err)
	}
	mode := s.Mode
	if mode == 0 {
		mode = 0644
	}
	_, err = f.Write(content)
	err = errors.Join(err, f.Close())
	if err == nil {
		err = os.Chmod(f.Name(), mode)
	}
	if err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("stage file: %w", err)
	}
	return f.Name(), nil
}

// MemorySink keeps generated files in a map. Tests and the up-to-date
// check read them back.
type MemorySink struct {
	mu    sync.RWMutex
	files map[string][]byte
}

func NewMemorySink() *MemorySink {
	return &MemorySink{files: make(map[string][]byte)}
}

func (s *MemorySink) WriteFile(ctx context.Context, path string, content []byte) error {
	if err := ValidatePath(path); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	s.files[path] = bytes.Clone(content)
	s.mu.Unlock()
	return nil
}

// Files returns every stored file keyed by path. The slices are copies.
func (s *MemorySink) Files() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]byte, len(s.files))
	for p, b := range s.files {
		out[p] = bytes.Clone(b)
	}
	return out
}

// Paths lists the stored paths, sorted.
func (s *MemorySink) Paths() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	paths := make([]string, 0, len(s.files))
	for p := range s.files {
		paths = append(paths, p)
	}
	slices.Sort(paths)
	return paths
}

// Get returns a copy of the file at path, or nil.
func (s *MemorySink) Get(path string) []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bytes.Clone(s.files[path])
}

func (s *MemorySink) Reset() {
	s.mu.Lock()
	clear(s.files)
	s.mu.Unlock()
}

// DiffSink compares generated files against a directory without writing.
// It backs "stripegen check", which fails when checked-in code is stale.
type DiffSink struct {
	Root string

	mu    sync.Mutex
	stale []string
}

// NewDiffSink creates a DiffSink comparing against root.
func NewDiffSink(root string) *DiffSink {
	return &DiffSink{Root: root}
}

// WriteFile records path as stale when the file on disk is missing or differs
// from content.
func (s *DiffSink) WriteFile(ctx context.Context, path string, content []byte) error {
	target, err := resolve(s.Root, path)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	existing, err := os.ReadFile(target)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if err == nil && bytes.Equal(existing, content) {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stale = append(s.stale, path)
	return nil
}

// Stale returns the paths whose content would change, sorted.
func (s *DiffSink) Stale() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := slices.Clone(s.stale)
	slices.Sort(out)
	return out
}

// resolve maps path onto root and rejects results outside root.
func resolve(root, path string) (string, error) {
	if err := ValidatePath(path); err != nil {
		return "", err
	}
	target := filepath.Join(root, filepath.FromSlash(path))
	rel, err := filepath.Rel(root, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("output path %q: leaves the output directory", path)
	}
	return target, nil
}

// ValidatePath accepts clean, slash-separated relative paths that stay inside
// the output directory.
func ValidatePath(path string) error {
	var reason string
	switch {
	case path == "":
		reason = "empty"
	case strings.HasPrefix(path, "/") || filepath.IsAbs(path) || hasDriveLetter(path):
		reason = "absolute paths not allowed"
	case slices.Contains(strings.Split(path, "/"), ".."):
		reason = "leaves the output directory"
	case !fs.ValidPath(path) || path == ".":
		reason = "not in canonical form"
	default:
		return nil
	}
	return fmt.Errorf("output path %q: %s", path, reason)
}

func hasDriveLetter(path string) bool {
	if len(path) < 2 || path[1] != ':' {
		return false
	}
	c := path[0] | 0x20
	return c >= 'a' && c <= 'z'
}
