package cache

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
)

// Store keeps one downloaded manifest per branch under a flat directory.
// Freshness is judged by file modification time against the TTL. The
// filesystem is abstracted so tests can run against an in-memory fs.
type Store struct {
	fs  afero.Fs
	dir string
	ttl time.Duration
	now func() time.Time
}

// NewStore creates a store rooted at dir with the given freshness window
func NewStore(fs afero.Fs, dir string, ttl time.Duration) *Store {
	return &Store{fs: fs, dir: dir, ttl: ttl, now: time.Now}
}

// Path returns the cache file for a branch.
func (s *Store) Path(branch string) string {
	return filepath.Join(s.dir, branch+".json")
}

// Fresh reports whether a cached manifest exists and is younger than the
// TTL. A missing or unreadable file counts as stale.
func (s *Store) Fresh(branch string) bool {
	info, err := s.fs.Stat(s.Path(branch))
	if err != nil {
		return false
	}
	return s.now().Sub(info.ModTime()) <= s.ttl
}

// Invalidate removes the cached manifest for a branch, if any.
func (s *Store) Invalidate(branch string) error {
	if err := s.fs.Remove(s.Path(branch)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Open returns the cached manifest for reading.
func (s *Store) Open(branch string) (afero.File, error) {
	return s.fs.Open(s.Path(branch))
}

// Put streams a manifest into the cache through a temporary file that is
// renamed into place only after fill succeeds. A failed or interrupted
// download therefore never replaces or truncates an existing cache entry.
func (s *Store) Put(branch string, fill func(io.Writer) error) error {
	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	tmp := s.Path(branch) + ".part"
	f, err := s.fs.Create(tmp)
	if err != nil {
		return err
	}

	if err := fill(f); err != nil {
		f.Close()
		s.fs.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		s.fs.Remove(tmp)
		return err
	}

	return s.fs.Rename(tmp, s.Path(branch))
}
