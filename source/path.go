package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// PathSource is a Source backed by a file on the local filesystem.
// The path is made absolute at construction and never changes afterwards,
// so a PathSource is safe for concurrent use.
type PathSource struct {
	path string
	hash uint64
}

var _ Source = (*PathSource)(nil)

// NewPathSource creates a PathSource for the given path.
// Relative paths are resolved against the current working directory at call time.
// The file does not need to exist yet; existence is only checked by Open.
// Returns ErrInvalidArgument if path is empty.
func NewPathSource(path string) (*PathSource, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: path must not be empty", ErrInvalidArgument)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path %q: %w", path, err)
	}

	return &PathSource{
		path: absPath,
		hash: xxhash.Sum64String(absPath),
	}, nil
}

// PathProvider returns a constructor function that creates a PathSource for path.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
func PathProvider(path string) func() (*PathSource, error) {
	return func() (*PathSource, error) {
		return NewPathSource(path)
	}
}

// Open opens a new stream on the file. Each call acquires its own file handle.
func (s *PathSource) Open() (io.ReadCloser, error) {
	file, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()

		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}

	if stat.IsDir() {
		_ = file.Close()

		return nil, fmt.Errorf("%w: path %q: %w", ErrIO, s.path, ErrPathIsDirectory)
	}

	return file, nil
}

// Location returns the absolute path.
func (s *PathSource) Location() string {
	return s.path
}

// Path returns the absolute path for callers that need path specific operations.
func (s *PathSource) Path() string {
	return s.path
}

func (s *PathSource) String() string {
	return s.Location()
}

// Equal reports whether other is a *PathSource with the same absolute path.
func (s *PathSource) Equal(other Source) bool {
	otherPath, ok := other.(*PathSource)
	if !ok || s == nil || otherPath == nil {
		return false
	}

	return s.path == otherPath.path
}

// Hash returns the identity hash computed from the absolute path.
func (s *PathSource) Hash() uint64 {
	return s.hash
}
