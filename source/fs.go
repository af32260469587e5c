package source

import (
	"fmt"
	"io"
	"io/fs"
	"path"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// FSSource is a Source backed by a single entry of an fs.FS, such as an embed.FS.
type FSSource struct {
	fsys fs.FS
	name string
	hash uint64
}

var _ Source = (*FSSource)(nil)

// NewFSSource creates an FSSource for name inside fsys.
// The name is normalized to slash-separated form without a leading slash.
// Returns ErrInvalidArgument if fsys is nil or name is empty or not a valid fs.FS path.
func NewFSSource(fsys fs.FS, name string) (*FSSource, error) {
	if fsys == nil {
		return nil, fmt.Errorf("%w: filesystem must not be nil", ErrInvalidArgument)
	}

	cleanName, err := cleanFSName(name)
	if err != nil {
		return nil, err
	}

	return &FSSource{
		fsys: fsys,
		name: cleanName,
		hash: xxhash.Sum64String(cleanName),
	}, nil
}

func cleanFSName(name string) (string, error) {
	slashName := strings.TrimPrefix(filepath.ToSlash(name), "/")
	if slashName == "" {
		return "", fmt.Errorf("%w: name must not be empty", ErrInvalidArgument)
	}

	cleaned := path.Clean(slashName)
	if cleaned == "." || !fs.ValidPath(cleaned) {
		return "", fmt.Errorf("%w: invalid fs path %q", ErrInvalidArgument, name)
	}

	return cleaned, nil
}

// Open opens the entry in the underlying filesystem.
func (s *FSSource) Open() (io.ReadCloser, error) {
	file, err := s.fsys.Open(s.name)
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

		return nil, fmt.Errorf("%w: path %q: %w", ErrIO, s.name, ErrPathIsDirectory)
	}

	return file, nil
}

// Location returns the entry name prefixed with "fs:".
func (s *FSSource) Location() string {
	return "fs:" + s.name
}

// Name returns the normalized entry name.
func (s *FSSource) Name() string {
	return s.name
}

func (s *FSSource) String() string {
	return s.Location()
}

// Equal reports whether other is an *FSSource naming the same entry of the same filesystem.
// Filesystems of non-comparable types, such as fstest.MapFS, are only equal to themselves
// through the same *FSSource.
func (s *FSSource) Equal(other Source) bool {
	otherFS, ok := other.(*FSSource)
	if !ok || s == nil || otherFS == nil {
		return false
	}

	if s == otherFS {
		return true
	}

	if s.name != otherFS.name {
		return false
	}

	if !reflect.TypeOf(s.fsys).Comparable() || reflect.TypeOf(s.fsys) != reflect.TypeOf(otherFS.fsys) {
		return false
	}

	return s.fsys == otherFS.fsys
}

// Hash returns the identity hash computed from the entry name.
func (s *FSSource) Hash() uint64 {
	return s.hash
}
