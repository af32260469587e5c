package source

import (
	"errors"
	"io"
)

// ErrInvalidArgument is returned when a source is constructed from an absent argument.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrIO is returned when a source stream cannot be opened.
var ErrIO = errors.New("source i/o error")

// ErrPathIsDirectory is returned when the opened path points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Source is a readable byte stream plus a display label for an input.
//
// Open returns a new stream positioned at the start of the input on every call.
// The caller owns the stream and must close it.
// Location is a diagnostic label only and must not be parsed.
type Source interface {
	Open() (io.ReadCloser, error)
	Location() string
}
