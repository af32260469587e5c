// Package source provides byte stream sources for configuration loading.
//
// A Source exposes a readable byte stream and a human-readable location.
// Consumers open the stream, consume it, and close it on every exit path:
//
//	src, err := source.NewPathSource("config.yaml")
//	if err != nil {
//	    // Only an empty path fails here. Existence is checked on Open.
//	}
//
//	rc, err := src.Open()
//	if err != nil {
//	    return fmt.Errorf("reading %s: %w", src.Location(), err)
//	}
//	defer rc.Close()
//
// # Variants
//
//   - PathSource: a file on the local filesystem, identified by its absolute path
//   - BytesSource: an in-memory byte slice, useful in tests
//   - FSSource: an entry of an fs.FS such as embed.FS
//
// Each variant compares equal only to values of the same type. A PathSource
// and a BytesSource holding the same bytes are never equal.
//
// # Errors
//
//   - Construction with an absent argument returns ErrInvalidArgument
//   - Any failure opening a stream wraps ErrIO and keeps the underlying cause,
//     so errors.Is(err, fs.ErrNotExist) still works
//   - Opening a directory wraps both ErrIO and ErrPathIsDirectory
package source
