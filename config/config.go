package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/0xalexb/hjarta-building/logging"
	"github.com/0xalexb/hjarta-building/source"
)

// ErrNilSource is returned when a Provider is invoked without a source.
var ErrNilSource = errors.New("source must not be nil")

// Parser defines an interface for parsing configuration data into a target structure.
//
// The path parameter specifies a navigation path within the configuration data
// using colon (:) as the separator for nested keys. For example:
//   - "api:permissions" navigates to config["api"]["permissions"]
//   - "database:connection:timeout" navigates three levels deep
//   - "" (empty path) means parse the entire document
//
// Parser implementations are responsible for path navigation internally.
// See config/parser/yaml for an example using goccy/go-yaml PathString.
type Parser interface {
	Parse(r io.Reader, target any, path string) error
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Provider returns a function that reads the source, parses, sets defaults, and validates configuration data.
// The source stream is closed before the function returns. Errors name the source location.
func Provider[T any](target *T, path string) func(Parser, source.Source) (*T, error) {
	return func(parser Parser, src source.Source) (*T, error) {
		if src == nil {
			return nil, ErrNilSource
		}

		err := parse(parser, src, target, path)
		if err != nil {
			return nil, err
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path), logging.Location(src))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating %s: %w", src.Location(), err)
			}
		}

		slog.Debug("configuration loaded", slog.String("path", path), logging.Location(src))

		return target, nil
	}
}

// Load reads configuration of type T from src using parser.
func Load[T any](parser Parser, src source.Source, path string) (*T, error) {
	return Provider(new(T), path)(parser, src)
}

func parse(parser Parser, src source.Source, target any, path string) (err error) {
	reader, err := src.Open()
	if err != nil {
		return fmt.Errorf("reading data from %s: %w", src.Location(), err)
	}

	defer func() {
		closeErr := reader.Close()
		if closeErr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", src.Location(), closeErr)
		}
	}()

	err = parser.Parse(reader, target, path)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", src.Location(), err)
	}

	return nil
}
