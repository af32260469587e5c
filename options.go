package building

import (
	"io"

	"github.com/0xalexb/hjarta-building/config"
	yamlparser "github.com/0xalexb/hjarta-building/config/parser/yaml"
	"github.com/0xalexb/hjarta-building/source"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules   []fx.Option
	LogLevel  string
	LogOutput io.Writer
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithPathSource provides a source.Source backed by the file at path.
// The path is resolved to an absolute path when the container builds the source,
// and the file is only opened when a consumer reads it.
func WithPathSource(path string) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, fx.Module("source",
			fx.Provide(
				fx.Annotate(
					source.PathProvider(path),
					fx.As(new(source.Source)),
				),
			),
		))
	}
}

// WithYAMLParser provides the goccy/go-yaml parser as config.Parser.
func WithYAMLParser(parserOpts ...yamlparser.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, fx.Module("parser",
			fx.Provide(
				fx.Annotate(
					func() *yamlparser.Parser {
						return yamlparser.NewParser(parserOpts...)
					},
					fx.As(new(config.Parser)),
				),
			),
		))
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogOutput sets the writer application logs are written to. Defaults to os.Stderr.
func WithLogOutput(w io.Writer) Option {
	return func(opts *Options) {
		opts.LogOutput = w
	}
}
