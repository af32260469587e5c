package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input stream is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser interface for YAML data.
// It uses goccy/go-yaml PathString for efficient path navigation.
type Parser struct {
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithStrict makes the parser reject fields that do not exist in the target.
func WithStrict() Option {
	return func(p *Parser) {
		p.strict = true
	}
}

// NewParser creates a new YAML parser instance.
func NewParser(opts ...Option) *Parser {
	parser := &Parser{}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse reads the whole stream and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(r io.Reader, target any, path string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading data: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.UnmarshalWithOptions(data, target, p.decodeOptions()...)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	node, err := pathObj.ReadNode(bytes.NewReader(data))
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	err = yaml.NodeToValue(node, target, p.decodeOptions()...)
	if err != nil {
		return fmt.Errorf("decoding path %q: %w", path, err)
	}

	return nil
}

func (p *Parser) decodeOptions() []yaml.DecodeOption {
	if p.strict {
		return []yaml.DecodeOption{yaml.DisallowUnknownField()}
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}
