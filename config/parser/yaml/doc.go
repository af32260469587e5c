// Package yaml provides a YAML parser implementation for the config package.
//
// This package uses github.com/goccy/go-yaml for YAML parsing with native
// PathString support for navigation. The parser reads the stream handed to it
// by the config pipeline and converts colon-separated paths
// (e.g., "api:permissions") to YAML path format (e.g., "$.api.permissions").
//
// Usage:
//
//	parser := yaml.NewParser(yaml.WithStrict())
//	var cfg Config
//	err := parser.Parse(reader, &cfg, "api:permissions")
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
package yaml
