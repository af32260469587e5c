// Package config provides configuration management functionalities and interfaces.
//
// Configuration data is read from a source.Source. The package uses an
// interface-based design with three extension points:
//   - Parser: deserializes a byte stream into config struct, with path navigation support
//   - Validator: validates config after parsing
//   - Defaulter: applies default values before validation
//
// The source stream is opened once per load and always closed, including on
// parse errors. Errors are wrapped with the source location so that the
// failing input can be identified.
//
// # Path Navigation
//
// The Provider function accepts a path parameter that allows targeting a specific
// section within configuration files. Paths use colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	src, _ := source.NewPathSource("config.yaml")
//	provider := config.Provider(&APIConfig{}, "services:api")
//	cfg, err := provider(yamlparser.NewParser(), src)
package config
