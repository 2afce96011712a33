package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level request-file configuration
type Config struct {
	Environments map[string]Environment `json:"environments" yaml:"environments"`
	Requests     map[string]Request     `json:"requests" yaml:"requests"`
}

// Environment carries the client configuration shared by the requests run
// against it
type Environment struct {
	BaseURL       string            `json:"baseUrl" yaml:"baseUrl"`
	Port          int               `json:"port,omitempty" yaml:"port,omitempty"`
	BasePath      string            `json:"basePath,omitempty" yaml:"basePath,omitempty"`
	Authorization string            `json:"authorization,omitempty" yaml:"authorization,omitempty"`
	Headers       map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
}

// Request represents a named request configuration
type Request struct {
	Path    string            `json:"path" yaml:"path"`
	Method  string            `json:"method" yaml:"method"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    any               `json:"body,omitempty" yaml:"body,omitempty"`
	Extract map[string]string `json:"extract,omitempty" yaml:"extract,omitempty"`
	Schema  any               `json:"schema,omitempty" yaml:"schema,omitempty"`
}

// LoadConfig loads a configuration file. The format is selected by file
// extension: .json for JSON, .yaml/.yml for YAML.
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config Config
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML config: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON config: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s (use .json, .yaml, or .yml)", ext)
	}

	return &config, nil
}

// SchemaJSON returns the request's inline response schema re-encoded as JSON,
// ready for the jsonschema validator. Returns an empty string if no schema is
// configured.
func (r *Request) SchemaJSON() (string, error) {
	if r.Schema == nil {
		return "", nil
	}

	encoded, err := json.Marshal(r.Schema)
	if err != nil {
		return "", fmt.Errorf("error encoding schema: %w", err)
	}

	return string(encoded), nil
}
