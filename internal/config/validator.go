package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) []ValidationError {
	var errors []ValidationError

	if len(config.Environments) == 0 {
		errors = append(errors, ValidationError{
			Path:    "environments",
			Message: "at least one environment is required",
		})
	}

	for name, env := range config.Environments {
		if env.BaseURL == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("environments.%s.baseUrl", name),
				Message: "baseUrl is required",
			})
		}
		if env.Port < 0 || env.Port > 65535 {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("environments.%s.port", name),
				Message: fmt.Sprintf("invalid port: %d", env.Port),
			})
		}
	}

	if len(config.Requests) == 0 {
		errors = append(errors, ValidationError{
			Path:    "requests",
			Message: "at least one request is required",
		})
	}

	for name, req := range config.Requests {
		if req.Path == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("requests.%s.path", name),
				Message: "path is required",
			})
		}

		if req.Method == "" {
			errors = append(errors, ValidationError{
				Path:    fmt.Sprintf("requests.%s.method", name),
				Message: "method is required",
			})
		} else {
			method := strings.ToUpper(req.Method)
			if method != "GET" && method != "POST" && method != "PUT" && method != "DELETE" {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("requests.%s.method", name),
					Message: fmt.Sprintf("invalid method: %s", req.Method),
				})
			}

			if (method == "POST" || method == "PUT") && req.Body == nil {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("requests.%s.body", name),
					Message: fmt.Sprintf("body is required for %s requests", method),
				})
			}
		}

		for varName, path := range req.Extract {
			if path == "" {
				errors = append(errors, ValidationError{
					Path:    fmt.Sprintf("requests.%s.extract.%s", name, varName),
					Message: "extract path cannot be empty",
				})
			}
		}
	}

	return errors
}

// ValidateEnvironment checks that the named environment exists
func ValidateEnvironment(config *Config, name string) error {
	if _, ok := config.Environments[name]; !ok {
		return fmt.Errorf("environment not found: %s", name)
	}
	return nil
}

// ValidateRequest checks that the named request exists
func ValidateRequest(config *Config, name string) error {
	if _, ok := config.Requests[name]; !ok {
		return fmt.Errorf("request not found: %s", name)
	}
	return nil
}
