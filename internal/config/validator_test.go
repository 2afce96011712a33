package config

import (
	"strings"
	"testing"
)

func validConfig() *Config {
	return &Config{
		Environments: map[string]Environment{
			"dev": {BaseURL: "https://api-dev.example.com"},
		},
		Requests: map[string]Request{
			"getTodo": {Path: "/todos/1", Method: "GET"},
			"createTodo": {
				Path:   "/todos",
				Method: "POST",
				Body:   map[string]any{"todo": "Clean"},
			},
		},
	}
}

func TestValidateConfig_Valid(t *testing.T) {
	errors := ValidateConfig(validConfig())
	if len(errors) != 0 {
		t.Errorf("Expected no validation errors, got %v", errors)
	}
}

func TestValidateConfig_Errors(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*Config)
		expectedError string
	}{
		{
			name:          "No environments",
			mutate:        func(c *Config) { c.Environments = nil },
			expectedError: "at least one environment is required",
		},
		{
			name: "Environment without baseUrl",
			mutate: func(c *Config) {
				c.Environments["dev"] = Environment{Port: 8080}
			},
			expectedError: "baseUrl is required",
		},
		{
			name: "Environment with invalid port",
			mutate: func(c *Config) {
				c.Environments["dev"] = Environment{BaseURL: "https://x", Port: 70000}
			},
			expectedError: "invalid port",
		},
		{
			name:          "No requests",
			mutate:        func(c *Config) { c.Requests = nil },
			expectedError: "at least one request is required",
		},
		{
			name: "Request without path",
			mutate: func(c *Config) {
				c.Requests["getTodo"] = Request{Method: "GET"}
			},
			expectedError: "path is required",
		},
		{
			name: "Request without method",
			mutate: func(c *Config) {
				c.Requests["getTodo"] = Request{Path: "/todos/1"}
			},
			expectedError: "method is required",
		},
		{
			name: "Request with invalid method",
			mutate: func(c *Config) {
				c.Requests["getTodo"] = Request{Path: "/todos/1", Method: "FETCH"}
			},
			expectedError: "invalid method",
		},
		{
			name: "POST request without body",
			mutate: func(c *Config) {
				c.Requests["createTodo"] = Request{Path: "/todos", Method: "POST"}
			},
			expectedError: "body is required",
		},
		{
			name: "Empty extract path",
			mutate: func(c *Config) {
				c.Requests["getTodo"] = Request{
					Path:    "/todos/1",
					Method:  "GET",
					Extract: map[string]string{"id": ""},
				}
			},
			expectedError: "extract path cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			errors := ValidateConfig(cfg)
			if len(errors) == 0 {
				t.Fatal("Expected validation errors, got none")
			}

			found := false
			for _, err := range errors {
				if strings.Contains(err.Error(), tt.expectedError) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected an error containing %q, got %v", tt.expectedError, errors)
			}
		})
	}
}

func TestValidateEnvironment(t *testing.T) {
	cfg := validConfig()

	if err := ValidateEnvironment(cfg, "dev"); err != nil {
		t.Errorf("Expected dev environment to validate, got %v", err)
	}

	if err := ValidateEnvironment(cfg, "staging"); err == nil {
		t.Error("Expected error for unknown environment, got nil")
	}
}

func TestValidateRequest(t *testing.T) {
	cfg := validConfig()

	if err := ValidateRequest(cfg, "getTodo"); err != nil {
		t.Errorf("Expected getTodo request to validate, got %v", err)
	}

	if err := ValidateRequest(cfg, "deleteTodo"); err == nil {
		t.Error("Expected error for unknown request, got nil")
	}
}
