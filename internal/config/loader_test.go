package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_JSON(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	configContent := `{
		"environments": {
			"dev": {
				"baseUrl": "https://api-dev.example.com",
				"port": 8443,
				"basePath": "/v1",
				"authorization": "Bearer dev-token"
			},
			"prod": {
				"baseUrl": "https://api.example.com"
			}
		},
		"requests": {
			"getTodo": {
				"path": "/todos/1",
				"method": "GET",
				"headers": {
					"Accept": "application/json"
				},
				"extract": {
					"todoId": "$.id"
				}
			},
			"createTodo": {
				"path": "/todos",
				"method": "POST",
				"body": {"todo": "Clean"}
			}
		}
	}`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Error writing config file: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Error loading config: %v", err)
	}

	if len(cfg.Environments) != 2 {
		t.Errorf("Expected 2 environments, got %d", len(cfg.Environments))
	}

	dev := cfg.Environments["dev"]
	if dev.BaseURL != "https://api-dev.example.com" {
		t.Errorf("Expected dev baseUrl, got %s", dev.BaseURL)
	}
	if dev.Port != 8443 {
		t.Errorf("Expected dev port 8443, got %d", dev.Port)
	}
	if dev.BasePath != "/v1" {
		t.Errorf("Expected dev basePath /v1, got %s", dev.BasePath)
	}
	if dev.Authorization != "Bearer dev-token" {
		t.Errorf("Expected dev authorization, got %s", dev.Authorization)
	}

	if len(cfg.Requests) != 2 {
		t.Errorf("Expected 2 requests, got %d", len(cfg.Requests))
	}

	getTodo := cfg.Requests["getTodo"]
	if getTodo.Path != "/todos/1" {
		t.Errorf("Expected path /todos/1, got %s", getTodo.Path)
	}
	if getTodo.Method != "GET" {
		t.Errorf("Expected method GET, got %s", getTodo.Method)
	}
	if getTodo.Extract["todoId"] != "$.id" {
		t.Errorf("Expected extract $.id, got %s", getTodo.Extract["todoId"])
	}

	if cfg.Requests["createTodo"].Body == nil {
		t.Error("Expected createTodo body to be set")
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	configContent := `environments:
  dev:
    baseUrl: https://api-dev.example.com
    basePath: /v1
requests:
  getTodo:
    path: /todos/1
    method: GET
    schema:
      type: object
      required: [id]
`

	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("Error writing config file: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Error loading config: %v", err)
	}

	if cfg.Environments["dev"].BasePath != "/v1" {
		t.Errorf("Expected basePath /v1, got %s", cfg.Environments["dev"].BasePath)
	}

	getTodo := cfg.Requests["getTodo"]
	schema, err := getTodo.SchemaJSON()
	if err != nil {
		t.Fatalf("Error encoding schema: %v", err)
	}
	expected := `{"required":["id"],"type":"object"}`
	if schema != expected {
		t.Errorf("Expected schema %s, got %s", expected, schema)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.json")
	if err == nil {
		t.Fatal("Expected error for missing file, got nil")
	}
}

func TestLoadConfig_UnsupportedExtension(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.toml")

	if err := os.WriteFile(configPath, []byte(""), 0644); err != nil {
		t.Fatalf("Error writing config file: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for unsupported extension, got nil")
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.json")

	if err := os.WriteFile(configPath, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Error writing config file: %v", err)
	}

	_, err := LoadConfig(configPath)
	if err == nil {
		t.Fatal("Expected error for invalid JSON, got nil")
	}
}
