package cli

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wesleyorama2/riposte/internal/config"
	"github.com/wesleyorama2/riposte/internal/output"
)

func TestSendRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/todos" {
			t.Errorf("Expected path /v1/todos, got %s", r.URL.Path)
		}
		if r.Method != "POST" {
			t.Errorf("Expected method POST, got %s", r.Method)
		}
		if r.Header.Get("Authorization") != "Bearer env-token" {
			t.Errorf("Expected environment authorization, got %s", r.Header.Get("Authorization"))
		}
		if r.Header.Get("X-Env") != "test" {
			t.Errorf("Expected environment header, got %s", r.Header.Get("X-Env"))
		}

		var payload map[string]any
		json.NewDecoder(r.Body).Decode(&payload)
		if payload["todo"] != "Clean" {
			t.Errorf("Expected configured body, got %v", payload)
		}

		json.NewEncoder(w).Encode(map[string]any{"id": 1, "todo": "Clean"})
	}))
	defer server.Close()

	env := config.Environment{
		BaseURL:       server.URL,
		BasePath:      "/v1",
		Authorization: "Bearer env-token",
		Headers:       map[string]string{"X-Env": "test"},
	}

	reqConfig := config.Request{
		Path:    "/todos",
		Method:  "POST",
		Body:    map[string]any{"todo": "Clean"},
		Extract: map[string]string{"todoId": "$.id"},
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"id", "todo"},
		},
	}

	formatter := output.NewFormatter(false, true)

	if err := sendRequest(env, reqConfig, formatter, 5*time.Second); err != nil {
		t.Fatalf("Error sending request: %v", err)
	}
}

func TestSendRequest_SchemaFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"unexpected": true})
	}))
	defer server.Close()

	env := config.Environment{BaseURL: server.URL}
	reqConfig := config.Request{
		Path:   "/todos/1",
		Method: "GET",
		Schema: map[string]any{
			"type":     "object",
			"required": []any{"id"},
		},
	}

	formatter := output.NewFormatter(false, true)

	if err := sendRequest(env, reqConfig, formatter, 5*time.Second); err == nil {
		t.Fatal("Expected schema validation error, got nil")
	}
}

func TestSendRequest_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	env := config.Environment{BaseURL: server.URL}
	reqConfig := config.Request{Path: "/todos", Method: "GET"}

	formatter := output.NewFormatter(false, true)

	if err := sendRequest(env, reqConfig, formatter, 5*time.Second); err == nil {
		t.Fatal("Expected error for 500 response, got nil")
	}
}

func TestSendRequest_UnsupportedMethod(t *testing.T) {
	env := config.Environment{BaseURL: "http://localhost"}
	reqConfig := config.Request{Path: "/todos", Method: "TRACE"}

	formatter := output.NewFormatter(false, true)

	if err := sendRequest(env, reqConfig, formatter, time.Second); err == nil {
		t.Fatal("Expected error for unsupported method, got nil")
	}
}
