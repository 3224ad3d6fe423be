package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/actonlabs/acton/pkg/config"
)

func testAgent(t *testing.T) http.Handler {
	t.Helper()
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("hello"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Actor = "tester"
	cfg.SandboxRoot = root
	cfg.Permissions = []string{"fs:read"}
	a, sink, err := buildAgent(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if sink != nil {
		t.Cleanup(func() { _ = sink.Close() })
	}
	return buildMux(a, nil)
}

func TestHealthz(t *testing.T) {
	srv := httptest.NewServer(testAgent(t))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestListActions(t *testing.T) {
	srv := httptest.NewServer(testAgent(t))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/v1/actions")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Actions []struct {
			Name        string          `json:"name"`
			Permissions []string        `json:"permissions"`
			InputSchema json.RawMessage `json:"input_schema"`
		} `json:"actions"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if len(body.Actions) != 4 {
		t.Fatalf("got %d actions", len(body.Actions))
	}
	for _, a := range body.Actions {
		if len(a.InputSchema) == 0 {
			t.Fatalf("%s has no input schema", a.Name)
		}
	}
}

func TestWeatherActionsRegisteredWhenConfigured(t *testing.T) {
	cfg := config.Default()
	cfg.Actor = "tester"
	cfg.SandboxRoot = t.TempDir()
	cfg.Weather.APIKey = "owm-key"
	a, _, err := buildAgent(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	names := map[string]bool{}
	for _, d := range a.Catalog() {
		names[d.Name] = true
	}
	if !names["get_weather"] || !names["get_forecast"] {
		t.Fatalf("catalog=%v", names)
	}
	if len(names) != 6 {
		t.Fatalf("got %d actions", len(names))
	}
}

func TestTurnEndpoint(t *testing.T) {
	srv := httptest.NewServer(testAgent(t))
	defer srv.Close()

	res, err := http.Post(srv.URL+"/v1/turn", "application/json",
		bytes.NewBufferString(`{"utterance":"read the file notes.txt"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var turn struct {
		ID      string `json:"id"`
		Results []struct {
			Action  string `json:"action"`
			Success bool   `json:"success"`
			Payload any    `json:"payload"`
		} `json:"results"`
	}
	if err := json.NewDecoder(res.Body).Decode(&turn); err != nil {
		t.Fatal(err)
	}
	if turn.ID == "" || len(turn.Results) != 1 {
		t.Fatalf("turn=%+v", turn)
	}
	if !turn.Results[0].Success || turn.Results[0].Action != "read_file" {
		t.Fatalf("result=%+v", turn.Results[0])
	}
}

func TestTurnRequiresUtterance(t *testing.T) {
	srv := httptest.NewServer(testAgent(t))
	defer srv.Close()

	res, err := http.Post(srv.URL+"/v1/turn", "application/json", bytes.NewBufferString(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}

func TestExecuteEndpointPermissionDenied(t *testing.T) {
	srv := httptest.NewServer(testAgent(t))
	defer srv.Close()

	// fs:write is never granted in the test agent.
	res, err := http.Post(srv.URL+"/v1/execute", "application/json",
		bytes.NewBufferString(`{"action":"write_file","args":{"path":"a.txt","content":"x"}}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusForbidden {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		t.Fatal(err)
	}
	if body.Error.Code != "permission_denied" {
		t.Fatalf("code=%q", body.Error.Code)
	}
}

func TestExecuteEndpointSuccess(t *testing.T) {
	srv := httptest.NewServer(testAgent(t))
	defer srv.Close()

	res, err := http.Post(srv.URL+"/v1/execute", "application/json",
		bytes.NewBufferString(`{"action":"read_file","args":{"path":"notes.txt"}}`))
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status=%d", res.StatusCode)
	}
	var result struct {
		Success bool `json:"success"`
		Payload struct {
			Content string `json:"content"`
		} `json:"payload"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatal(err)
	}
	if !result.Success || result.Payload.Content != "hello" {
		t.Fatalf("result=%+v", result)
	}
}

func TestHistoryEndpointDisabled(t *testing.T) {
	srv := httptest.NewServer(testAgent(t))
	defer srv.Close()

	res, err := http.Get(srv.URL + "/v1/history?actor=tester")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("status=%d", res.StatusCode)
	}
}
