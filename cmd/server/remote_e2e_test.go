//go:build e2e

package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// Runs against a live server: E2E_BASE_URL=http://127.0.0.1:8080 go test -tags e2e ./cmd/server
func TestRemoteAPI_BridgeEndpoints(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://127.0.0.1:8080"), "/")
	client := &http.Client{Timeout: 20 * time.Second}

	t.Run("snapshot", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/bridge/snapshot", nil)
		if status != http.StatusOK {
			t.Fatalf("snapshot status=%d body=%s", status, string(body))
		}
		var snap map[string]any
		if err := json.Unmarshal(body, &snap); err != nil {
			t.Fatalf("unmarshal snapshot: %v body=%s", err, string(body))
		}
		if _, ok := snap["version"].(string); !ok {
			t.Fatalf("snapshot missing version: %s", string(body))
		}
		if asSlice(snap["player"]) == nil {
			t.Fatalf("snapshot missing player array: %s", string(body))
		}
	})

	t.Run("schema", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/api/bridge/schema", nil)
		if status != http.StatusOK {
			t.Fatalf("schema status=%d body=%s", status, string(body))
		}
		var doc map[string]any
		if err := json.Unmarshal(body, &doc); err != nil {
			t.Fatalf("unmarshal schema: %v", err)
		}
		if len(asMap(doc["properties"])) == 0 {
			t.Fatalf("schema has no properties: %s", string(body))
		}
	})

	t.Run("action rejects unknown command or reports disabled channel", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPost, baseURL+"/api/bridge/action", map[string]any{"command": "jump"})
		if status != http.StatusBadRequest && status != http.StatusNotFound {
			t.Fatalf("expected 400 or 404, got %d body=%s", status, string(body))
		}
	})

	t.Run("ops kpi", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodGet, baseURL+"/ops/kpi", nil)
		if status != http.StatusOK {
			t.Fatalf("kpi status=%d body=%s", status, string(body))
		}
		var kpi map[string]any
		if err := json.Unmarshal(body, &kpi); err != nil {
			t.Fatalf("unmarshal kpi: %v", err)
		}
		if _, ok := kpi["snapshots_served"]; !ok {
			t.Fatalf("kpi missing snapshots_served: %s", string(body))
		}
	})
}

func mustJSON(t *testing.T, client *http.Client, method, url string, body map[string]any) (int, []byte) {
	t.Helper()
	status, respBody, err := doRequest(client, method, url, body)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, url, err)
	}
	return status, respBody
}

func doRequest(client *http.Client, method, url string, body map[string]any) (int, []byte, error) {
	var payloadBytes []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		payloadBytes = b
	}

	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var payload io.Reader
		if len(payloadBytes) > 0 {
			payload = bytes.NewReader(payloadBytes)
		}
		req, err := http.NewRequest(method, url, payload)
		if err != nil {
			return 0, nil, err
		}
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
