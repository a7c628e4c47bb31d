package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"onboardhub/internal/app/server"
	"onboardhub/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details struct {
			Fields []struct {
				Field  string `json:"field"`
				Reason string `json:"reason"`
			} `json:"fields"`
		} `json:"details"`
	} `json:"error"`
	RequestID string `json:"requestId"`
}

func testConfig() config.Config {
	return config.Config{
		Addr:               ":0",
		Environment:        "test",
		DefaultActor:       "Admin",
		LogLevel:           "error",
		MaxBodyBytes:       1048576,
		RateLimitPerMinute: 10000,
		MetricsEnabled:     true,
		ShutdownTimeout:    time.Second,
	}
}

func newTestServer(t *testing.T, cfg config.Config) (*server.App, *httptest.Server) {
	t.Helper()
	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	ts := httptest.NewServer(app.Router)
	t.Cleanup(func() {
		ts.Close()
		app.Close()
	})
	return app, ts
}

// path joins escaped segments under /api/v1.
func path(baseURL string, segments ...string) string {
	escaped := make([]string, 0, len(segments))
	for _, s := range segments {
		escaped = append(escaped, url.PathEscape(s))
	}
	return baseURL + "/api/v1/" + strings.Join(escaped, "/")
}

func doRequest(t *testing.T, client *http.Client, method, url string, body any, headers map[string]string) (*http.Response, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewBuffer(raw)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response: %v", err)
	}
	return resp, raw
}

func sendJSON(t *testing.T, client *http.Client, method, url string, body any, wantStatus int) envelope {
	t.Helper()
	resp, raw := doRequest(t, client, method, url, body, nil)
	if resp.StatusCode != wantStatus {
		t.Fatalf("%s %s: expected status %d, got %d: %s", method, url, wantStatus, resp.StatusCode, string(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v: %s", err, string(raw))
	}
	return env
}

func postJSON(t *testing.T, client *http.Client, url string, body any) envelope {
	t.Helper()
	resp, raw := doRequest(t, client, http.MethodPost, url, body, nil)
	if resp.StatusCode >= 400 {
		t.Fatalf("unexpected status %d: %s", resp.StatusCode, string(raw))
	}
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return env
}

func getJSON(t *testing.T, client *http.Client, url string) envelope {
	t.Helper()
	return sendJSON(t, client, http.MethodGet, url, nil, http.StatusOK)
}

func decode[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		t.Fatalf("failed to decode data: %v: %s", err, string(env.Data))
	}
	return out
}

func assertErrorCode(t *testing.T, env envelope, code string) {
	t.Helper()
	if env.Error == nil || env.Error.Code != code {
		t.Fatalf("expected error code %s, got %+v", code, env.Error)
	}
}

func assertValidationErrorField(t *testing.T, env envelope, field string) {
	t.Helper()
	assertErrorCode(t, env, "validation_error")
	for _, f := range env.Error.Details.Fields {
		if f.Field == field {
			return
		}
	}
	t.Fatalf("expected validation issue for %s, got %+v", field, env.Error.Details.Fields)
}

func registerEmployee(t *testing.T, client *http.Client, baseURL, name string, start time.Time) {
	t.Helper()
	sendJSON(t, client, http.MethodPost, path(baseURL, "employees"), map[string]any{
		"name":       name,
		"email":      strings.ToLower(strings.ReplaceAll(name, " ", ".")) + "@example.com",
		"department": "Engineering",
		"role":       "Software Engineer",
		"manager":    "Grace Hopper",
		"startDate":  start.Format("2006-01-02"),
	}, http.StatusCreated)
}
