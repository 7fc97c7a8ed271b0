// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/resultboard/models"
)

// captureLogs routes the default logger into a buffer for the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

// completedEntry returns the "request completed" log line.
func completedEntry(t *testing.T, logs *bytes.Buffer) map[string]any {
	t.Helper()
	for _, line := range strings.Split(strings.TrimSpace(logs.String()), "\n") {
		var entry map[string]any
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			t.Fatalf("bad log line %q: %v", line, err)
		}
		if entry["msg"] == "request completed" {
			return entry
		}
	}
	t.Fatalf("no completion entry in logs: %s", logs.String())
	return nil
}

func TestWithLogging_RecordsStatus(t *testing.T) {
	testCases := []struct {
		name    string
		handler http.HandlerFunc
		want    float64
	}{
		{
			name: "explicit status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				ErrorResponse(w, http.StatusNotFound, "result not found")
			},
			want: http.StatusNotFound,
		},
		{
			name: "implicit 200 from Write",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte("OK"))
			},
			want: http.StatusOK,
		},
		{
			name: "no content",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			want: http.StatusNoContent,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			logs := captureLogs(t)

			w := httptest.NewRecorder()
			WithLogging(tc.handler)(w, httptest.NewRequest("DELETE", "/admin/results/abc", nil))

			entry := completedEntry(t, logs)
			if entry["status"] != tc.want {
				t.Errorf("Expected logged status %v, got %v", tc.want, entry["status"])
			}
			if entry["path"] != "/admin/results/abc" {
				t.Errorf("Expected logged path, got %v", entry["path"])
			}
			if float64(w.Code) != tc.want {
				t.Errorf("Expected response status %v, got %d", tc.want, w.Code)
			}
		})
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Run("first WriteHeader wins", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: inner, status: http.StatusOK}

		rec.WriteHeader(http.StatusUnauthorized)
		rec.WriteHeader(http.StatusInternalServerError)

		if rec.status != http.StatusUnauthorized {
			t.Errorf("Expected 401 to be kept, got %d", rec.status)
		}
	})

	t.Run("header after body is ignored", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: inner, status: http.StatusOK}

		rec.Write([]byte("{}"))
		rec.WriteHeader(http.StatusTeapot)

		if rec.status != http.StatusOK {
			t.Errorf("Expected implicit 200, got %d", rec.status)
		}
	})

	t.Run("unwraps to the original writer", func(t *testing.T) {
		inner := httptest.NewRecorder()
		rec := &statusRecorder{ResponseWriter: inner}

		if rec.Unwrap() != inner {
			t.Error("Expected Unwrap to return the wrapped writer")
		}
	})
}

func TestJSONResponse(t *testing.T) {
	w := httptest.NewRecorder()
	JSONResponse(w, http.StatusCreated, models.TodayResponse{
		Date:    "2024-03-05",
		Results: []models.PublicResult{},
		Pending: 2,
	})

	if w.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Expected JSON content type, got %q", w.Header().Get("Content-Type"))
	}
	expected := `{"date":"2024-03-05","results":[],"pending":2,"published":0}`
	if got := strings.TrimSpace(w.Body.String()); got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}
}

func TestErrorResponse(t *testing.T) {
	t.Run("with message", func(t *testing.T) {
		w := httptest.NewRecorder()
		ErrorResponse(w, http.StatusUnprocessableEntity, "Unknown team")

		var resp models.ErrorResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode error response: %v", err)
		}
		if w.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected 422, got %d", w.Code)
		}
		if resp.Error != "Unprocessable Entity" || resp.Message != "Unknown team" {
			t.Errorf("Unexpected error body: %+v", resp)
		}
	})

	t.Run("empty message is omitted", func(t *testing.T) {
		w := httptest.NewRecorder()
		ErrorResponse(w, http.StatusUnauthorized, "")

		if got := strings.TrimSpace(w.Body.String()); got != `{"error":"Unauthorized"}` {
			t.Errorf("Expected message to be omitted, got %s", got)
		}
	})
}

func TestParseJSONBody_ResultRequest(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantResult models.ResultValue
		wantErr    bool
		wantField  string
	}{
		{
			name:       "numeric result keeps its literal text",
			body:       `{"team":"Alpha","result":12.50,"result_time":"2024-03-05 14:30:00"}`,
			wantResult: "12.50",
		},
		{
			name:       "string result",
			body:       `{"team":"Alpha","result":"8","result_time":"2024-03-05 14:30:00"}`,
			wantResult: "8",
		},
		{
			name:       "null result",
			body:       `{"team":"Alpha","result":null}`,
			wantResult: "",
		},
		{
			name:      "boolean result",
			body:      `{"team":"Alpha","result":true}`,
			wantErr:   true,
			wantField: "result",
		},
		{
			name:    "truncated body",
			body:    `{"team":"Alpha",`,
			wantErr: true,
		},
		{
			name:    "empty body",
			body:    ``,
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/results", strings.NewReader(tc.body))

			var parsed models.ResultRequest
			err := ParseJSONBody(req, &parsed)

			if tc.wantErr {
				if err == nil {
					t.Fatal("Expected an error")
				}
				var verr *models.ValidationError
				if tc.wantField != "" && (!errors.As(err, &verr) || verr.Field != tc.wantField) {
					t.Errorf("Expected a validation error on %q, got %v", tc.wantField, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if parsed.Result != tc.wantResult {
				t.Errorf("Expected result %q, got %q", tc.wantResult, parsed.Result)
			}
			if parsed.Team != "Alpha" {
				t.Errorf("Expected team Alpha, got %q", parsed.Team)
			}
		})
	}
}

func TestParseJSONBody_ClosesBody(t *testing.T) {
	body := &trackingBody{Reader: strings.NewReader(`{"name":"Alpha"}`)}
	req := httptest.NewRequest("POST", "/admin/teams", nil)
	req.Body = body

	var parsed models.TeamRequest
	if err := ParseJSONBody(req, &parsed); err != nil {
		t.Fatal(err)
	}
	if !body.closed {
		t.Error("Expected the request body to be closed")
	}
}

type trackingBody struct {
	io.Reader
	closed bool
}

func (b *trackingBody) Close() error {
	b.closed = true
	return nil
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("handled"))
	})

	testCases := []struct {
		name          string
		allowedOrigin string
		requestOrigin string
		wantOrigin    string
	}{
		{"configured origin overrides request", "https://results.example", "https://elsewhere.example", "https://results.example"},
		{"configured origin without request origin", "https://results.example", "", "https://results.example"},
		{"echoes request origin when unconfigured", "", "http://localhost:5173", "http://localhost:5173"},
		{"wildcard when nothing is known", "", "", "*"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/today", nil)
			if tc.requestOrigin != "" {
				req.Header.Set("Origin", tc.requestOrigin)
			}
			w := httptest.NewRecorder()
			CORS(tc.allowedOrigin, next).ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tc.wantOrigin {
				t.Errorf("Expected origin %q, got %q", tc.wantOrigin, got)
			}
			if w.Body.String() != "handled" {
				t.Error("Expected next handler to run")
			}
		})
	}

	t.Run("preflight for an admin write", func(t *testing.T) {
		req := httptest.NewRequest("OPTIONS", "/admin/results/abc", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		req.Header.Set("Access-Control-Request-Method", "PUT")
		w := httptest.NewRecorder()
		CORS("", next).ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.Len() != 0 {
			t.Errorf("Expected empty 200 without calling next, got %d %q", w.Code, w.Body.String())
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Methods"), "PUT") {
			t.Error("Expected PUT to be allowed")
		}
		if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "Authorization") {
			t.Error("Expected Authorization to be allowed for bearer tokens")
		}
	})
}

func TestGetClientIP(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"proxy chain keeps the client", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.2"}, "10.0.0.2:443", "203.0.113.7"},
		{"forwarded wins over real ip", map[string]string{"X-Forwarded-For": "203.0.113.7", "X-Real-IP": "198.51.100.1"}, "10.0.0.2:443", "203.0.113.7"},
		{"real ip from nginx", map[string]string{"X-Real-IP": "198.51.100.1"}, "10.0.0.2:443", "198.51.100.1"},
		{"remote address port stripped", nil, "192.0.2.10:52311", "192.0.2.10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/admin/login", nil)
			req.RemoteAddr = tc.remote
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			if got := GetClientIP(req); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}
