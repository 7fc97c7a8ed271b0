// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/danielhkuo/resultboard/auth"
	"github.com/danielhkuo/resultboard/civil"
	"github.com/danielhkuo/resultboard/cliparse"
	"github.com/danielhkuo/resultboard/db"
	"github.com/danielhkuo/resultboard/models"
)

// SetupTestStore creates a fresh SQLite database with the full schema in a
// per-test temp directory.
func SetupTestStore(t *testing.T) *db.Store {
	t.Helper()

	ctx := context.Background()
	conn, err := db.Open(ctx, db.DialectSQLite, filepath.Join(t.TempDir(), "resultboard.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return db.NewStore(conn, db.DialectSQLite)
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:           3318,
		DatabaseURL:    "file:test.db",
		DatabaseType:   db.DialectSQLite,
		AdminAccessKey: "test-admin",
		AdminPassword:  "test-password",
		TokenSecret:    "test-token-secret",
		TokenTTL:       12 * time.Hour,
		LogLevel:       "info",
	}
}

// Clock is a settable civil.Clock.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

// NewClock returns a clock reading the canonical IST timestamp canonical.
func NewClock(t *testing.T, canonical string) *Clock {
	t.Helper()
	c := &Clock{}
	c.Set(t, canonical)
	return c
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to the canonical IST timestamp canonical.
func (c *Clock) Set(t *testing.T, canonical string) {
	t.Helper()
	civ := MustCivil(t, canonical)
	c.mu.Lock()
	c.now = civ.Time()
	c.mu.Unlock()
}

// MustCivil parses a canonical timestamp or fails the test.
func MustCivil(t *testing.T, canonical string) civil.Civil {
	t.Helper()
	c, err := civil.Parse(canonical)
	if err != nil {
		t.Fatalf("bad canonical timestamp %q: %v", canonical, err)
	}
	return c
}

// CreateTestTeam inserts a team and returns it.
func CreateTestTeam(t *testing.T, store *db.Store, name string) models.Team {
	t.Helper()

	team, err := store.CreateTeam(context.Background(), name, MustCivil(t, "2024-01-01 09:00:00"))
	if err != nil {
		t.Fatalf("Failed to create test team: %v", err)
	}
	return team
}

// CreateTestResult inserts a result for an existing team.
func CreateTestResult(t *testing.T, store *db.Store, team, raw, revealAt string) models.ResultRecord {
	t.Helper()

	rec, err := store.CreateResult(context.Background(), models.ResultInput{
		TeamName: team,
		RawValue: raw,
		RevealAt: MustCivil(t, revealAt),
	}, MustCivil(t, "2024-01-01 09:00:00"))
	if err != nil {
		t.Fatalf("Failed to create test result: %v", err)
	}
	return rec
}

// AdminToken issues a valid bearer token for cfg at clk's current time.
func AdminToken(t *testing.T, cfg cliparse.Config, clk civil.Clock) string {
	t.Helper()

	token, _, err := auth.IssueToken(cfg.AdminAccessKey, cfg.TokenSecret, clk.Now(), cfg.TokenTTL)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return token
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// Bearer returns an Authorization header map for MakeRequest.
func Bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
