// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danielhkuo/resultboard/cliparse"
	"github.com/danielhkuo/resultboard/db"
	"github.com/danielhkuo/resultboard/metrics"
	"github.com/danielhkuo/resultboard/testutil"
)

type fixture struct {
	store   *db.Store
	cfg     cliparse.Config
	clock   *testutil.Clock
	metrics *metrics.Manager
}

func newFixture(t *testing.T, now string) *fixture {
	t.Helper()
	return &fixture{
		store:   testutil.SetupTestStore(t),
		cfg:     testutil.GetTestConfig(),
		clock:   testutil.NewClock(t, now),
		metrics: metrics.NewManager(),
	}
}

func (f *fixture) results() *ResultsHandler {
	return NewResultsHandler(f.store, f.clock, f.metrics)
}

func (f *fixture) teams() *TeamHandler {
	return NewTeamHandler(f.store, f.clock, f.metrics)
}

// serve runs h against req and returns the recorder.
func serve(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

// withID sets the {id} path value the router would normally provide.
func withID(req *http.Request, id string) *http.Request {
	req.SetPathValue("id", id)
	return req
}

// counterValue sums every series of the named counter.
func counterValue(t *testing.T, m *metrics.Manager, name string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			total += metric.GetCounter().GetValue()
		}
	}
	return total
}

func nopCloser(body string) io.ReadCloser {
	return io.NopCloser(strings.NewReader(body))
}

type errStatus int

func (e errStatus) Error() string {
	return fmt.Sprintf("unexpected status %d", int(e))
}
