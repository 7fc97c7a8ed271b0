// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager", t, func() {
		m := NewManager(WithNamespace("test"), WithHistogramBuckets([]float64{0.01, 0.1, 1}))

		Convey("When projections are observed", func() {
			m.ObserveProjections(2, 3)
			m.ObserveProjections(1, 0)

			Convey("Then counts accumulate per state", func() {
				So(promtest.ToFloat64(m.projections.WithLabelValues("pending")), ShouldEqual, 3)
				So(promtest.ToFloat64(m.projections.WithLabelValues("published")), ShouldEqual, 3)
			})
		})

		Convey("When HTTP requests are observed", func() {
			m.ObserveHTTP("GET", "/api/today", 200, 5*time.Millisecond)
			m.ObserveHTTP("GET", "/api/today", 200, 7*time.Millisecond)
			m.ObserveHTTP("GET", "/api/today", 500, time.Millisecond)

			Convey("Then requests are split by status code", func() {
				So(promtest.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/today", "200")), ShouldEqual, 2)
				So(promtest.ToFloat64(m.httpRequests.WithLabelValues("GET", "/api/today", "500")), ShouldEqual, 1)
			})
		})

		Convey("When faults, writes and auth failures are recorded", func() {
			m.IntegrityFault()
			m.ResultWrite("create")
			m.ResultWrite("create")
			m.AuthFailure()

			Convey("Then each counter reflects them", func() {
				So(promtest.ToFloat64(m.integrityFaults), ShouldEqual, 1)
				So(promtest.ToFloat64(m.resultWrites.WithLabelValues("create")), ShouldEqual, 2)
				So(promtest.ToFloat64(m.authFailures), ShouldEqual, 1)
			})
		})

		Convey("When the handler is scraped", func() {
			m.IntegrityFault()
			w := httptest.NewRecorder()
			m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

			Convey("Then it exposes namespaced metrics", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				So(strings.Contains(w.Body.String(), "test_disclosure_integrity_faults_total 1"), ShouldBeTrue)
			})
		})

		Convey("When a second manager is created", func() {
			So(func() { NewManager() }, ShouldNotPanic)
		})
	})
}
