package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Simplici0/ebs-estimator/internal/metrics"
)

func TestCounters(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.QuoteCalculated()
	m.QuoteCalculated()
	m.Submission("ok")
	m.EmailSent("internal", "error")

	if got := testutil.ToFloat64(m.QuotesCalculated); got != 2 {
		t.Fatalf("quotes = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Submissions.WithLabelValues("ok")); got != 1 {
		t.Fatalf("submissions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.EmailsSent.WithLabelValues("internal", "error")); got != 1 {
		t.Fatalf("emails = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *metrics.Metrics
	m.QuoteCalculated()
	m.Submission("ok")
	m.EmailSent("customer", "ok")

	called := false
	h := m.Middleware(http.HandlerFunc(func(http.ResponseWriter, *http.Request) { called = true }))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	if !called {
		t.Fatalf("handler not called")
	}
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/rooms/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/rooms/7", nil))

	if got := testutil.ToFloat64(m.RequestsTotal.WithLabelValues(http.MethodGet, "/rooms/{id}", "418")); got != 1 {
		t.Fatalf("requests = %v, want 1", got)
	}
	if n := testutil.CollectAndCount(m.RequestDuration); n == 0 {
		t.Fatalf("expected a latency sample")
	}
}
