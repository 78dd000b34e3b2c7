package metrics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSummaryHandler(t *testing.T) {
	m := New()
	m.HTTPRequestsTotal.WithLabelValues("GET", "/trails", "200").Add(8)
	m.HTTPRequestsTotal.WithLabelValues("POST", "/trails", "422").Add(2)
	m.HTTPRequestDuration.WithLabelValues("GET", "/trails").Observe(0.02)
	m.AuthSuccessesTotal.Inc()
	m.AuthFailuresTotal.WithLabelValues("rejected").Add(3)

	req := httptest.NewRequest(http.MethodGet, "/metrics/summary", nil)
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected application/json, got %q", ct)
	}

	var s Summary
	if err := json.NewDecoder(rec.Body).Decode(&s); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	if s.HTTP.TotalRequests != 10 {
		t.Errorf("TotalRequests: got %v, want 10", s.HTTP.TotalRequests)
	}
	if s.HTTP.ErrorRate != 0.2 {
		t.Errorf("ErrorRate: got %v, want 0.2", s.HTTP.ErrorRate)
	}
	if s.Auth.Successes != 1 || s.Auth.Failures != 3 {
		t.Errorf("auth counts: got %+v", s.Auth)
	}
}

func TestDBPoolCollector(t *testing.T) {
	m := New()
	m.Register(NewDBPoolCollector(func() (total, idle, acquired int32) {
		return 5, 3, 2
	}))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics/summary", nil))

	var s Summary
	if err := json.NewDecoder(rec.Body).Decode(&s); err != nil {
		t.Fatalf("decoding summary: %v", err)
	}
	if s.DB.TotalConns != 5 || s.DB.IdleConns != 3 || s.DB.AcquiredConns != 2 {
		t.Errorf("db pool stats: got %+v", s.DB)
	}
}
