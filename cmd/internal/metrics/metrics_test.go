package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserve(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveEvaluation(SourceHTTP)
	m.ObserveEvaluation(SourceHTTP)
	m.ObserveValidation("new_password", "criteria_not_met")
	m.ObserveSubmission(true)
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()

	if got := testutil.ToFloat64(m.EvaluationsTotal.WithLabelValues(SourceHTTP)); got != 2 {
		t.Fatalf("evaluations=%v", got)
	}
	if got := testutil.ToFloat64(m.ValidationsTotal.WithLabelValues("new_password", "criteria_not_met")); got != 1 {
		t.Fatalf("validations=%v", got)
	}
	if got := testutil.ToFloat64(m.SubmissionsTotal.WithLabelValues("true")); got != 1 {
		t.Fatalf("submissions=%v", got)
	}
	if got := testutil.ToFloat64(m.WSSessions); got != 1 {
		t.Fatalf("sessions=%v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveEvaluation(SourceWS)
	m.ObserveValidation("confirm_password", "ok")
	m.ObserveSubmission(false)
	m.SessionOpened()
	m.SessionClosed()

	rr := httptest.NewRecorder()
	m.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestHandler(t *testing.T) {
	t.Parallel()

	m := New()
	m.ObserveSubmission(false)

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), `pwgate_submissions_total{accepted="false"} 1`) {
		t.Fatalf("missing submission metric in:\n%s", body)
	}
}
