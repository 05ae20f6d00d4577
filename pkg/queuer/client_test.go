package queuer

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestJobPath(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"jobId":"abc"}`))
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	status, body, err := c.RequestJob(42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/deduper/jobs/reportId/42" || gotMethod != http.MethodGet {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
	if status != http.StatusCreated {
		t.Errorf("expected 201, got %d", status)
	}
	if string(body) != `{"jobId":"abc"}` {
		t.Errorf("unexpected body %s", body)
	}
}

func TestClearAnalysesTableMethod(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, _, err := c.ClearAnalysesTable(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/deduper/clear-db-table" {
		t.Errorf("unexpected request %s %s", gotMethod, gotPath)
	}
}

func TestUpstreamErrorStatusPropagates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`{"error":"queue down"}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	status, body, err := c.JobList()
	if err != nil {
		t.Fatalf("a non-2xx status is not a transport error: %v", err)
	}
	if status != http.StatusBadGateway {
		t.Errorf("expected upstream 502, got %d", status)
	}
	if string(body) != `{"error":"queue down"}` {
		t.Errorf("upstream body must be preserved, got %s", body)
	}
}

func TestConfigured(t *testing.T) {
	if New("").Configured() {
		t.Error("empty base url must report unconfigured")
	}
	if !New("http://localhost:9090").Configured() {
		t.Error("non-empty base url must report configured")
	}
}
