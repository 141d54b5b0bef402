package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogging(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header not set")
	}

	entries := logs.FilterMessage("http_request").All()
	if len(entries) != 1 {
		t.Fatalf("got %d http_request entries, want 1", len(entries))
	}

	fields := entries[0].ContextMap()
	if fields["status_code"] != int64(http.StatusTeapot) {
		t.Errorf("logged status_code = %v, want %d", fields["status_code"], http.StatusTeapot)
	}
	if fields["path"] != "/login" {
		t.Errorf("logged path = %v, want /login", fields["path"])
	}
	if fields["request_id"] == "" {
		t.Error("logged request_id is empty")
	}
}
