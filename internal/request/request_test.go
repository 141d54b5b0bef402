package request

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubjectContext(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req = req.WithContext(WithSubject(req.Context(), "u1"))

		if got := SubjectFromContext(req); got != "u1" {
			t.Errorf("SubjectFromContext() = %q, want u1", got)
		}
	})

	t.Run("absent subject", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		if got := SubjectFromContext(req); got != "" {
			t.Errorf("SubjectFromContext() = %q, want empty", got)
		}
	})

	t.Run("wrong type in context", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req = req.WithContext(context.WithValue(req.Context(), subjectContextKey, 42))
		if got := SubjectFromContext(req); got != "" {
			t.Errorf("SubjectFromContext() = %q, want empty", got)
		}
	})
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "X-Forwarded-For first hop",
			headers: map[string]string{"X-Forwarded-For": "10.0.0.1, 10.0.0.2"},
			remote:  "127.0.0.1:1234",
			want:    "10.0.0.1",
		},
		{
			name:    "X-Real-IP fallback",
			headers: map[string]string{"X-Real-IP": "10.0.0.3"},
			remote:  "127.0.0.1:1234",
			want:    "10.0.0.3",
		},
		{
			name:   "remote addr fallback",
			remote: "192.168.1.5:9999",
			want:   "192.168.1.5:9999",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if got := ClientIP(req); got != tt.want {
				t.Errorf("ClientIP() = %q, want %q", got, tt.want)
			}
		})
	}
}
