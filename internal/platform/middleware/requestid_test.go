package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

func TestRequestIDGeneratesUUIDv4(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	var captured string
	h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = chimiddleware.GetReqID(r.Context())
	}))
	h.ServeHTTP(rec, req)

	if header := rec.Header().Get(chimiddleware.RequestIDHeader); header != captured {
		t.Fatalf("expected response header %q, got %q", captured, header)
	}
	parsed, err := uuid.Parse(captured)
	if err != nil {
		t.Fatalf("request ID %q is not a valid UUID: %v", captured, err)
	}
	if parsed.Version() != 4 {
		t.Fatalf("expected UUIDv4, got version %d", parsed.Version())
	}
}

func TestRequestIDHandlesIncomingHeader(t *testing.T) {
	tests := []struct {
		name    string
		inputID string
		wantNew bool
	}{
		{"valid alphanumeric is preserved", "abc123-XYZ", false},
		{"valid UUID is preserved", "550e8400-e29b-41d4-a716-446655440000", false},
		{"spaces are preserved", "trace id 123", false},
		{"exactly max length is preserved", strings.Repeat("x", 128), false},
		{"empty generates new", "", true},
		{"newline is rejected", "valid\ninjected-line", true},
		{"tab is rejected", "valid\ttab", true},
		{"DEL is rejected", "valid\x7Fdel", true},
		{"high byte is rejected", "valid\x80high", true},
		{"too long is rejected", strings.Repeat("a", 129), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header[chimiddleware.RequestIDHeader] = []string{tc.inputID}

			var captured string
			h := RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				captured = chimiddleware.GetReqID(r.Context())
			}))
			h.ServeHTTP(rec, req)

			if !tc.wantNew {
				if captured != tc.inputID {
					t.Fatalf("expected %q, got %q", tc.inputID, captured)
				}
				return
			}
			if captured == tc.inputID {
				t.Fatalf("expected new UUID, but got original: %q", captured)
			}
			if _, err := uuid.Parse(captured); err != nil {
				t.Fatalf("expected valid UUID, got %q: %v", captured, err)
			}
		})
	}
}

func TestIsValidRequestID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"", false},
		{"a", true},
		{"ABC-xyz_123.456", true},
		{strings.Repeat("a", 128), true},
		{strings.Repeat("a", 129), false},
		{"hello\nworld", false},
		{"hello\rworld", false},
		{"hello\x00world", false},
		{"hello\x1fworld", false},
		{"hello\x7fworld", false},
		{"hello\x80world", false},
		{" leading space", true},
		{"special!@#$%^&*()~", true},
	}

	for _, tc := range tests {
		if got := isValidRequestID(tc.id); got != tc.valid {
			t.Errorf("isValidRequestID(%q) = %v, want %v", tc.id, got, tc.valid)
		}
	}
}
