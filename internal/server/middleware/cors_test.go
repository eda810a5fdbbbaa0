package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
)

// TestCORS tests origin handling.
func TestCORS(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name           string
		origins        []string
		origin         string
		expectedHeader string
	}{
		{"allow all", []string{"*"}, "https://example.com", "*"},
		{"allowed origin", []string{"https://spots.example"}, "https://spots.example", "https://spots.example"},
		{"disallowed origin", []string{"https://spots.example"}, "https://evil.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCORSConfig()
			config.AllowedOrigins = tt.origins

			req := httptest.NewRequest(http.MethodGet, "/api/v1/regions", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			CORS(config, &logger)(okHandler()).ServeHTTP(w, req)

			if got := w.Header().Get("Access-Control-Allow-Origin"); got != tt.expectedHeader {
				t.Errorf("expected Access-Control-Allow-Origin=%q, got %q", tt.expectedHeader, got)
			}
			if w.Code != http.StatusOK {
				t.Errorf("expected request to pass through, got %d", w.Code)
			}
		})
	}
}

// TestCORS_Preflight tests that preflight requests short-circuit.
func TestCORS_Preflight(t *testing.T) {
	called := false
	handler := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/spots", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	CORS(DefaultCORSConfig(), nil)(handler).ServeHTTP(w, req)

	if called {
		t.Error("preflight should not reach the handler")
	}
	if w.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("expected Access-Control-Allow-Methods header")
	}
}
