package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/agentstation/spotmap/pkg/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

// TestFail tests the Fail helper function.
func TestFail(t *testing.T) {
	resp := Fail("TEST_ERROR", "Test error message", "Additional details")

	if resp.Data != nil {
		t.Error("expected Data to be nil")
	}
	if resp.Error == nil {
		t.Fatal("expected Error to be set")
	}
	if resp.Error.Code != "TEST_ERROR" {
		t.Errorf("expected Code=TEST_ERROR, got %s", resp.Error.Code)
	}
	if resp.Error.Details != "Additional details" {
		t.Errorf("expected Details=Additional details, got %s", resp.Error.Details)
	}
}

// TestOK tests the OK helper and the envelope encoding.
func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	OK(w, map[string]int{"count": 42})

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("expected Content-Type=application/json, got %s", ct)
	}

	resp := decode(t, w)
	if resp.Error != nil {
		t.Error("expected Error to be nil")
	}
	if resp.Warnings != nil {
		t.Errorf("expected no warnings, got %v", resp.Warnings)
	}
}

// TestOKWithWarnings tests that warnings are carried next to data.
func TestOKWithWarnings(t *testing.T) {
	w := httptest.NewRecorder()
	OKWithWarnings(w, []string{}, []string{"category: unknown value"})

	resp := decode(t, w)
	if len(resp.Warnings) != 1 || resp.Warnings[0] != "category: unknown value" {
		t.Errorf("unexpected warnings: %v", resp.Warnings)
	}
}

// TestErrorFromType tests typed error mapping.
func TestErrorFromType(t *testing.T) {
	tests := []struct {
		name           string
		err            error
		expectedStatus int
		expectedCode   string
		expectAllowed  bool
	}{
		{
			name:           "not found",
			err:            &errors.NotFoundError{Resource: "spot", ID: "nowhere"},
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "wrapped not found",
			err:            fmt.Errorf("lookup: %w", &errors.NotFoundError{Resource: "region", ID: "osaka"}),
			expectedStatus: http.StatusNotFound,
			expectedCode:   "NOT_FOUND",
		},
		{
			name:           "validation with allowed values",
			err:            errors.NewInvalidValueError("sort", "price", []string{"rating", "name"}),
			expectedStatus: http.StatusBadRequest,
			expectedCode:   "BAD_REQUEST",
			expectAllowed:  true,
		},
		{
			name:           "rate limited",
			err:            errors.ErrRateLimited,
			expectedStatus: http.StatusTooManyRequests,
			expectedCode:   "RATE_LIMITED",
		},
		{
			name:           "unknown error",
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ErrorFromType(w, tt.err)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			resp := decode(t, w)
			if resp.Error == nil {
				t.Fatal("expected Error to be set")
			}
			if resp.Error.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, resp.Error.Code)
			}
			if tt.expectAllowed && len(resp.Error.Allowed) == 0 {
				t.Error("expected allowed values")
			}
		})
	}
}

// TestInternalErrorHidesDetails tests that internal errors are not leaked.
func TestInternalErrorHidesDetails(t *testing.T) {
	w := httptest.NewRecorder()
	InternalError(w, errors.New("database password is hunter2"))

	resp := decode(t, w)
	if resp.Error.Details != "An unexpected error occurred" {
		t.Errorf("unexpected details: %s", resp.Error.Details)
	}
}
