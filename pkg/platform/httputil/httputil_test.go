package httputil

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"almanac/internal/calendar"
	dErrors "almanac/pkg/domain-errors"
)

func TestWriteError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		status      int
		code        string
		description string
	}{
		{
			name:   "internal error omits description",
			err:    dErrors.New(dErrors.CodeInternal, "rule table broken"),
			status: http.StatusInternalServerError,
			code:   "internal_error",
		},
		{
			name:        "date range is a bad request",
			err:         dErrors.Wrap(calendar.CheckYear(1200), dErrors.CodeBadRequest, "year 1200 outside supported range"),
			status:      http.StatusBadRequest,
			code:        "bad_request",
			description: "year 1200 outside supported range",
		},
		{
			name:        "not found keeps the message, not the cause",
			err:         dErrors.Wrap(errors.New("registry miss"), dErrors.CodeNotFound, "unknown jurisdiction ZZ"),
			status:      http.StatusNotFound,
			code:        "not_found",
			description: "unknown jurisdiction ZZ",
		},
		{
			name:   "uncoded error is internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   "internal_error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			WriteError(w, tt.err)

			if w.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected JSON content type, got %q", ct)
			}

			var body map[string]string
			if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if body["error"] != tt.code {
				t.Fatalf("expected error code %s, got %q", tt.code, body["error"])
			}
			desc, ok := body["error_description"]
			if tt.description == "" && ok {
				t.Fatalf("expected error_description to be omitted, got %q", desc)
			}
			if desc != tt.description {
				t.Fatalf("expected error_description %q, got %q", tt.description, desc)
			}
		})
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSON(w, http.StatusOK, calendar.NewDate(2024, 7, 4))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != `{"year":2024,"month":7,"day":4}`+"\n" {
		t.Fatalf("unexpected body %q", got)
	}
}
