package dto

import (
	"errors"
	"net/http"
	"testing"
)

func TestAPIError(t *testing.T) {
	t.Run("NewAPIError", func(t *testing.T) {
		err := NewAPIError(http.StatusNotFound, ErrorCodeFileNotFound, "file not found")
		if err.StatusCode() != http.StatusNotFound {
			t.Errorf("Expected status code %d, got %d", http.StatusNotFound, err.StatusCode())
		}
		if err.Code() != ErrorCodeFileNotFound {
			t.Errorf("Expected code %s, got %s", ErrorCodeFileNotFound, err.Code())
		}
		if err.Error() != "file not found" {
			t.Errorf("Expected message 'file not found', got '%s'", err.Error())
		}
		if err.Details() == nil {
			t.Error("Expected Details() to return non-nil map")
		}
	})
	t.Run("WithDetail", func(t *testing.T) {
		err := NewAPIError(http.StatusBadRequest, ErrorCodeValidationFailed, "validation failed").
			WithDetail("field", "csv_path")
		if err.Details()["field"] != "csv_path" {
			t.Errorf("Expected field 'csv_path', got %v", err.Details()["field"])
		}
	})
	t.Run("Wrap", func(t *testing.T) {
		inner := errors.New("boom")
		err := Internal("operation failed").Wrap(inner)
		if !errors.Is(err, inner) {
			t.Error("Expected errors.Is to find wrapped error")
		}
		if err.Error() != "operation failed: boom" {
			t.Errorf("Error() = %q", err.Error())
		}
	})
	t.Run("implements ErrorWithStatus", func(t *testing.T) {
		var ews ErrorWithStatus
		if !errors.As(error(FileNotFound("x.csv")), &ews) {
			t.Fatal("APIError should satisfy ErrorWithStatus")
		}
		if ews.StatusCode() != http.StatusNotFound {
			t.Errorf("StatusCode() = %d", ews.StatusCode())
		}
	})
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name   string
		err    *APIError
		status int
		code   ErrorCode
	}{
		{"MissingField", MissingField("csv_path"), http.StatusBadRequest, ErrorCodeMissingField},
		{"InvalidFormat", InvalidFormat("limit", "must not be negative"), http.StatusBadRequest, ErrorCodeInvalidFormat},
		{"FileNotFound", FileNotFound("a.csv"), http.StatusNotFound, ErrorCodeFileNotFound},
		{"ParseFailure", ParseFailure(errors.New("bad row")), http.StatusUnprocessableEntity, ErrorCodeParseFailure},
		{"UnknownTool", UnknownTool("nope"), http.StatusNotFound, ErrorCodeUnknownTool},
		{"ForbiddenPath", ForbiddenPath("../x"), http.StatusForbidden, ErrorCodeForbiddenPath},
		{"PayloadTooLarge", PayloadTooLarge(1024), http.StatusRequestEntityTooLarge, ErrorCodePayloadTooLarge},
		{"RateLimitExceeded", RateLimitExceeded(30), http.StatusTooManyRequests, ErrorCodeRateLimited},
		{"Internal", Internal("oops"), http.StatusInternalServerError, ErrorCodeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != tt.status {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.status)
			}
			if tt.err.Code() != tt.code {
				t.Errorf("Code() = %s, want %s", tt.err.Code(), tt.code)
			}
		})
	}
}
