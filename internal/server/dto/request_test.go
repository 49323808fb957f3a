package dto

import (
	"encoding/json"
	"errors"
	"testing"
)

func assertCode(t *testing.T, err error, want ErrorCode) {
	t.Helper()
	if err == nil {
		t.Fatal("expected error")
	}
	var ews ErrorWithStatus
	if !errors.As(err, &ews) || ews.Code() != want {
		t.Errorf("error = %v, want code %s", err, want)
	}
}

func TestValidate(t *testing.T) {
	t.Run("append", func(t *testing.T) {
		r := &AppendProfilesRequest{}
		assertCode(t, r.Validate(), ErrorCodeMissingField)

		r.CSVPath = "a.csv"
		assertCode(t, r.Validate(), ErrorCodeMissingField)

		r.Profiles = []Profile{}
		if err := r.Validate(); err != nil {
			t.Errorf("empty profile list should validate, got %v", err)
		}
	})

	t.Run("filter", func(t *testing.T) {
		r := &FilterProfilesRequest{}
		assertCode(t, r.Validate(), ErrorCodeMissingField)

		r.CSVPath = "a.csv"
		if err := r.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}

		r.Limit = -1
		assertCode(t, r.Validate(), ErrorCodeInvalidFormat)

		r.Limit = 0
		r.FoundAfterDate = "not a date"
		assertCode(t, r.Validate(), ErrorCodeInvalidFormat)

		r.FoundAfterDate = "2026-02-16"
		if err := r.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("search", func(t *testing.T) {
		r := &SearchProfilesRequest{CSVPath: "a.csv"}
		assertCode(t, r.Validate(), ErrorCodeMissingField)

		r.SearchTerm = "acme"
		if err := r.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("export", func(t *testing.T) {
		r := &ExportSegmentRequest{SourceCSV: "a.csv"}
		assertCode(t, r.Validate(), ErrorCodeMissingField)

		r.OutputCSV = "b.csv"
		if err := r.Validate(); err != nil {
			t.Errorf("Validate() = %v", err)
		}
	})

	t.Run("deduplicate", func(t *testing.T) {
		r := &DeduplicateRequest{CSVPath: "a.csv", Keep: "middle"}
		assertCode(t, r.Validate(), ErrorCodeInvalidFormat)

		for _, keep := range []string{"", "first", "last"} {
			r.Keep = keep
			if err := r.Validate(); err != nil {
				t.Errorf("Validate() with keep=%q = %v", keep, err)
			}
		}
	})
}

func TestProfileJSON(t *testing.T) {
	t.Run("preserves key order", func(t *testing.T) {
		in := []byte(`{"LinkedIn URL":"u1","v2 Score":22,"Location":"Lisbon"}`)
		var p Profile
		if err := json.Unmarshal(in, &p); err != nil {
			t.Fatalf("Unmarshal() error = %v", err)
		}
		want := []string{"LinkedIn URL", "v2 Score", "Location"}
		got := p.Keys()
		if len(got) != len(want) {
			t.Fatalf("Keys() = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("Keys()[%d] = %q, want %q", i, got[i], want[i])
			}
		}
	})

	t.Run("nil marshals as null", func(t *testing.T) {
		data, err := json.Marshal(Profile{})
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		if string(data) != "null" {
			t.Errorf("Marshal() = %s, want null", data)
		}
	})
}
