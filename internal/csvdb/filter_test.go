package csvdb

import (
	"path/filepath"
	"testing"
)

func fptr(f float64) *float64 { return &f }

func TestFilter(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		path := writeCSV(t, "prospects.csv", prospectsCSV)

		t.Run("min score is inclusive", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{MinScore: fptr(12)})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if len(rows) != 3 {
				t.Fatalf("len = %d, want 3", len(rows))
			}
			for _, row := range rows {
				score, ok := scoreValue(row, ColumnScore)
				if !ok || score < 12 {
					t.Errorf("row score = %v (ok=%v), want >= 12", score, ok)
				}
			}
		})

		t.Run("results sort descending by score", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if len(rows) != 5 {
				t.Fatalf("len = %d, want 5", len(rows))
			}
			got, _ := rows[0].Get(ColumnScore)
			if got != float64(22) {
				t.Errorf("top score = %v, want 22", got)
			}
			// The row with an empty score sorts last and renders as "".
			last, _ := rows[4].Get(ColumnScore)
			if last != "" {
				t.Errorf("last score = %v, want empty string", last)
			}
		})

		t.Run("locations match any substring case-insensitively", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{Locations: []string{"portugal"}})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if len(rows) != 3 {
				t.Errorf("len = %d, want 3", len(rows))
			}
		})

		t.Run("predicates compose with AND", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{
				MinScore:  fptr(10),
				Locations: []string{"Lisbon"},
				Companies: []string{"gamma"},
			})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if len(rows) != 1 {
				t.Fatalf("len = %d, want 1", len(rows))
			}
			got, _ := rows[0].Get(ColumnCompany)
			if got != "Gamma Inc" {
				t.Errorf("company = %v, want Gamma Inc", got)
			}
		})

		t.Run("current role only keeps YES prefixes", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{CurrentRoleOnly: true})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if len(rows) != 2 {
				t.Errorf("len = %d, want 2", len(rows))
			}
		})

		t.Run("found after date is strict and normalizes output", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{FoundAfterDate: "2026-02-01"})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			// 2026-02-01 itself is not after the threshold; the unparseable
			// date row is excluded.
			if len(rows) != 2 {
				t.Fatalf("len = %d, want 2", len(rows))
			}
			for _, row := range rows {
				d, _ := row.Get(ColumnFoundDate)
				s, ok := d.(string)
				if !ok || len(s) != 10 {
					t.Errorf("Found Date = %v, want YYYY-MM-DD string", d)
				}
			}
		})

		t.Run("limit truncates after sorting", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{Limit: 2})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if len(rows) != 2 {
				t.Fatalf("len = %d, want 2", len(rows))
			}
			got, _ := rows[0].Get(ColumnScore)
			if got != float64(22) {
				t.Errorf("top score = %v, want 22", got)
			}
		})

		t.Run("nil cells render as empty strings", func(t *testing.T) {
			rows, err := Filter(path, FilterOptions{})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			for _, row := range rows {
				for _, col := range row.Keys() {
					if v, _ := row.Get(col); v == nil {
						t.Errorf("column %s rendered as nil", col)
					}
				}
			}
		})

		t.Run("missing file yields empty result", func(t *testing.T) {
			rows, err := Filter(filepath.Join(t.TempDir(), "absent.csv"), FilterOptions{})
			if err != nil {
				t.Fatalf("Filter error: %v", err)
			}
			if len(rows) != 0 {
				t.Errorf("len = %d, want 0", len(rows))
			}
		})
	})

	t.Run("errors", func(t *testing.T) {
		t.Run("invalid found_after_date", func(t *testing.T) {
			path := writeCSV(t, "prospects.csv", prospectsCSV)
			_, err := Filter(path, FilterOptions{FoundAfterDate: "not a date"})
			if err == nil {
				t.Error("Filter() expected error for invalid date, got nil")
			}
		})
	})
}
