package csvdb

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestGetStats(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		stats := func(t *testing.T) *Stats {
			t.Helper()
			path := writeCSV(t, "prospects.csv", prospectsCSV)
			s, err := GetStats(path)
			if err != nil {
				t.Fatalf("GetStats error: %v", err)
			}
			return s
		}

		t.Run("totals and average", func(t *testing.T) {
			s := stats(t)
			if s.TotalProfiles != 5 {
				t.Errorf("TotalProfiles = %d, want 5", s.TotalProfiles)
			}
			// Scores 22, 17, 12, 8; the empty cell is excluded from the mean.
			if s.AvgScore != 14.75 {
				t.Errorf("AvgScore = %v, want 14.75", s.AvgScore)
			}
		})

		t.Run("score bands", func(t *testing.T) {
			s := stats(t)
			want := map[string]int{Band20Plus: 1, Band15To19: 1, Band10To14: 1, BandBelow10: 1}
			for band, count := range want {
				if s.ScoreDistribution[band] != count {
					t.Errorf("band %s = %d, want %d", band, s.ScoreDistribution[band], count)
				}
			}
		})

		t.Run("location breakdown", func(t *testing.T) {
			s := stats(t)
			if s.LocationBreakdown["Lisbon Portugal"] != 2 {
				t.Errorf("Lisbon Portugal = %d, want 2", s.LocationBreakdown["Lisbon Portugal"])
			}
			if s.LocationBreakdown["Remote"] != 1 {
				t.Errorf("Remote = %d, want 1", s.LocationBreakdown["Remote"])
			}
		})

		t.Run("company size breakdown covers every distinct value", func(t *testing.T) {
			s := stats(t)
			want := map[string]int{"51-200": 3, "201-500": 1, "11-50": 1}
			if len(s.CompanySizeBreakdown) != len(want) {
				t.Errorf("CompanySizeBreakdown = %v, want %v", s.CompanySizeBreakdown, want)
			}
			for size, count := range want {
				if s.CompanySizeBreakdown[size] != count {
					t.Errorf("size %s = %d, want %d", size, s.CompanySizeBreakdown[size], count)
				}
			}
		})

		t.Run("found date range skips unparseable dates", func(t *testing.T) {
			s := stats(t)
			if s.FoundDateRange.Earliest != "2026-01-10" {
				t.Errorf("Earliest = %s, want 2026-01-10", s.FoundDateRange.Earliest)
			}
			if s.FoundDateRange.Latest != "2026-03-05" {
				t.Errorf("Latest = %s, want 2026-03-05", s.FoundDateRange.Latest)
			}
		})

		t.Run("current role count", func(t *testing.T) {
			s := stats(t)
			if s.CurrentRoleCount != 2 {
				t.Errorf("CurrentRoleCount = %d, want 2", s.CurrentRoleCount)
			}
		})

		t.Run("top locations capped at ten", func(t *testing.T) {
			content := "LinkedIn URL,Location\n"
			for i := 0; i < 12; i++ {
				// Location L0 appears 13-i times so counts are distinct.
				for j := 0; j < 13-i; j++ {
					content += "https://linkedin.com/in/p,L" + string(rune('A'+i)) + "\n"
				}
			}
			path := writeCSV(t, "many.csv", content)
			s, err := GetStats(path)
			if err != nil {
				t.Fatalf("GetStats error: %v", err)
			}
			if len(s.LocationBreakdown) != 10 {
				t.Errorf("len(LocationBreakdown) = %d, want 10", len(s.LocationBreakdown))
			}
			if s.LocationBreakdown["LA"] != 13 {
				t.Errorf("LA = %d, want 13", s.LocationBreakdown["LA"])
			}
			if _, ok := s.LocationBreakdown["LL"]; ok {
				t.Error("least frequent location survived the top-10 cap")
			}
		})

		t.Run("absent columns yield zero values", func(t *testing.T) {
			path := writeCSV(t, "bare.csv", "LinkedIn URL\nhttps://linkedin.com/in/solo\n")
			s, err := GetStats(path)
			if err != nil {
				t.Fatalf("GetStats error: %v", err)
			}
			if s.AvgScore != 0 {
				t.Errorf("AvgScore = %v, want 0", s.AvgScore)
			}
			if len(s.ScoreDistribution) != 0 {
				t.Errorf("ScoreDistribution = %v, want empty", s.ScoreDistribution)
			}
			if len(s.LocationBreakdown) != 0 {
				t.Errorf("LocationBreakdown = %v, want empty", s.LocationBreakdown)
			}
			if s.FoundDateRange.Earliest != "" || s.FoundDateRange.Latest != "" {
				t.Errorf("FoundDateRange = %+v, want empty strings", s.FoundDateRange)
			}
		})
	})

	t.Run("errors", func(t *testing.T) {
		t.Run("missing file", func(t *testing.T) {
			_, err := GetStats(filepath.Join(t.TempDir(), "absent.csv"))
			if !errors.Is(err, ErrNotFound) {
				t.Errorf("GetStats() error = %v, want ErrNotFound", err)
			}
		})
	})
}
