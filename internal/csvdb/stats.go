package csvdb

import (
	"math"
	"sort"
	"strings"
)

// Score bands used by the distribution summary. Bands are mutually exclusive,
// inclusive on the lower bound and exclusive on the upper.
const (
	Band20Plus  = "20+"
	Band15To19  = "15-19"
	Band10To14  = "10-14"
	BandBelow10 = "<10"
)

// topLocations caps the location breakdown at the most frequent values.
const topLocations = 10

// DateRange is the span of parseable Found Date values, empty when none parse.
type DateRange struct {
	Earliest string `json:"earliest"`
	Latest   string `json:"latest"`
}

// Stats summarizes one dataset.
type Stats struct {
	TotalProfiles        int            `json:"total_profiles"`
	AvgScore             float64        `json:"avg_score"`
	ScoreDistribution    map[string]int `json:"score_distribution"`
	LocationBreakdown    map[string]int `json:"location_breakdown"`
	CompanySizeBreakdown map[string]int `json:"company_size_breakdown"`
	FoundDateRange       DateRange      `json:"found_date_range"`
	CurrentRoleCount     int            `json:"current_role_count"`
}

// GetStats computes the summary for the dataset at path. Columns absent from
// the file yield zero counts and empty breakdowns rather than errors; a
// missing file surfaces ErrNotFound.
func GetStats(path string) (*Stats, error) {
	t, err := Load(path)
	if err != nil {
		return nil, err
	}

	s := &Stats{
		TotalProfiles:        t.Len(),
		ScoreDistribution:    map[string]int{},
		LocationBreakdown:    map[string]int{},
		CompanySizeBreakdown: map[string]int{},
	}

	if t.HasColumn(ColumnScore) {
		var sum float64
		var n int
		dist := map[string]int{Band20Plus: 0, Band15To19: 0, Band10To14: 0, BandBelow10: 0}
		for _, row := range t.Rows {
			score, ok := scoreValue(row, ColumnScore)
			if !ok {
				continue
			}
			sum += score
			n++
			switch {
			case score >= 20:
				dist[Band20Plus]++
			case score >= 15:
				dist[Band15To19]++
			case score >= 10:
				dist[Band10To14]++
			default:
				dist[BandBelow10]++
			}
		}
		if n > 0 {
			s.AvgScore = math.Round(sum/float64(n)*100) / 100
		}
		s.ScoreDistribution = dist
	}

	if t.HasColumn(ColumnLocation) {
		s.LocationBreakdown = topCounts(valueCounts(t, ColumnLocation), topLocations)
	}
	if t.HasColumn(ColumnCompanySize) {
		s.CompanySizeBreakdown = valueCounts(t, ColumnCompanySize)
	}

	var earliest, latest string
	for _, row := range t.Rows {
		d, ok := dateValue(row, ColumnFoundDate)
		if !ok {
			continue
		}
		iso := d.Format(dateFormat)
		if earliest == "" || iso < earliest {
			earliest = iso
		}
		if iso > latest {
			latest = iso
		}
	}
	s.FoundDateRange = DateRange{Earliest: earliest, Latest: latest}

	for _, row := range t.Rows {
		if v, ok := cellString(row, ColumnCurrentRole); ok && strings.HasPrefix(v, "YES") {
			s.CurrentRoleCount++
		}
	}
	return s, nil
}

// valueCounts tallies the distinct non-nil values of a column.
func valueCounts(t *Table, column string) map[string]int {
	counts := map[string]int{}
	for _, row := range t.Rows {
		if v, ok := cellString(row, column); ok {
			counts[v]++
		}
	}
	return counts
}

// topCounts keeps the n most frequent entries, breaking count ties by value
// for deterministic output.
func topCounts(counts map[string]int, n int) map[string]int {
	if len(counts) <= n {
		return counts
	}
	type entry struct {
		value string
		count int
	}
	entries := make([]entry, 0, len(counts))
	for v, c := range counts {
		entries = append(entries, entry{v, c})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].value < entries[j].value
	})
	out := make(map[string]int, n)
	for _, e := range entries[:n] {
		out[e.value] = e.count
	}
	return out
}
