package csvdb

import (
	"errors"
	"slices"

	"github.com/Velocidex/ordereddict"
)

// AppendResult reports the outcome of an append.
type AppendResult struct {
	Added             int `json:"added"`
	SkippedDuplicates int `json:"skipped_duplicates"`
	TotalProfiles     int `json:"total_profiles"`
}

// Append concatenates profiles onto the dataset at path, removing duplicates
// on dedupeColumn (DefaultDedupeColumn when empty) with pre-existing rows
// always winning over newly appended rows, and persists the result.
//
// The existing file's column order is authoritative: columns in new records
// not present in the file are dropped, columns missing from new records
// become nil. When the file does not exist the column order is taken from the
// incoming records in first-seen order. Appending the same batch twice yields
// Added=0 and SkippedDuplicates=len(batch) on the second call.
func Append(path string, profiles []*ordereddict.Dict, dedupeColumn string) (*AppendResult, error) {
	if dedupeColumn == "" {
		dedupeColumn = DefaultDedupeColumn
	}

	existing, err := Load(path)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
		existing = &Table{}
	}

	columns := slices.Clone(existing.Columns)
	if len(columns) == 0 {
		columns = unionColumns(nil, profiles)
	}

	combined := &Table{
		Columns: unionColumns(existing.Columns, profiles),
		Rows:    slices.Concat(existing.Rows, profiles),
	}
	if combined.HasColumn(dedupeColumn) {
		combined.Rows = dedupeRows(combined.Rows, dedupeColumn, keepFirst)
	}

	finalCount := combined.Len()
	added := finalCount - existing.Len()
	skipped := len(profiles) - added

	combined.Reindex(columns)
	if err := combined.Write(path); err != nil {
		return nil, err
	}
	return &AppendResult{
		Added:             added,
		SkippedDuplicates: skipped,
		TotalProfiles:     finalCount,
	}, nil
}

// unionColumns merges the base column list with every column of the given
// records, preserving first-seen order.
func unionColumns(base []string, rows []*ordereddict.Dict) []string {
	out := slices.Clone(base)
	seen := make(map[string]bool, len(base))
	for _, col := range base {
		seen[col] = true
	}
	for _, row := range rows {
		for _, col := range row.Keys() {
			if !seen[col] {
				seen[col] = true
				out = append(out, col)
			}
		}
	}
	return out
}
