package csvdb

import (
	"fmt"

	"github.com/Velocidex/ordereddict"
)

// KeepPolicy selects which occurrence of a duplicate group survives.
type KeepPolicy string

const (
	keepFirst KeepPolicy = "first"
	keepLast  KeepPolicy = "last"
)

// ParseKeepPolicy validates a keep policy string, defaulting to "first".
func ParseKeepPolicy(s string) (KeepPolicy, error) {
	switch KeepPolicy(s) {
	case "":
		return keepFirst, nil
	case keepFirst, keepLast:
		return KeepPolicy(s), nil
	default:
		return "", fmt.Errorf("invalid keep policy %q: must be %q or %q", s, keepFirst, keepLast)
	}
}

// DedupeResult reports the outcome of a maintenance deduplication.
type DedupeResult struct {
	OriginalCount     int `json:"original_count"`
	DuplicatesRemoved int `json:"duplicates_removed"`
	FinalCount        int `json:"final_count"`
}

// Deduplicate removes duplicate rows from the dataset at path, keyed on the
// trimmed string value of column (DefaultDedupeColumn when empty), and
// rewrites the file in place. Unlike Append it draws no distinction between
// old and new rows; the keep policy alone decides which occurrence survives.
// A missing file surfaces ErrNotFound.
func Deduplicate(path, column, keep string) (*DedupeResult, error) {
	if column == "" {
		column = DefaultDedupeColumn
	}
	policy, err := ParseKeepPolicy(keep)
	if err != nil {
		return nil, err
	}

	t, err := Load(path)
	if err != nil {
		return nil, err
	}

	originalCount := t.Len()
	if t.HasColumn(column) {
		t.Rows = dedupeRows(t.Rows, column, policy)
	}
	finalCount := t.Len()

	if err := t.Write(path); err != nil {
		return nil, err
	}
	return &DedupeResult{
		OriginalCount:     originalCount,
		DuplicatesRemoved: originalCount - finalCount,
		FinalCount:        finalCount,
	}, nil
}

// dedupeRows removes duplicate rows keyed on the trimmed string value of
// column, preserving the relative order of the survivors.
func dedupeRows(rows []*ordereddict.Dict, column string, policy KeepPolicy) []*ordereddict.Dict {
	// Index of the surviving occurrence per key.
	winner := make(map[string]int, len(rows))
	for i, row := range rows {
		key := dedupeKey(row, column)
		if _, ok := winner[key]; ok && policy == keepFirst {
			continue
		}
		winner[key] = i
	}

	out := make([]*ordereddict.Dict, 0, len(winner))
	for i, row := range rows {
		if winner[dedupeKey(row, column)] == i {
			out = append(out, row)
		}
	}
	return out
}
