package csvdb

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/araddon/dateparse"
)

// FilterOptions describes the predicates applied by Filter. Predicates left
// unset impose no constraint; supplied predicates compose with logical AND.
type FilterOptions struct {
	// MinScore and MaxScore are inclusive bounds on the numeric score column.
	// Rows whose score cannot be coerced to a number never satisfy a bound.
	MinScore *float64
	MaxScore *float64
	// Locations matches rows whose Location contains any of the given
	// substrings, case-insensitively. Companies behaves the same against
	// Company.
	Locations []string
	Companies []string
	// CurrentRoleOnly keeps only rows whose CURRENT Role Mention starts with
	// "YES" (case-sensitive).
	CurrentRoleOnly bool
	// FoundAfterDate keeps only rows whose Found Date parses and falls
	// strictly after this date (ISO form, e.g. "2026-02-16").
	FoundAfterDate string
	// Limit caps the result count after sorting. Zero means no cap.
	Limit int
}

// Filter returns the records at path matching every supplied predicate,
// sorted descending by score when a score column is present (rows without a
// parseable score sort last) and truncated to Limit. Returned records have
// nil cells rendered as empty strings and, when the date predicate was used,
// Found Date normalized to YYYY-MM-DD. A missing file yields an empty result.
func Filter(path string, opts FilterOptions) ([]*ordereddict.Dict, error) {
	t, err := Load(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []*ordereddict.Dict{}, nil
		}
		return nil, err
	}
	rows, err := matchRows(t, opts)
	if err != nil {
		return nil, err
	}
	if t.HasColumn(ColumnScore) {
		sortByScoreDesc(rows)
	}
	rows = applyLimit(rows, opts.Limit)
	return renderRows(rows, opts.FoundAfterDate != ""), nil
}

// matchRows evaluates the filter predicates against every record of t and
// returns the survivors in load order.
func matchRows(t *Table, opts FilterOptions) ([]*ordereddict.Dict, error) {
	var after time.Time
	if opts.FoundAfterDate != "" {
		var err error
		after, err = dateparse.ParseAny(opts.FoundAfterDate)
		if err != nil {
			return nil, fmt.Errorf("invalid found_after_date %q: %w", opts.FoundAfterDate, err)
		}
	}

	var out []*ordereddict.Dict
	for _, row := range t.Rows {
		if opts.MinScore != nil || opts.MaxScore != nil {
			score, ok := scoreValue(row, ColumnScore)
			if !ok {
				continue
			}
			if opts.MinScore != nil && score < *opts.MinScore {
				continue
			}
			if opts.MaxScore != nil && score > *opts.MaxScore {
				continue
			}
		}
		if len(opts.Locations) > 0 {
			s, ok := cellString(row, ColumnLocation)
			if !ok || !containsAnyFold(s, opts.Locations) {
				continue
			}
		}
		if len(opts.Companies) > 0 {
			s, ok := cellString(row, ColumnCompany)
			if !ok || !containsAnyFold(s, opts.Companies) {
				continue
			}
		}
		if opts.CurrentRoleOnly {
			s, ok := cellString(row, ColumnCurrentRole)
			if !ok || !strings.HasPrefix(s, "YES") {
				continue
			}
		}
		if opts.FoundAfterDate != "" {
			d, ok := dateValue(row, ColumnFoundDate)
			if !ok || !d.After(after) {
				continue
			}
		}
		out = append(out, row)
	}
	return out, nil
}

// sortByScoreDesc orders records descending by coerced score. Records without
// a parseable score compare as not-greater and end up last. The sort is
// stable so equal scores keep their load order.
func sortByScoreDesc(rows []*ordereddict.Dict) {
	slices.SortStableFunc(rows, func(a, b *ordereddict.Dict) int {
		sa, oka := scoreValue(a, ColumnScore)
		sb, okb := scoreValue(b, ColumnScore)
		switch {
		case oka && okb:
			switch {
			case sa > sb:
				return -1
			case sa < sb:
				return 1
			default:
				return 0
			}
		case oka:
			return -1
		case okb:
			return 1
		default:
			return 0
		}
	})
}

// applyLimit truncates rows to the first n when n is positive.
func applyLimit(rows []*ordereddict.Dict, n int) []*ordereddict.Dict {
	if n > 0 && len(rows) > n {
		return rows[:n]
	}
	return rows
}
