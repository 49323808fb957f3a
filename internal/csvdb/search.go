package csvdb

import (
	"errors"
	"strings"

	"github.com/Velocidex/ordereddict"
)

// SearchOptions describes how Search matches records.
type SearchOptions struct {
	// Columns lists the columns searched. When empty, DefaultSearchColumns
	// applies. Either way the list is restricted to columns actually present
	// in the table.
	Columns []string
	// CaseSensitive disables the default case-insensitive matching.
	CaseSensitive bool
	// Limit caps the result count after sorting. Zero means no cap.
	Limit int
}

// Search returns the records at path where term occurs as a literal substring
// in any of the searched columns. Cell values are coerced to their string
// form before matching; nil cells never match. Ordering and truncation follow
// Filter: descending by score when a score column is present, then Limit.
// A missing file yields an empty result.
func Search(path, term string, opts SearchOptions) ([]*ordereddict.Dict, error) {
	t, err := Load(path)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return []*ordereddict.Dict{}, nil
		}
		return nil, err
	}

	columns := opts.Columns
	if len(columns) == 0 {
		columns = DefaultSearchColumns
	}
	var present []string
	for _, col := range columns {
		if t.HasColumn(col) {
			present = append(present, col)
		}
	}

	needle := term
	if !opts.CaseSensitive {
		needle = strings.ToLower(needle)
	}

	var out []*ordereddict.Dict
	for _, row := range t.Rows {
		if rowMatches(row, present, needle, opts.CaseSensitive) {
			out = append(out, row)
		}
	}
	if t.HasColumn(ColumnScore) {
		sortByScoreDesc(out)
	}
	out = applyLimit(out, opts.Limit)
	return renderRows(out, false), nil
}

// rowMatches reports whether needle occurs in any of the given columns of the
// record.
func rowMatches(row *ordereddict.Dict, columns []string, needle string, caseSensitive bool) bool {
	for _, col := range columns {
		s, ok := cellString(row, col)
		if !ok {
			continue
		}
		if !caseSensitive {
			s = strings.ToLower(s)
		}
		if strings.Contains(s, needle) {
			return true
		}
	}
	return false
}
