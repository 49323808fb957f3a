package csvdb

import (
	"strconv"
	"strings"
	"time"

	"github.com/Velocidex/ordereddict"
	"github.com/araddon/dateparse"
)

// Well-known column names. None of these are structurally required; each
// operation checks for presence before acting on them.
const (
	ColumnLinkedInURL = "LinkedIn URL"
	ColumnScore       = "v2 Score"
	ColumnLocation    = "Location"
	ColumnCompany     = "Company"
	ColumnCompanySize = "Company Size"
	ColumnCurrentRole = "CURRENT Role Mention"
	ColumnFoundDate   = "Found Date"
	ColumnHeadline    = "Headline"
	ColumnMatchReason = "Match Reason"
)

// DefaultDedupeColumn is the column whose normalized value determines row
// uniqueness during append and deduplication unless overridden.
const DefaultDedupeColumn = ColumnLinkedInURL

// DefaultSearchColumns are the columns searched when the caller does not name
// any. Columns absent from the table are skipped.
var DefaultSearchColumns = []string{
	ColumnHeadline,
	ColumnCompany,
	ColumnMatchReason,
	ColumnCurrentRole,
}

// dateFormat is the canonical rendering of date cells.
const dateFormat = "2006-01-02"

// cellString returns the string form of a cell value. Nil cells and empty
// strings report ok=false; numeric cells are formatted.
func cellString(row *ordereddict.Dict, column string) (string, bool) {
	v, ok := row.Get(column)
	if !ok || v == nil {
		return "", false
	}
	s := valueString(v)
	if s == "" {
		return "", false
	}
	return s, true
}

// valueString converts a scalar cell value to its string form.
func valueString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case time.Time:
		return t.Format(dateFormat)
	default:
		return ""
	}
}

// scoreValue coerces a cell to a numeric score. Unparseable or missing values
// report ok=false, the equivalent of a null score.
func scoreValue(row *ordereddict.Dict, column string) (float64, bool) {
	v, ok := row.Get(column)
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int64:
		return float64(t), true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// dateValue coerces a cell to a date. Unparseable or missing values report
// ok=false; such rows compare as neither before nor after any threshold.
func dateValue(row *ordereddict.Dict, column string) (time.Time, bool) {
	s, ok := cellString(row, column)
	if !ok {
		return time.Time{}, false
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dedupeKey normalizes a cell for duplicate detection: the trimmed string
// form of the value, with nil normalizing to the empty string.
func dedupeKey(row *ordereddict.Dict, column string) string {
	v, _ := row.Get(column)
	return strings.TrimSpace(valueString(v))
}

// projectRow reindexes a record onto the given column order. Columns missing
// from the record become nil; columns not listed are dropped.
func projectRow(row *ordereddict.Dict, columns []string) *ordereddict.Dict {
	out := ordereddict.NewDict()
	for _, col := range columns {
		v, ok := row.Get(col)
		if !ok {
			out.Set(col, nil)
			continue
		}
		out.Set(col, v)
	}
	return out
}

// renderRow prepares a record for the caller: nil cells become empty strings,
// score cells are replaced with their coerced numeric value, and date cells
// are normalized to YYYY-MM-DD when requested.
func renderRow(row *ordereddict.Dict, normalizeDate bool) *ordereddict.Dict {
	out := ordereddict.NewDict()
	for _, col := range row.Keys() {
		v, _ := row.Get(col)
		switch {
		case col == ColumnScore:
			if f, ok := scoreValue(row, col); ok {
				out.Set(col, f)
			} else {
				out.Set(col, "")
			}
		case col == ColumnFoundDate && normalizeDate:
			if d, ok := dateValue(row, col); ok {
				out.Set(col, d.Format(dateFormat))
			} else {
				out.Set(col, "")
			}
		case v == nil:
			out.Set(col, "")
		default:
			out.Set(col, v)
		}
	}
	return out
}

// renderRows applies renderRow to every record.
func renderRows(rows []*ordereddict.Dict, normalizeDate bool) []*ordereddict.Dict {
	out := make([]*ordereddict.Dict, 0, len(rows))
	for _, row := range rows {
		out = append(out, renderRow(row, normalizeDate))
	}
	return out
}

// containsAnyFold reports whether s contains any of the needles,
// case-insensitively.
func containsAnyFold(s string, needles []string) bool {
	ls := strings.ToLower(s)
	for _, n := range needles {
		if strings.Contains(ls, strings.ToLower(n)) {
			return true
		}
	}
	return false
}
