package csvdb

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ExportOptions describes an export segment. The filter surface is
// deliberately narrower than FilterOptions: only the score floor, location
// and company substring predicates are exposed.
type ExportOptions struct {
	MinScore  *float64
	Locations []string
	Companies []string
	// Columns projects the exported rows onto the listed columns, in that
	// order; requested columns not present in the source are silently
	// dropped. Empty keeps every source column.
	Columns []string
}

// ExportResult reports the outcome of an export.
type ExportResult struct {
	ProfilesExported int      `json:"profiles_exported"`
	OutputPath       string   `json:"output_path"`
	ColumnsIncluded  []string `json:"columns_included"`
}

// Export writes the records of sourcePath matching the filter criteria to a
// new CSV file at outputPath, overwriting any existing file there. When
// nothing matches, no file is written but the result is still reported with
// an empty column list.
func Export(sourcePath, outputPath string, opts ExportOptions) (*ExportResult, error) {
	absOut, err := filepath.Abs(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve output path %s: %w", outputPath, err)
	}

	t, err := Load(sourcePath)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			t = &Table{}
		} else {
			return nil, err
		}
	}

	rows, err := matchRows(t, FilterOptions{
		MinScore:  opts.MinScore,
		Locations: opts.Locations,
		Companies: opts.Companies,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &ExportResult{OutputPath: absOut, ColumnsIncluded: []string{}}, nil
	}
	if t.HasColumn(ColumnScore) {
		sortByScoreDesc(rows)
	}

	columns := t.Columns
	if len(opts.Columns) > 0 {
		columns = make([]string, 0, len(opts.Columns))
		for _, col := range opts.Columns {
			if t.HasColumn(col) {
				columns = append(columns, col)
			}
		}
	}

	segment := &Table{Columns: t.Columns, Rows: renderRows(rows, false)}
	segment.Reindex(columns)
	if err := segment.Write(outputPath); err != nil {
		return nil, err
	}
	return &ExportResult{
		ProfilesExported: segment.Len(),
		OutputPath:       absOut,
		ColumnsIncluded:  columns,
	}, nil
}
