package csvdb

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/Velocidex/ordereddict"
)

// Table is an in-memory snapshot of one CSV dataset: the ordered column list
// from the header row plus one record per data row. A Table exists only for
// the duration of a single operation; the file is the durable form.
type Table struct {
	Columns []string
	Rows    []*ordereddict.Dict
}

// Len returns the number of records.
func (t *Table) Len() int {
	return len(t.Rows)
}

// HasColumn reports whether the table's column set contains name.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// Load reads the entire file into a Table. A missing file returns ErrNotFound;
// a file that cannot be interpreted as CSV returns a ParseError. Empty cells
// load as nil.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer func() {
		_ = f.Close()
	}()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: path, Err: errors.New("empty file: no header row")}
		}
		return nil, &ParseError{Path: path, Err: err}
	}

	t := &Table{Columns: header}
	for {
		cells, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &ParseError{Path: path, Err: err}
		}
		row := ordereddict.NewDict()
		for i, col := range header {
			if cells[i] == "" {
				row.Set(col, nil)
				continue
			}
			row.Set(col, cells[i])
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// Write persists the table to path, overwriting any existing file. The write
// goes to a temporary file in the same directory followed by a rename so a
// crash mid-write cannot leave a truncated dataset behind.
func (t *Table) Write(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write(t.Columns); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write header: %w", err)
	}
	cells := make([]string, len(t.Columns))
	for _, row := range t.Rows {
		for i, col := range t.Columns {
			v, _ := row.Get(col)
			cells[i] = valueString(v)
		}
		if err := w.Write(cells); err != nil {
			_ = tmp.Close()
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to flush %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Reindex projects every record onto the given column order and makes it the
// table's column set. Columns present in records but not listed are dropped;
// listed columns missing from a record become nil.
func (t *Table) Reindex(columns []string) {
	for i, row := range t.Rows {
		t.Rows[i] = projectRow(row, columns)
	}
	t.Columns = slices.Clone(columns)
}
