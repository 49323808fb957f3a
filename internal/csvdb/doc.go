// Package csvdb implements the prospect table engine: a small fixed set of
// operations over a flat CSV dataset of prospect profile records.
//
// Every operation loads the entire table from a named file into memory,
// applies one transformation, and either returns rows/aggregates or persists
// the result back to a file. There is no daemon state between calls and no
// index; the backing CSV file is the only durable state. Columns are not
// fixed ahead of time - the table's column set is whatever the file header
// currently contains, discovered at load time.
//
// Records are represented as *ordereddict.Dict so that column order survives
// the round trip through JSON at the transport layer. Cell values are scalars:
// string, int64, float64, or nil for absent/empty cells.
//
// The package exposes pure functions over explicit arguments and takes no
// dependency on logging or configuration; callers own both.
package csvdb
