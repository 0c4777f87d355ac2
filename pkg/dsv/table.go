package dsv

import (
	"fmt"
	"iter"
)

// Row is an ordered sequence of values; index = column. Rows of one table may
// have different lengths.
type Row []Value

// NewRow builds a row from Go primitives using ValueOf.
//
// Example:
//
//	row, err := dsv.NewRow("foo", true, 1.0)
//	// row renders as: foo,true,1
func NewRow(values ...interface{}) (Row, error) {
	row := make(Row, len(values))
	for i, v := range values {
		val, err := ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i, err)
		}
		row[i] = val
	}
	return row, nil
}

// StringRow builds a row from strings.
func StringRow(fields ...string) Row {
	row := make(Row, len(fields))
	for i, f := range fields {
		row[i] = FromString(f)
	}
	return row
}

// Get returns the value at index.
// Returns (Value{}, false) if the index is out of bounds.
func (r Row) Get(index int) (Value, bool) {
	if index < 0 || index >= len(r) {
		return Value{}, false
	}
	return r[index], true
}

// Strings returns the text of every value in the row.
func (r Row) Strings() []string {
	out := make([]string, len(r))
	for i, v := range r {
		out[i] = v.text
	}
	return out
}

// Table is an ordered sequence of rows sharing one configuration.
//
// A Table is not safe for concurrent use; callers that share one must
// serialize access to it.
type Table struct {
	cfg  Config
	rows []Row
}

// NewTable creates an empty table that decodes and encodes with cfg.
// Zero fields of cfg take their defaults.
func NewTable(cfg Config) *Table {
	return &Table{cfg: cfg.withDefaults()}
}

// Config returns the table's configuration with defaults applied.
func (t *Table) Config() Config {
	return t.cfg
}

// SetConfig replaces the configuration used by later Decode and Encode calls.
// Rows already in the table are unaffected.
func (t *Table) SetConfig(cfg Config) {
	t.cfg = cfg.withDefaults()
}

// Append adds rows to the end of the table.
func (t *Table) Append(rows ...Row) {
	t.rows = append(t.rows, rows...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Row returns the row at index.
// Returns (nil, false) if the index is out of bounds.
func (t *Table) Row(index int) (Row, bool) {
	if index < 0 || index >= len(t.rows) {
		return nil, false
	}
	return t.rows[index], true
}

// Rows returns a copy of the table's row list. The rows themselves are shared.
func (t *Table) Rows() []Row {
	out := make([]Row, len(t.rows))
	copy(out, t.rows)
	return out
}

// All iterates over the rows in order.
func (t *Table) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, row := range t.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}

// Reset removes all rows, keeping the configuration.
func (t *Table) Reset() {
	t.rows = nil
}

// Records returns the text of every field, row by row.
func (t *Table) Records() [][]string {
	out := make([][]string, len(t.rows))
	for i, row := range t.rows {
		out[i] = row.Strings()
	}
	return out
}
