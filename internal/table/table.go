// Package table loads the raw swept-response table consumed by the RCS engine.
//
// The on-disk format is a small binary columnar table:
//
//	magic   "RCST" (4 bytes)
//	version uint16 (currently 1)
//	ncols   uint16, followed by ncols length-prefixed column names
//	nrows   uint32, followed by nrows records of:
//	        freq label, level label (length-prefixed strings),
//	        ncols complex values (two float64, little endian)
//
// Rows are keyed by the composite (frequency label, level label) pair, which
// must be unique. The first declared column names the dataset: the format
// designates it as the canonical display name.
package table

import (
	"fmt"
	"os"
)

// Key is the composite row key.
type Key struct {
	Freq  string
	Level string
}

// Row is a single swept-response sample across all columns.
type Row struct {
	Key    Key
	Values []complex128
}

// Table is an immutable, ordered table of swept-response rows.
type Table struct {
	columns []string
	rows    []Row
	index   map[Key]int

	frequencies []string
	levels      []string
	thetas      []string
	phis        []string
}

// New builds a Table from declared columns and ordered rows.
func New(columns []string, rows []Row) (*Table, error) {
	if len(columns) == 0 {
		return nil, fmt.Errorf("table declares no columns")
	}

	t := &Table{
		columns: append([]string(nil), columns...),
		rows:    make([]Row, 0, len(rows)),
		index:   make(map[Key]int, len(rows)),
	}

	for _, row := range rows {
		if len(row.Values) != len(columns) {
			return nil, fmt.Errorf("row %q/%q has %d values, table declares %d columns",
				row.Key.Freq, row.Key.Level, len(row.Values), len(columns))
		}
		if _, dup := t.index[row.Key]; dup {
			return nil, fmt.Errorf("duplicate row key %q/%q", row.Key.Freq, row.Key.Level)
		}
		t.index[row.Key] = len(t.rows)
		t.rows = append(t.rows, Row{
			Key:    row.Key,
			Values: append([]complex128(nil), row.Values...),
		})
	}

	t.buildAxes()
	return t, nil
}

// Load reads a table from path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("load raw table %s: %w", path, err)
	}
	return t, nil
}

func (t *Table) buildAxes() {
	seenFreq := make(map[string]bool)
	seenLevel := make(map[string]bool)
	seenTheta := make(map[string]bool)
	seenPhi := make(map[string]bool)

	for _, row := range t.rows {
		if !seenFreq[row.Key.Freq] {
			seenFreq[row.Key.Freq] = true
			t.frequencies = append(t.frequencies, row.Key.Freq)
		}
		if !seenLevel[row.Key.Level] {
			seenLevel[row.Key.Level] = true
			t.levels = append(t.levels, row.Key.Level)
		}
		if theta, phi, ok := ParseAngles(row.Key.Level); ok {
			if !seenTheta[theta] {
				seenTheta[theta] = true
				t.thetas = append(t.thetas, theta)
			}
			if !seenPhi[phi] {
				seenPhi[phi] = true
				t.phis = append(t.phis, phi)
			}
		}
	}
}

// Name returns the dataset display name, the first declared column.
func (t *Table) Name() string {
	return t.columns[0]
}

// Columns returns the declared column names in order.
func (t *Table) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows returns the ordered rows. The slice and row values are shared and
// must be treated as read-only.
func (t *Table) Rows() []Row {
	return t.rows
}

// Frequencies returns the distinct frequency labels in first-seen order.
func (t *Table) Frequencies() []string {
	return append([]string(nil), t.frequencies...)
}

// Levels returns the distinct level labels in first-seen order.
func (t *Table) Levels() []string {
	return append([]string(nil), t.levels...)
}

// ThetaValues returns the distinct incident-wave theta values in first-seen
// order, or nil when the dataset carries no angle metadata.
func (t *Table) ThetaValues() []string {
	if len(t.thetas) == 0 {
		return nil
	}
	return append([]string(nil), t.thetas...)
}

// PhiValues returns the distinct incident-wave phi values in first-seen
// order, or nil when the dataset carries no angle metadata.
func (t *Table) PhiValues() []string {
	if len(t.phis) == 0 {
		return nil
	}
	return append([]string(nil), t.phis...)
}

// Value returns the named column value for a row key.
func (t *Table) Value(key Key, column string) (complex128, bool) {
	idx, ok := t.index[key]
	if !ok {
		return 0, false
	}
	for i, name := range t.columns {
		if name == column {
			return t.rows[idx].Values[i], true
		}
	}
	return 0, false
}
