package dataset

import "slices"

// Row is one table row keyed by column name. A cell with no value holds nil.
type Row map[string]any

// Table is an in-memory tabular dataset: columns in a declared order and
// rows keyed by those column names.
type Table struct {
	Columns []string
	Rows    []Row
}

// NewTable creates an empty table with the given column order.
func NewTable(columns ...string) *Table {
	return &Table{Columns: slices.Clone(columns)}
}

// Append adds a row to the table.
func (t *Table) Append(row Row) {
	t.Rows = append(t.Rows, row)
}

// HasColumn reports whether name is a declared column.
func (t *Table) HasColumn(name string) bool {
	return slices.Contains(t.Columns, name)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}
