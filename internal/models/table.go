package models

import (
	"iter"
	"strings"

	messages "github.com/cucumber/messages/go/v21"
)

// Row is a data row of a declared Table.
type Row struct {
	cells   []string
	columns []string
}

// Get returns the cell of the named column (case-insensitive), or "".
func (r Row) Get(column string) string {
	for i, c := range r.columns {
		if strings.EqualFold(c, column) {
			return r.Cell(i)
		}
	}
	return ""
}

// Cell returns the cell at the 0-based index, or "" when out of range.
func (r Row) Cell(index int) string {
	if index < 0 || index >= len(r.cells) {
		return ""
	}
	return r.cells[index]
}

// Values returns a copy of the cells.
func (r Row) Values() []string {
	cp := make([]string, len(r.cells))
	copy(cp, r.cells)
	return cp
}

// Len returns the number of cells.
func (r Row) Len() int {
	return len(r.cells)
}

// Table is an in-memory table declared in a specification. Its first row
// names the columns; queries run against the remaining rows.
type Table struct {
	Name     string
	Location Location
	columns  []string
	rows     []Row
}

// NewTable creates a table from raw rows, the first one being the header.
func NewTable(name string, data [][]string) *Table {
	t := &Table{Name: name}
	if len(data) == 0 {
		return t
	}

	t.columns = make([]string, len(data[0]))
	copy(t.columns, data[0])

	t.rows = make([]Row, 0, len(data)-1)
	for _, cells := range data[1:] {
		cp := make([]string, len(cells))
		copy(cp, cells)
		t.rows = append(t.rows, Row{cells: cp, columns: t.columns})
	}
	return t
}

// NewTableFromDataTable creates a table from a Gherkin DataTable.
func NewTableFromDataTable(name string, dt *messages.DataTable) *Table {
	if dt == nil {
		return NewTable(name, nil)
	}
	data := make([][]string, len(dt.Rows))
	for i, row := range dt.Rows {
		cells := make([]string, len(row.Cells))
		for j, cell := range row.Cells {
			cells[j] = cell.Value
		}
		data[i] = cells
	}
	return NewTable(name, data)
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	cp := make([]string, len(t.columns))
	copy(cp, t.columns)
	return cp
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Rows iterates over the data rows with a 0-based index.
func (t *Table) Rows() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for i, row := range t.rows {
			if !yield(i, row) {
				return
			}
		}
	}
}
