package sheets

// Table is the tabular result of a read: an ordered sequence of rows of
// cells, row-major. Rows can be jagged because the remote service omits
// trailing empty cells from each row.
//
// A Table reflects the remote state at the moment of the read that produced
// it; it is never cached across calls.
type Table struct {
	rows [][]Cell
}

// NewTable wraps the raw row data returned by the values API.
func NewTable(values [][]interface{}) *Table {
	rows := make([][]Cell, len(values))
	for i, rawRow := range values {
		row := make([]Cell, len(rawRow))
		for j, raw := range rawRow {
			row[j] = NewCell(raw)
		}
		rows[i] = row
	}
	return &Table{rows: rows}
}

// RowCount returns the number of rows in the table.
func (t *Table) RowCount() int {
	return len(t.rows)
}

// ColumnCount returns the width of the widest row. Rows can be jagged, so
// the table's column count is defined as the maximum width across all rows.
func (t *Table) ColumnCount() int {
	width := 0
	for _, row := range t.rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Rows returns the underlying rows. The slice is shared, not copied.
func (t *Table) Rows() [][]Cell {
	return t.rows
}

// Row returns the cells of row i, or nil if i is out of range.
func (t *Table) Row(i int) []Cell {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return t.rows[i]
}

// Cell returns the cell at row i, column j. Positions beyond a jagged row's
// width or outside the table yield an empty cell.
func (t *Table) Cell(i, j int) Cell {
	row := t.Row(i)
	if j < 0 || j >= len(row) {
		return Cell{}
	}
	return row[j]
}
