package sheets

import "testing"

func TestTableShape(t *testing.T) {
	t.Run("RectangularTable", func(t *testing.T) {
		table := NewTable([][]interface{}{
			{"a", "b", "c"},
			{"d", "e", "f"},
		})

		if table.RowCount() != 2 {
			t.Errorf("Expected 2 rows, got %d", table.RowCount())
		}
		if table.ColumnCount() != 3 {
			t.Errorf("Expected 3 columns, got %d", table.ColumnCount())
		}
	})

	t.Run("JaggedRowsYieldWidestWidth", func(t *testing.T) {
		table := NewTable([][]interface{}{
			{"a"},
			{"b", "c", "d", "e"},
			{"f", "g"},
		})

		if table.ColumnCount() != 4 {
			t.Errorf("Expected column count 4 (widest row), got %d", table.ColumnCount())
		}
	})

	t.Run("EmptyTable", func(t *testing.T) {
		table := NewTable(nil)

		if table.RowCount() != 0 {
			t.Errorf("Expected 0 rows, got %d", table.RowCount())
		}
		if table.ColumnCount() != 0 {
			t.Errorf("Expected 0 columns, got %d", table.ColumnCount())
		}
	})
}

func TestTableAccess(t *testing.T) {
	table := NewTable([][]interface{}{
		{"a1", "b1"},
		{"a2"},
	})

	t.Run("CellInRange", func(t *testing.T) {
		if got := table.Cell(0, 1).String(); got != "b1" {
			t.Errorf("Expected 'b1', got %q", got)
		}
	})

	t.Run("CellBeyondJaggedRowIsEmpty", func(t *testing.T) {
		if !table.Cell(1, 1).IsEmpty() {
			t.Error("Expected cell beyond jagged row width to be empty")
		}
	})

	t.Run("CellOutsideTableIsEmpty", func(t *testing.T) {
		if !table.Cell(5, 0).IsEmpty() {
			t.Error("Expected cell outside the table to be empty")
		}
		if !table.Cell(0, -1).IsEmpty() {
			t.Error("Expected negative column to yield empty cell")
		}
	})

	t.Run("RowOutOfRangeIsNil", func(t *testing.T) {
		if table.Row(2) != nil {
			t.Error("Expected nil for out-of-range row")
		}
	})
}
