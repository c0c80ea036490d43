package sheets

import (
	"fmt"
	"strconv"
)

// Cell provides type-safe access to spreadsheet cell values.
// The Google Sheets API returns [][]interface{}, which we cannot change.
// This type wraps interface{} so the rest of the codebase never handles it.
type Cell struct {
	raw interface{}
}

// NewCell creates a Cell from a raw interface{} value from Google Sheets API
func NewCell(raw interface{}) Cell {
	return Cell{raw: raw}
}

// String returns the cell value as a string
func (c Cell) String() string {
	if c.raw == nil {
		return ""
	}
	if s, ok := c.raw.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", c.raw)
}

// Int returns the cell value as an int
func (c Cell) Int() int {
	if c.raw == nil {
		return 0
	}
	switch v := c.raw.(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return 0
}

// Float64 returns the cell value as a float64
func (c Cell) Float64() float64 {
	if c.raw == nil {
		return 0
	}
	switch v := c.raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return 0
}

// IsEmpty returns true if the cell contains nil or empty string
func (c Cell) IsEmpty() bool {
	return c.raw == nil || c.raw == ""
}

// Raw returns the underlying interface{} value for Google Sheets API calls.
// This should only be used at the API boundary.
func (c Cell) Raw() interface{} {
	return c.raw
}

// Row builds a row of cells from strings. Convenient for callers that only
// deal in text values, such as the CLI.
func Row(values ...string) []Cell {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = NewCell(v)
	}
	return cells
}
