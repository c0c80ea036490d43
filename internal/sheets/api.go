package sheets

import (
	"context"
)

// ValueInputMode selects how the remote service interprets written cell
// values: literally, or with formula- and locale-aware parsing.
type ValueInputMode string

const (
	// InputRaw stores values exactly as given.
	InputRaw ValueInputMode = "RAW"

	// InputUserEntered parses values the way the Sheets UI would: numbers,
	// dates and formulas are interpreted. This is the default.
	InputUserEntered ValueInputMode = "USER_ENTERED"
)

// WriteSummary is the remote service's description of a successful write.
type WriteSummary struct {
	UpdatedRange   string
	UpdatedRows    int64
	UpdatedColumns int64
	UpdatedCells   int64
}

// ValuesAPI defines the remote spreadsheet value operations the client
// depends on. This separates infrastructure concerns from the facade logic.
//
// Note on interface{} usage:
// The Google Sheets API (google.golang.org/api/sheets/v4) uses [][]interface{}
// for cell values. This is outside our control and required for API
// compatibility. Use the Cell type wrapper everywhere above this boundary.
type ValuesAPI interface {
	// GetValues reads the cell values of a range.
	// Returns [][]interface{} as required by Google Sheets API.
	GetValues(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error)

	// UpdateValues overwrites a range with the given rows and returns the
	// service's write summary.
	UpdateValues(ctx context.Context, spreadsheetID, range_ string, mode ValueInputMode, values [][]interface{}) (*WriteSummary, error)
}
