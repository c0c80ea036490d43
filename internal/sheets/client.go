package sheets

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/seanpden/googleWrapper/internal/googleauth"
)

// DefaultReadRange is the range read when a caller supplies none: the full
// first sheet, columns a through z.
const DefaultReadRange = "Sheet1!a:z"

// Client is a CRUD facade over a single spreadsheet. It holds the
// spreadsheet ID for its lifetime and tracks the sheet's dimensions as of
// the most recent successful read; every mutating operation re-reads the
// sheet before returning, so the cached dimensions are never stale across
// calls.
//
// Client is not safe for concurrent use: the write-then-refresh sequence of
// a mutation is not atomic with respect to other callers.
type Client struct {
	spreadsheetID string
	api           ValuesAPI

	// Dimensions observed by the last successful read. Zero and unknown are
	// distinct states: dimsKnown reports whether any read has happened.
	rowCount    int
	columnCount int
	dimsKnown   bool
}

// NewClient creates a client for the given spreadsheet backed by the given
// values API. Dimensions are unknown until the first read.
func NewClient(spreadsheetID string, api ValuesAPI) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}

	return &Client{
		spreadsheetID: spreadsheetID,
		api:           api,
	}, nil
}

// Open authenticates with the credential files and returns a client bound
// to the given spreadsheet. Construction either yields a client holding a
// valid credential or fails with *googleauth.AuthError before any
// spreadsheet call is made.
func Open(ctx context.Context, spreadsheetID, credentialsFile, tokenFile string) (*Client, error) {
	provider, err := googleauth.NewFileProvider(credentialsFile, tokenFile)
	if err != nil {
		return nil, err
	}

	tok, err := googleauth.Credentials(ctx, provider)
	if err != nil {
		return nil, err
	}

	service, err := NewService(ctx, provider.Client(ctx, tok))
	if err != nil {
		return nil, err
	}

	return NewClient(spreadsheetID, service)
}

// SpreadsheetID returns the identifier of the wrapped spreadsheet.
func (c *Client) SpreadsheetID() string {
	return c.spreadsheetID
}

// Dimensions returns the row and column counts observed by the most recent
// successful read. known is false until the first read has happened.
func (c *Client) Dimensions() (rows, cols int, known bool) {
	return c.rowCount, c.columnCount, c.dimsKnown
}

// Read fetches the cell values of range_, defaulting to DefaultReadRange
// when range_ is empty, and updates the cached dimensions from the result's
// shape. It always reflects the remote state at the moment of the call.
func (c *Client) Read(ctx context.Context, range_ string) (*Table, error) {
	if range_ == "" {
		range_ = DefaultReadRange
	}

	values, err := c.api.GetValues(ctx, c.spreadsheetID, range_)
	if err != nil {
		return nil, err
	}

	table := NewTable(values)
	c.rowCount = table.RowCount()
	c.columnCount = table.ColumnCount()
	c.dimsKnown = true

	log.Debug().
		Str("range", range_).
		Int("row_count", c.rowCount).
		Int("column_count", c.columnCount).
		Msg("Refreshed sheet dimensions")

	return table, nil
}

// Append writes values as one new row starting at column A of row
// rowCount+1. Before any read rowCount is zero, so the row lands at a1.
// After the write the dimensions are refreshed by a fresh read.
func (c *Client) Append(ctx context.Context, values []Cell, mode ValueInputMode) (*WriteSummary, error) {
	target := fmt.Sprintf("a%d", c.rowCount+1)

	log.Debug().
		Str("target", target).
		Int("values", len(values)).
		Msg("Appending row")

	return c.writeRow(ctx, target, rawRow(values), mode)
}

// Update writes values as one row into the explicit range_, then refreshes
// the dimensions by a fresh read.
func (c *Client) Update(ctx context.Context, range_ string, values []Cell, mode ValueInputMode) (*WriteSummary, error) {
	return c.writeRow(ctx, range_, rawRow(values), mode)
}

// Delete blanks out range_ by writing one row of empty strings sized to the
// sheet's column count. This is a logical blank-out, not a structural
// delete: no row shift occurs. The column count must be known from a prior
// read; otherwise Delete fails with *PreconditionError rather than writing
// a blank fill of undefined width.
func (c *Client) Delete(ctx context.Context, range_ string) (*WriteSummary, error) {
	if !c.dimsKnown {
		return nil, &PreconditionError{
			Op:     "delete",
			Reason: "column count unknown; read the sheet first",
		}
	}

	blanks := make([]interface{}, c.columnCount)
	for i := range blanks {
		blanks[i] = ""
	}

	log.Debug().
		Str("range", range_).
		Int("width", c.columnCount).
		Msg("Blanking out row")

	return c.writeRow(ctx, range_, blanks, InputUserEntered)
}

// writeRow wraps one row into the API's batch shape, issues the update and
// refreshes the cached dimensions before returning. The trailing refresh is
// the post-condition of every mutation; if it fails, the operation returns
// the error even though the write itself was already applied.
func (c *Client) writeRow(ctx context.Context, range_ string, row []interface{}, mode ValueInputMode) (*WriteSummary, error) {
	if mode == "" {
		mode = InputUserEntered
	}

	summary, err := c.api.UpdateValues(ctx, c.spreadsheetID, range_, mode, [][]interface{}{row})
	if err != nil {
		return nil, err
	}

	if _, err := c.Read(ctx, ""); err != nil {
		return nil, fmt.Errorf("write applied but dimension refresh failed: %w", err)
	}

	return summary, nil
}

// rawRow unwraps cells for the API boundary.
func rawRow(values []Cell) []interface{} {
	row := make([]interface{}, len(values))
	for i, cell := range values {
		row[i] = cell.Raw()
	}
	return row
}
