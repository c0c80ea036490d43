package sheets

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Service implements ValuesAPI over the Google Sheets v4 API.
//
// Each call is a single synchronous request: no retries, no client-side
// timeout beyond the transport's own, no batching.
type Service struct {
	api *sheets.Service
}

// NewService creates a Sheets values service using the provided authorized
// HTTP client.
func NewService(ctx context.Context, client *http.Client) (*Service, error) {
	api, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}

	return &Service{api: api}, nil
}

// GetValues reads the cell values of a range.
// Returns [][]interface{} as mandated by Google Sheets API; wrap with
// NewTable or NewCell above this boundary.
func (s *Service) GetValues(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	resp, err := s.api.Spreadsheets.Values.Get(spreadsheetID, range_).Context(ctx).Do()
	if err != nil {
		return nil, remoteError("get", range_, err)
	}

	log.Debug().
		Str("range", range_).
		Int("rows", len(resp.Values)).
		Msg("Read sheet values")

	return resp.Values, nil
}

// UpdateValues overwrites a range with the given rows and returns the
// service's write summary.
func (s *Service) UpdateValues(ctx context.Context, spreadsheetID, range_ string, mode ValueInputMode, values [][]interface{}) (*WriteSummary, error) {
	valueRange := &sheets.ValueRange{
		Values: values,
	}

	resp, err := s.api.Spreadsheets.Values.Update(spreadsheetID, range_, valueRange).
		ValueInputOption(string(mode)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, remoteError("update", range_, err)
	}

	log.Debug().
		Str("range", resp.UpdatedRange).
		Int64("cells", resp.UpdatedCells).
		Msg("Updated sheet values")

	return &WriteSummary{
		UpdatedRange:   resp.UpdatedRange,
		UpdatedRows:    resp.UpdatedRows,
		UpdatedColumns: resp.UpdatedColumns,
		UpdatedCells:   resp.UpdatedCells,
	}, nil
}
