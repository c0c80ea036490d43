package mocks

import (
	"context"

	"github.com/seanpden/googleWrapper/internal/sheets"
)

// MockValuesAPI is a test double for the sheets values API
type MockValuesAPI struct {
	// Responses to return
	GetValuesResponse    [][]interface{}
	UpdateValuesResponse *sheets.WriteSummary

	// Errors to return
	GetValuesError    error
	UpdateValuesError error

	// Call tracking
	GetValuesCalls    int
	UpdateValuesCalls int

	// Call parameters tracking
	GetValuesCalledWith struct {
		SpreadsheetID string
		Range         string
	}
	UpdateValuesCalledWith struct {
		SpreadsheetID string
		Range         string
		Mode          sheets.ValueInputMode
		Values        [][]interface{}
	}
}

// NewMockValuesAPI creates a new mock values API
func NewMockValuesAPI() *MockValuesAPI {
	return &MockValuesAPI{}
}

func (m *MockValuesAPI) GetValues(ctx context.Context, spreadsheetID, range_ string) ([][]interface{}, error) {
	m.GetValuesCalls++
	m.GetValuesCalledWith.SpreadsheetID = spreadsheetID
	m.GetValuesCalledWith.Range = range_
	return m.GetValuesResponse, m.GetValuesError
}

func (m *MockValuesAPI) UpdateValues(ctx context.Context, spreadsheetID, range_ string, mode sheets.ValueInputMode, values [][]interface{}) (*sheets.WriteSummary, error) {
	m.UpdateValuesCalls++
	m.UpdateValuesCalledWith.SpreadsheetID = spreadsheetID
	m.UpdateValuesCalledWith.Range = range_
	m.UpdateValuesCalledWith.Mode = mode
	m.UpdateValuesCalledWith.Values = values
	return m.UpdateValuesResponse, m.UpdateValuesError
}

// Reset clears all call tracking, responses and errors
func (m *MockValuesAPI) Reset() {
	*m = MockValuesAPI{}
}
