package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/seanpden/googleWrapper/internal/sheets"
)

// WriteCSV serializes a table to CSV. Jagged rows are padded with empty
// fields to the table's column count so every record has the same width.
func WriteCSV(w io.Writer, table *sheets.Table) error {
	writer := csv.NewWriter(w)
	width := table.ColumnCount()

	for i := 0; i < table.RowCount(); i++ {
		record := make([]string, width)
		for j := 0; j < width; j++ {
			record[j] = table.Cell(i, j).String()
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV record %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV output: %w", err)
	}

	return nil
}

// SnapshotFile writes the table as CSV to path, overwriting any previous
// snapshot.
func SnapshotFile(path string, table *sheets.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot file %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteCSV(f, table); err != nil {
		return err
	}

	log.Info().
		Str("path", path).
		Int("rows", table.RowCount()).
		Int("columns", table.ColumnCount()).
		Msg("Wrote sheet snapshot")

	return nil
}
