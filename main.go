package main

import (
	"context"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/seanpden/googleWrapper/internal/app"
	"github.com/seanpden/googleWrapper/internal/deployment"
	"github.com/seanpden/googleWrapper/internal/export"
	"github.com/seanpden/googleWrapper/internal/sheets"
)

func main() {
	app.SetupEnvironment()

	// Parse command line flags
	op := flag.String("op", "read", "Operation to run: read, append, update or delete")
	rangeFlag := flag.String("range", "", "Range descriptor, e.g. 'Sheet1!a2:d2' (read defaults to the full first sheet)")
	values := flag.String("values", "", "Comma-separated cell values for append/update")
	input := flag.String("input", "user-entered", "Value input mode: raw or user-entered")
	snapshot := flag.String("snapshot", "", "Write the read result to this CSV file")
	publish := flag.String("publish", "", "Publish the snapshot to user@host:path via SCP (overrides PUBLISH_URL)")
	flag.Parse()

	// Load configuration
	config, err := app.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	mode, err := parseInputMode(*input)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid value input mode")
	}

	ctx := context.Background()

	client, err := sheets.Open(ctx, config.SpreadsheetID, config.CredentialsFile, config.TokenFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create spreadsheet client")
	}

	log.Info().
		Str("op", *op).
		Str("spreadsheet_id", config.SpreadsheetID).
		Msg("Starting spreadsheet operation")

	switch *op {
	case "read":
		runRead(ctx, client, config, *rangeFlag, *snapshot, *publish)
	case "append":
		runAppend(ctx, client, parseValues(*values), mode)
	case "update":
		runUpdate(ctx, client, *rangeFlag, parseValues(*values), mode)
	case "delete":
		runDelete(ctx, client, *rangeFlag)
	default:
		log.Fatal().Str("op", *op).Msg("Unknown operation; expected read, append, update or delete")
	}
}

func runRead(ctx context.Context, client *sheets.Client, config *app.Config, range_, snapshot, publish string) {
	table, err := client.Read(ctx, range_)
	if err != nil {
		log.Fatal().Err(err).Msg("Read failed")
	}

	rows, cols, _ := client.Dimensions()
	log.Info().
		Int("rows", rows).
		Int("columns", cols).
		Msg("Read completed")

	if snapshot == "" {
		return
	}

	if err := export.SnapshotFile(snapshot, table); err != nil {
		log.Fatal().Err(err).Msg("Snapshot failed")
	}

	publishURL := publish
	if publishURL == "" {
		publishURL = config.PublishURL
	}
	if publishURL == "" {
		return
	}

	publisher := deployment.NewSSHPublisher(publishURL)
	defer publisher.Disconnect()

	if err := publisher.PublishFile(snapshot, filepath.Base(snapshot)); err != nil {
		log.Fatal().Err(err).Msg("Snapshot publish failed")
	}
}

func runAppend(ctx context.Context, client *sheets.Client, values []sheets.Cell, mode sheets.ValueInputMode) {
	if len(values) == 0 {
		log.Fatal().Msg("append requires -values")
	}

	// Read first so the append target reflects the sheet's current height.
	if _, err := client.Read(ctx, ""); err != nil {
		log.Fatal().Err(err).Msg("Pre-append read failed")
	}

	summary, err := client.Append(ctx, values, mode)
	if err != nil {
		log.Fatal().Err(err).Msg("Append failed")
	}

	logWrite("Append", summary, client)
}

func runUpdate(ctx context.Context, client *sheets.Client, range_ string, values []sheets.Cell, mode sheets.ValueInputMode) {
	if range_ == "" {
		log.Fatal().Msg("update requires -range")
	}
	if len(values) == 0 {
		log.Fatal().Msg("update requires -values")
	}

	summary, err := client.Update(ctx, range_, values, mode)
	if err != nil {
		log.Fatal().Err(err).Msg("Update failed")
	}

	logWrite("Update", summary, client)
}

func runDelete(ctx context.Context, client *sheets.Client, range_ string) {
	if range_ == "" {
		log.Fatal().Msg("delete requires -range")
	}

	// Read first so the blank fill is sized to the sheet's current width.
	if _, err := client.Read(ctx, ""); err != nil {
		log.Fatal().Err(err).Msg("Pre-delete read failed")
	}

	summary, err := client.Delete(ctx, range_)
	if err != nil {
		log.Fatal().Err(err).Msg("Delete failed")
	}

	logWrite("Delete", summary, client)
}

func logWrite(op string, summary *sheets.WriteSummary, client *sheets.Client) {
	rows, cols, _ := client.Dimensions()
	log.Info().
		Str("updated_range", summary.UpdatedRange).
		Int64("updated_cells", summary.UpdatedCells).
		Int("rows", rows).
		Int("columns", cols).
		Msgf("%s completed", op)
}

func parseInputMode(input string) (sheets.ValueInputMode, error) {
	switch strings.ToLower(input) {
	case "raw":
		return sheets.InputRaw, nil
	case "user-entered", "":
		return sheets.InputUserEntered, nil
	}
	return "", fmt.Errorf("unknown value input mode '%s', expected raw or user-entered", input)
}

func parseValues(values string) []sheets.Cell {
	if values == "" {
		return nil
	}
	return sheets.Row(strings.Split(values, ",")...)
}
