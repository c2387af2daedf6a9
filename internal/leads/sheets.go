package leads

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsSink appends lead rows to a Google Sheets spreadsheet.
type SheetsSink struct {
	svc           *sheets.Service
	spreadsheetID string
	appendRange   string
}

// NewSheetsSink builds a sheets-backed sink using service-account credentials.
// A construction error means the store is unavailable for this process; the
// caller substitutes NopSink.
func NewSheetsSink(ctx context.Context, credentialsFile, spreadsheetID, appendRange string) (*SheetsSink, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("leads: spreadsheet id is required")
	}
	if appendRange == "" {
		appendRange = "Leads!A:F"
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("leads: failed to create sheets service: %w", err)
	}

	return &SheetsSink{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		appendRange:   appendRange,
	}, nil
}

func (s *SheetsSink) Append(ctx context.Context, rec Record) error {
	row := make([]interface{}, 0, 6)
	for _, cell := range rec.Row() {
		row = append(row, cell)
	}

	_, err := s.svc.Spreadsheets.Values.
		Append(s.spreadsheetID, s.appendRange, &sheets.ValueRange{
			Values: [][]interface{}{row},
		}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("leads: sheets append failed: %w", err)
	}
	return nil
}
