package sheet

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// ValuesService reads cell ranges through the Sheets v4 API with an API key.
type ValuesService struct {
	srv *sheets.Service
}

func NewValuesService(ctx context.Context, apiKey string) (*ValuesService, error) {
	srv, err := sheets.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets service: %w", err)
	}
	return &ValuesService{srv: srv}, nil
}

func (v *ValuesService) Values(ctx context.Context, spreadsheetID, readRange string) ([][]any, error) {
	resp, err := v.srv.Spreadsheets.Values.Get(spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", readRange, err)
	}
	return resp.Values, nil
}
