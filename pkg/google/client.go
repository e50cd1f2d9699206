package google

import (
	"context"
	"fmt"

	"github.com/harrisonrobin/cronograma/pkg/auth"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// NewClient creates a Sheets source authenticated through the cached OAuth token.
func NewClient(ctx context.Context, flow *auth.Flow, spreadsheetID, readRange string) (*SheetSource, error) {
	client, err := flow.Client(ctx, auth.Scopes)
	if err != nil {
		return nil, err
	}

	srv, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve Sheets client: %w", err)
	}
	return NewSheetSource(srv, spreadsheetID, readRange), nil
}
