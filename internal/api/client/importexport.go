package client

import (
	"context"
	"net/url"
	"strconv"
	"time"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// ImportBulk submits a pasted text blob and returns the import summary.
func (c *Client) ImportBulk(ctx context.Context, text string) (*domain.ImportSummary, error) {
	body := map[string]string{"text": text}

	var summary domain.ImportSummary
	if err := c.post(ctx, "/api/v1/import/bulk", body, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// ImportJSON submits a JSON export document and returns the import summary.
func (c *Client) ImportJSON(ctx context.Context, document []byte) (*domain.ImportSummary, error) {
	var summary domain.ImportSummary
	if err := c.post(ctx, "/api/v1/import/json", rawJSON(document), &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// rawJSON passes pre-encoded JSON through the client's marshaling step.
type rawJSON []byte

func (r rawJSON) MarshalJSON() ([]byte, error) { return r, nil }

// ExportJSON fetches the full inventory interchange document.
func (c *Client) ExportJSON(ctx context.Context) (*domain.Export, error) {
	var env domain.Export
	if err := c.get(ctx, "/api/v1/export/json", &env); err != nil {
		return nil, err
	}
	return &env, nil
}

// ExportEbayCSV fetches the eBay bulk-listing CSV for cards in the given
// status (empty means the server default).
func (c *Client) ExportEbayCSV(ctx context.Context, status string, usdRate float64) ([]byte, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if usdRate > 0 {
		q.Set("usd_rate", strconv.FormatFloat(usdRate, 'f', -1, 64))
	}

	path := "/api/v1/export/ebay-csv"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}
	return c.getRaw(ctx, path)
}

// QueueStatus reports image queue depth and vision budget state.
type QueueStatus struct {
	PendingImages        int        `json:"pending_images"`
	VisionCallsToday     *int64     `json:"vision_calls_today,omitempty"`
	VisionCallsRemaining *int64     `json:"vision_calls_remaining,omitempty"`
	VisionBudgetResetAt  *time.Time `json:"vision_budget_reset_at,omitempty"`
}

// GetQueueStatus returns the image queue status.
func (c *Client) GetQueueStatus(ctx context.Context) (*QueueStatus, error) {
	var status QueueStatus
	if err := c.get(ctx, "/api/v1/queue/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
