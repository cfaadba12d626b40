package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/filamvp/card-tracker/internal/store"
	"github.com/filamvp/card-tracker/pkg/export"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

// exportQueryLimit bounds how many cards one export pulls. The whole
// inventory is expected to fit well under this.
const exportQueryLimit = 500

// ExportHandler handles inventory export endpoints.
type ExportHandler struct {
	store store.Store
	// usdRate is the configured default EUR to USD rate for the eBay CSV.
	usdRate float64
	now     func() time.Time
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(s store.Store, usdRate float64) *ExportHandler {
	return &ExportHandler{store: s, usdRate: usdRate, now: time.Now}
}

// ExportJSONOutput is the versioned interchange envelope.
type ExportJSONOutput struct {
	Body domain.Export
}

// ExportEbayCSVInput selects cards and the currency rate for the listing CSV.
type ExportEbayCSVInput struct {
	Status  string  `query:"status"   doc:"Only cards in this status (default Available)" enum:"New,Available,Listed,Inactive,Sold,"`
	USDRate float64 `query:"usd_rate" doc:"EUR to USD rate; overrides the configured default" minimum:"0"`
}

// ExportEbayCSVOutput is the raw CSV download.
type ExportEbayCSVOutput struct {
	ContentType        string `header:"Content-Type"`
	ContentDisposition string `header:"Content-Disposition"`
	Body               []byte
}

func (h *ExportHandler) allCards(ctx context.Context, status string) ([]domain.Card, error) {
	q := &store.CardQuery{Limit: exportQueryLimit}
	if status != "" {
		q.Status = &status
	}

	var all []domain.Card
	for {
		cards, total, err := h.store.ListCards(ctx, q)
		if err != nil {
			return nil, err
		}
		all = append(all, cards...)
		if len(all) >= total || len(cards) == 0 {
			return all, nil
		}
		q.Offset = len(all)
	}
}

// ExportJSON returns the full inventory as the versioned JSON envelope
// the import endpoint accepts back.
func (h *ExportHandler) ExportJSON(ctx context.Context, _ *struct{}) (*ExportJSONOutput, error) {
	cards, err := h.allCards(ctx, "")
	if err != nil {
		return nil, huma.Error500InternalServerError("loading inventory: " + err.Error())
	}
	return &ExportJSONOutput{Body: export.JSONEnvelope(cards, h.now().UTC())}, nil
}

// ExportEbayCSV returns cards as an eBay bulk-listing CSV, prices
// converted from EUR to USD.
func (h *ExportHandler) ExportEbayCSV(ctx context.Context, input *ExportEbayCSVInput) (*ExportEbayCSVOutput, error) {
	status := input.Status
	if status == "" {
		status = string(domain.StatusAvailable)
	}

	cards, err := h.allCards(ctx, status)
	if err != nil {
		return nil, huma.Error500InternalServerError("loading inventory: " + err.Error())
	}

	rate := input.USDRate
	if rate == 0 {
		rate = h.usdRate
	}

	csv, err := export.GenerateEbayCSV(cards, export.EbayCSVOptions{USDRate: rate})
	if err != nil {
		return nil, huma.Error500InternalServerError("generating CSV: " + err.Error())
	}

	return &ExportEbayCSVOutput{
		ContentType:        "text/csv; charset=utf-8",
		ContentDisposition: `attachment; filename="ebay-listings.csv"`,
		Body:               []byte(csv),
	}, nil
}

// RegisterExportRoutes registers export endpoints with the Huma API.
func RegisterExportRoutes(api huma.API, h *ExportHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "export-json",
		Method:      http.MethodGet,
		Path:        "/api/v1/export/json",
		Summary:     "Export the inventory as JSON",
		Description: "Returns the versioned interchange document accepted by the JSON import endpoint.",
		Tags:        []string{"export"},
	}, h.ExportJSON)

	huma.Register(api, huma.Operation{
		OperationID: "export-ebay-csv",
		Method:      http.MethodGet,
		Path:        "/api/v1/export/ebay-csv",
		Summary:     "Export cards as an eBay bulk-listing CSV",
		Tags:        []string{"export"},
	}, h.ExportEbayCSV)
}
