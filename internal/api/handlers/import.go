package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// BulkImporter is the import coordinator the handler delegates to.
type BulkImporter interface {
	ImportText(ctx context.Context, text string) (*domain.ImportSummary, error)
	ImportJSON(ctx context.Context, data []byte) (*domain.ImportSummary, error)
}

// ImportHandler handles bulk import endpoints.
type ImportHandler struct {
	importer BulkImporter
}

// NewImportHandler creates a new ImportHandler.
func NewImportHandler(imp BulkImporter) *ImportHandler {
	return &ImportHandler{importer: imp}
}

// ImportBulkInput carries a pasted text blob of one row per line.
type ImportBulkInput struct {
	Body struct {
		Text string `json:"text" doc:"Rows of card data, one per line, pipe/tab/comma separated"`
	}
}

// ImportJSONInput carries a previously exported interchange document.
type ImportJSONInput struct {
	RawBody []byte `contentType:"application/json"`
}

// ImportOutput is the import result summary.
type ImportOutput struct {
	Body domain.ImportSummary
}

// ImportBulk parses the pasted text and imports the resulting rows.
// Duplicate titles (existing, in-batch, or raced server-side) are
// skipped, never overwritten.
func (h *ImportHandler) ImportBulk(ctx context.Context, input *ImportBulkInput) (*ImportOutput, error) {
	summary, err := h.importer.ImportText(ctx, input.Body.Text)
	if err != nil {
		return nil, huma.Error500InternalServerError("import failed: " + err.Error())
	}
	return &ImportOutput{Body: *summary}, nil
}

// ImportJSON imports a backup produced by the JSON export. Re-importing
// the same document is idempotent.
func (h *ImportHandler) ImportJSON(ctx context.Context, input *ImportJSONInput) (*ImportOutput, error) {
	summary, err := h.importer.ImportJSON(ctx, input.RawBody)
	if err != nil {
		if summary == nil {
			// The document itself was unusable.
			return nil, huma.Error422UnprocessableEntity(err.Error())
		}
		return nil, huma.Error500InternalServerError("import failed: " + err.Error())
	}
	return &ImportOutput{Body: *summary}, nil
}

// RegisterImportRoutes registers import endpoints with the Huma API.
func RegisterImportRoutes(api huma.API, h *ImportHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "import-bulk",
		Method:      http.MethodPost,
		Path:        "/api/v1/import/bulk",
		Summary:     "Bulk import cards from pasted text",
		Description: "Parses pipe, tab, or comma separated rows and imports them. Existing titles are skipped.",
		Tags:        []string{"import"},
	}, h.ImportBulk)

	huma.Register(api, huma.Operation{
		OperationID: "import-json",
		Method:      http.MethodPost,
		Path:        "/api/v1/import/json",
		Summary:     "Import cards from a JSON export document",
		Tags:        []string{"import"},
		Errors:      []int{http.StatusUnprocessableEntity},
	}, h.ImportJSON)
}
