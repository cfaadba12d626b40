package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/filamvp/card-tracker/pkg/parse"
	domain "github.com/filamvp/card-tracker/pkg/types"
)

// ParseHandler exposes the filename parser as a preview endpoint. It
// persists nothing; clients use it to show what an upload would become.
type ParseHandler struct{}

// NewParseHandler creates a new ParseHandler.
func NewParseHandler() *ParseHandler {
	return &ParseHandler{}
}

// ParseFilenameInput carries the filename to parse.
type ParseFilenameInput struct {
	Body struct {
		Filename string `json:"filename" minLength:"1" doc:"Image filename, extension included"`
	}
}

// ParseFilenameOutput is the parsed field hints.
type ParseFilenameOutput struct {
	Body struct {
		Title     string               `json:"title,omitempty"`
		Set       string               `json:"set,omitempty"`
		Condition string               `json:"condition,omitempty"`
		Price     *float64             `json:"price,omitempty"`
		Platforms domain.PlatformFlags `json:"platforms"`
		Status    domain.Status        `json:"status,omitempty"`
	}
}

// ParseFilename parses a filename into card field hints.
func (*ParseHandler) ParseFilename(_ context.Context, input *ParseFilenameInput) (*ParseFilenameOutput, error) {
	row := parse.ParseFilename(input.Body.Filename)

	resp := &ParseFilenameOutput{}
	resp.Body.Title = row.Title
	resp.Body.Set = row.Set
	resp.Body.Condition = row.Condition
	resp.Body.Price = row.Price
	resp.Body.Platforms = row.Platforms
	resp.Body.Status = row.Status
	return resp, nil
}

// RegisterParseRoutes registers parser preview endpoints with the Huma API.
func RegisterParseRoutes(api huma.API, h *ParseHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "parse-filename",
		Method:      http.MethodPost,
		Path:        "/api/v1/parse/filename",
		Summary:     "Preview the fields a filename parses into",
		Description: "Parses an image filename into card field hints without persisting anything.",
		Tags:        []string{"import"},
	}, h.ParseFilename)
}
