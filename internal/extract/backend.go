// Package extract provides vision-based card field extraction from
// uploaded photos, abstracted behind an interface for testability.
package extract

import "context"

// CardFields holds the fields a vision backend can read off a card photo.
// Empty strings mean the backend could not determine the field.
type CardFields struct {
	Title     string `json:"title"`
	Set       string `json:"set"`
	Condition string `json:"condition"`
	Numbering string `json:"numbering"`
	Notes     string `json:"notes"`
}

// Extractor reads card fields from one or more photos of the same card
// (typically a front and a back shot).
type Extractor interface {
	ExtractCard(ctx context.Context, imageURLs []string) (*CardFields, error)
	Name() string
}
