// Package parse implements the ingestion parsers: token normalization
// against static lookup tables, single-filename field extraction, and
// bulk pasted-text row parsing.
//
// All parsers here are pure and total. Unrecognized input is passed
// through or omitted, never rejected with an error; a row that yields no
// usable title is simply dropped by the caller.
package parse

import (
	domain "github.com/filamvp/card-tracker/pkg/types"
)

// Row is the intermediate, partially-populated shape produced by the bulk
// and filename parsers. Zero values mean "absent"; a Row becomes a
// domain.Card only after default-filling and ID assignment.
type Row struct {
	Kind      domain.Kind
	Team      string
	Title     string
	Set       string
	Condition string
	Price     *float64
	Platforms domain.PlatformFlags
	Status    domain.Status
	ImageURL  string
	Notes     string
}
