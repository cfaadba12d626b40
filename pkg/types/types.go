// Package domain defines the core business types for card-tracker.
package domain

import (
	"strings"
	"time"
)

// Kind distinguishes a single card from a multi-card lot.
type Kind string

// Kind constants.
const (
	KindSingle Kind = "Single"
	KindLot    Kind = "Lot"
)

// Status represents the selling lifecycle state of a card.
type Status string

// Status constants.
const (
	StatusNew       Status = "New"
	StatusAvailable Status = "Available"
	StatusListed    Status = "Listed"
	StatusInactive  Status = "Inactive"
	StatusSold      Status = "Sold"
)

// NextStatus returns the next state in the selling cycle:
// New -> Available -> Listed -> Sold -> Inactive -> Available.
func NextStatus(s Status) Status {
	switch s {
	case StatusNew:
		return StatusAvailable
	case StatusAvailable:
		return StatusListed
	case StatusListed:
		return StatusSold
	case StatusSold:
		return StatusInactive
	case StatusInactive:
		return StatusAvailable
	default:
		return StatusAvailable
	}
}

// Platform identifies a marketplace a card can be cross-listed on.
type Platform string

// Platform constants.
const (
	PlatformVinted  Platform = "vinted"
	PlatformVendora Platform = "vendora"
	PlatformEbay    Platform = "ebay"
)

// PlatformFlags records which marketplaces a card is cross-listed on.
// The flags are independent; absence means false, never null.
type PlatformFlags struct {
	Vinted  bool `json:"vinted"  db:"vinted"`
	Vendora bool `json:"vendora" db:"vendora"`
	Ebay    bool `json:"ebay"    db:"ebay"`
}

// Set turns on the flag for the given platform.
func (p *PlatformFlags) Set(platform Platform) {
	switch platform {
	case PlatformVinted:
		p.Vinted = true
	case PlatformVendora:
		p.Vendora = true
	case PlatformEbay:
		p.Ebay = true
	}
}

// Any reports whether at least one platform flag is on.
func (p PlatformFlags) Any() bool {
	return p.Vinted || p.Vendora || p.Ebay
}

// Card represents one inventory unit (a single card or a lot).
type Card struct {
	ID   string `json:"id"             db:"id"`
	Kind Kind   `json:"kind,omitempty" db:"kind"`

	Title     string `json:"title"               db:"title"`
	Team      string `json:"team,omitempty"      db:"team"`
	Set       string `json:"set,omitempty"       db:"set"`
	Condition string `json:"condition,omitempty" db:"condition"`
	Numbering string `json:"numbering,omitempty" db:"numbering"`
	Notes     string `json:"notes,omitempty"     db:"notes"`

	Price     *float64      `json:"price,omitempty" db:"price"`
	Platforms PlatformFlags `json:"platforms"`
	Status    Status        `json:"status" db:"status"`

	ImageURLFront  string   `json:"image_url_front,omitempty"  db:"image_url_front"`
	ImageURLBack   string   `json:"image_url_back,omitempty"   db:"image_url_back"`
	ExtraImageURLs []string `json:"extra_image_urls,omitempty" db:"extra_image_urls"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// NormalizeTitle reduces a title to its deduplication key: leading and
// trailing whitespace trimmed, case folded. Equality on the result is the
// sole dedup rule; there is no fuzzy matching.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// ExportVersion is the JSON interchange format version.
const ExportVersion = 1

// Export is the JSON interchange envelope for backup and re-import.
type Export struct {
	Version    int       `json:"version"`
	ExportedAt time.Time `json:"exportedAt"`
	Items      []Card    `json:"items"`
}

// ImportState is the terminal state of one import operation.
type ImportState string

// Import terminal states.
const (
	ImportSucceeded          ImportState = "succeeded"
	ImportPartiallySucceeded ImportState = "partially_succeeded"
	ImportFailed             ImportState = "failed"
)

// ImportSummary reports the outcome of one bulk import batch.
type ImportSummary struct {
	State           ImportState `json:"state"`
	Accepted        int         `json:"accepted"`
	SkippedExisting int         `json:"skipped_existing"`
	SkippedBatch    int         `json:"skipped_batch"`
	SkippedServer   int         `json:"skipped_server"`
	Cards           []Card      `json:"cards,omitempty"`
}

// SkippedTotal returns the combined skip count across all causes.
func (s *ImportSummary) SkippedTotal() int {
	return s.SkippedExisting + s.SkippedBatch + s.SkippedServer
}
