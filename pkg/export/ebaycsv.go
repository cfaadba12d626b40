// Package export renders inventory into interchange formats: the JSON
// backup envelope and the eBay bulk-listing CSV.
package export

import (
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// ebayCategoryID is the eBay category for "Sports Trading Card Singles".
const ebayCategoryID = "261328"

// ebayConditionIDs maps stored condition grades (lowercased) to eBay's
// required numeric condition IDs. Graded cards are not supported; all
// raw grades map to ungraded IDs.
var ebayConditionIDs = map[string]string{
	"gem mint":  "1000",
	"mint":      "1000",
	"m":         "1000",
	"near mint": "2500",
	"nm":        "2500",
	"excellent": "4000",
	"ex":        "4000",
	"lp":        "4000",
	"sp":        "4000",
	"very good": "5000",
	"vg":        "5000",
	"gd":        "5000",
	"mp":        "5000",
	"hp":        "7000",
	"poor":      "7000",
}

// defaultEbayConditionID is used when a card's grade has no mapping.
// Near Mint is the safe default for ungraded cards.
const defaultEbayConditionID = "2500"

const defaultItemDescription = "Please see photos for card condition. Card sold as is."

var ebayBaseHeaders = []string{
	"Action",
	"Custom label (SKU)",
	"Category",
	"Title",
	"Condition",
	"Condition description",
	"Item description",
	"Format",
	"Duration",
	"Price",
	"Quantity",
	"Item Photo URL",
	"Location",
	"ShippingProfileName",
	"ReturnProfileName",
	"PaymentProfileName",
	"Relationship",
	"Relationship details",
}

// EbayCSVOptions customizes listing fields that must match the seller's
// eBay account configuration.
type EbayCSVOptions struct {
	// USDRate converts stored EUR prices to USD. Zero leaves prices empty.
	USDRate float64

	Location            string
	ShippingProfileName string
	ReturnProfileName   string
	PaymentProfileName  string
}

func (o *EbayCSVOptions) applyDefaults() {
	if o.Location == "" {
		o.Location = "Serres, Greece"
	}
	if o.ShippingProfileName == "" {
		o.ShippingProfileName = "International Shipping"
	}
	if o.ReturnProfileName == "" {
		o.ReturnProfileName = "Returns"
	}
	if o.PaymentProfileName == "" {
		o.PaymentProfileName = "Payment"
	}
}

// GenerateEbayCSV renders cards as an eBay bulk-listing CSV. Item
// specifics columns (Team, Set, Card Number) appear only when at least
// one card carries the field; the Graded column is always present.
func GenerateEbayCSV(cards []domain.Card, opts EbayCSVOptions) (string, error) {
	opts.applyDefaults()

	specifics := []string{"Graded"}
	var hasTeam, hasSet, hasNumbering bool
	for _, c := range cards {
		hasTeam = hasTeam || c.Team != ""
		hasSet = hasSet || c.Set != ""
		hasNumbering = hasNumbering || c.Numbering != ""
	}
	if hasTeam {
		specifics = append(specifics, "Team")
	}
	if hasSet {
		specifics = append(specifics, "Set")
	}
	if hasNumbering {
		specifics = append(specifics, "Card Number")
	}

	headers := make([]string, 0, len(ebayBaseHeaders)+len(specifics))
	headers = append(headers, ebayBaseHeaders...)
	for _, s := range specifics {
		headers = append(headers, "Item specifics["+s+"]")
	}

	var buf strings.Builder
	w := csv.NewWriter(&buf)
	if err := w.Write(headers); err != nil {
		return "", fmt.Errorf("writing CSV header: %w", err)
	}

	for _, c := range cards {
		row := ebayRow(c, specifics, &opts)
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("writing CSV row for %q: %w", c.Title, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flushing CSV: %w", err)
	}
	return buf.String(), nil
}

func ebayRow(c domain.Card, specifics []string, opts *EbayCSVOptions) []string {
	var photos []string
	for _, u := range append([]string{c.ImageURLFront, c.ImageURLBack}, c.ExtraImageURLs...) {
		if u != "" {
			photos = append(photos, u)
		}
	}

	conditionID, ok := ebayConditionIDs[strings.ToLower(c.Condition)]
	if !ok {
		conditionID = defaultEbayConditionID
	}

	price := ""
	if c.Price != nil && opts.USDRate > 0 {
		price = fmt.Sprintf("%.2f", *c.Price*opts.USDRate)
	}

	description := c.Notes
	if description == "" {
		description = defaultItemDescription
	}

	row := []string{
		"Add",
		c.ID,
		ebayCategoryID,
		c.Title,
		conditionID,
		c.Condition,
		description,
		"FixedPrice",
		"GTC",
		price,
		"1",
		strings.Join(photos, "|"),
		opts.Location,
		opts.ShippingProfileName,
		opts.ReturnProfileName,
		opts.PaymentProfileName,
		"",
		"",
	}

	for _, s := range specifics {
		switch s {
		case "Graded":
			row = append(row, "No")
		case "Team":
			row = append(row, c.Team)
		case "Set":
			row = append(row, c.Set)
		case "Card Number":
			row = append(row, c.Numbering)
		}
	}
	return row
}

// JSONEnvelope wraps cards in the versioned interchange envelope.
func JSONEnvelope(cards []domain.Card, exportedAt time.Time) domain.Export {
	if cards == nil {
		cards = []domain.Card{}
	}
	return domain.Export{
		Version:    domain.ExportVersion,
		ExportedAt: exportedAt,
		Items:      cards,
	}
}
