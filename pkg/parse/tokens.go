package parse

import (
	"strings"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// conditionMap maps raw condition tokens (abbreviations and full words) to
// canonical condition codes. Keys are lowercase.
var conditionMap = map[string]string{
	"m":                 "M",
	"mint":              "M",
	"nm":                "NM",
	"near-mint":         "NM",
	"near mint":         "NM",
	"n-mint":            "NM",
	"ex":                "EX",
	"excellent":         "EX",
	"vg":                "VG",
	"very good":         "VG",
	"gd":                "GD",
	"good":              "GD",
	"lp":                "LP",
	"lightly played":    "LP",
	"sp":                "SP",
	"slightly played":   "SP",
	"mp":                "MP",
	"moderately played": "MP",
	"hp":                "HP",
	"heavily played":    "HP",
	"poor":              "Poor",
}

// statusMap maps lowercase status tokens to domain statuses. "new" is
// deliberately absent: it is only assigned by the image-ingestion path,
// never recognized from free text.
var statusMap = map[string]domain.Status{
	"available": domain.StatusAvailable,
	"listed":    domain.StatusListed,
	"inactive":  domain.StatusInactive,
	"sold":      domain.StatusSold,
}

// platformAliases maps lowercase platform tokens to platforms. A token
// matches at most one platform.
var platformAliases = map[string]domain.Platform{
	"vinted":  domain.PlatformVinted,
	"vin":     domain.PlatformVinted,
	"vendora": domain.PlatformVendora,
	"ven":     domain.PlatformVendora,
	"ebay":    domain.PlatformEbay,
	"bay":     domain.PlatformEbay,
	"eb":      domain.PlatformEbay,
}

// NormalizeCondition maps a raw condition token to its canonical code.
// The lookup is case-insensitive; unrecognized tokens return ("", false).
func NormalizeCondition(token string) (string, bool) {
	c, ok := conditionMap[strings.ToLower(strings.TrimSpace(token))]
	return c, ok
}

// NormalizeStatus maps a raw status token to a domain status.
// The lookup is case-insensitive; unrecognized tokens return ("", false).
func NormalizeStatus(token string) (domain.Status, bool) {
	s, ok := statusMap[strings.ToLower(strings.TrimSpace(token))]
	return s, ok
}

// NormalizePlatform maps a raw platform token to a platform flag.
// The lookup is case-insensitive; unrecognized tokens return ("", false).
func NormalizePlatform(token string) (domain.Platform, bool) {
	p, ok := platformAliases[strings.ToLower(strings.TrimSpace(token))]
	return p, ok
}
