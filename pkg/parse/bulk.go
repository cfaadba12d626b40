package parse

import (
	"strconv"
	"strings"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// bulkHeader is the fixed positional column schema for bulk pasted text.
var bulkHeader = [12]string{
	"kind", "team", "title", "set", "condition", "price",
	"vinted", "vendora", "ebay", "status", "imageurl", "notes",
}

// DetectDelimiter picks the column delimiter from the first line of a
// bulk paste: pipe beats tab beats comma. The decision is global for the
// whole paste, never per line.
func DetectDelimiter(firstLine string) string {
	switch {
	case strings.Contains(firstLine, "|"):
		return "|"
	case strings.Contains(firstLine, "\t"):
		return "\t"
	default:
		return ","
	}
}

// ParseBulk parses a block of pasted multi-line text into rows. Lines are
// trimmed, blank lines dropped, and literal "\t" escapes converted to real
// tabs. Column splitting is purely positional with no quoted-field
// handling; short lines leave trailing columns absent. Rows without a
// title are dropped.
func ParseBulk(text string) []Row {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		l = strings.TrimSpace(strings.TrimSuffix(l, "\r"))
		if l == "" {
			continue
		}
		lines = append(lines, strings.ReplaceAll(l, `\t`, "\t"))
	}
	if len(lines) == 0 {
		return nil
	}

	delim := DetectDelimiter(lines[0])
	if hasHeader(strings.Split(lines[0], delim)) {
		lines = lines[1:]
	}

	rows := make([]Row, 0, len(lines))
	for _, line := range lines {
		cols := strings.Split(line, delim)
		col := func(i int) string {
			if i < len(cols) {
				return strings.TrimSpace(cols[i])
			}
			return ""
		}

		if col(2) == "" {
			continue
		}

		row := Row{
			Team:     col(1),
			Title:    col(2),
			Set:      col(3),
			ImageURL: col(10),
			Notes:    col(11),
		}

		switch strings.ToLower(col(0)) {
		case "single":
			row.Kind = domain.KindSingle
		case "lot":
			row.Kind = domain.KindLot
		}

		if c, ok := NormalizeCondition(col(4)); ok {
			row.Condition = c
		} else {
			row.Condition = col(4)
		}

		if p := col(5); p != "" {
			if num, err := strconv.ParseFloat(p, 64); err == nil {
				row.Price = &num
			}
		}

		row.Platforms = domain.PlatformFlags{
			Vinted:  truthy(col(6)),
			Vendora: truthy(col(7)),
			Ebay:    truthy(col(8)),
		}

		if s, ok := NormalizeStatus(col(9)); ok {
			row.Status = s
		} else if strings.EqualFold(col(9), string(domain.StatusNew)) {
			row.Status = domain.StatusNew
		}

		rows = append(rows, row)
	}
	return rows
}

// hasHeader compares the first line's columns positionally against the
// expected header names. The first column gets an allowance: anything
// other than a literal "title" counts as a match for "kind", which
// tolerates minor header variation there.
func hasHeader(firstCols []string) bool {
	for i, want := range bulkHeader {
		var got string
		if i < len(firstCols) {
			got = strings.ToLower(strings.TrimSpace(firstCols[i]))
		}
		if got == want {
			continue
		}
		if want == "kind" && got != "title" {
			continue
		}
		return false
	}
	return true
}

// truthy reports whether a boolean column value is one of the accepted
// true tokens {1, true, yes, y}, case-insensitively. Everything else,
// including empty, is false.
func truthy(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y":
		return true
	default:
		return false
	}
}
