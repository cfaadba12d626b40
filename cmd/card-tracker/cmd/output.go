package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	domain "github.com/filamvp/card-tracker/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printCardsTable(cards []domain.Card) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID\tTITLE\tSET\tCOND\tPRICE\tSTATUS\tPLATFORMS\n")
	for i := range cards {
		c := &cards[i]
		price := "-"
		if c.Price != nil {
			price = fmt.Sprintf("€%.2f", *c.Price)
		}
		tw.writef("%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID,
			truncate(c.Title, 40),
			c.Set,
			c.Condition,
			price,
			c.Status,
			platformList(c.Platforms),
		)
	}
	return tw.finish()
}

func printCardDetail(c *domain.Card) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("ID:\t%s\n", c.ID)
	tw.writef("Title:\t%s\n", c.Title)
	tw.writef("Kind:\t%s\n", c.Kind)
	if c.Team != "" {
		tw.writef("Team:\t%s\n", c.Team)
	}
	if c.Set != "" {
		tw.writef("Set:\t%s\n", c.Set)
	}
	if c.Condition != "" {
		tw.writef("Condition:\t%s\n", c.Condition)
	}
	if c.Numbering != "" {
		tw.writef("Numbering:\t%s\n", c.Numbering)
	}
	if c.Price != nil {
		tw.writef("Price:\t€%.2f\n", *c.Price)
	}
	tw.writef("Status:\t%s\n", c.Status)
	tw.writef("Platforms:\t%s\n", platformList(c.Platforms))
	if c.ImageURLFront != "" {
		tw.writef("Front:\t%s\n", c.ImageURLFront)
	}
	if c.ImageURLBack != "" {
		tw.writef("Back:\t%s\n", c.ImageURLBack)
	}
	if c.Notes != "" {
		tw.writef("Notes:\t%s\n", c.Notes)
	}
	tw.writef("Created:\t%s\n", c.CreatedAt.Format("2006-01-02 15:04:05"))
	return tw.finish()
}

func printImportSummary(s *domain.ImportSummary) error {
	tw := newTabWriter(os.Stdout)
	tw.writef("State:\t%s\n", s.State)
	tw.writef("Accepted:\t%d\n", s.Accepted)
	tw.writef("Skipped (existing):\t%d\n", s.SkippedExisting)
	tw.writef("Skipped (batch duplicate):\t%d\n", s.SkippedBatch)
	tw.writef("Skipped (server):\t%d\n", s.SkippedServer)
	return tw.finish()
}

func platformList(p domain.PlatformFlags) string {
	out := ""
	add := func(name string, on bool) {
		if !on {
			return
		}
		if out != "" {
			out += ","
		}
		out += name
	}
	add("vinted", p.Vinted)
	add("vendora", p.Vendora)
	add("ebay", p.Ebay)
	if out == "" {
		return "-"
	}
	return out
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
