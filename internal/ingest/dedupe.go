package ingest

import (
	domain "github.com/filamvp/card-tracker/pkg/types"
)

// DedupeResult is the outcome of the client-side dedup pass.
type DedupeResult struct {
	Accepted        []domain.Card
	SkippedExisting int
	SkippedBatch    int
}

// Dedupe walks candidates in input order and drops any whose normalized
// title is empty, already present in the existing inventory snapshot, or
// already seen earlier in the same batch. The first occurrence in a batch
// wins regardless of field completeness.
//
// This pass is an optimization and UX-feedback mechanism only; the
// database's unique index on the normalized title is the authoritative
// barrier against double insertion under concurrent imports.
func Dedupe(existingTitles []string, candidates []domain.Card) DedupeResult {
	existing := make(map[string]struct{}, len(existingTitles))
	for _, t := range existingTitles {
		if norm := domain.NormalizeTitle(t); norm != "" {
			existing[norm] = struct{}{}
		}
	}

	var res DedupeResult
	seen := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		norm := domain.NormalizeTitle(c.Title)
		if norm == "" {
			continue
		}
		if _, ok := existing[norm]; ok {
			res.SkippedExisting++
			continue
		}
		if _, ok := seen[norm]; ok {
			res.SkippedBatch++
			continue
		}
		seen[norm] = struct{}{}
		res.Accepted = append(res.Accepted, c)
	}
	return res
}
