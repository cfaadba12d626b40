package parse

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// knownSets is the fixed list of historical set names recognized when no
// explicit "<word> set" pattern is present in a filename.
var knownSets = []string{
	"Base", "Base Set", "Jungle", "Fossil", "Team Rocket", "Gym Heroes", "Gym Challenge",
	"Neo Genesis", "Neo Discovery", "Neo Revelation", "Neo Destiny", "Legendary Collection",
	"Expedition", "Aquapolis", "Skyridge",
}

// stopWords are connective tokens removed from leftover title assembly.
var stopWords = map[string]struct{}{
	"and": {}, "the": {}, "of": {}, "tcg": {}, "pokemon": {}, "card": {}, "trading": {},
}

var (
	extensionRe = regexp.MustCompile(`\.[^.]+$`)
	bracketRe   = regexp.MustCompile(`[\[(]([^\])]*)[\])]`)
	priceRe     = regexp.MustCompile(`^€?(\d{1,5}(?:[.,]\d{1,2})?)€?$`)
	lettersRe   = regexp.MustCompile(`[^a-z]`)
)

// ParseFilename extracts structured hints from one image filename. It
// strips the extension, normalizes separators, then classifies tokens in a
// fixed order: price (first match wins), status (last match wins),
// platforms (all accumulate), condition (first match wins), set. Tokens
// consumed by no rule become the title. Absent fields stay zero; the
// function never fails.
func ParseFilename(filename string) Row {
	var row Row

	base := extensionRe.ReplaceAllString(filename, "")
	text := normalizeSeparators(base)

	// A bracketed part is a set hint and is cut from the token stream.
	if m := bracketRe.FindStringSubmatch(text); m != nil {
		if candidate := cleanWord(m[1]); candidate != "" {
			row.Set = candidate
		}
		text = strings.Replace(text, m[0], " ", 1)
	}

	tokens := strings.Fields(text)
	consumed := make(map[int]bool, len(tokens))

	for i, t := range tokens {
		m := priceRe.FindStringSubmatch(t)
		if m == nil {
			continue
		}
		num, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
		if err == nil {
			row.Price = &num
			consumed[i] = true
			break
		}
	}

	for i, t := range tokens {
		if s, ok := NormalizeStatus(t); ok {
			row.Status = s
			consumed[i] = true
		}
	}

	for i, t := range tokens {
		if p, ok := NormalizePlatform(t); ok {
			row.Platforms.Set(p)
			consumed[i] = true
		}
	}

	for i, t := range tokens {
		if c, ok := NormalizeCondition(t); ok {
			row.Condition = c
			consumed[i] = true
			break
		}
		// tokens like "NM/Mint" or "LP+": retry with letters only
		simple := lettersRe.ReplaceAllString(strings.ToLower(t), "")
		if c, ok := NormalizeCondition(simple); ok {
			row.Condition = c
			consumed[i] = true
			break
		}
	}

	// "<word> set" consumes both tokens and beats the known-name list.
	for i, t := range tokens {
		word := cleanWord(t)
		if word == "" || !strings.EqualFold(word, "set") || i == 0 {
			continue
		}
		if prev := cleanWord(tokens[i-1]); prev != "" {
			row.Set = titleCase(prev)
			consumed[i] = true
			consumed[i-1] = true
			break
		}
	}
	if row.Set == "" {
		cleaned := make([]string, 0, len(tokens))
		for _, t := range tokens {
			if w := cleanWord(t); w != "" {
				cleaned = append(cleaned, w)
			}
		}
		joined := strings.ToLower(strings.Join(cleaned, " "))
		for _, s := range knownSets {
			if containsWord(joined, strings.ToLower(s)) {
				row.Set = s
				break
			}
		}
	}

	var titleTokens []string
	for i, t := range tokens {
		if consumed[i] {
			continue
		}
		w := cleanWord(t)
		if w == "" {
			continue
		}
		if row.Set != "" && strings.EqualFold(w, row.Set) {
			continue
		}
		if _, stop := stopWords[strings.ToLower(w)]; stop {
			continue
		}
		titleTokens = append(titleTokens, w)
	}
	if len(titleTokens) > 0 {
		row.Title = titleCase(strings.Join(titleTokens, " "))
	}

	return row
}

// normalizeSeparators replaces the separator characters ". _ - |" with
// spaces, except that a dot between two digits is kept so decimal prices
// like 39.90 survive tokenization.
func normalizeSeparators(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch r {
		case '_', '-', '|':
			b.WriteRune(' ')
		case '.':
			if i > 0 && i+1 < len(runes) && unicode.IsDigit(runes[i-1]) && unicode.IsDigit(runes[i+1]) {
				b.WriteRune(r)
			} else {
				b.WriteRune(' ')
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// cleanWord strips everything but letters, digits and spaces (Unicode
// aware) and collapses runs of whitespace.
func cleanWord(w string) string {
	w = strings.NewReplacer("_", " ", "-", " ").Replace(w)
	var b strings.Builder
	b.Grow(len(w))
	for _, r := range w {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}

// containsWord reports whether word occurs in s aligned on space
// boundaries. Both arguments must already be lowercase.
func containsWord(s, word string) bool {
	for idx := 0; ; {
		j := strings.Index(s[idx:], word)
		if j < 0 {
			return false
		}
		start := idx + j
		end := start + len(word)
		if (start == 0 || s[start-1] == ' ') && (end == len(s) || s[end] == ' ') {
			return true
		}
		idx = start + 1
	}
}
