package service

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
)

// MatchBlacklist returns, in their original order, the ingredients whose text
// contains at least one blacklist term as a case-insensitive substring.
// Ingredients without text never match, and neither do blank terms. The
// result is never nil.
func MatchBlacklist(ingredients []openfoodfacts.Ingredient, blacklist []string) []openfoodfacts.Ingredient {
	fold := cases.Fold()

	terms := make([]string, 0, len(blacklist))
	for _, term := range blacklist {
		if strings.TrimSpace(term) == "" {
			continue
		}
		terms = append(terms, fold.String(term))
	}

	matches := []openfoodfacts.Ingredient{}
	if len(terms) == 0 {
		return matches
	}
	for _, ing := range ingredients {
		if !ing.HasText() {
			continue
		}
		text := fold.String(*ing.Text)
		for _, term := range terms {
			if strings.Contains(text, term) {
				matches = append(matches, ing)
				break
			}
		}
	}
	return matches
}

// MatchedNames returns the display text of each matched ingredient, skipping
// any without text.
func MatchedNames(matches []openfoodfacts.Ingredient) []string {
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.HasText() {
			names = append(names, *m.Text)
		}
	}
	return names
}

// Verdict is the outcome of checking one product against the blacklist.
type Verdict struct {
	Matches []openfoodfacts.Ingredient `json:"matches"`
	Unsafe  bool                       `json:"unsafe"`
}

// Check matches ingredients against blacklist. A product is unsafe when at
// least one ingredient matched.
func Check(ingredients []openfoodfacts.Ingredient, blacklist []string) Verdict {
	matches := MatchBlacklist(ingredients, blacklist)
	return Verdict{Matches: matches, Unsafe: len(matches) > 0}
}
