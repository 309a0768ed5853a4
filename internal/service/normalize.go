package service

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Normalize trims whitespace from a raw ingredient name and case-folds it into
// the key used for case-insensitive comparison.
func Normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// NormalizeCatalog trims every name, drops blanks, removes case-insensitive
// duplicates keeping the first spelling seen, and sorts the result in
// case-insensitive collation order for tag. The result is never nil.
func NormalizeCatalog(items []string, tag language.Tag) []string {
	fold := cases.Fold()
	seen := make(map[string]struct{}, len(items))
	result := make([]string, 0, len(items))

	for _, item := range items {
		cleaned := strings.TrimSpace(item)
		if cleaned == "" {
			continue
		}
		key := fold.String(cleaned)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, cleaned)
	}

	c := collate.New(tag, collate.IgnoreCase)
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i], result[j]) < 0
	})
	return result
}
