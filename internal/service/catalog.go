package service

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
)

const maxSuggestions = 5

var fallbackCatalog = []string{
	"Sugar", "Salt", "Palm Oil", "Soy", "Soya Lecithin", "Peanuts", "Peanut",
	"Milk", "Whey", "Casein", "Egg", "Gelatin", "Wheat", "Barley",
	"Rye", "Oats", "Gluten", "Almonds", "Cashews", "Hazelnuts", "Tree Nuts",
	"Sesame", "Mustard", "Celery", "Fish", "Crustaceans", "Molluscs", "Lupin",
	"Sulphites", "Citric Acid", "Natural Flavour", "Artificial Flavour", "Corn",
	"Starch", "Soy Lecithin", "Monosodium Glutamate", "MSG", "Hydrogenated Vegetable Oil",
	"Vegetable Oil", "Palm Kernel Oil", "Canola", "Rapeseed", "Beef", "Pork",
	"Chicken", "Fish Oil",
}

// FallbackCatalog returns a copy of the built-in reference list.
func FallbackCatalog() []string {
	out := make([]string, len(fallbackCatalog))
	copy(out, fallbackCatalog)
	return out
}

// LoadCatalog reads a JSON array of ingredient names from path. When path is
// empty or the file cannot be read or decoded, the fallback list is returned.
// The result is not normalized.
func LoadCatalog(path string) []string {
	if path == "" {
		return FallbackCatalog()
	}
	items, err := readCatalog(path)
	if err != nil {
		slog.Warn("using fallback ingredient catalog", "path", path, "error", err)
		return FallbackCatalog()
	}
	return items
}

func readCatalog(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if items == nil {
		return nil, fmt.Errorf("decode %s: not an array", path)
	}
	return items, nil
}

// Catalog returns the normalized reference catalog.
func (s *Service) Catalog() []string {
	out := make([]string, len(s.catalog))
	copy(out, s.catalog)
	return out
}

// ProductCatalog normalizes the ingredient texts of a scanned product so they
// can be offered for blacklisting.
func (s *Service) ProductCatalog(product openfoodfacts.ProductDetails) []string {
	texts := make([]string, 0, len(product.Ingredients))
	for _, ing := range product.Ingredients {
		if ing.HasText() {
			texts = append(texts, *ing.Text)
		}
	}
	return NormalizeCatalog(texts, s.locale)
}

// CatalogSearch is returned by SearchCatalog. Suggestions is only filled when
// nothing in the catalog contains the query.
type CatalogSearch struct {
	Query       string   `json:"query"`
	Matches     []string `json:"matches"`
	Suggestions []string `json:"suggestions"`
}

// SearchCatalog filters the catalog to names containing query
// (case-insensitive), keeping catalog order. An empty query returns the whole
// catalog. Without any containment hit, names whose similarity to the query
// reaches the configured threshold are suggested, best first.
func (s *Service) SearchCatalog(query string) CatalogSearch {
	result := CatalogSearch{
		Query:       strings.TrimSpace(query),
		Matches:     []string{},
		Suggestions: []string{},
	}
	if result.Query == "" {
		result.Matches = s.Catalog()
		return result
	}

	key := Normalize(query)
	type scored struct {
		name  string
		score float64
	}
	var candidates []scored
	for _, name := range s.catalog {
		nameKey := Normalize(name)
		if strings.Contains(nameKey, key) {
			result.Matches = append(result.Matches, name)
			continue
		}
		if score := similarity(key, nameKey); score >= s.threshold {
			candidates = append(candidates, scored{name: name, score: score})
		}
	}
	if len(result.Matches) > 0 {
		return result
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})
	for i, c := range candidates {
		if i == maxSuggestions {
			break
		}
		result.Suggestions = append(result.Suggestions, c.name)
	}
	return result
}

// similarity returns a 0.0–1.0 confidence score between two strings using
// Levenshtein distance: 1.0 - distance/max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	maxLen := len([]rune(a))
	if lb := len([]rune(b)); lb > maxLen {
		maxLen = lb
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
