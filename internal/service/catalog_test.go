package service

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
)

func TestSimilarity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		a, b    string
		wantMin float64
		wantMax float64
	}{
		{name: "exact match returns 1.0", a: "gelatin", b: "gelatin", wantMin: 1.0, wantMax: 1.0},
		{name: "close match gelatin/gelatine", a: "gelatin", b: "gelatine", wantMin: 0.8, wantMax: 1.0},
		{name: "distant match gelatin/barley", a: "gelatin", b: "barley", wantMin: 0.0, wantMax: 0.4},
		{name: "both empty strings returns 1.0", a: "", b: "", wantMin: 1.0, wantMax: 1.0},
		{name: "one empty string returns 0.0", a: "salt", b: "", wantMin: 0.0, wantMax: 0.01},
	}

	for _, tc := range tests {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			score := similarity(tc.a, tc.b)
			assert.GreaterOrEqual(t, score, tc.wantMin, "score %f below expected min %f", score, tc.wantMin)
			assert.LessOrEqual(t, score, tc.wantMax, "score %f above expected max %f", score, tc.wantMax)
		})
	}
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	good := filepath.Join(dir, "ingredients.json")
	require.NoError(t, os.WriteFile(good, []byte(`["Quinoa", " kale ", "Quinoa"]`), 0o600))
	bad := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"not": "a list"}`), 0o600))
	null := filepath.Join(dir, "null.json")
	require.NoError(t, os.WriteFile(null, []byte(`null`), 0o600))

	tests := []struct {
		name string
		path string
		want []string
	}{
		{name: "no path uses fallback", path: "", want: FallbackCatalog()},
		{name: "file is read as-is", path: good, want: []string{"Quinoa", " kale ", "Quinoa"}},
		{name: "missing file uses fallback", path: filepath.Join(dir, "missing.json"), want: FallbackCatalog()},
		{name: "wrong shape uses fallback", path: bad, want: FallbackCatalog()},
		{name: "null uses fallback", path: null, want: FallbackCatalog()},
	}

	for _, tc := range tests {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, LoadCatalog(tc.path))
		})
	}
}

func TestService_Catalog(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, Config{Catalog: []string{"zinc", "Almond", "almond", " "}})
	assert.Equal(t, []string{"Almond", "zinc"}, svc.Catalog())

	// Callers cannot mutate the service's copy.
	got := svc.Catalog()
	got[0] = "changed"
	assert.Equal(t, "Almond", svc.Catalog()[0])
}

func TestService_CatalogDefaultsToFallback(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, Config{})
	catalog := svc.Catalog()
	assert.Contains(t, catalog, "Gelatin")
	assert.Contains(t, catalog, "Soy Lecithin")
	// "Peanut" and "Peanuts" differ, so both survive.
	assert.Contains(t, catalog, "Peanut")
	assert.Contains(t, catalog, "Peanuts")
}

func TestService_ProductCatalog(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, Config{})
	product := openfoodfacts.ProductDetails{
		Ingredients: []openfoodfacts.Ingredient{
			ing("Sugar"),
			ing("wheat flour"),
			{ID: ptr("en:e322")},
			ing("sugar "),
			ing(""),
		},
	}
	assert.Equal(t, []string{"Sugar", "wheat flour"}, svc.ProductCatalog(product))
	assert.Equal(t, []string{}, svc.ProductCatalog(openfoodfacts.ProductDetails{}))
}

func TestService_SearchCatalog(t *testing.T) {
	t.Parallel()

	svc := New(nil, nil, Config{
		Catalog:          []string{"Soy", "Sunflower Lecithin", "Soy Lecithin", "Gelatin", "Palm Oil", "Palm Kernel Oil"},
		SuggestThreshold: 0.7,
	})

	t.Run("empty query returns whole catalog", func(t *testing.T) {
		t.Parallel()
		got := svc.SearchCatalog("  ")
		assert.Equal(t, svc.Catalog(), got.Matches)
		assert.Empty(t, got.Suggestions)
	})

	t.Run("containment keeps catalog order", func(t *testing.T) {
		t.Parallel()
		got := svc.SearchCatalog("LECITHIN")
		assert.Equal(t, []string{"Soy Lecithin", "Sunflower Lecithin"}, got.Matches)
		assert.Empty(t, got.Suggestions)
	})

	t.Run("misspelling gets suggestions", func(t *testing.T) {
		t.Parallel()
		got := svc.SearchCatalog("gelatine")
		assert.Empty(t, got.Matches)
		assert.Equal(t, []string{"Gelatin"}, got.Suggestions)
	})

	t.Run("nothing close", func(t *testing.T) {
		t.Parallel()
		got := svc.SearchCatalog("xylophone")
		assert.Empty(t, got.Matches)
		assert.Empty(t, got.Suggestions)
	})
}
