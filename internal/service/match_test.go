package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
)

func ptr(s string) *string { return &s }

func ing(text string) openfoodfacts.Ingredient {
	return openfoodfacts.Ingredient{Text: ptr(text)}
}

func TestMatchBlacklist(t *testing.T) {
	t.Parallel()

	noText := openfoodfacts.Ingredient{ID: ptr("en:e322")}

	tests := []struct {
		name        string
		ingredients []openfoodfacts.Ingredient
		blacklist   []string
		want        []openfoodfacts.Ingredient
	}{
		{
			name:        "substring match is case-insensitive",
			ingredients: []openfoodfacts.Ingredient{ing("Soy Lecithin"), ing("Water")},
			blacklist:   []string{"soy"},
			want:        []openfoodfacts.Ingredient{ing("Soy Lecithin")},
		},
		{
			name:        "one term matches several ingredients",
			ingredients: []openfoodfacts.Ingredient{ing("Soy Lecithin"), ing("Sugar"), ing("Soybean Oil")},
			blacklist:   []string{"Soy"},
			want:        []openfoodfacts.Ingredient{ing("Soy Lecithin"), ing("Soybean Oil")},
		},
		{
			name:        "original order is preserved across terms",
			ingredients: []openfoodfacts.Ingredient{ing("gelatine"), ing("salt"), ing("PALM OIL")},
			blacklist:   []string{"Palm Oil", "Gelatin"},
			want:        []openfoodfacts.Ingredient{ing("gelatine"), ing("PALM OIL")},
		},
		{
			name:        "blacklist term must be inside the text, not the reverse",
			ingredients: []openfoodfacts.Ingredient{ing("Oil")},
			blacklist:   []string{"Palm Oil"},
			want:        []openfoodfacts.Ingredient{},
		},
		{
			name:        "empty blacklist matches nothing",
			ingredients: []openfoodfacts.Ingredient{ing("Sugar"), ing("Salt")},
			blacklist:   nil,
			want:        []openfoodfacts.Ingredient{},
		},
		{
			name:        "blank terms never match",
			ingredients: []openfoodfacts.Ingredient{ing("Sugar")},
			blacklist:   []string{"", "  "},
			want:        []openfoodfacts.Ingredient{},
		},
		{
			name:        "ingredients without text are excluded",
			ingredients: []openfoodfacts.Ingredient{noText, ing("Milk")},
			blacklist:   []string{"e322", "milk"},
			want:        []openfoodfacts.Ingredient{ing("Milk")},
		},
		{
			name:        "no ingredients",
			ingredients: nil,
			blacklist:   []string{"soy"},
			want:        []openfoodfacts.Ingredient{},
		},
	}

	for _, tc := range tests {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := MatchBlacklist(tc.ingredients, tc.blacklist)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	v := Check([]openfoodfacts.Ingredient{ing("Soy Lecithin"), ing("Water")}, []string{"soy"})
	assert.True(t, v.Unsafe)
	assert.Equal(t, []openfoodfacts.Ingredient{ing("Soy Lecithin")}, v.Matches)

	v = Check([]openfoodfacts.Ingredient{ing("Soy Lecithin"), ing("Water")}, []string{})
	assert.False(t, v.Unsafe)
	assert.Empty(t, v.Matches)
}

func TestMatchedNames(t *testing.T) {
	t.Parallel()

	got := MatchedNames([]openfoodfacts.Ingredient{ing("Sugar"), {ID: ptr("x")}, ing("Salt")})
	assert.Equal(t, []string{"Sugar", "Salt"}, got)
	assert.Equal(t, []string{}, MatchedNames(nil))
}
