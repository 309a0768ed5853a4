package openfoodfacts

// Ingredient is one entry of a product's structured ingredient list. Either
// field may be absent in the upstream data.
type Ingredient struct {
	ID   *string `json:"id,omitempty"`
	Text *string `json:"text,omitempty"`
}

// HasText reports whether the ingredient carries display text.
func (i Ingredient) HasText() bool {
	return i.Text != nil
}

// ProductDetails is the subset of an Open Food Facts product the scanner uses.
type ProductDetails struct {
	ProductName     *string      `json:"product_name,omitempty"`
	IngredientsText *string      `json:"ingredients_text,omitempty"`
	Ingredients     []Ingredient `json:"ingredients"`
	ImageURL        *string      `json:"image_url,omitempty"`
}

// productResponse is the envelope returned by /api/v2/product/{code}.json.
type productResponse struct {
	Code    string          `json:"code"`
	Product *ProductDetails `json:"product"`
}
