package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
)

const maxBarcodeLen = 64

// Inspection is a looked-up product checked against the current blacklist.
type Inspection struct {
	Barcode string                       `json:"barcode"`
	Product openfoodfacts.ProductDetails `json:"product"`
	Verdict
	// Catalog holds the product's own ingredient names, normalized, for
	// picking blacklist entries straight from a scan.
	Catalog []string `json:"catalog"`
}

// ScanResult is an Inspection plus the history record it produced.
type ScanResult struct {
	Inspection
	Record db.HistoryRecord `json:"record"`
}

// ValidateBarcode trims barcode and checks that it is a non-empty run of
// digits.
func ValidateBarcode(barcode string) (string, error) {
	trimmed := strings.TrimSpace(barcode)
	if trimmed == "" || len(trimmed) > maxBarcodeLen {
		return "", fmt.Errorf("%w: %q", ErrInvalidBarcode, barcode)
	}
	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("%w: %q", ErrInvalidBarcode, barcode)
		}
	}
	return trimmed, nil
}

// Inspect looks barcode up and checks it against the blacklist without
// recording anything. Lookup failures are returned as they come from the
// ProductLookup.
func (s *Service) Inspect(ctx context.Context, barcode string) (Inspection, error) {
	code, err := ValidateBarcode(barcode)
	if err != nil {
		return Inspection{}, err
	}

	product, err := s.lookup.Fetch(ctx, code)
	if err != nil {
		return Inspection{}, err
	}
	if product.Ingredients == nil {
		product.Ingredients = []openfoodfacts.Ingredient{}
	}

	blacklist, err := s.BlacklistNames(ctx)
	if err != nil {
		return Inspection{}, err
	}

	return Inspection{
		Barcode: code,
		Product: product,
		Verdict: Check(product.Ingredients, blacklist),
		Catalog: s.ProductCatalog(product),
	}, nil
}

// Scan inspects barcode and records the outcome in the history. Nothing is
// recorded when the lookup fails.
func (s *Service) Scan(ctx context.Context, barcode string) (ScanResult, error) {
	inspection, err := s.Inspect(ctx, barcode)
	if err != nil {
		return ScanResult{}, err
	}
	record, err := s.RecordScan(ctx, inspection.Barcode, inspection.Product.ProductName, inspection.Matches)
	if err != nil {
		return ScanResult{}, err
	}
	return ScanResult{Inspection: inspection, Record: record}, nil
}
