package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/mwhite7112/woodpantry-scan/internal/db"
	"github.com/mwhite7112/woodpantry-scan/internal/events"
	"github.com/mwhite7112/woodpantry-scan/internal/openfoodfacts"
)

// DefaultSuggestThreshold is used when Config.SuggestThreshold is zero.
const DefaultSuggestThreshold = 0.6

var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrInvalidBarcode  = errors.New("invalid barcode")
	ErrNotFound        = errors.New("not found")
)

// ProductLookup fetches product details for a barcode. Implementations make
// one attempt per call.
type ProductLookup interface {
	Fetch(ctx context.Context, barcode string) (openfoodfacts.ProductDetails, error)
}

// Publisher is notified after blacklist or history changes are committed.
type Publisher interface {
	Publish(kind events.Kind)
}

type nopPublisher struct{}

func (nopPublisher) Publish(events.Kind) {}

// Config carries the optional collaborators and tunables of a Service.
type Config struct {
	// Catalog is the raw reference list; it is normalized by New. Nil selects
	// the built-in fallback list.
	Catalog          []string
	Locale           language.Tag
	// SuggestThreshold is the minimum similarity for catalog suggestions,
	// in (0, 1]. Zero means unset and selects DefaultSuggestThreshold.
	SuggestThreshold float64
	Publisher        Publisher
}

// Service holds all dependencies for the scan service layer.
type Service struct {
	store     db.Store
	lookup    ProductLookup
	publisher Publisher
	locale    language.Tag
	catalog   []string
	threshold float64

	now   func() time.Time
	newID func() uuid.UUID

	// mu serialises writes that depend on positions read in the same
	// transaction: blacklist order and history indices.
	mu sync.Mutex
}

// New creates a new Service.
func New(store db.Store, lookup ProductLookup, cfg Config) *Service {
	locale := cfg.Locale
	if locale == language.Und {
		locale = language.English
	}
	raw := cfg.Catalog
	if raw == nil {
		raw = FallbackCatalog()
	}
	threshold := cfg.SuggestThreshold
	if threshold == 0 {
		threshold = DefaultSuggestThreshold
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &Service{
		store:     store,
		lookup:    lookup,
		publisher: publisher,
		locale:    locale,
		catalog:   NormalizeCatalog(raw, locale),
		threshold: threshold,
		now:       time.Now,
		newID:     uuid.New,
	}
}
