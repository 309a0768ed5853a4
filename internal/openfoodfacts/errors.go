package openfoodfacts

import (
	"errors"
	"fmt"
)

// Kind classifies a failed lookup.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindUnavailable
	KindNetwork
	KindServer
	KindDecode
	KindNoData
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnavailable:
		return "unavailable"
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	case KindDecode:
		return "decode"
	case KindNoData:
		return "no_data"
	default:
		return "unknown"
	}
}

// Error is returned by Client.Fetch for every failed lookup.
type Error struct {
	Kind       Kind
	Barcode    string
	StatusCode int
	Err        error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindNotFound:
		return fmt.Sprintf("barcode not found: no product with barcode %q in database", e.Barcode)
	case KindUnavailable:
		return fmt.Sprintf("product not found: barcode %q exists but has no data available", e.Barcode)
	case KindNetwork:
		return fmt.Sprintf("network error: %v", e.Err)
	case KindServer:
		return fmt.Sprintf("server error: HTTP %d", e.StatusCode)
	case KindDecode:
		return fmt.Sprintf("failed to process data: %v", e.Err)
	case KindNoData:
		return "no data received from server"
	default:
		return "product lookup failed"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Retryable reports whether a user-initiated retry makes sense. Only a
// missing barcode qualifies; nothing is ever retried automatically.
func (e *Error) Retryable() bool {
	return e.Kind == KindNotFound
}

// KindOf returns the Kind of err, or 0 when err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
