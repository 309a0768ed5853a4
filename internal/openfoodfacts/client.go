package openfoodfacts

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxBodyBytes caps how much of a product response is read. Real product
// documents are well under 1 MiB.
const maxBodyBytes = 8 << 20

// Client fetches products from the Open Food Facts v2 API.
type Client struct {
	baseURL      string
	userAgent    string
	httpClient   *http.Client
	maxBodyBytes int64
}

// NewClient returns a Client for baseURL (e.g. https://world.openfoodfacts.net).
func NewClient(baseURL, userAgent string, timeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		userAgent:    userAgent,
		httpClient:   &http.Client{Timeout: timeout},
		maxBodyBytes: maxBodyBytes,
	}
}

// Fetch performs a single lookup for barcode. Every failure is an *Error.
func (c *Client) Fetch(ctx context.Context, barcode string) (ProductDetails, error) {
	u := fmt.Sprintf("%s/api/v2/product/%s.json", c.baseURL, url.PathEscape(barcode))
	slog.Debug("fetching product", "barcode", barcode, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return ProductDetails{}, &Error{Kind: KindNetwork, Barcode: barcode, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ProductDetails{}, &Error{Kind: KindNetwork, Barcode: barcode, Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ProductDetails{}, &Error{Kind: KindNotFound, Barcode: barcode, StatusCode: resp.StatusCode}
	case resp.StatusCode >= 400:
		return ProductDetails{}, &Error{Kind: KindServer, Barcode: barcode, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		return ProductDetails{}, &Error{Kind: KindNetwork, Barcode: barcode, Err: fmt.Errorf("read body: %w", err)}
	}
	if int64(len(body)) > c.maxBodyBytes {
		return ProductDetails{}, &Error{
			Kind:       KindDecode,
			Barcode:    barcode,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("response body exceeds %d bytes", c.maxBodyBytes),
		}
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return ProductDetails{}, &Error{Kind: KindNoData, Barcode: barcode, StatusCode: resp.StatusCode}
	}

	var pr productResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return ProductDetails{}, &Error{Kind: KindDecode, Barcode: barcode, Err: err}
	}
	if pr.Product == nil {
		return ProductDetails{}, &Error{Kind: KindUnavailable, Barcode: barcode, StatusCode: resp.StatusCode}
	}
	return *pr.Product, nil
}
