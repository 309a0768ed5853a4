// Package deeplink parses and renders notinmybreakfast:// links.
package deeplink

import (
	"net/url"
	"strings"
)

const Scheme = "notinmybreakfast"

type Kind string

const (
	Home      Kind = "home"
	Scan      Kind = "scan"
	Blacklist Kind = "blacklist"
	History   Kind = "history"
	Invalid   Kind = "invalid"
)

type Link struct {
	Kind    Kind   `json:"kind"`
	Barcode string `json:"barcode,omitempty"`
}

// Parse never fails: unparseable input, an unknown host or a scan link
// without a barcode all yield an Invalid link. A link with no host is Home.
func Parse(raw string) Link {
	u, err := url.Parse(raw)
	if err != nil {
		return Link{Kind: Invalid}
	}
	if u.Host == "" {
		return Link{Kind: Home}
	}

	switch strings.ToLower(u.Host) {
	case "home":
		return Link{Kind: Home}
	case "scan":
		if barcode := u.Query().Get("barcode"); barcode != "" {
			return Link{Kind: Scan, Barcode: barcode}
		}
		return Link{Kind: Invalid}
	case "blacklist":
		return Link{Kind: Blacklist}
	case "history":
		return Link{Kind: History}
	default:
		return Link{Kind: Invalid}
	}
}

// ScanLink is shorthand for the scan link of barcode.
func ScanLink(barcode string) Link {
	return Link{Kind: Scan, Barcode: barcode}
}

// String renders the link; an Invalid link renders as "".
func (l Link) String() string {
	switch l.Kind {
	case Home, Blacklist, History:
		return Scheme + "://" + string(l.Kind)
	case Scan:
		return Scheme + "://scan?barcode=" + url.QueryEscape(l.Barcode)
	default:
		return ""
	}
}
