package deeplink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Link
	}{
		{name: "home", input: "notinmybreakfast://home", want: Link{Kind: Home}},
		{name: "no host is home", input: "notinmybreakfast:", want: Link{Kind: Home}},
		{name: "scan with barcode", input: "notinmybreakfast://scan?barcode=3017620422003", want: Link{Kind: Scan, Barcode: "3017620422003"}},
		{name: "host is case-insensitive", input: "notinmybreakfast://SCAN?barcode=42", want: Link{Kind: Scan, Barcode: "42"}},
		{name: "scan without barcode", input: "notinmybreakfast://scan", want: Link{Kind: Invalid}},
		{name: "scan with empty barcode", input: "notinmybreakfast://scan?barcode=", want: Link{Kind: Invalid}},
		{name: "blacklist", input: "notinmybreakfast://blacklist", want: Link{Kind: Blacklist}},
		{name: "history", input: "notinmybreakfast://history", want: Link{Kind: History}},
		{name: "unknown host", input: "notinmybreakfast://settings", want: Link{Kind: Invalid}},
		{name: "unparseable", input: "%zz://scan", want: Link{Kind: Invalid}},
	}

	for _, tc := range tests {

		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Parse(tc.input))
		})
	}
}

func TestLink_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "notinmybreakfast://home", Link{Kind: Home}.String())
	assert.Equal(t, "notinmybreakfast://history", Link{Kind: History}.String())
	assert.Equal(t, "notinmybreakfast://scan?barcode=12345", ScanLink("12345").String())
	assert.Equal(t, "", Link{Kind: Invalid}.String())

	// Rendered links parse back to themselves.
	for _, l := range []Link{{Kind: Home}, {Kind: Blacklist}, {Kind: History}, ScanLink("0001")} {
		assert.Equal(t, l, Parse(l.String()))
	}
}
