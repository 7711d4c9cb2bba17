package ui

import (
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestParseHex(t *testing.T) {
	rgb, ok := parseHex("#dc2626")
	assert.True(t, ok)
	assert.Equal(t, pterm.NewRGB(0xdc, 0x26, 0x26), rgb)

	rgb, ok = parseHex("2563EB")
	assert.True(t, ok)
	assert.Equal(t, pterm.NewRGB(0x25, 0x63, 0xeb), rgb)

	for _, bad := range []string{"", "#fff", "#zzzzzz", "#12345678"} {
		_, ok := parseHex(bad)
		assert.False(t, ok, bad)
	}
}

func TestHexText_Malformed(t *testing.T) {
	assert.Equal(t, "text", HexText("nope", "text"))
}
