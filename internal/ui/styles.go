package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

func PrintL1Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf(" %s   ", text)

	style.Println(paddedText)
}

func PrintL2Title(format string, a ...interface{}) {
	style := pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	text := fmt.Sprintf(format, a...)

	paddedText := fmt.Sprintf("# %s   ", text)

	style.Println(paddedText)
}

// Separator prints a green rule between sections of output.
func Separator() {
	pterm.Println(pterm.Green("----------------------------------------"))
}

// Deposit and Expense colour amounts the same way in every table.
func Deposit(s string) string { return pterm.Green(s) }
func Expense(s string) string { return pterm.Red(s) }

// Signed colours s green when n is not negative and red otherwise.
func Signed(n int64, s string) string {
	if n < 0 {
		return Expense(s)
	}
	return Deposit(s)
}

// HexText colours s with a "#rrggbb" colour. Malformed colours leave s unstyled.
func HexText(hex, s string) string {
	rgb, ok := parseHex(hex)
	if !ok {
		return s
	}
	return rgb.Sprint(s)
}

func parseHex(hex string) (pterm.RGB, bool) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 {
		return pterm.RGB{}, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return pterm.RGB{}, false
	}
	return pterm.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v)), true
}
