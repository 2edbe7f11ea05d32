package ui

import (
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Blue(a any) string {
	if DarkTheme {
		return pterm.LightBlue(a)
	}

	return pterm.Blue(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Hex renders text in a "#rrggbb" colour. Invalid colours leave the text
// unstyled.
func Hex(hex, text string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return text
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return text
	}

	rgb := pterm.NewRGB(uint8(v>>16), uint8(v>>8), uint8(v))

	return rgb.Sprint(text)
}
