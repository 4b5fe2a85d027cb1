package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// ColorMode decides when escapes are emitted.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

var colorMode = ColorAuto

// SetColorMode accepts auto, always or never; anything else means auto.
func SetColorMode(mode string) {
	switch ColorMode(strings.ToLower(mode)) {
	case ColorAlways:
		colorMode = ColorAlways
	case ColorNever:
		colorMode = ColorNever
	default:
		colorMode = ColorAuto
	}
}

func isTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ColorDisabled reports whether output must stay plain regardless of the
// terminal: color mode never, or a theme without colors.
func ColorDisabled() bool {
	return colorMode == ColorNever || current.NoColor
}

// C wraps s in color when the color mode and terminal allow it.
func C(color, s string) string {
	if color == "" || ColorDisabled() {
		return s
	}
	if colorMode == ColorAlways || isTTY() {
		return color + s + reset
	}
	return s
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(fgRed, symCross+" "+msg)) }

// Hint prints a muted follow-up line, usually after Fail.
func Hint(w io.Writer, msg string) { fmt.Fprintln(w, C(fgGray, "Hint: "+msg)) }
