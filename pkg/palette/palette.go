// Package palette maps theme identifiers to fixed-shape color palettes.
//
// Themes are the four Catppuccin flavors. The set is closed: [Lookup] and
// [ParseTheme] reject anything outside it with an UNKNOWN_THEME error rather
// than falling back to a default palette.
package palette

import (
	"image/color"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jasonlovesdoggo/gitsocial/pkg/errors"
)

// ThemeID identifies a palette.
type ThemeID string

// Known themes.
const (
	Latte     ThemeID = "latte"
	Frappe    ThemeID = "frappe"
	Macchiato ThemeID = "macchiato"
	Mocha     ThemeID = "mocha"
)

// DefaultTheme is used when no theme is configured.
const DefaultTheme = Mocha

// Palette is the full set of named colors for one theme.
type Palette struct {
	Name ThemeID

	Rosewater color.RGBA
	Flamingo  color.RGBA
	Pink      color.RGBA
	Mauve     color.RGBA
	Red       color.RGBA
	Maroon    color.RGBA
	Peach     color.RGBA
	Yellow    color.RGBA
	Green     color.RGBA
	Teal      color.RGBA
	Sky       color.RGBA
	Sapphire  color.RGBA
	Blue      color.RGBA
	Lavender  color.RGBA

	Text     color.RGBA
	Subtext1 color.RGBA
	Subtext0 color.RGBA
	Overlay2 color.RGBA
	Overlay1 color.RGBA
	Overlay0 color.RGBA
	Surface2 color.RGBA
	Surface1 color.RGBA
	Surface0 color.RGBA
	Base     color.RGBA
	Mantle   color.RGBA
	Crust    color.RGBA
}

// Themes returns every known theme in display order (lightest first).
func Themes() []ThemeID {
	return []ThemeID{Latte, Frappe, Macchiato, Mocha}
}

// Title returns the display name of a theme, e.g. "Catppuccin Mocha".
func (t ThemeID) Title() string {
	if t == "" {
		return ""
	}
	return "Catppuccin " + cases.Title(language.English).String(string(t))
}

// ParseTheme converts a user-supplied string into a ThemeID.
// Matching is case-insensitive.
func ParseTheme(s string) (ThemeID, error) {
	id := ThemeID(strings.ToLower(strings.TrimSpace(s)))
	if _, err := Lookup(id); err != nil {
		return "", err
	}
	return id, nil
}

// Lookup resolves a theme to its palette.
func Lookup(id ThemeID) (Palette, error) {
	switch id {
	case Latte:
		return latte, nil
	case Frappe:
		return frappe, nil
	case Macchiato:
		return macchiato, nil
	case Mocha:
		return mocha, nil
	default:
		return Palette{}, errors.New(errors.ErrCodeUnknownTheme, "unknown theme %q (must be one of: latte, frappe, macchiato, mocha)", id)
	}
}

// Hex formats c as "#rrggbb".
func Hex(c color.RGBA) string {
	const digits = "0123456789abcdef"
	b := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, v := range []uint8{c.R, c.G, c.B} {
		b[1+i*2] = digits[v>>4]
		b[2+i*2] = digits[v&0x0f]
	}
	return string(b)
}

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}
