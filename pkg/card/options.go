package card

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/jasonlovesdoggo/gitsocial/pkg/errors"
	"github.com/jasonlovesdoggo/gitsocial/pkg/palette"
)

// Default card dimensions in pixels.
const (
	DefaultWidth  = 1200
	DefaultHeight = 600
)

// StyleID identifies a layout generator.
type StyleID string

// Known styles.
const (
	StyleClassic   StyleID = "classic"
	StyleCompact   StyleID = "compact"
	StyleDetailed  StyleID = "detailed"
	StyleDashboard StyleID = "dashboard"
	StyleMinimal   StyleID = "minimal"
	StyleModern    StyleID = "modern"
)

// Styles returns every known style in display order.
func Styles() []StyleID {
	return []StyleID{StyleClassic, StyleCompact, StyleDetailed, StyleDashboard, StyleMinimal, StyleModern}
}

// Known reports whether s is one of [Styles].
func (s StyleID) Known() bool {
	switch s {
	case StyleClassic, StyleCompact, StyleDetailed, StyleDashboard, StyleMinimal, StyleModern:
		return true
	}
	return false
}

// Title returns the display label, e.g. "Classic".
func (s StyleID) Title() string {
	return cases.Title(language.English).String(string(s))
}

// ParseStyle converts a user-supplied string into a StyleID.
func ParseStyle(s string) (StyleID, error) {
	id := StyleID(strings.ToLower(strings.TrimSpace(s)))
	if !id.Known() {
		return "", errors.New(errors.ErrCodeUnknownStyle, "unknown style %q (must be one of: %s)", s, styleList())
	}
	return id, nil
}

// ParseStyles parses a comma-separated style list. An empty string yields all styles.
func ParseStyles(s string) ([]StyleID, error) {
	if strings.TrimSpace(s) == "" {
		return Styles(), nil
	}
	var out []StyleID
	seen := make(map[StyleID]bool)
	for _, part := range strings.Split(s, ",") {
		id, err := ParseStyle(part)
		if err != nil {
			return nil, err
		}
		if !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}
	return out, nil
}

func styleList() string {
	names := make([]string, 0, len(Styles()))
	for _, s := range Styles() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}

// RenderOptions configures one render call.
type RenderOptions struct {
	Theme  palette.ThemeID `json:"theme"`
	Style  StyleID         `json:"style"`
	Width  int             `json:"width,omitempty"`
	Height int             `json:"height,omitempty"`
}

// Normalized returns a copy with non-positive dimensions replaced by the defaults.
func (o RenderOptions) Normalized() RenderOptions {
	if o.Width <= 0 {
		o.Width = DefaultWidth
	}
	if o.Height <= 0 {
		o.Height = DefaultHeight
	}
	return o
}
