package fansi

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"

	"pkt.systems/fansi/internal/palette"
)

// ErrUnknownStyle reports a style name outside the styler's palette.
// The built-in renderer classifies modifiers before styling, so this
// surfaces only when a Styler is called directly with bad names.
var ErrUnknownStyle = errors.New("unknown style name")

// Styler turns one text fragment plus resolved style names into a
// styled string. An empty color or highlight name means unset; with
// nothing set the fragment must come back unchanged. Implementations
// own the modifier vocabulary the renderer classifies against.
type Styler interface {
	Style(text, color, highlight string, attributes []string) (string, error)
	Vocabulary() Vocabulary
}

// ColorMode selects when the built-in styler emits ANSI sequences.
type ColorMode uint8

const (
	// ColorAuto emits ANSI unless the environment disables it.
	ColorAuto ColorMode = iota
	// ColorAlways emits ANSI unconditionally.
	ColorAlways
	// ColorNever suppresses all styling.
	ColorNever
)

// ANSIStyler renders fragments as 16-color SGR sequences using the
// classic termcolor vocabulary.
type ANSIStyler struct {
	mode ColorMode
}

// NewANSIStyler returns a styler in the given color mode.
func NewANSIStyler(mode ColorMode) *ANSIStyler {
	return &ANSIStyler{mode: mode}
}

var termcolorVocabulary = NewVocabulary(palette.Colors(), palette.Highlights(), palette.Attributes())

// Vocabulary returns the termcolor name sets.
func (s *ANSIStyler) Vocabulary() Vocabulary {
	return termcolorVocabulary
}

// Style wraps text in the SGR sequences named by colorName, highlight
// and attributes. With no names set the text is returned unchanged,
// whatever the color mode.
func (s *ANSIStyler) Style(text, colorName, highlight string, attributes []string) (string, error) {
	attrs := make([]color.Attribute, 0, len(attributes)+2)
	if colorName != "" {
		a, ok := palette.Color(colorName)
		if !ok {
			return "", fmt.Errorf("color %q: %w", colorName, ErrUnknownStyle)
		}
		attrs = append(attrs, a)
	}
	if highlight != "" {
		a, ok := palette.Highlight(highlight)
		if !ok {
			return "", fmt.Errorf("highlight %q: %w", highlight, ErrUnknownStyle)
		}
		attrs = append(attrs, a)
	}
	for _, name := range attributes {
		a, ok := palette.Attribute(name)
		if !ok {
			return "", fmt.Errorf("attribute %q: %w", name, ErrUnknownStyle)
		}
		attrs = append(attrs, a)
	}
	if len(attrs) == 0 {
		return text, nil
	}
	c := color.New(attrs...)
	switch s.mode {
	case ColorAlways:
		c.EnableColor()
	case ColorNever:
		c.DisableColor()
	default:
		if ansiDisabledByEnv() {
			c.DisableColor()
		}
	}
	return c.Sprint(text), nil
}

// ansiDisabledByEnv reports whether ANSI_COLORS_DISABLED is set.
// fatih/color already honors NO_COLOR and non-terminal stdout; this
// keeps the termcolor-era variable working too. Any value counts,
// including empty.
func ansiDisabledByEnv() bool {
	_, ok := os.LookupEnv("ANSI_COLORS_DISABLED")
	return ok
}
