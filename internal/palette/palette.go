// Package palette maps the classic termcolor style names onto SGR
// attributes: eight foreground colors, eight highlight (background)
// colors, and six text attributes.
package palette

import "github.com/fatih/color"

var colors = map[string]color.Attribute{
	"grey":    color.FgBlack,
	"red":     color.FgRed,
	"green":   color.FgGreen,
	"yellow":  color.FgYellow,
	"blue":    color.FgBlue,
	"magenta": color.FgMagenta,
	"cyan":    color.FgCyan,
	"white":   color.FgWhite,
}

var highlights = map[string]color.Attribute{
	"on_grey":    color.BgBlack,
	"on_red":     color.BgRed,
	"on_green":   color.BgGreen,
	"on_yellow":  color.BgYellow,
	"on_blue":    color.BgBlue,
	"on_magenta": color.BgMagenta,
	"on_cyan":    color.BgCyan,
	"on_white":   color.BgWhite,
}

var attributes = map[string]color.Attribute{
	"bold":      color.Bold,
	"dark":      color.Faint,
	"underline": color.Underline,
	"blink":     color.BlinkSlow,
	"reverse":   color.ReverseVideo,
	"concealed": color.Concealed,
}

// Name lists in SGR code order.
var (
	colorNames     = []string{"grey", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	highlightNames = []string{"on_grey", "on_red", "on_green", "on_yellow", "on_blue", "on_magenta", "on_cyan", "on_white"}
	attributeNames = []string{"bold", "dark", "underline", "blink", "reverse", "concealed"}
)

// Color looks up a foreground color name.
func Color(name string) (color.Attribute, bool) {
	a, ok := colors[name]
	return a, ok
}

// Highlight looks up a background color name.
func Highlight(name string) (color.Attribute, bool) {
	a, ok := highlights[name]
	return a, ok
}

// Attribute looks up a text attribute name.
func Attribute(name string) (color.Attribute, bool) {
	a, ok := attributes[name]
	return a, ok
}

// Colors returns the foreground color names in SGR code order.
func Colors() []string {
	return append([]string(nil), colorNames...)
}

// Highlights returns the background color names in SGR code order.
func Highlights() []string {
	return append([]string(nil), highlightNames...)
}

// Attributes returns the text attribute names in SGR code order.
func Attributes() []string {
	return append([]string(nil), attributeNames...)
}
