package fansi

import (
	"errors"
	"os"
	"testing"

	"github.com/fatih/color"
)

func TestANSIStylerSequences(t *testing.T) {
	styler := NewANSIStyler(ColorAlways)
	tests := []struct {
		name       string
		text       string
		color      string
		highlight  string
		attributes []string
		want       string
	}{
		{
			name:  "color only",
			text:  "x",
			color: "red",
			want:  "\x1b[31mx\x1b[0m",
		},
		{
			name:      "highlight only",
			text:      "x",
			highlight: "on_cyan",
			want:      "\x1b[46mx\x1b[0m",
		},
		{
			name:       "attribute only",
			text:       "x",
			attributes: []string{"bold"},
			want:       "\x1b[1mx\x1b[0m",
		},
		{
			name:       "all categories",
			text:       "x",
			color:      "green",
			highlight:  "on_white",
			attributes: []string{"underline", "blink"},
			want:       "\x1b[32;47;4;5mx\x1b[0m",
		},
		{
			name: "nothing set",
			text: "x",
			want: "x",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := styler.Style(tt.text, tt.color, tt.highlight, tt.attributes)
			if err != nil {
				t.Fatalf("Style: %v", err)
			}
			if got != tt.want {
				t.Fatalf("Style = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestANSIStylerFullPalette(t *testing.T) {
	styler := NewANSIStyler(ColorAlways)
	colorCodes := map[string]string{
		"grey":    "30",
		"red":     "31",
		"green":   "32",
		"yellow":  "33",
		"blue":    "34",
		"magenta": "35",
		"cyan":    "36",
		"white":   "37",
	}
	for name, code := range colorCodes {
		got, err := styler.Style("x", name, "", nil)
		if err != nil {
			t.Fatalf("Style(%q): %v", name, err)
		}
		want := "\x1b[" + code + "mx\x1b[0m"
		if got != want {
			t.Fatalf("Style(%q) = %q, want %q", name, got, want)
		}
	}
	attributeCodes := map[string]string{
		"bold":      "1",
		"dark":      "2",
		"underline": "4",
		"blink":     "5",
		"reverse":   "7",
		"concealed": "8",
	}
	for name, code := range attributeCodes {
		got, err := styler.Style("x", "", "", []string{name})
		if err != nil {
			t.Fatalf("Style(%q): %v", name, err)
		}
		want := "\x1b[" + code + "mx\x1b[0m"
		if got != want {
			t.Fatalf("Style(%q) = %q, want %q", name, got, want)
		}
	}
}

func TestANSIStylerUnknownNames(t *testing.T) {
	styler := NewANSIStyler(ColorAlways)
	if _, err := styler.Style("x", "neon", "", nil); !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle for color, got %v", err)
	}
	if _, err := styler.Style("x", "", "on_neon", nil); !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle for highlight, got %v", err)
	}
	if _, err := styler.Style("x", "", "", []string{"wiggle"}); !errors.Is(err, ErrUnknownStyle) {
		t.Fatalf("expected ErrUnknownStyle for attribute, got %v", err)
	}
}

func TestANSIStylerNeverMode(t *testing.T) {
	styler := NewANSIStyler(ColorNever)
	got, err := styler.Style("x", "red", "on_cyan", []string{"bold"})
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if got != "x" {
		t.Fatalf("Style = %q, want plain text", got)
	}
}

func TestANSIStylerAutoModeEmitsColor(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = noColor })

	// Setenv registers the restore; the variable must be absent here.
	t.Setenv("ANSI_COLORS_DISABLED", "1")
	os.Unsetenv("ANSI_COLORS_DISABLED")

	styler := NewANSIStyler(ColorAuto)
	got, err := styler.Style("x", "red", "", nil)
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if got != "\x1b[31mx\x1b[0m" {
		t.Fatalf("Style = %q, want escaped output", got)
	}
}

func TestANSIStylerEnvDisablesAuto(t *testing.T) {
	// Pin the library's own detection open so plain output can only
	// come from the variable check.
	noColor := color.NoColor
	color.NoColor = false
	t.Cleanup(func() { color.NoColor = noColor })

	t.Setenv("ANSI_COLORS_DISABLED", "")
	styler := NewANSIStyler(ColorAuto)
	got, err := styler.Style("x", "red", "", nil)
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if got != "x" {
		t.Fatalf("Style = %q, want plain text", got)
	}
}

func TestANSIStylerAlwaysIgnoresEnv(t *testing.T) {
	t.Setenv("ANSI_COLORS_DISABLED", "1")
	styler := NewANSIStyler(ColorAlways)
	got, err := styler.Style("x", "red", "", nil)
	if err != nil {
		t.Fatalf("Style: %v", err)
	}
	if got != "\x1b[31mx\x1b[0m" {
		t.Fatalf("Style = %q, want escaped output", got)
	}
}

func TestANSIStylerVocabularySize(t *testing.T) {
	vocab := NewANSIStyler(ColorAuto).Vocabulary()
	if got := len(vocab.Colors()); got != 8 {
		t.Fatalf("len(Colors()) = %d, want 8", got)
	}
	if got := len(vocab.Highlights()); got != 8 {
		t.Fatalf("len(Highlights()) = %d, want 8", got)
	}
	if got := len(vocab.Attributes()); got != 6 {
		t.Fatalf("len(Attributes()) = %d, want 6", got)
	}
}
