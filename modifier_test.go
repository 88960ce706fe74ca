package fansi

import (
	"reflect"
	"testing"
)

func TestClassifyTermcolorNames(t *testing.T) {
	vocab := NewANSIStyler(ColorAuto).Vocabulary()
	cases := map[string]ModifierKind{
		"grey":      ModifierColor,
		"red":       ModifierColor,
		"white":     ModifierColor,
		"on_grey":   ModifierHighlight,
		"on_cyan":   ModifierHighlight,
		"bold":      ModifierAttribute,
		"dark":      ModifierAttribute,
		"concealed": ModifierAttribute,
		"sparkly":   ModifierUnknown,
		"RED":       ModifierUnknown,
		"on_red ":   ModifierUnknown,
		"":          ModifierUnknown,
	}
	for token, want := range cases {
		got := vocab.Classify(token)
		if got.Kind != want {
			t.Fatalf("Classify(%q).Kind = %v, want %v", token, got.Kind, want)
		}
		if got.Name != token {
			t.Fatalf("Classify(%q).Name = %q", token, got.Name)
		}
	}
}

func TestVocabularyTermcolorNames(t *testing.T) {
	vocab := NewANSIStyler(ColorAuto).Vocabulary()
	wantColors := []string{"grey", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	if got := vocab.Colors(); !reflect.DeepEqual(got, wantColors) {
		t.Fatalf("Colors() = %v, want %v", got, wantColors)
	}
	wantHighlights := []string{"on_grey", "on_red", "on_green", "on_yellow", "on_blue", "on_magenta", "on_cyan", "on_white"}
	if got := vocab.Highlights(); !reflect.DeepEqual(got, wantHighlights) {
		t.Fatalf("Highlights() = %v, want %v", got, wantHighlights)
	}
	wantAttributes := []string{"bold", "dark", "underline", "blink", "reverse", "concealed"}
	if got := vocab.Attributes(); !reflect.DeepEqual(got, wantAttributes) {
		t.Fatalf("Attributes() = %v, want %v", got, wantAttributes)
	}
}

func TestNewVocabularyDropsDuplicates(t *testing.T) {
	vocab := NewVocabulary([]string{"a", "b", "a"}, []string{"x", "x"}, nil)
	if got := vocab.Colors(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("Colors() = %v", got)
	}
	if got := vocab.Highlights(); !reflect.DeepEqual(got, []string{"x"}) {
		t.Fatalf("Highlights() = %v", got)
	}
	if got := vocab.Attributes(); len(got) != 0 {
		t.Fatalf("Attributes() = %v, want empty", got)
	}
}

func TestNewVocabularyCategoryPrecedence(t *testing.T) {
	vocab := NewVocabulary([]string{"x"}, []string{"x"}, []string{"x"})
	if got := vocab.Classify("x"); got.Kind != ModifierColor {
		t.Fatalf("Classify(x).Kind = %v, want %v", got.Kind, ModifierColor)
	}
}

func TestZeroVocabularyMatchesNothing(t *testing.T) {
	var vocab Vocabulary
	if got := vocab.Classify("red"); got.Kind != ModifierUnknown {
		t.Fatalf("Classify(red).Kind = %v, want unknown", got.Kind)
	}
}

func TestResolveModifiersLastWins(t *testing.T) {
	vocab := NewANSIStyler(ColorAuto).Vocabulary()
	style := resolveModifiers(vocab, []string{"red", "on_red", "blue", "bold", "on_cyan", "bold", "dark"})
	if style.color != "blue" {
		t.Fatalf("color = %q, want blue", style.color)
	}
	if style.highlight != "on_cyan" {
		t.Fatalf("highlight = %q, want on_cyan", style.highlight)
	}
	if !reflect.DeepEqual(style.attributes, []string{"bold", "dark"}) {
		t.Fatalf("attributes = %v, want [bold dark]", style.attributes)
	}
	if len(style.unknown) != 0 {
		t.Fatalf("unknown = %v, want none", style.unknown)
	}
}

func TestResolveModifiersCollectsUnknown(t *testing.T) {
	vocab := NewANSIStyler(ColorAuto).Vocabulary()
	style := resolveModifiers(vocab, []string{"sparkly", "red", "glitter"})
	if style.color != "red" {
		t.Fatalf("color = %q, want red", style.color)
	}
	if !reflect.DeepEqual(style.unknown, []string{"sparkly", "glitter"}) {
		t.Fatalf("unknown = %v", style.unknown)
	}
}

func TestModifierKindString(t *testing.T) {
	cases := map[ModifierKind]string{
		ModifierColor:     "color",
		ModifierHighlight: "highlight",
		ModifierAttribute: "attribute",
		ModifierUnknown:   "unknown",
		ModifierKind(99):  "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Fatalf("ModifierKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
}
