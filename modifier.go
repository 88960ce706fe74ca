package fansi

import "errors"

// ErrUnknownModifier reports a modifier token outside the styler's
// vocabulary. Render returns it (wrapped) only when strict modifier
// checking is enabled; the default policy skips unknown tokens.
var ErrUnknownModifier = errors.New("unknown modifier")

// ModifierKind identifies the vocabulary category a modifier token
// belongs to.
type ModifierKind uint8

const (
	// ModifierUnknown marks a token outside every category.
	ModifierUnknown ModifierKind = iota
	// ModifierColor is a foreground color name.
	ModifierColor
	// ModifierHighlight is a background color name.
	ModifierHighlight
	// ModifierAttribute is a text attribute name.
	ModifierAttribute
)

// String returns a stable lowercase name for the kind.
func (k ModifierKind) String() string {
	switch k {
	case ModifierColor:
		return "color"
	case ModifierHighlight:
		return "highlight"
	case ModifierAttribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// Modifier is a classified modifier token.
type Modifier struct {
	Kind ModifierKind
	Name string
}

// Vocabulary is the set of modifier names a styler understands, split
// into colors, highlights and attributes. The zero value matches
// nothing; build one with NewVocabulary.
type Vocabulary struct {
	colors     []string
	highlights []string
	attributes []string

	colorSet     map[string]struct{}
	highlightSet map[string]struct{}
	attributeSet map[string]struct{}
}

// NewVocabulary builds a Vocabulary from the given name lists. List
// order is preserved by the accessors; duplicates within a list are
// dropped. A name present in more than one list classifies by the
// first category in color, highlight, attribute order.
func NewVocabulary(colors, highlights, attributes []string) Vocabulary {
	v := Vocabulary{
		colorSet:     make(map[string]struct{}, len(colors)),
		highlightSet: make(map[string]struct{}, len(highlights)),
		attributeSet: make(map[string]struct{}, len(attributes)),
	}
	for _, name := range colors {
		if _, dup := v.colorSet[name]; dup {
			continue
		}
		v.colorSet[name] = struct{}{}
		v.colors = append(v.colors, name)
	}
	for _, name := range highlights {
		if _, dup := v.highlightSet[name]; dup {
			continue
		}
		v.highlightSet[name] = struct{}{}
		v.highlights = append(v.highlights, name)
	}
	for _, name := range attributes {
		if _, dup := v.attributeSet[name]; dup {
			continue
		}
		v.attributeSet[name] = struct{}{}
		v.attributes = append(v.attributes, name)
	}
	return v
}

// Classify resolves a single modifier token against the vocabulary.
func (v Vocabulary) Classify(token string) Modifier {
	if _, ok := v.colorSet[token]; ok {
		return Modifier{Kind: ModifierColor, Name: token}
	}
	if _, ok := v.highlightSet[token]; ok {
		return Modifier{Kind: ModifierHighlight, Name: token}
	}
	if _, ok := v.attributeSet[token]; ok {
		return Modifier{Kind: ModifierAttribute, Name: token}
	}
	return Modifier{Kind: ModifierUnknown, Name: token}
}

// Colors returns the color names in vocabulary order.
func (v Vocabulary) Colors() []string {
	return append([]string(nil), v.colors...)
}

// Highlights returns the highlight names in vocabulary order.
func (v Vocabulary) Highlights() []string {
	return append([]string(nil), v.highlights...)
}

// Attributes returns the attribute names in vocabulary order.
func (v Vocabulary) Attributes() []string {
	return append([]string(nil), v.attributes...)
}

// resolvedStyle is the flattened style of one segment's modifier list.
type resolvedStyle struct {
	color      string
	highlight  string
	attributes []string
	unknown    []string
}

// resolveModifiers folds a segment's modifier tokens into a style.
// The last color token and the last highlight token win. Attributes
// keep first-seen order with repeats dropped. Unknown tokens are
// collected so the caller can apply its skip-or-fail policy.
func resolveModifiers(v Vocabulary, tokens []string) resolvedStyle {
	var style resolvedStyle
	for _, token := range tokens {
		switch m := v.Classify(token); m.Kind {
		case ModifierColor:
			style.color = m.Name
		case ModifierHighlight:
			style.highlight = m.Name
		case ModifierAttribute:
			if containsString(style.attributes, m.Name) {
				continue
			}
			style.attributes = append(style.attributes, m.Name)
		default:
			style.unknown = append(style.unknown, m.Name)
		}
	}
	return style
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
