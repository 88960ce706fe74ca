package fansi

import (
	"fmt"
	"strings"
)

// Render resolves every markup occurrence in text and returns the
// line with each occurrence replaced by its styled fragment. Literal
// text between occurrences is preserved byte for byte.
//
// Each occurrence's modifiers resolve to at most one color, at most
// one highlight and a set of attributes; when a category repeats the
// last token wins. Unknown modifiers are skipped unless
// WithStrictModifiers is set, in which case Render fails with an
// error wrapping ErrUnknownModifier. Styler errors are returned to
// the caller unchanged.
//
// Render writes nothing itself; it only returns the styled string.
// It is safe for concurrent use.
func Render(text string, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	segs := scanSegments(text, cfg.lead)
	if len(segs) == 0 {
		return text, nil
	}
	styler := cfg.effectiveStyler()
	vocab := styler.Vocabulary()
	var b strings.Builder
	b.Grow(len(text) + len(segs)*16)
	last := 0
	for _, seg := range segs {
		b.WriteString(text[last:seg.Start])
		style := resolveModifiers(vocab, seg.Modifiers)
		if cfg.strict && len(style.unknown) > 0 {
			return "", fmt.Errorf("render %q: modifier %q: %w", seg.Text, style.unknown[0], ErrUnknownModifier)
		}
		styled, err := styler.Style(seg.Text, style.color, style.highlight, style.attributes)
		if err != nil {
			return "", err
		}
		b.WriteString(styled)
		last = seg.End
	}
	b.WriteString(text[last:])
	return b.String(), nil
}

// Strip returns text with every markup occurrence replaced by its
// literal text span: the raw line as it would read without styling.
// Strip never fails; modifiers are discarded without classification.
func Strip(text string, opts ...Option) string {
	cfg := newConfig(opts)
	segs := scanSegments(text, cfg.lead)
	if len(segs) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text))
	last := 0
	for _, seg := range segs {
		b.WriteString(text[last:seg.Start])
		b.WriteString(seg.Text)
		last = seg.End
	}
	b.WriteString(text[last:])
	return b.String()
}

// Join renders each fragment and concatenates the results in order,
// separated by sep. Fragments are rendered independently; markup
// cannot span a fragment boundary. The first render error aborts the
// join.
func Join(fragments []string, sep string, opts ...Option) (string, error) {
	if len(fragments) == 0 {
		return "", nil
	}
	var b strings.Builder
	for i, fragment := range fragments {
		if i > 0 {
			b.WriteString(sep)
		}
		rendered, err := Render(fragment, opts...)
		if err != nil {
			return "", fmt.Errorf("fragment %d: %w", i, err)
		}
		b.WriteString(rendered)
	}
	return b.String(), nil
}
