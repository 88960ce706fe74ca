package fansi

import "strings"

// Segment is one markup occurrence found in the input: a lead
// character, a braced text span, then zero or more braced modifier
// tokens, with no gaps anywhere in between.
type Segment struct {
	// Text is the literal content of the text span.
	Text string
	// Modifiers are the raw modifier tokens in source order,
	// unclassified and unvalidated.
	Modifiers []string
	// Start and End are byte offsets into the input delimiting the
	// whole occurrence, lead included, End exclusive.
	Start int
	End   int
}

// Segments scans text and returns every markup occurrence in source
// order. Malformed markup is not reported; it simply never becomes a
// segment and stays literal text. Options other than WithLead are
// ignored.
func Segments(text string, opts ...Option) []Segment {
	cfg := newConfig(opts)
	return scanSegments(text, cfg.lead)
}

// scanSegments finds every lead+braces occurrence in s. A brace group
// matches the shortest {...} with at least one character inside and no
// newline; an occurrence needs the text group immediately after the
// lead and extends over every immediately following modifier group.
func scanSegments(s string, lead rune) []Segment {
	marker := string(lead) + "{"
	var segs []Segment
	i := 0
	for {
		rel := strings.Index(s[i:], marker)
		if rel < 0 {
			return segs
		}
		start := i + rel
		text, next, ok := braceGroup(s, start+len(marker)-1)
		if !ok {
			// No text span here; the lead stays literal.
			i = start + 1
			continue
		}
		seg := Segment{Text: text, Start: start}
		for {
			token, after, more := braceGroup(s, next)
			if !more {
				break
			}
			seg.Modifiers = append(seg.Modifiers, token)
			next = after
		}
		seg.End = next
		segs = append(segs, seg)
		i = next
	}
}

// braceGroup parses one {content} group whose opening brace sits at
// open. It returns the content and the offset one past the closing
// brace. Empty groups do not match, and a group cannot span a newline
// or run past the end of input.
func braceGroup(s string, open int) (content string, end int, ok bool) {
	if open < 0 || open >= len(s) || s[open] != '{' {
		return "", 0, false
	}
	for j := open + 1; j < len(s); j++ {
		switch s[j] {
		case '}':
			if j == open+1 {
				return "", 0, false
			}
			return s[open+1 : j], j + 1, true
		case '\n':
			return "", 0, false
		}
	}
	return "", 0, false
}
