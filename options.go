package fansi

// Option configures parsing and rendering.
type Option func(*config)

type config struct {
	styler Styler
	mode   ColorMode
	strict bool
	lead   rune
}

// defaultLead introduces markup occurrences.
const defaultLead = '#'

func newConfig(opts []Option) config {
	cfg := config{lead: defaultLead}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// effectiveStyler returns the configured styler, or a built-in ANSI
// styler in the configured color mode.
func (c config) effectiveStyler() Styler {
	if c.styler != nil {
		return c.styler
	}
	return NewANSIStyler(c.mode)
}

// WithStyler replaces the built-in ANSI styler. The styler's
// vocabulary drives modifier classification, so a custom styler can
// change the accepted names as well as the output format.
func WithStyler(s Styler) Option {
	return func(c *config) {
		c.styler = s
	}
}

// WithColor forces the built-in styler on or off, overriding its
// environment detection. Ignored when WithStyler is used.
func WithColor(enabled bool) Option {
	return func(c *config) {
		if enabled {
			c.mode = ColorAlways
		} else {
			c.mode = ColorNever
		}
	}
}

// WithStrictModifiers makes Render fail on modifier tokens outside
// the styler's vocabulary instead of skipping them.
func WithStrictModifiers(enabled bool) Option {
	return func(c *config) {
		c.strict = enabled
	}
}

// WithLead changes the markup lead character from the default '#'.
// Leads that collide with the brace grammar, such as '{' or '}',
// make scanning ambiguous and are best avoided.
func WithLead(lead rune) Option {
	return func(c *config) {
		c.lead = lead
	}
}
