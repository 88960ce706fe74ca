package fansi

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	// DefaultPrompt prefixes status lines written by ShowStatus.
	DefaultPrompt = ">>"
	// defaultClearWidth is how many columns ClearLine blanks when no
	// width is configured.
	defaultClearWidth = 79

	statusTail = "…"
)

// Console binds the renderer to a writer and adds line-oriented
// conveniences: styled line output, status lines with a prompt and a
// bounded history buffer, and in-place line clearing.
//
// A Console is not safe for concurrent use.
type Console struct {
	w          io.Writer
	prompt     string
	width      int
	bufferSize int
	buffer     []string
	renderOpts []Option
}

// ConsoleOption configures a Console.
type ConsoleOption func(*Console)

// WithPrompt sets the status line prompt. The default is ">>".
func WithPrompt(prompt string) ConsoleOption {
	return func(c *Console) {
		c.prompt = prompt
	}
}

// WithBufferSize bounds the status history buffer. When the bound is
// exceeded the oldest line is dropped. Zero, the default, disables
// buffering entirely.
func WithBufferSize(n int) ConsoleOption {
	return func(c *Console) {
		if n > 0 {
			c.bufferSize = n
		}
	}
}

// WithWidth tells the Console the terminal width. Status lines longer
// than the width are truncated with an ellipsis, and ClearLine blanks
// exactly width columns. Zero, the default, leaves lines unclamped.
func WithWidth(n int) ConsoleOption {
	return func(c *Console) {
		if n > 0 {
			c.width = n
		}
	}
}

// WithRenderOptions sets the Options applied to every render the
// Console performs.
func WithRenderOptions(opts ...Option) ConsoleOption {
	return func(c *Console) {
		c.renderOpts = opts
	}
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{w: w, prompt: DefaultPrompt}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// WriteLine renders text and writes the styled line followed by a
// newline. It returns the raw line, markup stripped, so callers can
// log or compare what was shown without the escape sequences.
func (c *Console) WriteLine(text string) (string, error) {
	styled, err := Render(text, c.renderOpts...)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(c.w, styled+"\n"); err != nil {
		return "", fmt.Errorf("write line: %w", err)
	}
	return Strip(text, c.renderOpts...), nil
}

// Write renders text and writes the styled fragment without a
// trailing newline. It returns the raw fragment.
func (c *Console) Write(text string) (string, error) {
	styled, err := Render(text, c.renderOpts...)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(c.w, styled); err != nil {
		return "", fmt.Errorf("write: %w", err)
	}
	return Strip(text, c.renderOpts...), nil
}

// WriteJoined renders the fragments, joins them with sep and writes
// the result followed by a newline. It returns the raw joined line.
func (c *Console) WriteJoined(sep string, fragments ...string) (string, error) {
	styled, err := Join(fragments, sep, c.renderOpts...)
	if err != nil {
		return "", err
	}
	if _, err := io.WriteString(c.w, styled+"\n"); err != nil {
		return "", fmt.Errorf("write joined: %w", err)
	}
	raw := make([]string, len(fragments))
	for i, fragment := range fragments {
		raw[i] = Strip(fragment, c.renderOpts...)
	}
	return strings.Join(raw, sep), nil
}

// ShowStatus renders "prompt status" and writes it as one line,
// recording the raw line in the status buffer. With a configured
// width the styled line is truncated, escape sequences intact, so it
// occupies a single terminal row.
func (c *Console) ShowStatus(status string) error {
	line := c.prompt + " " + status
	styled, err := Render(line, c.renderOpts...)
	if err != nil {
		return err
	}
	if c.width > 0 && ansi.PrintableRuneWidth(styled) > c.width {
		styled = truncate.StringWithTail(styled, uint(c.width), statusTail)
	}
	if _, err := io.WriteString(c.w, styled+"\n"); err != nil {
		return fmt.Errorf("show status: %w", err)
	}
	c.record(Strip(line, c.renderOpts...))
	return nil
}

// record appends a raw line to the status buffer, dropping the oldest
// line once the bound is exceeded.
func (c *Console) record(line string) {
	if c.bufferSize <= 0 {
		return
	}
	c.buffer = append(c.buffer, line)
	if len(c.buffer) > c.bufferSize {
		c.buffer = c.buffer[1:]
	}
}

// Buffer returns a copy of the buffered status lines, oldest first.
func (c *Console) Buffer() []string {
	return append([]string(nil), c.buffer...)
}

// BufferString returns the buffered status lines joined by newlines.
func (c *Console) BufferString() string {
	return strings.Join(c.buffer, "\n")
}

// ClearLine erases the current terminal line in place: carriage
// return, blanks across the line, carriage return. The cursor ends at
// column zero with nothing written past it.
func (c *Console) ClearLine() error {
	width := c.width
	if width <= 0 {
		width = defaultClearWidth
	}
	if _, err := io.WriteString(c.w, "\r"+strings.Repeat(" ", width)+"\r"); err != nil {
		return fmt.Errorf("clear line: %w", err)
	}
	return nil
}
