package fansi

import (
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/muesli/reflow/ansi"
)

// defaultBarWidth matches the classic 65-column progress bar.
const defaultBarWidth = 65

// Progress draws an in-place progress bar on a single terminal line:
//
//	[=============>                    ] 42%
//
// Each update clears the previous frame with a carriage return and
// redraws, so the bar needs a terminal, not a pipe. Finish completes
// the bar and releases the line with a newline.
//
// A Progress is not safe for concurrent use.
type Progress struct {
	w         io.Writer
	total     int
	barWidth  int
	showETA   bool
	start     time.Time
	lastWidth int
}

// ProgressOption configures a Progress.
type ProgressOption func(*Progress)

// WithBarWidth sets the bar width in columns. The default is 65.
func WithBarWidth(width int) ProgressOption {
	return func(p *Progress) {
		if width > 0 {
			p.barWidth = width
		}
	}
}

// WithETA replaces the percentage tail with a remaining-time estimate
// extrapolated from the elapsed time since construction.
func WithETA(enabled bool) ProgressOption {
	return func(p *Progress) {
		p.showETA = enabled
	}
}

// NewProgress returns a Progress over total steps writing to w. The
// ETA clock starts now.
func NewProgress(w io.Writer, total int, opts ...ProgressOption) *Progress {
	p := &Progress{
		w:        w,
		total:    total,
		barWidth: defaultBarWidth,
		start:    time.Now(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Update redraws the bar at current out of total steps.
func (p *Progress) Update(current int) error {
	if p.total <= 0 {
		return fmt.Errorf("progress: total must be positive, got %d", p.total)
	}
	return p.draw(float64(current) / float64(p.total))
}

// UpdateFraction redraws the bar at the given completion fraction,
// bypassing the step count. The fraction is clamped to [0, 1], and
// NaN draws as zero.
func (p *Progress) UpdateFraction(fraction float64) error {
	return p.draw(fraction)
}

// Finish draws the completed bar and ends the line with a newline.
func (p *Progress) Finish() error {
	if err := p.draw(1); err != nil {
		return err
	}
	p.lastWidth = 0
	if _, err := io.WriteString(p.w, "\n"); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	return nil
}

// draw clears the previous frame and writes a new one. The bar head
// is '>' until completion, then '='. The tail is a percentage, or a
// remaining-time estimate when ETA is enabled.
func (p *Progress) draw(fraction float64) error {
	if math.IsNaN(fraction) || fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(p.barWidth))
	head := ">"
	if fraction == 1 {
		head = "="
	}
	tail := fmt.Sprintf("%.0f%%", 100*fraction)
	if p.showETA {
		elapsed := time.Since(p.start)
		remaining := time.Duration(float64(elapsed) / math.Max(fraction, 1e-7) * (1 - fraction))
		tail = fmt.Sprintf("ETA: %.0fs", remaining.Seconds())
	}
	frame := "[" + strings.Repeat("=", filled) + head + strings.Repeat(" ", p.barWidth-filled) + "] " + tail
	if err := p.clear(); err != nil {
		return err
	}
	if _, err := io.WriteString(p.w, frame); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	p.lastWidth = ansi.PrintableRuneWidth(frame)
	return nil
}

// clear blanks the previous frame and returns the cursor to column
// zero. Before the first frame it blanks a default-width line so a
// partially written line underneath does not bleed through.
func (p *Progress) clear() error {
	width := p.lastWidth
	if width <= 0 {
		width = defaultClearWidth
	}
	if _, err := io.WriteString(p.w, "\r"+strings.Repeat(" ", width)+"\r"); err != nil {
		return fmt.Errorf("progress: %w", err)
	}
	return nil
}
