// Package fansi renders inline styled-text markup to ANSI for terminal
// display.
//
// Markup wraps a text span in braces behind a lead character, followed
// by any number of braced modifiers: a foreground color, a highlight
// (background) color and text attributes, in any order. Rendering
// replaces each occurrence with the styled fragment and leaves every
// other byte of the line alone.
//
// Core properties:
//   - Literal text passes through untouched
//   - Malformed markup never fails; it stays literal
//   - Unknown modifiers are skipped unless strict checking is on
//   - SGR generation is delegated to a pluggable Styler
//
// Example:
//
//	line, err := fansi.Render("#{Hello}{red}, #{World}{green}{bold}!")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(line)
//
// Console and Progress bind the renderer to a writer for status lines
// and in-place progress bars.
package fansi
