package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/fansi"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/fansi")
}

func main() {
	var (
		colorFlag string
		strict    bool
		strip     bool
		leadFlag  string
		sep       string
		list      bool
		outPath   string
		noNewline bool
	)

	flags := pflag.NewFlagSet("fansi", pflag.ExitOnError)
	flags.StringVarP(&colorFlag, "color", "c", "auto", "Color output: auto|on|off")
	flags.BoolVar(&strict, "strict", false, "Fail on modifiers outside the vocabulary")
	flags.BoolVar(&strip, "strip", false, "Remove markup instead of rendering it")
	flags.StringVarP(&leadFlag, "lead", "l", "#", "Markup lead character")
	flags.StringVarP(&sep, "sep", "s", " ", "Separator between rendered arguments")
	flags.BoolVar(&list, "list", false, "List recognized modifier names")
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVarP(&noNewline, "no-newline", "n", false, "Skip the trailing newline after rendered arguments")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: fansi [flags] [text...]\n")
		fmt.Fprintln(os.Stderr, "\nArguments are rendered and joined by the separator. Without")
		fmt.Fprintln(os.Stderr, "arguments, lines are read from stdin and rendered one by one.")
		fmt.Fprintln(os.Stderr, "\nMarkup wraps text and modifiers in braces behind the lead:")
		fmt.Fprintln(os.Stderr, "\n  fansi '#{Hello}{red} #{World}{green}{bold}!'")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if list {
		printModifiers(os.Stdout)
		return
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	lead, err := resolveLead(leadFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --lead %q: %v\n", leadFlag, err)
		os.Exit(2)
	}

	opts := []fansi.Option{fansi.WithLead(lead)}
	if strict {
		opts = append(opts, fansi.WithStrictModifiers(true))
	}
	colorOpts, err := resolveColor(colorFlag, writer)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --color %q: %v\n", colorFlag, err)
		os.Exit(2)
	}
	opts = append(opts, colorOpts...)

	args := flags.Args()
	if len(args) > 0 {
		if err := renderArgs(writer, args, sep, strip, noNewline, opts); err != nil {
			fmt.Fprintf(os.Stderr, "render: %v\n", err)
			os.Exit(1)
		}
		return
	}
	if err := renderLines(os.Stdin, writer, strip, opts); err != nil {
		fmt.Fprintf(os.Stderr, "render: %v\n", err)
		os.Exit(1)
	}
}

// renderArgs joins the argument fragments into a single output line.
func renderArgs(w io.Writer, args []string, sep string, strip, noNewline bool, opts []fansi.Option) error {
	var out string
	if strip {
		parts := make([]string, len(args))
		for i, arg := range args {
			parts[i] = fansi.Strip(arg, opts...)
		}
		out = strings.Join(parts, sep)
	} else {
		rendered, err := fansi.Join(args, sep, opts...)
		if err != nil {
			return err
		}
		out = rendered
	}
	if !noNewline {
		out += "\n"
	}
	_, err := io.WriteString(w, out)
	return err
}

// renderLines streams stdin through the renderer line by line.
func renderLines(r io.Reader, w io.Writer, strip bool, opts []fansi.Option) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	console := fansi.NewConsole(w, fansi.WithRenderOptions(opts...))
	for scanner.Scan() {
		line := scanner.Text()
		if strip {
			if _, err := io.WriteString(w, fansi.Strip(line, opts...)+"\n"); err != nil {
				return err
			}
			continue
		}
		if _, err := console.WriteLine(line); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func printModifiers(w io.Writer) {
	vocab := fansi.NewANSIStyler(fansi.ColorAuto).Vocabulary()
	fmt.Fprintln(w, "colors:     "+strings.Join(vocab.Colors(), " "))
	fmt.Fprintln(w, "highlights: "+strings.Join(vocab.Highlights(), " "))
	fmt.Fprintln(w, "attributes: "+strings.Join(vocab.Attributes(), " "))
}

func resolveColor(mode string, w io.Writer) ([]fansi.Option, error) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "", "auto":
		if isTerminal(w) {
			return nil, nil
		}
		return []fansi.Option{fansi.WithColor(false)}, nil
	case "on", "true", "1", "yes":
		return []fansi.Option{fansi.WithColor(true)}, nil
	case "off", "false", "0", "no":
		return []fansi.Option{fansi.WithColor(false)}, nil
	default:
		return nil, fmt.Errorf("expected auto|on|off")
	}
}

func resolveLead(s string) (rune, error) {
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("expected a single character")
	}
	return runes[0], nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
