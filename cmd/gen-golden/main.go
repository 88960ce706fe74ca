// Command gen-golden regenerates the golden files under testdata.
// Every *.txt corpus holds one markup line per row; each corpus gets a
// .rendered.golden with forced ANSI output and a .stripped.golden with
// markup removed.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"pkt.systems/fansi"
)

func main() {
	root := "testdata"
	var paths []string
	err := filepath.WalkDir(root, func(path string, d os.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(path, ".txt") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		fatalf("walk %s: %v", root, err)
	}
	if len(paths) == 0 {
		fatalf("no corpus files found under %s", root)
	}
	for _, path := range paths {
		src, err := os.ReadFile(path)
		if err != nil {
			fatalf("read %s: %v", path, err)
		}
		lines := strings.Split(strings.TrimSuffix(string(src), "\n"), "\n")
		rendered := make([]string, len(lines))
		stripped := make([]string, len(lines))
		for i, line := range lines {
			out, err := fansi.Render(line, fansi.WithColor(true))
			if err != nil {
				fatalf("render %s line %d: %v", path, i+1, err)
			}
			rendered[i] = out
			stripped[i] = fansi.Strip(line)
		}
		base := strings.TrimSuffix(path, ".txt")
		writeGolden(base+".rendered.golden", rendered)
		writeGolden(base+".stripped.golden", stripped)
	}
}

func writeGolden(path string, lines []string) {
	data := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		fatalf("write %s: %v", path, err)
	}
	fmt.Fprintf(os.Stdout, "wrote %s\n", path)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
