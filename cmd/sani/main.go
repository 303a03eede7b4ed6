// Command sani renders files written in a restricted inline markup dialect
// (bold, italic, strikethrough, backslash escapes) to ANSI-styled terminal
// output.
//
// Usage:
//
//	sani [flags] <file|pattern>...
//
// Arguments may be literal paths or doublestar glob patterns (e.g.
// 'docs/**/*.md'). All inputs are rendered in argument order.
//
// Flags:
//
//	-pager  View the rendered output in a scrollable pager instead of
//	        printing it to stdout
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/fwojciec/sani"
	bt "github.com/fwojciec/sani/bubbletea"
	"github.com/fwojciec/sani/fs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "sani: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	pager := flag.Bool("pager", false, "view output in a scrollable pager")
	flag.Parse()

	if flag.NArg() == 0 {
		return errors.New("no input files (usage: sani [flags] <file|pattern>...)")
	}

	paths, err := fs.Expand(flag.Args())
	if err != nil {
		return err
	}

	// Render everything before printing anything: a read failure on any
	// input must not leave partial output behind.
	output, err := renderPaths(paths)
	if err != nil {
		return err
	}

	if *pager {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		m := bt.New(title(paths), output, sani.DefaultTheme())
		if err := bt.Run(ctx, m); err != nil {
			return fmt.Errorf("pager: %w", err)
		}
		return nil
	}

	fmt.Println(output)
	return nil
}

// renderPaths reads and renders every file, concatenating the results in
// argument order.
func renderPaths(paths []string) (string, error) {
	var b strings.Builder
	for _, path := range paths {
		contents, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", path, err)
		}
		b.WriteString(sani.Render(sani.Parse(string(contents))))
	}
	return strings.TrimSuffix(b.String(), "\n"), nil
}

func title(paths []string) string {
	if len(paths) == 1 {
		return paths[0]
	}
	return fmt.Sprintf("%s (+%d more)", paths[0], len(paths)-1)
}
