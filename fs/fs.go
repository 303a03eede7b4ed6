// Package fs expands command-line file arguments into concrete paths.
package fs

import (
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Expand resolves each argument to file paths. Arguments containing glob
// metacharacters are expanded with doublestar (** is supported) relative
// to the pattern's fixed prefix; directories are skipped. Literal paths
// pass through untouched — whether they exist is the reader's problem,
// so a missing file is reported at read time, not here.
func Expand(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			paths = append(paths, arg)
			continue
		}

		if !doublestar.ValidatePattern(arg) {
			return nil, fmt.Errorf("invalid glob pattern %q", arg)
		}

		base, pattern := doublestar.SplitPattern(filepath.ToSlash(arg))
		fsys := os.DirFS(base)
		matched := false
		err := doublestar.GlobWalk(fsys, pattern, func(path string, d iofs.DirEntry) error {
			if d.IsDir() {
				return nil
			}
			matched = true
			paths = append(paths, filepath.Join(base, filepath.FromSlash(path)))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("expand %q: %w", arg, err)
		}
		if !matched {
			return nil, fmt.Errorf("no files match %q", arg)
		}
	}
	return paths, nil
}
