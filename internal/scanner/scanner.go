package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterboddev/vibespacdemo-sub001/internal/errors"
)

// Scanner walks a handler source tree and yields candidate source files for
// annotation parsing. Only TypeScript and JavaScript sources are considered;
// declaration files and build output are skipped.
type Scanner struct {
	extensions map[string]bool
	skipDirs   map[string]bool
}

// New creates a scanner with the default extension and directory filters.
func New() *Scanner {
	return &Scanner{
		extensions: map[string]bool{
			".ts": true,
			".js": true,
		},
		skipDirs: map[string]bool{
			"node_modules": true,
			".git":         true,
			"dist":         true,
			"build":        true,
			"cdk.out":      true,
			"coverage":     true,
		},
	}
}

// Scan returns every source file strictly under root, sorted by path so the
// result is stable regardless of filesystem listing order. A nonexistent
// root is not an error: it yields an empty slice.
func (s *Scanner) Scan(root string) ([]string, error) {
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if path != root && s.shouldSkipDirectory(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if s.isSourceFile(entry.Name()) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, errors.WrapWithOperation("scan", root, err)
	}

	sort.Strings(files)
	return files, nil
}

// isSourceFile reports whether a file name carries one of the recognized
// source extensions. TypeScript declaration files carry no handlers.
func (s *Scanner) isSourceFile(name string) bool {
	if strings.HasSuffix(name, ".d.ts") {
		return false
	}
	return s.extensions[filepath.Ext(name)]
}

// shouldSkipDirectory reports whether an entire directory subtree is skipped.
func (s *Scanner) shouldSkipDirectory(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	return s.skipDirs[name]
}
