package metadata

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
)

// Extractor derives function identity from a handler source file: the
// deployable function name, the exported handler symbol, and the external
// modules the file imports.
type Extractor struct {
	handlerPattern *regexp.Regexp
	importPattern  *regexp.Regexp
}

// defaultHandlerName is used when no exported constant assignment is found.
const defaultHandlerName = "handler"

// unknownSegment substitutes for a missing path segment when deriving the
// function name.
const unknownSegment = "unknown"

// NewExtractor creates a metadata extractor.
func NewExtractor() *Extractor {
	return &Extractor{
		handlerPattern: regexp.MustCompile(`export\s+const\s+([A-Za-z_$][A-Za-z0-9_$]*)\s*=`),
		importPattern:  regexp.MustCompile(`import\s+[^;]*?from\s+['"]([^'"]+)['"]`),
	}
}

// Extract builds the metadata record for a file with at least one parsed
// route.
func (e *Extractor) Extract(filePath, source string, routes []models.RouteAnnotation) models.LambdaFunctionMetadata {
	return models.LambdaFunctionMetadata{
		FunctionName: e.FunctionName(filePath),
		FilePath:     filePath,
		HandlerName:  e.HandlerName(source),
		Routes:       routes,
		Dependencies: e.Dependencies(source),
	}
}

// FunctionName derives "<parentDir>-<baseName>" from a file path. Either
// half independently falls back to "unknown" when the path is too shallow to
// provide it; derivation never fails.
func (e *Extractor) FunctionName(filePath string) string {
	segments := strings.Split(filepath.ToSlash(filePath), "/")

	base := unknownSegment
	parent := unknownSegment

	if len(segments) >= 1 && segments[len(segments)-1] != "" {
		name := segments[len(segments)-1]
		base = strings.TrimSuffix(name, filepath.Ext(name))
	}
	if len(segments) >= 2 && segments[len(segments)-2] != "" {
		parent = segments[len(segments)-2]
	}

	return parent + "-" + base
}

// HandlerName returns the identifier of the first exported constant
// assignment in the source, or "handler" when none is present.
func (e *Extractor) HandlerName(source string) string {
	if m := e.handlerPattern.FindStringSubmatch(source); m != nil {
		return m[1]
	}
	return defaultHandlerName
}

// Dependencies collects external module names from import-from statements,
// in first-seen order. Relative imports are not dependencies, and repeated
// imports of the same module are reported once.
func (e *Extractor) Dependencies(source string) []string {
	seen := make(map[string]bool)
	deps := make([]string, 0)

	for _, m := range e.importPattern.FindAllStringSubmatch(source, -1) {
		module := m[1]
		if strings.HasPrefix(module, ".") {
			continue
		}
		if seen[module] {
			continue
		}
		seen[module] = true
		deps = append(deps, module)
	}

	return deps
}
