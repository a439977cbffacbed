package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/peterboddev/vibespacdemo-sub001/internal/annotations"
	"github.com/peterboddev/vibespacdemo-sub001/internal/assembler"
	"github.com/peterboddev/vibespacdemo-sub001/internal/metadata"
	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
	"github.com/peterboddev/vibespacdemo-sub001/internal/resources"
	"github.com/peterboddev/vibespacdemo-sub001/internal/scanner"
	"github.com/peterboddev/vibespacdemo-sub001/internal/utils"
)

// Generator coordinates the route discovery pipeline: scan, parse, extract,
// build the resource tree, and assemble the artifact. All pipeline stages
// hang off this struct; a fresh Generator is built per invocation so there
// is no process-wide mutable state.
type Generator struct {
	scanner     *scanner.Scanner
	parser      *annotations.Parser
	extractor   *metadata.Extractor
	assembler   *assembler.Assembler
	diagnostics *utils.DiagnosticSystem
	summary     ScanSummary
}

// NewGenerator creates a generator reporting through the given diagnostics.
func NewGenerator(diagnostics *utils.DiagnosticSystem) *Generator {
	return &Generator{
		scanner:     scanner.New(),
		parser:      annotations.NewParser(),
		extractor:   metadata.NewExtractor(),
		assembler:   assembler.New(),
		diagnostics: diagnostics,
	}
}

// GetSummary returns statistics from the last Run.
func (g *Generator) GetSummary() ScanSummary {
	return g.summary
}

// Run executes the complete pipeline and writes the artifact. It returns the
// assembled config and the merged resource tree so callers can inspect or
// serve them after generation.
func (g *Generator) Run(config Config) (models.RoutesConfig, *models.ResourceNode, error) {
	g.summary = ScanSummary{}
	runID := uuid.NewString()
	g.diagnostics.Verbose("Scan run %s starting", runID)

	functions, err := g.discoverFunctions(config)
	if err != nil {
		return models.RoutesConfig{}, nil, err
	}

	g.diagnostics.StartProgress("Building resource tree")
	builder := resources.NewBuilder()
	for _, fn := range functions {
		builder.AddFunction(fn)
	}
	g.summary.TreeNodes = builder.NodeCount()
	g.diagnostics.EndProgress(true, fmt.Sprintf("%d nodes", g.summary.TreeNodes))

	g.diagnostics.StartProgress("Writing routes config")
	cfg := g.assembler.Assemble(functions)
	opts := assembler.WriteOptions{Format: config.Format, Pretty: config.Pretty}
	if err := g.assembler.Write(cfg, config.Output, opts); err != nil {
		g.diagnostics.EndProgress(false, "")
		return models.RoutesConfig{}, nil, &models.GeneratorError{
			Type:    models.ErrorTypeFileSystem,
			Message: fmt.Sprintf("Failed to write routes config to %s", config.Output),
			Suggestions: []string{
				"Check write permissions for the output directory",
				"Verify there's enough disk space",
			},
			Context: map[string]interface{}{
				"output": config.Output,
				"format": config.Format,
			},
			Cause: err,
		}
	}
	g.diagnostics.EndProgress(true, config.Output)

	g.summary.ArtifactPath = config.Output
	return cfg, builder.Root(), nil
}

// discoverFunctions runs the scanner, parser, and extractor over every root,
// collecting metadata for each file with at least one route. Files that
// cannot be read, and files without complete annotation blocks, are skipped
// without aborting the scan.
func (g *Generator) discoverFunctions(config Config) ([]models.LambdaFunctionMetadata, error) {
	var functions []models.LambdaFunctionMetadata

	for _, root := range config.Roots {
		g.diagnostics.StartProgress(fmt.Sprintf("Scanning %s", root))
		files, err := g.scanner.Scan(root)
		if err != nil {
			g.diagnostics.EndProgress(false, "")
			return nil, &models.GeneratorError{
				Type:    models.ErrorTypeFileSystem,
				Message: fmt.Sprintf("Failed to scan directory %s", root),
				Suggestions: []string{
					"Ensure you have read permissions for the directory",
					"Verify the directory path is correct",
				},
				Context: map[string]interface{}{"root": root},
				Cause:   err,
			}
		}
		g.diagnostics.EndProgress(true, fmt.Sprintf("%d files", len(files)))
		g.summary.FilesScanned += len(files)

		for _, file := range files {
			data, err := os.ReadFile(file)
			if err != nil {
				g.diagnostics.Warn("Skipping unreadable file %s: %v", file, err)
				continue
			}
			source := string(data)

			routes := g.parser.Parse(source)
			if len(routes) == 0 {
				g.diagnostics.Debug("No route annotations in %s", file)
				continue
			}

			fn := g.extractor.Extract(file, source, routes)
			functions = append(functions, fn)
			g.summary.FunctionsFound++
			g.summary.RoutesFound += len(routes)

			if config.Verbose {
				g.diagnostics.List("%s: %d route(s), handler %s", fn.FunctionName, len(fn.Routes), fn.HandlerName)
			}
		}
	}

	return functions, nil
}
