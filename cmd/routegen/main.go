package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/peterboddev/vibespacdemo-sub001/internal/cli"
	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
	"github.com/peterboddev/vibespacdemo-sub001/internal/preview"
	"github.com/peterboddev/vibespacdemo-sub001/internal/utils"
)

func main() {
	var (
		outputFlag  = flag.String("output", "routes.json", "Path of the generated routes config artifact")
		formatFlag  = flag.String("format", "json", "Artifact format: json or yaml")
		prettyFlag  = flag.Bool("pretty", false, "Indent JSON output")
		verboseFlag = flag.Bool("verbose", false, "Enable verbose output and detailed reporting")
		quietFlag   = flag.Bool("quiet", false, "Only show errors and final results")
		previewFlag = flag.Bool("preview", false, "Serve the generated config over HTTP after scanning")
		addrFlag    = flag.String("addr", ":8089", "Listen address for the preview server")
		helpFlag    = flag.Bool("help", false, "Show help information")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <directory-paths...>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Routegen - Lambda Route Discovery\n")
		fmt.Fprintf(os.Stderr, "Recursively scans directories for handler sources with @route annotations\n")
		fmt.Fprintf(os.Stderr, "and generates a routes config artifact for the provisioning layer.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nArguments:\n")
		fmt.Fprintf(os.Stderr, "  directory-paths    One or more directories to scan for annotated handlers\n")
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s ./src/lambda                          # Scan handlers, write routes.json\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --output infra/routes.json ./src      # Custom artifact location\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --format yaml ./src/lambda            # YAML artifact\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --preview --addr :9090 ./src/lambda   # Inspect routes over HTTP\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --verbose ./src/lambda ./src/admin    # Multiple roots, detailed output\n", os.Args[0])
	}

	flag.Parse()

	if *helpFlag {
		flag.Usage()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintf(os.Stderr, "Error: At least one directory path is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	var diagnostics *utils.DiagnosticSystem
	if *quietFlag {
		diagnostics = utils.NewQuietDiagnostics()
	} else if *verboseFlag {
		diagnostics = utils.NewVerboseDiagnostics()
	} else {
		diagnostics = utils.NewDiagnosticSystem(utils.DiagnosticInfo)
	}

	diagnostics.Section("Routegen - Lambda Route Discovery")

	if *verboseFlag {
		diagnostics.Subsection("Configuration")
		diagnostics.List("Scan roots: %s", strings.Join(args, ", "))
		diagnostics.List("Output: %s (%s)", *outputFlag, *formatFlag)
	}

	generator := cli.NewGenerator(diagnostics)
	config := cli.Config{
		Roots:   args,
		Output:  *outputFlag,
		Format:  *formatFlag,
		Pretty:  *prettyFlag,
		Verbose: *verboseFlag,
	}

	routesConfig, tree, err := generator.Run(config)
	if err != nil {
		diagnostics.Error("Generation failed: %v", err)
		if genErr, ok := err.(*models.GeneratorError); ok && *verboseFlag {
			for _, suggestion := range genErr.Suggestions {
				diagnostics.List("%s", suggestion)
			}
		}
		os.Exit(1)
	}

	summary := generator.GetSummary()
	diagnostics.Summary("Scan Complete!", map[string]interface{}{
		"Files scanned":   summary.FilesScanned,
		"Functions found": summary.FunctionsFound,
		"Routes found":    summary.RoutesFound,
		"Tree nodes":      summary.TreeNodes,
		"Artifact":        summary.ArtifactPath,
	})

	if *previewFlag {
		diagnostics.Info("Preview server listening on %s", *addrFlag)
		server := preview.NewServer(routesConfig, tree)
		if err := server.Start(*addrFlag); err != nil {
			diagnostics.Error("Preview server failed: %v", err)
			os.Exit(1)
		}
		return
	}

	diagnostics.Success("Routes config is ready for provisioning")
}
