package cli

// Config holds all options for one scan invocation.
type Config struct {
	Roots   []string // directories to scan for handler sources
	Output  string   // artifact path (routes.json by default)
	Format  string   // artifact encoding: json or yaml
	Pretty  bool     // indent JSON output
	Verbose bool     // enable detailed reporting
}

// ScanSummary collects statistics from a completed scan.
type ScanSummary struct {
	FilesScanned   int
	FunctionsFound int
	RoutesFound    int
	TreeNodes      int
	ArtifactPath   string
}
