package assembler

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/peterboddev/vibespacdemo-sub001/internal/errors"
	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
)

// Artifact encodings.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// WriteOptions control how the artifact is encoded.
type WriteOptions struct {
	Format string // json (default) or yaml
	Pretty bool   // indent JSON output
}

// Assembler produces the RoutesConfig artifact and persists it. The clock is
// injectable so tests can pin generatedAt.
type Assembler struct {
	Now func() time.Time
}

// New creates an assembler using the wall clock.
func New() *Assembler {
	return &Assembler{Now: time.Now}
}

// Assemble builds the artifact from the discovered functions, in scan order.
// The flattened route list is derived purely from the function list.
func (a *Assembler) Assemble(functions []models.LambdaFunctionMetadata) models.RoutesConfig {
	cfg := models.RoutesConfig{
		GeneratedAt: a.Now().UTC().Format(time.RFC3339),
		Functions:   functions,
		Routes:      make([]models.RouteEntry, 0),
	}
	if cfg.Functions == nil {
		cfg.Functions = make([]models.LambdaFunctionMetadata, 0)
	}

	for _, fn := range functions {
		for _, route := range fn.Routes {
			cfg.Routes = append(cfg.Routes, models.RouteEntry{
				FunctionName: fn.FunctionName,
				Method:       route.Method,
				Path:         route.Path,
				Auth:         route.Auth,
				RateLimit:    route.RateLimit,
				Timeout:      route.Timeout,
				MemorySize:   route.MemorySize,
				Description:  route.Description,
			})
		}
	}

	return cfg
}

// Write persists the artifact to outputPath, creating missing parent
// directories. The content is written to a uniquely named temp file in the
// target directory and renamed into place, so the final file is either the
// complete artifact or absent.
func (a *Assembler) Write(cfg models.RoutesConfig, outputPath string, opts WriteOptions) error {
	data, err := a.Encode(cfg, opts)
	if err != nil {
		return err
	}

	dir := filepath.Dir(outputPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.WrapFileSystemError("create directory for", outputPath, err)
	}

	tmpPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(outputPath), uuid.NewString()))
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return errors.WrapFileSystemError("write", tmpPath, err)
	}
	if err := os.Rename(tmpPath, outputPath); err != nil {
		os.Remove(tmpPath)
		return errors.WrapFileSystemError("write", outputPath, err)
	}

	return nil
}

// Encode serializes the artifact in the requested format.
func (a *Assembler) Encode(cfg models.RoutesConfig, opts WriteOptions) ([]byte, error) {
	switch opts.Format {
	case FormatYAML:
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to encode routes config as YAML", err)
		}
		return data, nil

	case FormatJSON, "":
		var (
			data []byte
			err  error
		)
		if opts.Pretty {
			data, err = json.MarshalIndent(cfg, "", "  ")
		} else {
			data, err = json.Marshal(cfg)
		}
		if err != nil {
			return nil, errors.Wrap(errors.ConfigurationErrorCode, "failed to encode routes config as JSON", err)
		}
		return data, nil
	}

	return nil, errors.ConfigurationError("output format", fmt.Sprintf("unsupported format %q", opts.Format)).
		WithSuggestion("use 'json' or 'yaml'")
}
