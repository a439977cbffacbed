package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterboddev/vibespacdemo-sub001/internal/models"
	"github.com/peterboddev/vibespacdemo-sub001/internal/utils"
)

const createQuoteSource = `
import { APIGatewayProxyEvent } from 'aws-lambda';
import { DynamoDBClient } from '@aws-sdk/client-dynamodb';
import { calculatePremium } from '../calculator/premium';

/**
 * @route POST /api/v1/quotes
 * @auth required
 * @timeout 30
 * @memory 512
 * @description Create a new insurance quote
 */
export const createQuote = async (event: APIGatewayProxyEvent) => {
  return { statusCode: 201 };
};
`

const getQuoteSource = `
/**
 * @route GET /api/v1/quotes/{id}
 */
export const getQuote = async (event) => {
  return { statusCode: 200 };
};
`

const noAnnotationsSource = `
export const helper = async () => {
  return 42;
};
`

func setupHandlerTree(t *testing.T) string {
	t.Helper()
	tempDir, err := os.MkdirTemp("", "routegen_cli_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	files := map[string]string{
		"src/lambda/quotes/create.ts": createQuoteSource,
		"src/lambda/quotes/get.ts":    getQuoteSource,
		"src/lambda/shared/helper.ts": noAnnotationsSource,
	}
	for rel, content := range files {
		path := filepath.Join(tempDir, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return tempDir
}

func TestGenerator_Run(t *testing.T) {
	tempDir := setupHandlerTree(t)
	output := filepath.Join(tempDir, "infra", "routes.json")

	generator := NewGenerator(utils.NewQuietDiagnostics())
	cfg, tree, err := generator.Run(Config{
		Roots:  []string{filepath.Join(tempDir, "src", "lambda")},
		Output: output,
		Format: "json",
	})
	require.NoError(t, err)

	t.Run("functions discovered in scan order", func(t *testing.T) {
		require.Len(t, cfg.Functions, 2)
		assert.Equal(t, "quotes-create", cfg.Functions[0].FunctionName)
		assert.Equal(t, "quotes-get", cfg.Functions[1].FunctionName)

		create := cfg.Functions[0]
		assert.Equal(t, "createQuote", create.HandlerName)
		assert.Equal(t, []string{"aws-lambda", "@aws-sdk/client-dynamodb"}, create.Dependencies)
		require.Len(t, create.Routes, 1)
		assert.Equal(t, "POST", create.Routes[0].Method)
		assert.Equal(t, "required", create.Routes[0].Auth)
		require.NotNil(t, create.Routes[0].Timeout)
		assert.Equal(t, 30, *create.Routes[0].Timeout)
	})

	t.Run("flattened routes cover both functions", func(t *testing.T) {
		require.Len(t, cfg.Routes, 2)
		assert.Equal(t, "quotes-create", cfg.Routes[0].FunctionName)
		assert.Equal(t, "quotes-get", cfg.Routes[1].FunctionName)
	})

	t.Run("tree shares the common prefix", func(t *testing.T) {
		quotes := tree.Children["api"].Children["v1"].Children["quotes"]
		require.NotNil(t, quotes)
		assert.Equal(t, "quotes-create", quotes.Methods["POST"].FunctionName)
		assert.Equal(t, "quotes-get", quotes.Children["{id}"].Methods["GET"].FunctionName)
	})

	t.Run("artifact written to disk", func(t *testing.T) {
		data, err := os.ReadFile(output)
		require.NoError(t, err)

		var decoded models.RoutesConfig
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, cfg, decoded)
	})

	t.Run("summary statistics", func(t *testing.T) {
		summary := generator.GetSummary()
		assert.Equal(t, 3, summary.FilesScanned)
		assert.Equal(t, 2, summary.FunctionsFound)
		assert.Equal(t, 2, summary.RoutesFound)
		assert.Equal(t, output, summary.ArtifactPath)
	})
}

func TestGenerator_Run_Idempotent(t *testing.T) {
	tempDir := setupHandlerTree(t)
	root := filepath.Join(tempDir, "src", "lambda")

	first, _, err := NewGenerator(utils.NewQuietDiagnostics()).Run(Config{
		Roots:  []string{root},
		Output: filepath.Join(tempDir, "first.json"),
	})
	require.NoError(t, err)

	second, _, err := NewGenerator(utils.NewQuietDiagnostics()).Run(Config{
		Roots:  []string{root},
		Output: filepath.Join(tempDir, "second.json"),
	})
	require.NoError(t, err)

	// everything except the timestamp is identical across runs
	assert.Equal(t, first.Functions, second.Functions)
	assert.Equal(t, first.Routes, second.Routes)
}

func TestGenerator_Run_NonexistentRoot(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "routegen_cli_missing_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	generator := NewGenerator(utils.NewQuietDiagnostics())
	cfg, tree, err := generator.Run(Config{
		Roots:  []string{filepath.Join(tempDir, "does-not-exist")},
		Output: filepath.Join(tempDir, "routes.json"),
	})
	require.NoError(t, err)

	assert.Empty(t, cfg.Functions)
	assert.Empty(t, cfg.Routes)
	assert.Empty(t, tree.Children)
}

func TestGenerator_Run_MultipleRoots(t *testing.T) {
	tempDir := setupHandlerTree(t)

	adminDir := filepath.Join(tempDir, "admin", "reports")
	require.NoError(t, os.MkdirAll(adminDir, 0755))
	adminSource := `
/**
 * @route GET /admin/reports
 * @auth required
 */
export const listReports = async () => {};
`
	require.NoError(t, os.WriteFile(filepath.Join(adminDir, "list.ts"), []byte(adminSource), 0644))

	generator := NewGenerator(utils.NewQuietDiagnostics())
	cfg, _, err := generator.Run(Config{
		Roots: []string{
			filepath.Join(tempDir, "src", "lambda"),
			filepath.Join(tempDir, "admin"),
		},
		Output: filepath.Join(tempDir, "routes.json"),
	})
	require.NoError(t, err)

	require.Len(t, cfg.Functions, 3)
	assert.Equal(t, "reports-list", cfg.Functions[2].FunctionName)
}

func TestGenerator_Run_WriteFailure(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("directory permissions are not enforced for root")
	}

	tempDir := setupHandlerTree(t)
	readOnly := filepath.Join(tempDir, "readonly")
	require.NoError(t, os.MkdirAll(readOnly, 0555))

	generator := NewGenerator(utils.NewQuietDiagnostics())
	_, _, err := generator.Run(Config{
		Roots:  []string{filepath.Join(tempDir, "src", "lambda")},
		Output: filepath.Join(readOnly, "nested", "routes.json"),
	})
	require.Error(t, err)

	var genErr *models.GeneratorError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ErrorTypeFileSystem, genErr.Type)
	assert.NotEmpty(t, genErr.Suggestions)
}
