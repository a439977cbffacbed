package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
}

func TestScanner_Scan(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "routegen_scanner_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	writeFiles(t, tempDir, map[string]string{
		"quotes/create.ts":                 "export const createQuote = async () => {};",
		"quotes/get.ts":                    "export const getQuote = async () => {};",
		"quotes/types.d.ts":                "export interface Quote {}",
		"policies/renew.js":                "export const renewPolicy = async () => {};",
		"shared/util.py":                   "def helper(): pass",
		"node_modules/aws-sdk/index.ts":    "export const sdk = 1;",
		"dist/quotes/create.ts":            "export const built = 1;",
		"cdk.out/asset.1234/handler.ts":    "export const asset = 1;",
		".hidden/secret.ts":                "export const secret = 1;",
		"coverage/lcov-report/report.js":   "var report;",
		"quotes/v2/archive/restore.ts":     "export const restore = async () => {};",
	})

	scanner := New()

	t.Run("collects ts and js sources recursively", func(t *testing.T) {
		files, err := scanner.Scan(tempDir)
		require.NoError(t, err)

		var rel []string
		for _, f := range files {
			r, err := filepath.Rel(tempDir, f)
			require.NoError(t, err)
			rel = append(rel, filepath.ToSlash(r))
		}

		assert.ElementsMatch(t, []string{
			"quotes/create.ts",
			"quotes/get.ts",
			"policies/renew.js",
			"quotes/v2/archive/restore.ts",
		}, rel)
	})

	t.Run("output is sorted by path", func(t *testing.T) {
		files, err := scanner.Scan(tempDir)
		require.NoError(t, err)
		assert.IsIncreasing(t, files)
	})

	t.Run("every file visited exactly once", func(t *testing.T) {
		files, err := scanner.Scan(tempDir)
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, f := range files {
			seen[f]++
		}
		for f, n := range seen {
			assert.Equal(t, 1, n, "file %s visited %d times", f, n)
		}
	})
}

func TestScanner_Scan_NonexistentRoot(t *testing.T) {
	scanner := New()

	files, err := scanner.Scan("/nonexistent/handler/tree")
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestScanner_shouldSkipDirectory(t *testing.T) {
	scanner := New()

	testCases := []struct {
		name     string
		dirname  string
		expected bool
	}{
		{"node_modules", "node_modules", true},
		{"git directory", ".git", true},
		{"hidden directory", ".cache", true},
		{"dist directory", "dist", true},
		{"cdk output", "cdk.out", true},
		{"normal directory", "quotes", false},
		{"directory with underscore", "quote_admin", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, scanner.shouldSkipDirectory(tc.dirname))
		})
	}
}

func TestScanner_isSourceFile(t *testing.T) {
	scanner := New()

	assert.True(t, scanner.isSourceFile("create.ts"))
	assert.True(t, scanner.isSourceFile("legacy.js"))
	assert.False(t, scanner.isSourceFile("types.d.ts"))
	assert.False(t, scanner.isSourceFile("handler.py"))
	assert.False(t, scanner.isSourceFile("README.md"))
}
