package scaffold

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBootstrapWritesEverything(t *testing.T) {
	root := t.TempDir()

	result, err := Bootstrap(context.Background(), root, "acme")
	require.NoError(t, err)

	files := Files("acme")
	assert.Len(t, result.Written, len(files))
	assert.Empty(t, result.Skipped)

	for _, file := range files {
		assert.FileExists(t, filepath.Join(root, filepath.FromSlash(file.Path)))
	}

	// Project name lands in the manifest
	content, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)
	var manifest map[string]any
	require.NoError(t, json.Unmarshal(content, &manifest))
	assert.Equal(t, "acme", manifest["name"])

	// Git hook is executable
	info, err := os.Stat(filepath.Join(root, ".husky", "pre-commit"))
	require.NoError(t, err)
	assert.NotZero(t, info.Mode()&0o100)
}

func TestBootstrapOverwritesExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("old\n"), 0o644))

	_, err := Bootstrap(context.Background(), root, "acme")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	assert.NotEqual(t, "old\n", string(content))
}

func TestSetupWritesMissingAndSkipsExisting(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("custom-ignores\n"), 0o644))

	result, err := Setup(context.Background(), root, "acme")
	require.NoError(t, err)

	assert.Contains(t, result.Skipped, ".gitignore")
	assert.Contains(t, result.Written, "tsconfig.json")

	// Existing file untouched, but a diff is recorded since it differs
	content, err := os.ReadFile(filepath.Join(root, ".gitignore"))
	require.NoError(t, err)
	assert.Equal(t, "custom-ignores\n", string(content))
	assert.Contains(t, result.Diffs[".gitignore"], "custom-ignores")
}

func TestSetupNoDiffForIdenticalFile(t *testing.T) {
	root := t.TempDir()

	_, err := Bootstrap(context.Background(), root, "acme")
	require.NoError(t, err)

	result, err := Setup(context.Background(), root, "acme")
	require.NoError(t, err)

	assert.Contains(t, result.Skipped, ".gitignore")
	assert.NotContains(t, result.Diffs, ".gitignore")
}

func TestSetupMergesPackageJSON(t *testing.T) {
	root := t.TempDir()
	existing := `{
  "name": "my-app",
  "scripts": {
    "start": "node index.js"
  }
}
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte(existing), 0o644))

	result, err := Setup(context.Background(), root, "acme")
	require.NoError(t, err)
	assert.Contains(t, result.Merged, "package.json")

	content, err := os.ReadFile(filepath.Join(root, "package.json"))
	require.NoError(t, err)

	var manifest map[string]any
	require.NoError(t, json.Unmarshal(content, &manifest))

	// User entries preserved
	assert.Equal(t, "my-app", manifest["name"])
	scripts := manifest["scripts"].(map[string]any)
	assert.Equal(t, "node index.js", scripts["start"])

	// New scripts added alongside
	assert.Equal(t, "vitest run", scripts["test"])
	assert.Contains(t, scripts, "lint")
	assert.Contains(t, manifest, "devDependencies")
}

func TestMergePackageJSONExistingEntriesWin(t *testing.T) {
	existing := []byte(`{"name": "keep", "scripts": {"test": "jest"}}`)
	generated := []byte(`{"name": "generated", "scripts": {"test": "vitest run", "lint": "eslint ."}}`)

	merged, err := MergePackageJSON(existing, generated)
	require.NoError(t, err)

	var manifest map[string]any
	require.NoError(t, json.Unmarshal(merged, &manifest))

	assert.Equal(t, "keep", manifest["name"])
	scripts := manifest["scripts"].(map[string]any)
	assert.Equal(t, "jest", scripts["test"])
	assert.Equal(t, "eslint .", scripts["lint"])
}

func TestMergePackageJSONInvalidExisting(t *testing.T) {
	_, err := MergePackageJSON([]byte("not json"), []byte("{}"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}
