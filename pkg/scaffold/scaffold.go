// Package scaffold generates npm project tooling configuration: package
// manifest, compiler config, linter config, test-runner config, git hook,
// and ignore files. Bootstrap writes the full set unconditionally; Setup
// only fills gaps and merges into an existing package manifest.
package scaffold

import (
	"context"
	"os"
	"path/filepath"

	"github.com/aymanbagabas/go-udiff"
	"github.com/pkg/errors"

	"github.com/caoforge/caoforge/pkg/logger"
)

// Result reports what a scaffolding run did per file.
type Result struct {
	Written []string
	Skipped []string
	Merged  []string
	// Diffs holds a unified diff for each skipped file whose current content
	// differs from what would have been generated. Informational only.
	Diffs map[string]string
}

// Bootstrap writes every scaffolding file under root, overwriting anything
// already there. Meant for brand-new projects.
func Bootstrap(ctx context.Context, root, projectName string) (Result, error) {
	result := Result{Diffs: map[string]string{}}

	for _, file := range Files(projectName) {
		if err := writeFile(root, file); err != nil {
			return result, err
		}
		result.Written = append(result.Written, file.Path)
		logger.G(ctx).WithField("file", file.Path).Debug("Scaffolded file")
	}

	return result, nil
}

// Setup brings an existing project up to standard: missing files are
// written, an existing package.json is merged (user entries preserved), and
// other existing files are left alone with a diff recorded when they differ
// from the generated content.
func Setup(ctx context.Context, root, projectName string) (Result, error) {
	result := Result{Diffs: map[string]string{}}

	for _, file := range Files(projectName) {
		target := filepath.Join(root, filepath.FromSlash(file.Path))

		existing, err := os.ReadFile(target)
		if os.IsNotExist(err) {
			if err := writeFile(root, file); err != nil {
				return result, err
			}
			result.Written = append(result.Written, file.Path)
			continue
		}
		if err != nil {
			return result, errors.Wrapf(err, "failed to read '%s'", target)
		}

		if file.Path == "package.json" {
			merged, err := MergePackageJSON(existing, []byte(file.Content))
			if err != nil {
				return result, errors.Wrap(err, "failed to merge package.json")
			}
			if err := os.WriteFile(target, merged, file.Mode); err != nil {
				return result, errors.Wrapf(err, "failed to write '%s'", target)
			}
			result.Merged = append(result.Merged, file.Path)
			logger.G(ctx).WithField("file", file.Path).Debug("Merged manifest")
			continue
		}

		result.Skipped = append(result.Skipped, file.Path)
		if string(existing) != file.Content {
			result.Diffs[file.Path] = udiff.Unified(file.Path, file.Path+" (generated)", string(existing), file.Content)
		}
	}

	return result, nil
}

func writeFile(root string, file File) error {
	target := filepath.Join(root, filepath.FromSlash(file.Path))

	if dir := filepath.Dir(target); dir != root {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "failed to create directory '%s'", dir)
		}
	}

	if err := os.WriteFile(target, []byte(file.Content), file.Mode); err != nil {
		return errors.Wrapf(err, "failed to write '%s'", target)
	}

	return nil
}
