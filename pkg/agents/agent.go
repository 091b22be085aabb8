// Package agents discovers Markdown agent personas from the builtin library
// and from user-provided directories. Agents are plain .md files with YAML
// frontmatter (name, description, model, tools) laid out as
// category/[subcategory/]name.md; the records are recomputed on every
// listing call and never persisted.
package agents

import (
	"io/fs"
	"path/filepath"
)

// Agent represents a discovered agent persona file
type Agent struct {
	Name        string // Filename without the .md extension
	Category    string // First directory level, empty for flat layouts
	Subcategory string // Second directory level, empty when absent
	Description string // Best-effort extraction from YAML frontmatter
	Path        string // Display path (real path, or builtin:<rel> for embedded agents)

	fsys     fs.FS
	fsPath   string
	diskRoot string
}

// GroupKey returns the display grouping key: the category alone, or
// "category/subcategory" when a subcategory is present.
func (a Agent) GroupKey() string {
	if a.Subcategory != "" {
		return a.Category + "/" + a.Subcategory
	}
	return a.Category
}

// Content returns the raw Markdown content of the agent file.
func (a Agent) Content() ([]byte, error) {
	return fs.ReadFile(a.fsys, a.fsPath)
}

// DiskPath returns the agent's path on the real filesystem, or the empty
// string for embedded agents which have no on-disk location.
func (a Agent) DiskPath() string {
	if a.diskRoot == "" {
		return ""
	}
	return filepath.Join(a.diskRoot, filepath.FromSlash(a.fsPath))
}

// FileName returns the agent's basename, e.g. "react-engineer.md".
func (a Agent) FileName() string {
	return a.Name + ".md"
}

// GroupByCategory partitions agents by GroupKey. The partition is pure and
// order-preserving: the union of all groups equals the input slice, and each
// group keeps the input order.
func GroupByCategory(list []Agent) map[string][]Agent {
	groups := make(map[string][]Agent)
	for _, agent := range list {
		key := agent.GroupKey()
		groups[key] = append(groups[key], agent)
	}
	return groups
}
