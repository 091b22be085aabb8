package templates

import (
	_ "embed"
)

// Embedded builtin template files
var (
	//go:embed builtin/orchestrator.md
	orchestratorContent string

	//go:embed builtin/specialist.md
	specialistContent string

	//go:embed builtin/minimal.md
	minimalContent string
)

var builtins = map[string]string{
	"orchestrator": orchestratorContent,
	"specialist":   specialistContent,
	"minimal":      minimalContent,
}

func builtinTemplate(name string) (string, bool) {
	content, ok := builtins[name]
	return content, ok
}

func builtinTemplateNames() []string {
	// Stable order for display
	return []string{"orchestrator", "specialist", "minimal"}
}
