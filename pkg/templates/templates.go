// Package templates loads agent templates and instantiates them into
// concrete agent files. Templates are Markdown files containing literal
// {{PLACEHOLDER}} tokens; substitution is a global find-and-replace with no
// escaping, conditionals, or partial application.
package templates

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/caoforge/caoforge/pkg/logger"
)

// Recognized placeholder tokens. Unknown tokens pass through untouched.
const (
	TokenProjectName      = "PROJECT_NAME"
	TokenProjectPath      = "PROJECT_PATH"
	TokenTechStack        = "TECH_STACK"
	TokenProjectStructure = "PROJECT_STRUCTURE"
)

// Vars maps placeholder names (without braces) to replacement strings.
type Vars map[string]string

// Render performs literal substitution of every {{NAME}} occurrence for each
// entry in vars.
func Render(content string, vars Vars) string {
	for name, value := range vars {
		content = strings.ReplaceAll(content, "{{"+name+"}}", value)
	}
	return content
}

// Processor resolves templates by name from configured directories, falling
// back to the embedded builtins.
type Processor struct {
	templateDirs []string
}

// Option is a function that configures a Processor
type Option func(*Processor) error

// WithTemplateDirs sets custom template directories.
func WithTemplateDirs(dirs ...string) Option {
	return func(p *Processor) error {
		if len(dirs) == 0 {
			return errors.New("at least one template directory must be specified")
		}
		p.templateDirs = dirs
		return nil
	}
}

// WithDefaultDirs resets to the default template directories: the project's
// .cao/templates (highest precedence), then the user-global directory.
func WithDefaultDirs() Option {
	return func(p *Processor) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return errors.Wrap(err, "failed to get user home directory")
		}
		p.templateDirs = []string{
			filepath.Join(".cao", "templates"),
			filepath.Join(homeDir, ".caoforge", "templates"),
		}
		return nil
	}
}

// NewProcessor creates a template processor. With no options it uses the
// default directories plus the embedded builtins.
func NewProcessor(opts ...Option) (*Processor, error) {
	p := &Processor{}

	if len(opts) == 0 {
		opts = []Option{WithDefaultDirs()}
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Find returns the raw content of the named template. Directories are
// searched in order before the embedded builtins; both "name.md" and bare
// "name" files match.
func (p *Processor) Find(name string) (string, error) {
	possibleNames := []string{name + ".md", name}

	for _, dir := range p.templateDirs {
		for _, fileName := range possibleNames {
			fullPath := filepath.Join(dir, fileName)
			if content, err := os.ReadFile(fullPath); err == nil {
				return string(content), nil
			}
		}
	}

	if content, ok := builtinTemplate(name); ok {
		return content, nil
	}

	return "", errors.Errorf("template '%s' not found in %v or builtins", name, p.templateDirs)
}

// List returns the available template names, directories first and builtins
// last, deduplicated with directory templates taking precedence.
func (p *Processor) List() []string {
	var names []string
	seen := make(map[string]bool)

	for _, dir := range p.templateDirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), ".md")
			if !seen[name] {
				names = append(names, name)
				seen[name] = true
			}
		}
	}

	for _, name := range builtinTemplateNames() {
		if !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}

	return names
}

// Instantiate renders the named template with vars and writes it to
// <projectRoot>/.cao/agents/<agentName>.md, creating the directory if
// absent. Returns the destination path.
func (p *Processor) Instantiate(ctx context.Context, projectRoot, agentName, templateName string, vars Vars) (string, error) {
	content, err := p.Find(templateName)
	if err != nil {
		return "", err
	}

	rendered := Render(content, vars)

	agentsDir := filepath.Join(projectRoot, ".cao", "agents")
	if err := os.MkdirAll(agentsDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create agents directory '%s'", agentsDir)
	}

	destPath := filepath.Join(agentsDir, agentName+".md")
	if err := os.WriteFile(destPath, []byte(rendered), 0o644); err != nil {
		return "", errors.Wrapf(err, "failed to write agent file '%s'", destPath)
	}

	logger.G(ctx).WithField("path", destPath).WithField("template", templateName).Debug("Instantiated agent template")

	return destPath, nil
}
