package agents

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"
)

type source struct {
	fsys     fs.FS
	label    string
	diskRoot string
}

// Discovery enumerates agent files from one or more sources in order.
type Discovery struct {
	sources []source
}

// Option is a function that configures a Discovery
type Option func(*Discovery) error

// WithBuiltinLibrary adds the embedded curated agent library as a source.
func WithBuiltinLibrary() Option {
	return func(d *Discovery) error {
		lib, err := BuiltinLibrary()
		if err != nil {
			return err
		}
		d.sources = append(d.sources, source{fsys: lib, label: "builtin"})
		return nil
	}
}

// WithDirs adds filesystem directories as agent sources. Directories that do
// not exist are silently skipped at discovery time.
func WithDirs(dirs ...string) Option {
	return func(d *Discovery) error {
		for _, dir := range dirs {
			d.sources = append(d.sources, source{
				fsys:     os.DirFS(dir),
				label:    dir,
				diskRoot: dir,
			})
		}
		return nil
	}
}

// WithFS adds an arbitrary fs.FS as an agent source. The label is used for
// display paths.
func WithFS(fsys fs.FS, label string) Option {
	return func(d *Discovery) error {
		d.sources = append(d.sources, source{fsys: fsys, label: label})
		return nil
	}
}

// NewDiscovery creates a new agent discovery instance. With no options it
// serves the embedded builtin library.
func NewDiscovery(opts ...Option) (*Discovery, error) {
	d := &Discovery{}

	if len(opts) == 0 {
		opts = []Option{WithBuiltinLibrary()}
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	return d, nil
}

// Agents walks every source and returns all .md files as agent records.
// Category and subcategory derive from the first two directory levels.
// Missing source directories yield no records rather than an error.
func (d *Discovery) Agents() ([]Agent, error) {
	var all []Agent

	for _, src := range d.sources {
		_ = fs.WalkDir(src.fsys, ".", func(p string, entry fs.DirEntry, err error) error {
			if err != nil {
				return nil
			}
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				return nil
			}
			all = append(all, d.newAgent(src, p))
			return nil
		})
	}

	return all, nil
}

// Get returns the first agent whose name matches.
func (d *Discovery) Get(name string) (Agent, error) {
	list, err := d.Agents()
	if err != nil {
		return Agent{}, err
	}

	for _, agent := range list {
		if agent.Name == name {
			return agent, nil
		}
	}

	return Agent{}, errors.Errorf("agent '%s' not found", name)
}

func (d *Discovery) newAgent(src source, fsPath string) Agent {
	agent := Agent{
		Name:     strings.TrimSuffix(path.Base(fsPath), ".md"),
		fsys:     src.fsys,
		fsPath:   fsPath,
		diskRoot: src.diskRoot,
	}

	parts := strings.Split(fsPath, "/")
	if len(parts) >= 2 {
		agent.Category = parts[0]
	}
	if len(parts) >= 3 {
		agent.Subcategory = parts[1]
	}

	if src.diskRoot != "" {
		agent.Path = agent.DiskPath()
	} else {
		agent.Path = src.label + ":" + fsPath
	}

	if content, err := agent.Content(); err == nil {
		agent.Description = extractDescription(content)
	}

	return agent
}

// extractDescription pulls the description field out of YAML frontmatter.
// Extraction is best-effort: malformed or absent frontmatter yields an empty
// description, never an error.
func extractDescription(content []byte) string {
	md := goldmark.New(goldmark.WithExtensions(meta.Meta))

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return ""
	}

	metaData := meta.Get(pctx)
	if metaData == nil {
		return ""
	}

	description, _ := metaData["description"].(string)
	return strings.TrimSpace(description)
}
