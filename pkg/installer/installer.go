// Package installer manages the set of agents registered with the external
// orchestrator. The orchestrator owns its agent-context directory; this
// package only reads basenames from it, deletes files in it for uninstall,
// and funnels installs through the orchestrator client. A context directory
// that does not exist yet means "nothing installed", never an error.
package installer

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/caoforge/caoforge/pkg/agents"
	"github.com/caoforge/caoforge/pkg/logger"
	"github.com/caoforge/caoforge/pkg/orchestrator"
)

// DefaultContextDir returns the orchestrator's well-known agent-context
// directory under the user's home.
func DefaultContextDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "failed to get user home directory")
	}
	return filepath.Join(home, ".aws", "cli-agent-orchestrator", "agent-context"), nil
}

// Installer reads the orchestrator's installed-agent set and performs bulk
// install, sync, and uninstall operations.
type Installer struct {
	contextDir string
	client     orchestrator.Client
}

// New creates an Installer. An empty contextDir selects the default.
func New(contextDir string, client orchestrator.Client) (*Installer, error) {
	if contextDir == "" {
		dir, err := DefaultContextDir()
		if err != nil {
			return nil, err
		}
		contextDir = dir
	}
	return &Installer{contextDir: contextDir, client: client}, nil
}

// ContextDir returns the agent-context directory in use.
func (i *Installer) ContextDir() string {
	return i.contextDir
}

// Installed returns the set of installed agent names (basenames without the
// .md extension). A missing context directory is an empty set.
func (i *Installer) Installed() (map[string]bool, error) {
	entries, err := os.ReadDir(i.contextDir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]bool{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read agent context directory '%s'", i.contextDir)
	}

	installed := make(map[string]bool)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		installed[strings.TrimSuffix(entry.Name(), ".md")] = true
	}

	return installed, nil
}

// Summary reports the outcome of a bulk operation. Installed+Failed always
// equals the number of items attempted; one item's failure never stops the
// rest.
type Summary struct {
	Installed int
	Failed    int
	Errors    error
}

// Attempted returns the total number of items processed.
func (s Summary) Attempted() int {
	return s.Installed + s.Failed
}

// InstallAgents installs each agent through the orchestrator, staging
// embedded agents to a temporary file first. Failures are counted and
// aggregated, never fatal to the batch.
func (i *Installer) InstallAgents(ctx context.Context, list []agents.Agent) Summary {
	var summary Summary
	var errs *multierror.Error

	for _, agent := range list {
		if err := i.installOne(ctx, agent); err != nil {
			summary.Failed++
			errs = multierror.Append(errs, errors.Wrapf(err, "agent '%s'", agent.Name))
			logger.G(ctx).WithError(err).WithField("agent", agent.Name).Warn("Agent install failed")
			continue
		}
		summary.Installed++
	}

	summary.Errors = errs.ErrorOrNil()
	return summary
}

func (i *Installer) installOne(ctx context.Context, agent agents.Agent) error {
	path := agent.DiskPath()
	if path == "" {
		staged, cleanup, err := stage(agent)
		if err != nil {
			return err
		}
		defer cleanup()
		path = staged
	}
	return i.client.Install(ctx, path)
}

// stage writes an embedded agent to a temporary file so the orchestrator can
// read it from a real path.
func stage(agent agents.Agent) (string, func(), error) {
	content, err := agent.Content()
	if err != nil {
		return "", nil, errors.Wrapf(err, "failed to read agent '%s'", agent.Name)
	}

	dir, err := os.MkdirTemp("", "caoforge-install-*")
	if err != nil {
		return "", nil, errors.Wrap(err, "failed to create staging directory")
	}

	path := filepath.Join(dir, agent.FileName())
	if err := os.WriteFile(path, content, 0o644); err != nil {
		os.RemoveAll(dir)
		return "", nil, errors.Wrapf(err, "failed to stage agent '%s'", agent.Name)
	}

	return path, func() { os.RemoveAll(dir) }, nil
}

// Sync installs every .md file under dir (matched with **/*.md) through the
// orchestrator, with the same partial-failure semantics as InstallAgents. A
// missing directory syncs zero files.
func (i *Installer) Sync(ctx context.Context, dir string) Summary {
	var summary Summary
	var errs *multierror.Error

	matches, err := doublestar.Glob(os.DirFS(dir), "**/*.md")
	if err != nil {
		// Pattern is constant; the only failures here are fs errors.
		if !errors.Is(err, fs.ErrNotExist) {
			summary.Errors = errors.Wrapf(err, "failed to scan '%s'", dir)
		}
		return summary
	}
	sort.Strings(matches)

	for _, rel := range matches {
		path := filepath.Join(dir, filepath.FromSlash(rel))
		if err := i.client.Install(ctx, path); err != nil {
			summary.Failed++
			errs = multierror.Append(errs, errors.Wrapf(err, "file '%s'", path))
			logger.G(ctx).WithError(err).WithField("file", path).Warn("Agent sync failed")
			continue
		}
		summary.Installed++
	}

	summary.Errors = errs.ErrorOrNil()
	return summary
}

// Uninstall removes the named agent's file from the context directory. The
// orchestrator exposes no uninstall primitive, so deletion happens directly.
func (i *Installer) Uninstall(name string) error {
	path := filepath.Join(i.contextDir, name+".md")
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return errors.Errorf("agent '%s' is not installed", name)
		}
		return errors.Wrapf(err, "failed to remove '%s'", path)
	}
	return nil
}

// StatusReport compares a library of agents against the installed set.
type StatusReport struct {
	Installed    []agents.Agent
	NotInstalled []agents.Agent
}

// Status partitions the library by installed-state.
func (i *Installer) Status(library []agents.Agent) (StatusReport, error) {
	installed, err := i.Installed()
	if err != nil {
		return StatusReport{}, err
	}

	var report StatusReport
	for _, agent := range library {
		if installed[agent.Name] {
			report.Installed = append(report.Installed, agent)
		} else {
			report.NotInstalled = append(report.NotInstalled, agent)
		}
	}

	return report, nil
}
