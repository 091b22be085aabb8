// Package orchestrator shells out to the external CLI Agent Orchestrator
// ("cao") binary. The orchestrator is treated as an opaque, independently
// versioned executable: this package only constructs argv, inherits stdio,
// and interprets the exit code. No retries, no timeouts; cancellation comes
// from the context.
package orchestrator

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/process"

	"github.com/caoforge/caoforge/pkg/logger"
)

// Client is the orchestrator boundary commands depend on. Tests mock it.
type Client interface {
	// Install registers the agent file at path with the orchestrator.
	Install(ctx context.Context, path string) error
	// Launch starts an interactive session with the named agent.
	Launch(ctx context.Context, agent string) error
	// Serve runs the orchestrator server in the foreground until it exits.
	Serve(ctx context.Context) error
	// ServerRunning reports whether an orchestrator server process exists.
	ServerRunning(ctx context.Context) (bool, error)
}

// ExitError carries the non-zero exit code of a failed orchestrator process.
type ExitError struct {
	Command string
	Code    int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("'%s' exited with code %d", e.Command, e.Code)
}

// CLI is the production Client backed by the cao and cao-server binaries.
type CLI struct {
	Bin       string
	ServerBin string

	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// New creates a CLI client. Empty binary names fall back to "cao" and
// "cao-server".
func New(bin, serverBin string) *CLI {
	if bin == "" {
		bin = "cao"
	}
	if serverBin == "" {
		serverBin = "cao-server"
	}
	return &CLI{
		Bin:       bin,
		ServerBin: serverBin,
		stdin:     os.Stdin,
		stdout:    os.Stdout,
		stderr:    os.Stderr,
	}
}

// Install runs `cao install "<path>"`.
func (c *CLI) Install(ctx context.Context, path string) error {
	return c.run(ctx, c.Bin, "install", path)
}

// Launch runs `cao launch --agents <name>` with inherited stdio.
func (c *CLI) Launch(ctx context.Context, agent string) error {
	return c.run(ctx, c.Bin, "launch", "--agents", agent)
}

// Serve runs `cao-server` in the foreground.
func (c *CLI) Serve(ctx context.Context) error {
	return c.run(ctx, c.ServerBin)
}

// ServerRunning scans the process table for the server binary.
func (c *CLI) ServerRunning(ctx context.Context) (bool, error) {
	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return false, errors.Wrap(err, "failed to list processes")
	}

	for _, p := range procs {
		name, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if name == c.ServerBin {
			return true, nil
		}
	}

	return false, nil
}

func (c *CLI) run(ctx context.Context, name string, args ...string) error {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	logger.G(ctx).WithField("command", cmdline).Debug("Running orchestrator command")

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = c.stdin
	cmd.Stdout = c.stdout
	cmd.Stderr = c.stderr

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Command: cmdline, Code: exitErr.ExitCode()}
	}

	return errors.Wrapf(err, "failed to run '%s'", cmdline)
}
