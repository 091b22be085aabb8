package presenter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func newTestPresenter() (*TerminalPresenter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	p := NewWithOptions(&out, &errOut, ColorNever)
	return p, &out, &errOut
}

func TestError(t *testing.T) {
	p, out, errOut := newTestPresenter()

	p.Error(errors.New("boom"), "Failed to install agent")

	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "[ERROR] Failed to install agent: boom")
}

func TestErrorWithoutContext(t *testing.T) {
	p, _, errOut := newTestPresenter()

	p.Error(errors.New("boom"), "")

	assert.Contains(t, errOut.String(), "[ERROR] boom")
}

func TestErrorNil(t *testing.T) {
	p, _, errOut := newTestPresenter()

	p.Error(nil, "should not print")

	assert.Empty(t, errOut.String())
}

func TestSuccessWarningInfo(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Success("installed")
	p.Warning("already exists")
	p.Info("3 agents found")

	output := out.String()
	assert.Contains(t, output, "✓ installed")
	assert.Contains(t, output, "⚠ already exists")
	assert.Contains(t, output, "3 agents found")
}

func TestSection(t *testing.T) {
	p, out, _ := newTestPresenter()

	p.Section("Agent Status")

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Equal(t, "Agent Status", lines[0])
	assert.Equal(t, strings.Repeat("-", len("Agent Status")), lines[1])
}

func TestQuietModeSuppressesOutput(t *testing.T) {
	p, out, errOut := newTestPresenter()
	p.SetQuiet(true)

	p.Success("hidden")
	p.Warning("hidden")
	p.Info("hidden")
	p.Section("hidden")
	p.Separator()

	assert.Empty(t, out.String())

	// Errors are always shown
	p.Error(errors.New("still visible"), "")
	assert.Contains(t, errOut.String(), "still visible")
	assert.True(t, p.IsQuiet())
}

func TestPrompt(t *testing.T) {
	p, out, _ := newTestPresenter()
	p.SetInput(strings.NewReader("my-project\n"))

	response := p.Prompt("Project name")

	assert.Equal(t, "my-project", response)
	assert.Contains(t, out.String(), "Project name: ")
}

func TestPromptWithOptions(t *testing.T) {
	p, out, _ := newTestPresenter()
	p.SetInput(strings.NewReader("y\n"))

	response := p.Prompt("Continue?", "y", "N")

	assert.Equal(t, "y", response)
	assert.Contains(t, out.String(), "Continue? [y/N]: ")
}
