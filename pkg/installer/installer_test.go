package installer

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caoforge/caoforge/pkg/agents"
)

// fakeClient fails installs whose path contains any of the failOn markers.
type fakeClient struct {
	installed []string
	failOn    []string
	running   bool
}

func (f *fakeClient) Install(_ context.Context, path string) error {
	for _, marker := range f.failOn {
		if strings.Contains(path, marker) {
			return errors.Errorf("install refused for %s", path)
		}
	}
	f.installed = append(f.installed, path)
	return nil
}

func (f *fakeClient) Launch(context.Context, string) error { return nil }
func (f *fakeClient) Serve(context.Context) error          { return nil }
func (f *fakeClient) ServerRunning(context.Context) (bool, error) {
	return f.running, nil
}

func discoveryFixture(t *testing.T, files map[string]string) *agents.Discovery {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		full := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	d, err := agents.NewDiscovery(agents.WithDirs(root))
	require.NoError(t, err)
	return d
}

func TestInstalledMissingDirIsEmpty(t *testing.T) {
	inst, err := New(filepath.Join(t.TempDir(), "never-created"), &fakeClient{})
	require.NoError(t, err)

	installed, err := inst.Installed()
	require.NoError(t, err)
	assert.Empty(t, installed)
}

func TestInstalled(t *testing.T) {
	ctxDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ctxDir, "a.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ctxDir, "b.md"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(ctxDir, "readme.txt"), []byte("x"), 0o644))

	inst, err := New(ctxDir, &fakeClient{})
	require.NoError(t, err)

	installed, err := inst.Installed()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"a": true, "b": true}, installed)
}

func TestInstallAgentsPartialFailure(t *testing.T) {
	d := discoveryFixture(t, map[string]string{
		"web/a.md":      "# a",
		"web/b.md":      "# b",
		"services/c.md": "# c",
	})
	list, err := d.Agents()
	require.NoError(t, err)
	require.Len(t, list, 3)

	client := &fakeClient{failOn: []string{"b.md"}}
	inst, err := New(t.TempDir(), client)
	require.NoError(t, err)

	summary := inst.InstallAgents(context.Background(), list)

	assert.Equal(t, 2, summary.Installed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, len(list), summary.Attempted())
	require.Error(t, summary.Errors)
	assert.Contains(t, summary.Errors.Error(), "agent 'b'")
}

func TestInstallAgentsAllSucceed(t *testing.T) {
	d := discoveryFixture(t, map[string]string{"web/a.md": "# a"})
	list, err := d.Agents()
	require.NoError(t, err)

	client := &fakeClient{}
	inst, err := New(t.TempDir(), client)
	require.NoError(t, err)

	summary := inst.InstallAgents(context.Background(), list)
	assert.Equal(t, 1, summary.Installed)
	assert.Zero(t, summary.Failed)
	assert.NoError(t, summary.Errors)
	// Disk agents are installed from their real path, not a staged copy.
	require.Len(t, client.installed, 1)
	assert.Equal(t, list[0].DiskPath(), client.installed[0])
}

func TestInstallAgentsStagesEmbedded(t *testing.T) {
	d, err := agents.NewDiscovery()
	require.NoError(t, err)
	list, err := d.Agents()
	require.NoError(t, err)
	require.NotEmpty(t, list)

	client := &fakeClient{}
	inst, err := New(t.TempDir(), client)
	require.NoError(t, err)

	summary := inst.InstallAgents(context.Background(), list[:1])
	assert.Equal(t, 1, summary.Installed)
	require.Len(t, client.installed, 1)
	assert.True(t, strings.HasSuffix(client.installed[0], list[0].FileName()))
}

func TestSync(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "one.md"), []byte("# one"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "two.md"), []byte("# two"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignore.txt"), []byte("x"), 0o644))

	client := &fakeClient{failOn: []string{"two.md"}}
	inst, err := New(t.TempDir(), client)
	require.NoError(t, err)

	summary := inst.Sync(context.Background(), dir)

	assert.Equal(t, 1, summary.Installed)
	assert.Equal(t, 1, summary.Failed)
	assert.Equal(t, 2, summary.Attempted())
	assert.Error(t, summary.Errors)
}

func TestSyncMissingDir(t *testing.T) {
	inst, err := New(t.TempDir(), &fakeClient{})
	require.NoError(t, err)

	summary := inst.Sync(context.Background(), filepath.Join(t.TempDir(), "nope"))
	assert.Zero(t, summary.Attempted())
	assert.NoError(t, summary.Errors)
}

func TestUninstall(t *testing.T) {
	ctxDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ctxDir, "gone.md"), []byte("x"), 0o644))

	inst, err := New(ctxDir, &fakeClient{})
	require.NoError(t, err)

	require.NoError(t, inst.Uninstall("gone"))
	assert.NoFileExists(t, filepath.Join(ctxDir, "gone.md"))

	err = inst.Uninstall("gone")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not installed")
}

func TestStatus(t *testing.T) {
	// Library fixture {web: [a, b], services: [c]} with installed set {a}.
	d := discoveryFixture(t, map[string]string{
		"web/a.md":      "# a",
		"web/b.md":      "# b",
		"services/c.md": "# c",
	})
	library, err := d.Agents()
	require.NoError(t, err)

	ctxDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(ctxDir, "a.md"), []byte("x"), 0o644))

	inst, err := New(ctxDir, &fakeClient{})
	require.NoError(t, err)

	report, err := inst.Status(library)
	require.NoError(t, err)

	assert.Len(t, report.Installed, 1)
	assert.Equal(t, "a", report.Installed[0].Name)
	assert.Len(t, report.NotInstalled, 2)
}
