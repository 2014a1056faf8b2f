// TEST TYPE: Integration Test
// DEPENDENCIES: Real filesystem, /bin/sh
// PURPOSE: Source generated scripts in a real shell and check the outcome

package core_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/ssmuse/pkg/core"
	"github.com/arthur-debert/ssmuse/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shellFixture struct {
	root   string
	marker string
	entry  string
}

func newShellFixture(t *testing.T, profile string) shellFixture {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}

	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	fs := afero.NewOsFs()

	testutil.MakeDomain(t, fs, filepath.Join(root, "dom"), "multi")
	testutil.PopulateTree(t, fs, filepath.Join(root, "dom", "multi"), "bin")
	testutil.WriteFile(t, fs, filepath.Join(root, "dom", "multi", "etc", "profile.d", "dom.sh"), profile)
	testutil.PopulateTree(t, fs, filepath.Join(root, "extra"), "bin")

	marker := filepath.Join(root, "reentered")
	entry := filepath.Join(root, "entry.sh")
	testutil.WriteFile(t, fs, entry, "touch '"+marker+"'\n")

	return shellFixture{root: root, marker: marker, entry: entry}
}

func (f shellFixture) source(t *testing.T, env []string, args ...string) string {
	t.Helper()
	s, err := core.NewSession(core.Options{
		FS:        afero.NewOsFs(),
		Env:       testutil.Env(env...),
		Dialect:   "sh",
		Chain:     chain,
		Entry:     f.entry,
		CleanPath: []string{"echo"},
	})
	require.NoError(t, err)
	res, err := s.Run(args)
	require.NoError(t, err)

	path, err := core.WriteTempScript(afero.NewOsFs(), "sh", f.root, res.Script)
	require.NoError(t, err)

	cmd := exec.Command("sh", "-c", `. "$0"; echo "PATH=${PATH}"`, path)
	cmd.Env = append([]string{"PATH=/usr/bin:/bin"}, env...)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, string(out))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "temp script removes itself")
	return strings.TrimSpace(string(out))
}

func TestSourcedScript_UnchangedDependenciesContinueInline(t *testing.T) {
	f := newShellFixture(t, "DOM_LOADED=1\n")

	out := f.source(t, []string{"SSMUSE_XLIBDIRS=lib64"},
		"-d", filepath.Join(f.root, "dom"), "+f", filepath.Join(f.root, "extra"))

	assert.Equal(t, "PATH="+filepath.Join(f.root, "dom", "multi", "bin")+":/usr/bin:/bin:"+filepath.Join(f.root, "extra", "bin"), out)
	assert.NoFileExists(t, f.marker, "guard must not re-enter when dependencies are unchanged")
}

func TestSourcedScript_ChangedDependenciesReenter(t *testing.T) {
	f := newShellFixture(t, "export SSMUSE_XLIBDIRS=lib32\n")

	out := f.source(t, []string{"SSMUSE_XLIBDIRS=lib64"},
		"-d", filepath.Join(f.root, "dom"), "+f", filepath.Join(f.root, "extra"))

	assert.FileExists(t, f.marker)
	assert.NotContains(t, out, filepath.Join(f.root, "extra", "bin"), "remaining steps are left to the new invocation")
}
