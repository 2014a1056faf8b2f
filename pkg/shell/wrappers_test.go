// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test entry script generation and installation

package shell_test

import (
	"testing"

	"github.com/arthur-debert/ssmuse/pkg/shell"
	"github.com/arthur-debert/ssmuse/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapper(t *testing.T) {
	sh, err := shell.Wrapper("sh", "/opt/ssmuse/bin/ssmuse")
	require.NoError(t, err)
	assert.Contains(t, sh, `'/opt/ssmuse/bin/ssmuse' sh --tmp "$@"`)
	assert.NotContains(t, sh, "@SSMUSE@")

	csh, err := shell.Wrapper("csh", "/opt/ssmuse/bin/ssmuse")
	require.NoError(t, err)
	assert.Contains(t, csh, `'/opt/ssmuse/bin/ssmuse' csh --tmp $argv:q`)

	_, err = shell.Wrapper("zsh", "ssmuse")
	assert.Error(t, err)
}

func TestInstallWrappers(t *testing.T) {
	fs := testutil.NewMemFS()

	installed, err := shell.InstallWrappers(fs, "/opt/ssmuse/bin", "/opt/ssmuse/bin/ssmuse")
	require.NoError(t, err)
	assert.Equal(t, []string{"/opt/ssmuse/bin/ssmuse-sh", "/opt/ssmuse/bin/ssmuse-csh"}, installed)

	for _, path := range installed {
		data, err := afero.ReadFile(fs, path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "/opt/ssmuse/bin/ssmuse")
	}
}
