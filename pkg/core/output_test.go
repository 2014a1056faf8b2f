// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test self-removing temp script output

package core_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/ssmuse/pkg/core"
	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/testutil"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTempScript(t *testing.T) {
	fs := testutil.NewMemFS()
	testutil.MkdirAll(t, fs, "/tmp")

	path, err := core.WriteTempScript(fs, "sh", "/tmp", "export A=\"1\"\n")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/tmp/ssmuse"))

	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	assert.Equal(t,
		"# remove self/temp file\n"+
			"/bin/rm -f '"+path+"'\n"+
			"#\n"+
			"export A=\"1\"\n",
		string(data))
}

func TestWriteTempScriptFailure(t *testing.T) {
	fs := afero.NewReadOnlyFs(testutil.NewMemFS())

	_, err := core.WriteTempScript(fs, "sh", "/tmp", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrOutputTarget))
	assert.True(t, strings.HasPrefix(errors.Diagnostic(err), "could not create tmp file"))
}
