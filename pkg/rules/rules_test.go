// TEST TYPE: Unit Test
// DEPENDENCIES: afero MemMapFs
// PURPOSE: Test the rule table and its directory predicates

package rules_test

import (
	"testing"

	"github.com/arthur-debert/ssmuse/pkg/config"
	"github.com/arthur-debert/ssmuse/pkg/rules"
	"github.com/arthur-debert/ssmuse/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	table := rules.Default()

	assert.Equal(t, []string{
		"PATH",
		"CPATH", "C_INCLUDE_PATH", "CPLUS_INCLUDE_PATH", "OBJC_INCLUDE_PATH", "SSM_INCLUDE_PATH",
		"LIBPATH", "LD_LIBRARY_PATH",
		"MANPATH",
		"PYTHONPATH",
		"TCL_LIBRARY",
	}, table.Managed())
	assert.Equal(t, []string{"SSMUSE_XINCDIRS", "SSMUSE_XLIBDIRS"}, table.ExtraDirsVars())

	for _, r := range table.Rules {
		assert.NotEmpty(t, r.Accept, "rule %s has a predicate", r.Name())
	}
	assert.Equal(t, rules.NonEmpty, table.Rules[0].Accept)
	assert.Equal(t, rules.Libraries, table.Rules[2].Accept)
}

func TestFromConfig(t *testing.T) {
	cfg := &config.Config{
		LibrarySuffixes: []string{".dylib"},
		Rules: []config.Rule{
			{Names: []string{"PATH"}, Subpaths: []string{"/bin"}},
		},
		ExtraRules: []config.Rule{
			{Names: []string{"PKG_CONFIG_PATH", "PKG_CONFIG_PATH"}, Subpaths: []string{"lib/pkgconfig"}, Accept: "exists"},
		},
	}

	table := rules.FromConfig(cfg)
	require.Len(t, table.Rules, 2)
	assert.Equal(t, []string{"bin"}, table.Rules[0].Subpaths)
	assert.Equal(t, rules.NonEmpty, table.Rules[0].Accept)
	assert.Equal(t, rules.Exists, table.Rules[1].Accept)
	assert.Equal(t, []string{"PATH", "PKG_CONFIG_PATH"}, table.Managed())

	back := table.Config()
	assert.Equal(t, "nonempty", back[0].Accept)
	assert.Equal(t, []string{"bin"}, back[0].Subpaths)
}

func TestAccepts(t *testing.T) {
	fs := testutil.NewMemFS()
	testutil.MkdirAll(t, fs, "/empty")
	testutil.Touch(t, fs, "/full/readme")
	testutil.Touch(t, fs, "/libs/libfoo.so")
	testutil.Touch(t, fs, "/static/libbar.a")
	testutil.Touch(t, fs, "/headers/foo.h")
	testutil.Touch(t, fs, "/file")

	table := rules.Default()

	tests := []struct {
		accept rules.Accept
		dir    string
		want   bool
	}{
		{rules.Any, "/missing", true},
		{rules.Exists, "/missing", false},
		{rules.Exists, "/empty", true},
		{rules.Exists, "/file", false},
		{rules.NonEmpty, "/empty", false},
		{rules.NonEmpty, "/full", true},
		{rules.NonEmpty, "/missing", false},
		{rules.Libraries, "/libs", true},
		{rules.Libraries, "/static", true},
		{rules.Libraries, "/headers", false},
		{rules.Libraries, "/empty", false},
		{rules.Libraries, "/missing", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.accept)+tt.dir, func(t *testing.T) {
			r := rules.Rule{Names: []string{"X"}, Accept: tt.accept}
			assert.Equal(t, tt.want, table.Accepts(fs, r, tt.dir))
		})
	}
}

func TestIsLibrary(t *testing.T) {
	table := &rules.Table{LibrarySuffixes: []string{".a", ".so", ""}}

	assert.True(t, table.IsLibrary("libz.so"))
	assert.True(t, table.IsLibrary("libz.a"))
	assert.False(t, table.IsLibrary("libz.so.1"))
	assert.False(t, table.IsLibrary("zlib.h"))
}
