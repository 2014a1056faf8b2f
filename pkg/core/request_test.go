// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test request stream parsing

package core_test

import (
	"testing"

	"github.com/arthur-debert/ssmuse/pkg/core"
	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	reqs, err := core.Parse([]string{"-d", "dom", "+p", "pkg", "--append", "-f", "dir", "-v", "+x", "any"})
	require.NoError(t, err)
	require.Len(t, reqs, 6)

	assert.Equal(t, core.Request{Op: core.OpLoad, Kind: types.KindDomain, Mode: types.Prepend, Path: "dom",
		Rest: []string{"+p", "pkg", "--append", "-f", "dir", "-v", "+x", "any"}}, reqs[0])
	assert.Equal(t, types.KindPackage, reqs[1].Kind)
	assert.Equal(t, types.Append, reqs[1].Mode)
	assert.Equal(t, core.OpForceMode, reqs[2].Op)
	assert.Equal(t, types.Append, reqs[2].Mode)
	assert.Equal(t, types.KindDirectory, reqs[3].Kind)
	assert.Equal(t, core.OpVerbose, reqs[4].Op)
	assert.Equal(t, types.KindAny, reqs[5].Kind)
	assert.Empty(t, reqs[5].Rest)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{"unknown_flag", []string{"-d", "dom", "--bogus"}, "unknown argument (--bogus)"},
		{"missing_path", []string{"-p"}, "unknown argument (-p)"},
		{"bare_word", []string{"dom"}, "unknown argument (dom)"},
		{"wrong_letter", []string{"-z", "x"}, "unknown argument (-z)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := core.Parse(tt.args)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownArgument))
			assert.Equal(t, tt.wantMsg, errors.Diagnostic(err))
		})
	}
}

func TestParseEmpty(t *testing.T) {
	reqs, err := core.Parse(nil)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}
