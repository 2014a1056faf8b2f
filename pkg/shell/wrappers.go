package shell

import (
	_ "embed"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/logging"
	"github.com/spf13/afero"
)

//go:embed scripts/ssmuse-sh
var shWrapper string

//go:embed scripts/ssmuse-csh
var cshWrapper string

const binaryPlaceholder = "@SSMUSE@"

// WrapperName returns the file name of the dialect's entry script.
func WrapperName(dialect string) string {
	return "ssmuse-" + dialect
}

// Wrapper returns the entry script for dialect, calling binary.
func Wrapper(dialect, binary string) (string, error) {
	var tmpl string
	switch dialect {
	case DialectSh:
		tmpl = shWrapper
	case DialectCsh:
		tmpl = cshWrapper
	default:
		return "", errors.Newf(errors.ErrShellType, "bad shell type (%s)", dialect)
	}
	return strings.ReplaceAll(tmpl, binaryPlaceholder, strings.ReplaceAll(binary, "'", `'\''`)), nil
}

// InstallWrappers writes the sh and csh entry scripts into dir and
// returns their paths.
func InstallWrappers(fs afero.Fs, dir, binary string) ([]string, error) {
	logger := logging.GetLogger("shell.wrappers")

	if err := fs.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to create directory %s", dir)
	}

	var installed []string
	for _, dialect := range []string{DialectSh, DialectCsh} {
		content, err := Wrapper(dialect, binary)
		if err != nil {
			return nil, err
		}
		dest := filepath.Join(dir, WrapperName(dialect))
		if err := afero.WriteFile(fs, dest, []byte(content), 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess, "failed to write %s", dest)
		}
		logger.Info().Str("dialect", dialect).Str("dest", dest).Msg("Installed entry script")
		installed = append(installed, dest)
	}
	return installed, nil
}
