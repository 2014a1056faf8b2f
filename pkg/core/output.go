package core

import (
	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/shell"
	"github.com/spf13/afero"
)

// WriteTempScript stores script in a new file under dir (the system temp
// directory when empty) and returns its path. The file starts with a
// statement that deletes it, so sourcing it once cleans up.
func WriteTempScript(fs afero.Fs, dialect, dir, script string) (string, error) {
	f, err := afero.TempFile(fs, dir, "ssmuse")
	if err != nil {
		return "", errors.Wrap(err, errors.ErrOutputTarget, "could not create tmp file")
	}
	path := f.Name()

	prelude, err := shell.New(dialect, shell.Options{})
	if err != nil {
		_ = f.Close()
		_ = fs.Remove(path)
		return "", err
	}
	prelude.Comment("remove self/temp file")
	prelude.Execute("/bin/rm -f " + shell.SingleQuote(path))
	prelude.Comment("")

	if _, err := f.WriteString(prelude.Render() + script); err != nil {
		_ = f.Close()
		_ = fs.Remove(path)
		return "", errors.Wrap(err, errors.ErrOutputTarget, "could not create tmp file")
	}
	if err := f.Close(); err != nil {
		_ = fs.Remove(path)
		return "", errors.Wrap(err, errors.ErrOutputTarget, "could not create tmp file")
	}
	return path, nil
}
