package style

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrinterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.Error("fatal: bad shell type")
	p.Warning("no logging")
	p.Hint("source this output")

	assert.Equal(t, "fatal: bad shell type\nwarning: no logging\nsource this output\n", buf.String())
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
