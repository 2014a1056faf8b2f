package types

import "fmt"

// PendMode decides whether newly found directories go before or after the
// current value of a variable.
type PendMode int

const (
	Prepend PendMode = iota
	Append
)

func (m PendMode) String() string {
	if m == Append {
		return "append"
	}
	return "prepend"
}

// ParsePendMode accepts the names written to SSMUSE_PENDMODE.
func ParsePendMode(s string) (PendMode, error) {
	switch s {
	case "prepend":
		return Prepend, nil
	case "append":
		return Append, nil
	}
	return Prepend, fmt.Errorf("unknown pend mode %q", s)
}
