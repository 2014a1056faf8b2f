package core

import (
	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/types"
)

// Op is the kind of a request stream item.
type Op int

const (
	// OpLoad loads a domain, package or directory.
	OpLoad Op = iota
	// OpForceMode forces the pend mode of later loads.
	OpForceMode
	// OpVerbose enables tracing.
	OpVerbose
)

// Request is one parsed item of the request stream.
type Request struct {
	Op   Op
	Kind types.PathKind
	Mode types.PendMode
	Path string
	// Rest holds the unparsed tokens that follow this item.
	Rest []string
}

// Parse converts tokens into requests. Parsing is complete before any
// load runs, so a bad token anywhere fails the whole request.
func Parse(args []string) ([]Request, error) {
	var reqs []Request
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "--append":
			reqs = append(reqs, Request{Op: OpForceMode, Mode: types.Append, Rest: args[i+1:]})
			continue
		case "--prepend":
			reqs = append(reqs, Request{Op: OpForceMode, Mode: types.Prepend, Rest: args[i+1:]})
			continue
		case "-v":
			reqs = append(reqs, Request{Op: OpVerbose, Rest: args[i+1:]})
			continue
		}

		kind, mode, ok := loadToken(arg)
		if !ok || i+1 >= len(args) {
			return nil, errors.Newf(errors.ErrUnknownArgument, "unknown argument (%s)", arg).
				WithDetail("argument", arg)
		}
		i++
		reqs = append(reqs, Request{Op: OpLoad, Kind: kind, Mode: mode, Path: args[i], Rest: args[i+1:]})
	}
	return reqs, nil
}

func loadToken(arg string) (types.PathKind, types.PendMode, bool) {
	if len(arg) != 2 {
		return 0, 0, false
	}

	var mode types.PendMode
	switch arg[0] {
	case '-':
		mode = types.Prepend
	case '+':
		mode = types.Append
	default:
		return 0, 0, false
	}

	switch arg[1] {
	case 'd':
		return types.KindDomain, mode, true
	case 'p':
		return types.KindPackage, mode, true
	case 'f':
		return types.KindDirectory, mode, true
	case 'x':
		return types.KindAny, mode, true
	}
	return 0, 0, false
}
