package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/arthur-debert/ssmuse/pkg/paths"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// UsageEvent describes one completed load, as written to the usage log.
type UsageEvent struct {
	Op        string
	User      string
	Host      string
	Platform  string
	Platforms []string
	Shell     string
	Pend      string
	Raw       string
	Resolved  string
}

// UsageLog is the optional append-only record of loads. A nil *UsageLog
// accepts and discards every event.
type UsageLog struct {
	logger   zerolog.Logger
	prefixes []string
	closer   io.Closer
}

// OpenUsageLog opens the sink described by spec ("file:[path]" or
// "syslog:[tag]"). File sinks are created on fs. filter is a
// colon-separated list of path prefixes; when non-empty only loads below
// one of them are recorded.
func OpenUsageLog(fs afero.Fs, spec, filter string) (*UsageLog, error) {
	method, rest, _ := strings.Cut(spec, ":")

	var (
		w      io.Writer
		closer io.Closer
	)
	switch method {
	case "file":
		path := rest
		if path == "" {
			path = paths.DefaultUsageLogPath()
		}
		f, err := openAppend(fs, path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrLoggingSetup, "cannot open usage log %s", path)
		}
		w, closer = f, f
	case "syslog":
		sw, err := openSyslog(rest)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrLoggingSetup, "cannot connect to syslog")
		}
		w, closer = sw, sw
	default:
		return nil, errors.Newf(errors.ErrLoggingSetup, "unknown usage log method %q", method)
	}

	u := &UsageLog{
		logger: zerolog.New(w).With().
			Timestamp().
			Str("run", uuid.NewString()).
			Logger(),
		closer: closer,
	}
	for _, prefix := range strings.Split(filter, ":") {
		if prefix != "" {
			u.prefixes = append(u.prefixes, paths.Realpath(prefix))
		}
	}
	return u, nil
}

// Record writes ev if path passes the prefix filter.
func (u *UsageLog) Record(path string, ev UsageEvent) {
	if u == nil || !u.accepts(path) {
		return
	}
	e := u.logger.Log().
		Str("op", ev.Op).
		Str("user", ev.User).
		Str("host", ev.Host).
		Str("platform", ev.Platform).
		Str("shell", ev.Shell).
		Str("pend", ev.Pend).
		Str("raw", ev.Raw).
		Str("path", ev.Resolved)
	if ev.Platforms != nil {
		e = e.Int("nplatforms", len(ev.Platforms)).Strs("platforms", ev.Platforms)
	}
	e.Msg(ev.Op)
}

// Close releases the underlying sink.
func (u *UsageLog) Close() error {
	if u == nil || u.closer == nil {
		return nil
	}
	return u.closer.Close()
}

func (u *UsageLog) accepts(path string) bool {
	if len(u.prefixes) == 0 {
		return true
	}
	for _, prefix := range u.prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func openAppend(fs afero.Fs, path string) (afero.File, error) {
	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return fs.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
