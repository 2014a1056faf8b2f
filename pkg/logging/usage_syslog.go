//go:build !windows && !plan9

package logging

import (
	"io"
	"log/syslog"

	"github.com/rs/zerolog"
)

type syslogSink struct {
	zerolog.LevelWriter
	w *syslog.Writer
}

func (s *syslogSink) Close() error { return s.w.Close() }

func openSyslog(tag string) (io.WriteCloser, error) {
	if tag == "" {
		tag = "ssmuse"
	}
	w, err := syslog.New(syslog.LOG_INFO|syslog.LOG_USER, tag)
	if err != nil {
		return nil, err
	}
	return &syslogSink{LevelWriter: zerolog.SyslogLevelWriter(w), w: w}, nil
}
