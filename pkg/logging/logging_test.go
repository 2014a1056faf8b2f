package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerTo(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetupLoggerTo(&buf, tt.verbosity)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("SetupLoggerTo(%d) set level to %v, want %v",
					tt.verbosity, zerolog.GlobalLevel(), tt.wantLevel)
			}
		})
	}
	SetupLoggerTo(&bytes.Buffer{}, 0)
}

func TestGetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerTo(&buf, 0)
	defer SetupLoggerTo(&bytes.Buffer{}, 0)

	logger := GetLogger("test.component")
	logger.Warn().Msg("something odd")

	out := buf.String()
	if !strings.Contains(out, "component=test.component") {
		t.Errorf("expected component field in output, got %q", out)
	}
	if !strings.Contains(out, "something odd") {
		t.Errorf("expected message in output, got %q", out)
	}
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	SetupLoggerTo(&buf, 2)
	defer SetupLoggerTo(&bytes.Buffer{}, 0)

	done := LogOperationStart(GetLogger("test"), "compose")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "operation=compose")
}

func readRecords(t *testing.T, fs afero.Fs, path string) []map[string]interface{} {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)

	var records []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestUsageLogFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/var/log/ssmuse/sub/usage.log"

	u, err := OpenUsageLog(fs, "file:"+logPath, "")
	require.NoError(t, err)

	u.Record("/opt/ssm/dom", UsageEvent{
		Op:        "loaddomain",
		User:      "jdoe",
		Platform:  "ubuntu-22.04-amd64-64",
		Platforms: []string{"ubuntu-22.04-amd64-64", "all", "multi"},
		Shell:     "sh",
		Pend:      "prepend",
		Raw:       "dom",
		Resolved:  "/opt/ssm/dom",
	})
	u.Record("/opt/ssm/pkg", UsageEvent{Op: "loadpackage", Raw: "pkg", Resolved: "/opt/ssm/pkg"})
	require.NoError(t, u.Close())

	records := readRecords(t, fs, logPath)
	require.Len(t, records, 2)

	assert.Equal(t, "loaddomain", records[0]["op"])
	assert.Equal(t, "jdoe", records[0]["user"])
	assert.Equal(t, float64(3), records[0]["nplatforms"])
	assert.NotEmpty(t, records[0]["run"])
	assert.Equal(t, records[0]["run"], records[1]["run"], "one run id per process")

	_, hasPlatforms := records[1]["platforms"]
	assert.False(t, hasPlatforms, "package loads carry no platform list")
}

func TestUsageLogAppends(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/ssmuse-usage-test/usage.log"
	require.NoError(t, afero.WriteFile(fs, logPath, []byte(`{"op":"earlier"}`+"\n"), 0644))

	u, err := OpenUsageLog(fs, "file:"+logPath, "")
	require.NoError(t, err)
	u.Record("/opt/ssm/dom", UsageEvent{Op: "loaddomain"})
	require.NoError(t, u.Close())

	records := readRecords(t, fs, logPath)
	require.Len(t, records, 2)
	assert.Equal(t, "earlier", records[0]["op"])
	assert.Equal(t, "loaddomain", records[1]["op"])

	_, err = os.Stat(logPath)
	assert.True(t, os.IsNotExist(err), "the host filesystem is left alone")
}

func TestUsageLogFilter(t *testing.T) {
	fs := afero.NewMemMapFs()
	logPath := "/var/log/usage.log"
	watched := "/ssmuse-watched"

	u, err := OpenUsageLog(fs, "file:"+logPath, "/nonexistent/prefix:"+watched)
	require.NoError(t, err)

	u.Record(filepath.Join(watched, "dom"), UsageEvent{Op: "loaddomain"})
	u.Record("/elsewhere/dom", UsageEvent{Op: "loaddomain"})
	require.NoError(t, u.Close())

	records := readRecords(t, fs, logPath)
	require.Len(t, records, 1)
	assert.Equal(t, "loaddomain", records[0]["op"])
}

func TestUsageLogErrors(t *testing.T) {
	tests := []struct {
		name string
		spec string
	}{
		{"unknown method", "mail:root"},
		{"no method", "whatever"},
		{"unwritable file", "file:/var/log/ssmuse/usage.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
			u, err := OpenUsageLog(fs, tt.spec, "")
			require.Error(t, err)
			assert.Nil(t, u)
			assert.True(t, errors.IsErrorCode(err, errors.ErrLoggingSetup))
		})
	}
}

func TestNilUsageLog(t *testing.T) {
	var u *UsageLog
	assert.NotPanics(t, func() {
		u.Record("/x", UsageEvent{Op: "loaddomain"})
	})
	assert.NoError(t, u.Close())
}
