package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/ssmuse/pkg/types"
)

// Environment variable names
const (
	EnvSearchPath   = "SSMUSE_PATH"
	EnvBase         = "SSMUSE_BASE"
	EnvDomainBase   = "SSM_DOMAIN_BASE"
	EnvPlatforms    = "SSMUSE_PLATFORMS"
	EnvXIncDirs     = "SSMUSE_XINCDIRS"
	EnvXLibDirs     = "SSMUSE_XLIBDIRS"
	EnvVerbose      = "SSMUSE_VERBOSE"
	EnvLog          = "SSMUSE_LOG"
	EnvLogFilter    = "SSMUSE_LOG_FILTER"
	EnvPendMode     = "SSMUSE_PENDMODE"
	EnvConfig       = "SSMUSE_CONFIG"
	EnvConfigPrefix = "SSMUSE_CONF_"

	EnvHome    = "HOME"
	EnvLogname = "LOGNAME"
)

// On-disk markers and well-known locations.
// These define the SSM layout and are not configurable.
const (
	// DomainMarker is the subdirectory every domain carries
	DomainMarker = "etc/ssm.d"

	// PackageMarker is the control file every package carries
	PackageMarker = ".ssm.d/control"

	// ProfileDir holds profile scripts inside a domain layer or package
	ProfileDir = "etc/profile.d"

	// RecordsDir is the platform compatibility record directory, relative
	// to the installation prefix
	RecordsDir = "etc/ssm.d/platforms"

	// DefaultPlatformsFile lists the host platform chain when present
	DefaultPlatformsFile = "/etc/ssm/platforms"

	// SystemConfigFile is the site-wide configuration file
	SystemConfigFile = "/etc/ssm/ssmuse.toml"

	// AppDirName is the directory name under XDG locations
	AppDirName = "ssmuse"

	// UsageLogName is the default file name for the usage log
	UsageLogName = "log"
)

// IsExplicit reports whether raw names a location directly instead of
// relative to the base directory search list.
func IsExplicit(raw string) bool {
	return strings.HasPrefix(raw, "/") ||
		strings.HasPrefix(raw, "./") ||
		strings.HasPrefix(raw, "../")
}

// SplitList splits a colon-separated list and drops empty entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ":") {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// BaseDirs returns the directories relative arguments are resolved against.
// SSMUSE_PATH wins over SSMUSE_BASE, which wins over SSM_DOMAIN_BASE.
func BaseDirs(env types.Environment) []string {
	if v, ok := env.Lookup(EnvSearchPath); ok {
		return strings.Split(v, ":")
	}
	if v, ok := env.Lookup(EnvBase); ok {
		return []string{v}
	}
	if v, ok := env.Lookup(EnvDomainBase); ok {
		return []string{v}
	}
	return nil
}

// Candidates returns every location raw may refer to, in search order.
func Candidates(raw string, env types.Environment) []string {
	if IsExplicit(raw) {
		return []string{raw}
	}
	var out []string
	for _, base := range BaseDirs(env) {
		out = append(out, filepath.Join(base, raw))
	}
	return out
}

// Realpath returns the absolute, symlink-free form of p. Paths that cannot
// be evaluated (missing, or not on the host filesystem) are returned
// absolute and cleaned.
func Realpath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		abs = filepath.Clean(p)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

// ExpandHome expands a leading ~ to the home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		home = os.Getenv(EnvHome)
	}
	if home == "" {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// DefaultPlatformsDir returns the compatibility record directory that ships
// next to the executable: <exe dir>/../etc/ssm.d/platforms.
func DefaultPlatformsDir() string {
	exe, err := os.Executable()
	if err != nil {
		return ""
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), "..", RecordsDir)
}

// UserConfigFiles returns the per-user configuration files, in load order.
func UserConfigFiles() []string {
	dir := filepath.Join(xdg.ConfigHome, AppDirName)
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
	}
}

// DefaultUsageLogPath is where "file:" usage logging writes when no path is
// given.
func DefaultUsageLogPath() string {
	return ExpandHome(filepath.Join("~", "."+AppDirName, UsageLogName))
}

// SelfPath returns the path of the running executable, used when the
// generated script calls back into ssmuse.
func SelfPath() string {
	exe, err := os.Executable()
	if err != nil {
		return AppDirName
	}
	return exe
}
