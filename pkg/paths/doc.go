// Package paths provides centralized path handling for ssmuse.
//
// It owns the names of every environment variable ssmuse reads, the fixed
// markers that identify domains and packages on disk, and the rules used to
// turn a raw load argument into candidate filesystem locations.
//
// # Environment Variables
//
//   - SSMUSE_PATH: colon-separated base directories for relative arguments
//   - SSMUSE_BASE: single base directory (used when SSMUSE_PATH is unset)
//   - SSM_DOMAIN_BASE: fallback base directory
//   - SSMUSE_PLATFORMS: explicit platform chain, whitespace-separated
//   - SSMUSE_XINCDIRS / SSMUSE_XLIBDIRS: extra include/lib subdirectories
//   - SSMUSE_VERBOSE, SSMUSE_LOG, SSMUSE_LOG_FILTER: diagnostics
//   - SSMUSE_PENDMODE: pending mode handed to nested invocations
//
// # Layout
//
//	<domain>/etc/ssm.d/                       domain marker
//	<domain>/<platform>/etc/profile.d/*.sh     per-layer profiles
//	<package>/.ssm.d/control                  package marker
//	<package>/etc/profile.d/<name>.sh         package profile
package paths
