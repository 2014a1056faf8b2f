package platform

import (
	"bufio"
	"bytes"
	"fmt"
	"runtime"
	"strings"

	"github.com/arthur-debert/ssmuse/pkg/errors"
	"github.com/spf13/afero"
)

// Release files consulted on Linux, in priority order.
const (
	redhatRelease = "/etc/redhat-release"
	suseRelease   = "/etc/SuSE-release"
	lsbRelease    = "/etc/lsb-release"
	debianVersion = "/etc/debian_version"
)

// Detect returns the base platform of the running host as
// <dist>-<version>-<arch>.
func Detect(fs afero.Fs) (string, error) {
	return DetectFor(fs, runtime.GOOS, runtime.GOARCH)
}

// DetectFor is Detect for an explicit operating system and architecture.
func DetectFor(fs afero.Fs, goos, goarch string) (string, error) {
	if goos != "linux" {
		return "", errors.Newf(errors.ErrPlatformDetect, "unsupported operating system: %s", goos)
	}

	dist, ver, err := linuxRelease(fs)
	if err != nil {
		return "", err
	}
	return strings.ToLower(fmt.Sprintf("%s-%s-%s", dist, ver, archSuffix(goarch))), nil
}

// archSuffix maps a Go architecture to the SSM "<cpu>-<bits>" form.
func archSuffix(goarch string) string {
	switch goarch {
	case "amd64":
		return "amd64-64"
	case "386":
		return "i386-32"
	case "arm64":
		return "arm64-64"
	case "ppc64", "ppc64le":
		return "ppc64-64"
	default:
		return "unk-unk"
	}
}

func linuxRelease(fs afero.Fs) (string, string, error) {
	if data, err := afero.ReadFile(fs, redhatRelease); err == nil {
		return "rhel", redhatVersion(string(data)), nil
	}
	if data, err := afero.ReadFile(fs, suseRelease); err == nil {
		dist, ver := suseVersion(data)
		return dist, ver, nil
	}
	if data, err := afero.ReadFile(fs, lsbRelease); err == nil {
		dist, ver := lsbVersion(data)
		if dist != "" {
			return dist, ver, nil
		}
	}
	// after lsb-release, which ubuntu also carries
	if data, err := afero.ReadFile(fs, debianVersion); err == nil {
		return "debian", strings.TrimSpace(string(data)), nil
	}
	return "", "", errors.New(errors.ErrPlatformDetect, "no known release file found")
}

// redhatVersion extracts "7.9.2009" from "CentOS Linux release 7.9.2009 (Core)".
func redhatVersion(line string) string {
	_, rest, ok := strings.Cut(strings.TrimSpace(line), "release ")
	if !ok {
		return "unk"
	}
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return "unk"
	}
	return fields[0]
}

func suseVersion(data []byte) (string, string) {
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	dist := "suse-unk"
	switch {
	case strings.HasPrefix(lines[0], "SUSE Linux Enterprise Server"):
		dist = "sles"
	case strings.HasPrefix(lines[0], "SUSE Linux Enterprise Desktop"):
		dist = "sled"
	}
	ver := "unk"
	if len(lines) > 1 {
		if _, v, ok := strings.Cut(lines[1], "= "); ok {
			ver = strings.TrimSpace(v)
		}
	}
	return dist, ver
}

func lsbVersion(data []byte) (string, string) {
	var dist, ver string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		value = strings.Trim(strings.TrimSpace(value), `"`)
		switch strings.TrimSpace(key) {
		case "DISTRIB_ID":
			dist = value
		case "DISTRIB_RELEASE":
			ver = value
		}
	}
	return dist, ver
}
