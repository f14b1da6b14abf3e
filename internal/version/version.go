// Package version reports themepal build information.
// Version, GitCommit and BuildDate are injected with -ldflags at build time.
package version

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Build information set via -ldflags "-X themepal/internal/version.Version=...".
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Info is the parsed build information of the running binary.
type Info struct {
	Version   string          `json:"version"`
	GitCommit string          `json:"gitCommit"`
	BuildDate string          `json:"buildDate"`
	GoVersion string          `json:"goVersion"`
	Platform  string          `json:"platform"`
	SemVer    *semver.Version `json:"-"`
}

// GetInfo parses Version and collects the runtime details.
func GetInfo() (*Info, error) {
	sv, err := semver.NewVersion(Version)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version '%s': %w", Version, err)
	}

	return &Info{
		Version:   Version,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
		SemVer:    sv,
	}, nil
}

// Short returns "themepal vX, commit abc1234, built DATE", omitting unknown parts.
func (i *Info) Short() string {
	parts := []string{"themepal v" + i.Version}
	if known(i.GitCommit) {
		commit := i.GitCommit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		parts = append(parts, "commit "+commit)
	}
	if known(i.BuildDate) {
		parts = append(parts, "built "+i.BuildDate)
	}
	return strings.Join(parts, ", ")
}

// Detailed returns one "Label: value" line per field.
func (i *Info) Detailed() string {
	var b strings.Builder
	fmt.Fprintf(&b, "themepal v%s\n", i.Version)
	fmt.Fprintf(&b, "Git Commit: %s\n", i.GitCommit)
	fmt.Fprintf(&b, "Build Date: %s\n", i.BuildDate)
	if meta := i.SemVer.Metadata(); meta != "" {
		fmt.Fprintf(&b, "Build Metadata: %s\n", meta)
	}
	fmt.Fprintf(&b, "Go Version: %s\n", i.GoVersion)
	fmt.Fprintf(&b, "Platform: %s", i.Platform)
	return b.String()
}

// GetFormattedVersion returns the one-line version string.
func GetFormattedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("themepal v%s (invalid version)", Version)
	}
	return info.Short()
}

// GetDetailedVersion returns the multi-line version report.
func GetDetailedVersion() string {
	info, err := GetInfo()
	if err != nil {
		return fmt.Sprintf("themepal v%s (error: %v)", Version, err)
	}
	return info.Detailed()
}

// SetBuildInfo overrides the build information; used by tests.
func SetBuildInfo(version, gitCommit, buildDate string) {
	Version = version
	GitCommit = gitCommit
	BuildDate = buildDate
}

func known(value string) bool {
	return value != "" && value != "unknown"
}
